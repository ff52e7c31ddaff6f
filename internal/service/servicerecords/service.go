package servicerecords

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/servicerecord"
)

// Service сервис для работы с записями об услугах
// Создание записей вынесено в отдельный usecase с транзакционными проверками
type Service struct {
	serviceRepo ServiceRecordRepository
	paymentRepo PaymentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса записей об услугах
func NewService(serviceRepo ServiceRecordRepository, paymentRepo PaymentRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// List возвращает все записи об услугах с данными автомобиля, пакета и платежа,
// новые услуги первыми
func (s *Service) List(ctx context.Context) ([]*domain.ServiceRecordDetails, error) {
	recs, err := s.serviceRepo.ListWithDetails(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d service records", len(recs))
	return recs, nil
}

// Get возвращает запись об услуге по номеру с данными связанных сущностей
func (s *Service) Get(ctx context.Context, recordNumber int64) (*domain.ServiceRecordDetails, error) {
	rec, err := s.serviceRepo.GetDetails(ctx, recordNumber)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Get: service record %d not found", recordNumber)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Get: repository error for record %d: %v", recordNumber, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return rec, nil
}

// Update обновляет дату, автомобиль и пакет записи об услуге
// Ссылки на несуществующий автомобиль или пакет отклоняет база данных
func (s *Service) Update(ctx context.Context, rec *domain.ServiceRecord) (*domain.ServiceRecordDetails, error) {
	if err := s.serviceRepo.Update(ctx, rec); err != nil {
		switch {
		case errors.Is(err, serviceRepo.ErrServiceNotFound):
			s.logger.Warn("Update: service record %d not found", rec.RecordNumber)
			return nil, ErrServiceNotFound
		case errors.Is(err, serviceRepo.ErrReferenceNotFound):
			s.logger.Warn("Update: record %d references missing car %q or package %d", rec.RecordNumber, rec.PlateNumber, rec.PackageNumber)
			return nil, ErrReferenceNotFound
		}
		s.logger.Error("Update: repository error for record %d: %v", rec.RecordNumber, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.serviceRepo.GetDetails(ctx, rec.RecordNumber)
	if err != nil {
		s.logger.Error("Update: failed to re-read record %d: %v", rec.RecordNumber, err)
		return nil, fmt.Errorf("%w: Update - re-read record: %v", ErrInternal, err)
	}

	s.logger.Info("Update: service record %d updated", rec.RecordNumber)
	return updated, nil
}

// Delete удаляет запись об услуге
// Оплаченную услугу удалить нельзя
func (s *Service) Delete(ctx context.Context, recordNumber int64) error {
	count, err := s.paymentRepo.CountByRecord(ctx, recordNumber)
	if err != nil {
		s.logger.Error("Delete: failed to count payments for record %d: %v", recordNumber, err)
		return fmt.Errorf("%w: Delete - count dependents: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("Delete: service record %d has a payment, refusing to delete", recordNumber)
		return ErrServiceHasPayment
	}

	if err := s.serviceRepo.Delete(ctx, recordNumber); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service record %d not found", recordNumber)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for record %d: %v", recordNumber, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: service record %d deleted", recordNumber)
	return nil
}
