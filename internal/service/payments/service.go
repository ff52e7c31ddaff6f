package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/payment"
)

// Service сервис для работы с платежами
// Создание платежей вынесено в отдельный usecase с транзакционными проверками
type Service struct {
	paymentRepo PaymentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(paymentRepo PaymentRepository, logger Logger) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// List возвращает все платежи с данными услуги, автомобиля и пакета,
// новые платежи первыми
func (s *Service) List(ctx context.Context) ([]*domain.PaymentDetails, error) {
	pays, err := s.paymentRepo.ListWithDetails(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d payments", len(pays))
	return pays, nil
}

// Get возвращает платеж по номеру с данными связанных сущностей
func (s *Service) Get(ctx context.Context, paymentNumber int64) (*domain.PaymentDetails, error) {
	p, err := s.paymentRepo.GetDetails(ctx, paymentNumber)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("Get: payment %d not found", paymentNumber)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("Get: repository error for payment %d: %v", paymentNumber, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return p, nil
}

// Update обновляет сумму и дату платежа
// Привязка платежа к услуге после создания не меняется
func (s *Service) Update(ctx context.Context, p *domain.Payment) (*domain.PaymentDetails, error) {
	if err := s.paymentRepo.Update(ctx, p); err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("Update: payment %d not found", p.PaymentNumber)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("Update: repository error for payment %d: %v", p.PaymentNumber, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.paymentRepo.GetDetails(ctx, p.PaymentNumber)
	if err != nil {
		s.logger.Error("Update: failed to re-read payment %d: %v", p.PaymentNumber, err)
		return nil, fmt.Errorf("%w: Update - re-read payment: %v", ErrInternal, err)
	}

	s.logger.Info("Update: payment %d updated", p.PaymentNumber)
	return updated, nil
}

// Delete удаляет платеж, услуга при этом снова считается неоплаченной
func (s *Service) Delete(ctx context.Context, paymentNumber int64) error {
	if err := s.paymentRepo.Delete(ctx, paymentNumber); err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("Delete: payment %d not found", paymentNumber)
			return ErrPaymentNotFound
		}
		s.logger.Error("Delete: repository error for payment %d: %v", paymentNumber, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: payment %d deleted", paymentNumber)
	return nil
}
