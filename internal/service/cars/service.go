package cars

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	carRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/car"
)

// Service сервис для работы с автомобилями
type Service struct {
	carRepo     CarRepository
	serviceRepo ServiceRecordRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса автомобилей
func NewService(carRepo CarRepository, serviceRepo ServiceRecordRepository, logger Logger) *Service {
	return &Service{
		carRepo:     carRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List возвращает все автомобили, упорядоченные по номерному знаку
func (s *Service) List(ctx context.Context) ([]*domain.Car, error) {
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d cars", len(cars))
	return cars, nil
}

// Get возвращает автомобиль по номерному знаку
func (s *Service) Get(ctx context.Context, plateNumber string) (*domain.Car, error) {
	car, err := s.carRepo.GetByPlate(ctx, plateNumber)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("Get: car %q not found", plateNumber)
			return nil, ErrCarNotFound
		}
		s.logger.Error("Get: repository error for car %q: %v", plateNumber, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return car, nil
}

// Create создает новый автомобиль
func (s *Service) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	created, err := s.carRepo.Create(ctx, car)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarAlreadyExists) {
			s.logger.Warn("Create: car %q already exists", car.PlateNumber)
			return nil, ErrCarAlreadyExists
		}
		s.logger.Error("Create: repository error for car %q: %v", car.PlateNumber, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: car %q created", created.PlateNumber)
	return created, nil
}

// Update обновляет все изменяемые поля автомобиля
func (s *Service) Update(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	if err := s.carRepo.Update(ctx, car); err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("Update: car %q not found", car.PlateNumber)
			return nil, ErrCarNotFound
		}
		s.logger.Error("Update: repository error for car %q: %v", car.PlateNumber, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.carRepo.GetByPlate(ctx, car.PlateNumber)
	if err != nil {
		s.logger.Error("Update: failed to re-read car %q: %v", car.PlateNumber, err)
		return nil, fmt.Errorf("%w: Update - re-read car: %v", ErrInternal, err)
	}

	s.logger.Info("Update: car %q updated", car.PlateNumber)
	return updated, nil
}

// Delete удаляет автомобиль
// Автомобиль с историей услуг удалить нельзя: сначала быстрая проверка
// зависимых записей, внешний ключ в БД остается последней линией защиты
func (s *Service) Delete(ctx context.Context, plateNumber string) error {
	count, err := s.serviceRepo.CountByPlate(ctx, plateNumber)
	if err != nil {
		s.logger.Error("Delete: failed to count services for car %q: %v", plateNumber, err)
		return fmt.Errorf("%w: Delete - count dependents: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("Delete: car %q has %d service records, refusing to delete", plateNumber, count)
		return ErrCarHasServices
	}

	if err := s.carRepo.Delete(ctx, plateNumber); err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("Delete: car %q not found", plateNumber)
			return ErrCarNotFound
		}
		s.logger.Error("Delete: repository error for car %q: %v", plateNumber, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: car %q deleted", plateNumber)
	return nil
}
