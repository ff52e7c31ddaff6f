package create_service

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

// UseCase use case регистрации оказанной услуги
type UseCase struct {
	serviceRepo ServiceRecordRepository
	carRepo     CarRepository
	packageRepo PackageRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRecordRepository,
	carRepo CarRepository,
	packageRepo PackageRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo: serviceRepo,
		carRepo:     carRepo,
		packageRepo: packageRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute регистрирует оказанную услугу
// Проверка существования автомобиля и пакета и вставка выполняются
// в сериализуемой транзакции, чтобы исключить гонку с их удалением;
// внешние ключи в БД остаются последней линией защиты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.ServiceRecordDetails, error) {
	uc.logger.Info("CreateService: plate=%q, package=%d, date=%s",
		req.PlateNumber, req.PackageNumber, req.ServiceDate.Format(domain.DateFormat))

	var recordNumber int64

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		carExists, err := uc.carRepo.Exists(txCtx, req.PlateNumber)
		if err != nil {
			uc.logger.Error("CreateService: failed to check car %q: %v", req.PlateNumber, err)
			return fmt.Errorf("%w: failed to check car: %v", ErrInternal, err)
		}
		if !carExists {
			uc.logger.Warn("CreateService: car %q not found", req.PlateNumber)
			return ErrCarNotFound
		}

		pkgExists, err := uc.packageRepo.Exists(txCtx, req.PackageNumber)
		if err != nil {
			uc.logger.Error("CreateService: failed to check package %d: %v", req.PackageNumber, err)
			return fmt.Errorf("%w: failed to check package: %v", ErrInternal, err)
		}
		if !pkgExists {
			uc.logger.Warn("CreateService: package %d not found", req.PackageNumber)
			return ErrPackageNotFound
		}

		created, err := uc.serviceRepo.Create(txCtx, &domain.ServiceRecord{
			ServiceDate:   req.ServiceDate,
			PlateNumber:   req.PlateNumber,
			PackageNumber: req.PackageNumber,
		})
		if err != nil {
			uc.logger.Error("CreateService: failed to create record: %v", err)
			return fmt.Errorf("%w: failed to create record: %v", ErrInternal, err)
		}

		recordNumber = created.RecordNumber
		return nil
	})
	if err != nil {
		return nil, err
	}

	details, err := uc.serviceRepo.GetDetails(ctx, recordNumber)
	if err != nil {
		uc.logger.Error("CreateService: failed to read created record %d: %v", recordNumber, err)
		return nil, fmt.Errorf("%w: failed to read created record: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateService: record %d created", recordNumber)
	return details, nil
}
