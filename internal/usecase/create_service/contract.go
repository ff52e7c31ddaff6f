package create_service

import (
	"context"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

// ServiceRecordRepository интерфейс репозитория записей об услугах
type ServiceRecordRepository interface {
	Create(ctx context.Context, rec *domain.ServiceRecord) (*domain.ServiceRecord, error)
	GetDetails(ctx context.Context, recordNumber int64) (*domain.ServiceRecordDetails, error)
}

// CarRepository интерфейс для проверки существования автомобиля
type CarRepository interface {
	Exists(ctx context.Context, plateNumber string) (bool, error)
}

// PackageRepository интерфейс для проверки существования пакета услуг
type PackageRepository interface {
	Exists(ctx context.Context, packageNumber int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
