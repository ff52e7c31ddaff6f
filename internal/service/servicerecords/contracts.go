package servicerecords

import (
	"context"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

// ServiceRecordRepository интерфейс репозитория записей об услугах
type ServiceRecordRepository interface {
	ListWithDetails(ctx context.Context) ([]*domain.ServiceRecordDetails, error)
	GetDetails(ctx context.Context, recordNumber int64) (*domain.ServiceRecordDetails, error)
	Update(ctx context.Context, rec *domain.ServiceRecord) error
	Delete(ctx context.Context, recordNumber int64) error
}

// PaymentRepository интерфейс для проверки зависимых платежей
type PaymentRepository interface {
	CountByRecord(ctx context.Context, recordNumber int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
