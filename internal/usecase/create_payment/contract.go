package create_payment

import (
	"context"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	ExistsByRecord(ctx context.Context, recordNumber int64) (bool, error)
	GetDetails(ctx context.Context, paymentNumber int64) (*domain.PaymentDetails, error)
}

// ServiceRecordRepository интерфейс для проверки существования услуги
type ServiceRecordRepository interface {
	Exists(ctx context.Context, recordNumber int64) (bool, error)
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
