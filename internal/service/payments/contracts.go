package payments

import (
	"context"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	ListWithDetails(ctx context.Context) ([]*domain.PaymentDetails, error)
	GetDetails(ctx context.Context, paymentNumber int64) (*domain.PaymentDetails, error)
	Update(ctx context.Context, p *domain.Payment) error
	Delete(ctx context.Context, paymentNumber int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
