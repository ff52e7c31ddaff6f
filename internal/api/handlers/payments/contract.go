package payments

import (
	"context"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	createPayment "github.com/m04kA/SMC-CarWashService/internal/usecase/create_payment"
)

// PaymentService интерфейс сервиса платежей
type PaymentService interface {
	List(ctx context.Context) ([]*domain.PaymentDetails, error)
	Get(ctx context.Context, paymentNumber int64) (*domain.PaymentDetails, error)
	Update(ctx context.Context, p *domain.Payment) (*domain.PaymentDetails, error)
	Delete(ctx context.Context, paymentNumber int64) error
}

// CreatePaymentUseCase интерфейс use case регистрации платежа
type CreatePaymentUseCase interface {
	Execute(ctx context.Context, req *createPayment.Request) (*domain.PaymentDetails, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
