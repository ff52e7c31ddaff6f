package bill

import (
	"context"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

// ReportService интерфейс сервиса отчетов в части квитанций
type ReportService interface {
	Bill(ctx context.Context, paymentNumber int64) (*domain.Bill, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
