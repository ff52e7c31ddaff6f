package reports

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

// ReportRepository интерфейс репозитория агрегатных запросов для отчетов
type ReportRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountCars(ctx context.Context) (int64, error)
	CountPackages(ctx context.Context) (int64, error)
	CountServices(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	CountServicesOnDate(ctx context.Context, date time.Time) (int64, error)
	MonthlyRevenue(ctx context.Context, year int, month time.Month) (float64, error)
	RecentServices(ctx context.Context, limit uint64) ([]domain.RecentService, error)
	DailyRows(ctx context.Context, date time.Time) ([]domain.DailyReportRow, error)
	Bill(ctx context.Context, paymentNumber int64) (*domain.Bill, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
