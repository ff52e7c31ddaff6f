package reports

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

// ReportService интерфейс сервиса отчетов
type ReportService interface {
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
	DailyReport(ctx context.Context, date time.Time) ([]domain.DailyReportRow, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
