package reports

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	reportRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/report"
)

// Service сервис отчетов: дашборд, ежедневный отчет и квитанции
type Service struct {
	reportRepo ReportRepository
	logger     Logger
	now        func() time.Time
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(reportRepo ReportRepository, logger Logger) *Service {
	return &Service{
		reportRepo: reportRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// Dashboard собирает сводные показатели для главной страницы
// Показатели читаются отдельными запросами без общей транзакции:
// между ними возможен минимальный перекос, для дашборда это допустимо
func (s *Service) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	now := s.now()

	stats := &domain.DashboardStats{}

	var err error
	if stats.TotalUsers, err = s.reportRepo.CountUsers(ctx); err != nil {
		return nil, s.statError("count users", err)
	}
	if stats.TotalCars, err = s.reportRepo.CountCars(ctx); err != nil {
		return nil, s.statError("count cars", err)
	}
	if stats.TotalPackages, err = s.reportRepo.CountPackages(ctx); err != nil {
		return nil, s.statError("count packages", err)
	}
	if stats.TotalServices, err = s.reportRepo.CountServices(ctx); err != nil {
		return nil, s.statError("count services", err)
	}
	if stats.TotalRevenue, err = s.reportRepo.TotalRevenue(ctx); err != nil {
		return nil, s.statError("total revenue", err)
	}
	if stats.TodayServices, err = s.reportRepo.CountServicesOnDate(ctx, now); err != nil {
		return nil, s.statError("today services", err)
	}
	if stats.MonthlyRevenue, err = s.reportRepo.MonthlyRevenue(ctx, now.Year(), now.Month()); err != nil {
		return nil, s.statError("monthly revenue", err)
	}
	if stats.RecentServices, err = s.reportRepo.RecentServices(ctx, domain.RecentServicesLimit); err != nil {
		return nil, s.statError("recent services", err)
	}

	s.logger.Info("Dashboard: stats collected, services=%d revenue=%.2f", stats.TotalServices, stats.TotalRevenue)
	return stats, nil
}

// DailyReport возвращает все услуги за указанную дату с данными об оплате
func (s *Service) DailyReport(ctx context.Context, date time.Time) ([]domain.DailyReportRow, error) {
	rows, err := s.reportRepo.DailyRows(ctx, date)
	if err != nil {
		s.logger.Error("DailyReport: repository error for date %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: DailyReport - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DailyReport: %d rows for date %s", len(rows), date.Format(domain.DateFormat))
	return rows, nil
}

// Bill возвращает данные квитанции по номеру платежа
// Квитанция существует только для полной цепочки платеж-услуга-автомобиль-пакет
func (s *Service) Bill(ctx context.Context, paymentNumber int64) (*domain.Bill, error) {
	bill, err := s.reportRepo.Bill(ctx, paymentNumber)
	if err != nil {
		if errors.Is(err, reportRepo.ErrBillNotFound) {
			s.logger.Warn("Bill: no bill for payment %d", paymentNumber)
			return nil, ErrBillNotFound
		}
		s.logger.Error("Bill: repository error for payment %d: %v", paymentNumber, err)
		return nil, fmt.Errorf("%w: Bill - repository error: %v", ErrInternal, err)
	}

	return bill, nil
}

func (s *Service) statError(step string, err error) error {
	s.logger.Error("Dashboard: failed to %s: %v", step, err)
	return fmt.Errorf("%w: Dashboard - %s: %v", ErrInternal, step, err)
}
