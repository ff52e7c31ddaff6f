package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	reportRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/report"
	"github.com/m04kA/SMC-CarWashService/pkg/ptr"
)

type fakeReportRepo struct {
	users, cars, packages, services int64
	totalRevenue, monthlyRevenue    float64
	todayServices                   int64
	recent                          []domain.RecentService
	daily                           map[string][]domain.DailyReportRow
	bills                           map[int64]*domain.Bill
}

func (f *fakeReportRepo) CountUsers(context.Context) (int64, error)    { return f.users, nil }
func (f *fakeReportRepo) CountCars(context.Context) (int64, error)     { return f.cars, nil }
func (f *fakeReportRepo) CountPackages(context.Context) (int64, error) { return f.packages, nil }
func (f *fakeReportRepo) CountServices(context.Context) (int64, error) { return f.services, nil }
func (f *fakeReportRepo) TotalRevenue(context.Context) (float64, error) {
	return f.totalRevenue, nil
}
func (f *fakeReportRepo) CountServicesOnDate(context.Context, time.Time) (int64, error) {
	return f.todayServices, nil
}
func (f *fakeReportRepo) MonthlyRevenue(context.Context, int, time.Month) (float64, error) {
	return f.monthlyRevenue, nil
}
func (f *fakeReportRepo) RecentServices(_ context.Context, limit uint64) ([]domain.RecentService, error) {
	if uint64(len(f.recent)) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}
func (f *fakeReportRepo) DailyRows(_ context.Context, date time.Time) ([]domain.DailyReportRow, error) {
	return f.daily[date.Format(domain.DateFormat)], nil
}
func (f *fakeReportRepo) Bill(_ context.Context, paymentNumber int64) (*domain.Bill, error) {
	b, ok := f.bills[paymentNumber]
	if !ok {
		return nil, reportRepo.ErrBillNotFound
	}
	return b, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestDashboard(t *testing.T) {
	repo := &fakeReportRepo{
		users:          2,
		cars:           3,
		packages:       4,
		services:       5,
		totalRevenue:   15000,
		todayServices:  1,
		monthlyRevenue: 5000,
		recent: []domain.RecentService{
			{ServiceID: 5, PlateNumber: "RAD123A", ServiceDate: time.Now(), PackageName: ptr.Ptr("Basic Wash")},
		},
	}
	svc := NewService(repo, nopLogger{})

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(3), stats.TotalCars)
	assert.Equal(t, int64(4), stats.TotalPackages)
	assert.Equal(t, int64(5), stats.TotalServices)
	assert.Equal(t, 15000.0, stats.TotalRevenue)
	assert.Equal(t, int64(1), stats.TodayServices)
	assert.Equal(t, 5000.0, stats.MonthlyRevenue)
	require.Len(t, stats.RecentServices, 1)
	assert.Equal(t, "RAD123A", stats.RecentServices[0].PlateNumber)
}

func TestDailyReport(t *testing.T) {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	repo := &fakeReportRepo{
		daily: map[string][]domain.DailyReportRow{
			"2025-03-15": {
				{RecordNumber: 1, PlateNumber: "RAD123A", ServiceDate: date, AmountPaid: ptr.Ptr(5000.0)},
				{RecordNumber: 2, PlateNumber: "RAD456B", ServiceDate: date},
			},
		},
	}
	svc := NewService(repo, nopLogger{})

	rows, err := svc.DailyReport(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].RecordNumber)
	assert.Nil(t, rows[1].AmountPaid)
}

func TestBill(t *testing.T) {
	repo := &fakeReportRepo{
		bills: map[int64]*domain.Bill{
			7: {PaymentNumber: 7, PlateNumber: "RAD123A", PackageName: "Basic Wash", AmountPaid: 5000},
		},
	}
	svc := NewService(repo, nopLogger{})

	b, err := svc.Bill(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "RAD123A", b.PlateNumber)

	_, err = svc.Bill(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBillNotFound)
}
