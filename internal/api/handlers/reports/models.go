package reports

import (
	"time"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

// DashboardResponse HTTP response model дашборда
type DashboardResponse struct {
	TotalUsers     int64                   `json:"totalUsers"`
	TotalCars      int64                   `json:"totalCars"`
	TotalPackages  int64                   `json:"totalPackages"`
	TotalServices  int64                   `json:"totalServices"`
	TotalRevenue   float64                 `json:"totalRevenue"`
	TodayServices  int64                   `json:"todayServices"`
	MonthlyRevenue float64                 `json:"monthlyRevenue"`
	RecentServices []RecentServiceResponse `json:"recentServices"`
}

// RecentServiceResponse строка списка последних услуг
type RecentServiceResponse struct {
	ServiceID    int64    `json:"serviceId"`
	PlateNumber  string   `json:"plateNumber"`
	ServiceDate  string   `json:"serviceDate"`
	DriverName   *string  `json:"driverName,omitempty"`
	PackageName  *string  `json:"packageName,omitempty"`
	PackagePrice *float64 `json:"packagePrice,omitempty"`
}

// FromDashboard конвертирует доменную модель дашборда в HTTP response
func FromDashboard(stats *domain.DashboardStats) *DashboardResponse {
	recent := make([]RecentServiceResponse, 0, len(stats.RecentServices))
	for _, rs := range stats.RecentServices {
		recent = append(recent, RecentServiceResponse{
			ServiceID:    rs.ServiceID,
			PlateNumber:  rs.PlateNumber,
			ServiceDate:  rs.ServiceDate.Format(domain.DateFormat),
			DriverName:   rs.DriverName,
			PackageName:  rs.PackageName,
			PackagePrice: rs.PackagePrice,
		})
	}

	return &DashboardResponse{
		TotalUsers:     stats.TotalUsers,
		TotalCars:      stats.TotalCars,
		TotalPackages:  stats.TotalPackages,
		TotalServices:  stats.TotalServices,
		TotalRevenue:   stats.TotalRevenue,
		TodayServices:  stats.TodayServices,
		MonthlyRevenue: stats.MonthlyRevenue,
		RecentServices: recent,
	}
}

// DailyReportResponse HTTP response model ежедневного отчета
type DailyReportResponse struct {
	ReportDate    string             `json:"reportDate"`
	TotalServices int                `json:"totalServices"`
	TotalRevenue  float64            `json:"totalRevenue"`
	Services      []DailyRowResponse `json:"services"`
}

// DailyRowResponse строка ежедневного отчета
type DailyRowResponse struct {
	RecordNumber       int64    `json:"recordNumber"`
	ServiceDate        string   `json:"serviceDate"`
	PlateNumber        string   `json:"plateNumber"`
	DriverName         *string  `json:"driverName,omitempty"`
	PhoneNumber        *string  `json:"phoneNumber,omitempty"`
	PackageName        *string  `json:"packageName,omitempty"`
	PackageDescription *string  `json:"packageDescription,omitempty"`
	AmountPaid         *float64 `json:"amountPaid,omitempty"`
	PaymentDate        *string  `json:"paymentDate,omitempty"`
}

// FromDailyRows собирает ежедневный отчет: строки плюс итоги,
// неоплаченная услуга дает нулевой вклад в выручку
func FromDailyRows(date time.Time, rows []domain.DailyReportRow) *DailyReportResponse {
	services := make([]DailyRowResponse, 0, len(rows))
	var totalRevenue float64

	for _, row := range rows {
		if row.AmountPaid != nil {
			totalRevenue += *row.AmountPaid
		}
		services = append(services, DailyRowResponse{
			RecordNumber:       row.RecordNumber,
			ServiceDate:        row.ServiceDate.Format(domain.DateFormat),
			PlateNumber:        row.PlateNumber,
			DriverName:         row.DriverName,
			PhoneNumber:        row.PhoneNumber,
			PackageName:        row.PackageName,
			PackageDescription: row.PackageDescription,
			AmountPaid:         row.AmountPaid,
			PaymentDate:        formatDatePtr(row.PaymentDate),
		})
	}

	return &DailyReportResponse{
		ReportDate:    date.Format(domain.DateFormat),
		TotalServices: len(rows),
		TotalRevenue:  totalRevenue,
		Services:      services,
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateFormat)
	return &s
}
