package domain

import "time"

// DashboardStats сводные показатели для дашборда
type DashboardStats struct {
	TotalUsers     int64
	TotalCars      int64
	TotalPackages  int64
	TotalServices  int64
	TotalRevenue   float64
	TodayServices  int64
	MonthlyRevenue float64
	RecentServices []RecentService
}

// RecentService строка списка последних услуг на дашборде
type RecentService struct {
	ServiceID    int64
	PlateNumber  string
	ServiceDate  time.Time
	DriverName   *string
	PackageName  *string
	PackagePrice *float64
}

// DailyReportRow строка ежедневного отчета за конкретную дату
type DailyReportRow struct {
	RecordNumber       int64
	ServiceDate        time.Time
	PlateNumber        string
	DriverName         *string
	PhoneNumber        *string
	PackageName        *string
	PackageDescription *string
	AmountPaid         *float64
	PaymentDate        *time.Time
}

// Bill полная цепочка платеж-услуга-автомобиль-пакет для квитанции
// Все поля обязаны присутствовать (inner join)
type Bill struct {
	PaymentNumber int64
	AmountPaid    float64
	PaymentDate   time.Time

	RecordNumber int64
	ServiceDate  time.Time

	PlateNumber string
	CarType     string
	CarSize     string
	DriverName  string
	PhoneNumber string

	PackageNumber      int64
	PackageName        string
	PackageDescription string
	PackagePrice       float64
}
