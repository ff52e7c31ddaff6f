package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	"github.com/m04kA/SMC-CarWashService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarWashService/pkg/psqlbuilder"
)

// Repository read-only репозиторий агрегирующих запросов для отчетов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отчетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CountUsers возвращает количество учетных записей
func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	return r.countRows(ctx, "users")
}

// CountCars возвращает количество автомобилей
func (r *Repository) CountCars(ctx context.Context) (int64, error) {
	return r.countRows(ctx, "cars")
}

// CountPackages возвращает количество пакетов услуг
func (r *Repository) CountPackages(ctx context.Context) (int64, error) {
	return r.countRows(ctx, "packages")
}

// CountServices возвращает количество записей об услугах
func (r *Repository) CountServices(ctx context.Context) (int64, error) {
	return r.countRows(ctx, "service_records")
}

func (r *Repository) countRows(ctx context.Context, table string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: countRows - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: countRows - scan result: %v", ErrScanRow, err)
	}

	return count, nil
}

// TotalRevenue возвращает сумму всех платежей
// При отсутствии платежей возвращает 0
func (r *Repository) TotalRevenue(ctx context.Context) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount_paid), 0)").
		From("payments").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: TotalRevenue - build select query: %v", ErrBuildQuery, err)
	}

	var total float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: TotalRevenue - scan result: %v", ErrScanRow, err)
	}

	return total, nil
}

// CountServicesOnDate возвращает количество услуг на конкретную дату
func (r *Repository) CountServicesOnDate(ctx context.Context, date time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("service_records").
		Where(squirrel.Eq{"service_date": date.Format(domain.DateFormat)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountServicesOnDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountServicesOnDate - scan result: %v", ErrScanRow, err)
	}

	return count, nil
}

// MonthlyRevenue возвращает сумму платежей за календарный месяц
func (r *Repository) MonthlyRevenue(ctx context.Context, year int, month time.Month) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount_paid), 0)").
		From("payments").
		Where(squirrel.GtOrEq{"payment_date": monthStart.Format(domain.DateFormat)}).
		Where(squirrel.Lt{"payment_date": nextMonth.Format(domain.DateFormat)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: MonthlyRevenue - build select query: %v", ErrBuildQuery, err)
	}

	var total float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: MonthlyRevenue - scan result: %v", ErrScanRow, err)
	}

	return total, nil
}

// RecentServices возвращает последние услуги с данными автомобиля и пакета
// Сортировка: по дате услуги, затем по номеру записи (сначала свежие)
func (r *Repository) RecentServices(ctx context.Context, limit uint64) ([]domain.RecentService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"sr.record_number",
		"sr.plate_number",
		"sr.service_date",
		"c.driver_name",
		"p.package_name",
		"p.package_price",
	).
		From("service_records sr").
		LeftJoin("cars c ON c.plate_number = sr.plate_number").
		LeftJoin("packages p ON p.package_number = sr.package_number").
		OrderBy("sr.service_date DESC, sr.record_number DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: RecentServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: RecentServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.RecentService, 0, limit)
	for rows.Next() {
		var s domain.RecentService
		err := rows.Scan(
			&s.ServiceID,
			&s.PlateNumber,
			&s.ServiceDate,
			&s.DriverName,
			&s.PackageName,
			&s.PackagePrice,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: RecentServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: RecentServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// DailyRows возвращает все услуги на конкретную дату с данными автомобиля,
// пакета и платежа (left join - платеж может отсутствовать)
// Сортировка по номеру записи
func (r *Repository) DailyRows(ctx context.Context, date time.Time) ([]domain.DailyReportRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"sr.record_number",
		"sr.service_date",
		"sr.plate_number",
		"c.driver_name",
		"c.phone_number",
		"p.package_name",
		"p.package_description",
		"pay.amount_paid",
		"pay.payment_date",
	).
		From("service_records sr").
		LeftJoin("cars c ON c.plate_number = sr.plate_number").
		LeftJoin("packages p ON p.package_number = sr.package_number").
		LeftJoin("payments pay ON pay.record_number = sr.record_number").
		Where(squirrel.Eq{"sr.service_date": date.Format(domain.DateFormat)}).
		OrderBy("sr.record_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: DailyRows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DailyRows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.DailyReportRow, 0)
	for rows.Next() {
		var row domain.DailyReportRow
		err := rows.Scan(
			&row.RecordNumber,
			&row.ServiceDate,
			&row.PlateNumber,
			&row.DriverName,
			&row.PhoneNumber,
			&row.PackageName,
			&row.PackageDescription,
			&row.AmountPaid,
			&row.PaymentDate,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: DailyRows - scan row: %v", ErrScanRow, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DailyRows - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Bill возвращает полную цепочку платеж-услуга-автомобиль-пакет
// Inner join: неполная цепочка означает ErrBillNotFound
func (r *Repository) Bill(ctx context.Context, paymentNumber int64) (*domain.Bill, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"pay.payment_number",
		"pay.amount_paid",
		"pay.payment_date",
		"sr.record_number",
		"sr.service_date",
		"c.plate_number",
		"c.car_type",
		"c.car_size",
		"c.driver_name",
		"c.phone_number",
		"p.package_number",
		"p.package_name",
		"p.package_description",
		"p.package_price",
	).
		From("payments pay").
		Join("service_records sr ON sr.record_number = pay.record_number").
		Join("cars c ON c.plate_number = sr.plate_number").
		Join("packages p ON p.package_number = sr.package_number").
		Where(squirrel.Eq{"pay.payment_number": paymentNumber}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Bill - build select query: %v", ErrBuildQuery, err)
	}

	var bill domain.Bill
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&bill.PaymentNumber,
		&bill.AmountPaid,
		&bill.PaymentDate,
		&bill.RecordNumber,
		&bill.ServiceDate,
		&bill.PlateNumber,
		&bill.CarType,
		&bill.CarSize,
		&bill.DriverName,
		&bill.PhoneNumber,
		&bill.PackageNumber,
		&bill.PackageName,
		&bill.PackageDescription,
		&bill.PackagePrice,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBillNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Bill - scan bill: %v", ErrScanRow, err)
	}

	return &bill, nil
}
