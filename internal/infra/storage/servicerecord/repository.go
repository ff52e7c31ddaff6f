package servicerecord

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	"github.com/m04kA/SMC-CarWashService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarWashService/pkg/psqlbuilder"
)

// Колонки обогащенного представления услуги (left join)
var detailsColumns = []string{
	"sr.record_number",
	"sr.service_date",
	"sr.plate_number",
	"sr.package_number",
	"c.car_type",
	"c.car_size",
	"c.driver_name",
	"c.phone_number",
	"p.package_name",
	"p.package_description",
	"p.package_price",
	"pay.payment_number",
	"pay.amount_paid",
	"pay.payment_date",
}

// Repository репозиторий для работы с записями об услугах
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей об услугах
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListWithDetails возвращает все записи об услугах, обогащенные данными
// автомобиля, пакета и платежа
// Сортировка: сначала свежие (по дате услуги, затем по номеру записи)
func (r *Repository) ListWithDetails(ctx context.Context) ([]*domain.ServiceRecordDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsBuilder().
		OrderBy("sr.service_date DESC, sr.record_number DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithDetails - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanDetails(rows)
}

// GetDetails возвращает одну запись об услуге с обогащенными данными
func (r *Repository) GetDetails(ctx context.Context, recordNumber int64) (*domain.ServiceRecordDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsBuilder().
		Where(squirrel.Eq{"sr.record_number": recordNumber}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.ServiceRecordDetails
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.RecordNumber,
		&d.ServiceDate,
		&d.PlateNumber,
		&d.PackageNumber,
		&d.CarType,
		&d.CarSize,
		&d.DriverName,
		&d.PhoneNumber,
		&d.PackageName,
		&d.PackageDescription,
		&d.PackagePrice,
		&d.PaymentNumber,
		&d.AmountPaid,
		&d.PaymentDate,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - scan service record: %v", ErrScanRow, err)
	}

	return &d, nil
}

// GetByRecordNumber возвращает запись об услуге без связанных данных
func (r *Repository) GetByRecordNumber(ctx context.Context, recordNumber int64) (*domain.ServiceRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"record_number",
		"service_date",
		"plate_number",
		"package_number",
		"created_at",
		"updated_at",
	).
		From("service_records").
		Where(squirrel.Eq{"record_number": recordNumber}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRecordNumber - build select query: %v", ErrBuildQuery, err)
	}

	var rec domain.ServiceRecord
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rec.RecordNumber,
		&rec.ServiceDate,
		&rec.PlateNumber,
		&rec.PackageNumber,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRecordNumber - scan service record: %v", ErrScanRow, err)
	}

	return &rec, nil
}

// Exists проверяет существование записи об услуге
func (r *Repository) Exists(ctx context.Context, recordNumber int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("service_records").
		Where(squirrel.Eq{"record_number": recordNumber}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan result: %v", ErrScanRow, err)
	}

	return true, nil
}

// Create создает новую запись об услуге
// Номер записи генерируется базой данных
// Нарушение внешнего ключа (несуществующий автомобиль или пакет)
// возвращается как ErrReferenceNotFound
func (r *Repository) Create(ctx context.Context, rec *domain.ServiceRecord) (*domain.ServiceRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("service_records").
		Columns(
			"service_date",
			"plate_number",
			"package_number",
		).
		Values(
			rec.ServiceDate,
			rec.PlateNumber,
			rec.PackageNumber,
		).
		Suffix("RETURNING record_number, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rec.RecordNumber,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if isForeignKeyViolation(err) {
		return nil, ErrReferenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return rec, nil
}

// Update обновляет все изменяемые поля записи об услуге
// Возвращает ErrServiceNotFound, если запись не существует
func (r *Repository) Update(ctx context.Context, rec *domain.ServiceRecord) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("service_records").
		Set("service_date", rec.ServiceDate).
		Set("plate_number", rec.PlateNumber).
		Set("package_number", rec.PackageNumber).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"record_number": rec.RecordNumber}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if isForeignKeyViolation(err) {
		return ErrReferenceNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// Delete удаляет запись об услуге
// Проверка зависимых платежей выполняется на уровне сервиса
func (r *Repository) Delete(ctx context.Context, recordNumber int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("service_records").
		Where(squirrel.Eq{"record_number": recordNumber}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// CountByPlate возвращает количество записей об услугах для автомобиля
// Используется для защиты от удаления автомобиля с историей услуг
func (r *Repository) CountByPlate(ctx context.Context, plateNumber string) (int64, error) {
	return r.count(ctx, squirrel.Eq{"plate_number": plateNumber})
}

// CountByPackage возвращает количество записей об услугах для пакета
// Используется для защиты от удаления используемого пакета
func (r *Repository) CountByPackage(ctx context.Context, packageNumber int64) (int64, error) {
	return r.count(ctx, squirrel.Eq{"package_number": packageNumber})
}

func (r *Repository) count(ctx context.Context, where squirrel.Eq) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("service_records").
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: count - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: count - scan result: %v", ErrScanRow, err)
	}

	return count, nil
}

func detailsBuilder() squirrel.SelectBuilder {
	return psqlbuilder.Select(detailsColumns...).
		From("service_records sr").
		LeftJoin("cars c ON c.plate_number = sr.plate_number").
		LeftJoin("packages p ON p.package_number = sr.package_number").
		LeftJoin("payments pay ON pay.record_number = sr.record_number")
}

// scanDetails сканирует результаты запроса в слайс обогащенных записей
func scanDetails(rows *sql.Rows) ([]*domain.ServiceRecordDetails, error) {
	records := make([]*domain.ServiceRecordDetails, 0)

	for rows.Next() {
		var d domain.ServiceRecordDetails
		err := rows.Scan(
			&d.RecordNumber,
			&d.ServiceDate,
			&d.PlateNumber,
			&d.PackageNumber,
			&d.CarType,
			&d.CarSize,
			&d.DriverName,
			&d.PhoneNumber,
			&d.PackageName,
			&d.PackageDescription,
			&d.PackagePrice,
			&d.PaymentNumber,
			&d.AmountPaid,
			&d.PaymentDate,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanDetails - scan row: %v", ErrScanRow, err)
		}
		records = append(records, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDetails - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
