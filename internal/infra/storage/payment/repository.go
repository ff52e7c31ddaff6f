package payment

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

// Колонки обогащенного представления платежа (left join)
var detailsColumns = []string{
	"pay.payment_number",
	"pay.amount_paid",
	"pay.payment_date",
	"pay.record_number",
	"sr.service_date",
	"sr.plate_number",
	"c.car_type",
	"c.car_size",
	"c.driver_name",
	"c.phone_number",
	"p.package_number",
	"p.package_name",
	"p.package_description",
	"p.package_price",
}

// Repository репозиторий для работы с платежами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListWithDetails возвращает все платежи, обогащенные данными услуги,
// автомобиля и пакета
// Сортировка: сначала свежие (по дате платежа, затем по номеру платежа)
func (r *Repository) ListWithDetails(ctx context.Context) ([]*domain.PaymentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsBuilder().
		OrderBy("pay.payment_date DESC, pay.payment_number DESC").
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

// GetDetails возвращает один платеж с обогащенными данными
func (r *Repository) GetDetails(ctx context.Context, paymentNumber int64) (*domain.PaymentDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsBuilder().
		Where(squirrel.Eq{"pay.payment_number": paymentNumber}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.PaymentDetails
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.PaymentNumber,
		&d.AmountPaid,
		&d.PaymentDate,
		&d.RecordNumber,
		&d.ServiceDate,
		&d.PlateNumber,
		&d.CarType,
		&d.CarSize,
		&d.DriverName,
		&d.PhoneNumber,
		&d.PackageNumber,
		&d.PackageName,
		&d.PackageDescription,
		&d.PackagePrice,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetails - scan payment: %v", ErrScanRow, err)
	}

	return &d, nil
}

// GetByNumber возвращает платеж без связанных данных
func (r *Repository) GetByNumber(ctx context.Context, paymentNumber int64) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"payment_number",
		"amount_paid",
		"payment_date",
		"record_number",
		"created_at",
	).
		From("payments").
		Where(squirrel.Eq{"payment_number": paymentNumber}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Payment
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.PaymentNumber,
		&p.AmountPaid,
		&p.PaymentDate,
		&p.RecordNumber,
		&p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - scan payment: %v", ErrScanRow, err)
	}

	return &p, nil
}

// ExistsByRecord проверяет, есть ли уже платеж для записи об услуге
func (r *Repository) ExistsByRecord(ctx context.Context, recordNumber int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("payments").
		Where(squirrel.Eq{"record_number": recordNumber}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByRecord - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByRecord - scan result: %v", ErrScanRow, err)
	}

	return true, nil
}

// CountByRecord возвращает количество платежей для записи об услуге
// Используется для защиты от удаления услуги с платежами
func (r *Repository) CountByRecord(ctx context.Context, recordNumber int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("payments").
		Where(squirrel.Eq{"record_number": recordNumber}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByRecord - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByRecord - scan result: %v", ErrScanRow, err)
	}

	return count, nil
}

// Create создает новый платеж
// Уникальный индекс на record_number - авторитетная защита от двойного
// платежа: нарушение возвращается как ErrPaymentAlreadyExists даже если
// предварительная проверка прошла
func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"amount_paid",
			"payment_date",
			"record_number",
		).
		Values(
			p.AmountPaid,
			p.PaymentDate,
			p.RecordNumber,
		).
		Suffix("RETURNING payment_number, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.PaymentNumber, &p.CreatedAt)
	if isUniqueViolation(err) {
		return nil, ErrPaymentAlreadyExists
	}
	if isForeignKeyViolation(err) {
		return nil, ErrReferenceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return p, nil
}

// Update обновляет сумму и дату платежа
// Возвращает ErrPaymentNotFound, если платеж не существует
func (r *Repository) Update(ctx context.Context, p *domain.Payment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payments").
		Set("amount_paid", p.AmountPaid).
		Set("payment_date", p.PaymentDate).
		Where(squirrel.Eq{"payment_number": p.PaymentNumber}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

// Delete удаляет платеж
func (r *Repository) Delete(ctx context.Context, paymentNumber int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("payments").
		Where(squirrel.Eq{"payment_number": paymentNumber}).
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
		return ErrPaymentNotFound
	}

	return nil
}

func detailsBuilder() squirrel.SelectBuilder {
	return psqlbuilder.Select(detailsColumns...).
		From("payments pay").
		LeftJoin("service_records sr ON sr.record_number = pay.record_number").
		LeftJoin("cars c ON c.plate_number = sr.plate_number").
		LeftJoin("packages p ON p.package_number = sr.package_number")
}

// scanDetails сканирует результаты запроса в слайс обогащенных платежей
func scanDetails(rows *sql.Rows) ([]*domain.PaymentDetails, error) {
	payments := make([]*domain.PaymentDetails, 0)

	for rows.Next() {
		var d domain.PaymentDetails
		err := rows.Scan(
			&d.PaymentNumber,
			&d.AmountPaid,
			&d.PaymentDate,
			&d.RecordNumber,
			&d.ServiceDate,
			&d.PlateNumber,
			&d.CarType,
			&d.CarSize,
			&d.DriverName,
			&d.PhoneNumber,
			&d.PackageNumber,
			&d.PackageName,
			&d.PackageDescription,
			&d.PackagePrice,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanDetails - scan row: %v", ErrScanRow, err)
		}
		payments = append(payments, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDetails - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}
