package car

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

// Repository репозиторий для работы с автомобилями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все автомобили, упорядоченные по номерному знаку
func (r *Repository) List(ctx context.Context) ([]*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"plate_number",
		"car_type",
		"car_size",
		"driver_name",
		"phone_number",
		"created_at",
		"updated_at",
	).
		From("cars").
		OrderBy("plate_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCars(rows)
}

// GetByPlate возвращает автомобиль по номерному знаку
func (r *Repository) GetByPlate(ctx context.Context, plateNumber string) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"plate_number",
		"car_type",
		"car_size",
		"driver_name",
		"phone_number",
		"created_at",
		"updated_at",
	).
		From("cars").
		Where(squirrel.Eq{"plate_number": plateNumber}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPlate - build select query: %v", ErrBuildQuery, err)
	}

	var car domain.Car
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&car.PlateNumber,
		&car.CarType,
		&car.CarSize,
		&car.DriverName,
		&car.PhoneNumber,
		&car.CreatedAt,
		&car.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPlate - scan car: %v", ErrScanRow, err)
	}

	return &car, nil
}

// Exists проверяет существование автомобиля с данным номером
func (r *Repository) Exists(ctx context.Context, plateNumber string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("cars").
		Where(squirrel.Eq{"plate_number": plateNumber}).
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

// Create создает новый автомобиль
// Возвращает ErrCarAlreadyExists, если номерной знак уже занят
func (r *Repository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cars").
		Columns(
			"plate_number",
			"car_type",
			"car_size",
			"driver_name",
			"phone_number",
		).
		Values(
			car.PlateNumber,
			car.CarType,
			car.CarSize,
			car.DriverName,
			car.PhoneNumber,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&car.CreatedAt, &car.UpdatedAt)
	if isUniqueViolation(err) {
		return nil, ErrCarAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return car, nil
}

// Update обновляет все изменяемые поля автомобиля
// Возвращает ErrCarNotFound, если автомобиль не существует
func (r *Repository) Update(ctx context.Context, car *domain.Car) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cars").
		Set("car_type", car.CarType).
		Set("car_size", car.CarSize).
		Set("driver_name", car.DriverName).
		Set("phone_number", car.PhoneNumber).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"plate_number": car.PlateNumber}).
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
		return ErrCarNotFound
	}

	return nil
}

// Delete удаляет автомобиль по номерному знаку
// Проверка зависимых записей об услугах выполняется на уровне сервиса
func (r *Repository) Delete(ctx context.Context, plateNumber string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("cars").
		Where(squirrel.Eq{"plate_number": plateNumber}).
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
		return ErrCarNotFound
	}

	return nil
}

// scanCars сканирует результаты запроса в слайс автомобилей
func scanCars(rows *sql.Rows) ([]*domain.Car, error) {
	cars := make([]*domain.Car, 0)

	for rows.Next() {
		var car domain.Car
		err := rows.Scan(
			&car.PlateNumber,
			&car.CarType,
			&car.CarSize,
			&car.DriverName,
			&car.PhoneNumber,
			&car.CreatedAt,
			&car.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanCars - scan row: %v", ErrScanRow, err)
		}
		cars = append(cars, &car)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCars - rows error: %v", ErrScanRow, err)
	}

	return cars, nil
}
