package packages

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

// Repository репозиторий для работы с пакетами услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пакетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все пакеты, упорядоченные по номеру
func (r *Repository) List(ctx context.Context) ([]*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"package_number",
		"package_name",
		"package_description",
		"package_price",
		"created_at",
		"updated_at",
	).
		From("packages").
		OrderBy("package_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanPackages(rows)
}

// GetByNumber возвращает пакет по номеру
func (r *Repository) GetByNumber(ctx context.Context, packageNumber int64) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"package_number",
		"package_name",
		"package_description",
		"package_price",
		"created_at",
		"updated_at",
	).
		From("packages").
		Where(squirrel.Eq{"package_number": packageNumber}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	var pkg domain.Package
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pkg.PackageNumber,
		&pkg.PackageName,
		&pkg.PackageDescription,
		&pkg.PackagePrice,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - scan package: %v", ErrScanRow, err)
	}

	return &pkg, nil
}

// Exists проверяет существование пакета с данным номером
func (r *Repository) Exists(ctx context.Context, packageNumber int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("packages").
		Where(squirrel.Eq{"package_number": packageNumber}).
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

// Create создает новый пакет услуг
// Номер пакета генерируется базой данных
func (r *Repository) Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("packages").
		Columns(
			"package_name",
			"package_description",
			"package_price",
		).
		Values(
			pkg.PackageName,
			pkg.PackageDescription,
			pkg.PackagePrice,
		).
		Suffix("RETURNING package_number, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pkg.PackageNumber,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return pkg, nil
}

// Update обновляет все изменяемые поля пакета
// Возвращает ErrPackageNotFound, если пакет не существует
func (r *Repository) Update(ctx context.Context, pkg *domain.Package) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("packages").
		Set("package_name", pkg.PackageName).
		Set("package_description", pkg.PackageDescription).
		Set("package_price", pkg.PackagePrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"package_number": pkg.PackageNumber}).
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
		return ErrPackageNotFound
	}

	return nil
}

// Delete удаляет пакет по номеру
// Проверка зависимых записей об услугах выполняется на уровне сервиса
func (r *Repository) Delete(ctx context.Context, packageNumber int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("packages").
		Where(squirrel.Eq{"package_number": packageNumber}).
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
		return ErrPackageNotFound
	}

	return nil
}

// scanPackages сканирует результаты запроса в слайс пакетов
func scanPackages(rows *sql.Rows) ([]*domain.Package, error) {
	pkgs := make([]*domain.Package, 0)

	for rows.Next() {
		var pkg domain.Package
		err := rows.Scan(
			&pkg.PackageNumber,
			&pkg.PackageName,
			&pkg.PackageDescription,
			&pkg.PackagePrice,
			&pkg.CreatedAt,
			&pkg.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanPackages - scan row: %v", ErrScanRow, err)
		}
		pkgs = append(pkgs, &pkg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPackages - rows error: %v", ErrScanRow, err)
	}

	return pkgs, nil
}
