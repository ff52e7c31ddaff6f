package session

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

// Repository хранилище серверных сессий в PostgreSQL
// Истекшие сессии удаляются лениво при обращении - фоновых задач нет
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр хранилища сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Set сохраняет сессию
func (r *Repository) Set(ctx context.Context, s *domain.Session) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("sessions").
		Columns("id", "user_id", "username", "expires_at").
		Values(s.ID, s.UserID, s.Username, s.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Set - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Set - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Get возвращает сессию по идентификатору
// Истекшая сессия удаляется и считается отсутствующей
func (r *Repository) Get(ctx context.Context, id string) (*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"username",
		"expires_at",
	).
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Session
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.UserID,
		&s.Username,
		&s.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan session: %v", ErrScanRow, err)
	}

	if s.IsExpired(time.Now()) {
		_ = r.Destroy(ctx, id)
		return nil, ErrSessionNotFound
	}

	return &s, nil
}

// Destroy удаляет сессию
// Отсутствие сессии ошибкой не считается: logout идемпотентен
func (r *Repository) Destroy(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Destroy - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Destroy - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
