package packages

import (
	"context"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

// PackageService интерфейс сервиса пакетов услуг
type PackageService interface {
	List(ctx context.Context) ([]*domain.Package, error)
	Get(ctx context.Context, packageNumber int64) (*domain.Package, error)
	Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	Update(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	Delete(ctx context.Context, packageNumber int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
