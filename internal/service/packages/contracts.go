package packages

import (
	"context"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

// PackageRepository интерфейс репозитория пакетов услуг
type PackageRepository interface {
	List(ctx context.Context) ([]*domain.Package, error)
	GetByNumber(ctx context.Context, packageNumber int64) (*domain.Package, error)
	Create(ctx context.Context, pkg *domain.Package) (*domain.Package, error)
	Update(ctx context.Context, pkg *domain.Package) error
	Delete(ctx context.Context, packageNumber int64) error
}

// ServiceRecordRepository интерфейс для проверки зависимых записей об услугах
type ServiceRecordRepository interface {
	CountByPackage(ctx context.Context, packageNumber int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
