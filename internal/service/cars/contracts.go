package cars

import (
	"context"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

// CarRepository интерфейс репозитория автомобилей
type CarRepository interface {
	List(ctx context.Context) ([]*domain.Car, error)
	GetByPlate(ctx context.Context, plateNumber string) (*domain.Car, error)
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, plateNumber string) error
}

// ServiceRecordRepository интерфейс для проверки зависимых записей об услугах
type ServiceRecordRepository interface {
	CountByPlate(ctx context.Context, plateNumber string) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
