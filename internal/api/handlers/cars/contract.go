package cars

import (
	"context"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

// CarService интерфейс сервиса автомобилей
type CarService interface {
	List(ctx context.Context) ([]*domain.Car, error)
	Get(ctx context.Context, plateNumber string) (*domain.Car, error)
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) (*domain.Car, error)
	Delete(ctx context.Context, plateNumber string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
