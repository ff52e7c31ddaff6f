package services

import (
	"context"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	createService "github.com/m04kA/SMC-CarWashService/internal/usecase/create_service"
)

// ServiceRecordService интерфейс сервиса записей об услугах
type ServiceRecordService interface {
	List(ctx context.Context) ([]*domain.ServiceRecordDetails, error)
	Get(ctx context.Context, recordNumber int64) (*domain.ServiceRecordDetails, error)
	Update(ctx context.Context, rec *domain.ServiceRecord) (*domain.ServiceRecordDetails, error)
	Delete(ctx context.Context, recordNumber int64) error
}

// CreateServiceUseCase интерфейс use case регистрации услуги
type CreateServiceUseCase interface {
	Execute(ctx context.Context, req *createService.Request) (*domain.ServiceRecordDetails, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
