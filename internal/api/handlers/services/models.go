package services

import (
	"time"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	createService "github.com/m04kA/SMC-CarWashService/internal/usecase/create_service"
	"github.com/m04kA/SMC-CarWashService/internal/validation"
)

// ServiceRequest HTTP request model, общий для создания и обновления
type ServiceRequest struct {
	ServiceDate   string `json:"serviceDate"` // "2025-03-15"
	PlateNumber   string `json:"plateNumber"`
	PackageNumber int64  `json:"packageNumber"`
}

// Validate проверяет поля запроса
func (r *ServiceRequest) Validate() validation.Errors {
	var errs validation.Errors
	if _, err := validation.ParseDate(r.ServiceDate); err != nil {
		errs.Add("serviceDate", "Service date must be a valid date in YYYY-MM-DD format")
	}
	if !validation.NonEmpty(r.PlateNumber) {
		errs.Add("plateNumber", "Plate number is required")
	}
	if r.PackageNumber <= 0 {
		errs.Add("packageNumber", "Package number is required")
	}
	return errs
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Вызывается после Validate, дата гарантированно корректна
func (r *ServiceRequest) ToUseCaseRequest() *createService.Request {
	date, _ := validation.ParseDate(r.ServiceDate)
	return &createService.Request{
		ServiceDate:   date,
		PlateNumber:   r.PlateNumber,
		PackageNumber: r.PackageNumber,
	}
}

// ToDomain конвертирует запрос в доменную модель для обновления
func (r *ServiceRequest) ToDomain(recordNumber int64) *domain.ServiceRecord {
	date, _ := validation.ParseDate(r.ServiceDate)
	return &domain.ServiceRecord{
		RecordNumber:  recordNumber,
		ServiceDate:   date,
		PlateNumber:   r.PlateNumber,
		PackageNumber: r.PackageNumber,
	}
}

// ServiceResponse HTTP response model с данными автомобиля, пакета и платежа
type ServiceResponse struct {
	RecordNumber  int64  `json:"recordNumber"`
	ServiceDate   string `json:"serviceDate"`
	PlateNumber   string `json:"plateNumber"`
	PackageNumber int64  `json:"packageNumber"`

	CarType     *string `json:"carType,omitempty"`
	CarSize     *string `json:"carSize,omitempty"`
	DriverName  *string `json:"driverName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`

	PackageName        *string  `json:"packageName,omitempty"`
	PackageDescription *string  `json:"packageDescription,omitempty"`
	PackagePrice       *float64 `json:"packagePrice,omitempty"`

	PaymentNumber *int64   `json:"paymentNumber,omitempty"`
	AmountPaid    *float64 `json:"amountPaid,omitempty"`
	PaymentDate   *string  `json:"paymentDate,omitempty"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(rec *domain.ServiceRecordDetails) *ServiceResponse {
	return &ServiceResponse{
		RecordNumber:       rec.RecordNumber,
		ServiceDate:        rec.ServiceDate.Format(domain.DateFormat),
		PlateNumber:        rec.PlateNumber,
		PackageNumber:      rec.PackageNumber,
		CarType:            rec.CarType,
		CarSize:            rec.CarSize,
		DriverName:         rec.DriverName,
		PhoneNumber:        rec.PhoneNumber,
		PackageName:        rec.PackageName,
		PackageDescription: rec.PackageDescription,
		PackagePrice:       rec.PackagePrice,
		PaymentNumber:      rec.PaymentNumber,
		AmountPaid:         rec.AmountPaid,
		PaymentDate:        formatDatePtr(rec.PaymentDate),
	}
}

// FromDomainList конвертирует список доменных моделей в HTTP response
func FromDomainList(recs []*domain.ServiceRecordDetails) []*ServiceResponse {
	out := make([]*ServiceResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, FromDomain(rec))
	}
	return out
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateFormat)
	return &s
}
