package cars

import (
	"time"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	"github.com/m04kA/SMC-CarWashService/internal/validation"
)

// CreateCarRequest HTTP request model
type CreateCarRequest struct {
	PlateNumber string `json:"plateNumber"`
	CarType     string `json:"carType"`
	CarSize     string `json:"carSize"`
	DriverName  string `json:"driverName"`
	PhoneNumber string `json:"phoneNumber"`
}

// Validate проверяет поля запроса создания автомобиля
func (r *CreateCarRequest) Validate() validation.Errors {
	var errs validation.Errors
	if !validation.NonEmpty(r.PlateNumber) {
		errs.Add("plateNumber", "Plate number is required")
	}
	validateCarFields(&errs, r.CarType, r.CarSize, r.DriverName, r.PhoneNumber)
	return errs
}

// ToDomain конвертирует запрос в доменную модель
func (r *CreateCarRequest) ToDomain() *domain.Car {
	return &domain.Car{
		PlateNumber: r.PlateNumber,
		CarType:     r.CarType,
		CarSize:     r.CarSize,
		DriverName:  r.DriverName,
		PhoneNumber: r.PhoneNumber,
	}
}

// UpdateCarRequest HTTP request model, номерной знак берется из URL
type UpdateCarRequest struct {
	CarType     string `json:"carType"`
	CarSize     string `json:"carSize"`
	DriverName  string `json:"driverName"`
	PhoneNumber string `json:"phoneNumber"`
}

// Validate проверяет поля запроса обновления автомобиля
func (r *UpdateCarRequest) Validate() validation.Errors {
	var errs validation.Errors
	validateCarFields(&errs, r.CarType, r.CarSize, r.DriverName, r.PhoneNumber)
	return errs
}

// ToDomain конвертирует запрос в доменную модель
func (r *UpdateCarRequest) ToDomain(plateNumber string) *domain.Car {
	return &domain.Car{
		PlateNumber: plateNumber,
		CarType:     r.CarType,
		CarSize:     r.CarSize,
		DriverName:  r.DriverName,
		PhoneNumber: r.PhoneNumber,
	}
}

func validateCarFields(errs *validation.Errors, carType, carSize, driverName, phoneNumber string) {
	if !validation.NonEmpty(carType) {
		errs.Add("carType", "Car type is required")
	}
	if !validation.NonEmpty(carSize) {
		errs.Add("carSize", "Car size is required")
	}
	if !validation.NonEmpty(driverName) {
		errs.Add("driverName", "Driver name is required")
	}
	if !validation.NonEmpty(phoneNumber) {
		errs.Add("phoneNumber", "Phone number is required")
	}
}

// CarResponse HTTP response model
type CarResponse struct {
	PlateNumber string `json:"plateNumber"`
	CarType     string `json:"carType"`
	CarSize     string `json:"carSize"`
	DriverName  string `json:"driverName"`
	PhoneNumber string `json:"phoneNumber"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(car *domain.Car) *CarResponse {
	return &CarResponse{
		PlateNumber: car.PlateNumber,
		CarType:     car.CarType,
		CarSize:     car.CarSize,
		DriverName:  car.DriverName,
		PhoneNumber: car.PhoneNumber,
		CreatedAt:   car.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   car.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainList конвертирует список доменных моделей в HTTP response
func FromDomainList(cars []*domain.Car) []*CarResponse {
	out := make([]*CarResponse, 0, len(cars))
	for _, car := range cars {
		out = append(out, FromDomain(car))
	}
	return out
}
