package payments

import (
	"time"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	createPayment "github.com/m04kA/SMC-CarWashService/internal/usecase/create_payment"
	"github.com/m04kA/SMC-CarWashService/internal/validation"
)

// CreatePaymentRequest HTTP request model
type CreatePaymentRequest struct {
	RecordNumber int64   `json:"recordNumber"`
	AmountPaid   float64 `json:"amountPaid"`
	PaymentDate  string  `json:"paymentDate"` // "2025-03-15"
}

// Validate проверяет поля запроса создания платежа
func (r *CreatePaymentRequest) Validate() validation.Errors {
	var errs validation.Errors
	if r.RecordNumber <= 0 {
		errs.Add("recordNumber", "Record number is required")
	}
	validatePaymentFields(&errs, r.AmountPaid, r.PaymentDate)
	return errs
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Вызывается после Validate, дата гарантированно корректна
func (r *CreatePaymentRequest) ToUseCaseRequest() *createPayment.Request {
	date, _ := validation.ParseDate(r.PaymentDate)
	return &createPayment.Request{
		RecordNumber: r.RecordNumber,
		AmountPaid:   r.AmountPaid,
		PaymentDate:  date,
	}
}

// UpdatePaymentRequest HTTP request model
// Привязка платежа к услуге после создания не меняется
type UpdatePaymentRequest struct {
	AmountPaid  float64 `json:"amountPaid"`
	PaymentDate string  `json:"paymentDate"`
}

// Validate проверяет поля запроса обновления платежа
func (r *UpdatePaymentRequest) Validate() validation.Errors {
	var errs validation.Errors
	validatePaymentFields(&errs, r.AmountPaid, r.PaymentDate)
	return errs
}

// ToDomain конвертирует запрос в доменную модель
func (r *UpdatePaymentRequest) ToDomain(paymentNumber int64) *domain.Payment {
	date, _ := validation.ParseDate(r.PaymentDate)
	return &domain.Payment{
		PaymentNumber: paymentNumber,
		AmountPaid:    r.AmountPaid,
		PaymentDate:   date,
	}
}

func validatePaymentFields(errs *validation.Errors, amountPaid float64, paymentDate string) {
	if amountPaid < 0 {
		errs.Add("amountPaid", "Amount paid must be a positive number")
	}
	if _, err := validation.ParseDate(paymentDate); err != nil {
		errs.Add("paymentDate", "Payment date must be a valid date in YYYY-MM-DD format")
	}
}

// PaymentResponse HTTP response model с данными услуги, автомобиля и пакета
type PaymentResponse struct {
	PaymentNumber int64   `json:"paymentNumber"`
	AmountPaid    float64 `json:"amountPaid"`
	PaymentDate   string  `json:"paymentDate"`
	RecordNumber  int64   `json:"recordNumber"`

	ServiceDate *string `json:"serviceDate,omitempty"`
	PlateNumber *string `json:"plateNumber,omitempty"`

	CarType     *string `json:"carType,omitempty"`
	CarSize     *string `json:"carSize,omitempty"`
	DriverName  *string `json:"driverName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`

	PackageNumber      *int64   `json:"packageNumber,omitempty"`
	PackageName        *string  `json:"packageName,omitempty"`
	PackageDescription *string  `json:"packageDescription,omitempty"`
	PackagePrice       *float64 `json:"packagePrice,omitempty"`
}

// FromDomain конвертирует доменную модель в HTTP response
func FromDomain(p *domain.PaymentDetails) *PaymentResponse {
	return &PaymentResponse{
		PaymentNumber:      p.PaymentNumber,
		AmountPaid:         p.AmountPaid,
		PaymentDate:        p.PaymentDate.Format(domain.DateFormat),
		RecordNumber:       p.RecordNumber,
		ServiceDate:        formatDatePtr(p.ServiceDate),
		PlateNumber:        p.PlateNumber,
		CarType:            p.CarType,
		CarSize:            p.CarSize,
		DriverName:         p.DriverName,
		PhoneNumber:        p.PhoneNumber,
		PackageNumber:      p.PackageNumber,
		PackageName:        p.PackageName,
		PackageDescription: p.PackageDescription,
		PackagePrice:       p.PackagePrice,
	}
}

// FromDomainList конвертирует список доменных моделей в HTTP response
func FromDomainList(pays []*domain.PaymentDetails) []*PaymentResponse {
	out := make([]*PaymentResponse, 0, len(pays))
	for _, p := range pays {
		out = append(out, FromDomain(p))
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
