package bill

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

// BillResponse HTTP response model квитанции
type BillResponse struct {
	BillNumber string         `json:"billNumber"`
	Date       string         `json:"date"`
	Car        CarSection     `json:"car"`
	Service    ServiceSection `json:"service"`
	Payment    PaymentSection `json:"payment"`
}

// CarSection данные автомобиля в квитанции
type CarSection struct {
	PlateNumber string `json:"plateNumber"`
	Type        string `json:"type"`
	Size        string `json:"size"`
	Driver      string `json:"driver"`
	Phone       string `json:"phone"`
}

// ServiceSection данные услуги в квитанции
type ServiceSection struct {
	RecordNumber       int64   `json:"recordNumber"`
	ServiceDate        string  `json:"serviceDate"`
	PackageName        string  `json:"packageName"`
	PackageDescription string  `json:"packageDescription"`
	PackagePrice       float64 `json:"packagePrice"`
}

// PaymentSection данные платежа в квитанции
type PaymentSection struct {
	PaymentNumber int64   `json:"paymentNumber"`
	AmountPaid    float64 `json:"amountPaid"`
	PaymentDate   string  `json:"paymentDate"`
}

// FromDomain конвертирует доменную модель в HTTP response
// issuedAt - дата выдачи квитанции (обычно текущий день)
func FromDomain(b *domain.Bill, issuedAt time.Time) *BillResponse {
	return &BillResponse{
		BillNumber: fmt.Sprintf("BILL-%d", b.PaymentNumber),
		Date:       issuedAt.Format(domain.DateFormat),
		Car: CarSection{
			PlateNumber: b.PlateNumber,
			Type:        b.CarType,
			Size:        b.CarSize,
			Driver:      b.DriverName,
			Phone:       b.PhoneNumber,
		},
		Service: ServiceSection{
			RecordNumber:       b.RecordNumber,
			ServiceDate:        b.ServiceDate.Format(domain.DateFormat),
			PackageName:        b.PackageName,
			PackageDescription: b.PackageDescription,
			PackagePrice:       b.PackagePrice,
		},
		Payment: PaymentSection{
			PaymentNumber: b.PaymentNumber,
			AmountPaid:    b.AmountPaid,
			PaymentDate:   b.PaymentDate.Format(domain.DateFormat),
		},
	}
}
