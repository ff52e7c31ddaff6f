package domain

import "time"

// Payment платеж за оказанную услугу
// На одну запись об услуге допускается не более одного платежа
type Payment struct {
	PaymentNumber int64
	AmountPaid    float64
	PaymentDate   time.Time
	RecordNumber  int64
	CreatedAt     time.Time
}

// PaymentDetails платеж, обогащенный данными услуги, автомобиля и пакета
// (left join - связанные поля могут отсутствовать)
type PaymentDetails struct {
	PaymentNumber int64
	AmountPaid    float64
	PaymentDate   time.Time
	RecordNumber  int64

	ServiceDate *time.Time
	PlateNumber *string

	CarType     *string
	CarSize     *string
	DriverName  *string
	PhoneNumber *string

	PackageNumber      *int64
	PackageName        *string
	PackageDescription *string
	PackagePrice       *float64
}
