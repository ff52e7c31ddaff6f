package domain

import "time"

// ServiceRecord запись об оказанной услуге мойки
// Связывает автомобиль с пакетом услуг на конкретную дату
type ServiceRecord struct {
	RecordNumber  int64
	ServiceDate   time.Time
	PlateNumber   string
	PackageNumber int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ServiceRecordDetails запись об услуге, обогащенная данными автомобиля,
// пакета и платежа (left join - связанные поля могут отсутствовать)
type ServiceRecordDetails struct {
	RecordNumber  int64
	ServiceDate   time.Time
	PlateNumber   string
	PackageNumber int64

	CarType     *string
	CarSize     *string
	DriverName  *string
	PhoneNumber *string

	PackageName        *string
	PackageDescription *string
	PackagePrice       *float64

	PaymentNumber *int64
	AmountPaid    *float64
	PaymentDate   *time.Time
}
