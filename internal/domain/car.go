package domain

import "time"

// Car автомобиль клиента, идентифицируется номерным знаком
type Car struct {
	PlateNumber string
	CarType     string
	CarSize     string
	DriverName  string
	PhoneNumber string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
