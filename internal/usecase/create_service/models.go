package create_service

import "time"

// Request модель запроса на регистрацию оказанной услуги
type Request struct {
	ServiceDate   time.Time // Дата оказания услуги (без времени)
	PlateNumber   string    // Номерной знак автомобиля
	PackageNumber int64     // Номер пакета услуг
}
