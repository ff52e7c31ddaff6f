package create_payment

import "time"

// Request модель запроса на регистрацию платежа за услугу
type Request struct {
	RecordNumber int64     // Номер оплачиваемой записи об услуге
	AmountPaid   float64   // Уплаченная сумма
	PaymentDate  time.Time // Дата платежа (без времени)
}
