package payments

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда платеж не найден
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("payments service: internal error")
)
