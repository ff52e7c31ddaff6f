package reports

import "errors"

var (
	// ErrBillNotFound возвращается, когда полная цепочка
	// платеж-услуга-автомобиль-пакет для квитанции не найдена
	ErrBillNotFound = errors.New("bill not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reports service: internal error")
)
