package servicerecords

import "errors"

var (
	// ErrServiceNotFound возвращается, когда запись об услуге не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrReferenceNotFound возвращается, когда автомобиль или пакет,
	// указанные в записи, не существуют
	ErrReferenceNotFound = errors.New("referenced car or package not found")

	// ErrServiceHasPayment возвращается при попытке удалить услугу,
	// на которую ссылается платеж
	ErrServiceHasPayment = errors.New("service has a payment")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("servicerecords service: internal error")
)
