package create_payment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда оплачиваемая услуга не существует
	ErrServiceNotFound = errors.New("create_payment: service not found")

	// ErrAlreadyPaid возвращается, когда услуга уже оплачена
	ErrAlreadyPaid = errors.New("create_payment: service already has a payment")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_payment: internal error")
)
