package create_service

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль с указанным номером не существует
	ErrCarNotFound = errors.New("create_service: car not found")

	// ErrPackageNotFound возвращается, когда пакет услуг не существует
	ErrPackageNotFound = errors.New("create_service: package not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_service: internal error")
)
