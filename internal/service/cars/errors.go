package cars

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("car not found")

	// ErrCarAlreadyExists возвращается при создании автомобиля с занятым номером
	ErrCarAlreadyExists = errors.New("car with this plate number already exists")

	// ErrCarHasServices возвращается при попытке удалить автомобиль,
	// на который ссылаются записи об услугах
	ErrCarHasServices = errors.New("car has service records")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cars service: internal error")
)
