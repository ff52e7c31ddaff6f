package packages

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет услуг не найден
	ErrPackageNotFound = errors.New("package not found")

	// ErrPackageHasServices возвращается при попытке удалить пакет,
	// на который ссылаются записи об услугах
	ErrPackageHasServices = errors.New("package has service records")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("packages service: internal error")
)
