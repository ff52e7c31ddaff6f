package auth

import "errors"

var (
	// ErrUsernameTaken возвращается при регистрации занятого имени
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials возвращается при неверном имени или пароле
	// Намеренно не различает, какой из факторов неверен
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth service: internal error")
)
