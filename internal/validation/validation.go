package validation

import (
	"regexp"
	"time"
	"unicode"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
)

// FieldError ошибка валидации одного поля запроса
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors накопитель ошибок валидации
// Проверки уровня запроса не останавливаются на первой ошибке:
// клиент получает полный список нарушенных полей
type Errors []FieldError

// Add добавляет ошибку поля
func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// OK возвращает true, если ошибок нет
func (e Errors) OK() bool {
	return len(e) == 0
}

var usernameRegexp = regexp.MustCompile(`^[A-Za-z]+$`)

// ValidUsername проверяет имя пользователя: только буквы, непустое
// Это же гарантирует "начинается с буквы" и "не состоит из одних цифр"
func ValidUsername(username string) bool {
	return usernameRegexp.MatchString(username)
}

// ValidPassword проверяет пароль: минимум 6 символов,
// хотя бы одна буква, одна цифра и одна заглавная буква
func ValidPassword(password string) bool {
	if len(password) < domain.MinPasswordLength {
		return false
	}

	var hasLetter, hasDigit, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
			hasLetter = true
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLetter && hasDigit && hasUpper
}

// ParseDate разбирает дату в строгом формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}

// NonEmpty проверяет, что строка непуста
func NonEmpty(s string) bool {
	return s != ""
}
