package auth

import (
	"github.com/m04kA/SMC-CarWashService/internal/domain"
	"github.com/m04kA/SMC-CarWashService/internal/validation"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate проверяет поля запроса регистрации
func (r *RegisterRequest) Validate() validation.Errors {
	var errs validation.Errors
	if !validation.NonEmpty(r.Username) {
		errs.Add("username", "Username is required")
	} else if !validation.ValidUsername(r.Username) {
		errs.Add("username", "Username must contain only letters")
	}
	if !validation.ValidPassword(r.Password) {
		errs.Add("password", "Password must be at least 6 characters and contain a letter, a number and an uppercase letter")
	}
	return errs
}

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate проверяет поля запроса входа
func (r *LoginRequest) Validate() validation.Errors {
	var errs validation.Errors
	if !validation.NonEmpty(r.Username) {
		errs.Add("username", "Username is required")
	}
	if !validation.NonEmpty(r.Password) {
		errs.Add("password", "Password is required")
	}
	return errs
}

// RegisterResponse HTTP response model
type RegisterResponse struct {
	UserID int64 `json:"userId"`
}

// UserResponse публичное представление пользователя
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// StatusResponse состояние аутентификации текущего запроса
type StatusResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}

// FromUser конвертирует доменного пользователя в HTTP response
func FromUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
	}
}
