package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/m04kA/SMC-CarWashService/internal/validation"
)

// Response единый конверт всех ответов API
type Response struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message,omitempty"`
	Data    interface{}             `json:"data,omitempty"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// DecodeJSON декодирует тело запроса в указанную структуру
// Неизвестные поля игнорируются, лишние данные после объекта - ошибка
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("decode request body: unexpected data after JSON object")
	}
	return nil
}

// RespondData отправляет успешный ответ с данными
func RespondData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, Response{Success: true, Data: data})
}

// RespondCreated отправляет ответ 201 с сообщением и данными
func RespondCreated(w http.ResponseWriter, message string, data interface{}) {
	writeJSON(w, http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

// RespondMessage отправляет успешный ответ с сообщением без данных
func RespondMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Success: true, Message: message})
}

// RespondMessageData отправляет успешный ответ с сообщением и данными
func RespondMessageData(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, Response{Success: true, Message: message, Data: data})
}

// RespondError отправляет ответ с ошибкой и произвольным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Success: false, Message: message})
}

// RespondBadRequest отправляет ответ 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondValidationErrors отправляет ответ 400 со списком ошибок по полям
func RespondValidationErrors(w http.ResponseWriter, message string, errs validation.Errors) {
	writeJSON(w, http.StatusBadRequest, Response{Success: false, Message: message, Errors: errs})
}

// RespondUnauthorized отправляет ответ 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondNotFound отправляет ответ 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict отправляет ответ 409
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError отправляет ответ 500 без деталей ошибки
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "Internal server error")
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Ошибку кодирования здесь уже не вернуть клиенту, заголовки отправлены
	_ = json.NewEncoder(w).Encode(resp)
}
