package auth

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarWashService/internal/api/handlers"
	authService "github.com/m04kA/SMC-CarWashService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgValidationFailed   = "Validation failed"
	msgUsernameTaken      = "Username already exists"
	msgInvalidCredentials = "Invalid username or password"
	msgRegistered         = "User registered successfully"
	msgLoginSuccessful    = "Login successful"
	msgLogoutSuccessful   = "Logout successful"
)

// CookieConfig параметры сессионной cookie
type CookieConfig struct {
	Name   string
	Secure bool
}

type Handler struct {
	service AuthService
	cookie  CookieConfig
	logger  Logger
}

func NewHandler(service AuthService, cookie CookieConfig, logger Logger) *Handler {
	return &Handler{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}

// Register POST /api/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := req.Validate(); !errs.OK() {
		h.logger.Warn("POST /auth/register - Validation failed for user %q", req.Username)
		handlers.RespondValidationErrors(w, msgValidationFailed, errs)
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrUsernameTaken):
			h.logger.Warn("POST /auth/register - Username %q already exists", req.Username)
			handlers.RespondConflict(w, msgUsernameTaken)

		default:
			h.logger.Error("POST /auth/register - Failed to register user %q: %v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered: user_id=%d", user.ID)
	handlers.RespondCreated(w, msgRegistered, RegisterResponse{UserID: user.ID})
}

// Login POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := req.Validate(); !errs.OK() {
		h.logger.Warn("POST /auth/login - Validation failed for user %q", req.Username)
		handlers.RespondValidationErrors(w, msgValidationFailed, errs)
		return
	}

	sess, user, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials for user %q", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Failed to login user %q: %v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /auth/login - User logged in: user_id=%d", user.ID)
	handlers.RespondMessageData(w, http.StatusOK, msgLoginSuccessful, FromUser(user))
}

// Logout POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookie.Name); err == nil {
		if err := h.service.Logout(r.Context(), cookie.Value); err != nil {
			h.logger.Error("POST /auth/logout - Failed to destroy session: %v", err)
			handlers.RespondInternalError(w)
			return
		}
	}

	// Сбрасываем cookie независимо от того, была ли сессия
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /auth/logout - Session destroyed")
	handlers.RespondMessage(w, http.StatusOK, msgLogoutSuccessful)
}

// Status GET /api/auth/status
// Единственный маршрут, отвечающий 200 и аутентифицированным, и анонимным
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.cookie.Name)
	if err != nil {
		handlers.RespondData(w, http.StatusOK, StatusResponse{Authenticated: false})
		return
	}

	sess, err := h.service.Identify(r.Context(), cookie.Value)
	if err != nil {
		if !errors.Is(err, authService.ErrSessionNotFound) {
			h.logger.Error("GET /auth/status - Failed to identify session: %v", err)
			handlers.RespondInternalError(w)
			return
		}
		handlers.RespondData(w, http.StatusOK, StatusResponse{Authenticated: false})
		return
	}

	handlers.RespondData(w, http.StatusOK, StatusResponse{
		Authenticated: true,
		User: &UserResponse{
			ID:       sess.UserID,
			Username: sess.Username,
		},
	})
}
