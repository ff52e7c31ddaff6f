package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	authService "github.com/m04kA/SMC-CarWashService/internal/service/auth"
)

type fakeAuthService struct {
	registered map[string]string
	sessions   map[string]*domain.Session
}

func newFakeAuthService() *fakeAuthService {
	return &fakeAuthService{
		registered: map[string]string{},
		sessions:   map[string]*domain.Session{},
	}
}

func (f *fakeAuthService) Register(_ context.Context, username, password string) (*domain.User, error) {
	if _, ok := f.registered[username]; ok {
		return nil, authService.ErrUsernameTaken
	}
	f.registered[username] = password
	return &domain.User{ID: int64(len(f.registered)), Username: username}, nil
}

func (f *fakeAuthService) Login(_ context.Context, username, password string) (*domain.Session, *domain.User, error) {
	stored, ok := f.registered[username]
	if !ok || stored != password {
		return nil, nil, authService.ErrInvalidCredentials
	}
	sess := &domain.Session{
		ID:        "session-" + username,
		UserID:    1,
		Username:  username,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	f.sessions[sess.ID] = sess
	return sess, &domain.User{ID: 1, Username: username}, nil
}

func (f *fakeAuthService) Logout(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

func (f *fakeAuthService) Identify(_ context.Context, sessionID string) (*domain.Session, error) {
	sess, ok := f.sessions[sessionID]
	if !ok {
		return nil, authService.ErrSessionNotFound
	}
	return sess, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestHandler() (*Handler, *fakeAuthService) {
	svc := newFakeAuthService()
	h := NewHandler(svc, CookieConfig{Name: "cwsms_session"}, nopLogger{})
	return h, svc
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRegister(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"username":"admin","password":"Secret1"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "User registered successfully", body["message"])
}

func TestRegister_ValidationErrors(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"username":"admin1","password":"short"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation failed", body["message"])

	// Оба поля попадают в список ошибок
	errs, ok := body["errors"].([]interface{})
	require.True(t, ok)
	assert.Len(t, errs, 2)
}

func TestRegister_UsernameTaken(t *testing.T) {
	h, svc := newTestHandler()
	svc.registered["admin"] = "Secret1"

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"username":"admin","password":"Secret1"}`))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin_SetsSessionCookie(t *testing.T) {
	h, svc := newTestHandler()
	svc.registered["admin"] = "Secret1"

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"Secret1"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "cwsms_session", cookies[0].Name)
	assert.Equal(t, "session-admin", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h, svc := newTestHandler()
	svc.registered["admin"] = "Secret1"

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"admin","password":"Wrong1A"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid username or password", body["message"])
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogout_ClearsCookie(t *testing.T) {
	h, svc := newTestHandler()
	svc.sessions["sid"] = &domain.Session{ID: "sid", UserID: 1, Username: "admin"}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "cwsms_session", Value: "sid"})
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, svc.sessions)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestStatus(t *testing.T) {
	h, svc := newTestHandler()
	svc.sessions["sid"] = &domain.Session{
		ID:        "sid",
		UserID:    1,
		Username:  "admin",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	// Аутентифицированный запрос
	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	req.AddCookie(&http.Cookie{Name: "cwsms_session", Value: "sid"})
	rec := httptest.NewRecorder()

	h.Status(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["authenticated"])

	// Анонимный запрос тоже получает 200
	rec = httptest.NewRecorder()
	h.Status(rec, httptest.NewRequest(http.MethodGet, "/api/auth/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, false, data["authenticated"])
}
