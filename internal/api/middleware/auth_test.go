package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	"github.com/m04kA/SMC-CarWashService/internal/service/auth"
)

type fakeIdentifier struct {
	sessions map[string]*domain.Session
}

func (f *fakeIdentifier) Identify(_ context.Context, sessionID string) (*domain.Session, error) {
	sess, ok := f.sessions[sessionID]
	if !ok {
		return nil, auth.ErrSessionNotFound
	}
	return sess, nil
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newAuthMiddleware(sessions map[string]*domain.Session) *Auth {
	return NewAuth(&fakeIdentifier{sessions: sessions}, "cwsms_session", nopLogger{})
}

func TestMiddleware_NoCookie(t *testing.T) {
	mw := newAuthMiddleware(nil)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	mw.Middleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cars", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Authentication required", body["message"])
}

func TestMiddleware_UnknownSession(t *testing.T) {
	mw := newAuthMiddleware(map[string]*domain.Session{})

	req := httptest.NewRequest(http.MethodGet, "/api/cars", nil)
	req.AddCookie(&http.Cookie{Name: "cwsms_session", Value: "stale"})
	rec := httptest.NewRecorder()

	mw.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next handler must not be called")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_ValidSession(t *testing.T) {
	sess := &domain.Session{
		ID:        "sid",
		UserID:    42,
		Username:  "admin",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	mw := newAuthMiddleware(map[string]*domain.Session{"sid": sess})

	var gotSession *domain.Session
	var gotUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := GetSession(r.Context())
		require.True(t, ok)
		gotSession = got

		id, ok := GetUserID(r.Context())
		require.True(t, ok)
		gotUserID = id
	})

	req := httptest.NewRequest(http.MethodGet, "/api/cars", nil)
	req.AddCookie(&http.Cookie{Name: "cwsms_session", Value: "sid"})
	rec := httptest.NewRecorder()

	mw.Middleware(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sess, gotSession)
	assert.Equal(t, int64(42), gotUserID)
}

func TestGetSession_EmptyContext(t *testing.T) {
	_, ok := GetSession(context.Background())
	assert.False(t, ok)

	_, ok = GetUserID(context.Background())
	assert.False(t, ok)
}
