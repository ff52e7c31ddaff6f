package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/session"
	userRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/user"
)

type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.users[u.Username]; ok {
		return nil, userRepo.ErrUserAlreadyExists
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.Username] = u
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type fakeSessionStore struct {
	sessions map[string]*domain.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*domain.Session{}}
}

func (s *fakeSessionStore) Set(_ context.Context, sess *domain.Session) error {
	s.sessions[sess.ID] = sess
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	sess, ok := s.sessions[id]
	if !ok || sess.IsExpired(time.Now()) {
		return nil, sessionRepo.ErrSessionNotFound
	}
	return sess, nil
}

func (s *fakeSessionStore) Destroy(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(users *fakeUserRepo, sessions *fakeSessionStore) *Service {
	return NewService(users, sessions, 24*time.Hour, nopLogger{})
}

func TestRegister(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestService(users, newFakeSessionStore())

	u, err := svc.Register(context.Background(), "admin", "Secret1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	// Пароль сохраняется только как bcrypt-хеш
	stored := users.users["admin"]
	assert.NotEqual(t, "Secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Secret1")))
}

func TestRegister_UsernameTaken(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestService(users, newFakeSessionStore())

	_, err := svc.Register(context.Background(), "admin", "Secret1")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "admin", "Other1A")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionStore()
	svc := newTestService(users, sessions)

	_, err := svc.Register(context.Background(), "admin", "Secret1")
	require.NoError(t, err)

	sess, u, err := svc.Login(context.Background(), "admin", "Secret1")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
	assert.NotEmpty(t, sess.ID)
	assert.True(t, sess.ExpiresAt.After(time.Now()))

	// Сессия сохранена и по ней можно определить идентичность
	got, err := svc.Identify(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.UserID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	users := newFakeUserRepo()
	svc := newTestService(users, newFakeSessionStore())

	_, err := svc.Register(context.Background(), "admin", "Secret1")
	require.NoError(t, err)

	// Неизвестное имя и неверный пароль дают одну и ту же ошибку
	_, _, err = svc.Login(context.Background(), "nobody", "Secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "admin", "Wrong1A")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionStore()
	svc := newTestService(users, sessions)

	_, err := svc.Register(context.Background(), "admin", "Secret1")
	require.NoError(t, err)

	sess, _, err := svc.Login(context.Background(), "admin", "Secret1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), sess.ID))

	_, err = svc.Identify(context.Background(), sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestIdentify_ExpiredSession(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessionStore()
	svc := newTestService(users, sessions)

	sessions.sessions["expired"] = &domain.Session{
		ID:        "expired",
		UserID:    1,
		Username:  "admin",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	_, err := svc.Identify(context.Background(), "expired")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
