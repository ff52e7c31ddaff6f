package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-CarWashService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/session"
	userRepo "github.com/m04kA/SMC-CarWashService/internal/infra/storage/user"
)

// Service сервис аутентификации и управления сессиями
type Service struct {
	users      UserRepository
	sessions   SessionStore
	sessionTTL time.Duration
	logger     Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(users UserRepository, sessions SessionStore, sessionTTL time.Duration, logger Logger) *Service {
	return &Service{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Register регистрирует нового пользователя
// Пароль хешируется bcrypt и в открытом виде не сохраняется
func (s *Service) Register(ctx context.Context, username, password string) (*domain.User, error) {
	s.logger.Info("Register: registering user %q", username)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password for %q: %v", username, err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserAlreadyExists) {
			s.logger.Warn("Register: username %q already taken", username)
			return nil, ErrUsernameTaken
		}
		s.logger.Error("Register: repository error for %q: %v", username, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user %q registered with id=%d", username, created.ID)
	return created, nil
}

// Login проверяет учетные данные и открывает сессию
// Несуществующее имя и неверный пароль дают одинаковый результат,
// чтобы не раскрывать, какой из факторов неверен
func (s *Service) Login(ctx context.Context, username, password string) (*domain.Session, *domain.User, error) {
	s.logger.Info("Login: attempt for user %q", username)

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown username %q", username)
			return nil, nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for %q: %v", username, err)
		return nil, nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for user %q", username)
		return nil, nil, ErrInvalidCredentials
	}

	sess := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Username:  u.Username,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}

	if err := s.sessions.Set(ctx, sess); err != nil {
		s.logger.Error("Login: failed to store session for user %q: %v", username, err)
		return nil, nil, fmt.Errorf("%w: Login - store session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user %q logged in, user_id=%d", username, u.ID)
	return sess, u, nil
}

// Logout уничтожает сессию
// Отсутствующая сессия не считается ошибкой
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Destroy(ctx, sessionID); err != nil {
		s.logger.Error("Logout: failed to destroy session: %v", err)
		return fmt.Errorf("%w: Logout - destroy session: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: session destroyed")
	return nil
}

// Identify возвращает идентичность по идентификатору сессии
// Побочных эффектов не имеет (кроме ленивого удаления истекшей сессии)
func (s *Service) Identify(ctx context.Context, sessionID string) (*domain.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Identify: session store error: %v", err)
		return nil, fmt.Errorf("%w: Identify - session store error: %v", ErrInternal, err)
	}

	return sess, nil
}
