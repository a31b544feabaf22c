package sessions

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-TourService/internal/domain"
	sessionStore "github.com/m04kA/SMC-TourService/internal/infra/session"
	userRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/user"
	"github.com/m04kA/SMC-TourService/internal/service/sessions/models"
)

// Хэш-пустышка для неизвестных e-mail: проверка пароля занимает столько же времени,
// сколько для существующего пользователя, и не выдаёт, есть ли такой аккаунт
var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

func getDummyHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("no-such-user"), bcrypt.DefaultCost)
	})
	return dummyHash
}

// Service сервис входа и выхода пользователей back-office
type Service struct {
	userRepo        UserRepository
	store           SessionStore
	ttl             time.Duration
	timeProvider    TimeProvider
	comparePassword func(hash, password []byte) error
	dummyHash       func() []byte
	logger          Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(userRepo UserRepository, store SessionStore, ttl time.Duration, logger Logger) *Service {
	return &Service{
		userRepo:        userRepo,
		store:           store,
		ttl:             ttl,
		timeProvider:    realTimeProvider{},
		comparePassword: bcrypt.CompareHashAndPassword,
		dummyHash:       getDummyHash,
		logger:          logger,
	}
}

// Login проверяет учётные данные и открывает новую сессию
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.SessionResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	s.logger.Info("Login: attempt for email=%s", email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			_ = s.comparePassword(s.dummyHash(), []byte(req.Password))
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := s.comparePassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.Warn("Login: inactive user=%d", user.ID)
		return nil, ErrUserInactive
	}

	now := s.timeProvider.Now()
	sess := &domain.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.store.Save(ctx, sess); err != nil {
		s.logger.Error("Login: failed to save session for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - save session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user=%d logged in, session expires at %s", user.ID, sess.ExpiresAt.Format(time.RFC3339))
	return models.FromDomainSession(sess), nil
}

// Logout закрывает сессию; повторный выход не ошибка
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.store.Delete(ctx, token); err != nil {
		s.logger.Error("Logout: failed to delete session: %v", err)
		return fmt.Errorf("%w: Logout - delete session: %v", ErrInternal, err)
	}
	s.logger.Info("Logout: session closed")
	return nil
}

// Authenticate возвращает живую сессию по токену
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	sess, err := s.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			return nil, ErrUnauthorized
		}
		s.logger.Error("Authenticate: session store error: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - get session: %v", ErrInternal, err)
	}

	// redis TTL может отстать от ExpiresAt на доли секунды
	if sess.IsExpired(s.timeProvider.Now()) {
		return nil, ErrUnauthorized
	}

	return sess, nil
}
