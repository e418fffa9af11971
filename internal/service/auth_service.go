package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"libadmin/internal/auth"
	apperrors "libadmin/internal/errors"
	"libadmin/internal/listctl"
	"libadmin/internal/model"
)

var (
	// ErrInvalidCredentials is returned when the API accepts the login call
	// but answers without a token or user.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService is the session state of one dashboard user.
type AuthService interface {
	Restore(ctx context.Context) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	Logout(ctx context.Context) error
	IsAuthenticated() bool
	CurrentUser() *model.User
	SessionID() string
}

type authService struct {
	api       AuthAPI
	store     auth.SessionStoreInterface
	notifier  listctl.Notifier
	sessionID string
	ttl       time.Duration
	logger    *slog.Logger

	mu   sync.RWMutex
	user *model.User
}

// NewAuthService creates the auth state for a session.
func NewAuthService(api AuthAPI, store auth.SessionStoreInterface, notifier listctl.Notifier, sessionID string, ttl time.Duration, logger *slog.Logger) AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		api:       api,
		store:     store,
		notifier:  notifier,
		sessionID: sessionID,
		ttl:       ttl,
		logger:    logger.With("session", sessionID),
	}
}

func (s *authService) SessionID() string {
	return s.sessionID
}

// Restore trusts a previously stored token and user without asking the API.
// An unreadable user blob clears the stored session.
func (s *authService) Restore(ctx context.Context) (*model.User, error) {
	token, err := s.store.Token(ctx, s.sessionID)
	if err != nil {
		return nil, fmt.Errorf("read stored token: %w", err)
	}
	user, err := s.store.User(ctx, s.sessionID)
	if errors.Is(err, auth.ErrCorruptSession) {
		s.logger.Warn("discarding unreadable session", "error", err)
		_ = s.store.Clear(ctx, s.sessionID)
		return nil, apperrors.ErrNotAuthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("read stored user: %w", err)
	}
	if token == "" || user == nil {
		return nil, apperrors.ErrNotAuthenticated
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return user, nil
}

// Login stores the token and user on success. A non-admin user is signed
// in but IsAuthenticated stays false.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.notifier.Error(listctl.Describe(err, "An error occurred while logging in"))
		return nil, err
	}
	if resp.AccessToken == "" || resp.User.ID == 0 {
		s.notifier.Error("Invalid credentials")
		return nil, ErrInvalidCredentials
	}

	user := resp.User
	ttl := auth.SessionTTL(resp.AccessToken, s.ttl)
	if err := s.store.SaveSession(ctx, s.sessionID, resp.AccessToken, &user, ttl); err != nil {
		s.notifier.Error("An error occurred while logging in")
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	s.logger.Info("signed in", "user_id", user.ID, "role", user.Role)
	s.notifier.Success("Login successful")
	return &user, nil
}

// Logout tells the API best-effort and always clears the local session.
func (s *authService) Logout(ctx context.Context) error {
	if err := s.api.Logout(ctx); err != nil {
		s.logger.Warn("api logout failed", "error", err)
	}
	if err := s.store.Clear(ctx, s.sessionID); err != nil {
		s.logger.Warn("clear session failed", "error", err)
	}

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.notifier.Success("You have been logged out successfully")
	return nil
}

// IsAuthenticated reports whether an administrator is signed in.
func (s *authService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.IsAdmin()
}

func (s *authService) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}
