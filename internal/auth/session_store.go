package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"libadmin/internal/kv"
	"libadmin/internal/model"
)

const (
	tokenKeyPrefix = "auth_token:"
	userKeyPrefix  = "user:"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrCorruptSession is returned when a stored user blob cannot be decoded.
var ErrCorruptSession = errors.New("stored session is unreadable")

// SessionStoreInterface defines the durable storage of a signed-in session.
type SessionStoreInterface interface {
	SaveSession(ctx context.Context, sessionID, token string, user *model.User, ttl time.Duration) error
	Token(ctx context.Context, sessionID string) (string, error)
	User(ctx context.Context, sessionID string) (*model.User, error)
	Clear(ctx context.Context, sessionID string) error
}

// SessionStore keeps the bearer token and user blob of each session in a kv.Store.
type SessionStore struct {
	store kv.Store
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(store kv.Store) *SessionStore {
	return &SessionStore{store: store}
}

// SaveSession stores token and user under the session with the same TTL.
func (s *SessionStore) SaveSession(ctx context.Context, sessionID, token string, user *model.User, ttl time.Duration) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	if err := s.store.Set(ctx, tokenKeyPrefix+sessionID, []byte(token), ttl); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	if err := s.store.Set(ctx, userKeyPrefix+sessionID, payload, ttl); err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	return nil
}

// Token returns the stored bearer token, or "" when none is stored.
func (s *SessionStore) Token(ctx context.Context, sessionID string) (string, error) {
	data, err := s.store.Get(ctx, tokenKeyPrefix+sessionID)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// User returns the stored user, or nil when none is stored.
func (s *SessionStore) User(ctx context.Context, sessionID string) (*model.User, error) {
	data, err := s.store.Get(ctx, userKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	return &user, nil
}

// Clear removes both keys of the session.
func (s *SessionStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, tokenKeyPrefix+sessionID); err != nil {
		return err
	}
	return s.store.Delete(ctx, userKeyPrefix+sessionID)
}
