package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the dashboard's session cookie.
const CookieName = "dashboard_session"

// Claims are carried by the dashboard session cookie.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// JWTService issues and validates dashboard session tokens.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Secret returns the signing key for middleware configuration.
func (s *JWTService) Secret() []byte {
	return s.secret
}

// NewSessionID generates a fresh session identifier.
func NewSessionID() string {
	return uuid.New().String()
}

// GenerateSessionToken signs a cookie token for the session, valid for ttl
// or the service default when ttl is zero.
func (s *JWTService) GenerateSessionToken(sessionID string, ttl time.Duration) (string, time.Time, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	now := time.Now()
	expires := now.Add(ttl)
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	return signed, expires, err
}

// ValidateToken validates a session token and returns the claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// SessionTTL bounds def by the remaining lifetime of an upstream access token.
// The upstream token is parsed without verification; only its exp claim is read.
// Opaque or expiry-less tokens yield def.
func SessionTTL(accessToken string, def time.Duration) time.Duration {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, &claims); err != nil {
		return def
	}
	if claims.ExpiresAt == nil {
		return def
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return time.Second
	}
	if def > 0 && remaining > def {
		return def
	}
	return remaining
}
