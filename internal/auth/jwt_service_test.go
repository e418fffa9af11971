package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_SessionTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	sid := NewSessionID()

	token, expires, err := svc.GenerateSessionToken(sid, 0)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expires, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sid, claims.SessionID)
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				tok, _, err := NewJWTService("other", time.Hour).GenerateSessionToken("s1", 0)
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				return expiredToken(t, "secret")
			},
		},
		{
			name: "missing session id",
			token: func(t *testing.T) string {
				tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{}).SignedString([]byte("secret"))
				require.NoError(t, err)
				return tok
			},
		},
		{
			name:  "garbage",
			token: func(t *testing.T) string { return "not-a-jwt" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token(t))
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func expiredToken(t *testing.T, secret string) string {
	t.Helper()
	claims := &Claims{
		SessionID: "s1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func upstreamToken(t *testing.T, exp *time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: "42"}
	if exp != nil {
		claims.ExpiresAt = jwt.NewNumericDate(*exp)
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("upstream-key"))
	require.NoError(t, err)
	return tok
}

func TestSessionTTL(t *testing.T) {
	soon := time.Now().Add(10 * time.Minute)
	late := time.Now().Add(48 * time.Hour)
	past := time.Now().Add(-time.Hour)

	tests := []struct {
		name  string
		token string
		want  func(t *testing.T, got time.Duration)
	}{
		{
			name:  "opaque token keeps default",
			token: "1|laravel-sanctum-token",
			want:  func(t *testing.T, got time.Duration) { assert.Equal(t, 24*time.Hour, got) },
		},
		{
			name:  "no exp keeps default",
			token: upstreamToken(t, nil),
			want:  func(t *testing.T, got time.Duration) { assert.Equal(t, 24*time.Hour, got) },
		},
		{
			name:  "earlier exp wins",
			token: upstreamToken(t, &soon),
			want: func(t *testing.T, got time.Duration) {
				assert.InDelta(t, float64(10*time.Minute), float64(got), float64(5*time.Second))
			},
		},
		{
			name:  "later exp capped at default",
			token: upstreamToken(t, &late),
			want:  func(t *testing.T, got time.Duration) { assert.Equal(t, 24*time.Hour, got) },
		},
		{
			name:  "expired token gets minimal ttl",
			token: upstreamToken(t, &past),
			want:  func(t *testing.T, got time.Duration) { assert.Equal(t, time.Second, got) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, SessionTTL(tt.token, 24*time.Hour))
		})
	}
}
