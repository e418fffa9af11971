package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libadmin/internal/kv"
	"libadmin/internal/model"
)

func TestSessionStore_SaveAndRead(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(kv.NewMemory())
	user := &model.User{ID: 1, Name: "Ada", Email: "ada@example.com", Role: model.RoleAdmin}

	require.NoError(t, store.SaveSession(ctx, "s1", "tok-1", user, time.Hour))

	token, err := store.Token(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	got, err := store.User(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	other, err := store.Token(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSessionStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(kv.NewMemory())
	require.NoError(t, store.SaveSession(ctx, "s1", "tok-1", &model.User{ID: 1}, time.Hour))

	require.NoError(t, store.Clear(ctx, "s1"))

	token, err := store.Token(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, token)
	user, err := store.User(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionStore_CorruptUser(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(ctx, "user:s1", []byte("{not json"), 0))

	user, err := NewSessionStore(mem).User(ctx, "s1")
	assert.ErrorIs(t, err, ErrCorruptSession)
	assert.Nil(t, user)
}

func TestStoredToken_ReadsOnEveryCall(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(kv.NewMemory())
	src := StoredToken{Store: store, SessionID: "s1"}

	tok, err := src.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, store.SaveSession(ctx, "s1", "tok-1", &model.User{ID: 1}, time.Hour))
	tok, err = src.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	require.NoError(t, store.Clear(ctx, "s1"))
	tok, err = src.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}
