package auth

import "context"

// StoredToken reads a session's bearer token from durable storage each time
// it is asked, so a logout is seen by the very next outgoing request.
type StoredToken struct {
	Store     SessionStoreInterface
	SessionID string
}

// Token implements apiclient.TokenSource.
func (t StoredToken) Token(ctx context.Context) (string, error) {
	return t.Store.Token(ctx, t.SessionID)
}
