package apiclient

import (
	"context"
	"net/http"

	"libadmin/internal/model"
)

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	var out model.LoginResponse
	in := model.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, "login", http.MethodPost, "/v1/login", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes the current token on the server.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, "logout", http.MethodPost, "/v1/logout", nil, nil, nil)
}
