package apiclient

import (
	"context"
	"net/http"

	"libadmin/internal/model"
)

// ListUsers returns one page of users, optionally filtered by search.
func (c *Client) ListUsers(ctx context.Context, p ListParams) (*model.Page[model.User], error) {
	var out model.Page[model.User]
	if err := c.do(ctx, "users.list", http.MethodGet, "/v1/users", p.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser registers a user.
func (c *Client) CreateUser(ctx context.Context, in model.UserInput) (*model.CreateUserResponse, error) {
	var out model.CreateUserResponse
	if err := c.do(ctx, "users.create", http.MethodPost, "/v1/users", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser changes a user's profile and role.
func (c *Client) UpdateUser(ctx context.Context, id int, in model.UserInput) (*model.Envelope[model.User], error) {
	var out model.Envelope[model.User]
	if err := c.do(ctx, "users.update", http.MethodPut, idPath("/v1/users/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, id int) (*model.ActionResponse, error) {
	var out model.ActionResponse
	if err := c.do(ctx, "users.delete", http.MethodDelete, idPath("/v1/users/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
