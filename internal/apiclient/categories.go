package apiclient

import (
	"context"
	"net/http"

	"libadmin/internal/model"
)

// ListCategories pages through categories. The endpoint has no search.
func (c *Client) ListCategories(ctx context.Context, page, perPage int) (*model.Page[model.Category], error) {
	var out model.Page[model.Category]
	q := ListParams{Page: page, PerPage: perPage}.values()
	if err := c.do(ctx, "categories.list", http.MethodGet, "/v1/categories", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCategory adds a category.
func (c *Client) CreateCategory(ctx context.Context, in model.CategoryInput) (*model.Envelope[model.Category], error) {
	var out model.Envelope[model.Category]
	if err := c.do(ctx, "categories.create", http.MethodPost, "/v1/categories", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCategory renames a category.
func (c *Client) UpdateCategory(ctx context.Context, id int, in model.CategoryInput) (*model.Envelope[model.Category], error) {
	var out model.Envelope[model.Category]
	if err := c.do(ctx, "categories.update", http.MethodPut, idPath("/v1/categories/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory removes a category. The API refuses while books use it.
func (c *Client) DeleteCategory(ctx context.Context, id int) (*model.ActionResponse, error) {
	var out model.ActionResponse
	if err := c.do(ctx, "categories.delete", http.MethodDelete, idPath("/v1/categories/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
