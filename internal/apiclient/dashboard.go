package apiclient

import (
	"context"
	"net/http"

	"libadmin/internal/model"
)

// DashboardStats reads the aggregate counters for the home screen.
func (c *Client) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	var out model.Envelope[model.DashboardStats]
	if err := c.do(ctx, "dashboard", http.MethodGet, "/v1/dashboard", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
