package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"libadmin/internal/model"
)

// LoanParams selects a page of book loans. Status and DueDate are
// alternative discriminators; callers set at most one.
type LoanParams struct {
	ListParams
	Status  model.LoanStatus
	DueDate string
}

// ListLoans returns one page of book loans filtered by status or due date.
func (c *Client) ListLoans(ctx context.Context, p LoanParams) (*model.Page[model.BookLoan], error) {
	q := p.values()
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	if p.DueDate != "" {
		q.Set("due_date", p.DueDate)
	}
	var out model.Page[model.BookLoan]
	if err := c.do(ctx, "loans.list", http.MethodGet, "/v1/book-loans", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TransitionLoan requests a workflow step (approve, reject, distribute, return).
func (c *Client) TransitionLoan(ctx context.Context, id int, action model.LoanAction) (*model.ActionResponse, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("unknown loan action %q", action)
	}
	var out model.ActionResponse
	path := fmt.Sprintf("/v1/book-loans/%d/%s", id, action)
	if err := c.do(ctx, "loans."+string(action), http.MethodPut, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExtensionParams selects a page of due-date increase requests.
type ExtensionParams struct {
	ListParams
	Status model.ExtensionStatus
}

// ListExtensionRequests returns one page of due-date increase requests.
func (c *Client) ListExtensionRequests(ctx context.Context, p ExtensionParams) (*model.Page[model.DueDateIncreaseRequest], error) {
	q := p.values()
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	var out model.Page[model.DueDateIncreaseRequest]
	if err := c.do(ctx, "extensions.list", http.MethodGet, "/v1/book-loans/due-date-increase-requests", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DecideExtension approves or rejects a due-date increase request.
func (c *Client) DecideExtension(ctx context.Context, id int, decision model.ExtensionStatus) (*model.ActionResponse, error) {
	if !decision.Decidable() {
		return nil, fmt.Errorf("unknown extension decision %q", decision)
	}
	var out model.ActionResponse
	path := fmt.Sprintf("/v1/book-loans/%d/action-due-date-request/%s", id, decision)
	if err := c.do(ctx, "extensions.decide", http.MethodPut, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
