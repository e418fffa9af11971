package service

import (
	"context"
	"fmt"

	"libadmin/internal/apiclient"
	apperrors "libadmin/internal/errors"
	"libadmin/internal/listctl"
	"libadmin/internal/model"
)

// LoanTab is one of the filter tabs on the loans screen.
type LoanTab string

const (
	LoanTabAll         LoanTab = "all"
	LoanTabPending     LoanTab = "pending"
	LoanTabPreApproved LoanTab = "pre-approved"
	LoanTabApproved    LoanTab = "approved"
	LoanTabOverdue     LoanTab = "overdue"
	LoanTabToday       LoanTab = "today"
	LoanTabReturned    LoanTab = "returned"
	LoanTabRejected    LoanTab = "rejected"
)

// LoanTabs lists the tabs in display order.
var LoanTabs = []LoanTab{
	LoanTabAll, LoanTabPending, LoanTabPreApproved, LoanTabApproved,
	LoanTabOverdue, LoanTabToday, LoanTabReturned, LoanTabRejected,
}

// LoanFilter is the active discriminator of the loans list. At most one of
// Status and DueDate is set.
type LoanFilter struct {
	Tab     LoanTab          `json:"tab"`
	Status  model.LoanStatus `json:"status,omitempty"`
	DueDate string           `json:"due_date,omitempty"`
}

// FilterForTab maps a tab to the query it selects.
func FilterForTab(tab LoanTab) (LoanFilter, error) {
	switch tab {
	case "", LoanTabAll:
		return LoanFilter{Tab: LoanTabAll}, nil
	case LoanTabOverdue:
		return LoanFilter{Tab: tab, DueDate: model.DueOverdue}, nil
	case LoanTabToday:
		return LoanFilter{Tab: tab, DueDate: model.DueToday}, nil
	}
	status := model.LoanStatus(tab)
	if !status.Valid() {
		return LoanFilter{}, fmt.Errorf("%w: unknown loan tab %q", apperrors.ErrInvalidAction, tab)
	}
	return LoanFilter{Tab: tab, Status: status}, nil
}

var loanActionMessages = map[model.LoanAction][2]string{
	model.LoanApprove:    {"Loan approved successfully", "Failed to approve loan"},
	model.LoanReject:     {"Loan rejected successfully", "Failed to reject loan"},
	model.LoanDistribute: {"Book distributed successfully", "Failed to distribute book"},
	model.LoanReturn:     {"Book returned successfully", "Failed to return book"},
}

// LoanService backs the book loans screen.
type LoanService interface {
	Lister[model.BookLoan, LoanFilter]
	Searcher
	SelectTab(ctx context.Context, tab LoanTab) error
	Transition(ctx context.Context, id int, action model.LoanAction) error
}

type loanService struct {
	*listctl.Controller[model.BookLoan, LoanFilter]
	api LoanAPI
}

// NewLoanService creates the loans screen for a session, starting on the
// "all" tab.
func NewLoanService(api LoanAPI, n listctl.Notifier, o Options) LoanService {
	fetch := func(ctx context.Context, q listctl.Query[LoanFilter]) (*model.Page[model.BookLoan], error) {
		return api.ListLoans(ctx, apiclient.LoanParams{
			ListParams: apiclient.ListParams{Page: q.Page, PerPage: q.PerPage, Search: q.Search},
			Status:     q.Filter.Status,
			DueDate:    q.Filter.DueDate,
		})
	}
	opts := listOptions(o,
		listctl.WithFilter(LoanFilter{Tab: LoanTabAll}),
		listctl.WithFetchErrorMessage[LoanFilter]("Failed to fetch book loans"),
	)
	return &loanService{
		Controller: listctl.New("book loans", fetch, n, opts...),
		api:        api,
	}
}

func (s *loanService) SelectTab(ctx context.Context, tab LoanTab) error {
	f, err := FilterForTab(tab)
	if err != nil {
		return err
	}
	return s.ChangeFilter(ctx, f)
}

// Transition requests a workflow step and refetches. The resulting status is
// whatever the server reports on the next read.
func (s *loanService) Transition(ctx context.Context, id int, action model.LoanAction) error {
	msgs, ok := loanActionMessages[action]
	if !ok {
		return fmt.Errorf("%w: unknown loan action %q", apperrors.ErrInvalidAction, action)
	}
	return s.Mutate(ctx, listctl.Action, msgs[1], func(ctx context.Context) (string, error) {
		resp, err := s.api.TransitionLoan(ctx, id, action)
		if err != nil {
			return "", err
		}
		return messageOr(resp.Message, msgs[0]), nil
	})
}
