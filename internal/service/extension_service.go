package service

import (
	"context"
	"fmt"

	"libadmin/internal/apiclient"
	apperrors "libadmin/internal/errors"
	"libadmin/internal/listctl"
	"libadmin/internal/model"
)

// ExtensionTab is one of the filter tabs on the due-date requests screen.
type ExtensionTab string

const (
	ExtensionTabAll      ExtensionTab = "all"
	ExtensionTabPending  ExtensionTab = "pending"
	ExtensionTabApproved ExtensionTab = "approved"
	ExtensionTabRejected ExtensionTab = "rejected"
)

// ExtensionTabs lists the tabs in display order.
var ExtensionTabs = []ExtensionTab{ExtensionTabAll, ExtensionTabPending, ExtensionTabApproved, ExtensionTabRejected}

// ExtensionFilter selects requests by status; an empty status lists all.
type ExtensionFilter struct {
	Tab    ExtensionTab          `json:"tab"`
	Status model.ExtensionStatus `json:"status,omitempty"`
}

// ExtensionService backs the due-date extension requests screen.
type ExtensionService interface {
	Lister[model.DueDateIncreaseRequest, ExtensionFilter]
	Searcher
	SelectTab(ctx context.Context, tab ExtensionTab) error
	Decide(ctx context.Context, id int, decision model.ExtensionStatus) error
}

type extensionService struct {
	*listctl.Controller[model.DueDateIncreaseRequest, ExtensionFilter]
	api LoanAPI
}

// NewExtensionService creates the extension requests screen for a session.
func NewExtensionService(api LoanAPI, n listctl.Notifier, o Options) ExtensionService {
	fetch := func(ctx context.Context, q listctl.Query[ExtensionFilter]) (*model.Page[model.DueDateIncreaseRequest], error) {
		return api.ListExtensionRequests(ctx, apiclient.ExtensionParams{
			ListParams: apiclient.ListParams{Page: q.Page, PerPage: q.PerPage, Search: q.Search},
			Status:     q.Filter.Status,
		})
	}
	opts := listOptions(o,
		listctl.WithFilter(ExtensionFilter{Tab: ExtensionTabAll}),
		listctl.WithFetchErrorMessage[ExtensionFilter]("Failed to fetch due date requests"),
	)
	return &extensionService{
		Controller: listctl.New("due date requests", fetch, n, opts...),
		api:        api,
	}
}

func (s *extensionService) SelectTab(ctx context.Context, tab ExtensionTab) error {
	var f ExtensionFilter
	switch tab {
	case "", ExtensionTabAll:
		f = ExtensionFilter{Tab: ExtensionTabAll}
	case ExtensionTabPending, ExtensionTabApproved, ExtensionTabRejected:
		f = ExtensionFilter{Tab: tab, Status: model.ExtensionStatus(tab)}
	default:
		return fmt.Errorf("%w: unknown extension tab %q", apperrors.ErrInvalidAction, tab)
	}
	return s.ChangeFilter(ctx, f)
}

func (s *extensionService) Decide(ctx context.Context, id int, decision model.ExtensionStatus) error {
	if !decision.Decidable() {
		return fmt.Errorf("%w: unknown decision %q", apperrors.ErrInvalidAction, decision)
	}
	return s.Mutate(ctx, listctl.Action, "Failed to "+decisionVerb(decision)+" due date request", func(ctx context.Context) (string, error) {
		resp, err := s.api.DecideExtension(ctx, id, decision)
		if err != nil {
			return "", err
		}
		return messageOr(resp.Message, "Due date request "+string(decision)+" successfully"), nil
	})
}

func decisionVerb(d model.ExtensionStatus) string {
	if d == model.ExtensionApproved {
		return "approve"
	}
	return "reject"
}
