package handler

import (
	"context"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"libadmin/internal/errors"
	"libadmin/internal/notify"
	"libadmin/internal/service"
	"libadmin/internal/view"
	"libadmin/internal/workspace"
)

const workspaceKey = "workspace"

// ListResponse is a list screen plus any toasts raised while producing it.
type ListResponse[T any, F comparable] struct {
	view.List[T, F]
	Notifications []notify.Notification `json:"notifications"`
}

// MessageResponse is returned by endpoints without a body of their own.
type MessageResponse struct {
	Message       string                `json:"message"`
	Notifications []notify.Notification `json:"notifications,omitempty"`
}

// PageRequest selects a page.
type PageRequest struct {
	Page int `json:"page" validate:"min=1"`
}

// SearchRequest records the search box contents. Immediate commits the
// query without waiting for typing to pause.
type SearchRequest struct {
	Query     string `json:"query"`
	Immediate bool   `json:"immediate"`
}

// TabRequest selects a filter tab.
type TabRequest struct {
	Tab string `json:"tab" validate:"required"`
}

// SetWorkspace attaches the session workspace to the request.
func SetWorkspace(c echo.Context, w *workspace.Workspace) {
	c.Set(workspaceKey, w)
}

func current(c echo.Context) (*workspace.Workspace, error) {
	w, ok := c.Get(workspaceKey).(*workspace.Workspace)
	if !ok || w == nil {
		return nil, respondError(errors.ErrSessionNotFound)
	}
	return w, nil
}

func respondError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// Fetch failures after a tab switch are toasts; an unknown tab is the caller's fault.
func isInvalidAction(err error) bool {
	return stderrors.Is(err, errors.ErrInvalidAction)
}

func invalidBody() error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_BODY",
	})
}

func parseID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return id, nil
}

func renderList[T any, F comparable](c echo.Context, w *workspace.Workspace, status int, l view.List[T, F]) error {
	return c.JSON(status, ListResponse[T, F]{List: l, Notifications: w.Notifications.Drain()})
}

type ensurer interface {
	Ensure(ctx context.Context) error
}

type pager interface {
	ChangePage(ctx context.Context, page int) error
}

// A failed fetch keeps the last good items and is reported as a toast, so
// list endpoints answer 200 regardless.
func ensure(c echo.Context, l ensurer) {
	_ = l.Ensure(c.Request().Context())
}

func changePage(c echo.Context, l pager) error {
	var req PageRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return respondError(err)
	}
	_ = l.ChangePage(c.Request().Context(), req.Page)
	return nil
}

func search(c echo.Context, s service.Searcher) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	s.SetSearch(req.Query)
	if req.Immediate {
		s.FlushSearch()
	}
	return nil
}
