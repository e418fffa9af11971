package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"libadmin/internal/model"
	"libadmin/internal/service"
	"libadmin/internal/view"
	"libadmin/internal/workspace"
)

// LoanHandler serves the book loans and due-date extension screens.
type LoanHandler struct {
	now func() time.Time
}

// NewLoanHandler creates a new loan handler.
func NewLoanHandler() *LoanHandler {
	return &LoanHandler{now: time.Now}
}

// LoanListResponse is the loans screen with its tabs.
type LoanListResponse struct {
	ListResponse[view.LoanRow, service.LoanFilter]
	Tabs []service.LoanTab `json:"tabs"`
}

// ExtensionListResponse is the due-date requests screen with its tabs.
type ExtensionListResponse struct {
	ListResponse[view.ExtensionRow, service.ExtensionFilter]
	Tabs []service.ExtensionTab `json:"tabs"`
}

func (h *LoanHandler) renderLoans(c echo.Context, w *workspace.Workspace) error {
	now := h.now()
	l := view.Rows(view.NewList(w.Loans.State(), "loan"), func(l model.BookLoan) view.LoanRow {
		return view.NewLoanRow(l, now)
	})
	return c.JSON(http.StatusOK, LoanListResponse{
		ListResponse: ListResponse[view.LoanRow, service.LoanFilter]{List: l, Notifications: w.Notifications.Drain()},
		Tabs:         service.LoanTabs,
	})
}

func (h *LoanHandler) renderExtensions(c echo.Context, w *workspace.Workspace) error {
	l := view.Rows(view.NewList(w.Extensions.State(), "request"), view.NewExtensionRow)
	return c.JSON(http.StatusOK, ExtensionListResponse{
		ListResponse: ListResponse[view.ExtensionRow, service.ExtensionFilter]{List: l, Notifications: w.Notifications.Drain()},
		Tabs:         service.ExtensionTabs,
	})
}

// ListLoans godoc
// @Summary Book loans screen
// @Tags loans
// @Produce json
// @Security SessionCookie
// @Success 200 {object} LoanListResponse
// @Router /loans [get]
func (h *LoanHandler) ListLoans(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	ensure(c, w.Loans)
	return h.renderLoans(c, w)
}

// LoansPage godoc
// @Summary Change loans page
// @Tags loans
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body PageRequest true "Page"
// @Success 200 {object} LoanListResponse
// @Router /loans/page [put]
func (h *LoanHandler) LoansPage(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	if err := changePage(c, w.Loans); err != nil {
		return err
	}
	return h.renderLoans(c, w)
}

// SearchLoans godoc
// @Summary Update loans search
// @Tags loans
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body SearchRequest true "Search"
// @Success 200 {object} LoanListResponse
// @Router /loans/search [put]
func (h *LoanHandler) SearchLoans(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	if err := search(c, w.Loans); err != nil {
		return err
	}
	return h.renderLoans(c, w)
}

// LoansTab godoc
// @Summary Select a loans tab
// @Tags loans
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body TabRequest true "Tab"
// @Success 200 {object} LoanListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /loans/tab [put]
func (h *LoanHandler) LoansTab(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	var req TabRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := w.Loans.SelectTab(c.Request().Context(), service.LoanTab(req.Tab)); isInvalidAction(err) {
		return respondError(err)
	}
	return h.renderLoans(c, w)
}

// TransitionLoan godoc
// @Summary Approve, reject, distribute or return a loan
// @Tags loans
// @Produce json
// @Security SessionCookie
// @Param id path int true "Loan ID"
// @Param action path string true "approve, reject, distribute or return"
// @Success 200 {object} LoanListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /loans/{id}/{action} [post]
func (h *LoanHandler) TransitionLoan(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	action := model.LoanAction(c.Param("action"))
	if err := w.Loans.Transition(c.Request().Context(), id, action); err != nil {
		return respondError(err)
	}
	return h.renderLoans(c, w)
}

// ListExtensions godoc
// @Summary Due-date extension requests screen
// @Tags extensions
// @Produce json
// @Security SessionCookie
// @Success 200 {object} ExtensionListResponse
// @Router /extensions [get]
func (h *LoanHandler) ListExtensions(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	ensure(c, w.Extensions)
	return h.renderExtensions(c, w)
}

// ExtensionsPage godoc
// @Summary Change extension requests page
// @Tags extensions
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body PageRequest true "Page"
// @Success 200 {object} ExtensionListResponse
// @Router /extensions/page [put]
func (h *LoanHandler) ExtensionsPage(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	if err := changePage(c, w.Extensions); err != nil {
		return err
	}
	return h.renderExtensions(c, w)
}

// SearchExtensions godoc
// @Summary Update extension requests search
// @Tags extensions
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body SearchRequest true "Search"
// @Success 200 {object} ExtensionListResponse
// @Router /extensions/search [put]
func (h *LoanHandler) SearchExtensions(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	if err := search(c, w.Extensions); err != nil {
		return err
	}
	return h.renderExtensions(c, w)
}

// ExtensionsTab godoc
// @Summary Select an extension requests tab
// @Tags extensions
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body TabRequest true "Tab"
// @Success 200 {object} ExtensionListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /extensions/tab [put]
func (h *LoanHandler) ExtensionsTab(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	var req TabRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := w.Extensions.SelectTab(c.Request().Context(), service.ExtensionTab(req.Tab)); isInvalidAction(err) {
		return respondError(err)
	}
	return h.renderExtensions(c, w)
}

// DecideExtension godoc
// @Summary Approve or reject a due-date extension request
// @Tags extensions
// @Produce json
// @Security SessionCookie
// @Param id path int true "Request ID"
// @Param decision path string true "approved or rejected"
// @Success 200 {object} ExtensionListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /extensions/{id}/{decision} [post]
func (h *LoanHandler) DecideExtension(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	decision := model.ExtensionStatus(c.Param("decision"))
	if err := w.Extensions.Decide(c.Request().Context(), id, decision); err != nil {
		return respondError(err)
	}
	return h.renderExtensions(c, w)
}
