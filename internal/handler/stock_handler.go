package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"libadmin/internal/form"
	"libadmin/internal/model"
	"libadmin/internal/view"
	"libadmin/internal/workspace"
)

// StockHandler serves the physical stock screen.
type StockHandler struct{}

// NewStockHandler creates a new stock handler.
func NewStockHandler() *StockHandler {
	return &StockHandler{}
}

func (h *StockHandler) render(c echo.Context, w *workspace.Workspace) error {
	l := view.Rows(view.NewList(w.Stock.State(), "book"), func(b model.Book) view.StockRow {
		return view.NewStockRow(b)
	})
	return renderList(c, w, http.StatusOK, l)
}

// List godoc
// @Summary Physical stock screen
// @Tags stock
// @Produce json
// @Security SessionCookie
// @Success 200 {object} map[string]interface{}
// @Router /stock [get]
func (h *StockHandler) List(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	ensure(c, w.Stock)
	return h.render(c, w)
}

// Page godoc
// @Summary Change stock page
// @Tags stock
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body PageRequest true "Page"
// @Success 200 {object} map[string]interface{}
// @Router /stock/page [put]
func (h *StockHandler) Page(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	if err := changePage(c, w.Stock); err != nil {
		return err
	}
	return h.render(c, w)
}

// Search godoc
// @Summary Update stock search
// @Tags stock
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body SearchRequest true "Search"
// @Success 200 {object} map[string]interface{}
// @Router /stock/search [put]
func (h *StockHandler) Search(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	if err := search(c, w.Stock); err != nil {
		return err
	}
	return h.render(c, w)
}

// Update godoc
// @Summary Set the shelf quantity of a book
// @Tags stock
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "Book ID"
// @Param request body form.StockForm true "Quantity"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} errors.ErrorResponse
// @Router /stock/{id} [put]
func (h *StockHandler) Update(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req form.StockForm
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if _, err := w.Stock.UpdateStock(c.Request().Context(), id, req); err != nil {
		return respondError(err)
	}
	return h.render(c, w)
}
