package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"libadmin/internal/form"
	"libadmin/internal/view"
	"libadmin/internal/workspace"
)

// CategoryHandler serves the categories screen.
type CategoryHandler struct{}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

func (h *CategoryHandler) render(c echo.Context, w *workspace.Workspace, status int) error {
	return renderList(c, w, status, view.NewList(w.Categories.State(), "category"))
}

// List godoc
// @Summary Categories screen
// @Tags categories
// @Produce json
// @Security SessionCookie
// @Success 200 {object} map[string]interface{}
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	ensure(c, w.Categories)
	return h.render(c, w, http.StatusOK)
}

// Page godoc
// @Summary Change categories page
// @Tags categories
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body PageRequest true "Page"
// @Success 200 {object} map[string]interface{}
// @Router /categories/page [put]
func (h *CategoryHandler) Page(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	if err := changePage(c, w.Categories); err != nil {
		return err
	}
	return h.render(c, w, http.StatusOK)
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body form.CategoryForm true "Category"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} errors.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	var req form.CategoryForm
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := w.Categories.Create(c.Request().Context(), req); err != nil {
		return respondError(err)
	}
	return h.render(c, w, http.StatusCreated)
}

// Update godoc
// @Summary Rename a category
// @Tags categories
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "Category ID"
// @Param request body form.CategoryForm true "Category"
// @Success 200 {object} map[string]interface{}
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req form.CategoryForm
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := w.Categories.Update(c.Request().Context(), id, req); err != nil {
		return respondError(err)
	}
	return h.render(c, w, http.StatusOK)
}

// Delete godoc
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Security SessionCookie
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := w.Categories.Delete(c.Request().Context(), id); err != nil {
		return respondError(err)
	}
	return h.render(c, w, http.StatusOK)
}
