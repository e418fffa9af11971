package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"libadmin/internal/form"
	"libadmin/internal/view"
	"libadmin/internal/workspace"
)

// UserHandler serves the users screen.
type UserHandler struct{}

// NewUserHandler creates a new user handler.
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func (h *UserHandler) render(c echo.Context, w *workspace.Workspace, status int) error {
	return renderList(c, w, status, view.NewList(w.Users.State(), "user"))
}

// List godoc
// @Summary Users screen
// @Tags users
// @Produce json
// @Security SessionCookie
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	ensure(c, w.Users)
	return h.render(c, w, http.StatusOK)
}

// Page godoc
// @Summary Change users page
// @Tags users
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body PageRequest true "Page"
// @Success 200 {object} map[string]interface{}
// @Router /users/page [put]
func (h *UserHandler) Page(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	if err := changePage(c, w.Users); err != nil {
		return err
	}
	return h.render(c, w, http.StatusOK)
}

// Search godoc
// @Summary Update users search
// @Tags users
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body SearchRequest true "Search"
// @Success 200 {object} map[string]interface{}
// @Router /users/search [put]
func (h *UserHandler) Search(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	if err := search(c, w.Users); err != nil {
		return err
	}
	return h.render(c, w, http.StatusOK)
}

// Create godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body form.UserForm true "User"
// @Success 201 {object} map[string]interface{}
// @Failure 422 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	var req form.UserForm
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := w.Users.Create(c.Request().Context(), req); err != nil {
		return respondError(err)
	}
	return h.render(c, w, http.StatusCreated)
}

// Update godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "User ID"
// @Param request body form.UserUpdateForm true "User"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req form.UserUpdateForm
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := w.Users.Update(c.Request().Context(), id, req); err != nil {
		return respondError(err)
	}
	return h.render(c, w, http.StatusOK)
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Security SessionCookie
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := w.Users.Delete(c.Request().Context(), id); err != nil {
		return respondError(err)
	}
	return h.render(c, w, http.StatusOK)
}
