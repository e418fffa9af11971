package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"libadmin/internal/model"
	"libadmin/internal/notify"
)

// DashboardHandler serves the home screen.
type DashboardHandler struct{}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// DashboardResponse is the home screen aggregate.
type DashboardResponse struct {
	Stats         *model.DashboardStats `json:"stats"`
	Notifications []notify.Notification `json:"notifications"`
}

// Stats godoc
// @Summary Dashboard aggregate
// @Tags dashboard
// @Produce json
// @Security SessionCookie
// @Success 200 {object} DashboardResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	stats, err := w.Dashboard.Stats(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, DashboardResponse{
		Stats:         stats,
		Notifications: w.Notifications.Drain(),
	})
}
