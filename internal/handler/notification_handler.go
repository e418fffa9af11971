package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// NotificationHandler drains the toast queue of a session.
type NotificationHandler struct{}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// Drain godoc
// @Summary Pending notifications
// @Description Returns and clears the session's live toasts, including those raised by debounced searches.
// @Tags notifications
// @Produce json
// @Security SessionCookie
// @Success 200 {array} notify.Notification
// @Router /notifications [get]
func (h *NotificationHandler) Drain(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, w.Notifications.Drain())
}
