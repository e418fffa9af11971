package handler

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"libadmin/internal/auth"
	"libadmin/internal/errors"
	"libadmin/internal/listctl"
	"libadmin/internal/model"
	"libadmin/internal/notify"
	"libadmin/internal/service"
	"libadmin/internal/workspace"
)

// AuthHandler handles sign-in and the session endpoints.
type AuthHandler struct {
	registry     *workspace.Registry
	jwtService   *auth.JWTService
	sessionTTL   time.Duration
	secureCookie bool
	logger       *slog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(registry *workspace.Registry, jwtService *auth.JWTService, sessionTTL time.Duration, secureCookie bool, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		registry:     registry,
		jwtService:   jwtService,
		sessionTTL:   sessionTTL,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse describes the signed-in user. SessionToken may be sent as
// a bearer token by clients that do not keep cookies.
type SessionResponse struct {
	SessionToken  string                `json:"session_token,omitempty"`
	ExpiresAt     *time.Time            `json:"expires_at,omitempty"`
	User          *model.User           `json:"user"`
	Authenticated bool                  `json:"authenticated"`
	Notifications []notify.Notification `json:"notifications,omitempty"`
}

// Login godoc
// @Summary Sign in to the dashboard
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return respondError(err)
	}

	sessionID := auth.NewSessionID()
	w := h.registry.Create(sessionID)
	user, err := w.Auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		h.registry.Close(sessionID)
		if stderrors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "Invalid credentials",
				Code:  "INVALID_CREDENTIALS",
			})
		}
		httpErr := errors.MapErrorToHTTP(err)
		resp := httpErr.ToErrorResponse()
		resp.Error = listctl.Describe(err, "An error occurred while logging in")
		return echo.NewHTTPError(httpErr.StatusCode, resp)
	}

	token, expires, err := h.jwtService.GenerateSessionToken(sessionID, h.sessionTTL)
	if err != nil {
		h.logger.Error("sign session token", "error", err)
		h.registry.Close(sessionID)
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to start session",
			Code:  "SESSION_FAILED",
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, SessionResponse{
		SessionToken:  token,
		ExpiresAt:     &expires,
		User:          user,
		Authenticated: w.Auth.IsAuthenticated(),
		Notifications: w.Notifications.Drain(),
	})
}

// Logout godoc
// @Summary Sign out of the dashboard
// @Tags auth
// @Produce json
// @Security SessionCookie
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}

	_ = w.Auth.Logout(c.Request().Context())
	toasts := w.Notifications.Drain()
	h.registry.Close(w.ID)

	c.SetCookie(&http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, MessageResponse{
		Message:       "logged out",
		Notifications: toasts,
	})
}

// Me godoc
// @Summary Current session
// @Tags auth
// @Produce json
// @Security SessionCookie
// @Success 200 {object} SessionResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	w, err := current(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SessionResponse{
		User:          w.Auth.CurrentUser(),
		Authenticated: w.Auth.IsAuthenticated(),
	})
}
