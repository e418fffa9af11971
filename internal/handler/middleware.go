package handler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"libadmin/internal/auth"
	"libadmin/internal/errors"
	"libadmin/internal/workspace"
)

// Session resolves the workspace named by the validated session token that
// echo-jwt stored under "user". A session unknown to the registry is restored
// from durable storage; without a stored token the request is rejected.
func Session(registry *workspace.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return respondError(errors.ErrNotAuthenticated)
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok || claims.SessionID == "" {
				return respondError(errors.ErrNotAuthenticated)
			}

			w, err := registry.Open(c.Request().Context(), claims.SessionID)
			if err != nil {
				return respondError(err)
			}
			SetWorkspace(c, w)
			return next(c)
		}
	}
}

// RequireAdmin rejects sessions whose user is not an administrator. The
// remote API authorizes every call again; this only gates the dashboard.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		w, err := current(c)
		if err != nil {
			return err
		}
		if !w.Auth.IsAuthenticated() {
			return respondError(errors.ErrNotAdmin)
		}
		return next(c)
	}
}
