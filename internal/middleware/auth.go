package middleware

import (
	"banking-client/internal/errors"
	"banking-client/internal/handlers"
	"banking-client/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireSession rejects requests while nobody is signed in and otherwise
// puts the signed-in user's ID in the context. An expired token counts as
// signed out.
func RequireSession(session services.SessionServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := session.CurrentUser()
			if !ok || user == nil {
				return handlers.SendError(c, errors.AuthMissingSession)
			}

			c.Set(handlers.UserIDContextKey, user.ID)
			return next(c)
		}
	}
}
