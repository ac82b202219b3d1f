package handlers

import (
	"errors"
	"strconv"

	"banking-client/internal/models"

	"github.com/labstack/echo/v4"
)

// UserIDContextKey holds the signed-in user's id, set by the session middleware
const UserIDContextKey = "user_id"

var ErrUnauthorized = errors.New("unauthorized")

func getUserIDFromContext(c echo.Context) (models.ID, error) {
	if userID, ok := c.Get(UserIDContextKey).(models.ID); ok && !userID.IsZero() {
		return userID, nil
	}
	return models.NilID, ErrUnauthorized
}

func getIDParam(c echo.Context, name string) models.ID {
	return models.ParseID(c.Param(name))
}

// getIntParam reads an integer query parameter, falling back on a missing or
// malformed value
func getIntParam(c echo.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return fallback
	}
	return value
}

// getClientIP honours X-Forwarded-For and X-Real-IP through echo's extractor
func getClientIP(c echo.Context) string {
	return c.RealIP()
}
