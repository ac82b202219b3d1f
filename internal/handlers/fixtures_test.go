package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	"banking-client/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const testUserID = models.ID("1")

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newSignedInContext builds a request context as the session middleware leaves it
func newSignedInContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newContext(e, method, target, body)
	c.Set(UserIDContextKey, testUserID)
	return c, rec
}

func newContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}

func decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var response ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &response)
	return response
}

func ownedAccount(id string, balance int64) models.Account {
	account := models.Account{
		ID:            models.ID(id),
		AccountNumber: "ACC" + id,
		AccountType:   models.AccountTypeSavings,
		UserID:        testUserID,
		Balance:       decimal.NewFromInt(balance),
		Status:        models.AccountStatusActive,
	}
	account.MarkConfirmed()
	return account
}
