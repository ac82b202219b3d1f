package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"banking-client/internal/errors"
	"banking-client/internal/services"

	"github.com/labstack/echo/v4"
)

// StatementHandler serves mini statements and monthly summaries straight
// from the ledger
type StatementHandler struct {
	accounts   services.AccountStoreInterface
	statements services.StatementServiceInterface
	now        func() time.Time
}

func NewStatementHandler(accounts services.AccountStoreInterface, statements services.StatementServiceInterface) *StatementHandler {
	return &StatementHandler{
		accounts:   accounts,
		statements: statements,
		now:        time.Now,
	}
}

// MiniStatement
// @Summary The latest ledger transactions of an account
// @Tags Statements
// @Produce json
// @Param id path string true "Account ID"
// @Param limit query int false "How many" default(10)
// @Success 200 {object} dto.TransactionListResponse
// @Failure 502 {object} errors.ErrorResponse "Ledger failure"
// @Router /accounts/{id}/mini-statement [get]
func (h *StatementHandler) MiniStatement(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	account, ok := h.accounts.GetByID(getIDParam(c, "id"))
	if !ok || account.UserID != userID {
		return SendError(c, errors.AccountNotFound)
	}

	limit := getIntParam(c, "limit", services.DefaultMiniStatementSize)
	transactions, err := h.statements.MiniStatement(c.Request().Context(), account.ID, limit)
	if err != nil {
		return SendGatewayError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: transactions,
		Meta: map[string]int{"count": len(transactions), "limit": limit},
	})
}

// MonthlySummary defaults to the current month
// @Summary Monthly totals of an account
// @Tags Statements
// @Produce json
// @Param id path string true "Account ID"
// @Param month query int false "1-12"
// @Param year query int false "Year"
// @Success 200 {object} SuccessResponse{data=models.TransactionSummary}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007"
// @Router /accounts/{id}/monthly-summary [get]
func (h *StatementHandler) MonthlySummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	account, ok := h.accounts.GetByID(getIDParam(c, "id"))
	if !ok || account.UserID != userID {
		return SendError(c, errors.AccountNotFound)
	}

	now := h.now()
	month := getIntParam(c, "month", int(now.Month()))
	year := getIntParam(c, "year", now.Year())

	summary, err := h.statements.MonthlySummary(c.Request().Context(), account.ID, month, year)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidPeriod) {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary})
}
