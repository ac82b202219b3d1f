package handlers

import (
	"net/http"

	"banking-client/internal/config"
	"banking-client/internal/dto"
	"banking-client/internal/errors"
	"banking-client/internal/models"
	"banking-client/internal/services"

	"github.com/labstack/echo/v4"
)

// LimitsHandler exposes the daily limit policy
type LimitsHandler struct {
	accounts services.AccountStoreInterface
	limits   services.DailyLimitPolicyInterface
	currency string
}

func NewLimitsHandler(accounts services.AccountStoreInterface, limits services.DailyLimitPolicyInterface, cfg config.LimitsConfig) *LimitsHandler {
	return &LimitsHandler{
		accounts: accounts,
		limits:   limits,
		currency: cfg.Currency,
	}
}

// GetLimits
// @Summary Today's caps, usage and remaining allowance
// @Tags Limits
// @Produce json
// @Success 200 {object} dto.LimitsResponse
// @Router /limits [get]
func (h *LimitsHandler) GetLimits(c echo.Context) error {
	return h.respond(c)
}

// SyncLimits replaces the local record with the ledger's view for an account
// @Summary Sync daily limits from the ledger
// @Tags Limits
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.LimitsResponse
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_001"
// @Failure 502 {object} errors.ErrorResponse "Ledger failure"
// @Router /accounts/{id}/limits/sync [post]
func (h *LimitsHandler) SyncLimits(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	account, ok := h.accounts.GetByID(getIDParam(c, "id"))
	if !ok || account.UserID != userID {
		return SendError(c, errors.AccountNotFound)
	}

	if err := h.limits.Sync(c.Request().Context(), account.ID); err != nil {
		return SendGatewayError(c, err)
	}

	return h.respond(c)
}

func (h *LimitsHandler) respond(c echo.Context) error {
	ctx := c.Request().Context()

	withdrawal, err := h.limits.Remaining(ctx, models.LimitCategoryWithdrawal)
	if err != nil {
		return SendSystemError(c, err)
	}
	transfer, err := h.limits.Remaining(ctx, models.LimitCategoryTransfer)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.LimitsResponse{
		DailyLimit:          h.limits.Snapshot(ctx),
		WithdrawalRemaining: withdrawal,
		TransferRemaining:   transfer,
		Currency:            h.currency,
	})
}
