package handlers

import (
	stderrors "errors"
	"net/http"

	"banking-client/internal/dto"
	"banking-client/internal/errors"
	"banking-client/internal/models"
	"banking-client/internal/services"

	"github.com/labstack/echo/v4"
)

// AccountHandler exposes the account store to views
type AccountHandler struct {
	accounts services.AccountStoreInterface
}

func NewAccountHandler(accounts services.AccountStoreInterface) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// ListAccounts
// @Summary The signed-in user's accounts
// @Tags Accounts
// @Produce json
// @Success 200 {object} dto.AccountListResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_002"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	return c.JSON(http.StatusOK, h.listFor(userID))
}

// ReloadAccounts fetches the accounts from the ledger again. On failure the
// mirrored copy is served.
// @Summary Reload accounts
// @Tags Accounts
// @Produce json
// @Success 200 {object} dto.AccountListResponse
// @Router /accounts/reload [post]
func (h *AccountHandler) ReloadAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	h.accounts.Load(c.Request().Context(), userID)
	return c.JSON(http.StatusOK, h.listFor(userID))
}

// GetAccount
// @Summary One account of the signed-in user
// @Tags Accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} SuccessResponse{data=models.Account}
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_001"
// @Router /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	account, ok := h.ownAccount(userID, getIDParam(c, "id"))
	if !ok {
		return SendError(c, errors.AccountNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: account})
}

// CreateAccount
// @Summary Open an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account type"
// @Success 201 {object} SuccessResponse{data=models.Account}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or ACCOUNT_004"
// @Failure 502 {object} errors.ErrorResponse "Ledger rejection or NETWORK_001"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	account, err := h.accounts.Create(c.Request().Context(), req.AccountType, userID)
	if err != nil {
		switch {
		case stderrors.Is(err, models.ErrInvalidAccountType):
			return SendError(c, errors.AccountInvalidType)
		case stderrors.Is(err, services.ErrNoAccountCreated):
			return SendError(c, errors.NetworkInvalidReply)
		default:
			return SendGatewayError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    account,
		Message: "Account created successfully",
	})
}

// GetSelected
// @Summary The account focused in the views
// @Tags Accounts
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.Account}
// @Router /accounts/selected [get]
func (h *AccountHandler) GetSelected(c echo.Context) error {
	selected, ok := h.accounts.Selected()
	if !ok {
		return c.JSON(http.StatusOK, SuccessResponse{Message: "No account selected"})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: selected})
}

// SelectAccount
// @Summary Focus an account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.SelectAccountRequest true "Account to focus"
// @Success 200 {object} SuccessResponse{data=models.Account}
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_001"
// @Router /accounts/selected [put]
func (h *AccountHandler) SelectAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	var req dto.SelectAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if _, ok := h.ownAccount(userID, req.AccountID); !ok {
		return SendError(c, errors.AccountNotFound)
	}

	if err := h.accounts.Select(c.Request().Context(), req.AccountID); err != nil {
		if stderrors.Is(err, services.ErrAccountNotFound) {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	selected, _ := h.accounts.Selected()
	return c.JSON(http.StatusOK, SuccessResponse{Data: selected})
}

func (h *AccountHandler) listFor(userID models.ID) dto.AccountListResponse {
	response := dto.AccountListResponse{
		Accounts:     h.accounts.GetByUser(userID),
		TotalBalance: h.accounts.TotalBalance(userID),
	}
	if selected, ok := h.accounts.Selected(); ok && selected.UserID == userID {
		response.Selected = &selected
	}
	return response
}

func (h *AccountHandler) ownAccount(userID, accountID models.ID) (models.Account, bool) {
	account, ok := h.accounts.GetByID(accountID)
	if !ok || account.UserID != userID {
		return models.Account{}, false
	}
	return account, true
}
