package handlers

import (
	"net/http"

	"banking-client/internal/dto"
	"banking-client/internal/errors"
	"banking-client/internal/models"
	"banking-client/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultRecentLimit = 5

// TransactionHandler serves the transaction cache and runs operations
type TransactionHandler struct {
	accounts     services.AccountStoreInterface
	transactions services.TransactionStoreInterface
	orchestrator services.TransactionOrchestratorInterface
}

func NewTransactionHandler(
	accounts services.AccountStoreInterface,
	transactions services.TransactionStoreInterface,
	orchestrator services.TransactionOrchestratorInterface,
) *TransactionHandler {
	return &TransactionHandler{
		accounts:     accounts,
		transactions: transactions,
		orchestrator: orchestrator,
	}
}

// ListTransactions returns the cached page for the account and reloads it in
// the background. With wait=true the response is held until the reload lands.
// @Summary Transactions of an account
// @Tags Transactions
// @Produce json
// @Param id path string true "Account ID"
// @Param wait query bool false "Wait for the reload"
// @Success 200 {object} dto.TransactionListResponse
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_001"
// @Router /accounts/{id}/transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	accountID, ok := h.ownedAccountID(c)
	if !ok {
		return SendError(c, errors.AccountNotFound)
	}

	transactions, done := h.transactions.ForAccount(c.Request().Context(), accountID)
	if c.QueryParam("wait") == "true" {
		select {
		case <-done:
			transactions = h.transactions.Recent(accountID, len(h.transactions.All()))
		case <-c.Request().Context().Done():
		}
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		AccountID:    accountID,
		Transactions: transactions,
		Count:        len(transactions),
	})
}

// RecentTransactions
// @Summary The latest cached transactions of an account
// @Tags Transactions
// @Produce json
// @Param id path string true "Account ID"
// @Param limit query int false "How many" default(5)
// @Success 200 {object} dto.TransactionListResponse
// @Router /accounts/{id}/transactions/recent [get]
func (h *TransactionHandler) RecentTransactions(c echo.Context) error {
	accountID, ok := h.ownedAccountID(c)
	if !ok {
		return SendError(c, errors.AccountNotFound)
	}

	transactions := h.transactions.Recent(accountID, getIntParam(c, "limit", defaultRecentLimit))
	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		AccountID:    accountID,
		Transactions: transactions,
		Count:        len(transactions),
	})
}

// ReloadTransactions
// @Summary Fetch the transaction page of an account again
// @Tags Transactions
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} dto.TransactionListResponse
// @Router /accounts/{id}/transactions/reload [post]
func (h *TransactionHandler) ReloadTransactions(c echo.Context) error {
	accountID, ok := h.ownedAccountID(c)
	if !ok {
		return SendError(c, errors.AccountNotFound)
	}

	h.transactions.Load(c.Request().Context(), accountID)
	transactions := h.transactions.All()
	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		AccountID:    accountID,
		Transactions: transactions,
		Count:        len(transactions),
	})
}

// Deposit
// @Summary Credit an account
// @Tags Operations
// @Accept json
// @Produce json
// @Param request body dto.DepositRequest true "Deposit"
// @Success 200 {object} dto.OperationResult
// @Failure 422 {object} dto.OperationResult "Rejected locally"
// @Failure 502 {object} dto.OperationResult "Ledger failure"
// @Router /operations/deposit [post]
func (h *TransactionHandler) Deposit(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	var req dto.DepositRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if result := h.checkOwner(userID, req.AccountID); result != nil {
		return SendResult(c, result)
	}

	return SendResult(c, h.orchestrator.Deposit(c.Request().Context(), req))
}

// Withdraw
// @Summary Debit an account within the daily withdrawal limit
// @Tags Operations
// @Accept json
// @Produce json
// @Param request body dto.WithdrawRequest true "Withdrawal"
// @Success 200 {object} dto.OperationResult
// @Failure 422 {object} dto.OperationResult "Rejected locally"
// @Failure 502 {object} dto.OperationResult "Ledger failure"
// @Router /operations/withdraw [post]
func (h *TransactionHandler) Withdraw(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	var req dto.WithdrawRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if result := h.checkOwner(userID, req.AccountID); result != nil {
		return SendResult(c, result)
	}

	return SendResult(c, h.orchestrator.Withdraw(c.Request().Context(), req))
}

// Transfer
// @Summary Move funds to an account number or a saved beneficiary
// @Tags Operations
// @Accept json
// @Produce json
// @Param request body dto.TransferRequest true "Transfer"
// @Success 200 {object} dto.OperationResult
// @Failure 422 {object} dto.OperationResult "Rejected locally"
// @Failure 502 {object} dto.OperationResult "Ledger failure"
// @Router /operations/transfer [post]
func (h *TransactionHandler) Transfer(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	var req dto.TransferRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if result := h.checkOwner(userID, req.FromAccountID); result != nil {
		return SendResult(c, result)
	}

	return SendResult(c, h.orchestrator.Transfer(c.Request().Context(), req))
}

func (h *TransactionHandler) ownedAccountID(c echo.Context) (models.ID, bool) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return models.NilID, false
	}

	accountID := getIDParam(c, "id")
	account, ok := h.accounts.GetByID(accountID)
	if !ok || account.UserID != userID {
		return models.NilID, false
	}
	return accountID, true
}

// checkOwner rejects operations on accounts of another user. Unknown ids are
// left to the orchestrator so they are reported the same way as elsewhere.
func (h *TransactionHandler) checkOwner(userID, accountID models.ID) *dto.OperationResult {
	account, ok := h.accounts.GetByID(accountID)
	if ok && account.UserID != userID {
		return dto.Failed(string(errors.AccountNotFound), errors.GetErrorMessage(errors.AccountNotFound))
	}
	return nil
}
