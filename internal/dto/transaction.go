package dto

import (
	"banking-client/internal/models"

	"github.com/shopspring/decimal"
)

// DepositRequest is a view's request to credit an account
type DepositRequest struct {
	AccountID   models.ID       `json:"accountId" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"max=255"`
}

// WithdrawRequest is a view's request to debit an account
type WithdrawRequest struct {
	AccountID   models.ID       `json:"accountId" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"max=255"`
}

// TransferRequest moves funds to an account identified by number. When
// BeneficiaryID is set and ToAccountNumber is empty, the saved beneficiary's
// number is used.
type TransferRequest struct {
	FromAccountID   models.ID       `json:"fromAccountId" validate:"required"`
	ToAccountNumber string          `json:"toAccountNumber" validate:"max=34"`
	BeneficiaryID   models.ID       `json:"beneficiaryId,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description" validate:"max=255"`
}

// OperationResult is the outcome of a deposit, withdrawal or transfer. Every
// failure, local or remote, is reported through it rather than as an error.
type OperationResult struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Code        string              `json:"code,omitempty"`
	Transaction *models.Transaction `json:"transaction,omitempty"`
}

func Succeeded(message string, tx *models.Transaction) *OperationResult {
	return &OperationResult{Success: true, Message: message, Transaction: tx}
}

func Failed(code, message string) *OperationResult {
	return &OperationResult{Success: false, Code: code, Message: message}
}

// TransactionListResponse is a filtered slice of the transaction cache
type TransactionListResponse struct {
	AccountID    models.ID            `json:"accountId"`
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
}

// LimitsResponse is the daily limit snapshot with derived allowances
type LimitsResponse struct {
	models.DailyLimit
	WithdrawalRemaining decimal.Decimal `json:"withdrawalRemaining"`
	TransferRemaining   decimal.Decimal `json:"transferRemaining"`
	Currency            string          `json:"currency"`
}
