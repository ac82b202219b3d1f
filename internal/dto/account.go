package dto

import (
	"banking-client/internal/models"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest opens a new account for the signed-in user
type CreateAccountRequest struct {
	AccountType string `json:"accountType" validate:"required,account_type"`
}

// LedgerCreateAccountRequest is the body of POST /accounts
type LedgerCreateAccountRequest struct {
	AccountType string    `json:"accountType"`
	UserID      models.ID `json:"userId"`
}

// AccountUpdate carries the fields of PUT /accounts/{id}. Unset fields are
// left untouched by the ledger.
type AccountUpdate struct {
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	AccountType string           `json:"accountType,omitempty"`
	Status      string           `json:"status,omitempty"`
}

// BalanceUpdate is the update sent after an optimistic balance change
func BalanceUpdate(balance decimal.Decimal) AccountUpdate {
	return AccountUpdate{Balance: &balance}
}

// SelectAccountRequest focuses an account in the views
type SelectAccountRequest struct {
	AccountID models.ID `json:"accountId" validate:"required"`
}

// AccountListResponse lists the signed-in user's accounts
type AccountListResponse struct {
	Accounts     []models.Account `json:"accounts"`
	TotalBalance decimal.Decimal  `json:"totalBalance"`
	Selected     *models.Account  `json:"selected,omitempty"`
}
