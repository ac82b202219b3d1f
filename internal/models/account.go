package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	AccountTypeSavings      = "Savings"
	AccountTypeChecking     = "Checking"
	AccountTypeFixedDeposit = "Fixed Deposit"

	AccountStatusActive   = "ACTIVE"
	AccountStatusInactive = "INACTIVE"
	AccountStatusClosed   = "CLOSED"

	// Local reconciliation state of the optimistic balance
	SyncStateSynced       = "synced"
	SyncStatePending      = "pending"
	SyncStateUnreconciled = "unreconciled"
)

var (
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrInvalidBalance     = errors.New("balance cannot be negative")
	ErrAccountNotActive   = errors.New("account is not active")
)

// Account is the local copy of a ledger account. Balance is optimistic:
// ConfirmedBalance holds the last value the ledger acknowledged.
type Account struct {
	ID               ID              `json:"id"`
	AccountNumber    string          `json:"accountNumber"`
	AccountType      string          `json:"accountType"`
	Balance          decimal.Decimal `json:"balance"`
	UserID           ID              `json:"userId"`
	InterestRate     decimal.Decimal `json:"interestRate"`
	Status           string          `json:"status"`
	CreatedDate      time.Time       `json:"createdDate"`
	ConfirmedBalance decimal.Decimal `json:"confirmedBalance"`
	SyncState        string          `json:"syncState,omitempty"`
}

// Validate checks the fields a store relies on
func (a *Account) Validate() error {
	if a.ID.IsZero() {
		return errors.New("account ID is required")
	}

	if a.AccountNumber == "" {
		return errors.New("account number is required")
	}

	if a.Balance.IsNegative() {
		return ErrInvalidBalance
	}

	if a.AccountType != "" && !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}

	return nil
}

// IsActive returns true unless the ledger reported the account inactive or closed.
// An empty status is treated as active, as the ledger omits it on some endpoints.
func (a *Account) IsActive() bool {
	status := strings.ToUpper(a.Status)
	return status == "" || status == AccountStatusActive
}

// HasSufficientBalance reports whether amount can leave the account
func (a *Account) HasSufficientBalance(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// PendingDelta is the locally applied change the ledger has not yet confirmed
func (a *Account) PendingDelta() decimal.Decimal {
	return a.Balance.Sub(a.ConfirmedBalance)
}

// IsReconciled reports whether the local balance matches the last confirmed one
func (a *Account) IsReconciled() bool {
	return a.SyncState == "" || a.SyncState == SyncStateSynced
}

// MarkConfirmed records the current balance as acknowledged by the ledger
func (a *Account) MarkConfirmed() {
	a.ConfirmedBalance = a.Balance
	a.SyncState = SyncStateSynced
}

// IsValidAccountType checks if the account type is one of the fixed set
func IsValidAccountType(accountType string) bool {
	_, ok := NormalizeAccountType(accountType)
	return ok
}

// NormalizeAccountType maps the spellings used by the ledger and the views
// (SAVINGS, fixed_deposit, "Fixed Deposit") onto the canonical constants.
func NormalizeAccountType(accountType string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(accountType))
	key = strings.NewReplacer("_", " ", "-", " ").Replace(key)

	switch key {
	case "savings":
		return AccountTypeSavings, true
	case "checking", "current":
		return AccountTypeChecking, true
	case "fixed deposit", "fixed":
		return AccountTypeFixedDeposit, true
	default:
		return accountType, false
	}
}
