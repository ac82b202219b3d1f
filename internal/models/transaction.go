package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeDeposit    = "Deposit"
	TransactionTypeWithdrawal = "Withdrawal"
	TransactionTypeTransfer   = "Transfer"

	TransactionStatusPending   = "PENDING"
	TransactionStatusCompleted = "COMPLETED"
	TransactionStatusFailed    = "FAILED"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
	ErrMissingDestination     = errors.New("transfer requires a destination account")
	ErrUnexpectedDestination  = errors.New("only transfers carry a destination account")
)

// Transaction is an immutable ledger entry as seen by the client
type Transaction struct {
	ID                       ID               `json:"id"`
	Reference                string           `json:"transactionId,omitempty"`
	Type                     string           `json:"transactionType"`
	Amount                   decimal.Decimal  `json:"amount"`
	SourceAccountID          ID               `json:"fromAccountId"`
	SourceAccountNumber      string           `json:"fromAccountNumber,omitempty"`
	DestinationAccountID     ID               `json:"toAccountId,omitempty"`
	DestinationAccountNumber string           `json:"toAccountNumber,omitempty"`
	Description              string           `json:"description"`
	Timestamp                time.Time        `json:"date"`
	BalanceAfter             *decimal.Decimal `json:"balanceAfter,omitempty"`
	Status                   string           `json:"status,omitempty"`
	RecipientName            string           `json:"recipientName,omitempty"`
}

// Validate enforces the shape rules of a transaction
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	hasDestination := !t.DestinationAccountID.IsZero() || t.DestinationAccountNumber != ""
	if t.Type == TransactionTypeTransfer && !hasDestination {
		return ErrMissingDestination
	}
	if t.Type != TransactionTypeTransfer && hasDestination {
		return ErrUnexpectedDestination
	}

	return nil
}

// Involves reports whether the account is the source or the destination
func (t *Transaction) Involves(accountID ID) bool {
	if accountID.IsZero() {
		return false
	}
	return t.SourceAccountID == accountID || t.DestinationAccountID == accountID
}

// IsDebit returns true for entries that reduce the source balance
func (t *Transaction) IsDebit() bool {
	return t.Type == TransactionTypeWithdrawal || t.Type == TransactionTypeTransfer
}

// IsValidTransactionType checks the closed set of transaction types
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}

// NormalizeTransactionType maps DEPOSIT/withdraw/TRANSFER_OUT style spellings
// onto the canonical constants.
func NormalizeTransactionType(transactionType string) (string, bool) {
	key := strings.ToUpper(strings.TrimSpace(transactionType))
	switch {
	case strings.HasPrefix(key, "DEPOSIT"), key == "CREDIT":
		return TransactionTypeDeposit, true
	case strings.HasPrefix(key, "WITHDRAW"), key == "DEBIT":
		return TransactionTypeWithdrawal, true
	case strings.HasPrefix(key, "TRANSFER"):
		return TransactionTypeTransfer, true
	default:
		return transactionType, false
	}
}
