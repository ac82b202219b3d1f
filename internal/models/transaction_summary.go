package models

import "github.com/shopspring/decimal"

// TransactionSummary aggregates one calendar month of an account's activity
type TransactionSummary struct {
	Month             int             `json:"month"`
	Year              int             `json:"year"`
	TotalDeposits     decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals  decimal.Decimal `json:"totalWithdrawals"`
	TotalTransfers    decimal.Decimal `json:"totalTransfers"`
	TransactionCount  int             `json:"transactionCount"`
	DepositChange     decimal.Decimal `json:"depositChange"`
	WithdrawalChange  decimal.Decimal `json:"withdrawalChange"`
	TransferChange    decimal.Decimal `json:"transferChange"`
	TransactionChange int             `json:"transactionChange"`
}

// ZeroSummary is shown when the ledger cannot produce a summary
func ZeroSummary(month, year int) *TransactionSummary {
	return &TransactionSummary{
		Month:            month,
		Year:             year,
		TotalDeposits:    decimal.Zero,
		TotalWithdrawals: decimal.Zero,
		TotalTransfers:   decimal.Zero,
		DepositChange:    decimal.Zero,
		WithdrawalChange: decimal.Zero,
		TransferChange:   decimal.Zero,
	}
}

// NetFlow is deposits minus everything that left the account
func (s *TransactionSummary) NetFlow() decimal.Decimal {
	return s.TotalDeposits.Sub(s.TotalWithdrawals).Sub(s.TotalTransfers)
}
