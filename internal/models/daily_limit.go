package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// LimitCategory is one of the per-day capped operation kinds
type LimitCategory string

const (
	LimitCategoryWithdrawal LimitCategory = "withdrawal"
	LimitCategoryTransfer   LimitCategory = "transfer"
)

var ErrInvalidLimitCategory = errors.New("invalid daily limit category")

// DailyLimit tracks cumulative usage against the per-day caps.
// used <= cap is enforced by callers checking before they record usage.
type DailyLimit struct {
	WithdrawalLimit decimal.Decimal `json:"withdrawalLimit"`
	WithdrawalUsed  decimal.Decimal `json:"withdrawalUsed"`
	TransferLimit   decimal.Decimal `json:"transferLimit"`
	TransferUsed    decimal.Decimal `json:"transferUsed"`
	LastResetDate   time.Time       `json:"lastResetDate"`
}

// Cap returns the configured cap of a category
func (d *DailyLimit) Cap(category LimitCategory) (decimal.Decimal, error) {
	switch category {
	case LimitCategoryWithdrawal:
		return d.WithdrawalLimit, nil
	case LimitCategoryTransfer:
		return d.TransferLimit, nil
	default:
		return decimal.Zero, ErrInvalidLimitCategory
	}
}

// Used returns the usage recorded so far today for a category
func (d *DailyLimit) Used(category LimitCategory) (decimal.Decimal, error) {
	switch category {
	case LimitCategoryWithdrawal:
		return d.WithdrawalUsed, nil
	case LimitCategoryTransfer:
		return d.TransferUsed, nil
	default:
		return decimal.Zero, ErrInvalidLimitCategory
	}
}

// AddUsage increments the used counter of a category without clamping
func (d *DailyLimit) AddUsage(category LimitCategory, amount decimal.Decimal) error {
	switch category {
	case LimitCategoryWithdrawal:
		d.WithdrawalUsed = d.WithdrawalUsed.Add(amount)
	case LimitCategoryTransfer:
		d.TransferUsed = d.TransferUsed.Add(amount)
	default:
		return ErrInvalidLimitCategory
	}
	return nil
}

// IsStale reports whether the record was last reset on an earlier calendar day
// than today, both dates taken in today's location.
func (d *DailyLimit) IsStale(today time.Time) bool {
	return !SameDay(d.LastResetDate.In(today.Location()), today)
}

// ResetUsage zeroes both counters and stamps the reset date. Caps are kept.
func (d *DailyLimit) ResetUsage(today time.Time) {
	d.WithdrawalUsed = decimal.Zero
	d.TransferUsed = decimal.Zero
	d.LastResetDate = today
}

// SameDay compares calendar dates
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsValidLimitCategory checks the closed set of limit categories
func IsValidLimitCategory(category LimitCategory) bool {
	return category == LimitCategoryWithdrawal || category == LimitCategoryTransfer
}
