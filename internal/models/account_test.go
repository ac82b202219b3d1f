package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid savings account",
			account: Account{
				ID:            "1",
				AccountNumber: "ACC001",
				AccountType:   AccountTypeSavings,
				Balance:       decimal.NewFromInt(5000),
				UserID:        "7",
			},
		},
		{
			name: "type spelled by the ledger",
			account: Account{
				ID:            "2",
				AccountNumber: "ACC002",
				AccountType:   "FIXED_DEPOSIT",
				Balance:       decimal.Zero,
			},
		},
		{
			name: "missing id",
			account: Account{
				AccountNumber: "ACC001",
				Balance:       decimal.NewFromInt(10),
			},
			wantErr: true,
			errMsg:  "account ID is required",
		},
		{
			name: "missing account number",
			account: Account{
				ID:      "1",
				Balance: decimal.NewFromInt(10),
			},
			wantErr: true,
			errMsg:  "account number is required",
		},
		{
			name: "negative balance",
			account: Account{
				ID:            "1",
				AccountNumber: "ACC001",
				Balance:       decimal.NewFromInt(-1),
			},
			wantErr: true,
			errMsg:  ErrInvalidBalance.Error(),
		},
		{
			name: "unknown type",
			account: Account{
				ID:            "1",
				AccountNumber: "ACC001",
				AccountType:   "Brokerage",
			},
			wantErr: true,
			errMsg:  ErrInvalidAccountType.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeAccountType(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"SAVINGS", AccountTypeSavings, true},
		{"savings", AccountTypeSavings, true},
		{"Checking", AccountTypeChecking, true},
		{"CURRENT", AccountTypeChecking, true},
		{"fixed_deposit", AccountTypeFixedDeposit, true},
		{"Fixed Deposit", AccountTypeFixedDeposit, true},
		{"fixed-deposit", AccountTypeFixedDeposit, true},
		{"loan", "loan", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := NormalizeAccountType(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestAccount_BalanceHelpers(t *testing.T) {
	account := Account{
		ID:               "1",
		AccountNumber:    "ACC001",
		Balance:          decimal.NewFromInt(1000),
		ConfirmedBalance: decimal.NewFromInt(1000),
	}

	assert.True(t, account.HasSufficientBalance(decimal.NewFromInt(1000)))
	assert.False(t, account.HasSufficientBalance(decimal.NewFromInt(1001)))
	assert.True(t, account.IsReconciled())
	assert.True(t, account.IsActive())

	account.Balance = decimal.NewFromInt(800)
	account.SyncState = SyncStatePending
	assert.False(t, account.IsReconciled())
	assert.True(t, account.PendingDelta().Equal(decimal.NewFromInt(-200)))

	account.MarkConfirmed()
	assert.True(t, account.IsReconciled())
	assert.True(t, account.PendingDelta().IsZero())

	account.Status = "closed"
	assert.False(t, account.IsActive())
}
