package gateway

import (
	"context"
	"time"

	"banking-client/internal/dto"
	"banking-client/internal/models"

	"github.com/shopspring/decimal"
)

// LoginResult is what a successful sign-in yields
type LoginResult struct {
	User     models.User
	Token    string
	Accounts []models.Account
}

// Gateway is the typed contract of the remote ledger. Every failure is a
// *Error. Absent results are nil pointers or nil slices; an empty list
// reported by the ledger is a non-nil empty slice.
type Gateway interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error)

	GetAccountsForUser(ctx context.Context, userID models.ID) ([]models.Account, error)
	GetAccount(ctx context.Context, accountID models.ID) (*models.Account, error)
	CreateAccount(ctx context.Context, accountType string, userID models.ID) (*models.Account, error)
	UpdateAccount(ctx context.Context, accountID models.ID, update dto.AccountUpdate) (*models.Account, error)

	SubmitDeposit(ctx context.Context, accountID models.ID, amount decimal.Decimal, description string) (*models.Transaction, error)
	SubmitWithdrawal(ctx context.Context, accountID models.ID, amount decimal.Decimal, description string) (*models.Transaction, error)
	SubmitTransfer(ctx context.Context, accountID models.ID, destinationAccountNumber string, amount decimal.Decimal, description string) (*models.Transaction, error)

	GetTransactionHistory(ctx context.Context, accountID models.ID) ([]models.Transaction, error)
	GetRecentTransactions(ctx context.Context, accountID models.ID, limit int) ([]models.Transaction, error)
	GetMonthlySummary(ctx context.Context, accountID models.ID, month, year int) (*models.TransactionSummary, error)
	GetDailyLimits(ctx context.Context, accountID models.ID) (*models.DailyLimit, error)

	GetBeneficiaries(ctx context.Context, userID models.ID) ([]models.Beneficiary, error)
	AddBeneficiary(ctx context.Context, userID models.ID, beneficiary models.Beneficiary) (*models.Beneficiary, error)
	UpdateBeneficiary(ctx context.Context, beneficiary models.Beneficiary) (*models.Beneficiary, error)
	DeleteBeneficiary(ctx context.Context, beneficiaryID models.ID) error
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// MetricsRecorder is the subset of the metrics recorder the client reports to
type MetricsRecorder interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}
