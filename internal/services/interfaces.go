package services

import (
	"context"
	"time"

	"banking-client/internal/dto"
	"banking-client/internal/models"

	"github.com/shopspring/decimal"
)

// AccountStoreInterface owns the local account collection. It is the only
// writer of accounts; lookups return copies.
type AccountStoreInterface interface {
	Load(ctx context.Context, userID models.ID)
	Hydrate(ctx context.Context, accounts []models.Account)
	Restore(ctx context.Context)
	All() []models.Account
	GetByUser(userID models.ID) []models.Account
	GetByID(id models.ID) (models.Account, bool)
	GetByNumber(number string) (models.Account, bool)
	Select(ctx context.Context, accountID models.ID) error
	Selected() (models.Account, bool)
	Create(ctx context.Context, accountType string, userID models.ID) (*models.Account, error)
	ApplyBalanceDelta(ctx context.Context, accountID models.ID, newBalance decimal.Decimal) error
	Wait()
	TotalBalance(userID models.ID) decimal.Decimal
	Reset()
}

// TransactionStoreInterface caches the last fetched transaction page
type TransactionStoreInterface interface {
	Load(ctx context.Context, accountID models.ID)
	Recent(accountID models.ID, limit int) []models.Transaction
	// ForAccount returns the cache as it is now and reloads it in the
	// background. The channel is closed once the reload has been applied.
	ForAccount(ctx context.Context, accountID models.ID) ([]models.Transaction, <-chan struct{})
	All() []models.Transaction
	Reset()
}

// DailyLimitPolicyInterface tracks usage against the per-day caps. Every read
// applies the day-boundary reset first.
type DailyLimitPolicyInterface interface {
	Remaining(ctx context.Context, category models.LimitCategory) (decimal.Decimal, error)
	CanSpend(ctx context.Context, category models.LimitCategory, amount decimal.Decimal) (bool, error)
	RecordUsage(ctx context.Context, category models.LimitCategory, amount decimal.Decimal) error
	Snapshot(ctx context.Context) models.DailyLimit
	Restore(ctx context.Context)
	Sync(ctx context.Context, accountID models.ID) error
	Reset(ctx context.Context)
}

type TransactionOrchestratorInterface interface {
	Deposit(ctx context.Context, req dto.DepositRequest) *dto.OperationResult
	Withdraw(ctx context.Context, req dto.WithdrawRequest) *dto.OperationResult
	Transfer(ctx context.Context, req dto.TransferRequest) *dto.OperationResult
}

// RefreshBroadcasterInterface is a payload-less publish/subscribe channel
type RefreshBroadcasterInterface interface {
	Subscribe() (<-chan struct{}, func())
	Publish()
	Published() uint64
}

type BeneficiaryServiceInterface interface {
	Load(ctx context.Context, userID models.ID) error
	List(userID models.ID) []models.Beneficiary
	Add(ctx context.Context, userID models.ID, req dto.BeneficiaryRequest) (*models.Beneficiary, error)
	Update(ctx context.Context, beneficiaryID models.ID, req dto.BeneficiaryRequest) (*models.Beneficiary, error)
	Delete(ctx context.Context, beneficiaryID models.ID) error
	// DestinationFor returns the account number a transfer to the beneficiary uses
	DestinationFor(beneficiaryID models.ID) (string, error)
	Restore(ctx context.Context)
	Reset()
}

type SessionServiceInterface interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.SessionResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error)
	Restore(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser() (*models.User, bool)
}

type StatementServiceInterface interface {
	MiniStatement(ctx context.Context, accountID models.ID, limit int) ([]models.Transaction, error)
	// MonthlySummary never fails on ledger errors; it returns a zero summary instead
	MonthlySummary(ctx context.Context, accountID models.ID, month, year int) (*models.TransactionSummary, error)
}

// TokenSealerInterface protects the session token while it rests in the mirror
type TokenSealerInterface interface {
	Seal(token string) (string, error)
	Open(sealed string) (string, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogOperationStarted(ctx context.Context, operation string, accountID models.ID, amount string)
	LogOperationRejected(ctx context.Context, operation string, accountID models.ID, code, reason string)
	LogOperationCompleted(ctx context.Context, operation string, accountID models.ID, reference string, durationMs int64)
	LogOperationFailed(ctx context.Context, operation string, accountID models.ID, code, errorMsg string, durationMs int64)
	LogBalanceUpdate(ctx context.Context, accountID models.ID, oldBalance, newBalance string)
	LogReconciliationFailed(ctx context.Context, accountID models.ID, localBalance, confirmedBalance, errorMsg string, reverted bool)
	LogLimitUsage(ctx context.Context, category models.LimitCategory, used, limit string)
	LogLimitReset(ctx context.Context, resetDate time.Time)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogSessionEvent(ctx context.Context, event string, userID models.ID)
}
