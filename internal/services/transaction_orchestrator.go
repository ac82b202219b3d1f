package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"banking-client/internal/config"
	"banking-client/internal/dto"
	apperrors "banking-client/internal/errors"
	"banking-client/internal/gateway"
	"banking-client/internal/models"
	"banking-client/internal/validation"

	"github.com/shopspring/decimal"
)

const (
	operationDeposit    = "deposit"
	operationWithdrawal = "withdrawal"
	operationTransfer   = "transfer"
)

// DestinationResolver turns a saved beneficiary into a transfer destination
type DestinationResolver interface {
	DestinationFor(beneficiaryID models.ID) (string, error)
}

// TransactionOrchestrator runs deposits, withdrawals and transfers: local
// checks, the ledger call, then the local balance, limit and refresh updates.
// Every outcome is an OperationResult.
type TransactionOrchestrator struct {
	accounts     AccountStoreInterface
	limits       DailyLimitPolicyInterface
	destinations DestinationResolver
	refresh      RefreshBroadcasterInterface
	gateway      gateway.Gateway
	sequencer    *AccountSequencer
	validator    *validation.Validator
	limitsConfig config.LimitsConfig
	audit        AuditLoggerInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewTransactionOrchestrator wires the orchestrator. A nil sequencer lets
// operations on the same account interleave.
func NewTransactionOrchestrator(
	accounts AccountStoreInterface,
	limits DailyLimitPolicyInterface,
	destinations DestinationResolver,
	refresh RefreshBroadcasterInterface,
	gw gateway.Gateway,
	sequencer *AccountSequencer,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	cfg config.LimitsConfig,
) *TransactionOrchestrator {
	return &TransactionOrchestrator{
		accounts:     accounts,
		limits:       limits,
		destinations: destinations,
		refresh:      refresh,
		gateway:      gw,
		sequencer:    sequencer,
		validator:    validation.GetValidator(),
		limitsConfig: cfg,
		audit:        audit,
		metrics:      metrics,
		logger:       logger,
	}
}

func (o *TransactionOrchestrator) Deposit(ctx context.Context, req dto.DepositRequest) *dto.OperationResult {
	start := time.Now()

	if result := o.checkRequest(ctx, operationDeposit, req.AccountID, req, req.Amount, decimal.Zero); result != nil {
		return result
	}

	unlock, err := o.sequencer.Lock(ctx, accountKey(req.AccountID))
	if err != nil {
		return o.cancelled(ctx, operationDeposit, req.AccountID, err, start)
	}
	defer unlock()

	// past this point the ledger may commit, so the caller leaving must not
	// abort the request or the local bookkeeping that follows it
	ctx = context.WithoutCancel(ctx)

	account, ok := o.accounts.GetByID(req.AccountID)
	if !ok {
		return o.reject(ctx, operationDeposit, req.AccountID, apperrors.AccountNotFound, "Account not found")
	}

	o.audit.LogOperationStarted(ctx, operationDeposit, account.ID, req.Amount.StringFixed(2))

	tx, err := o.gateway.SubmitDeposit(ctx, account.ID, req.Amount, req.Description)
	if err != nil {
		return o.fail(ctx, operationDeposit, account.ID, err, "Deposit failed", start)
	}

	o.credit(ctx, account.ID, req.Amount)

	if tx == nil {
		tx = synthesize(models.TransactionTypeDeposit, account, "", req.Amount, req.Description)
	}
	return o.succeed(ctx, operationDeposit, account.ID, req.Amount, "Deposit successful", tx, start)
}

func (o *TransactionOrchestrator) Withdraw(ctx context.Context, req dto.WithdrawRequest) *dto.OperationResult {
	start := time.Now()

	if result := o.checkRequest(ctx, operationWithdrawal, req.AccountID, req, req.Amount, o.limitsConfig.WithdrawalMinimum); result != nil {
		return result
	}

	unlock, err := o.sequencer.Lock(ctx, accountKey(req.AccountID), limitKey(models.LimitCategoryWithdrawal))
	if err != nil {
		return o.cancelled(ctx, operationWithdrawal, req.AccountID, err, start)
	}
	defer unlock()

	// past this point the ledger may commit, so the caller leaving must not
	// abort the request or the local bookkeeping that follows it
	ctx = context.WithoutCancel(ctx)

	account, ok := o.accounts.GetByID(req.AccountID)
	if !ok {
		return o.reject(ctx, operationWithdrawal, req.AccountID, apperrors.AccountNotFound, "Account not found")
	}

	if result := o.checkFunds(ctx, operationWithdrawal, account, models.LimitCategoryWithdrawal, req.Amount); result != nil {
		return result
	}

	o.audit.LogOperationStarted(ctx, operationWithdrawal, account.ID, req.Amount.StringFixed(2))

	tx, err := o.gateway.SubmitWithdrawal(ctx, account.ID, req.Amount, req.Description)
	if err != nil {
		return o.fail(ctx, operationWithdrawal, account.ID, err, "Withdrawal failed", start)
	}

	o.credit(ctx, account.ID, req.Amount.Neg())
	o.recordUsage(ctx, models.LimitCategoryWithdrawal, req.Amount)

	if tx == nil {
		tx = synthesize(models.TransactionTypeWithdrawal, account, "", req.Amount, req.Description)
	}
	return o.succeed(ctx, operationWithdrawal, account.ID, req.Amount, "Withdrawal successful", tx, start)
}

func (o *TransactionOrchestrator) Transfer(ctx context.Context, req dto.TransferRequest) *dto.OperationResult {
	start := time.Now()

	if result := o.checkRequest(ctx, operationTransfer, req.FromAccountID, req, req.Amount, o.limitsConfig.TransferMinimum); result != nil {
		return result
	}

	destination := strings.TrimSpace(req.ToAccountNumber)
	if destination == "" && !req.BeneficiaryID.IsZero() {
		number, err := o.destinations.DestinationFor(req.BeneficiaryID)
		if err != nil {
			return o.reject(ctx, operationTransfer, req.FromAccountID, apperrors.BeneficiaryNotFound, apperrors.GetErrorMessage(apperrors.BeneficiaryNotFound))
		}
		destination = number
	}

	keys := []string{accountKey(req.FromAccountID), limitKey(models.LimitCategoryTransfer)}
	local, hasLocal := o.accounts.GetByNumber(destination)
	if hasLocal {
		keys = append(keys, accountKey(local.ID))
	}

	unlock, err := o.sequencer.Lock(ctx, keys...)
	if err != nil {
		return o.cancelled(ctx, operationTransfer, req.FromAccountID, err, start)
	}
	defer unlock()

	// past this point the ledger may commit, so the caller leaving must not
	// abort the request or the local bookkeeping that follows it
	ctx = context.WithoutCancel(ctx)

	account, ok := o.accounts.GetByID(req.FromAccountID)
	if !ok {
		return o.reject(ctx, operationTransfer, req.FromAccountID, apperrors.AccountNotFound, "Source account not found")
	}

	if destination == "" {
		return o.reject(ctx, operationTransfer, account.ID, apperrors.TransactionMissingRecipient, apperrors.GetErrorMessage(apperrors.TransactionMissingRecipient))
	}
	if destination == account.AccountNumber {
		return o.reject(ctx, operationTransfer, account.ID, apperrors.TransactionSameAccount, apperrors.GetErrorMessage(apperrors.TransactionSameAccount))
	}

	if result := o.checkFunds(ctx, operationTransfer, account, models.LimitCategoryTransfer, req.Amount); result != nil {
		return result
	}

	o.audit.LogOperationStarted(ctx, operationTransfer, account.ID, req.Amount.StringFixed(2))

	tx, err := o.gateway.SubmitTransfer(ctx, account.ID, destination, req.Amount, req.Description)
	if err != nil {
		return o.fail(ctx, operationTransfer, account.ID, err, "Transfer failed", start)
	}

	o.credit(ctx, account.ID, req.Amount.Neg())
	if hasLocal && local.ID != account.ID {
		o.credit(ctx, local.ID, req.Amount)
	}
	o.recordUsage(ctx, models.LimitCategoryTransfer, req.Amount)

	if tx == nil {
		tx = synthesize(models.TransactionTypeTransfer, account, destination, req.Amount, req.Description)
		if hasLocal {
			tx.DestinationAccountID = local.ID
		}
	}
	return o.succeed(ctx, operationTransfer, account.ID, req.Amount, "Transfer successful", tx, start)
}

// checkRequest runs the checks that need no state: struct tags, a positive
// amount and the configured minimum.
func (o *TransactionOrchestrator) checkRequest(ctx context.Context, operation string, accountID models.ID, req any, amount, minimum decimal.Decimal) *dto.OperationResult {
	if err := o.validator.Struct(req); err != nil {
		return o.reject(ctx, operation, accountID, apperrors.ValidationGeneral, validation.FirstMessage(err))
	}

	if !amount.IsPositive() {
		return o.reject(ctx, operation, accountID, apperrors.ValidationInvalidAmount, apperrors.GetErrorMessage(apperrors.ValidationInvalidAmount))
	}

	if minimum.IsPositive() && amount.LessThan(minimum) {
		message := fmt.Sprintf("Minimum %s amount is %s %s", operation, o.limitsConfig.Currency, minimum.StringFixed(2))
		return o.reject(ctx, operation, accountID, apperrors.ValidationBelowMinimum, message)
	}

	return nil
}

// checkFunds checks the balance and then the daily allowance of the category
func (o *TransactionOrchestrator) checkFunds(ctx context.Context, operation string, account models.Account, category models.LimitCategory, amount decimal.Decimal) *dto.OperationResult {
	if !account.HasSufficientBalance(amount) {
		return o.reject(ctx, operation, account.ID, apperrors.AccountInsufficientBalance, "Insufficient balance")
	}

	allowed, err := o.limits.CanSpend(ctx, category, amount)
	if err != nil {
		return o.reject(ctx, operation, account.ID, apperrors.LimitInvalidCategory, err.Error())
	}
	if allowed {
		return nil
	}

	remaining, err := o.limits.Remaining(ctx, category)
	if err != nil {
		return o.reject(ctx, operation, account.ID, apperrors.LimitInvalidCategory, err.Error())
	}
	message := fmt.Sprintf("Daily %s limit exceeded. Remaining: %s %s", category, o.limitsConfig.Currency, remaining.StringFixed(2))
	return o.reject(ctx, operation, account.ID, apperrors.LimitExceeded, message)
}

// credit applies a signed change to the account's current local balance
func (o *TransactionOrchestrator) credit(ctx context.Context, accountID models.ID, delta decimal.Decimal) {
	account, ok := o.accounts.GetByID(accountID)
	if !ok {
		return
	}
	if err := o.accounts.ApplyBalanceDelta(ctx, accountID, account.Balance.Add(delta)); err != nil {
		o.logger.WarnContext(ctx, "failed to apply local balance change",
			slog.String("account_id", accountID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (o *TransactionOrchestrator) recordUsage(ctx context.Context, category models.LimitCategory, amount decimal.Decimal) {
	if err := o.limits.RecordUsage(ctx, category, amount); err != nil {
		o.logger.WarnContext(ctx, "failed to record daily limit usage",
			slog.String("category", string(category)),
			slog.String("error", err.Error()),
		)
	}
}

func (o *TransactionOrchestrator) reject(ctx context.Context, operation string, accountID models.ID, code apperrors.ErrorCode, message string) *dto.OperationResult {
	o.audit.LogOperationRejected(ctx, operation, accountID, string(code), message)
	o.metrics.IncrementCounter("operation.rejected", map[string]string{
		"operation": operation,
		"reason":    string(code),
	})
	return dto.Failed(string(code), message)
}

func (o *TransactionOrchestrator) fail(ctx context.Context, operation string, accountID models.ID, err error, fallback string, start time.Time) *dto.OperationResult {
	message := gateway.MessageOf(err)
	if message == "" {
		message = fallback
	}
	code := gateway.CodeOf(err)
	duration := time.Since(start)

	o.audit.LogOperationFailed(ctx, operation, accountID, code, err.Error(), duration.Milliseconds())
	o.metrics.IncrementCounter("operation.failed", map[string]string{"operation": operation})
	o.metrics.RecordProcessingTime("operation."+operation, duration)
	return dto.Failed(code, message)
}

func (o *TransactionOrchestrator) cancelled(ctx context.Context, operation string, accountID models.ID, err error, start time.Time) *dto.OperationResult {
	duration := time.Since(start)
	o.audit.LogOperationFailed(ctx, operation, accountID, string(apperrors.TransactionFailed), err.Error(), duration.Milliseconds())
	o.metrics.IncrementCounter("operation.failed", map[string]string{"operation": operation})
	return dto.Failed(string(apperrors.TransactionFailed), apperrors.GetErrorMessage(apperrors.TransactionFailed))
}

func (o *TransactionOrchestrator) succeed(ctx context.Context, operation string, accountID models.ID, amount decimal.Decimal, message string, tx *models.Transaction, start time.Time) *dto.OperationResult {
	o.refresh.Publish()

	duration := time.Since(start)
	o.audit.LogOperationCompleted(ctx, operation, accountID, tx.Reference, duration.Milliseconds())
	o.metrics.IncrementCounter("operation.success", map[string]string{"operation": operation})
	o.metrics.RecordProcessingTime("operation."+operation, duration)
	o.metrics.RecordGauge("operation_amount", amount.InexactFloat64(), map[string]string{"operation": operation})

	return dto.Succeeded(message, tx)
}

// synthesize builds the entry shown when the ledger acknowledged without a body
func synthesize(txType string, source models.Account, destination string, amount decimal.Decimal, description string) *models.Transaction {
	return &models.Transaction{
		Type:                     txType,
		Amount:                   amount,
		SourceAccountID:          source.ID,
		SourceAccountNumber:      source.AccountNumber,
		DestinationAccountNumber: destination,
		Description:              description,
		Timestamp:                time.Now(),
		Status:                   models.TransactionStatusCompleted,
	}
}
