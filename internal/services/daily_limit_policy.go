package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"banking-client/internal/config"
	"banking-client/internal/gateway"
	"banking-client/internal/models"
	"banking-client/internal/repositories"

	"github.com/shopspring/decimal"
)

type DailyLimitOption func(*DailyLimitPolicy)

// WithClock replaces the wall clock used for the day boundary
func WithClock(now func() time.Time) DailyLimitOption {
	return func(p *DailyLimitPolicy) {
		p.now = now
	}
}

// DailyLimitPolicy tracks withdrawal and transfer usage against per-day caps.
// Usage is zeroed on the first read of a new local calendar day; caps are kept.
type DailyLimitPolicy struct {
	mu       sync.Mutex
	limit    models.DailyLimit
	defaults config.LimitsConfig

	gateway gateway.Gateway
	mirror  repositories.MirrorRepositoryInterface
	audit   AuditLoggerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
	now     func() time.Time
}

func NewDailyLimitPolicy(
	gw gateway.Gateway,
	mirror repositories.MirrorRepositoryInterface,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	cfg config.LimitsConfig,
	opts ...DailyLimitOption,
) *DailyLimitPolicy {
	p := &DailyLimitPolicy{
		defaults: cfg,
		gateway:  gw,
		mirror:   mirror,
		audit:    audit,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.limit = p.defaultLimit()
	return p
}

func (p *DailyLimitPolicy) defaultLimit() models.DailyLimit {
	return models.DailyLimit{
		WithdrawalLimit: p.defaults.WithdrawalCap,
		WithdrawalUsed:  decimal.Zero,
		TransferLimit:   p.defaults.TransferCap,
		TransferUsed:    decimal.Zero,
		LastResetDate:   p.now(),
	}
}

// Remaining is cap minus used for the category. It is not clamped at zero.
func (p *DailyLimitPolicy) Remaining(ctx context.Context, category models.LimitCategory) (decimal.Decimal, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.rolloverLocked(ctx)
	return p.remainingLocked(category)
}

func (p *DailyLimitPolicy) remainingLocked(category models.LimitCategory) (decimal.Decimal, error) {
	limit, err := p.limit.Cap(category)
	if err != nil {
		return decimal.Zero, err
	}
	used, err := p.limit.Used(category)
	if err != nil {
		return decimal.Zero, err
	}
	return limit.Sub(used), nil
}

// CanSpend reports whether used plus amount stays within the cap
func (p *DailyLimitPolicy) CanSpend(ctx context.Context, category models.LimitCategory, amount decimal.Decimal) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.rolloverLocked(ctx)

	limit, err := p.limit.Cap(category)
	if err != nil {
		return false, err
	}
	used, err := p.limit.Used(category)
	if err != nil {
		return false, err
	}
	return used.Add(amount).LessThanOrEqual(limit), nil
}

// RecordUsage adds amount to the category's usage. Callers check CanSpend first.
func (p *DailyLimitPolicy) RecordUsage(ctx context.Context, category models.LimitCategory, amount decimal.Decimal) error {
	p.mu.Lock()
	p.rolloverLocked(ctx)

	if err := p.limit.AddUsage(category, amount); err != nil {
		p.mu.Unlock()
		return err
	}
	p.persistLocked(ctx)

	used, _ := p.limit.Used(category)
	limit, _ := p.limit.Cap(category)
	p.mu.Unlock()

	p.audit.LogLimitUsage(ctx, category, used.StringFixed(2), limit.StringFixed(2))
	p.metrics.RecordGauge("limit_remaining", limit.Sub(used).InexactFloat64(), map[string]string{
		"category": string(category),
	})
	return nil
}

func (p *DailyLimitPolicy) Snapshot(ctx context.Context) models.DailyLimit {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.rolloverLocked(ctx)
	return p.limit
}

// Restore reads the mirrored record, falling back to the defaults when none
// is stored, and applies the day boundary.
func (p *DailyLimitPolicy) Restore(ctx context.Context) {
	var stored models.DailyLimit
	found, err := repositories.LoadJSON(ctx, p.mirror, models.MirrorKeyDailyLimit, &stored)
	if err != nil {
		p.logger.WarnContext(ctx, "failed to restore daily limit from mirror", slog.String("error", err.Error()))
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if found {
		p.limit = p.withDefaultCaps(stored)
	}
	if !p.rolloverLocked(ctx) && !found {
		p.persistLocked(ctx)
	}
}

// Sync replaces caps and usage with the ledger's view. Current values are
// kept when the ledger fails or has nothing for the account.
func (p *DailyLimitPolicy) Sync(ctx context.Context, accountID models.ID) error {
	remote, err := p.gateway.GetDailyLimits(ctx, accountID)
	if err != nil {
		p.logger.WarnContext(ctx, "failed to load daily limits",
			slog.String("account_id", accountID.String()),
			slog.String("error", err.Error()),
		)
		return err
	}
	if remote == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	updated := p.withDefaultCaps(*remote)
	if updated.LastResetDate.IsZero() {
		updated.LastResetDate = p.now()
	}
	p.limit = updated
	if !p.rolloverLocked(ctx) {
		p.persistLocked(ctx)
	}
	return nil
}

// Reset returns to the configured caps with no usage. The mirror is cleared
// by the session.
func (p *DailyLimitPolicy) Reset(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.limit = p.defaultLimit()
}

// rolloverLocked zeroes usage when the record is from an earlier day and
// reports whether it did.
func (p *DailyLimitPolicy) rolloverLocked(ctx context.Context) bool {
	today := p.now()
	if !p.limit.IsStale(today) {
		return false
	}

	p.limit.ResetUsage(today)
	p.persistLocked(ctx)
	p.audit.LogLimitReset(ctx, today)
	return true
}

func (p *DailyLimitPolicy) persistLocked(ctx context.Context) {
	if err := repositories.SaveJSON(ctx, p.mirror, models.MirrorKeyDailyLimit, p.limit); err != nil {
		p.logger.WarnContext(ctx, "failed to mirror daily limit", slog.String("error", err.Error()))
	}
}

func (p *DailyLimitPolicy) withDefaultCaps(limit models.DailyLimit) models.DailyLimit {
	if !limit.WithdrawalLimit.IsPositive() {
		limit.WithdrawalLimit = p.defaults.WithdrawalCap
	}
	if !limit.TransferLimit.IsPositive() {
		limit.TransferLimit = p.defaults.TransferCap
	}
	return limit
}
