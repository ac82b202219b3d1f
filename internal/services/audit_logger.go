package services

import (
	"context"
	"log/slog"
	"time"

	"banking-client/internal/gateway"
	"banking-client/internal/models"
)

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogOperationStarted(ctx context.Context, operation string, accountID models.ID, amount string) {
	al.logger.InfoContext(ctx, "operation started",
		slog.String("event_type", "operation_started"),
		slog.String("operation", operation),
		slog.String("account_id", accountID.String()),
		slog.String("amount", amount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

// LogOperationRejected records a local validation rejection. It is not a failure.
func (al *AuditLogger) LogOperationRejected(ctx context.Context, operation string, accountID models.ID, code, reason string) {
	al.logger.DebugContext(ctx, "operation rejected",
		slog.String("event_type", "operation_rejected"),
		slog.String("operation", operation),
		slog.String("account_id", accountID.String()),
		slog.String("code", code),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogOperationCompleted(ctx context.Context, operation string, accountID models.ID, reference string, durationMs int64) {
	al.logger.InfoContext(ctx, "operation completed",
		slog.String("event_type", "operation_completed"),
		slog.String("operation", operation),
		slog.String("account_id", accountID.String()),
		slog.String("reference", reference),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogOperationFailed(ctx context.Context, operation string, accountID models.ID, code, errorMsg string, durationMs int64) {
	al.logger.WarnContext(ctx, "operation failed",
		slog.String("event_type", "operation_failed"),
		slog.String("operation", operation),
		slog.String("account_id", accountID.String()),
		slog.String("code", code),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogBalanceUpdate(ctx context.Context, accountID models.ID, oldBalance, newBalance string) {
	al.logger.InfoContext(ctx, "balance update",
		slog.String("event_type", "balance_update"),
		slog.String("account_id", accountID.String()),
		slog.String("old_balance", oldBalance),
		slog.String("new_balance", newBalance),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogReconciliationFailed(ctx context.Context, accountID models.ID, localBalance, confirmedBalance, errorMsg string, reverted bool) {
	al.logger.WarnContext(ctx, "balance reconciliation failed",
		slog.String("event_type", "reconciliation_failed"),
		slog.String("account_id", accountID.String()),
		slog.String("local_balance", localBalance),
		slog.String("confirmed_balance", confirmedBalance),
		slog.String("error", errorMsg),
		slog.Bool("reverted", reverted),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLimitUsage(ctx context.Context, category models.LimitCategory, used, limit string) {
	al.logger.InfoContext(ctx, "daily limit usage",
		slog.String("event_type", "limit_usage"),
		slog.String("category", string(category)),
		slog.String("used", used),
		slog.String("limit", limit),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogLimitReset(ctx context.Context, resetDate time.Time) {
	al.logger.InfoContext(ctx, "daily limit reset",
		slog.String("event_type", "limit_reset"),
		slog.String("reset_date", resetDate.Format(time.DateOnly)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSessionEvent(ctx context.Context, event string, userID models.ID) {
	al.logger.InfoContext(ctx, "session event",
		slog.String("event_type", "session_"+event),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	return gateway.RequestIDFromContext(ctx)
}
