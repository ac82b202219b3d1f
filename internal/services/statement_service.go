package services

import (
	"context"
	"errors"
	"log/slog"

	"banking-client/internal/gateway"
	"banking-client/internal/models"
)

const DefaultMiniStatementSize = 10

var ErrInvalidPeriod = errors.New("month must be 1-12 and year positive")

// StatementService reads statements straight from the ledger. It never
// touches the transaction cache.
type StatementService struct {
	gateway gateway.Gateway
	logger  *slog.Logger
}

func NewStatementService(gw gateway.Gateway, logger *slog.Logger) *StatementService {
	return &StatementService{
		gateway: gw,
		logger:  logger,
	}
}

func (s *StatementService) MiniStatement(ctx context.Context, accountID models.ID, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = DefaultMiniStatementSize
	}

	transactions, err := s.gateway.GetRecentTransactions(ctx, accountID, limit)
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []models.Transaction{}, nil
	}
	if len(transactions) > limit {
		transactions = transactions[:limit]
	}
	return transactions, nil
}

func (s *StatementService) MonthlySummary(ctx context.Context, accountID models.ID, month, year int) (*models.TransactionSummary, error) {
	if month < 1 || month > 12 || year <= 0 {
		return nil, ErrInvalidPeriod
	}

	summary, err := s.gateway.GetMonthlySummary(ctx, accountID, month, year)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load monthly summary",
			slog.String("account_id", accountID.String()),
			slog.Int("month", month),
			slog.Int("year", year),
			slog.String("error", err.Error()),
		)
		return models.ZeroSummary(month, year), nil
	}
	if summary == nil {
		return models.ZeroSummary(month, year), nil
	}

	if summary.Month == 0 {
		summary.Month = month
	}
	if summary.Year == 0 {
		summary.Year = year
	}
	return summary, nil
}
