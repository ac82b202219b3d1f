package services

import (
	"context"
	"log/slog"
	"sync"

	"banking-client/internal/gateway"
	"banking-client/internal/models"
	"banking-client/internal/repositories"
)

// AccountLookup resolves account numbers to locally held accounts
type AccountLookup interface {
	GetByNumber(number string) (models.Account, bool)
}

// TransactionStore caches the most recently fetched history page. Only the
// last started load is applied; an older load finishing later is dropped.
type TransactionStore struct {
	mu           sync.RWMutex
	transactions []models.Transaction
	generation   uint64

	gateway  gateway.Gateway
	mirror   repositories.MirrorRepositoryInterface
	accounts AccountLookup
	metrics  MetricsRecorderInterface
	logger   *slog.Logger
}

func NewTransactionStore(
	gw gateway.Gateway,
	mirror repositories.MirrorRepositoryInterface,
	accounts AccountLookup,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *TransactionStore {
	return &TransactionStore{
		transactions: []models.Transaction{},
		gateway:      gw,
		mirror:       mirror,
		accounts:     accounts,
		metrics:      metrics,
		logger:       logger,
	}
}

// Load replaces the cache with the account's history. Failures are logged and
// the mirror snapshot of the same account is used, or an empty cache.
func (s *TransactionStore) Load(ctx context.Context, accountID models.ID) {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	fetched, err := s.gateway.GetTransactionHistory(ctx, accountID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to load transactions",
			slog.String("account_id", accountID.String()),
			slog.String("error", err.Error()),
		)
		s.apply(ctx, generation, accountID, s.fromMirror(ctx, accountID), false)
		return
	}

	s.apply(ctx, generation, accountID, s.resolve(accountID, fetched), true)
}

func (s *TransactionStore) apply(ctx context.Context, generation uint64, accountID models.ID, transactions []models.Transaction, persist bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		s.logger.DebugContext(ctx, "discarding superseded transaction load", slog.String("account_id", accountID.String()))
		return
	}

	s.transactions = transactions
	if !persist {
		return
	}

	snapshot := models.TransactionSnapshot{AccountID: accountID, Transactions: transactions}
	if err := repositories.SaveJSON(ctx, s.mirror, models.MirrorKeyTransactions, snapshot); err != nil {
		s.logger.WarnContext(ctx, "failed to mirror transactions", slog.String("error", err.Error()))
	}
}

func (s *TransactionStore) fromMirror(ctx context.Context, accountID models.ID) []models.Transaction {
	var snapshot models.TransactionSnapshot
	found, err := repositories.LoadJSON(ctx, s.mirror, models.MirrorKeyTransactions, &snapshot)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read mirrored transactions", slog.String("error", err.Error()))
		return []models.Transaction{}
	}
	if !found || snapshot.AccountID != accountID || snapshot.Transactions == nil {
		return []models.Transaction{}
	}

	s.metrics.IncrementCounter("mirror.fallback", map[string]string{"store": "transactions"})
	return snapshot.Transactions
}

// resolve fills account ids the ledger left out from the account numbers it sent
func (s *TransactionStore) resolve(accountID models.ID, fetched []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(fetched))
	for _, tx := range fetched {
		if tx.SourceAccountID.IsZero() {
			if tx.SourceAccountNumber == "" {
				tx.SourceAccountID = accountID
			} else if account, ok := s.accounts.GetByNumber(tx.SourceAccountNumber); ok {
				tx.SourceAccountID = account.ID
			}
		}
		if tx.DestinationAccountID.IsZero() && tx.DestinationAccountNumber != "" {
			if account, ok := s.accounts.GetByNumber(tx.DestinationAccountNumber); ok {
				tx.DestinationAccountID = account.ID
			}
		}
		out = append(out, tx)
	}
	return out
}

// Recent returns up to limit cached entries involving the account, in held order
func (s *TransactionStore) Recent(accountID models.ID, limit int) []models.Transaction {
	if limit <= 0 {
		return []models.Transaction{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Transaction{}
	for _, tx := range s.transactions {
		if len(out) == limit {
			break
		}
		if tx.Involves(accountID) {
			out = append(out, tx)
		}
	}
	return out
}

func (s *TransactionStore) ForAccount(ctx context.Context, accountID models.ID) ([]models.Transaction, <-chan struct{}) {
	s.mu.RLock()
	current := []models.Transaction{}
	for _, tx := range s.transactions {
		if tx.Involves(accountID) {
			current = append(current, tx)
		}
	}
	s.mu.RUnlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Load(context.WithoutCancel(ctx), accountID)
	}()
	return current, done
}

func (s *TransactionStore) All() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Reset empties the cache and drops loads still in flight
func (s *TransactionStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.transactions = []models.Transaction{}
}
