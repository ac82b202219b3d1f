package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"banking-client/internal/config"
	"banking-client/internal/dto"
	"banking-client/internal/gateway"
	"banking-client/internal/models"
	"banking-client/internal/repositories"

	"github.com/shopspring/decimal"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrNoAccountCreated = errors.New("ledger returned no account")
)

// AccountStore holds the signed-in user's accounts and the focused account.
// Balance changes are applied locally first and pushed to the ledger in the
// background, one request at a time per account with the latest value.
type AccountStore struct {
	mu       sync.RWMutex
	accounts []models.Account
	selected *models.Account

	// latest balance waiting to be pushed, and accounts with a push running
	unsent  map[models.ID]decimal.Decimal
	pushing map[models.ID]bool
	syncs   sync.WaitGroup

	gateway             gateway.Gateway
	mirror              repositories.MirrorRepositoryInterface
	audit               AuditLoggerInterface
	metrics             MetricsRecorderInterface
	logger              *slog.Logger
	revertOnSyncFailure bool
}

func NewAccountStore(
	gw gateway.Gateway,
	mirror repositories.MirrorRepositoryInterface,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	cfg config.OrchestratorConfig,
) *AccountStore {
	return &AccountStore{
		accounts:            []models.Account{},
		unsent:              make(map[models.ID]decimal.Decimal),
		pushing:             make(map[models.ID]bool),
		gateway:             gw,
		mirror:              mirror,
		audit:               audit,
		metrics:             metrics,
		logger:              logger,
		revertOnSyncFailure: cfg.RevertOnSyncFailure,
	}
}

// Load replaces the collection with the ledger's accounts of the user. When
// the ledger cannot be reached the mirror snapshot is used; a not-found reply
// leaves the store empty.
func (s *AccountStore) Load(ctx context.Context, userID models.ID) {
	accounts, err := s.gateway.GetAccountsForUser(ctx, userID)
	if err == nil {
		s.replace(ctx, accounts)
		return
	}

	if gateway.IsNotFound(err) {
		s.logger.InfoContext(ctx, "no accounts found for user", slog.String("user_id", userID.String()))
		s.replace(ctx, nil)
		return
	}

	s.logger.WarnContext(ctx, "failed to load accounts, using mirror",
		slog.String("user_id", userID.String()),
		slog.String("error", err.Error()),
	)
	s.metrics.IncrementCounter("mirror.fallback", map[string]string{"store": "accounts"})
	s.Restore(ctx)
}

// Hydrate replaces the collection with accounts fetched elsewhere, such as
// the login reply.
func (s *AccountStore) Hydrate(ctx context.Context, accounts []models.Account) {
	s.replace(ctx, accounts)
}

// Restore reads the collection and the focused account from the mirror
func (s *AccountStore) Restore(ctx context.Context) {
	var accounts []models.Account
	if _, err := repositories.LoadJSON(ctx, s.mirror, models.MirrorKeyAccounts, &accounts); err != nil {
		s.logger.WarnContext(ctx, "failed to restore accounts from mirror", slog.String("error", err.Error()))
		return
	}

	var selected *models.Account
	if _, err := repositories.LoadJSON(ctx, s.mirror, models.MirrorKeySelectedAccount, &selected); err != nil {
		s.logger.WarnContext(ctx, "failed to restore selected account from mirror", slog.String("error", err.Error()))
		selected = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = normalizeAccounts(accounts)
	s.selected = selected
	s.refreshSelectedLocked()
}

func (s *AccountStore) replace(ctx context.Context, accounts []models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = normalizeAccounts(accounts)
	s.refreshSelectedLocked()
	s.persistLocked(ctx)
}

func (s *AccountStore) All() []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// GetByUser returns the user's accounts in the order they were loaded
func (s *AccountStore) GetByUser(userID models.ID) []models.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Account{}
	for _, account := range s.accounts {
		if account.UserID == userID {
			out = append(out, account)
		}
	}
	return out
}

func (s *AccountStore) GetByID(id models.ID) (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx := s.indexLocked(id); idx >= 0 {
		return s.accounts[idx], true
	}
	return models.Account{}, false
}

func (s *AccountStore) GetByNumber(number string) (models.Account, bool) {
	number = strings.TrimSpace(number)
	if number == "" {
		return models.Account{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.AccountNumber == number {
			return account, true
		}
	}
	return models.Account{}, false
}

// Select focuses an account held by the store
func (s *AccountStore) Select(ctx context.Context, accountID models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(accountID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}

	focused := s.accounts[idx]
	s.selected = &focused
	s.persistLocked(ctx)
	return nil
}

func (s *AccountStore) Selected() (models.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selected == nil {
		return models.Account{}, false
	}
	return *s.selected, true
}

// Create opens an account on the ledger and appends it to the collection
func (s *AccountStore) Create(ctx context.Context, accountType string, userID models.ID) (*models.Account, error) {
	normalized, ok := models.NormalizeAccountType(accountType)
	if !ok {
		return nil, models.ErrInvalidAccountType
	}

	account, err := s.gateway.CreateAccount(ctx, normalized, userID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrNoAccountCreated
	}

	account.MarkConfirmed()

	s.mu.Lock()
	s.accounts = append(s.accounts, *account)
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "account created",
		slog.String("account_id", account.ID.String()),
		slog.String("account_type", account.AccountType),
	)
	return account, nil
}

// ApplyBalanceDelta overwrites the balance of an account and of the focused
// copy, persists both, and pushes the new balance to the ledger in the
// background. A push failure is never returned; the account is marked
// unreconciled instead.
func (s *AccountStore) ApplyBalanceDelta(ctx context.Context, accountID models.ID, newBalance decimal.Decimal) error {
	s.mu.Lock()
	idx := s.indexLocked(accountID)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}

	account := &s.accounts[idx]
	oldBalance := account.Balance
	account.Balance = newBalance
	account.SyncState = models.SyncStatePending
	s.refreshSelectedLocked()
	s.persistLocked(ctx)

	s.unsent[accountID] = newBalance
	startPush := !s.pushing[accountID]
	if startPush {
		s.pushing[accountID] = true
		s.syncs.Add(1)
	}
	s.mu.Unlock()

	s.audit.LogBalanceUpdate(ctx, accountID, oldBalance.StringFixed(2), newBalance.StringFixed(2))

	if startPush {
		go s.pushBalances(context.WithoutCancel(ctx), accountID)
	}
	return nil
}

// pushBalances sends the latest unsent balance of an account until none is
// left. Balances queued while a request runs are coalesced into one.
func (s *AccountStore) pushBalances(ctx context.Context, accountID models.ID) {
	defer s.syncs.Done()

	for {
		s.mu.Lock()
		balance, ok := s.unsent[accountID]
		if !ok {
			delete(s.pushing, accountID)
			s.mu.Unlock()
			return
		}
		delete(s.unsent, accountID)
		s.mu.Unlock()

		s.metrics.IncrementCounter("balance_sync.started", nil)
		_, err := s.gateway.UpdateAccount(ctx, accountID, dto.BalanceUpdate(balance))
		s.settle(ctx, accountID, balance, err)
	}
}

func (s *AccountStore) settle(ctx context.Context, accountID models.ID, sent decimal.Decimal, err error) {
	if err == nil {
		s.metrics.IncrementCounter("balance_sync.success", nil)
	} else {
		s.metrics.IncrementCounter("balance_sync.failed", nil)
	}

	s.mu.Lock()
	idx := s.indexLocked(accountID)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	account := &s.accounts[idx]
	_, superseded := s.unsent[accountID]

	if err == nil {
		account.ConfirmedBalance = sent
		if !superseded && account.Balance.Equal(sent) {
			account.SyncState = models.SyncStateSynced
		}
		s.refreshSelectedLocked()
		s.persistLocked(ctx)
		s.mu.Unlock()
		return
	}

	// a newer push carries the absolute balance and settles the account
	if superseded {
		s.mu.Unlock()
		return
	}

	local := account.Balance
	reverted := false
	if s.revertOnSyncFailure {
		account.Balance = account.ConfirmedBalance
		reverted = true
	}
	account.SyncState = models.SyncStateUnreconciled
	confirmed := account.ConfirmedBalance
	s.refreshSelectedLocked()
	s.persistLocked(ctx)
	s.mu.Unlock()

	s.logger.WarnContext(ctx, "failed to sync account balance",
		slog.String("account_id", accountID.String()),
		slog.String("error", err.Error()),
		slog.Bool("reverted", reverted),
	)
	s.audit.LogReconciliationFailed(ctx, accountID, local.StringFixed(2), confirmed.StringFixed(2), gateway.MessageOf(err), reverted)
}

// Wait blocks until every background balance push has finished
func (s *AccountStore) Wait() {
	s.syncs.Wait()
}

func (s *AccountStore) TotalBalance(userID models.ID) decimal.Decimal {
	total := decimal.Zero
	for _, account := range s.GetByUser(userID) {
		total = total.Add(account.Balance)
	}
	return total
}

// Reset drops every account and the focus. The mirror is cleared by the session.
func (s *AccountStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accounts = []models.Account{}
	s.selected = nil
	clear(s.unsent)
}

func (s *AccountStore) indexLocked(id models.ID) int {
	if id.IsZero() {
		return -1
	}
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return i
		}
	}
	return -1
}

// refreshSelectedLocked keeps the focused copy equal to the stored account,
// dropping the focus when the account is gone.
func (s *AccountStore) refreshSelectedLocked() {
	if s.selected == nil {
		return
	}
	idx := s.indexLocked(s.selected.ID)
	if idx < 0 {
		s.selected = nil
		return
	}
	focused := s.accounts[idx]
	s.selected = &focused
}

func (s *AccountStore) persistLocked(ctx context.Context) {
	if err := repositories.SaveJSON(ctx, s.mirror, models.MirrorKeyAccounts, s.accounts); err != nil {
		s.logger.WarnContext(ctx, "failed to mirror accounts", slog.String("error", err.Error()))
	}

	var err error
	if s.selected == nil {
		err = s.mirror.Delete(ctx, models.MirrorKeySelectedAccount)
	} else {
		err = repositories.SaveJSON(ctx, s.mirror, models.MirrorKeySelectedAccount, s.selected)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "failed to mirror selected account", slog.String("error", err.Error()))
	}
}

func normalizeAccounts(accounts []models.Account) []models.Account {
	out := make([]models.Account, 0, len(accounts))
	for _, account := range accounts {
		if account.SyncState == "" {
			account.MarkConfirmed()
		}
		out = append(out, account)
	}
	return out
}
