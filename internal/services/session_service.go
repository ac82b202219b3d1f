package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"banking-client/internal/dto"
	"banking-client/internal/gateway"
	"banking-client/internal/models"
	"banking-client/internal/repositories"
	"banking-client/internal/validation"
)

var (
	ErrNoSession          = errors.New("no active session")
	ErrInvalidLoginResult = errors.New("login reply is missing the user or the token")
)

// SessionStores are the stores a session fills at sign-in and tears down at sign-out
type SessionStores struct {
	Accounts      AccountStoreInterface
	Transactions  TransactionStoreInterface
	Limits        DailyLimitPolicyInterface
	Beneficiaries BeneficiaryServiceInterface
}

// SessionService owns the signed-in user and the ledger token
type SessionService struct {
	mu   sync.RWMutex
	user *models.User

	gateway     gateway.Gateway
	credentials *gateway.Credentials
	sealer      TokenSealerInterface
	mirror      repositories.MirrorRepositoryInterface
	stores      SessionStores
	validator   *validation.Validator
	audit       AuditLoggerInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
	now         func() time.Time
}

func NewSessionService(
	gw gateway.Gateway,
	credentials *gateway.Credentials,
	sealer TokenSealerInterface,
	mirror repositories.MirrorRepositoryInterface,
	stores SessionStores,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *SessionService {
	return &SessionService{
		gateway:     gw,
		credentials: credentials,
		sealer:      sealer,
		mirror:      mirror,
		stores:      stores,
		validator:   validation.GetValidator(),
		audit:       audit,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

// Login signs in, mirrors the sealed token and the user, and fills the
// account store from the reply.
func (s *SessionService) Login(ctx context.Context, req dto.LoginRequest) (*dto.SessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	result, err := s.gateway.Login(ctx, req.Username, req.Password)
	if err != nil {
		s.recordEvent(ctx, "login_failed", models.NilID)
		return nil, err
	}
	if result == nil || result.Token == "" || result.User.ID.IsZero() {
		s.recordEvent(ctx, "login_failed", models.NilID)
		return nil, ErrInvalidLoginResult
	}

	user := result.User
	s.credentials.SetToken(result.Token)

	sealed, err := s.sealer.Seal(result.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to seal session token: %w", err)
	}
	if err := s.mirror.Set(ctx, models.MirrorKeyAuthToken, sealed); err != nil {
		s.logger.WarnContext(ctx, "failed to mirror session token", slog.String("error", err.Error()))
	}
	if err := repositories.SaveJSON(ctx, s.mirror, models.MirrorKeyCurrentUser, user); err != nil {
		s.logger.WarnContext(ctx, "failed to mirror current user", slog.String("error", err.Error()))
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	if result.Accounts != nil {
		accounts := make([]models.Account, 0, len(result.Accounts))
		for _, account := range result.Accounts {
			account.UserID = user.ID
			accounts = append(accounts, account)
		}
		s.stores.Accounts.Hydrate(ctx, accounts)
	} else {
		s.stores.Accounts.Load(ctx, user.ID)
	}

	s.stores.Limits.Restore(ctx)
	if owned := s.stores.Accounts.GetByUser(user.ID); len(owned) > 0 {
		_ = s.stores.Limits.Sync(ctx, owned[0].ID)
	}
	_ = s.stores.Beneficiaries.Load(ctx, user.ID)

	s.recordEvent(ctx, "login", user.ID)
	return &dto.SessionResponse{
		User:     &user,
		Accounts: s.stores.Accounts.GetByUser(user.ID),
	}, nil
}

// Register creates a ledger user. It does not sign in.
func (s *SessionService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.gateway.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	s.recordEvent(ctx, "register", models.NilID)
	return user, nil
}

// Restore resumes the mirrored session while its token is unexpired. An
// expired or unreadable token clears the mirrored session.
func (s *SessionService) Restore(ctx context.Context) (*models.User, error) {
	sealed, found, err := s.mirror.Get(ctx, models.MirrorKeyAuthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to read session token: %w", err)
	}
	if !found {
		return nil, ErrNoSession
	}

	token, err := s.sealer.Open(sealed)
	if err == nil {
		err = CheckTokenExpiry(token, s.now())
	}
	if err != nil {
		s.logger.InfoContext(ctx, "discarding mirrored session", slog.String("reason", err.Error()))
		s.clearMirror(ctx)
		return nil, err
	}

	var user models.User
	found, err = repositories.LoadJSON(ctx, s.mirror, models.MirrorKeyCurrentUser, &user)
	if err != nil || !found {
		s.clearMirror(ctx)
		return nil, ErrNoSession
	}

	s.credentials.SetToken(token)
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	s.stores.Accounts.Restore(ctx)
	s.stores.Limits.Restore(ctx)
	s.stores.Beneficiaries.Restore(ctx)

	s.recordEvent(ctx, "restored", user.ID)
	out := user
	return &out, nil
}

// Logout tells the ledger when it can, then clears every store, the mirror and
// the token whatever the ledger answered.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.RLock()
	userID := models.NilID
	if s.user != nil {
		userID = s.user.ID
	}
	s.mu.RUnlock()

	// queued balance pushes still need the token the ledger logout drops
	s.stores.Accounts.Wait()

	if err := s.gateway.Logout(ctx); err != nil {
		s.logger.WarnContext(ctx, "ledger logout failed", slog.String("error", err.Error()))
	}

	s.stores.Accounts.Reset()
	s.stores.Transactions.Reset()
	s.stores.Limits.Reset(ctx)
	s.stores.Beneficiaries.Reset()

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	s.credentials.Clear()

	s.recordEvent(ctx, "logout", userID)

	if err := s.mirror.Delete(ctx, models.MirrorKeys...); err != nil {
		return fmt.Errorf("failed to clear mirrored session: %w", err)
	}
	return nil
}

// CurrentUser returns the signed-in user while the token is unexpired
func (s *SessionService) CurrentUser() (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil, false
	}
	if err := CheckTokenExpiry(s.credentials.Token(), s.now()); err != nil {
		return nil, false
	}
	out := *s.user
	return &out, true
}

func (s *SessionService) clearMirror(ctx context.Context) {
	s.credentials.Clear()
	if err := s.mirror.Delete(ctx, models.MirrorKeyAuthToken, models.MirrorKeyCurrentUser); err != nil {
		s.logger.WarnContext(ctx, "failed to clear mirrored session", slog.String("error", err.Error()))
	}
}

func (s *SessionService) recordEvent(ctx context.Context, event string, userID models.ID) {
	s.audit.LogSessionEvent(ctx, event, userID)
	s.metrics.IncrementCounter("session_event", map[string]string{"event_type": event})
}
