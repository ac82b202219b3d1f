package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"banking-client/internal/dto"
	"banking-client/internal/gateway"
	"banking-client/internal/models"
	"banking-client/internal/repositories"
	"banking-client/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type SessionServiceSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	fx            *fixture
	ctx           context.Context
	now           time.Time
	credentials   *gateway.Credentials
	sealer        *TokenSealer
	accounts      *service_mocks.MockAccountStoreInterface
	transactions  *service_mocks.MockTransactionStoreInterface
	limits        *service_mocks.MockDailyLimitPolicyInterface
	beneficiaries *service_mocks.MockBeneficiaryServiceInterface
	session       *SessionService
}

func (s *SessionServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.fx = newFixture(s.T(), s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.credentials = gateway.NewCredentials()
	s.sealer = NewTokenSealer(testSealKey("0123456789abcdef0123456789abcdef"))

	s.accounts = service_mocks.NewMockAccountStoreInterface(s.ctrl)
	s.transactions = service_mocks.NewMockTransactionStoreInterface(s.ctrl)
	s.limits = service_mocks.NewMockDailyLimitPolicyInterface(s.ctrl)
	s.beneficiaries = service_mocks.NewMockBeneficiaryServiceInterface(s.ctrl)

	s.session = NewSessionService(
		s.fx.gateway,
		s.credentials,
		s.sealer,
		s.fx.mirror,
		SessionStores{
			Accounts:      s.accounts,
			Transactions:  s.transactions,
			Limits:        s.limits,
			Beneficiaries: s.beneficiaries,
		},
		s.fx.audit,
		s.fx.metrics,
		s.fx.logger,
	)
	s.session.now = func() time.Time { return s.now }
}

func (s *SessionServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSessionServiceSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceSuite))
}

func (s *SessionServiceSuite) mirrorSession(user models.User, token string) {
	sealed, err := s.sealer.Seal(token)
	s.Require().NoError(err)
	s.Require().NoError(s.fx.mirror.Set(s.ctx, models.MirrorKeyAuthToken, sealed))
	s.Require().NoError(repositories.SaveJSON(s.ctx, s.fx.mirror, models.MirrorKeyCurrentUser, user))
}

func (s *SessionServiceSuite) mirrored(key string) bool {
	_, found, err := s.fx.mirror.Get(s.ctx, key)
	s.Require().NoError(err)
	return found
}

func (s *SessionServiceSuite) TestLogin_FillsStoresAndMirrorsSealedToken() {
	user := fakeUser()
	token := signedToken(s.T(), user.ID.String(), s.now.Add(time.Hour))
	account := fakeAccount(models.NilID, 5000)

	s.fx.gateway.EXPECT().Login(s.ctx, "jdoe", "secret").Return(&gateway.LoginResult{
		User:     user,
		Token:    token,
		Accounts: []models.Account{account},
	}, nil)
	s.accounts.EXPECT().Hydrate(s.ctx, gomock.Any()).Do(func(_ context.Context, accounts []models.Account) {
		s.Require().Len(accounts, 1)
		s.Equal(user.ID, accounts[0].UserID)
	})
	owned := account
	owned.UserID = user.ID
	s.limits.EXPECT().Restore(s.ctx)
	s.accounts.EXPECT().GetByUser(user.ID).Return([]models.Account{owned}).Times(2)
	s.limits.EXPECT().Sync(s.ctx, account.ID).Return(nil)
	s.beneficiaries.EXPECT().Load(s.ctx, user.ID).Return(nil)

	response, err := s.session.Login(s.ctx, dto.LoginRequest{Username: "jdoe", Password: "secret"})

	s.Require().NoError(err)
	s.Equal(user, *response.User)
	s.Len(response.Accounts, 1)
	s.Equal(token, s.credentials.Token())

	stored, found, err := s.fx.mirror.Get(s.ctx, models.MirrorKeyAuthToken)
	s.Require().NoError(err)
	s.True(found)
	s.True(strings.HasPrefix(stored, "sealed:"))
	s.True(s.mirrored(models.MirrorKeyCurrentUser))

	current, ok := s.session.CurrentUser()
	s.True(ok)
	s.Equal(user.ID, current.ID)
}

func (s *SessionServiceSuite) TestLogin_WithoutAccountsInReplyLoadsThem() {
	user := fakeUser()
	token := signedToken(s.T(), user.ID.String(), s.now.Add(time.Hour))

	s.fx.gateway.EXPECT().Login(s.ctx, "jdoe", "secret").Return(&gateway.LoginResult{User: user, Token: token}, nil)
	s.accounts.EXPECT().Load(s.ctx, user.ID)
	s.limits.EXPECT().Restore(s.ctx)
	s.accounts.EXPECT().GetByUser(user.ID).Return(nil).Times(2)
	s.beneficiaries.EXPECT().Load(s.ctx, user.ID).Return(errors.New("offline"))

	_, err := s.session.Login(s.ctx, dto.LoginRequest{Username: "jdoe", Password: "secret"})

	s.NoError(err)
}

func (s *SessionServiceSuite) TestLogin_Failures() {
	_, err := s.session.Login(s.ctx, dto.LoginRequest{Username: "jdoe"})
	s.Error(err)

	badCredentials := &gateway.Error{Message: "Invalid credentials", Code: "AUTH_001", Status: 401, Kind: gateway.KindServer}
	s.fx.gateway.EXPECT().Login(s.ctx, "jdoe", "wrong").Return(nil, badCredentials)
	_, err = s.session.Login(s.ctx, dto.LoginRequest{Username: "jdoe", Password: "wrong"})
	s.Equal("Invalid credentials", gateway.MessageOf(err))

	s.fx.gateway.EXPECT().Login(s.ctx, "jdoe", "secret").Return(&gateway.LoginResult{User: fakeUser()}, nil)
	_, err = s.session.Login(s.ctx, dto.LoginRequest{Username: "jdoe", Password: "secret"})
	s.ErrorIs(err, ErrInvalidLoginResult)

	s.Empty(s.credentials.Token())
	s.False(s.mirrored(models.MirrorKeyAuthToken))
}

func (s *SessionServiceSuite) TestRestore_LiveToken() {
	user := fakeUser()
	token := signedToken(s.T(), user.ID.String(), s.now.Add(time.Hour))
	s.mirrorSession(user, token)

	s.accounts.EXPECT().Restore(s.ctx)
	s.limits.EXPECT().Restore(s.ctx)
	s.beneficiaries.EXPECT().Restore(s.ctx)

	restored, err := s.session.Restore(s.ctx)

	s.Require().NoError(err)
	s.Equal(user, *restored)
	s.Equal(token, s.credentials.Token())
}

func (s *SessionServiceSuite) TestRestore_ExpiredTokenClearsSession() {
	user := fakeUser()
	s.mirrorSession(user, signedToken(s.T(), user.ID.String(), s.now.Add(-time.Minute)))

	_, err := s.session.Restore(s.ctx)

	s.ErrorIs(err, ErrExpiredToken)
	s.False(s.mirrored(models.MirrorKeyAuthToken))
	s.False(s.mirrored(models.MirrorKeyCurrentUser))
	s.Empty(s.credentials.Token())
}

func (s *SessionServiceSuite) TestRestore_NothingMirrored() {
	_, err := s.session.Restore(s.ctx)
	s.ErrorIs(err, ErrNoSession)

	s.Require().NoError(s.fx.mirror.Set(s.ctx, models.MirrorKeyAuthToken, signedToken(s.T(), "1", s.now.Add(time.Hour))))
	_, err = s.session.Restore(s.ctx)
	s.ErrorIs(err, ErrNoSession, "a token without its user is not a session")
	s.False(s.mirrored(models.MirrorKeyAuthToken))
}

func (s *SessionServiceSuite) TestLogout_ClearsEverythingEvenWhenLedgerFails() {
	user := fakeUser()
	s.mirrorSession(user, signedToken(s.T(), user.ID.String(), s.now.Add(time.Hour)))
	s.Require().NoError(s.fx.mirror.Set(s.ctx, models.MirrorKeyDailyLimit, "{}"))
	s.credentials.SetToken("token")

	s.fx.gateway.EXPECT().Logout(s.ctx).Return(&gateway.Error{Kind: gateway.KindTransport, Err: errors.New("offline")})
	gomock.InOrder(
		s.accounts.EXPECT().Wait(),
		s.accounts.EXPECT().Reset(),
	)
	s.transactions.EXPECT().Reset()
	s.limits.EXPECT().Reset(s.ctx)
	s.beneficiaries.EXPECT().Reset()

	s.NoError(s.session.Logout(s.ctx))

	for _, key := range models.MirrorKeys {
		s.False(s.mirrored(key), key)
	}
	s.Empty(s.credentials.Token())
	_, ok := s.session.CurrentUser()
	s.False(ok)
}

func (s *SessionServiceSuite) TestLogout_DrainsBalancePushesWhileTokenIsValid() {
	s.credentials.SetToken("token")

	gomock.InOrder(
		s.accounts.EXPECT().Wait().Do(func() {
			s.Equal("token", s.credentials.Token(), "queued pushes still authenticate")
		}),
		s.fx.gateway.EXPECT().Logout(s.ctx).Return(nil),
		s.accounts.EXPECT().Reset(),
	)
	s.transactions.EXPECT().Reset()
	s.limits.EXPECT().Reset(s.ctx)
	s.beneficiaries.EXPECT().Reset()

	s.NoError(s.session.Logout(s.ctx))
	s.Empty(s.credentials.Token())
}

func (s *SessionServiceSuite) TestCurrentUser_ExpiresWithToken() {
	user := fakeUser()
	s.mirrorSession(user, signedToken(s.T(), user.ID.String(), s.now.Add(time.Hour)))
	s.accounts.EXPECT().Restore(s.ctx)
	s.limits.EXPECT().Restore(s.ctx)
	s.beneficiaries.EXPECT().Restore(s.ctx)

	_, err := s.session.Restore(s.ctx)
	s.Require().NoError(err)

	_, ok := s.session.CurrentUser()
	s.True(ok)

	s.now = s.now.Add(2 * time.Hour)
	_, ok = s.session.CurrentUser()
	s.False(ok)
}

func (s *SessionServiceSuite) TestRegister() {
	req := dto.RegisterRequest{
		Username: "jdoe",
		Email:    "jdoe@example.com",
		Password: "secret1",
		FullName: "Jane Doe",
	}
	created := fakeUser()
	s.fx.gateway.EXPECT().Register(s.ctx, req).Return(&created, nil)

	user, err := s.session.Register(s.ctx, req)
	s.Require().NoError(err)
	s.Equal(created.ID, user.ID)

	_, err = s.session.Register(s.ctx, dto.RegisterRequest{Username: "x"})
	s.Error(err)
	s.Empty(s.credentials.Token(), "registering never signs in")
}
