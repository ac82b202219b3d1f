package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"banking-client/internal/dto"
	"banking-client/internal/gateway"
	"banking-client/internal/models"
	"banking-client/internal/services"
	"banking-client/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AccountHandlerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	e        *echo.Echo
	accounts *service_mocks.MockAccountStoreInterface
	handler  *AccountHandler
}

func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerSuite))
}

func (s *AccountHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.e = newTestEcho()
	s.accounts = service_mocks.NewMockAccountStoreInterface(s.ctrl)
	s.handler = NewAccountHandler(s.accounts)
}

func (s *AccountHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AccountHandlerSuite) TestListAccounts() {
	checking := ownedAccount("10", 5000)
	savings := ownedAccount("11", 250)
	s.accounts.EXPECT().GetByUser(testUserID).Return([]models.Account{checking, savings})
	s.accounts.EXPECT().TotalBalance(testUserID).Return(decimal.NewFromInt(5250))
	s.accounts.EXPECT().Selected().Return(savings, true)

	c, rec := newSignedInContext(s.e, http.MethodGet, "/accounts", "")

	s.Require().NoError(s.handler.ListAccounts(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.AccountListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Accounts, 2)
	s.True(decimal.NewFromInt(5250).Equal(response.TotalBalance))
	s.Require().NotNil(response.Selected)
	s.Equal(savings.ID, response.Selected.ID)
}

func (s *AccountHandlerSuite) TestReloadAccounts() {
	s.accounts.EXPECT().Load(gomock.Any(), testUserID)
	s.accounts.EXPECT().GetByUser(testUserID).Return([]models.Account{})
	s.accounts.EXPECT().TotalBalance(testUserID).Return(decimal.Zero)
	s.accounts.EXPECT().Selected().Return(models.Account{}, false)

	c, rec := newSignedInContext(s.e, http.MethodPost, "/accounts/reload", "")

	s.Require().NoError(s.handler.ReloadAccounts(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AccountHandlerSuite) TestGetAccount_OtherUsersAccountIsHidden() {
	foreign := ownedAccount("20", 100)
	foreign.UserID = "2"
	s.accounts.EXPECT().GetByID(models.ID("20")).Return(foreign, true)

	c, rec := newSignedInContext(s.e, http.MethodGet, "/accounts/20", "")
	c = withParam(c, "id", "20")

	s.Require().NoError(s.handler.GetAccount(c))
	s.Equal("ACCOUNT_001", decodeError(rec).Error.Code)
}

func (s *AccountHandlerSuite) TestCreateAccount() {
	s.Run("created", func() {
		created := ownedAccount("12", 0)
		s.accounts.EXPECT().Create(gomock.Any(), "SAVINGS", testUserID).Return(&created, nil)

		c, rec := newSignedInContext(s.e, http.MethodPost, "/accounts", `{"accountType":"SAVINGS"}`)

		s.Require().NoError(s.handler.CreateAccount(c))
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("ledger rejected", func() {
		rejected := &gateway.Error{Message: "Account limit reached", Code: "ACCOUNT_LIMIT", Status: http.StatusBadRequest, Kind: gateway.KindServer}
		s.accounts.EXPECT().Create(gomock.Any(), "CHECKING", testUserID).Return(nil, rejected)

		c, rec := newSignedInContext(s.e, http.MethodPost, "/accounts", `{"accountType":"CHECKING"}`)

		s.Require().NoError(s.handler.CreateAccount(c))
		s.Equal(http.StatusBadGateway, rec.Code)
		s.Equal("Account limit reached", decodeError(rec).Error.Message)
	})

	s.Run("empty reply", func() {
		s.accounts.EXPECT().Create(gomock.Any(), "SAVINGS", testUserID).Return(nil, services.ErrNoAccountCreated)

		c, rec := newSignedInContext(s.e, http.MethodPost, "/accounts", `{"accountType":"SAVINGS"}`)

		s.Require().NoError(s.handler.CreateAccount(c))
		s.Equal("NETWORK_002", decodeError(rec).Error.Code)
	})

	s.Run("invalid type", func() {
		c, _ := newSignedInContext(s.e, http.MethodPost, "/accounts", `{"accountType":"BOND"}`)

		s.Error(s.handler.CreateAccount(c))
	})
}

func (s *AccountHandlerSuite) TestSelectAccount() {
	account := ownedAccount("10", 5000)
	s.accounts.EXPECT().GetByID(models.ID("10")).Return(account, true)
	s.accounts.EXPECT().Select(gomock.Any(), models.ID("10")).Return(nil)
	s.accounts.EXPECT().Selected().Return(account, true)

	c, rec := newSignedInContext(s.e, http.MethodPut, "/accounts/selected", `{"accountId":10}`)

	s.Require().NoError(s.handler.SelectAccount(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"ACC10"`)
}

func (s *AccountHandlerSuite) TestSelectAccount_StoreFailure() {
	s.accounts.EXPECT().GetByID(models.ID("10")).Return(ownedAccount("10", 0), true)
	s.accounts.EXPECT().Select(gomock.Any(), models.ID("10")).Return(errors.New("unexpected"))

	c, rec := newSignedInContext(s.e, http.MethodPut, "/accounts/selected", `{"accountId":"10"}`)

	s.Require().NoError(s.handler.SelectAccount(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *AccountHandlerSuite) TestGetSelected() {
	s.accounts.EXPECT().Selected().Return(models.Account{}, false)

	c, rec := newSignedInContext(s.e, http.MethodGet, "/accounts/selected", "")

	s.Require().NoError(s.handler.GetSelected(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "No account selected")
}
