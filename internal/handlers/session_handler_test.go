package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"banking-client/internal/dto"
	"banking-client/internal/gateway"
	"banking-client/internal/models"
	"banking-client/internal/services"
	"banking-client/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type SessionHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	e       *echo.Echo
	session *service_mocks.MockSessionServiceInterface
	handler *SessionHandler
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerSuite))
}

func (s *SessionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.e = newTestEcho()
	s.session = service_mocks.NewMockSessionServiceInterface(s.ctrl)
	s.handler = NewSessionHandler(s.session, discardLogger())
}

func (s *SessionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SessionHandlerSuite) TestLogin() {
	s.Run("successful sign-in", func() {
		user := &models.User{ID: "7", Username: "jdoe"}
		s.session.EXPECT().Login(gomock.Any(), dto.LoginRequest{Username: "jdoe", Password: "secret"}).
			Return(&dto.SessionResponse{User: user, Accounts: []models.Account{ownedAccount("10", 5)}}, nil)

		c, rec := newContext(s.e, http.MethodPost, "/session/login", `{"username":"jdoe","password":"secret"}`)

		s.Require().NoError(s.handler.Login(c))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"username":"jdoe"`)
	})

	s.Run("rejected credentials", func() {
		rejected := &gateway.Error{Message: "Invalid credentials", Code: "HTTP_401", Status: http.StatusUnauthorized, Kind: gateway.KindServer}
		s.session.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, rejected)

		c, rec := newContext(s.e, http.MethodPost, "/session/login", `{"username":"jdoe","password":"wrong"}`)

		s.Require().NoError(s.handler.Login(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
		response := decodeError(rec)
		s.Equal("AUTH_001", response.Error.Code)
		s.Equal("Invalid credentials", response.Error.Message)
	})

	s.Run("ledger unreachable", func() {
		unreachable := &gateway.Error{Message: "Network error occurred. Please check your connection and try again.", Code: "NETWORK_001", Kind: gateway.KindTransport, Err: errors.New("refused")}
		s.session.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, unreachable)

		c, rec := newContext(s.e, http.MethodPost, "/session/login", `{"username":"jdoe","password":"secret"}`)

		s.Require().NoError(s.handler.Login(c))
		s.Equal(http.StatusBadGateway, rec.Code)
		s.Equal("NETWORK_001", decodeError(rec).Error.Code)
	})

	s.Run("reply without token", func() {
		s.session.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidLoginResult)

		c, rec := newContext(s.e, http.MethodPost, "/session/login", `{"username":"jdoe","password":"secret"}`)

		s.Require().NoError(s.handler.Login(c))
		s.Equal("NETWORK_002", decodeError(rec).Error.Code)
	})

	s.Run("missing password", func() {
		c, _ := newContext(s.e, http.MethodPost, "/session/login", `{"username":"jdoe"}`)

		err := s.handler.Login(c)

		var validationErrs validator.ValidationErrors
		s.ErrorAs(err, &validationErrs)
	})
}

func (s *SessionHandlerSuite) TestRegister() {
	created := &models.User{ID: "8", Username: "newuser"}
	s.session.EXPECT().Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.RegisterRequest) (*models.User, error) {
			s.Equal("newuser@example.com", req.Email)
			return created, nil
		})

	c, rec := newContext(s.e, http.MethodPost, "/session/register",
		`{"username":"newuser","email":"newuser@example.com","password":"secret1","fullName":"New User"}`)

	s.Require().NoError(s.handler.Register(c))
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *SessionHandlerSuite) TestLogout() {
	s.session.EXPECT().Logout(gomock.Any()).Return(nil)
	c, rec := newSignedInContext(s.e, http.MethodPost, "/session/logout", "")
	s.Require().NoError(s.handler.Logout(c))
	s.Equal(http.StatusOK, rec.Code)

	s.session.EXPECT().Logout(gomock.Any()).Return(errors.New("mirror unavailable"))
	c, rec = newSignedInContext(s.e, http.MethodPost, "/session/logout", "")
	s.Require().NoError(s.handler.Logout(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_002", decodeError(rec).Error.Code)
}

func (s *SessionHandlerSuite) TestCurrent() {
	s.session.EXPECT().CurrentUser().Return(nil, false)
	c, rec := newContext(s.e, http.MethodGet, "/session", "")
	s.Require().NoError(s.handler.Current(c))
	s.Equal(http.StatusUnauthorized, rec.Code)

	s.session.EXPECT().CurrentUser().Return(&models.User{ID: "7", Username: "jdoe"}, true)
	c, rec = newContext(s.e, http.MethodGet, "/session", "")
	s.Require().NoError(s.handler.Current(c))
	s.Equal(http.StatusOK, rec.Code)
}
