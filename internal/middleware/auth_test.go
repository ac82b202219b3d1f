package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"banking-client/internal/handlers"
	"banking-client/internal/models"
	"banking-client/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequireSessionSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	session *service_mocks.MockSessionServiceInterface
	echo    *echo.Echo
}

func TestRequireSessionSuite(t *testing.T) {
	suite.Run(t, new(RequireSessionSuite))
}

func (s *RequireSessionSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.session = service_mocks.NewMockSessionServiceInterface(s.ctrl)
	s.echo = echo.New()
}

func (s *RequireSessionSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RequireSessionSuite) run() (*httptest.ResponseRecorder, any, bool) {
	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	called := false
	var userID any
	handler := RequireSession(s.session)(func(c echo.Context) error {
		called = true
		userID = c.Get(handlers.UserIDContextKey)
		return c.NoContent(http.StatusOK)
	})

	s.Require().NoError(handler(c))
	return rec, userID, called
}

func (s *RequireSessionSuite) TestSignedIn() {
	s.session.EXPECT().CurrentUser().Return(&models.User{ID: "7", Username: "jane"}, true)

	rec, userID, called := s.run()

	s.True(called)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(models.ID("7"), userID)
}

func (s *RequireSessionSuite) TestSignedOut() {
	s.session.EXPECT().CurrentUser().Return(nil, false)

	rec, _, called := s.run()

	s.False(called)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}
