package handlers

import (
	"net/http"
	"testing"

	"banking-client/internal/models"
	"banking-client/internal/services"
	"banking-client/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type BeneficiaryHandlerSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	e             *echo.Echo
	beneficiaries *service_mocks.MockBeneficiaryServiceInterface
	handler       *BeneficiaryHandler
}

func TestBeneficiaryHandlerSuite(t *testing.T) {
	suite.Run(t, new(BeneficiaryHandlerSuite))
}

func (s *BeneficiaryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.e = newTestEcho()
	s.beneficiaries = service_mocks.NewMockBeneficiaryServiceInterface(s.ctrl)
	s.handler = NewBeneficiaryHandler(s.beneficiaries)
}

func (s *BeneficiaryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BeneficiaryHandlerSuite) TestList_WithReload() {
	s.beneficiaries.EXPECT().Load(gomock.Any(), testUserID).Return(nil)
	s.beneficiaries.EXPECT().List(testUserID).Return([]models.Beneficiary{{ID: "5", AccountNumber: "EXT1", AccountName: "Mary"}})

	c, rec := newSignedInContext(s.e, http.MethodGet, "/beneficiaries?reload=true", "")

	s.Require().NoError(s.handler.ListBeneficiaries(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "EXT1")
}

func (s *BeneficiaryHandlerSuite) TestAdd() {
	s.beneficiaries.EXPECT().Add(gomock.Any(), testUserID, gomock.Any()).
		Return(&models.Beneficiary{ID: "5", UserID: testUserID, AccountNumber: "EXT1", AccountName: "Mary"}, nil)

	c, rec := newSignedInContext(s.e, http.MethodPost, "/beneficiaries", `{"accountNumber":"EXT1","accountName":"Mary"}`)

	s.Require().NoError(s.handler.AddBeneficiary(c))
	s.Equal(http.StatusCreated, rec.Code)

	c, _ = newSignedInContext(s.e, http.MethodPost, "/beneficiaries", `{"accountName":"Mary"}`)
	s.Error(s.handler.AddBeneficiary(c), "the account number is required")
}

func (s *BeneficiaryHandlerSuite) TestUpdate_NotFound() {
	s.beneficiaries.EXPECT().Update(gomock.Any(), models.ID("404"), gomock.Any()).Return(nil, services.ErrBeneficiaryNotFound)

	c, rec := newSignedInContext(s.e, http.MethodPut, "/beneficiaries/404", `{"accountNumber":"EXT1","accountName":"Mary"}`)
	c = withParam(c, "id", "404")

	s.Require().NoError(s.handler.UpdateBeneficiary(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("BENEFICIARY_001", decodeError(rec).Error.Code)
}

func (s *BeneficiaryHandlerSuite) TestDelete() {
	s.beneficiaries.EXPECT().Delete(gomock.Any(), models.ID("5")).Return(nil)

	c, rec := newSignedInContext(s.e, http.MethodDelete, "/beneficiaries/5", "")
	c = withParam(c, "id", "5")

	s.Require().NoError(s.handler.DeleteBeneficiary(c))
	s.Equal(http.StatusNoContent, rec.Code)
}
