package handlers

import (
	stderrors "errors"
	"net/http"

	"banking-client/internal/dto"
	"banking-client/internal/errors"
	"banking-client/internal/services"

	"github.com/labstack/echo/v4"
)

// BeneficiaryHandler manages the signed-in user's saved transfer destinations
type BeneficiaryHandler struct {
	beneficiaries services.BeneficiaryServiceInterface
}

func NewBeneficiaryHandler(beneficiaries services.BeneficiaryServiceInterface) *BeneficiaryHandler {
	return &BeneficiaryHandler{beneficiaries: beneficiaries}
}

// ListBeneficiaries
// @Summary Saved beneficiaries
// @Tags Beneficiaries
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.Beneficiary}
// @Router /beneficiaries [get]
func (h *BeneficiaryHandler) ListBeneficiaries(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	if c.QueryParam("reload") == "true" {
		// A failed reload falls back to the mirrored list
		_ = h.beneficiaries.Load(c.Request().Context(), userID)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: h.beneficiaries.List(userID)})
}

// AddBeneficiary
// @Summary Save a beneficiary
// @Tags Beneficiaries
// @Accept json
// @Produce json
// @Param request body dto.BeneficiaryRequest true "Beneficiary"
// @Success 201 {object} SuccessResponse{data=models.Beneficiary}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 502 {object} errors.ErrorResponse "Ledger failure"
// @Router /beneficiaries [post]
func (h *BeneficiaryHandler) AddBeneficiary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	var req dto.BeneficiaryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	saved, err := h.beneficiaries.Add(c.Request().Context(), userID, req)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    saved,
		Message: "Beneficiary saved",
	})
}

// UpdateBeneficiary
// @Summary Edit a beneficiary
// @Tags Beneficiaries
// @Accept json
// @Produce json
// @Param id path string true "Beneficiary ID"
// @Param request body dto.BeneficiaryRequest true "Beneficiary"
// @Success 200 {object} SuccessResponse{data=models.Beneficiary}
// @Failure 404 {object} errors.ErrorResponse "BENEFICIARY_001"
// @Router /beneficiaries/{id} [put]
func (h *BeneficiaryHandler) UpdateBeneficiary(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	var req dto.BeneficiaryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	saved, err := h.beneficiaries.Update(c.Request().Context(), getIDParam(c, "id"), req)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: saved})
}

// DeleteBeneficiary
// @Summary Remove a beneficiary
// @Tags Beneficiaries
// @Param id path string true "Beneficiary ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "BENEFICIARY_001"
// @Router /beneficiaries/{id} [delete]
func (h *BeneficiaryHandler) DeleteBeneficiary(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingSession)
	}

	if err := h.beneficiaries.Delete(c.Request().Context(), getIDParam(c, "id")); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *BeneficiaryHandler) handleServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrBeneficiaryNotFound), stderrors.Is(err, services.ErrInvalidBeneficiaryID):
		return SendError(c, errors.BeneficiaryNotFound)
	case stderrors.Is(err, services.ErrNoBeneficiarySaved):
		return SendError(c, errors.NetworkInvalidReply)
	default:
		return SendGatewayError(c, err)
	}
}
