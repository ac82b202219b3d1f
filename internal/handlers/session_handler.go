package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"banking-client/internal/dto"
	"banking-client/internal/errors"
	"banking-client/internal/gateway"
	"banking-client/internal/services"

	"github.com/labstack/echo/v4"
)

// SessionHandler handles sign-in, registration and sign-out
type SessionHandler struct {
	session services.SessionServiceInterface
	logger  *slog.Logger
}

func NewSessionHandler(session services.SessionServiceInterface, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		session: session,
		logger:  logger,
	}
}

// Register
// @Summary Register a new ledger user
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} SuccessResponse{data=models.User}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 502 {object} errors.ErrorResponse "Ledger rejection or NETWORK_001"
// @Router /session/register [post]
func (h *SessionHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.session.Register(c.Request().Context(), req)
	if err != nil {
		return SendGatewayError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    user,
		Message: "Registration successful",
	})
}

// Login
// @Summary Sign in
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001"
// @Failure 502 {object} errors.ErrorResponse "NETWORK_001 or NETWORK_002"
// @Router /session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	response, err := h.session.Login(c.Request().Context(), req)
	if err != nil {
		h.logger.WarnContext(c.Request().Context(), "sign-in failed",
			slog.String("username", req.Username),
			slog.String("ip_address", getClientIP(c)),
			slog.String("error", err.Error()),
		)

		if stderrors.Is(err, services.ErrInvalidLoginResult) {
			return SendError(c, errors.NetworkInvalidReply)
		}
		if gwErr, ok := gateway.AsError(err); ok && gwErr.Status == http.StatusUnauthorized {
			return SendError(c, errors.AuthInvalidCredentials, errors.WithMessage(gwErr.Message))
		}
		return SendGatewayError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// Logout
// @Summary Sign out and clear every local store
// @Tags Session
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002"
// @Router /session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.session.Logout(c.Request().Context()); err != nil {
		return SendError(c, errors.SystemStorageError)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Signed out"})
}

// Current
// @Summary The signed-in user
// @Tags Session
// @Produce json
// @Success 200 {object} SuccessResponse{data=models.User}
// @Failure 401 {object} errors.ErrorResponse "AUTH_002"
// @Router /session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	user, ok := h.session.CurrentUser()
	if !ok {
		return SendError(c, errors.AuthMissingSession)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: user})
}
