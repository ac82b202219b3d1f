package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"banking-client/internal/config"
	"banking-client/internal/dto"
	apperrors "banking-client/internal/errors"
	"banking-client/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidLoginResponse = errors.New("invalid login response: missing token or user data")

var ErrResponseTooLarge = errors.New("ledger reply exceeds the size limit")

const defaultMaxResponseBytes = 4 << 20

// Client talks to the ledger's REST API
type Client struct {
	baseURL     string
	maxBody     int64
	httpClient  *http.Client
	credentials *Credentials
	breaker     CircuitBreakerInterface
	metrics     MetricsRecorder
	logger      *slog.Logger
}

type ClientOption func(*Client)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithCircuitBreaker(breaker CircuitBreakerInterface) ClientOption {
	return func(c *Client) {
		c.breaker = breaker
	}
}

func WithMetrics(metrics MetricsRecorder) ClientOption {
	return func(c *Client) {
		c.metrics = metrics
	}
}

// NewClient creates a ledger client. Without WithCircuitBreaker the breaker is
// built from cfg.
func NewClient(cfg config.GatewayConfig, credentials *Credentials, logger *slog.Logger, opts ...ClientOption) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	maxBody := int64(cfg.MaxResponseBytes)
	if maxBody <= 0 {
		maxBody = defaultMaxResponseBytes
	}

	c := &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		maxBody:     maxBody,
		httpClient:  &http.Client{Timeout: timeout},
		credentials: credentials,
		logger:      logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.credentials == nil {
		c.credentials = NewCredentials()
	}
	if c.breaker == nil {
		c.breaker = NewCircuitBreaker(CircuitBreakerConfig{
			MaxFailures:     cfg.BreakerMaxFailures,
			ResetTimeout:    cfg.BreakerResetTimeout,
			HalfOpenMaxSucc: cfg.BreakerHalfOpenSucc,
		}, nil)
	}

	return c
}

func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}

	var payload dto.LoginPayload
	found, err := c.do(ctx, "login", http.MethodPost, "/auth/login", nil, body, &payload)
	if err != nil {
		return nil, err
	}

	if !found || payload.Token == "" || payload.UserID.IsZero() {
		return nil, newDecodeError(http.StatusOK, ErrInvalidLoginResponse)
	}

	c.credentials.SetToken(payload.Token)

	accounts := dto.AccountsToModels(payload.Accounts)
	if accounts == nil {
		accounts = []models.Account{}
	}

	return &LoginResult{
		User:     payload.User(),
		Token:    payload.Token,
		Accounts: accounts,
	}, nil
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, "logout", http.MethodPost, "/auth/logout", nil, struct{}{}, nil)
	c.credentials.Clear()
	return err
}

func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	var payload struct {
		ID          models.ID `json:"id"`
		UserID      models.ID `json:"userId"`
		Username    string    `json:"username"`
		Email       string    `json:"email"`
		FullName    string    `json:"fullName"`
		PhoneNumber string    `json:"phoneNumber"`
	}

	found, err := c.do(ctx, "register", http.MethodPost, "/auth/register", nil, req, &payload)
	if err != nil || !found {
		return nil, err
	}

	id := payload.UserID
	if id.IsZero() {
		id = payload.ID
	}

	return &models.User{
		ID:          id,
		Username:    payload.Username,
		Email:       payload.Email,
		FullName:    payload.FullName,
		PhoneNumber: payload.PhoneNumber,
	}, nil
}

func (c *Client) GetAccountsForUser(ctx context.Context, userID models.ID) ([]models.Account, error) {
	var payloads []dto.AccountPayload
	found, err := c.do(ctx, "get_accounts", http.MethodGet, "/accounts/user/"+url.PathEscape(userID.String()), nil, nil, &payloads)
	if err != nil || !found {
		return nil, err
	}
	return dto.AccountsToModels(payloads), nil
}

func (c *Client) GetAccount(ctx context.Context, accountID models.ID) (*models.Account, error) {
	return c.accountCall(ctx, "get_account", http.MethodGet, "/accounts/"+url.PathEscape(accountID.String()), nil)
}

func (c *Client) CreateAccount(ctx context.Context, accountType string, userID models.ID) (*models.Account, error) {
	body := dto.LedgerCreateAccountRequest{AccountType: accountType, UserID: userID}
	return c.accountCall(ctx, "create_account", http.MethodPost, "/accounts", body)
}

func (c *Client) UpdateAccount(ctx context.Context, accountID models.ID, update dto.AccountUpdate) (*models.Account, error) {
	return c.accountCall(ctx, "update_account", http.MethodPut, "/accounts/"+url.PathEscape(accountID.String()), update)
}

func (c *Client) accountCall(ctx context.Context, operation, method, path string, body any) (*models.Account, error) {
	var payload dto.AccountPayload
	found, err := c.do(ctx, operation, method, path, nil, body, &payload)
	if err != nil || !found {
		return nil, err
	}
	account := payload.ToModel()
	return &account, nil
}

func (c *Client) SubmitDeposit(ctx context.Context, accountID models.ID, amount decimal.Decimal, description string) (*models.Transaction, error) {
	body := dto.LedgerTransactionRequest{AccountID: accountID, Amount: amount, Description: description}
	return c.submit(ctx, "deposit", "/transactions/deposit", body)
}

func (c *Client) SubmitWithdrawal(ctx context.Context, accountID models.ID, amount decimal.Decimal, description string) (*models.Transaction, error) {
	body := dto.LedgerTransactionRequest{AccountID: accountID, Amount: amount, Description: description}
	return c.submit(ctx, "withdraw", "/transactions/withdraw", body)
}

func (c *Client) SubmitTransfer(ctx context.Context, accountID models.ID, destinationAccountNumber string, amount decimal.Decimal, description string) (*models.Transaction, error) {
	body := dto.LedgerTransactionRequest{
		AccountID:       accountID,
		Amount:          amount,
		Description:     description,
		ToAccountNumber: destinationAccountNumber,
	}
	return c.submit(ctx, "transfer", "/transactions/transfer", body)
}

// submit posts an operation. A success reply without a body still counts as
// success; the returned transaction is then nil.
func (c *Client) submit(ctx context.Context, operation, path string, body dto.LedgerTransactionRequest) (*models.Transaction, error) {
	var payload dto.TransactionPayload
	found, err := c.do(ctx, operation, http.MethodPost, path, nil, body, &payload)
	if err != nil || !found {
		return nil, err
	}

	tx := payload.ToModel()
	if tx.SourceAccountID.IsZero() {
		tx.SourceAccountID = body.AccountID
	}
	if tx.DestinationAccountNumber == "" && body.ToAccountNumber != "" {
		tx.DestinationAccountNumber = body.ToAccountNumber
	}
	return &tx, nil
}

func (c *Client) GetTransactionHistory(ctx context.Context, accountID models.ID) ([]models.Transaction, error) {
	return c.transactionList(ctx, "transaction_history", "/transactions/history/"+url.PathEscape(accountID.String()), nil)
}

func (c *Client) GetRecentTransactions(ctx context.Context, accountID models.ID, limit int) ([]models.Transaction, error) {
	var query url.Values
	if limit > 0 {
		query = url.Values{"limit": []string{strconv.Itoa(limit)}}
	}

	transactions, err := c.transactionList(ctx, "mini_statement", "/transactions/mini-statement/"+url.PathEscape(accountID.String()), query)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(transactions) > limit {
		transactions = transactions[:limit]
	}
	return transactions, nil
}

func (c *Client) transactionList(ctx context.Context, operation, path string, query url.Values) ([]models.Transaction, error) {
	var payloads []dto.TransactionPayload
	found, err := c.do(ctx, operation, http.MethodGet, path, query, nil, &payloads)
	if err != nil || !found {
		return nil, err
	}
	return dto.TransactionsToModels(payloads), nil
}

func (c *Client) GetMonthlySummary(ctx context.Context, accountID models.ID, month, year int) (*models.TransactionSummary, error) {
	query := url.Values{
		"month": []string{strconv.Itoa(month)},
		"year":  []string{strconv.Itoa(year)},
	}

	var payload dto.SummaryPayload
	found, err := c.do(ctx, "monthly_summary", http.MethodGet, "/transactions/monthly-summary/"+url.PathEscape(accountID.String()), query, nil, &payload)
	if err != nil || !found {
		return nil, err
	}

	summary := payload.ToModel()
	if summary.Month == 0 {
		summary.Month = month
	}
	if summary.Year == 0 {
		summary.Year = year
	}
	return &summary, nil
}

func (c *Client) GetDailyLimits(ctx context.Context, accountID models.ID) (*models.DailyLimit, error) {
	var payload dto.DailyLimitPayload
	found, err := c.do(ctx, "daily_limits", http.MethodGet, "/daily-limits/account/"+url.PathEscape(accountID.String()), nil, nil, &payload)
	if err != nil || !found {
		return nil, err
	}
	limit := payload.ToModel()
	return &limit, nil
}

func (c *Client) GetBeneficiaries(ctx context.Context, userID models.ID) ([]models.Beneficiary, error) {
	var payloads []dto.BeneficiaryPayload
	found, err := c.do(ctx, "get_beneficiaries", http.MethodGet, "/beneficiaries/user/"+url.PathEscape(userID.String()), nil, nil, &payloads)
	if err != nil || !found {
		return nil, err
	}

	beneficiaries := make([]models.Beneficiary, 0, len(payloads))
	for _, p := range payloads {
		b := p.ToModel()
		if b.UserID.IsZero() {
			b.UserID = userID
		}
		beneficiaries = append(beneficiaries, b)
	}
	return beneficiaries, nil
}

func (c *Client) AddBeneficiary(ctx context.Context, userID models.ID, beneficiary models.Beneficiary) (*models.Beneficiary, error) {
	beneficiary.UserID = userID
	return c.beneficiaryCall(ctx, "add_beneficiary", http.MethodPost, "/beneficiaries/user/"+url.PathEscape(userID.String()), beneficiary)
}

func (c *Client) UpdateBeneficiary(ctx context.Context, beneficiary models.Beneficiary) (*models.Beneficiary, error) {
	return c.beneficiaryCall(ctx, "update_beneficiary", http.MethodPut, "/beneficiaries/"+url.PathEscape(beneficiary.ID.String()), beneficiary)
}

func (c *Client) beneficiaryCall(ctx context.Context, operation, method, path string, beneficiary models.Beneficiary) (*models.Beneficiary, error) {
	var payload dto.BeneficiaryPayload
	found, err := c.do(ctx, operation, method, path, nil, dto.NewBeneficiaryPayload(beneficiary), &payload)
	if err != nil || !found {
		return nil, err
	}

	saved := payload.ToModel()
	if saved.UserID.IsZero() {
		saved.UserID = beneficiary.UserID
	}
	return &saved, nil
}

func (c *Client) DeleteBeneficiary(ctx context.Context, beneficiaryID models.ID) error {
	_, err := c.do(ctx, "delete_beneficiary", http.MethodDelete, "/beneficiaries/"+url.PathEscape(beneficiaryID.String()), nil, nil, nil)
	return err
}

// do performs one request. found is false when the reply carried no payload
// (empty body, missing or null data).
func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body, out any) (found bool, err error) {
	start := time.Now()
	defer func() {
		c.record(operation, start, err)
	}()

	if c.breaker.IsOpen() {
		return false, newUnavailableError()
	}

	var reader io.Reader
	if body != nil {
		encoded, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return false, fmt.Errorf("failed to marshal %s request: %w", operation, marshalErr)
		}
		reader = bytes.NewReader(encoded)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, reqErr := http.NewRequestWithContext(ctx, method, target, reader)
	if reqErr != nil {
		return false, fmt.Errorf("failed to create %s request: %w", operation, reqErr)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.credentials.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	req.Header.Set("X-Request-ID", requestID)

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		c.breaker.RecordFailure()
		c.logger.WarnContext(ctx, "ledger request failed",
			slog.String("operation", operation),
			slog.String("request_id", requestID),
			slog.String("error", doErr.Error()),
		)
		return false, newTransportError(doErr)
	}
	defer resp.Body.Close()

	payload, readErr := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if readErr != nil {
		c.breaker.RecordFailure()
		return false, newTransportError(readErr)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.breaker.RecordFailure()
	} else {
		c.breaker.RecordSuccess()
	}

	if int64(len(payload)) > c.maxBody {
		c.logger.WarnContext(ctx, "ledger reply too large",
			slog.String("operation", operation),
			slog.String("request_id", requestID),
			slog.Int64("limit_bytes", c.maxBody),
		)
		return false, newDecodeError(resp.StatusCode, fmt.Errorf("%w: more than %d bytes", ErrResponseTooLarge, c.maxBody))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody errorBody
		if len(bytes.TrimSpace(payload)) > 0 {
			// a non-JSON error page falls back to the per-status defaults
			_ = json.Unmarshal(payload, &errBody)
		}
		gwErr := newStatusError(resp.StatusCode, errBody)
		c.logger.WarnContext(ctx, "ledger rejected request",
			slog.String("operation", operation),
			slog.String("request_id", requestID),
			slog.Int("status", resp.StatusCode),
			slog.String("code", gwErr.Code),
			slog.String("message", gwErr.Message),
		)
		return false, gwErr
	}

	data, envelope, unwrapErr := dto.UnwrapData(payload)
	if unwrapErr != nil {
		return false, newDecodeError(resp.StatusCode, unwrapErr)
	}

	if envelope != nil && envelope.Success != nil && !*envelope.Success {
		gwErr := &Error{
			Message: envelope.Message,
			Code:    envelope.Code,
			Details: envelope.Details,
			Status:  resp.StatusCode,
			Kind:    KindServer,
		}
		if gwErr.Message == "" {
			gwErr.Message = apperrors.GetErrorMessage(apperrors.TransactionFailed)
		}
		if gwErr.Code == "" {
			gwErr.Code = string(apperrors.TransactionFailed)
		}
		return false, gwErr
	}

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return false, nil
	}

	if out == nil {
		return true, nil
	}

	if decodeErr := json.Unmarshal(data, out); decodeErr != nil {
		c.logger.WarnContext(ctx, "unexpected ledger response shape",
			slog.String("operation", operation),
			slog.String("request_id", requestID),
			slog.String("error", decodeErr.Error()),
		)
		return false, newDecodeError(resp.StatusCode, decodeErr)
	}

	return true, nil
}

func (c *Client) record(operation string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}

	status := "success"
	if gwErr, ok := AsError(err); ok {
		status = string(gwErr.Kind)
	} else if err != nil {
		status = "error"
	}

	c.metrics.IncrementCounter("gateway.request", map[string]string{
		"operation": operation,
		"status":    status,
	})
	c.metrics.RecordProcessingTime("gateway."+operation, time.Since(start))
}
