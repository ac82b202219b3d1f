package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"banking-client/internal/models"

	"github.com/shopspring/decimal"
)

// Envelope is the {success, message, data} wrapper the ledger puts around most
// responses. Some endpoints reply with the bare payload instead.
type Envelope struct {
	Success *bool           `json:"success,omitempty"`
	Message string          `json:"message,omitempty"`
	Code    string          `json:"code,omitempty"`
	Details any             `json:"details,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// UnwrapData returns the data member of an enveloped body, or the body itself
// when it is not enveloped.
func UnwrapData(body []byte) (json.RawMessage, *Envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil, nil
	}

	if trimmed[0] != '{' {
		return trimmed, nil, nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, nil, err
	}

	_, hasData := probe["data"]
	_, hasSuccess := probe["success"]
	if !hasData && !hasSuccess {
		return trimmed, nil, nil
	}

	var env Envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, nil, err
	}
	return env.Data, &env, nil
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp decodes the textual, epoch-millisecond and [y,m,d,h,m,s] array
// forms the ledger uses for dates. Zone-less text is read as local time.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseTimestamp(s)
		if err != nil {
			return err
		}
		t.Time = parsed
		return nil
	case '[':
		var parts []int
		if err := json.Unmarshal(data, &parts); err != nil {
			return fmt.Errorf("invalid timestamp array: %w", err)
		}
		for len(parts) < 7 {
			parts = append(parts, 0)
		}
		t.Time = time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], parts[6], time.Local)
		return nil
	default:
		var millis int64
		if err := json.Unmarshal(data, &millis); err != nil {
			return fmt.Errorf("invalid timestamp %s", string(data))
		}
		t.Time = time.UnixMilli(millis)
		return nil
	}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time)
}

// ParseTimestamp parses the textual date forms emitted by the ledger
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// AccountPayload is an account as the ledger serializes it
type AccountPayload struct {
	ID            models.ID       `json:"id"`
	AccountNumber string          `json:"accountNumber"`
	AccountType   string          `json:"accountType"`
	Balance       decimal.Decimal `json:"balance"`
	UserID        models.ID       `json:"userId"`
	InterestRate  decimal.Decimal `json:"interestRate"`
	Status        string          `json:"status"`
	CreatedDate   Timestamp       `json:"createdDate"`
}

func (p AccountPayload) ToModel() models.Account {
	accountType, _ := models.NormalizeAccountType(p.AccountType)
	return models.Account{
		ID:               p.ID,
		AccountNumber:    strings.TrimSpace(p.AccountNumber),
		AccountType:      accountType,
		Balance:          p.Balance,
		UserID:           p.UserID,
		InterestRate:     p.InterestRate,
		Status:           p.Status,
		CreatedDate:      p.CreatedDate.Time,
		ConfirmedBalance: p.Balance,
		SyncState:        models.SyncStateSynced,
	}
}

// AccountsToModels converts a ledger page. A nil page stays nil.
func AccountsToModels(payloads []AccountPayload) []models.Account {
	if payloads == nil {
		return nil
	}
	accounts := make([]models.Account, 0, len(payloads))
	for _, p := range payloads {
		accounts = append(accounts, p.ToModel())
	}
	return accounts
}

// TransactionPayload is a transaction as the ledger serializes it. Field
// names differ between the history and the submit endpoints, so both the
// id and the number forms of each side are accepted.
type TransactionPayload struct {
	ID                models.ID        `json:"id"`
	TransactionID     string           `json:"transactionId"`
	TransactionType   string           `json:"transactionType"`
	Type              string           `json:"type"`
	Amount            decimal.Decimal  `json:"amount"`
	FromAccountID     models.ID        `json:"fromAccountId"`
	AccountID         models.ID        `json:"accountId"`
	FromAccountNumber string           `json:"fromAccountNumber"`
	ToAccountID       models.ID        `json:"toAccountId"`
	ToAccountNumber   string           `json:"toAccountNumber"`
	Description       string           `json:"description"`
	Date              Timestamp        `json:"date"`
	Timestamp         Timestamp        `json:"timestamp"`
	BalanceAfter      *decimal.Decimal `json:"balanceAfter"`
	Status            string           `json:"status"`
	RecipientName     string           `json:"recipientName"`
}

func (p TransactionPayload) ToModel() models.Transaction {
	rawType := p.TransactionType
	if rawType == "" {
		rawType = p.Type
	}
	txType, _ := models.NormalizeTransactionType(rawType)

	source := p.FromAccountID
	if source.IsZero() {
		source = p.AccountID
	}

	when := p.Date.Time
	if when.IsZero() {
		when = p.Timestamp.Time
	}

	return models.Transaction{
		ID:                       p.ID,
		Reference:                p.TransactionID,
		Type:                     txType,
		Amount:                   p.Amount,
		SourceAccountID:          source,
		SourceAccountNumber:      strings.TrimSpace(p.FromAccountNumber),
		DestinationAccountID:     p.ToAccountID,
		DestinationAccountNumber: strings.TrimSpace(p.ToAccountNumber),
		Description:              p.Description,
		Timestamp:                when,
		BalanceAfter:             p.BalanceAfter,
		Status:                   p.Status,
		RecipientName:            p.RecipientName,
	}
}

// TransactionsToModels converts a ledger page. A nil page stays nil.
func TransactionsToModels(payloads []TransactionPayload) []models.Transaction {
	if payloads == nil {
		return nil
	}
	transactions := make([]models.Transaction, 0, len(payloads))
	for _, p := range payloads {
		transactions = append(transactions, p.ToModel())
	}
	return transactions
}

// DailyLimitPayload is the ledger's view of today's limits
type DailyLimitPayload struct {
	WithdrawalLimit decimal.Decimal `json:"withdrawalLimit"`
	WithdrawalUsed  decimal.Decimal `json:"withdrawalUsed"`
	TransferLimit   decimal.Decimal `json:"transferLimit"`
	TransferUsed    decimal.Decimal `json:"transferUsed"`
	LastResetDate   Timestamp       `json:"lastResetDate"`
}

func (p DailyLimitPayload) ToModel() models.DailyLimit {
	return models.DailyLimit{
		WithdrawalLimit: p.WithdrawalLimit,
		WithdrawalUsed:  p.WithdrawalUsed,
		TransferLimit:   p.TransferLimit,
		TransferUsed:    p.TransferUsed,
		LastResetDate:   p.LastResetDate.Time,
	}
}

// BeneficiaryPayload accepts both accountNumber and beneficiaryAccountNumber
type BeneficiaryPayload struct {
	ID                       models.ID `json:"id"`
	UserID                   models.ID `json:"userId"`
	AccountNumber            string    `json:"accountNumber,omitempty"`
	BeneficiaryAccountNumber string    `json:"beneficiaryAccountNumber,omitempty"`
	AccountName              string    `json:"accountName"`
	BankName                 string    `json:"bankName,omitempty"`
	Nickname                 string    `json:"nickname,omitempty"`
}

func (p BeneficiaryPayload) ToModel() models.Beneficiary {
	number := p.BeneficiaryAccountNumber
	if number == "" {
		number = p.AccountNumber
	}
	return models.Beneficiary{
		ID:            p.ID,
		UserID:        p.UserID,
		AccountNumber: strings.TrimSpace(number),
		AccountName:   p.AccountName,
		BankName:      p.BankName,
		Nickname:      p.Nickname,
	}
}

// NewBeneficiaryPayload builds the body sent on create and update
func NewBeneficiaryPayload(b models.Beneficiary) BeneficiaryPayload {
	return BeneficiaryPayload{
		ID:                       b.ID,
		UserID:                   b.UserID,
		AccountNumber:            b.AccountNumber,
		BeneficiaryAccountNumber: b.AccountNumber,
		AccountName:              b.AccountName,
		BankName:                 b.BankName,
		Nickname:                 b.Nickname,
	}
}

// SummaryPayload is the ledger's monthly summary
type SummaryPayload struct {
	TotalDeposits     decimal.Decimal `json:"totalDeposits"`
	TotalWithdrawals  decimal.Decimal `json:"totalWithdrawals"`
	TotalTransfers    decimal.Decimal `json:"totalTransfers"`
	TransactionCount  int             `json:"transactionCount"`
	Month             int             `json:"month"`
	Year              int             `json:"year"`
	DepositChange     decimal.Decimal `json:"depositChange"`
	WithdrawalChange  decimal.Decimal `json:"withdrawalChange"`
	TransferChange    decimal.Decimal `json:"transferChange"`
	TransactionChange int             `json:"transactionChange"`
}

func (p SummaryPayload) ToModel() models.TransactionSummary {
	return models.TransactionSummary{
		Month:             p.Month,
		Year:              p.Year,
		TotalDeposits:     p.TotalDeposits,
		TotalWithdrawals:  p.TotalWithdrawals,
		TotalTransfers:    p.TotalTransfers,
		TransactionCount:  p.TransactionCount,
		DepositChange:     p.DepositChange,
		WithdrawalChange:  p.WithdrawalChange,
		TransferChange:    p.TransferChange,
		TransactionChange: p.TransactionChange,
	}
}

// LoginPayload is the data member of a successful /auth/login reply
type LoginPayload struct {
	UserID   models.ID        `json:"userId"`
	Username string           `json:"username"`
	Email    string           `json:"email"`
	FullName string           `json:"fullName"`
	Token    string           `json:"token"`
	Accounts []AccountPayload `json:"accounts"`
}

func (p LoginPayload) User() models.User {
	return models.User{
		ID:       p.UserID,
		Username: p.Username,
		Email:    p.Email,
		FullName: p.FullName,
	}
}

// LedgerTransactionRequest is the body of the deposit/withdraw/transfer endpoints
type LedgerTransactionRequest struct {
	AccountID       models.ID       `json:"accountId"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	ToAccountNumber string          `json:"toAccountNumber,omitempty"`
}
