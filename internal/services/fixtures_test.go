package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"banking-client/internal/database"
	"banking-client/internal/gateway/gateway_mocks"
	"banking-client/internal/models"
	"banking-client/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMetrics() *PrometheusMetrics {
	return NewPrometheusMetrics(prometheus.NewRegistry())
}

// fixture bundles the collaborators most service tests need: a mocked
// ledger, a real mirror on in-memory sqlite, and real metrics and audit
// sinks that write nowhere.
type fixture struct {
	ctrl    *gomock.Controller
	gateway *gateway_mocks.MockGateway
	mirror  repositories.MirrorRepositoryInterface
	metrics *PrometheusMetrics
	audit   AuditLoggerInterface
	logger  *slog.Logger
}

func newFixture(t *testing.T, ctrl *gomock.Controller) *fixture {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	logger := discardLogger()
	return &fixture{
		ctrl:    ctrl,
		gateway: gateway_mocks.NewMockGateway(ctrl),
		mirror:  repositories.NewMirrorRepository(db.DB),
		metrics: newTestMetrics(),
		audit:   NewAuditLogger(logger),
		logger:  logger,
	}
}

func fakeAccount(userID models.ID, balance int64) models.Account {
	amount := decimal.NewFromInt(balance)
	return models.Account{
		ID:               models.ID(gofakeit.Numerify("#######")),
		AccountNumber:    "ACC" + gofakeit.Numerify("#######"),
		AccountType:      models.AccountTypeSavings,
		Balance:          amount,
		ConfirmedBalance: amount,
		SyncState:        models.SyncStateSynced,
		UserID:           userID,
		InterestRate:     decimal.NewFromFloat(2.5),
		Status:           models.AccountStatusActive,
		CreatedDate:      time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func fakeTransaction(txType string, source, destination models.ID, amount int64) models.Transaction {
	return models.Transaction{
		ID:                   models.ID(gofakeit.Numerify("#########")),
		Reference:            "TXN" + gofakeit.Numerify("##########"),
		Type:                 txType,
		Amount:               decimal.NewFromInt(amount),
		SourceAccountID:      source,
		DestinationAccountID: destination,
		Description:          gofakeit.Sentence(5),
		Timestamp:            time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		Status:               models.TransactionStatusCompleted,
	}
}

func fakeUser() models.User {
	return models.User{
		ID:       models.ID(gofakeit.Numerify("####")),
		Username: gofakeit.FirstName() + gofakeit.Numerify("##"),
		Email:    gofakeit.Email(),
		FullName: gofakeit.FirstName() + " " + gofakeit.LastName(),
	}
}
