package main

import (
	"log/slog"

	"banking-client/internal/config"
	"banking-client/internal/gateway"
	"banking-client/internal/handlers"
	"banking-client/internal/middleware"
	"banking-client/internal/repositories"
	"banking-client/internal/services"

	"github.com/labstack/echo/v4"
)

type routeDeps struct {
	session       services.SessionServiceInterface
	accounts      services.AccountStoreInterface
	transactions  services.TransactionStoreInterface
	limits        services.DailyLimitPolicyInterface
	beneficiaries services.BeneficiaryServiceInterface
	refresh       services.RefreshBroadcasterInterface
	statements    services.StatementServiceInterface
	orchestrator  services.TransactionOrchestratorInterface
	mirror        repositories.MirrorRepositoryInterface
	breaker       gateway.CircuitBreakerInterface
	logger        *slog.Logger
}

func registerRoutes(e *echo.Echo, cfg *config.Config, deps routeDeps) {
	health := handlers.NewHealthCheckHandler(deps.mirror, deps.breaker)
	session := handlers.NewSessionHandler(deps.session, deps.logger)
	accounts := handlers.NewAccountHandler(deps.accounts)
	transactions := handlers.NewTransactionHandler(deps.accounts, deps.transactions, deps.orchestrator)
	limits := handlers.NewLimitsHandler(deps.accounts, deps.limits, cfg.Limits)
	statements := handlers.NewStatementHandler(deps.accounts, deps.statements)
	beneficiaries := handlers.NewBeneficiaryHandler(deps.beneficiaries)
	events := handlers.NewEventsHandler(deps.refresh, cfg.Server.RefreshPollTimeout)

	e.GET("/health", health.HealthCheck)

	auth := e.Group("/session")
	auth.POST("/register", session.Register)
	auth.POST("/login", session.Login)
	auth.POST("/logout", session.Logout)
	auth.GET("", session.Current)

	signedIn := e.Group("", middleware.RequireSession(deps.session))

	signedIn.GET("/accounts", accounts.ListAccounts)
	signedIn.POST("/accounts", accounts.CreateAccount)
	signedIn.POST("/accounts/reload", accounts.ReloadAccounts)
	signedIn.GET("/accounts/selected", accounts.GetSelected)
	signedIn.GET("/accounts/:id", accounts.GetAccount)
	signedIn.PUT("/accounts/selected", accounts.SelectAccount)

	signedIn.GET("/accounts/:id/transactions", transactions.ListTransactions)
	signedIn.GET("/accounts/:id/transactions/recent", transactions.RecentTransactions)
	signedIn.POST("/accounts/:id/transactions/reload", transactions.ReloadTransactions)
	signedIn.POST("/operations/deposit", transactions.Deposit)
	signedIn.POST("/operations/withdraw", transactions.Withdraw)
	signedIn.POST("/operations/transfer", transactions.Transfer)

	signedIn.GET("/accounts/:id/mini-statement", statements.MiniStatement)
	signedIn.GET("/accounts/:id/monthly-summary", statements.MonthlySummary)

	signedIn.GET("/limits", limits.GetLimits)
	signedIn.POST("/accounts/:id/limits/sync", limits.SyncLimits)

	signedIn.GET("/beneficiaries", beneficiaries.ListBeneficiaries)
	signedIn.POST("/beneficiaries", beneficiaries.AddBeneficiary)
	signedIn.PUT("/beneficiaries/:id", beneficiaries.UpdateBeneficiary)
	signedIn.DELETE("/beneficiaries/:id", beneficiaries.DeleteBeneficiary)

	signedIn.GET("/events/refresh", events.WaitForRefresh)
}
