package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"banking-client/internal/config"
	"banking-client/internal/database"
	"banking-client/internal/gateway"
	"banking-client/internal/handlers"
	"banking-client/internal/middleware"
	"banking-client/internal/models"
	"banking-client/internal/repositories"
	"banking-client/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !stderrors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
	}

	cfg := config.Load()
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("bank client stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// openMirror returns the mirror for the configured driver and a func that
// releases it
func openMirror(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.MirrorRepositoryInterface, func() error, error) {
	if cfg.Mirror.Driver == config.MirrorDriverRedis {
		client, err := repositories.NewRedisClient(cfg.Mirror.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewRedisMirrorRepository(client, cfg.Mirror.KeyPrefix), client.Close, nil
	}

	db, err := database.Initialize(ctx, &cfg.Mirror, logger)
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewMirrorRepository(db.DB), db.Close, nil
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mirror, closeMirror, err := openMirror(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open mirror: %w", err)
	}
	defer func() {
		if err := closeMirror(); err != nil {
			logger.Warn("failed to close mirror", slog.String("error", err.Error()))
		}
	}()

	registry := prometheus.NewRegistry()
	metrics := services.NewPrometheusMetrics(registry)
	audit := services.NewAuditLogger(logger)

	breaker := gateway.NewCircuitBreaker(gateway.CircuitBreakerConfig{
		MaxFailures:     cfg.Gateway.BreakerMaxFailures,
		ResetTimeout:    cfg.Gateway.BreakerResetTimeout,
		HalfOpenMaxSucc: cfg.Gateway.BreakerHalfOpenSucc,
	}, func(from, to models.CircuitBreakerState) {
		audit.LogCircuitBreakerStateChange(context.Background(), "ledger", from.String(), to.String())
		metrics.IncrementCounter("circuit_breaker."+to.String(), map[string]string{"service": "ledger"})
	})

	credentials := gateway.NewCredentials()
	ledger := gateway.NewClient(cfg.Gateway, credentials, logger,
		gateway.WithCircuitBreaker(breaker),
		gateway.WithMetrics(metrics),
	)

	accounts := services.NewAccountStore(ledger, mirror, audit, metrics, logger, cfg.Orchestrator)
	transactions := services.NewTransactionStore(ledger, mirror, accounts, metrics, logger)
	limits := services.NewDailyLimitPolicy(ledger, mirror, audit, metrics, logger, cfg.Limits)
	beneficiaries := services.NewBeneficiaryService(ledger, mirror, logger)
	refresh := services.NewRefreshBroadcaster(metrics)
	statements := services.NewStatementService(ledger, logger)

	var sequencer *services.AccountSequencer
	if cfg.Orchestrator.SequenceByAccount {
		sequencer = services.NewAccountSequencer()
	}
	orchestrator := services.NewTransactionOrchestrator(
		accounts, limits, beneficiaries, refresh, ledger, sequencer, audit, metrics, logger, cfg.Limits,
	)

	session := services.NewSessionService(
		ledger, credentials, services.NewTokenSealer(cfg.Mirror.SealKey), mirror,
		services.SessionStores{
			Accounts:      accounts,
			Transactions:  transactions,
			Limits:        limits,
			Beneficiaries: beneficiaries,
		},
		audit, metrics, logger,
	)

	if user, err := session.Restore(ctx); err == nil {
		logger.Info("session restored", slog.String("user_id", user.ID.String()))
	} else if !stderrors.Is(err, services.ErrNoSession) {
		logger.Info("starting signed out", slog.String("reason", err.Error()))
	}

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerSecond)
	go limiter.Run(ctx)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders(cfg.Server.Environment))
	e.Use(limiter.Middleware())

	registerRoutes(e, cfg, routeDeps{
		session:       session,
		accounts:      accounts,
		transactions:  transactions,
		limits:        limits,
		beneficiaries: beneficiaries,
		refresh:       refresh,
		statements:    statements,
		orchestrator:  orchestrator,
		mirror:        mirror,
		breaker:       breaker,
		logger:        logger,
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.InstrumentMetricHandler(
		registry, promhttp.HandlerFor(prometheus.Gatherers{registry, prometheus.DefaultGatherer}, promhttp.HandlerOpts{}),
	)))

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("bank client listening",
			slog.String("address", server.Addr),
			slog.String("ledger", cfg.Gateway.BaseURL),
			slog.String("mirror", cfg.Mirror.Driver),
		)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	accounts.Wait()
	return nil
}
