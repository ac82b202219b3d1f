package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MirrorDriverSQLite   = "sqlite"
	MirrorDriverPostgres = "postgres"
	MirrorDriverRedis    = "redis"

	SealKeySize = 32
)

type Config struct {
	Server       ServerConfig
	Gateway      GatewayConfig
	Mirror       MirrorConfig
	Limits       LimitsConfig
	Orchestrator OrchestratorConfig
}

type ServerConfig struct {
	Port               string
	Host               string
	Environment        string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	RateLimitPerSecond int
	RefreshPollTimeout time.Duration
}

type GatewayConfig struct {
	BaseURL             string
	Timeout             time.Duration
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
	BreakerHalfOpenSucc int
	MaxResponseBytes    int
}

type MirrorConfig struct {
	Driver      string
	DSN         string
	RedisURL    string
	KeyPrefix   string
	SealKey     *[SealKeySize]byte
	AutoMigrate bool
}

type LimitsConfig struct {
	WithdrawalCap     decimal.Decimal
	TransferCap       decimal.Decimal
	WithdrawalMinimum decimal.Decimal
	TransferMinimum   decimal.Decimal
	Currency          string
}

type OrchestratorConfig struct {
	SequenceByAccount   bool
	RevertOnSyncFailure bool
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:               getEnv("SERVER_PORT", "4200"),
			Host:               getEnv("SERVER_HOST", "localhost"),
			Environment:        getEnv("APP_ENV", "development"),
			ReadTimeout:        getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:       getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RefreshPollTimeout: getDurationEnv("REFRESH_POLL_TIMEOUT", 30*time.Second),
		},
		Gateway: GatewayConfig{
			BaseURL:             strings.TrimRight(getEnv("LEDGER_BASE_URL", "http://localhost:8080/api"), "/"),
			Timeout:             getDurationEnv("LEDGER_TIMEOUT", 10*time.Second),
			BreakerMaxFailures:  getIntEnv("LEDGER_BREAKER_MAX_FAILURES", 5),
			BreakerResetTimeout: getDurationEnv("LEDGER_BREAKER_RESET_TIMEOUT", 30*time.Second),
			BreakerHalfOpenSucc: getIntEnv("LEDGER_BREAKER_HALF_OPEN_SUCCESSES", 1),
			MaxResponseBytes:    getIntEnv("LEDGER_MAX_RESPONSE_BYTES", 4<<20),
		},
		Mirror: MirrorConfig{
			Driver:      strings.ToLower(getEnv("MIRROR_DRIVER", MirrorDriverSQLite)),
			DSN:         getEnv("MIRROR_DSN", "bankclient.db"),
			RedisURL:    getEnv("MIRROR_REDIS_URL", "redis://localhost:6379/0"),
			KeyPrefix:   getEnv("MIRROR_KEY_PREFIX", "bankclient:"),
			AutoMigrate: getBoolEnv("MIRROR_AUTO_MIGRATE", true),
		},
		Limits: LimitsConfig{
			WithdrawalCap:     getDecimalEnv("DAILY_WITHDRAWAL_LIMIT", decimal.NewFromInt(500000)),
			TransferCap:       getDecimalEnv("DAILY_TRANSFER_LIMIT", decimal.NewFromInt(1000000)),
			WithdrawalMinimum: getDecimalEnv("MIN_WITHDRAWAL_AMOUNT", decimal.Zero),
			TransferMinimum:   getDecimalEnv("MIN_TRANSFER_AMOUNT", decimal.Zero),
			Currency:          getEnv("CURRENCY_LABEL", "KSh"),
		},
		Orchestrator: OrchestratorConfig{
			SequenceByAccount:   getBoolEnv("ORCHESTRATOR_SEQUENCE_BY_ACCOUNT", true),
			RevertOnSyncFailure: getBoolEnv("ORCHESTRATOR_REVERT_ON_SYNC_FAILURE", false),
		},
	}

	var sealKeyErr error
	config.Mirror.SealKey, sealKeyErr = loadSealKey(os.Getenv("MIRROR_SEAL_KEY"))
	if sealKeyErr != nil {
		log.Fatal("Failed to load mirror seal key:", sealKeyErr)
	}
	if config.Mirror.SealKey == nil && config.IsProduction() {
		log.Println("WARNING: MIRROR_SEAL_KEY not set in production environment, the session token is mirrored in clear text")
	}

	return config
}

// Validate rejects settings the engine cannot start with
func (c *Config) Validate() error {
	switch c.Mirror.Driver {
	case MirrorDriverSQLite, MirrorDriverPostgres, MirrorDriverRedis:
	default:
		return fmt.Errorf("unsupported MIRROR_DRIVER %q", c.Mirror.Driver)
	}

	if c.Gateway.BaseURL == "" {
		return errors.New("LEDGER_BASE_URL is required")
	}

	if !c.Limits.WithdrawalCap.IsPositive() || !c.Limits.TransferCap.IsPositive() {
		return errors.New("daily limits must be positive")
	}

	if c.Limits.WithdrawalMinimum.IsNegative() || c.Limits.TransferMinimum.IsNegative() {
		return errors.New("minimum amounts cannot be negative")
	}

	return nil
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// loadSealKey decodes a base64 secretbox key. An empty value disables sealing.
func loadSealKey(encoded string) (*[SealKeySize]byte, error) {
	if encoded == "" {
		return nil, nil
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode MIRROR_SEAL_KEY: %w", err)
	}

	if len(raw) != SealKeySize {
		return nil, fmt.Errorf("MIRROR_SEAL_KEY must decode to %d bytes, got %d", SealKeySize, len(raw))
	}

	var key [SealKeySize]byte
	copy(key[:], raw)
	return &key, nil
}
