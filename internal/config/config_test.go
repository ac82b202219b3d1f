package config

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, MirrorDriverSQLite, cfg.Mirror.Driver)
	assert.True(t, cfg.Limits.WithdrawalCap.Equal(decimal.NewFromInt(500000)))
	assert.True(t, cfg.Limits.TransferCap.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, cfg.Limits.WithdrawalMinimum.IsZero())
	assert.Equal(t, "KSh", cfg.Limits.Currency)
	assert.Equal(t, 4<<20, cfg.Gateway.MaxResponseBytes)
	assert.True(t, cfg.Orchestrator.SequenceByAccount)
	assert.False(t, cfg.Orchestrator.RevertOnSyncFailure)
	assert.Nil(t, cfg.Mirror.SealKey)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	key := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("k", SealKeySize)))

	t.Setenv("LEDGER_BASE_URL", "http://ledger.local/api/")
	t.Setenv("LEDGER_TIMEOUT", "3s")
	t.Setenv("LEDGER_MAX_RESPONSE_BYTES", "1024")
	t.Setenv("MIRROR_DRIVER", "REDIS")
	t.Setenv("MIRROR_SEAL_KEY", key)
	t.Setenv("DAILY_WITHDRAWAL_LIMIT", "2500.50")
	t.Setenv("MIN_TRANSFER_AMOUNT", "1000")
	t.Setenv("ORCHESTRATOR_SEQUENCE_BY_ACCOUNT", "false")
	t.Setenv("RATE_LIMIT_PER_SECOND", "not-a-number")

	cfg := Load()

	assert.Equal(t, "http://ledger.local/api", cfg.Gateway.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, 1024, cfg.Gateway.MaxResponseBytes)
	assert.Equal(t, MirrorDriverRedis, cfg.Mirror.Driver)
	require.NotNil(t, cfg.Mirror.SealKey)
	assert.Equal(t, byte('k'), cfg.Mirror.SealKey[0])
	assert.True(t, cfg.Limits.WithdrawalCap.Equal(decimal.RequireFromString("2500.50")))
	assert.True(t, cfg.Limits.TransferMinimum.Equal(decimal.NewFromInt(1000)))
	assert.False(t, cfg.Orchestrator.SequenceByAccount)
	assert.Equal(t, 20, cfg.Server.RateLimitPerSecond)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Mirror.Driver = "mongo" },
			wantErr: "unsupported MIRROR_DRIVER",
		},
		{
			name:    "missing ledger url",
			mutate:  func(c *Config) { c.Gateway.BaseURL = "" },
			wantErr: "LEDGER_BASE_URL",
		},
		{
			name:    "zero cap",
			mutate:  func(c *Config) { c.Limits.TransferCap = decimal.Zero },
			wantErr: "daily limits must be positive",
		},
		{
			name:    "negative minimum",
			mutate:  func(c *Config) { c.Limits.WithdrawalMinimum = decimal.NewFromInt(-1) },
			wantErr: "minimum amounts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadSealKey(t *testing.T) {
	key, err := loadSealKey("")
	require.NoError(t, err)
	assert.Nil(t, key)

	_, err = loadSealKey("%%%")
	assert.Error(t, err)

	_, err = loadSealKey(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorContains(t, err, "must decode to 32 bytes")
}
