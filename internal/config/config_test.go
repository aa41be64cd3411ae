package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_PORT", "STORE_BACKEND", "APP_MIGRATE", "RATE_RPS", "WORKER_COUNT", "POINT_MAX_CHARGE_AMOUNT", "POINT_MAX_BALANCE"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "memory", cfg.StoreBackend)
	assert.False(t, cfg.Migrate)
	assert.Equal(t, 100, cfg.RateRPS)
	assert.Equal(t, 4, cfg.WorkerCount)
	assert.Zero(t, cfg.MaxChargeAmount)
	assert.Zero(t, cfg.MaxBalance)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("APP_MIGRATE", "true")
	t.Setenv("POINT_MAX_CHARGE_AMOUNT", "50000")
	t.Setenv("POINT_MAX_BALANCE", "1000000")
	t.Setenv("RATE_RPS", "0")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.StoreBackend)
	assert.True(t, cfg.Migrate)
	assert.Equal(t, int64(50000), cfg.MaxChargeAmount)
	assert.Equal(t, int64(1000000), cfg.MaxBalance)
	assert.Zero(t, cfg.RateRPS)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"POINT_MAX_BALANCE": "lots",
		"RATE_RPS":          "-1",
		"STORE_BACKEND":     "redis",
	}
	for k, v := range tests {
		t.Run(k, func(t *testing.T) {
			t.Setenv(k, v)
			_, err := Load()
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}
