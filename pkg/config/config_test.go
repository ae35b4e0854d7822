package config_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-analytics/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "ventas-analytics", cfg.App.Name)
	assert.Equal(t, config.DefaultTopProducts, cfg.Analytics.TopProducts)
	assert.True(t, decimal.NewFromInt(15).Equal(cfg.Analytics.BonusLeaderPct))
	assert.True(t, decimal.NewFromInt(10).Equal(cfg.Analytics.BonusPodiumPct))
	assert.True(t, decimal.NewFromInt(5).Equal(cfg.Analytics.BonusDefaultPct))
}

func TestLoad_DesdeVariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ANALYTICS_TOP_PRODUCTS", "5")
	t.Setenv("ANALYTICS_BONUS_LEADER_PCT", "20")
	t.Setenv("ANALYTICS_BONUS_PODIUM_PCT", "12.5")
	t.Setenv("ANALYTICS_BONUS_DEFAULT_PCT", "2")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 5, cfg.Analytics.TopProducts)
	assert.True(t, decimal.NewFromInt(20).Equal(cfg.Analytics.BonusLeaderPct))
	assert.True(t, decimal.RequireFromString("12.5").Equal(cfg.Analytics.BonusPodiumPct))
	assert.True(t, decimal.NewFromInt(2).Equal(cfg.Analytics.BonusDefaultPct))
}

func TestLoad_TopNoPositivoUsaDefault(t *testing.T) {
	t.Setenv("ANALYTICS_TOP_PRODUCTS", "0")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTopProducts, cfg.Analytics.TopProducts)
}

func TestLoad_ValoresInvalidos(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"ANALYTICS_TOP_PRODUCTS", "diez"},
		{"ANALYTICS_BONUS_LEADER_PCT", "quince"},
		{"ANALYTICS_BONUS_PODIUM_PCT", "10%"},
		{"ANALYTICS_BONUS_DEFAULT_PCT", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
