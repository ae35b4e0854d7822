package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// DefaultTopProducts máximo de SKUs por vendedor en el reporte.
const DefaultTopProducts = 10

// Config agrupa la configuración de la librería (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Analytics AnalyticsConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// AnalyticsConfig parámetros del análisis de ventas.
// Los porcentajes de bonificación se expresan sobre 100 (15 = 15%).
type AnalyticsConfig struct {
	TopProducts     int
	BonusLeaderPct  decimal.Decimal
	BonusPodiumPct  decimal.Decimal
	BonusDefaultPct decimal.Decimal
}

// DefaultAnalyticsConfig valores por defecto: top 10 y bonificación 15/10/5.
func DefaultAnalyticsConfig() AnalyticsConfig {
	return AnalyticsConfig{
		TopProducts:     DefaultTopProducts,
		BonusLeaderPct:  decimal.NewFromInt(15),
		BonusPodiumPct:  decimal.NewFromInt(10),
		BonusDefaultPct: decimal.NewFromInt(5),
	}
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, ANALYTICS_TOP_PRODUCTS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	def := DefaultAnalyticsConfig()

	topProducts, err := getInt(v, "ANALYTICS_TOP_PRODUCTS", def.TopProducts)
	if err != nil {
		return nil, err
	}
	if topProducts <= 0 {
		topProducts = DefaultTopProducts
	}
	leader, err := getDecimal(v, "ANALYTICS_BONUS_LEADER_PCT", def.BonusLeaderPct)
	if err != nil {
		return nil, err
	}
	podium, err := getDecimal(v, "ANALYTICS_BONUS_PODIUM_PCT", def.BonusPodiumPct)
	if err != nil {
		return nil, err
	}
	rest, err := getDecimal(v, "ANALYTICS_BONUS_DEFAULT_PCT", def.BonusDefaultPct)
	if err != nil {
		return nil, err
	}

	return &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "ventas-analytics"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Analytics: AnalyticsConfig{
			TopProducts:     topProducts,
			BonusLeaderPct:  leader,
			BonusPodiumPct:  podium,
			BonusDefaultPct: rest,
		},
	}, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) (int, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return 0, fmt.Errorf("config: %s inválido: %w", key, err)
		}
		return n, nil
	default:
		return v.GetInt(key), nil
	}
}

func getDecimal(v *viper.Viper, key string, def decimal.Decimal) (decimal.Decimal, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: %s inválido: %w", key, err)
	}
	return d, nil
}
