package analytics

import (
	"github.com/jhoicas/ventas-analytics/internal/domain/sales"
	"github.com/jhoicas/ventas-analytics/pkg/config"
)

// AnalyzeOptions políticas inyectadas en el análisis. Ambas son obligatorias.
type AnalyzeOptions struct {
	CalculateRevenue sales.RevenueFunc
	CalculateBonus   sales.BonusFunc
}

// DefaultOptions ingreso simple con descuento y bonificación 15/10/5/0.
func DefaultOptions() *AnalyzeOptions {
	return &AnalyzeOptions{
		CalculateRevenue: sales.CalculateSimpleRevenue,
		CalculateBonus:   sales.CalculateBonusByProfit,
	}
}

// NewOptionsFromConfig ingreso simple y bonificación con los porcentajes configurados.
func NewOptionsFromConfig(cfg config.AnalyticsConfig) *AnalyzeOptions {
	return &AnalyzeOptions{
		CalculateRevenue: sales.CalculateSimpleRevenue,
		CalculateBonus: sales.NewBonusByProfit(sales.BonusRates{
			Leader:  cfg.BonusLeaderPct,
			Podium:  cfg.BonusPodiumPct,
			Default: cfg.BonusDefaultPct,
		}),
	}
}
