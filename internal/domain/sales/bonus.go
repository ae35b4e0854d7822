package sales

import "github.com/shopspring/decimal"

// BonusFunc política de bonificación. index es la posición (0 = mayor ganancia)
// dentro de los total vendedores ordenados por ganancia descendente.
type BonusFunc func(index, total int, seller *SellerStats) decimal.Decimal

// BonusRates porcentajes de bonificación sobre la ganancia del vendedor.
type BonusRates struct {
	Leader  decimal.Decimal // 1er lugar
	Podium  decimal.Decimal // 2do y 3er lugar
	Default decimal.Decimal // resto, excepto el último
}

// DefaultBonusRates 15% líder, 10% podio, 5% resto, 0% último.
var DefaultBonusRates = BonusRates{
	Leader:  decimal.NewFromInt(15),
	Podium:  decimal.NewFromInt(10),
	Default: decimal.NewFromInt(5),
}

// NewBonusByProfit construye la política de bonificación por ranking de ganancia.
// El orden de las reglas importa: líder, podio, último y resto. Con un solo
// vendedor aplica la regla del líder.
func NewBonusByProfit(rates BonusRates) BonusFunc {
	return func(index, total int, seller *SellerStats) decimal.Decimal {
		var pct decimal.Decimal
		switch {
		case index == 0:
			pct = rates.Leader
		case index == 1 || index == 2:
			pct = rates.Podium
		case index == total-1:
			return decimal.Zero
		default:
			pct = rates.Default
		}
		return seller.TotalProfit.Mul(pct).Div(hundred)
	}
}

var defaultBonusByProfit = NewBonusByProfit(DefaultBonusRates)

// CalculateBonusByProfit política de bonificación con DefaultBonusRates.
func CalculateBonusByProfit(index, total int, seller *SellerStats) decimal.Decimal {
	return defaultBonusByProfit(index, total, seller)
}
