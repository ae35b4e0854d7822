package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-analytics/internal/application/dto"
)

var hundred = decimal.NewFromInt(100)

// Summarize totaliza el reporte de vendedores: ventas, ingreso, ganancia,
// bonificaciones y margen global (ganancia / ingreso * 100).
func Summarize(rows []dto.SellerReportDTO) dto.SalesSummaryDTO {
	var totalRevenue, totalProfit, totalBonus decimal.Decimal
	salesCount := 0
	for _, r := range rows {
		salesCount += r.SalesCount
		totalRevenue = totalRevenue.Add(r.Revenue)
		totalProfit = totalProfit.Add(r.Profit)
		totalBonus = totalBonus.Add(r.Bonus)
	}

	marginPct := decimal.Zero
	if totalRevenue.IsPositive() {
		marginPct = totalProfit.Div(totalRevenue).Mul(hundred).Round(2)
	}

	summary := dto.SalesSummaryDTO{
		Sellers:      len(rows),
		SalesCount:   salesCount,
		TotalRevenue: totalRevenue.Round(2),
		TotalProfit:  totalProfit.Round(2),
		TotalBonus:   totalBonus.Round(2),
		MarginPct:    marginPct,
	}
	if len(rows) > 0 {
		summary.LeaderID = rows[0].SellerID
	}
	return summary
}
