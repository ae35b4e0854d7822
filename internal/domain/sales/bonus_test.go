package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ventas-analytics/internal/domain/entity"
	"github.com/jhoicas/ventas-analytics/internal/domain/sales"
)

func statsWithProfit(profit int64) *sales.SellerStats {
	st := sales.NewSellerStats(entity.Seller{ID: "1", Name: "Ana"})
	st.AddItem("SKU-1", 1, decimal.NewFromInt(profit))
	return st
}

func TestCalculateBonusByProfit_PorPosicion(t *testing.T) {
	seller := statsWithProfit(1000)

	tests := []struct {
		name  string
		index int
		total int
		want  string
	}{
		{"líder", 0, 5, "150"},
		{"segundo", 1, 5, "100"},
		{"tercero", 2, 5, "100"},
		{"resto", 3, 5, "50"},
		{"último", 4, 5, "0"},
		{"único vendedor aplica regla del líder", 0, 1, "150"},
		{"segundo de dos aplica regla del podio", 1, 2, "100"},
		{"tercero de tres aplica regla del podio", 2, 3, "100"},
		{"cuarto de cuatro es último", 3, 4, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sales.CalculateBonusByProfit(tt.index, tt.total, seller)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got),
				"bonificación esperada %s, obtenida %s", tt.want, got)
		})
	}
}

func TestNewBonusByProfit_PorcentajesPersonalizados(t *testing.T) {
	bonus := sales.NewBonusByProfit(sales.BonusRates{
		Leader:  decimal.NewFromInt(20),
		Podium:  decimal.RequireFromString("7.5"),
		Default: decimal.NewFromInt(1),
	})
	seller := statsWithProfit(200)

	assert.True(t, decimal.NewFromInt(40).Equal(bonus(0, 10, seller)))
	assert.True(t, decimal.NewFromInt(15).Equal(bonus(2, 10, seller)))
	assert.True(t, decimal.NewFromInt(2).Equal(bonus(5, 10, seller)))
	assert.True(t, decimal.Zero.Equal(bonus(9, 10, seller)))
}

func TestCalculateBonusByProfit_GananciaNegativa(t *testing.T) {
	seller := statsWithProfit(-100)
	got := sales.CalculateBonusByProfit(0, 3, seller)
	assert.True(t, decimal.NewFromInt(-15).Equal(got), "la política no recorta ganancias negativas: %s", got)
}

func TestCalculateBonusByProfit_EquivaleATasasPorDefecto(t *testing.T) {
	bonus := sales.NewBonusByProfit(sales.DefaultBonusRates)
	seller := statsWithProfit(321)

	for total := 1; total <= 6; total++ {
		for index := 0; index < total; index++ {
			want := bonus(index, total, seller)
			got := sales.CalculateBonusByProfit(index, total, seller)
			assert.True(t, want.Equal(got), "index %d de %d: esperado %s, obtenido %s", index, total, want, got)
		}
	}
}
