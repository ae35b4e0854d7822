package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-analytics/internal/application/analytics"
	"github.com/jhoicas/ventas-analytics/internal/application/dto"
)

func TestSummarize_TotalesDelReporte(t *testing.T) {
	report, err := newAnalyzer().AnalyzeSalesData(exampleData(), analytics.DefaultOptions())
	require.NoError(t, err)

	s := analytics.Summarize(report)
	assert.Equal(t, 2, s.Sellers)
	assert.Equal(t, 1, s.SalesCount)
	assert.Equal(t, "1", s.LeaderID)
	assertDecimal(t, "20", s.TotalRevenue)
	assertDecimal(t, "10", s.TotalProfit)
	assertDecimal(t, "1.5", s.TotalBonus)
	assertDecimal(t, "50", s.MarginPct)
}

func TestSummarize_SinFilas(t *testing.T) {
	s := analytics.Summarize(nil)
	assert.Equal(t, dto.SalesSummaryDTO{}.Sellers, s.Sellers)
	assert.Empty(t, s.LeaderID)
	assert.True(t, s.MarginPct.IsZero())
	assert.True(t, s.TotalRevenue.IsZero())
}
