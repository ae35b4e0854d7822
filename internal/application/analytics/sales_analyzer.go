package analytics

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-analytics/internal/application/dto"
	"github.com/jhoicas/ventas-analytics/internal/domain"
	"github.com/jhoicas/ventas-analytics/internal/domain/entity"
	"github.com/jhoicas/ventas-analytics/internal/domain/sales"
	"github.com/jhoicas/ventas-analytics/pkg/config"
	"github.com/jhoicas/ventas-analytics/pkg/logger"
)

// SalesAnalyzer genera el reporte de vendedores a partir de los recibos:
//   - Ingreso (suma de recibos), ganancia (ingreso por línea - costo) y número de ventas.
//   - Ranking por ganancia descendente con bonificación según la posición.
//   - Top de SKUs más vendidos por vendedor.
//
// No guarda estado entre llamadas; puede usarse desde varias goroutines.
type SalesAnalyzer struct {
	log         *logger.Logger
	topProducts int
}

// NewSalesAnalyzer construye el analizador. log puede ser nil.
func NewSalesAnalyzer(log *logger.Logger, cfg config.AnalyticsConfig) *SalesAnalyzer {
	if log == nil {
		log = logger.Nop()
	}
	topProducts := cfg.TopProducts
	if topProducts <= 0 {
		topProducts = config.DefaultTopProducts
	}
	return &SalesAnalyzer{log: log, topProducts: topProducts}
}

// NewSalesAnalyzerFromConfig construye el analizador con el logger y los
// parámetros de la configuración cargada (config.Load). cfg nil usa los valores por defecto.
func NewSalesAnalyzerFromConfig(cfg *config.Config) *SalesAnalyzer {
	if cfg == nil {
		return NewSalesAnalyzer(nil, config.DefaultAnalyticsConfig())
	}
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("top_products", cfg.Analytics.TopProducts).
		Msg("analizador de ventas configurado")
	return NewSalesAnalyzer(log, cfg.Analytics)
}

// AnalyzeSalesData valida las entradas y devuelve una fila por vendedor, ordenadas
// por ganancia descendente. Los recibos de vendedores desconocidos y las líneas
// con SKU fuera del catálogo se ignoran sin error.
func (a *SalesAnalyzer) AnalyzeSalesData(data *dto.SalesData, opts *AnalyzeOptions) ([]dto.SellerReportDTO, error) {
	if err := validateData(data); err != nil {
		return nil, err
	}
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	// 1) Acumulados por vendedor e índice del catálogo
	stats := make([]*sales.SellerStats, 0, len(data.Sellers))
	statsByID := make(map[string]*sales.SellerStats, len(data.Sellers))
	for _, s := range data.Sellers {
		if st, ok := statsByID[s.ID]; ok {
			// ID repetido: un solo acumulado, prevalece el último nombre
			st.Name = s.Name
			continue
		}
		st := sales.NewSellerStats(s)
		stats = append(stats, st)
		statsByID[s.ID] = st
	}
	productBySKU := make(map[string]entity.Product, len(data.Products))
	for _, p := range data.Products {
		productBySKU[p.SKU] = p
	}

	// 2) Procesar recibos
	var skippedRecords, skippedItems int
	for _, record := range data.PurchaseRecords {
		st, ok := statsByID[record.SellerID]
		if !ok {
			skippedRecords++
			a.log.Debug().Str("seller_id", record.SellerID).Msg("recibo de vendedor desconocido, se ignora")
			continue
		}
		st.AddSale(record.TotalAmount)

		for _, item := range record.Items {
			product, ok := productBySKU[item.SKU]
			if !ok {
				skippedItems++
				a.log.Debug().Str("sku", item.SKU).Str("seller_id", record.SellerID).Msg("SKU fuera del catálogo, se ignora")
				continue
			}
			cost := product.PurchasePrice.Mul(decimal.NewFromInt(item.Quantity))
			revenue := opts.CalculateRevenue(item, product)
			st.AddItem(item.SKU, item.Quantity, revenue.Sub(cost))
		}
	}

	// 3) Ranking por ganancia; empates conservan el orden de entrada
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalProfit.GreaterThan(stats[j].TotalProfit)
	})

	// 4) Bonificación y top de productos
	total := len(stats)
	report := make([]dto.SellerReportDTO, 0, total)
	for i, st := range stats {
		bonus := opts.CalculateBonus(i, total, st)

		top := st.TopProducts(a.topProducts)
		topDTO := make([]dto.TopProductDTO, 0, len(top))
		for _, p := range top {
			topDTO = append(topDTO, dto.TopProductDTO{SKU: p.SKU, Quantity: p.Quantity})
		}

		report = append(report, dto.SellerReportDTO{
			SellerID:    st.SellerID,
			Name:        st.Name,
			SalesCount:  st.SalesCount,
			Revenue:     st.Revenue.Round(2),
			Profit:      st.TotalProfit.Round(2),
			Bonus:       bonus.Round(2),
			TopProducts: topDTO,
		})
	}

	a.log.Info().
		Int("sellers", total).
		Int("purchase_records", len(data.PurchaseRecords)).
		Int("skipped_records", skippedRecords).
		Int("skipped_items", skippedItems).
		Msg("análisis de ventas completado")

	return report, nil
}

func validateData(data *dto.SalesData) error {
	switch {
	case data == nil:
		return fmt.Errorf("%w: sin datos", domain.ErrInvalidInput)
	case len(data.Sellers) == 0:
		return fmt.Errorf("%w: sellers vacío", domain.ErrInvalidInput)
	case len(data.Products) == 0:
		return fmt.Errorf("%w: products vacío", domain.ErrInvalidInput)
	case len(data.PurchaseRecords) == 0:
		return fmt.Errorf("%w: purchase_records vacío", domain.ErrInvalidInput)
	}
	return nil
}

func validateOptions(opts *AnalyzeOptions) error {
	switch {
	case opts == nil:
		return fmt.Errorf("%w: sin opciones", domain.ErrInvalidOptions)
	case opts.CalculateRevenue == nil || opts.CalculateBonus == nil:
		return fmt.Errorf("%w: faltan calculateRevenue o calculateBonus", domain.ErrInvalidOptions)
	}
	return nil
}
