package dto

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-analytics/internal/domain/entity"
)

// SalesData conjunto de datos a analizar: vendedores, catálogo y recibos.
type SalesData struct {
	Sellers         []entity.Seller         `json:"sellers"`
	Products        []entity.Product        `json:"products"`
	PurchaseRecords []entity.PurchaseRecord `json:"purchase_records"`
}

// TopProductDTO SKU más vendido de un vendedor.
type TopProductDTO struct {
	SKU      string `json:"sku"`
	Quantity int64  `json:"quantity"`
}

// SellerReportDTO fila del reporte de vendedores, ordenado por ganancia descendente.
type SellerReportDTO struct {
	SellerID    string          `json:"seller_id"`
	Name        string          `json:"name"`
	SalesCount  int             `json:"sales_count"`  // recibos del vendedor
	Revenue     decimal.Decimal `json:"revenue"`      // suma de total_amount, redondeado a 2 decimales
	Profit      decimal.Decimal `json:"profit"`       // ingreso - costo, redondeado a 2 decimales
	Bonus       decimal.Decimal `json:"bonus"`        // según la política de bonificación
	TopProducts []TopProductDTO `json:"top_products"` // por cantidad descendente
}

// SalesSummaryDTO totales del reporte de vendedores.
type SalesSummaryDTO struct {
	Sellers      int             `json:"sellers"`
	SalesCount   int             `json:"sales_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	TotalBonus   decimal.Decimal `json:"total_bonus"`
	MarginPct    decimal.Decimal `json:"margin_pct"` // TotalProfit / TotalRevenue * 100
	LeaderID     string          `json:"leader_id,omitempty"`
}
