package sales

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-analytics/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// RevenueFunc política de cálculo del ingreso de una línea de venta.
type RevenueFunc func(item entity.PurchaseItem, product entity.Product) decimal.Decimal

// CalculateSimpleRevenue ingreso de la línea aplicando el descuento porcentual (servicio de dominio).
// Ingreso = PrecioVenta * (1 - Descuento/100) * Cantidad
// PrecioVenta es el de la línea si viene informado; si no, el del catálogo.
func CalculateSimpleRevenue(item entity.PurchaseItem, product entity.Product) decimal.Decimal {
	price := product.SalePrice
	if item.SalePrice.Valid {
		price = item.SalePrice.Decimal
	}
	factor := decimal.NewFromInt(1).Sub(item.Discount.Div(hundred))
	return price.Mul(factor).Mul(decimal.NewFromInt(item.Quantity))
}
