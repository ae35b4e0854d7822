package entity

import "github.com/shopspring/decimal"

// Product representa la ficha de un producto del catálogo, identificada por SKU (único).
type Product struct {
	SKU           string          `json:"sku"`
	Name          string          `json:"name,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"` // costo de compra unitario
	SalePrice     decimal.Decimal `json:"sale_price"`     // precio de venta de catálogo
}
