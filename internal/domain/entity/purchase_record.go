package entity

import "github.com/shopspring/decimal"

// PurchaseRecord es un recibo de venta emitido por un vendedor.
// TotalAmount es el importe cobrado tal como viene en el recibo; no se recalcula desde las líneas.
type PurchaseRecord struct {
	SellerID    string          `json:"seller_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []PurchaseItem  `json:"items"`
}

// PurchaseItem línea de un recibo.
// SalePrice es el precio aplicado en la línea; si no viene se usa el del catálogo.
type PurchaseItem struct {
	SKU       string              `json:"sku"`
	Quantity  int64               `json:"quantity"`
	Discount  decimal.Decimal     `json:"discount"` // porcentaje (0-100); ausente = 0
	SalePrice decimal.NullDecimal `json:"sale_price"`
}
