package sales

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-analytics/internal/domain/entity"
)

// SellerStats acumulado de un vendedor durante un análisis.
// Vive solo mientras dura la llamada que lo crea.
type SellerStats struct {
	SellerID     string
	Name         string
	SalesCount   int
	Revenue      decimal.Decimal // suma de TotalAmount de los recibos
	TotalProfit  decimal.Decimal // suma de (ingreso - costo) de las líneas
	ProductsSold map[string]int64

	skuOrder []string // SKUs en el orden de su primera venta
}

// ProductQuantity cantidad vendida de un SKU.
type ProductQuantity struct {
	SKU      string
	Quantity int64
}

// NewSellerStats inicializa el acumulado en cero para el vendedor.
func NewSellerStats(seller entity.Seller) *SellerStats {
	return &SellerStats{
		SellerID:     seller.ID,
		Name:         seller.Name,
		Revenue:      decimal.Zero,
		TotalProfit:  decimal.Zero,
		ProductsSold: make(map[string]int64),
	}
}

// AddSale registra un recibo.
func (s *SellerStats) AddSale(totalAmount decimal.Decimal) {
	s.SalesCount++
	s.Revenue = s.Revenue.Add(totalAmount)
}

// AddItem registra la ganancia y las unidades de una línea.
func (s *SellerStats) AddItem(sku string, quantity int64, profit decimal.Decimal) {
	s.TotalProfit = s.TotalProfit.Add(profit)
	if _, ok := s.ProductsSold[sku]; !ok {
		s.skuOrder = append(s.skuOrder, sku)
	}
	s.ProductsSold[sku] += quantity
}

// TopProducts devuelve hasta limit SKUs ordenados por cantidad descendente.
// Empate: el SKU vendido primero va antes.
func (s *SellerStats) TopProducts(limit int) []ProductQuantity {
	top := make([]ProductQuantity, 0, len(s.skuOrder))
	for _, sku := range s.skuOrder {
		top = append(top, ProductQuantity{SKU: sku, Quantity: s.ProductsSold[sku]})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Quantity > top[j].Quantity
	})
	if limit >= 0 && len(top) > limit {
		top = top[:limit]
	}
	return top
}
