package entity

// Seller representa un vendedor.
type Seller struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
