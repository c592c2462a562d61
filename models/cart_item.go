package models

// CartItem is one line of the session cart. UnitPrice and Stock are
// snapshots taken from the product at add-time; Stock is the ceiling the
// cart clamps Quantity against.
type CartItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Stock     int     `json:"stock"`
}

// Subtotal is the item's contribution to the cart total.
func (i CartItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
