package models

import "encoding/json"

// SaleItem is one (product, quantity) line of a sale request.
type SaleItem struct {
	ProductID int `json:"idProducto"`
	Quantity  int `json:"cantidad"`
}

// SaleRequest is the payload submitted on checkout. It is transient: built
// from the cart, serialized once, never stored.
type SaleRequest struct {
	UserID int        `json:"idUsuario"`
	Items  []SaleItem `json:"productos"`
}

// SaleResponse is the backend's authoritative record of a completed sale.
type SaleResponse struct {
	ID     int     `json:"id"`
	Total  float64 `json:"total"`
	Status string  `json:"estado"`
	Date   string  `json:"fecha,omitempty"`
}

func (s *SaleResponse) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID      int     `json:"id"`
		IDVenta int     `json:"idVenta"`
		Total   float64 `json:"total"`
		Status  string  `json:"estado"`
		Date    string  `json:"fecha"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.ID = aux.ID
	if s.ID == 0 {
		s.ID = aux.IDVenta
	}
	s.Total = aux.Total
	s.Status = aux.Status
	s.Date = aux.Date
	return nil
}

// CheckoutResult is the unified outcome reported to the caller after a
// checkout attempt.
type CheckoutResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
