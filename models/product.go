package models

import "encoding/json"

// Product is a catalog entry. Stock is mutated server-side on sale; the
// client only reads it and submits stock deltas through the repository.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion"`
	Price       float64   `json:"precio"`
	Stock       int       `json:"stock"`
	Category    *Category `json:"categoria,omitempty"`
	Active      bool      `json:"activo"`
}

// UnmarshalJSON tolerates the id alias ("id" or "idProducto") and a category
// that may arrive as a bare numeric id or a nested object.
func (p *Product) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID          int             `json:"id"`
		IDProducto  int             `json:"idProducto"`
		Name        string          `json:"nombre"`
		Description string          `json:"descripcion"`
		Price       float64         `json:"precio"`
		Stock       int             `json:"stock"`
		Category    json.RawMessage `json:"categoria"`
		Active      bool            `json:"activo"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	p.ID = aux.ID
	if p.ID == 0 {
		p.ID = aux.IDProducto
	}
	p.Name = aux.Name
	p.Description = aux.Description
	p.Price = aux.Price
	p.Stock = aux.Stock
	p.Active = aux.Active
	p.Category = nil
	if len(aux.Category) > 0 && string(aux.Category) != "null" {
		var id int
		if err := json.Unmarshal(aux.Category, &id); err == nil {
			p.Category = &Category{ID: id}
			return nil
		}
		var cat Category
		if err := json.Unmarshal(aux.Category, &cat); err != nil {
			return err
		}
		p.Category = &cat
	}
	return nil
}

// ProductImage is an image attached to a product.
type ProductImage struct {
	ID        int    `json:"id"`
	ProductID int    `json:"idProducto"`
	Data      string `json:"imagen"` // base64-encoded payload
}
