package models

import "encoding/json"

// Category is a simple reference entity used to group products.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"nombre"`
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID          int    `json:"id"`
		IDCategoria int    `json:"idCategoria"`
		Name        string `json:"nombre"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	c.ID = aux.ID
	if c.ID == 0 {
		c.ID = aux.IDCategoria
	}
	c.Name = aux.Name
	return nil
}
