package models

import "encoding/json"

// DefaultRoleName is used when the backend sends a role object without a name.
const DefaultRoleName = "desconocido"

// Role classifies a user. A user is considered a seller (admin-equivalent)
// when its role id equals the configured seller role id.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"nombre"`
}

// UnmarshalJSON accepts the two shapes the backend emits for a role:
// a bare numeric id, or a full object whose id may arrive as "id" or "idRol".
func (r *Role) UnmarshalJSON(data []byte) error {
	var id int
	if err := json.Unmarshal(data, &id); err == nil {
		r.ID = id
		r.Name = DefaultRoleName
		return nil
	}

	var aux struct {
		ID    int    `json:"id"`
		IDRol int    `json:"idRol"`
		Name  string `json:"nombre"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.ID = aux.ID
	if r.ID == 0 {
		r.ID = aux.IDRol
	}
	r.Name = aux.Name
	if r.Name == "" {
		r.Name = DefaultRoleName
	}
	return nil
}

// IsSeller reports whether the role grants seller/admin access.
func (r Role) IsSeller(sellerRoleID int) bool {
	return r.ID == sellerRoleID
}
