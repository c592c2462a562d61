package models

import "encoding/json"

// User is a storefront account. ID is zero until the backend persists it.
// Email is the unique business key used for lookups.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"nombre"`
	Email    string `json:"correo"`
	Password string `json:"password"` // stored in clear by the backend, known weakness
	Active   bool   `json:"activo"`
	Role     *Role  `json:"rol,omitempty"`
}

// UnmarshalJSON tolerates the backend's id alias ("id" or "idUsuario") and
// the polymorphic role field handled by Role.UnmarshalJSON.
func (u *User) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID        int             `json:"id"`
		IDUsuario int             `json:"idUsuario"`
		Name      string          `json:"nombre"`
		Email     string          `json:"correo"`
		Password  string          `json:"password"`
		Active    bool            `json:"activo"`
		Role      json.RawMessage `json:"rol"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	u.ID = aux.ID
	if u.ID == 0 {
		u.ID = aux.IDUsuario
	}
	u.Name = aux.Name
	u.Email = aux.Email
	u.Password = aux.Password
	u.Active = aux.Active
	u.Role = nil
	if len(aux.Role) > 0 && string(aux.Role) != "null" {
		var role Role
		if err := json.Unmarshal(aux.Role, &role); err != nil {
			return err
		}
		u.Role = &role
	}
	return nil
}

// IsSeller reports whether the user holds the seller role.
func (u User) IsSeller(sellerRoleID int) bool {
	return u.Role != nil && u.Role.IsSeller(sellerRoleID)
}
