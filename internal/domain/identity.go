package domain

// Role is the access level of an authenticated caller.
type Role string

const (
	// RoleAdmin sees every row of every resource.
	RoleAdmin Role = "admin"
	// RoleAreaManager sees only rows owned by their team of sales officers.
	RoleAreaManager Role = "area_manager"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleAreaManager
}

// Identity is the authenticated caller. It is derived from the JWT on every
// request; a nil *Identity means "not authenticated" and all row-visibility
// scopes must fail closed.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
