// Package scope derives row-visibility predicates from the caller's identity.
// A Scope is a gorm scope; repositories chain it into their base queries so
// that every list and lookup is narrowed before any filter or sort applies.
package scope

import (
	"gorm.io/gorm"

	"github.com/fieldsales/salesadmin/internal/domain"
)

// Scope narrows a query to the rows the caller may see.
type Scope func(db *gorm.DB) *gorm.DB

// All places no restriction on the query. Used for the admin role.
func All() Scope {
	return func(db *gorm.DB) *gorm.DB { return db }
}

// DenyAll matches no rows. Used when the identity is missing: visibility
// fails closed rather than open.
func DenyAll() Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("1 = 0")
	}
}

// Direct restricts the query to rows whose owning column equals the given id.
func Direct(column, id string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", id)
	}
}

// Team restricts the query to rows whose officer column belongs to the team
// reporting to the given manager. The subquery is built on a fresh session so
// it does not inherit conditions from the outer query.
func Team(base *gorm.DB, column, managerID string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		sub := base.Session(&gorm.Session{NewDB: true}).
			Model(&domain.SalesOfficer{}).
			Select("id").
			Where("reporting_manager_id = ?", managerID)
		return db.Where(column+" IN (?)", sub)
	}
}

// ForIdentity returns the scope for a resource owned directly by a manager
// (e.g. sales officers, keyed by reporting_manager_id). Admins are
// unrestricted; a nil identity denies all rows.
func ForIdentity(ident *domain.Identity, column string) Scope {
	switch {
	case ident == nil:
		return DenyAll()
	case ident.Role == domain.RoleAdmin:
		return All()
	case ident.Role == domain.RoleAreaManager:
		return Direct(column, ident.ID)
	default:
		return DenyAll()
	}
}

// ForTeam returns the scope for a resource owned indirectly through a sales
// officer (e.g. orders and shops, keyed by an officer id column). Admins are
// unrestricted; a nil identity denies all rows.
func ForTeam(ident *domain.Identity, base *gorm.DB, column string) Scope {
	switch {
	case ident == nil:
		return DenyAll()
	case ident.Role == domain.RoleAdmin:
		return All()
	case ident.Role == domain.RoleAreaManager:
		return Team(base, column, ident.ID)
	default:
		return DenyAll()
	}
}
