package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Scheme scope values.
const (
	SchemeScopeProduct = "product"
	SchemeScopeOrder   = "order"
)

// Scheme is a promotional rule scoped to either a product or a whole order,
// with an optional minimum price threshold.
type Scheme struct {
	ID             uint             `gorm:"primaryKey" json:"scheme_id"`
	SchemeText     string           `gorm:"size:500;not null" json:"scheme_text"`
	SchemeMinPrice *decimal.Decimal `gorm:"type:decimal(12,2)" json:"scheme_min_price"`
	SchemeScope    string           `gorm:"size:16;index;not null" json:"scheme_scope"`
	IsActive       bool             `gorm:"index" json:"is_active"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// SchemeRepository defines the data access interface for schemes.
type SchemeRepository interface {
	List(ctx context.Context, req PageRequest) (*PageResult[Scheme], error)
	GetByID(ctx context.Context, id uint) (*Scheme, error)
	Deactivate(ctx context.Context, id uint) error
	All(ctx context.Context, req PageRequest) ([]Scheme, error)
}

// SchemeService defines the business logic interface for schemes.
type SchemeService interface {
	ListSchemes(ctx context.Context, req PageRequest) (*PageResult[Scheme], error)
	GetScheme(ctx context.Context, id uint) (*Scheme, error)
	DeactivateScheme(ctx context.Context, id uint) error
	ExportSchemes(ctx context.Context, req PageRequest) ([]Scheme, error)
}
