package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Prices follow the original trade terms: MRP is
// the printed price, PTS/PTR the prices to stockist and retailer.
type Product struct {
	ID                  string           `gorm:"primaryKey;size:36" json:"product_id"`
	Name                string           `gorm:"size:255;not null" json:"name"`
	Category            string           `gorm:"size:100;index" json:"category"`
	UnitOfMeasure       string           `gorm:"size:32" json:"unit_of_measure"`
	MRP                 decimal.Decimal  `gorm:"type:decimal(12,2)" json:"mrp"`
	PTS                 *decimal.Decimal `gorm:"type:decimal(12,2)" json:"pts"`
	PTR                 *decimal.Decimal `gorm:"type:decimal(12,2)" json:"ptr"`
	SchemeType          string           `gorm:"size:50" json:"scheme_type"`
	SchemePercentage    *decimal.Decimal `gorm:"type:decimal(6,2)" json:"scheme_percentage"`
	NetPTR              *decimal.Decimal `gorm:"type:decimal(12,2)" json:"net_ptr"`
	RetailerProfitValue *decimal.Decimal `gorm:"type:decimal(12,2)" json:"retailer_profit_value"`
	GSTPercent          *decimal.Decimal `gorm:"type:decimal(6,2)" json:"gst_percent"`
	Currency            string           `gorm:"size:8" json:"currency"`
	SchemeBuyQty        *int             `json:"product_scheme_buy_qty"`
	SchemeGetQty        *int             `json:"product_scheme_get_qty"`
	IsActive            bool             `gorm:"index" json:"is_active"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// ProductRepository defines the data access interface for products.
type ProductRepository interface {
	List(ctx context.Context, req PageRequest) (*PageResult[Product], error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Deactivate(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
	All(ctx context.Context, req PageRequest) ([]Product, error)
}

// ProductService defines the business logic interface for products.
type ProductService interface {
	ListProducts(ctx context.Context, req PageRequest) (*PageResult[Product], error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	DeactivateProduct(ctx context.Context, id string) error
	ExportProducts(ctx context.Context, req PageRequest) ([]Product, error)
	ProductCategories(ctx context.Context) ([]string, error)
}
