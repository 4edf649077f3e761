package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Shop is a retail outlet visited by sales officers.
type Shop struct {
	ID          string    `gorm:"primaryKey;size:36" json:"shop_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Address     string    `gorm:"size:500" json:"address"`
	Territory   string    `gorm:"size:100;index" json:"territory"`
	City        string    `gorm:"size:100;index" json:"city"`
	State       string    `gorm:"size:100;index" json:"state"`
	Country     string    `gorm:"size:100" json:"country"`
	Photo       string    `gorm:"size:500" json:"photo"`
	GPSLocation string    `gorm:"size:100" json:"gps_location"`
	OwnerName   string    `gorm:"size:255" json:"owner_name"`
	PhoneNumber string    `gorm:"size:32" json:"phone_number"`
	IsDeleted   bool      `gorm:"default:false;index" json:"is_deleted"`
	CreatedBy   string    `gorm:"size:36;index" json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Visit is one sales-officer visit to a shop. Orders hang off visits.
type Visit struct {
	ID             string    `gorm:"primaryKey;size:36" json:"visit_id"`
	ShopID         string    `gorm:"size:36;index;not null" json:"shop_id"`
	SalesOfficerID string    `gorm:"size:36;index;not null" json:"sales_officer_id"`
	IsDeleted      bool      `gorm:"default:false" json:"is_deleted"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName keeps the original collection name.
func (Visit) TableName() string { return "visits" }

// ShopOrder is a summarized order shown in the shop details view.
type ShopOrder struct {
	OrderID          string          `json:"order_id"`
	CreatedAt        time.Time       `json:"created_at"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Currency         string          `json:"currency"`
	SalesOfficerName string          `json:"sales_officer_name"`
	ProductCount     int             `json:"product_count"`
}

// TopProduct ranks a product by total sold amount within one shop.
type TopProduct struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
}

// TopSalesOfficer ranks an officer by total order amount within one shop.
type TopSalesOfficer struct {
	SalesOfficerID string          `json:"sales_officer_id"`
	Name           string          `json:"name"`
	VisitCount     int             `json:"visit_count"`
	OrderCount     int             `json:"order_count"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// ShopDetails is the aggregated detail view of one shop.
type ShopDetails struct {
	Shop          Shop              `json:"shop"`
	RecentOrders  []ShopOrder       `json:"recent_orders"`
	TopProducts   []TopProduct      `json:"top_products"`
	TopOfficers   []TopSalesOfficer `json:"top_sales_officers"`
	TotalSales    decimal.Decimal   `json:"total_sales"`
	SalesCurrency string            `json:"sales_currency"`
}

// ShopRepository defines the data access interface for shops.
type ShopRepository interface {
	List(ctx context.Context, ident *Identity, req PageRequest) (*PageResult[Shop], error)
	GetByID(ctx context.Context, ident *Identity, id string) (*Shop, error)
	SoftDelete(ctx context.Context, id string) error
	// VisitsByShop returns the non-deleted visits of one shop.
	VisitsByShop(ctx context.Context, shopID string) ([]Visit, error)
	// RowsByVisitIDs returns the flat order rows attached to the given visits.
	RowsByVisitIDs(ctx context.Context, visitIDs []string) ([]OrderRow, error)
	// FilterOptions returns the distinct territories, cities, and states.
	FilterOptions(ctx context.Context) (territories, cities, states []string, err error)
	All(ctx context.Context, ident *Identity, req PageRequest) ([]Shop, error)
}

// ShopService defines the business logic interface for shops.
type ShopService interface {
	ListShops(ctx context.Context, ident *Identity, req PageRequest) (*PageResult[Shop], error)
	GetShop(ctx context.Context, ident *Identity, id string) (*Shop, error)
	GetShopDetails(ctx context.Context, ident *Identity, id string) (*ShopDetails, error)
	DeleteShop(ctx context.Context, ident *Identity, id string) error
	ExportShops(ctx context.Context, ident *Identity, req PageRequest) ([]Shop, error)
	ShopFilterOptions(ctx context.Context) (territories, cities, states []string, err error)
}
