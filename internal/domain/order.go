package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine is one product line of an order as stored. An order is the set of
// lines sharing an OrderID; soft deletion flags every line of the order.
type OrderLine struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	OrderID        string          `gorm:"size:36;index;not null" json:"order_id"`
	VisitID        string          `gorm:"size:36;index" json:"visit_id"`
	SalesOfficerID string          `gorm:"size:36;index" json:"sales_officer_id"`
	ProductID      string          `gorm:"size:36" json:"product_id"`
	Quantity       int             `json:"quantity"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	FreeQty        int             `json:"free_qty"`
	Currency       string          `gorm:"size:8" json:"currency"`
	IsDeleted      bool            `gorm:"default:false;index" json:"is_deleted"`
	CreatedAt      time.Time       `json:"created_at"`
}

// TableName keeps the original collection name.
func (OrderLine) TableName() string { return "orders" }

// OrderRow is the flat, denormalized row shape produced by the order listing
// query (one row per order line, joined with shop, officer, and manager names).
// It is the input to order aggregation; rows are parsed into this typed shape
// at the query boundary.
type OrderRow struct {
	OrderID          string          `json:"order_id"`
	VisitID          string          `json:"visit_id"`
	CreatedAt        time.Time       `json:"created_at"`
	Currency         string          `json:"currency"`
	SalesOfficerID   string          `json:"sales_officer_id"`
	SalesOfficerName string          `json:"sales_officer_name"`
	ShopID           string          `json:"shop_id"`
	ShopName         string          `json:"shop_name"`
	AreaManagerID    string          `json:"area_manager_id"`
	AreaManagerName  string          `json:"area_manager_name"`
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Quantity         int             `json:"quantity"`
	Amount           decimal.Decimal `json:"amount"`
	FreeQty          int             `json:"free_qty"`
}

// OrderProduct is a product line of an aggregated order. Lines with FreeQty > 0
// are rendered separately and contribute nothing to the order total.
type OrderProduct struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
	FreeQty     int             `json:"free_qty"`
}

// Order is the aggregated entity built from the flat rows sharing an order id.
// TotalAmount is the sum of the non-free line amounts; Products preserves the
// row fetch order.
type Order struct {
	OrderID          string          `json:"order_id"`
	VisitID          string          `json:"visit_id"`
	CreatedAt        time.Time       `json:"created_at"`
	Currency         string          `json:"currency"`
	SalesOfficerID   string          `json:"sales_officer_id"`
	SalesOfficerName string          `json:"sales_officer_name"`
	ShopName         string          `json:"shop_name"`
	AreaManagerID    string          `json:"area_manager_id"`
	AreaManagerName  string          `json:"area_manager_name"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	Products         []OrderProduct  `json:"products"`
}

// OrderRepository defines the data access interface for orders.
type OrderRepository interface {
	// Rows returns the flat order rows visible to the identity, newest first,
	// optionally narrowed to a created-at window.
	Rows(ctx context.Context, ident *Identity, from, to *time.Time) ([]OrderRow, error)
	// RowsByOrderID returns the flat rows of one order, scoped to the identity.
	RowsByOrderID(ctx context.Context, ident *Identity, orderID string) ([]OrderRow, error)
	// SoftDelete marks every line of the order deleted.
	SoftDelete(ctx context.Context, orderID string) error
}

// OrderService defines the business logic interface for orders.
type OrderService interface {
	ListOrders(ctx context.Context, ident *Identity, req PageRequest) (*PageResult[Order], error)
	GetOrder(ctx context.Context, ident *Identity, orderID string) (*Order, error)
	DeleteOrder(ctx context.Context, ident *Identity, orderID string) error
	// ExportOrders returns every order of the current filtered view, unpaginated.
	ExportOrders(ctx context.Context, ident *Identity, req PageRequest) ([]Order, error)
}
