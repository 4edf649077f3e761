package order

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/pkg"
	"github.com/fieldsales/salesadmin/internal/scope"
)

// orderRepository implements domain.OrderRepository using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewRepository creates a new order repository.
func NewRepository(db *gorm.DB) domain.OrderRepository {
	return &orderRepository{db: db}
}

// rowSelect is the denormalized projection shared by Rows and RowsByOrderID.
// One row per order line, joined with the names a list view needs. LEFT joins
// keep lines visible even when a referenced visit or officer is missing.
const rowSelect = `orders.order_id, orders.visit_id, orders.created_at, orders.currency,
orders.sales_officer_id, so.name AS sales_officer_name,
v.shop_id AS shop_id, sh.name AS shop_name,
so.reporting_manager_id AS area_manager_id, asm.name AS area_manager_name,
orders.product_id, p.name AS product_name, orders.quantity, orders.amount, orders.free_qty`

// rowQuery builds the base flat-row query narrowed to the identity's
// visibility. Deleted lines never appear.
func (r *orderRepository) rowQuery(ctx context.Context, ident *domain.Identity) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&domain.OrderLine{}).
		Select(rowSelect).
		Joins("LEFT JOIN visits v ON v.id = orders.visit_id").
		Joins("LEFT JOIN shops sh ON sh.id = v.shop_id").
		Joins("LEFT JOIN sales_officers so ON so.id = orders.sales_officer_id").
		Joins("LEFT JOIN area_sales_managers asm ON asm.id = so.reporting_manager_id").
		Joins("LEFT JOIN products p ON p.id = orders.product_id").
		Where("orders.is_deleted = ?", false).
		Scopes(scope.ForTeam(ident, r.db, "orders.sales_officer_id"))
}

func (r *orderRepository) Rows(ctx context.Context, ident *domain.Identity, from, to *time.Time) ([]domain.OrderRow, error) {
	var rows []domain.OrderRow
	err := r.rowQuery(ctx, ident).
		Scopes(pkg.CreatedBetween("orders.created_at", from, to)).
		Order("orders.created_at DESC, orders.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to list orders", err)
	}
	return rows, nil
}

func (r *orderRepository) RowsByOrderID(ctx context.Context, ident *domain.Identity, orderID string) ([]domain.OrderRow, error) {
	var rows []domain.OrderRow
	err := r.rowQuery(ctx, ident).
		Where("orders.order_id = ?", orderID).
		Order("orders.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to get order", err)
	}
	return rows, nil
}

// SoftDelete flags every line of the order. Deleting an already deleted order
// is a no-op success; an unknown order reports not found.
func (r *orderRepository) SoftDelete(ctx context.Context, orderID string) error {
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.OrderLine{}).
			Where("order_id = ?", orderID).
			Count(&count).Error; err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to delete order", err)
		}
		if count == 0 {
			return domain.NewAppError(domain.CodeNotFound, "order not found", nil)
		}

		result := tx.Model(&domain.OrderLine{}).
			Where("order_id = ? AND is_deleted = ?", orderID, false).
			Update("is_deleted", true)
		if result.Error != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to delete order", result.Error)
		}
		return nil
	})
}
