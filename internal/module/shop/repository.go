package shop

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/pkg"
	"github.com/fieldsales/salesadmin/internal/scope"
)

// listConfig drives the shared list pipeline for shops. Shops are soft
// deleted, so the default view hides is_deleted rows.
var listConfig = pkg.ListConfig{
	SearchFields: []string{"name", "address", "owner_name", "territory", "city", "state"},
	SortFields:   []string{"name", "territory", "city", "state", "created_at"},
	FilterFields: []string{"territory", "city", "state", "created_by"},
	DefaultSort:  "created_at:desc",
	TieBreak:     "id",
	SoftFlag:     "is_deleted",
	SoftVisible:  false,
}

// shopRepository implements domain.ShopRepository using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewRepository creates a new shop repository.
func NewRepository(db *gorm.DB) domain.ShopRepository {
	return &shopRepository{db: db}
}

// base narrows the shop table to the identity's visibility. A manager sees
// the shops created by officers on their team.
func (r *shopRepository) base(ident *domain.Identity) *gorm.DB {
	return r.db.Model(&domain.Shop{}).
		Scopes(scope.ForTeam(ident, r.db, "created_by"))
}

func (r *shopRepository) List(ctx context.Context, ident *domain.Identity, req domain.PageRequest) (*domain.PageResult[domain.Shop], error) {
	result, err := pkg.ListPage[domain.Shop](ctx, r.base(ident), req, listConfig)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to list shops", err)
	}
	return result, nil
}

func (r *shopRepository) GetByID(ctx context.Context, ident *domain.Identity, id string) (*domain.Shop, error) {
	var shop domain.Shop
	err := r.base(ident).WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&shop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewAppError(domain.CodeNotFound, "shop not found", nil)
		}
		return nil, domain.NewAppError(domain.CodeInternal, "failed to get shop", err)
	}
	return &shop, nil
}

// SoftDelete flags the shop. Deleting an already deleted shop is a no-op
// success; an unknown id reports not found.
func (r *shopRepository) SoftDelete(ctx context.Context, id string) error {
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Shop{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to delete shop", err)
		}
		if count == 0 {
			return domain.NewAppError(domain.CodeNotFound, "shop not found", nil)
		}

		err := tx.Model(&domain.Shop{}).
			Where("id = ? AND is_deleted = ?", id, false).
			Update("is_deleted", true).Error
		if err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to delete shop", err)
		}
		return nil
	})
}

func (r *shopRepository) VisitsByShop(ctx context.Context, shopID string) ([]domain.Visit, error) {
	var visits []domain.Visit
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND is_deleted = ?", shopID, false).
		Order("created_at DESC").
		Find(&visits).Error
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to list visits", err)
	}
	return visits, nil
}

// RowsByVisitIDs returns the flat order rows hanging off the given visits,
// newest first. The projection matches the order listing query.
func (r *shopRepository) RowsByVisitIDs(ctx context.Context, visitIDs []string) ([]domain.OrderRow, error) {
	if len(visitIDs) == 0 {
		return nil, nil
	}

	var rows []domain.OrderRow
	err := r.db.WithContext(ctx).
		Model(&domain.OrderLine{}).
		Select(`orders.order_id, orders.visit_id, orders.created_at, orders.currency,
orders.sales_officer_id, so.name AS sales_officer_name,
v.shop_id AS shop_id, sh.name AS shop_name,
so.reporting_manager_id AS area_manager_id, asm.name AS area_manager_name,
orders.product_id, p.name AS product_name, orders.quantity, orders.amount, orders.free_qty`).
		Joins("LEFT JOIN visits v ON v.id = orders.visit_id").
		Joins("LEFT JOIN shops sh ON sh.id = v.shop_id").
		Joins("LEFT JOIN sales_officers so ON so.id = orders.sales_officer_id").
		Joins("LEFT JOIN area_sales_managers asm ON asm.id = so.reporting_manager_id").
		Joins("LEFT JOIN products p ON p.id = orders.product_id").
		Where("orders.visit_id IN ? AND orders.is_deleted = ?", visitIDs, false).
		Order("orders.created_at DESC, orders.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to list shop orders", err)
	}
	return rows, nil
}

// FilterOptions returns the distinct non-empty territories, cities, and
// states of live shops, each alphabetically ordered.
func (r *shopRepository) FilterOptions(ctx context.Context) (territories, cities, states []string, err error) {
	distinct := func(column string) ([]string, error) {
		var values []string
		err := r.db.WithContext(ctx).
			Model(&domain.Shop{}).
			Where("is_deleted = ? AND "+column+" <> ''", false).
			Distinct(column).
			Order(column + " ASC").
			Pluck(column, &values).Error
		return values, err
	}

	if territories, err = distinct("territory"); err == nil {
		if cities, err = distinct("city"); err == nil {
			states, err = distinct("state")
		}
	}
	if err != nil {
		return nil, nil, nil, domain.NewAppError(domain.CodeInternal, "failed to load filter options", err)
	}
	return territories, cities, states, nil
}

func (r *shopRepository) All(ctx context.Context, ident *domain.Identity, req domain.PageRequest) ([]domain.Shop, error) {
	shops, err := pkg.ListAll[domain.Shop](ctx, r.base(ident), req, listConfig)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to export shops", err)
	}
	return shops, nil
}
