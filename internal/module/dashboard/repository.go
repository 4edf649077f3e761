package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/pkg"
	"github.com/fieldsales/salesadmin/internal/scope"
)

// Repository reads the scoped figures behind the dashboard summary.
type Repository interface {
	ShopCount(ctx context.Context, ident *domain.Identity) (int64, error)
	OfficerCount(ctx context.Context, ident *domain.Identity) (int64, error)
	// OrderCount counts distinct non-deleted orders, optionally within
	// [from, to).
	OrderCount(ctx context.Context, ident *domain.Identity, from, to *time.Time) (int64, error)
	// TotalSales sums the non-free line amounts of non-deleted orders.
	TotalSales(ctx context.Context, ident *domain.Identity) (decimal.Decimal, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

// NewRepository creates a new dashboard repository.
func NewRepository(db *gorm.DB) Repository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) ShopCount(ctx context.Context, ident *domain.Identity) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Shop{}).
		Where("is_deleted = ?", false).
		Scopes(scope.ForTeam(ident, r.db, "created_by")).
		Count(&count).Error
	if err != nil {
		return 0, domain.NewAppError(domain.CodeInternal, "failed to count shops", err)
	}
	return count, nil
}

func (r *dashboardRepository) OfficerCount(ctx context.Context, ident *domain.Identity) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.SalesOfficer{}).
		Where("is_active = ?", true).
		Scopes(scope.ForIdentity(ident, "reporting_manager_id")).
		Count(&count).Error
	if err != nil {
		return 0, domain.NewAppError(domain.CodeInternal, "failed to count sales officers", err)
	}
	return count, nil
}

func (r *dashboardRepository) OrderCount(ctx context.Context, ident *domain.Identity, from, to *time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.OrderLine{}).
		Where("is_deleted = ?", false).
		Scopes(
			scope.ForTeam(ident, r.db, "sales_officer_id"),
			pkg.CreatedBetween("created_at", from, to),
		).
		Distinct("order_id").
		Count(&count).Error
	if err != nil {
		return 0, domain.NewAppError(domain.CodeInternal, "failed to count orders", err)
	}
	return count, nil
}

func (r *dashboardRepository) TotalSales(ctx context.Context, ident *domain.Identity) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&domain.OrderLine{}).
		Select("SUM(amount)").
		Where("is_deleted = ? AND free_qty = ?", false, 0).
		Scopes(scope.ForTeam(ident, r.db, "sales_officer_id")).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, domain.NewAppError(domain.CodeInternal, "failed to sum sales", err)
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
