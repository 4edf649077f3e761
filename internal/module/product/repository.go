package product

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/pkg"
)

// listConfig drives the shared list pipeline for products. The catalog is
// global: both roles see the same rows, so no visibility scope applies.
var listConfig = pkg.ListConfig{
	SearchFields: []string{"name", "category"},
	SortFields:   []string{"name", "category", "mrp", "created_at"},
	FilterFields: []string{"category", "scheme_type"},
	DefaultSort:  "name:asc",
	TieBreak:     "id",
	SoftFlag:     "is_active",
	SoftVisible:  true,
}

// productRepository implements domain.ProductRepository using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewRepository creates a new product repository.
func NewRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Product], error) {
	result, err := pkg.ListPage[domain.Product](ctx, r.db.Model(&domain.Product{}), req, listConfig)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to list products", err)
	}
	return result, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewAppError(domain.CodeNotFound, "product not found", nil)
		}
		return nil, domain.NewAppError(domain.CodeInternal, "failed to get product", err)
	}
	return &product, nil
}

// Deactivate clears the active flag. Deactivating an already inactive product
// is a no-op success; an unknown id reports not found.
func (r *productRepository) Deactivate(ctx context.Context, id string) error {
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to deactivate product", err)
		}
		if count == 0 {
			return domain.NewAppError(domain.CodeNotFound, "product not found", nil)
		}

		err := tx.Model(&domain.Product{}).
			Where("id = ? AND is_active = ?", id, true).
			Update("is_active", false).Error
		if err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to deactivate product", err)
		}
		return nil
	})
}

// Categories returns the distinct non-empty categories of active products.
func (r *productRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("is_active = ? AND category <> ''", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to load categories", err)
	}
	return categories, nil
}

func (r *productRepository) All(ctx context.Context, req domain.PageRequest) ([]domain.Product, error) {
	products, err := pkg.ListAll[domain.Product](ctx, r.db.Model(&domain.Product{}), req, listConfig)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to export products", err)
	}
	return products, nil
}
