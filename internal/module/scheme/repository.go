package scheme

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/pkg"
)

// listConfig drives the shared list pipeline for schemes.
var listConfig = pkg.ListConfig{
	SearchFields: []string{"scheme_text"},
	SortFields:   []string{"scheme_min_price", "created_at"},
	FilterFields: []string{"scheme_scope"},
	DefaultSort:  "created_at:desc",
	TieBreak:     "id",
	SoftFlag:     "is_active",
	SoftVisible:  true,
}

// schemeRepository implements domain.SchemeRepository using GORM.
type schemeRepository struct {
	db *gorm.DB
}

// NewRepository creates a new scheme repository.
func NewRepository(db *gorm.DB) domain.SchemeRepository {
	return &schemeRepository{db: db}
}

func (r *schemeRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Scheme], error) {
	result, err := pkg.ListPage[domain.Scheme](ctx, r.db.Model(&domain.Scheme{}), req, listConfig)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to list schemes", err)
	}
	return result, nil
}

func (r *schemeRepository) GetByID(ctx context.Context, id uint) (*domain.Scheme, error) {
	var scheme domain.Scheme
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&scheme).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewAppError(domain.CodeNotFound, "scheme not found", nil)
		}
		return nil, domain.NewAppError(domain.CodeInternal, "failed to get scheme", err)
	}
	return &scheme, nil
}

// Deactivate clears the active flag. Deactivating an already inactive scheme
// is a no-op success; an unknown id reports not found.
func (r *schemeRepository) Deactivate(ctx context.Context, id uint) error {
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Scheme{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to deactivate scheme", err)
		}
		if count == 0 {
			return domain.NewAppError(domain.CodeNotFound, "scheme not found", nil)
		}

		err := tx.Model(&domain.Scheme{}).
			Where("id = ? AND is_active = ?", id, true).
			Update("is_active", false).Error
		if err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to deactivate scheme", err)
		}
		return nil
	})
}

func (r *schemeRepository) All(ctx context.Context, req domain.PageRequest) ([]domain.Scheme, error) {
	schemes, err := pkg.ListAll[domain.Scheme](ctx, r.db.Model(&domain.Scheme{}), req, listConfig)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to export schemes", err)
	}
	return schemes, nil
}
