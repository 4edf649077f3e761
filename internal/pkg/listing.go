package pkg

import (
	"context"

	"gorm.io/gorm"

	"github.com/fieldsales/salesadmin/internal/domain"
)

// ListConfig parametrizes the generic list pipeline for one resource: which
// fields are searchable, which may be sorted or filtered on, and which column
// carries the soft-state flag. Every list module shares the same pipeline and
// differs only in this configuration.
type ListConfig struct {
	// SearchFields are matched case-insensitively with OR semantics.
	SearchFields []string
	// SortFields are the columns a caller may sort on.
	SortFields []string
	// FilterFields are the columns a caller may filter on.
	FilterFields []string
	// DefaultSort applies when the request carries no valid sort ("col:dir").
	DefaultSort string
	// TieBreak is the secondary order column for deterministic ties.
	TieBreak string
	// SoftFlag is the soft-state column; SoftVisible its value for live rows.
	SoftFlag    string
	SoftVisible bool
}

// narrow applies search, filters, and the default soft-state clause.
func (cfg ListConfig) narrow(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Scopes(
			Filter(req, cfg.FilterFields),
			Search(req.Search, cfg.SearchFields),
		)
		if cfg.SoftFlag != "" {
			db = db.Scopes(ActiveOnly(req, cfg.SoftFlag, cfg.SoftVisible))
		}
		return db
	}
}

// ListPage runs the shared list pipeline against base (a query with its Model
// and any scope predicate already applied): narrow, count, clamp the page to
// the shrunken total, then sort and fetch the page. Total is counted before
// slicing, so the clamp sees the post-mutation row count.
func ListPage[T any](ctx context.Context, base *gorm.DB, req domain.PageRequest, cfg ListConfig) (*domain.PageResult[T], error) {
	q := base.WithContext(ctx).Scopes(cfg.narrow(req))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}

	req.Page = ClampPage(req.Page, req.PageSize, total)

	var items []T
	if err := q.Scopes(
		Sort(req, cfg.SortFields, cfg.DefaultSort, cfg.TieBreak),
		Paginate(req),
	).Find(&items).Error; err != nil {
		return nil, err
	}

	return NewPageResult(items, total, req), nil
}

// ListAll runs the same pipeline without pagination, for CSV exports of the
// current filtered view.
func ListAll[T any](ctx context.Context, base *gorm.DB, req domain.PageRequest, cfg ListConfig) ([]T, error) {
	var items []T
	err := base.WithContext(ctx).
		Scopes(cfg.narrow(req), Sort(req, cfg.SortFields, cfg.DefaultSort, cfg.TieBreak)).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
