package manager

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/pkg"
)

// listConfig drives the shared list pipeline for area sales managers.
var listConfig = pkg.ListConfig{
	SearchFields: []string{"name", "employee_id", "phone_number", "address"},
	SortFields:   []string{"name", "employee_id", "created_at"},
	FilterFields: nil,
	DefaultSort:  "name:asc",
	TieBreak:     "id",
	SoftFlag:     "is_active",
	SoftVisible:  true,
}

// managerRepository implements domain.AreaSalesManagerRepository using GORM.
type managerRepository struct {
	db *gorm.DB
}

// NewRepository creates a new area sales manager repository.
func NewRepository(db *gorm.DB) domain.AreaSalesManagerRepository {
	return &managerRepository{db: db}
}

func (r *managerRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.AreaSalesManager], error) {
	result, err := pkg.ListPage[domain.AreaSalesManager](ctx, r.db.Model(&domain.AreaSalesManager{}), req, listConfig)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to list managers", err)
	}
	return result, nil
}

func (r *managerRepository) GetByID(ctx context.Context, id string) (*domain.AreaSalesManager, error) {
	var manager domain.AreaSalesManager
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&manager).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewAppError(domain.CodeNotFound, "manager not found", nil)
		}
		return nil, domain.NewAppError(domain.CodeInternal, "failed to get manager", err)
	}
	return &manager, nil
}

func (r *managerRepository) GetByPhone(ctx context.Context, phone string) (*domain.AreaSalesManager, error) {
	var manager domain.AreaSalesManager
	err := r.db.WithContext(ctx).Where("phone_number = ?", phone).First(&manager).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewAppError(domain.CodeNotFound, "manager not found", nil)
		}
		return nil, domain.NewAppError(domain.CodeInternal, "failed to get manager", err)
	}
	return &manager, nil
}

// Create inserts a provisioned manager after checking phone and employee id
// uniqueness.
func (r *managerRepository) Create(ctx context.Context, manager *domain.AreaSalesManager) error {
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&domain.AreaSalesManager{}).
			Where("phone_number = ? OR employee_id = ?", manager.PhoneNumber, manager.EmployeeID).
			Count(&count).Error
		if err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to create manager", err)
		}
		if count > 0 {
			return domain.NewAppError(domain.CodeAlreadyExists, "manager with this phone or employee id already exists", nil)
		}

		if err := tx.Create(manager).Error; err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to create manager", err)
		}
		return nil
	})
}

// Deactivate clears the active flag. Deactivating an already inactive manager
// is a no-op success; an unknown id reports not found.
func (r *managerRepository) Deactivate(ctx context.Context, id string) error {
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.AreaSalesManager{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to deactivate manager", err)
		}
		if count == 0 {
			return domain.NewAppError(domain.CodeNotFound, "manager not found", nil)
		}

		err := tx.Model(&domain.AreaSalesManager{}).
			Where("id = ? AND is_active = ?", id, true).
			Update("is_active", false).Error
		if err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to deactivate manager", err)
		}
		return nil
	})
}

func (r *managerRepository) All(ctx context.Context, req domain.PageRequest) ([]domain.AreaSalesManager, error) {
	managers, err := pkg.ListAll[domain.AreaSalesManager](ctx, r.db.Model(&domain.AreaSalesManager{}), req, listConfig)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to export managers", err)
	}
	return managers, nil
}

func (r *managerRepository) ActiveOptions(ctx context.Context) ([]domain.FilterOption, error) {
	var options []domain.FilterOption
	err := r.db.WithContext(ctx).
		Model(&domain.AreaSalesManager{}).
		Select("id", "name").
		Where("is_active = ?", true).
		Order("name ASC").
		Scan(&options).Error
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to load manager options", err)
	}
	return options, nil
}
