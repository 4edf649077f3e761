package officer

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/pkg"
	"github.com/fieldsales/salesadmin/internal/scope"
)

// listConfig drives the shared list pipeline for sales officers. Officers are
// deactivated rather than deleted, so the default view hides inactive rows.
var listConfig = pkg.ListConfig{
	SearchFields: []string{"name", "employee_id", "phone_number", "address"},
	SortFields:   []string{"name", "employee_id", "created_at"},
	FilterFields: []string{"reporting_manager_id"},
	DefaultSort:  "name:asc",
	TieBreak:     "id",
	SoftFlag:     "is_active",
	SoftVisible:  true,
}

// officerRepository implements domain.SalesOfficerRepository using GORM.
// Manager names are denormalized onto the results with a second lookup
// instead of a join, which keeps the shared pipeline's column names simple.
type officerRepository struct {
	db *gorm.DB
}

// NewRepository creates a new sales officer repository.
func NewRepository(db *gorm.DB) domain.SalesOfficerRepository {
	return &officerRepository{db: db}
}

// base narrows the officer table to the identity's visibility. A manager sees
// only the officers reporting to them.
func (r *officerRepository) base(ident *domain.Identity) *gorm.DB {
	return r.db.Model(&domain.SalesOfficer{}).
		Scopes(scope.ForIdentity(ident, "reporting_manager_id"))
}

func (r *officerRepository) List(ctx context.Context, ident *domain.Identity, req domain.PageRequest) (*domain.PageResult[domain.SalesOfficer], error) {
	result, err := pkg.ListPage[domain.SalesOfficer](ctx, r.base(ident), req, listConfig)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to list sales officers", err)
	}
	if err := r.fillManagerNames(ctx, result.Items); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *officerRepository) GetByID(ctx context.Context, ident *domain.Identity, id string) (*domain.SalesOfficer, error) {
	var officer domain.SalesOfficer
	err := r.base(ident).WithContext(ctx).Where("id = ?", id).First(&officer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewAppError(domain.CodeNotFound, "sales officer not found", nil)
		}
		return nil, domain.NewAppError(domain.CodeInternal, "failed to get sales officer", err)
	}

	officers := []domain.SalesOfficer{officer}
	if err := r.fillManagerNames(ctx, officers); err != nil {
		return nil, err
	}
	return &officers[0], nil
}

func (r *officerRepository) GetByPhone(ctx context.Context, phone string) (*domain.SalesOfficer, error) {
	var officer domain.SalesOfficer
	err := r.db.WithContext(ctx).Where("phone_number = ?", phone).First(&officer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewAppError(domain.CodeNotFound, "sales officer not found", nil)
		}
		return nil, domain.NewAppError(domain.CodeInternal, "failed to get sales officer", err)
	}
	return &officer, nil
}

// Create inserts a provisioned officer. Phone and employee id collisions are
// rejected before the insert so the caller gets a conflict, not a driver
// error.
func (r *officerRepository) Create(ctx context.Context, officer *domain.SalesOfficer) error {
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&domain.SalesOfficer{}).
			Where("phone_number = ? OR employee_id = ?", officer.PhoneNumber, officer.EmployeeID).
			Count(&count).Error
		if err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to create sales officer", err)
		}
		if count > 0 {
			return domain.NewAppError(domain.CodeAlreadyExists, "sales officer with this phone or employee id already exists", nil)
		}

		if err := tx.Create(officer).Error; err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to create sales officer", err)
		}
		return nil
	})
}

// Deactivate clears the active flag. Deactivating an already inactive officer
// is a no-op success; an unknown id reports not found.
func (r *officerRepository) Deactivate(ctx context.Context, id string) error {
	return pkg.WithTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.SalesOfficer{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to deactivate sales officer", err)
		}
		if count == 0 {
			return domain.NewAppError(domain.CodeNotFound, "sales officer not found", nil)
		}

		err := tx.Model(&domain.SalesOfficer{}).
			Where("id = ? AND is_active = ?", id, true).
			Update("is_active", false).Error
		if err != nil {
			return domain.NewAppError(domain.CodeInternal, "failed to deactivate sales officer", err)
		}
		return nil
	})
}

func (r *officerRepository) All(ctx context.Context, ident *domain.Identity, req domain.PageRequest) ([]domain.SalesOfficer, error) {
	officers, err := pkg.ListAll[domain.SalesOfficer](ctx, r.base(ident), req, listConfig)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to export sales officers", err)
	}
	if err := r.fillManagerNames(ctx, officers); err != nil {
		return nil, err
	}
	return officers, nil
}

func (r *officerRepository) ActiveOptions(ctx context.Context, ident *domain.Identity) ([]domain.FilterOption, error) {
	var options []domain.FilterOption
	err := r.base(ident).WithContext(ctx).
		Select("id", "name").
		Where("is_active = ?", true).
		Order("name ASC").
		Scan(&options).Error
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to load officer options", err)
	}
	return options, nil
}

// fillManagerNames resolves reporting manager names for the given officers
// with one lookup over the distinct manager ids.
func (r *officerRepository) fillManagerNames(ctx context.Context, officers []domain.SalesOfficer) error {
	ids := make([]string, 0, len(officers))
	seen := make(map[string]bool, len(officers))
	for _, o := range officers {
		if o.ReportingManagerID != "" && !seen[o.ReportingManagerID] {
			seen[o.ReportingManagerID] = true
			ids = append(ids, o.ReportingManagerID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var managers []domain.FilterOption
	err := r.db.WithContext(ctx).
		Model(&domain.AreaSalesManager{}).
		Select("id", "name").
		Where("id IN ?", ids).
		Scan(&managers).Error
	if err != nil {
		return domain.NewAppError(domain.CodeInternal, "failed to resolve manager names", err)
	}

	names := make(map[string]string, len(managers))
	for _, m := range managers {
		names[m.ID] = m.Name
	}
	for i := range officers {
		officers[i].ReportingManagerName = names[officers[i].ReportingManagerID]
	}
	return nil
}
