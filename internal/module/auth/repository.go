package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fieldsales/salesadmin/internal/domain"
)

// adminRepository implements domain.AdminRepository using GORM. Admin
// accounts are provisioned out of band; sign-in lookup is the only access
// path the service needs.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository.
func NewAdminRepository(db *gorm.DB) domain.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var admin domain.Admin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewAppError(domain.CodeNotFound, "admin not found", nil)
		}
		return nil, domain.NewAppError(domain.CodeInternal, "failed to get admin", err)
	}
	return &admin, nil
}
