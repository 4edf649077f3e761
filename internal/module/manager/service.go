package manager

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fieldsales/salesadmin/internal/domain"
)

// managerService implements domain.AreaSalesManagerService. Role gating is
// enforced at the route layer; the service assumes an admin caller.
type managerService struct {
	repo domain.AreaSalesManagerRepository
}

// NewService creates a new area sales manager service.
func NewService(repo domain.AreaSalesManagerRepository) domain.AreaSalesManagerService {
	return &managerService{repo: repo}
}

func (s *managerService) ListManagers(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.AreaSalesManager], error) {
	return s.repo.List(ctx, req)
}

func (s *managerService) GetManager(ctx context.Context, id string) (*domain.AreaSalesManager, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateManager provisions a new manager with a fresh id and hashed password.
func (s *managerService) CreateManager(ctx context.Context, input domain.NewAreaSalesManager) (*domain.AreaSalesManager, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
	}

	manager := &domain.AreaSalesManager{
		ID:           uuid.NewString(),
		EmployeeID:   input.EmployeeID,
		Name:         input.Name,
		Address:      input.Address,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: string(hash),
		DOB:          input.DOB,
		IDType:       input.IDType,
		IDNo:         input.IDNo,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, manager); err != nil {
		return nil, err
	}
	return manager, nil
}

func (s *managerService) DeactivateManager(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}

func (s *managerService) ExportManagers(ctx context.Context, req domain.PageRequest) ([]domain.AreaSalesManager, error) {
	return s.repo.All(ctx, req)
}

func (s *managerService) ManagerOptions(ctx context.Context) ([]domain.FilterOption, error) {
	return s.repo.ActiveOptions(ctx)
}
