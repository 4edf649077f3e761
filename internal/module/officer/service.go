package officer

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/fieldsales/salesadmin/internal/domain"
)

// officerService implements domain.SalesOfficerService.
type officerService struct {
	repo domain.SalesOfficerRepository
}

// NewService creates a new sales officer service.
func NewService(repo domain.SalesOfficerRepository) domain.SalesOfficerService {
	return &officerService{repo: repo}
}

func (s *officerService) ListOfficers(ctx context.Context, ident *domain.Identity, req domain.PageRequest) (*domain.PageResult[domain.SalesOfficer], error) {
	return s.repo.List(ctx, ident, req)
}

func (s *officerService) GetOfficer(ctx context.Context, ident *domain.Identity, id string) (*domain.SalesOfficer, error) {
	return s.repo.GetByID(ctx, ident, id)
}

// CreateOfficer provisions a new officer. Admins must name the reporting
// manager; a manager always provisions onto their own team regardless of the
// submitted value.
func (s *officerService) CreateOfficer(ctx context.Context, ident *domain.Identity, input domain.NewSalesOfficer) (*domain.SalesOfficer, error) {
	if ident == nil {
		return nil, domain.ErrUnauthorized
	}

	managerID := input.ReportingManagerID
	if !ident.IsAdmin() {
		managerID = ident.ID
	}
	if managerID == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "reporting_manager_id is required", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
	}

	officer := &domain.SalesOfficer{
		ID:                 uuid.NewString(),
		EmployeeID:         input.EmployeeID,
		Name:               input.Name,
		Address:            input.Address,
		PhoneNumber:        input.PhoneNumber,
		PasswordHash:       string(hash),
		DOB:                input.DOB,
		IDType:             input.IDType,
		IDNo:               input.IDNo,
		IsActive:           true,
		ReportingManagerID: managerID,
	}

	if err := s.repo.Create(ctx, officer); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, ident, officer.ID)
}

// DeactivateOfficer disables an officer the identity can see. Managers go
// through the scoped lookup first, so acting outside the team reports not
// found.
func (s *officerService) DeactivateOfficer(ctx context.Context, ident *domain.Identity, id string) error {
	if ident == nil {
		return domain.ErrUnauthorized
	}
	if !ident.IsAdmin() {
		if _, err := s.repo.GetByID(ctx, ident, id); err != nil {
			return err
		}
	}
	return s.repo.Deactivate(ctx, id)
}

func (s *officerService) ExportOfficers(ctx context.Context, ident *domain.Identity, req domain.PageRequest) ([]domain.SalesOfficer, error) {
	return s.repo.All(ctx, ident, req)
}

func (s *officerService) OfficerOptions(ctx context.Context, ident *domain.Identity) ([]domain.FilterOption, error) {
	return s.repo.ActiveOptions(ctx, ident)
}
