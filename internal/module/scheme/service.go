package scheme

import (
	"context"

	"github.com/fieldsales/salesadmin/internal/domain"
)

// schemeService implements domain.SchemeService. Schemes are global and
// unscoped, so the service passes through to the repository.
type schemeService struct {
	repo domain.SchemeRepository
}

// NewService creates a new scheme service.
func NewService(repo domain.SchemeRepository) domain.SchemeService {
	return &schemeService{repo: repo}
}

func (s *schemeService) ListSchemes(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Scheme], error) {
	return s.repo.List(ctx, req)
}

func (s *schemeService) GetScheme(ctx context.Context, id uint) (*domain.Scheme, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *schemeService) DeactivateScheme(ctx context.Context, id uint) error {
	return s.repo.Deactivate(ctx, id)
}

func (s *schemeService) ExportSchemes(ctx context.Context, req domain.PageRequest) ([]domain.Scheme, error) {
	return s.repo.All(ctx, req)
}
