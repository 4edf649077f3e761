package product

import (
	"context"

	"github.com/fieldsales/salesadmin/internal/domain"
)

// productService implements domain.ProductService. The catalog carries no
// role scoping, so the service is a thin pass-through over the repository.
type productService struct {
	repo domain.ProductRepository
}

// NewService creates a new product service.
func NewService(repo domain.ProductRepository) domain.ProductService {
	return &productService{repo: repo}
}

func (s *productService) ListProducts(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Product], error) {
	return s.repo.List(ctx, req)
}

func (s *productService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *productService) DeactivateProduct(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}

func (s *productService) ExportProducts(ctx context.Context, req domain.PageRequest) ([]domain.Product, error) {
	return s.repo.All(ctx, req)
}

func (s *productService) ProductCategories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}
