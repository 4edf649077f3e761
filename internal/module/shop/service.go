package shop

import (
	"context"

	"github.com/fieldsales/salesadmin/internal/domain"
)

// shopService implements domain.ShopService.
type shopService struct {
	repo domain.ShopRepository
}

// NewService creates a new shop service.
func NewService(repo domain.ShopRepository) domain.ShopService {
	return &shopService{repo: repo}
}

func (s *shopService) ListShops(ctx context.Context, ident *domain.Identity, req domain.PageRequest) (*domain.PageResult[domain.Shop], error) {
	return s.repo.List(ctx, ident, req)
}

func (s *shopService) GetShop(ctx context.Context, ident *domain.Identity, id string) (*domain.Shop, error) {
	return s.repo.GetByID(ctx, ident, id)
}

// GetShopDetails assembles the shop detail view: recent orders, top products,
// and top officers derived from the shop's visit history.
func (s *shopService) GetShopDetails(ctx context.Context, ident *domain.Identity, id string) (*domain.ShopDetails, error) {
	shop, err := s.repo.GetByID(ctx, ident, id)
	if err != nil {
		return nil, err
	}

	visits, err := s.repo.VisitsByShop(ctx, id)
	if err != nil {
		return nil, err
	}

	visitIDs := make([]string, len(visits))
	for i, v := range visits {
		visitIDs[i] = v.ID
	}

	rows, err := s.repo.RowsByVisitIDs(ctx, visitIDs)
	if err != nil {
		return nil, err
	}

	return buildShopDetails(*shop, visits, rows), nil
}

// DeleteShop soft deletes a shop the identity can see. Managers go through
// the scoped lookup first, so deleting outside the team reports not found.
func (s *shopService) DeleteShop(ctx context.Context, ident *domain.Identity, id string) error {
	if ident == nil {
		return domain.ErrUnauthorized
	}
	if !ident.IsAdmin() {
		if _, err := s.repo.GetByID(ctx, ident, id); err != nil {
			return err
		}
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *shopService) ExportShops(ctx context.Context, ident *domain.Identity, req domain.PageRequest) ([]domain.Shop, error) {
	return s.repo.All(ctx, ident, req)
}

func (s *shopService) ShopFilterOptions(ctx context.Context) (territories, cities, states []string, err error) {
	return s.repo.FilterOptions(ctx)
}
