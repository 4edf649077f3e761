package order

import (
	"context"
	"time"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/pkg"
)

// orderService implements domain.OrderService. Listing fetches every visible
// flat row for the requested window, aggregates lines into orders, then runs
// search, filter, sort, and pagination over the aggregated set. Aggregation
// happens before pagination so a page never splits an order.
type orderService struct {
	repo domain.OrderRepository
	now  func() time.Time
}

// NewService creates a new order service.
func NewService(repo domain.OrderRepository) domain.OrderService {
	return &orderService{repo: repo, now: time.Now}
}

// fetch resolves the created preset, pulls the visible rows, and returns the
// filtered aggregated set.
func (s *orderService) fetch(ctx context.Context, ident *domain.Identity, req domain.PageRequest) ([]domain.Order, error) {
	var from, to *time.Time
	if preset := req.Filter["created"]; preset != "" {
		start, end, err := pkg.PresetRange(preset, s.now())
		if err != nil {
			return nil, domain.NewAppError(domain.CodeValidation, "invalid created range", err)
		}
		from, to = &start, &end
	}

	rows, err := s.repo.Rows(ctx, ident, from, to)
	if err != nil {
		return nil, err
	}

	orders := aggregateOrders(rows)
	return filterOrders(orders, req), nil
}

func (s *orderService) ListOrders(ctx context.Context, ident *domain.Identity, req domain.PageRequest) (*domain.PageResult[domain.Order], error) {
	orders, err := s.fetch(ctx, ident, req)
	if err != nil {
		return nil, err
	}

	sortOrders(orders, req.Sort)

	total := int64(len(orders))
	req.Page = pkg.ClampPage(req.Page, req.PageSize, total)

	start := (req.Page - 1) * req.PageSize
	if start > len(orders) {
		start = len(orders)
	}
	end := start + req.PageSize
	if end > len(orders) {
		end = len(orders)
	}

	return pkg.NewPageResult(orders[start:end], total, req), nil
}

func (s *orderService) GetOrder(ctx context.Context, ident *domain.Identity, orderID string) (*domain.Order, error) {
	rows, err := s.repo.RowsByOrderID(ctx, ident, orderID)
	if err != nil {
		return nil, err
	}
	orders := aggregateOrders(rows)
	if len(orders) == 0 {
		return nil, domain.NewAppError(domain.CodeNotFound, "order not found", nil)
	}
	return &orders[0], nil
}

// DeleteOrder soft deletes an order the identity can see. For managers the
// visibility check runs through the scoped lookup, so an ASM cannot delete
// another team's order and learns nothing beyond "not found". Admins skip the
// lookup, which makes a repeated delete a no-op success.
func (s *orderService) DeleteOrder(ctx context.Context, ident *domain.Identity, orderID string) error {
	if ident == nil {
		return domain.ErrUnauthorized
	}
	if !ident.IsAdmin() {
		if _, err := s.GetOrder(ctx, ident, orderID); err != nil {
			return err
		}
	}
	return s.repo.SoftDelete(ctx, orderID)
}

func (s *orderService) ExportOrders(ctx context.Context, ident *domain.Identity, req domain.PageRequest) ([]domain.Order, error) {
	orders, err := s.fetch(ctx, ident, req)
	if err != nil {
		return nil, err
	}
	sortOrders(orders, req.Sort)
	return orders, nil
}
