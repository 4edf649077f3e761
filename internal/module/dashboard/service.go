package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fieldsales/salesadmin/internal/domain"
)

// Summary is the dashboard payload: scoped headline figures plus the
// week-over-week movement of order volume.
type Summary struct {
	ActiveShops       int64           `json:"active_shops"`
	ActiveOfficers    int64           `json:"active_sales_officers"`
	TotalOrders       int64           `json:"total_orders"`
	TotalSales        decimal.Decimal `json:"total_sales"`
	OrdersThisWeek    int64           `json:"orders_this_week"`
	OrdersLastWeek    int64           `json:"orders_last_week"`
	WeekChangePercent float64         `json:"week_change_percent"`
}

// Service computes the dashboard summary.
type Service interface {
	GetSummary(ctx context.Context, ident *domain.Identity) (*Summary, error)
}

type dashboardService struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new dashboard service.
func NewService(repo Repository) Service {
	return &dashboardService{repo: repo, now: time.Now}
}

// GetSummary gathers the scoped counts and compares order volume over the
// trailing seven days against the seven days before that.
func (s *dashboardService) GetSummary(ctx context.Context, ident *domain.Identity) (*Summary, error) {
	shops, err := s.repo.ShopCount(ctx, ident)
	if err != nil {
		return nil, err
	}
	officers, err := s.repo.OfficerCount(ctx, ident)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.OrderCount(ctx, ident, nil, nil)
	if err != nil {
		return nil, err
	}
	sales, err := s.repo.TotalSales(ctx, ident)
	if err != nil {
		return nil, err
	}

	now := s.now()
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	thisWeek, err := s.repo.OrderCount(ctx, ident, &weekAgo, &now)
	if err != nil {
		return nil, err
	}
	lastWeek, err := s.repo.OrderCount(ctx, ident, &twoWeeksAgo, &weekAgo)
	if err != nil {
		return nil, err
	}

	return &Summary{
		ActiveShops:       shops,
		ActiveOfficers:    officers,
		TotalOrders:       orders,
		TotalSales:        sales,
		OrdersThisWeek:    thisWeek,
		OrdersLastWeek:    lastWeek,
		WeekChangePercent: percentChange(thisWeek, lastWeek),
	}, nil
}

// percentChange reports the relative movement from previous to current. A
// jump from zero counts as a full 100% gain; zero to zero is flat.
func percentChange(current, previous int64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return float64(current-previous) / float64(previous) * 100
}
