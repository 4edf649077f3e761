package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fieldsales/salesadmin/internal/domain"
)

func TestPercentChange(t *testing.T) {
	cases := []struct {
		name     string
		current  int64
		previous int64
		want     float64
	}{
		{"both zero", 0, 0, 0},
		{"from zero", 5, 0, 100},
		{"to zero", 0, 4, -100},
		{"doubled", 8, 4, 100},
		{"halved", 2, 4, -50},
		{"flat", 4, 4, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := percentChange(tc.current, tc.previous); got != tc.want {
				t.Errorf("percentChange(%d, %d) = %v, want %v", tc.current, tc.previous, got, tc.want)
			}
		})
	}
}

func setupDashboardDB(t *testing.T, now time.Time) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&domain.AreaSalesManager{},
		&domain.SalesOfficer{},
		&domain.Shop{},
		&domain.OrderLine{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	fixtures := []any{
		&domain.AreaSalesManager{ID: "mgr-1", EmployeeID: "M1", Name: "Meera", PhoneNumber: "111", IsActive: true},
		&domain.AreaSalesManager{ID: "mgr-2", EmployeeID: "M2", Name: "Nikhil", PhoneNumber: "222", IsActive: true},
		&domain.SalesOfficer{ID: "off-1", EmployeeID: "E1", Name: "Asha", PhoneNumber: "333", IsActive: true, ReportingManagerID: "mgr-1"},
		&domain.SalesOfficer{ID: "off-2", EmployeeID: "E2", Name: "Ravi", PhoneNumber: "444", IsActive: true, ReportingManagerID: "mgr-2"},
		&domain.SalesOfficer{ID: "off-3", EmployeeID: "E3", Name: "Idle", PhoneNumber: "555", IsActive: false, ReportingManagerID: "mgr-1"},
		&domain.Shop{ID: "shop-1", Name: "Alpha Mart", CreatedBy: "off-1"},
		&domain.Shop{ID: "shop-2", Name: "Beta Store", CreatedBy: "off-2"},
		&domain.Shop{ID: "shop-3", Name: "Closed", CreatedBy: "off-1", IsDeleted: true},
	}
	for _, f := range fixtures {
		if err := db.Create(f).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	// Two orders this week and one last week for mgr-1's team, one old order
	// for mgr-2's team. ord-1 has two lines, one of them free.
	lines := []domain.OrderLine{
		{OrderID: "ord-1", VisitID: "v1", SalesOfficerID: "off-1", ProductID: "p1", Quantity: 1, Amount: decimal.NewFromInt(100), Currency: "INR", CreatedAt: now.AddDate(0, 0, -1)},
		{OrderID: "ord-1", VisitID: "v1", SalesOfficerID: "off-1", ProductID: "p2", Quantity: 1, Amount: decimal.NewFromInt(50), FreeQty: 1, Currency: "INR", CreatedAt: now.AddDate(0, 0, -1)},
		{OrderID: "ord-2", VisitID: "v1", SalesOfficerID: "off-1", ProductID: "p1", Quantity: 2, Amount: decimal.NewFromInt(200), Currency: "INR", CreatedAt: now.AddDate(0, 0, -2)},
		{OrderID: "ord-3", VisitID: "v1", SalesOfficerID: "off-1", ProductID: "p1", Quantity: 1, Amount: decimal.NewFromInt(100), Currency: "INR", CreatedAt: now.AddDate(0, 0, -10)},
		{OrderID: "ord-4", VisitID: "v2", SalesOfficerID: "off-2", ProductID: "p1", Quantity: 1, Amount: decimal.NewFromInt(300), Currency: "INR", CreatedAt: now.AddDate(0, 0, -30)},
	}
	for i := range lines {
		if err := db.Create(&lines[i]).Error; err != nil {
			t.Fatalf("seed line: %v", err)
		}
	}
	return db
}

func newTestService(db *gorm.DB, now time.Time) Service {
	return &dashboardService{repo: NewRepository(db), now: func() time.Time { return now }}
}

func TestGetSummary_Admin(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	db := setupDashboardDB(t, now)
	svc := newTestService(db, now)

	summary, err := svc.GetSummary(context.Background(), &domain.Identity{ID: "adm-1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}

	if summary.ActiveShops != 2 {
		t.Errorf("active shops = %d, want 2 (deleted shop excluded)", summary.ActiveShops)
	}
	if summary.ActiveOfficers != 2 {
		t.Errorf("active officers = %d, want 2 (inactive excluded)", summary.ActiveOfficers)
	}
	if summary.TotalOrders != 4 {
		t.Errorf("total orders = %d, want 4 distinct orders (not 5 lines)", summary.TotalOrders)
	}
	// The free line's 50 stays out of the sum.
	if !summary.TotalSales.Equal(decimal.NewFromInt(700)) {
		t.Errorf("total sales = %s, want 700", summary.TotalSales)
	}
	if summary.OrdersThisWeek != 2 || summary.OrdersLastWeek != 1 {
		t.Errorf("weeks = %d/%d, want 2/1", summary.OrdersThisWeek, summary.OrdersLastWeek)
	}
	if summary.WeekChangePercent != 100 {
		t.Errorf("change = %v, want 100", summary.WeekChangePercent)
	}
}

func TestGetSummary_ManagerScoped(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	db := setupDashboardDB(t, now)
	svc := newTestService(db, now)

	summary, err := svc.GetSummary(context.Background(), &domain.Identity{ID: "mgr-2", Role: domain.RoleAreaManager})
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}

	if summary.ActiveShops != 1 || summary.ActiveOfficers != 1 || summary.TotalOrders != 1 {
		t.Errorf("got shops=%d officers=%d orders=%d, want 1/1/1",
			summary.ActiveShops, summary.ActiveOfficers, summary.TotalOrders)
	}
	if !summary.TotalSales.Equal(decimal.NewFromInt(300)) {
		t.Errorf("total sales = %s, want 300", summary.TotalSales)
	}
	if summary.OrdersThisWeek != 0 || summary.OrdersLastWeek != 0 || summary.WeekChangePercent != 0 {
		t.Errorf("weeks = %d/%d (%v%%), want flat zero", summary.OrdersThisWeek, summary.OrdersLastWeek, summary.WeekChangePercent)
	}
}

func TestGetSummary_DeletedOrdersExcluded(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	db := setupDashboardDB(t, now)
	if err := db.Model(&domain.OrderLine{}).Where("order_id = ?", "ord-2").Update("is_deleted", true).Error; err != nil {
		t.Fatalf("flag order: %v", err)
	}
	svc := newTestService(db, now)

	summary, err := svc.GetSummary(context.Background(), &domain.Identity{ID: "adm-1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if summary.TotalOrders != 3 {
		t.Errorf("total orders = %d, want 3", summary.TotalOrders)
	}
	if !summary.TotalSales.Equal(decimal.NewFromInt(500)) {
		t.Errorf("total sales = %s, want 500", summary.TotalSales)
	}
}
