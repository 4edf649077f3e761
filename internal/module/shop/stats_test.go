package shop

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fieldsales/salesadmin/internal/domain"
)

func statsRow(orderID, productID string, amount float64, freeQty int, created time.Time) domain.OrderRow {
	return domain.OrderRow{
		OrderID:          orderID,
		CreatedAt:        created,
		Currency:         "INR",
		SalesOfficerID:   "off-1",
		SalesOfficerName: "Asha",
		ProductID:        productID,
		ProductName:      productID,
		Quantity:         1,
		Amount:           decimal.NewFromFloat(amount),
		FreeQty:          freeQty,
	}
}

func TestBuildShopDetails_TopProducts(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := []domain.OrderRow{
		statsRow("ord-1", "soap", 100, 0, base),
		statsRow("ord-1", "shampoo", 300, 0, base),
		statsRow("ord-2", "soap", 150, 0, base),
		statsRow("ord-2", "brush", 50, 0, base),
		statsRow("ord-3", "comb", 10, 0, base),
		statsRow("ord-3", "oil", 5, 0, base),
	}

	details := buildShopDetails(domain.Shop{ID: "shop-1"}, nil, rows)

	if len(details.TopProducts) != 3 {
		t.Fatalf("got %d top products, want 3", len(details.TopProducts))
	}
	// shampoo 300, soap 250, brush 50.
	want := []string{"shampoo", "soap", "brush"}
	for i, name := range want {
		if details.TopProducts[i].ProductName != name {
			t.Errorf("rank %d = %s, want %s", i+1, details.TopProducts[i].ProductName, name)
		}
	}
	if !details.TopProducts[1].Amount.Equal(decimal.NewFromInt(250)) {
		t.Errorf("soap amount = %s, want 250", details.TopProducts[1].Amount)
	}
}

func TestBuildShopDetails_FreeLinesExcluded(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := []domain.OrderRow{
		statsRow("ord-1", "soap", 100, 0, base),
		statsRow("ord-1", "soap", 100, 2, base),
	}

	details := buildShopDetails(domain.Shop{ID: "shop-1"}, nil, rows)

	if !details.TotalSales.Equal(decimal.NewFromInt(100)) {
		t.Errorf("total sales = %s, want 100", details.TotalSales)
	}
	if len(details.TopProducts) != 1 || !details.TopProducts[0].Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("free line leaked into product ranking: %+v", details.TopProducts)
	}
	// The free line still counts as a line of the order.
	if details.RecentOrders[0].ProductCount != 2 {
		t.Errorf("product count = %d, want 2", details.RecentOrders[0].ProductCount)
	}
}

func TestBuildShopDetails_RecentOrdersCapped(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	var rows []domain.OrderRow
	// Newest first, as the query returns them.
	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("ord-%d", i)
		rows = append(rows, statsRow(id, "soap", 100, 0, base.Add(-time.Duration(i)*time.Hour)))
	}

	details := buildShopDetails(domain.Shop{ID: "shop-1"}, nil, rows)

	if len(details.RecentOrders) != recentOrderLimit {
		t.Fatalf("got %d recent orders, want %d", len(details.RecentOrders), recentOrderLimit)
	}
	if details.RecentOrders[0].OrderID != "ord-0" {
		t.Errorf("first recent order = %s, want the newest", details.RecentOrders[0].OrderID)
	}
	// All eight orders still count toward the total.
	if !details.TotalSales.Equal(decimal.NewFromInt(800)) {
		t.Errorf("total sales = %s, want 800", details.TotalSales)
	}
}

func TestBuildShopDetails_TopOfficers(t *testing.T) {
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := []domain.OrderRow{
		statsRow("ord-1", "soap", 100, 0, base),
		statsRow("ord-2", "soap", 300, 0, base),
	}
	rows[1].SalesOfficerID = "off-2"
	rows[1].SalesOfficerName = "Ravi"

	visits := []domain.Visit{
		{ID: "v1", ShopID: "shop-1", SalesOfficerID: "off-1"},
		{ID: "v2", ShopID: "shop-1", SalesOfficerID: "off-1"},
		{ID: "v3", ShopID: "shop-1", SalesOfficerID: "off-2"},
	}

	details := buildShopDetails(domain.Shop{ID: "shop-1"}, visits, rows)

	if len(details.TopOfficers) != 2 {
		t.Fatalf("got %d top officers, want 2", len(details.TopOfficers))
	}
	top := details.TopOfficers[0]
	if top.SalesOfficerID != "off-2" || !top.TotalAmount.Equal(decimal.NewFromInt(300)) {
		t.Errorf("top officer = %+v", top)
	}
	second := details.TopOfficers[1]
	if second.VisitCount != 2 || second.OrderCount != 1 {
		t.Errorf("officer stats = %+v, want 2 visits and 1 order", second)
	}
}

func TestBuildShopDetails_Empty(t *testing.T) {
	details := buildShopDetails(domain.Shop{ID: "shop-1"}, nil, nil)

	if len(details.RecentOrders) != 0 || len(details.TopProducts) != 0 || len(details.TopOfficers) != 0 {
		t.Errorf("empty input produced non-empty aggregates: %+v", details)
	}
	if !details.TotalSales.Equal(decimal.Zero) {
		t.Errorf("total sales = %s, want 0", details.TotalSales)
	}
}
