package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fieldsales/salesadmin/internal/domain"
)

func row(orderID, product string, amount float64, freeQty int) domain.OrderRow {
	return domain.OrderRow{
		OrderID:          orderID,
		CreatedAt:        time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Currency:         "INR",
		SalesOfficerID:   "off-1",
		SalesOfficerName: "Asha",
		ShopName:         "Alpha Mart",
		ProductID:        product,
		ProductName:      product,
		Quantity:         2,
		Amount:           decimal.NewFromFloat(amount),
		FreeQty:          freeQty,
	}
}

func TestAggregateOrders_GroupsByOrderID(t *testing.T) {
	rows := []domain.OrderRow{
		row("ord-1", "soap", 100, 0),
		row("ord-1", "shampoo", 250, 0),
		row("ord-2", "soap", 100, 0),
	}

	orders := aggregateOrders(rows)

	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}
	if len(orders[0].Products) != 2 {
		t.Errorf("ord-1 has %d lines, want 2", len(orders[0].Products))
	}
	if !orders[0].TotalAmount.Equal(decimal.NewFromInt(350)) {
		t.Errorf("ord-1 total = %s, want 350", orders[0].TotalAmount)
	}
	if orders[0].SalesOfficerName != "Asha" || orders[0].ShopName != "Alpha Mart" {
		t.Errorf("scalar fields not seeded from first row: %+v", orders[0])
	}
}

func TestAggregateOrders_FirstAppearanceOrder(t *testing.T) {
	rows := []domain.OrderRow{
		row("ord-b", "soap", 10, 0),
		row("ord-a", "soap", 10, 0),
		row("ord-b", "shampoo", 10, 0),
		row("ord-c", "soap", 10, 0),
		row("ord-a", "shampoo", 10, 0),
	}

	orders := aggregateOrders(rows)

	want := []string{"ord-b", "ord-a", "ord-c"}
	if len(orders) != len(want) {
		t.Fatalf("got %d orders, want %d", len(orders), len(want))
	}
	for i, id := range want {
		if orders[i].OrderID != id {
			t.Errorf("position %d = %s, want %s", i, orders[i].OrderID, id)
		}
	}
}

// Free lines stay visible in the product list but never contribute to the
// order total.
func TestAggregateOrders_FreeLinesExcludedFromTotal(t *testing.T) {
	rows := []domain.OrderRow{
		row("ord-1", "soap", 100, 0),
		row("ord-1", "soap", 100, 2),
		row("ord-1", "shampoo", 50, 0),
	}

	orders := aggregateOrders(rows)

	if len(orders) != 1 {
		t.Fatalf("got %d orders, want 1", len(orders))
	}
	if !orders[0].TotalAmount.Equal(decimal.NewFromInt(150)) {
		t.Errorf("total = %s, want 150 (free line must not count)", orders[0].TotalAmount)
	}
	if len(orders[0].Products) != 3 {
		t.Errorf("free line must remain in products, got %d lines", len(orders[0].Products))
	}
}

// The sum of all order totals must equal the sum of all non-free line amounts:
// aggregation neither loses nor double-counts money.
func TestAggregateOrders_TotalConservation(t *testing.T) {
	rows := []domain.OrderRow{
		row("ord-1", "soap", 100, 0),
		row("ord-1", "gift", 75, 1),
		row("ord-2", "shampoo", 250.50, 0),
		row("ord-2", "soap", 99.50, 0),
		row("ord-3", "brush", 10, 0),
	}

	wantTotal := decimal.Zero
	for _, r := range rows {
		if r.FreeQty == 0 {
			wantTotal = wantTotal.Add(r.Amount)
		}
	}

	got := decimal.Zero
	lines := 0
	for _, o := range aggregateOrders(rows) {
		got = got.Add(o.TotalAmount)
		lines += len(o.Products)
	}

	if !got.Equal(wantTotal) {
		t.Errorf("sum of totals = %s, want %s", got, wantTotal)
	}
	if lines != len(rows) {
		t.Errorf("aggregation kept %d lines, want %d", lines, len(rows))
	}
}

func TestAggregateOrders_Empty(t *testing.T) {
	orders := aggregateOrders(nil)
	if len(orders) != 0 {
		t.Errorf("got %d orders from no rows", len(orders))
	}
}
