package pkg

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/fieldsales/salesadmin/internal/domain"
)

type widget struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:100"`
	City     string `gorm:"size:100"`
	IsActive bool
}

var widgetConfig = ListConfig{
	SearchFields: []string{"name", "city"},
	SortFields:   []string{"name", "city"},
	FilterFields: []string{"city"},
	DefaultSort:  "name:asc",
	TieBreak:     "id",
	SoftFlag:     "is_active",
	SoftVisible:  true,
}

func setupListDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&widget{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedWidgets(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		w := widget{Name: fmt.Sprintf("widget-%02d", i), City: "Pune", IsActive: true}
		if err := db.Create(&w).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestListPage_Basic(t *testing.T) {
	db := setupListDB(t)
	seedWidgets(t, db, 25)
	ctx := context.Background()

	req := domain.PageRequest{Page: 2, PageSize: 10}
	result, err := ListPage[widget](ctx, db.Model(&widget{}), req, widgetConfig)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}

	if result.Total != 25 {
		t.Errorf("total = %d, want 25", result.Total)
	}
	if result.TotalPages != 3 {
		t.Errorf("total pages = %d, want 3", result.TotalPages)
	}
	if len(result.Items) != 10 {
		t.Fatalf("items = %d, want 10", len(result.Items))
	}
	if result.Items[0].Name != "widget-11" {
		t.Errorf("first item on page 2 = %q, want widget-11", result.Items[0].Name)
	}
}

// Deleting a row while sitting on the last page must land the caller on the
// new last page rather than an empty one.
func TestListPage_ClampAfterDeletion(t *testing.T) {
	db := setupListDB(t)
	seedWidgets(t, db, 11)
	ctx := context.Background()

	req := domain.PageRequest{Page: 2, PageSize: 10}
	result, err := ListPage[widget](ctx, db.Model(&widget{}), req, widgetConfig)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if result.Page != 2 || len(result.Items) != 1 {
		t.Fatalf("before deletion: page=%d items=%d", result.Page, len(result.Items))
	}

	// Deactivate one row; the total drops to 10 and page 2 no longer exists.
	if err := db.Model(&widget{}).Where("name = ?", "widget-11").Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	result, err = ListPage[widget](ctx, db.Model(&widget{}), req, widgetConfig)
	if err != nil {
		t.Fatalf("ListPage after deletion: %v", err)
	}
	if result.Page != 1 {
		t.Errorf("page = %d, want clamped to 1", result.Page)
	}
	if result.Total != 10 {
		t.Errorf("total = %d, want 10", result.Total)
	}
	if len(result.Items) != 10 {
		t.Errorf("items = %d, want 10", len(result.Items))
	}
}

// Consecutive pages must be disjoint and cover all rows under the default
// deterministic sort.
func TestListPage_PagesAreDisjoint(t *testing.T) {
	db := setupListDB(t)
	seedWidgets(t, db, 25)
	ctx := context.Background()

	seen := make(map[string]bool)
	for page := 1; page <= 3; page++ {
		req := domain.PageRequest{Page: page, PageSize: 10}
		result, err := ListPage[widget](ctx, db.Model(&widget{}), req, widgetConfig)
		if err != nil {
			t.Fatalf("ListPage page %d: %v", page, err)
		}
		for _, w := range result.Items {
			if seen[w.Name] {
				t.Errorf("item %q appeared on more than one page", w.Name)
			}
			seen[w.Name] = true
		}
	}
	if len(seen) != 25 {
		t.Errorf("pages covered %d rows, want 25", len(seen))
	}
}

func TestListPage_SortToggleReverses(t *testing.T) {
	db := setupListDB(t)
	seedWidgets(t, db, 5)
	ctx := context.Background()

	asc, err := ListPage[widget](ctx, db.Model(&widget{}), domain.PageRequest{Page: 1, PageSize: 10, Sort: "name:asc"}, widgetConfig)
	if err != nil {
		t.Fatalf("ListPage asc: %v", err)
	}
	desc, err := ListPage[widget](ctx, db.Model(&widget{}), domain.PageRequest{Page: 1, PageSize: 10, Sort: "name:desc"}, widgetConfig)
	if err != nil {
		t.Fatalf("ListPage desc: %v", err)
	}

	n := len(asc.Items)
	if n != len(desc.Items) {
		t.Fatalf("asc %d items, desc %d items", n, len(desc.Items))
	}
	for i := range asc.Items {
		if asc.Items[i].Name != desc.Items[n-1-i].Name {
			t.Errorf("desc order is not the reverse of asc at index %d", i)
		}
	}
}

func TestListPage_SearchAndFilter(t *testing.T) {
	db := setupListDB(t)
	ctx := context.Background()

	rows := []widget{
		{Name: "Alpha Mart", City: "Pune", IsActive: true},
		{Name: "Beta Store", City: "Pune", IsActive: true},
		{Name: "alpha corner", City: "Mumbai", IsActive: true},
		{Name: "Gamma Shop", City: "Mumbai", IsActive: false},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	// Search is case-insensitive and ORs across fields.
	req := domain.PageRequest{Page: 1, PageSize: 10, Search: "ALPHA"}
	result, err := ListPage[widget](ctx, db.Model(&widget{}), req, widgetConfig)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("search total = %d, want 2", result.Total)
	}

	// Filters AND with search: narrowing can only shrink the result.
	req.Filter = map[string]string{"city": "Pune"}
	narrowed, err := ListPage[widget](ctx, db.Model(&widget{}), req, widgetConfig)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if narrowed.Total != 1 {
		t.Errorf("narrowed total = %d, want 1", narrowed.Total)
	}
	if narrowed.Total > result.Total {
		t.Error("adding a filter must never grow the result")
	}

	// Inactive rows are hidden by default and shown with active=false.
	all, err := ListPage[widget](ctx, db.Model(&widget{}), domain.PageRequest{Page: 1, PageSize: 10, Filter: map[string]string{"active": "false"}}, widgetConfig)
	if err != nil {
		t.Fatalf("ListPage: %v", err)
	}
	if all.Total != 4 {
		t.Errorf("total with active=false = %d, want 4", all.Total)
	}
}

func TestListAll_ReturnsEverythingFiltered(t *testing.T) {
	db := setupListDB(t)
	seedWidgets(t, db, 25)
	ctx := context.Background()

	items, err := ListAll[widget](ctx, db.Model(&widget{}), domain.PageRequest{Page: 3, PageSize: 10}, widgetConfig)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(items) != 25 {
		t.Errorf("ListAll returned %d rows, want all 25 regardless of page", len(items))
	}
}
