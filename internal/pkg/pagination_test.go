package pkg

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/fieldsales/salesadmin/internal/domain"
)

func TestClampPage(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		total    int64
		want     int
	}{
		{"within range", 2, 10, 25, 2},
		{"beyond last page", 5, 10, 25, 3},
		{"exactly last page", 3, 10, 25, 3},
		{"empty result set", 4, 10, 0, 1},
		{"zero page", 0, 10, 25, 1},
		{"deletion shrinks to previous page", 2, 10, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPage(tt.page, tt.pageSize, tt.total); got != tt.want {
				t.Errorf("ClampPage(%d, %d, %d) = %d, want %d", tt.page, tt.pageSize, tt.total, got, tt.want)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	if got := TotalPages(25, 10); got != 3 {
		t.Errorf("TotalPages(25, 10) = %d, want 3", got)
	}
	if got := TotalPages(0, 10); got != 0 {
		t.Errorf("TotalPages(0, 10) = %d, want 0", got)
	}
	if got := TotalPages(10, 10); got != 1 {
		t.Errorf("TotalPages(10, 10) = %d, want 1", got)
	}
	if got := TotalPages(5, 0); got != 0 {
		t.Errorf("TotalPages(5, 0) = %d, want 0", got)
	}
}

func TestParseSort(t *testing.T) {
	allowed := []string{"name", "created_at"}

	field, dir, ok := parseSort("name:asc", allowed)
	if !ok || field != "name" || dir != "asc" {
		t.Errorf("parseSort(name:asc) = %q %q %v", field, dir, ok)
	}

	field, dir, ok = parseSort("created_at:DESC", allowed)
	if !ok || field != "created_at" || dir != "desc" {
		t.Errorf("parseSort(created_at:DESC) = %q %q %v", field, dir, ok)
	}

	// Not in the allow list.
	if _, _, ok := parseSort("password_hash:asc", allowed); ok {
		t.Error("expected disallowed field to be rejected")
	}

	// Injection attempt.
	if _, _, ok := parseSort("name; DROP TABLE users:asc", allowed); ok {
		t.Error("expected invalid field name to be rejected")
	}

	// Bad direction.
	if _, _, ok := parseSort("name:sideways", allowed); ok {
		t.Error("expected invalid direction to be rejected")
	}

	// No separator.
	if _, _, ok := parseSort("name", allowed); ok {
		t.Error("expected missing direction to be rejected")
	}
}

func TestParsePageRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/shops?page=2&page_size=20&sort=name:asc&q=alpha&city=Pune&active=false", nil)

	req := ParsePageRequest(c)

	if req.Page != 2 || req.PageSize != 20 {
		t.Errorf("got page=%d size=%d, want 2/20", req.Page, req.PageSize)
	}
	if req.Sort != "name:asc" {
		t.Errorf("got sort %q", req.Sort)
	}
	if req.Search != "alpha" {
		t.Errorf("got search %q", req.Search)
	}
	if req.Filter["city"] != "Pune" {
		t.Errorf("expected city filter, got %v", req.Filter)
	}
	if req.Filter["active"] != "false" {
		t.Errorf("expected active filter, got %v", req.Filter)
	}
	if _, ok := req.Filter["page"]; ok {
		t.Error("reserved param leaked into filters")
	}
}

func TestParsePageRequest_Defaults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/shops?page=-3&page_size=9999", nil)

	req := ParsePageRequest(c)

	if req.Page != 1 {
		t.Errorf("negative page should default to 1, got %d", req.Page)
	}
	if req.PageSize != maxPageSize {
		t.Errorf("oversized page_size should cap at %d, got %d", maxPageSize, req.PageSize)
	}
}

func TestNewPageResult(t *testing.T) {
	req := domain.PageRequest{Page: 2, PageSize: 10}
	result := NewPageResult([]string{"a", "b"}, 25, req)

	if result.Total != 25 || result.Page != 2 || result.TotalPages != 3 {
		t.Errorf("got %+v", result)
	}

	empty := NewPageResult[string](nil, 0, req)
	if empty.Items == nil {
		t.Error("items should be an empty slice, not nil")
	}
}
