package manager

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/middleware"
)

// tokenStub maps bearer tokens to identities so route tests can exercise the
// real auth middleware without minting JWTs.
type tokenStub map[string]*domain.Identity

func (s tokenStub) ValidateToken(token string) (*domain.Identity, error) {
	if ident, ok := s[token]; ok {
		return ident, nil
	}
	return nil, errors.New("invalid token")
}

func setupManagerRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.AreaSalesManager{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Create(&domain.AreaSalesManager{ID: "mgr-1", EmployeeID: "M1", Name: "Meera", PhoneNumber: "111", IsActive: true}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	tokens := tokenStub{
		"admin-token": {ID: "adm-1", Name: "Root", Role: domain.RoleAdmin},
		"asm-token":   {ID: "mgr-1", Name: "Meera", Role: domain.RoleAreaManager},
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1", middleware.Auth(tokens))
	NewModule(NewHandler(NewService(NewRepository(db)))).RegisterRoutes(api)
	return r, db
}

func doRequest(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Every manager route is admin-only; area sales managers get 403 even for
// reads.
func TestManagerRoutes_AdminOnly(t *testing.T) {
	r, _ := setupManagerRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/area-managers"},
		{http.MethodGet, "/api/v1/area-managers/mgr-1"},
		{http.MethodGet, "/api/v1/area-managers/export"},
		{http.MethodGet, "/api/v1/area-managers/options"},
		{http.MethodDelete, "/api/v1/area-managers/mgr-1"},
	}
	for _, tc := range cases {
		if w := doRequest(r, tc.method, tc.path, "asm-token", nil); w.Code != http.StatusForbidden {
			t.Errorf("%s %s as ASM: status = %d, want 403", tc.method, tc.path, w.Code)
		}
		if w := doRequest(r, tc.method, tc.path, "", nil); w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s anonymous: status = %d, want 401", tc.method, tc.path, w.Code)
		}
	}

	if w := doRequest(r, http.MethodGet, "/api/v1/area-managers", "admin-token", nil); w.Code != http.StatusOK {
		t.Errorf("admin list: status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestCreateManager_EndToEnd(t *testing.T) {
	r, db := setupManagerRouter(t)

	payload := gin.H{
		"employee_id": "M9",
		"name":        "Tara",
		"phone":       "9876500009",
		"password":    "long-enough-password",
	}
	w := doRequest(r, http.MethodPost, "/api/v1/area-managers", "admin-token", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var created domain.AreaSalesManager
	if err := db.First(&created, "employee_id = ?", "M9").Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if created.PasswordHash == "" || created.PasswordHash == "long-enough-password" {
		t.Error("password stored unhashed")
	}
	if !created.IsActive {
		t.Error("new manager should start active")
	}

	// Duplicate phone is a conflict.
	w = doRequest(r, http.MethodPost, "/api/v1/area-managers", "admin-token", payload)
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate: status = %d, want 409: %s", w.Code, w.Body.String())
	}

	// Short password fails validation before the service runs.
	payload["phone"], payload["employee_id"], payload["password"] = "123", "M10", "short"
	w = doRequest(r, http.MethodPost, "/api/v1/area-managers", "admin-token", payload)
	if w.Code != http.StatusBadRequest {
		t.Errorf("short password: status = %d, want 400", w.Code)
	}
}

func TestDeactivateManager(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.AreaSalesManager{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Create(&domain.AreaSalesManager{ID: "mgr-1", EmployeeID: "M1", Name: "Meera", PhoneNumber: "111", IsActive: true}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := NewService(NewRepository(db))
	ctx := context.Background()

	if err := svc.DeactivateManager(ctx, "mgr-1"); err != nil {
		t.Fatalf("DeactivateManager: %v", err)
	}
	if err := svc.DeactivateManager(ctx, "mgr-1"); err != nil {
		t.Errorf("repeat deactivate should succeed, got %v", err)
	}
	if err := svc.DeactivateManager(ctx, "no-such"); !domain.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}

	// Inactive managers drop out of options and the default listing; asking
	// for active=false brings them back.
	options, err := svc.ManagerOptions(ctx)
	if err != nil {
		t.Fatalf("ManagerOptions: %v", err)
	}
	if len(options) != 0 {
		t.Errorf("options = %+v, want empty", options)
	}
	result, err := svc.ListManagers(ctx, domain.PageRequest{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("ListManagers: %v", err)
	}
	if result.Total != 0 {
		t.Errorf("default total = %d, want 0", result.Total)
	}
	result, err = svc.ListManagers(ctx, domain.PageRequest{
		Page: 1, PageSize: 10,
		Filter: map[string]string{"active": "false"},
	})
	if err != nil {
		t.Fatalf("ListManagers: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("active=false total = %d, want 1", result.Total)
	}
}
