package auth

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/module/manager"
)

func setupAuthService(t *testing.T) Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Admin{}, &domain.AreaSalesManager{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	fixtures := []any{
		&domain.Admin{ID: "adm-1", Name: "Root", Email: "root@example.com", PasswordHash: string(hash), IsActive: true},
		&domain.Admin{ID: "adm-2", Name: "Gone", Email: "gone@example.com", PasswordHash: string(hash), IsActive: false},
		&domain.AreaSalesManager{ID: "mgr-1", EmployeeID: "M1", Name: "Meera", PhoneNumber: "9876500001", PasswordHash: string(hash), IsActive: true},
		&domain.AreaSalesManager{ID: "mgr-2", EmployeeID: "M2", Name: "Idle", PhoneNumber: "9876500002", PasswordHash: string(hash), IsActive: false},
	}
	for _, f := range fixtures {
		if err := db.Create(f).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	tokens := NewTokenService(testSecret, time.Hour)
	return NewService(tokens, NewAdminRepository(db), manager.NewRepository(db))
}

func TestLogin_Admin(t *testing.T) {
	svc := setupAuthService(t)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Role:     "admin",
		Email:    "root@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token == "" {
		t.Error("empty token")
	}
	if resp.ID != "adm-1" || resp.Role != "admin" {
		t.Errorf("got %+v", resp)
	}
}

func TestLogin_AreaManager(t *testing.T) {
	svc := setupAuthService(t)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Role:     "area_manager",
		Phone:    "9876500001",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.ID != "mgr-1" || resp.Role != "area_manager" {
		t.Errorf("got %+v", resp)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Role:     "admin",
		Email:    "root@example.com",
		Password: "wrong-password",
	})
	if !domain.IsUnauthorized(err) {
		t.Errorf("expected unauthorized, got %v", err)
	}
}

// Unknown accounts and wrong passwords are indistinguishable to the caller.
func TestLogin_UnknownAccount(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Role:     "admin",
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	if !domain.IsUnauthorized(err) {
		t.Errorf("expected unauthorized, got %v", err)
	}
}

func TestLogin_InactiveAccount(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginRequest{Role: "admin", Email: "gone@example.com", Password: "correct-horse"})
	if !domain.IsUnauthorized(err) {
		t.Errorf("inactive admin: expected unauthorized, got %v", err)
	}

	_, err = svc.Login(ctx, LoginRequest{Role: "area_manager", Phone: "9876500002", Password: "correct-horse"})
	if !domain.IsUnauthorized(err) {
		t.Errorf("inactive manager: expected unauthorized, got %v", err)
	}
}

// The declared role selects the account table, so valid admin credentials
// presented under the manager role fail.
func TestLogin_RoleMismatch(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.Login(context.Background(), LoginRequest{
		Role:     "area_manager",
		Phone:    "root@example.com",
		Password: "correct-horse",
	})
	if !domain.IsUnauthorized(err) {
		t.Errorf("expected unauthorized, got %v", err)
	}
}

func TestLogin_MissingCredentialField(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, LoginRequest{Role: "admin", Password: "correct-horse"})
	if !domain.IsValidation(err) {
		t.Errorf("admin without email: expected validation error, got %v", err)
	}

	_, err = svc.Login(ctx, LoginRequest{Role: "area_manager", Password: "correct-horse"})
	if !domain.IsValidation(err) {
		t.Errorf("manager without phone: expected validation error, got %v", err)
	}

	_, err = svc.Login(ctx, LoginRequest{Role: "superuser", Password: "correct-horse"})
	if !domain.IsValidation(err) {
		t.Errorf("unknown role: expected validation error, got %v", err)
	}
}
