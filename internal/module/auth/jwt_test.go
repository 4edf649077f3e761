package auth

import (
	"testing"
	"time"

	"github.com/fieldsales/salesadmin/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)
	ident := &domain.Identity{ID: "mgr-1", Name: "Meera", Role: domain.RoleAreaManager}

	token, expiresAt, err := svc.GenerateToken(ident)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Error("token already expired at issuance")
	}

	got, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if got.ID != ident.ID || got.Name != ident.Name || got.Role != ident.Role {
		t.Errorf("got %+v, want %+v", got, ident)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewTokenService(testSecret, time.Hour)
	verifier := NewTokenService("another-secret-another-secret-xx", time.Hour)

	token, _, err := issuer.GenerateToken(&domain.Identity{ID: "adm-1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewTokenService(testSecret, -time.Minute)

	token, _, err := svc.GenerateToken(&domain.Identity{ID: "adm-1", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)
	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Error("expected garbage token to be rejected")
	}
}
