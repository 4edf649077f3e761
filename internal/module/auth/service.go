package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/fieldsales/salesadmin/internal/domain"
)

// Service defines the authentication operations.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
}

// authService implements Service. Sign-in is role-verified: the declared role
// selects the account table, so an ASM credential can never yield an admin
// token and vice versa.
type authService struct {
	tokens      *TokenService
	adminRepo   domain.AdminRepository
	managerRepo domain.AreaSalesManagerRepository
}

// NewService creates a new auth Service.
func NewService(tokens *TokenService, adminRepo domain.AdminRepository, managerRepo domain.AreaSalesManagerRepository) Service {
	return &authService{
		tokens:      tokens,
		adminRepo:   adminRepo,
		managerRepo: managerRepo,
	}
}

// Login authenticates against the table matching the declared role and
// returns a signed token. Inactive accounts are rejected.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	var ident *domain.Identity

	switch domain.Role(req.Role) {
	case domain.RoleAdmin:
		email := strings.TrimSpace(req.Email)
		if email == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "email is required for admin login", nil)
		}
		admin, err := s.adminRepo.GetByEmail(ctx, email)
		if err != nil {
			// Don't reveal whether the account exists — always return unauthorized.
			if domain.IsNotFound(err) {
				return nil, domain.ErrUnauthorized
			}
			return nil, err
		}
		if !admin.IsActive {
			return nil, domain.ErrUnauthorized
		}
		if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
			return nil, domain.ErrUnauthorized
		}
		ident = &domain.Identity{ID: admin.ID, Name: admin.Name, Role: domain.RoleAdmin}

	case domain.RoleAreaManager:
		phone := strings.TrimSpace(req.Phone)
		if phone == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "phone is required for area manager login", nil)
		}
		manager, err := s.managerRepo.GetByPhone(ctx, phone)
		if err != nil {
			if domain.IsNotFound(err) {
				return nil, domain.ErrUnauthorized
			}
			return nil, err
		}
		if !manager.IsActive {
			return nil, domain.ErrUnauthorized
		}
		if err := bcrypt.CompareHashAndPassword([]byte(manager.PasswordHash), []byte(req.Password)); err != nil {
			return nil, domain.ErrUnauthorized
		}
		ident = &domain.Identity{ID: manager.ID, Name: manager.Name, Role: domain.RoleAreaManager}

	default:
		return nil, domain.NewAppError(domain.CodeValidation, "unknown role", nil)
	}

	token, expiresAt, err := s.tokens.GenerateToken(ident)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to generate token", err)
	}

	return &TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		ID:        ident.ID,
		Name:      ident.Name,
		Role:      string(ident.Role),
	}, nil
}
