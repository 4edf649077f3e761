package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/pkg"
)

const identityContextKey = "identity"

// TokenValidator validates a bearer token and returns the caller's identity.
type TokenValidator interface {
	ValidateToken(tokenString string) (*domain.Identity, error)
}

// Auth returns a gin middleware that requires a valid Bearer token and stores
// the resulting identity in the gin context. Requests without a valid token
// are rejected with 401.
func Auth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		ident, err := validator.ValidateToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		c.Set(identityContextKey, ident)
		c.Next()
	}
}

// RequireRole returns a gin middleware that rejects callers whose role is not
// in the given list with 403. It must run after Auth.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := GetIdentity(c)
		if ident == nil {
			abortUnauthorized(c, "authentication required")
			return
		}

		for _, required := range roles {
			if ident.Role == required {
				c.Next()
				return
			}
		}

		pkg.Error(c, domain.NewAppError(domain.CodeForbidden, "insufficient permissions", nil))
		c.Abort()
	}
}

// GetIdentity extracts the authenticated identity from the gin context.
// Returns nil if the request is unauthenticated.
func GetIdentity(c *gin.Context) *domain.Identity {
	v, exists := c.Get(identityContextKey)
	if !exists {
		return nil
	}
	ident, ok := v.(*domain.Identity)
	if !ok {
		return nil
	}
	return ident
}

func abortUnauthorized(c *gin.Context, message string) {
	pkg.Error(c, domain.NewAppError(domain.CodeUnauthorized, message, nil))
	c.Abort()
}
