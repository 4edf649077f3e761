package auth

// LoginRequest represents the input for signing in. Admins sign in with
// email, area sales managers with phone; the declared role decides which
// account table is checked.
type LoginRequest struct {
	Role     string `json:"role" form:"role" binding:"required,oneof=admin area_manager"`
	Email    string `json:"email" form:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty,min=4,max=32"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
}

// TokenResponse represents the authentication token returned after login.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
}
