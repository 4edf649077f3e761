package domain

import (
	"context"
	"time"
)

// Admin is a back-office administrator account. Admins sign in with email.
type Admin struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName keeps the original collection name.
func (Admin) TableName() string { return "admins" }

// AdminRepository defines the data access interface for admin accounts.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*Admin, error)
}
