package domain

import (
	"context"
	"time"
)

// AreaSalesManager owns a team of sales officers and signs in with a phone
// number. Managing this resource is admin-only.
type AreaSalesManager struct {
	ID           string     `gorm:"primaryKey;size:36" json:"asm_user_id"`
	EmployeeID   string     `gorm:"size:50;uniqueIndex;not null" json:"employee_id"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Address      string     `gorm:"size:500" json:"address"`
	PhoneNumber  string     `gorm:"size:32;uniqueIndex;not null" json:"phone_number"`
	PasswordHash string     `gorm:"size:255" json:"-"`
	DOB          *time.Time `json:"dob"`
	Photo        string     `gorm:"size:500" json:"photo"`
	IDType       string     `gorm:"size:50" json:"id_type"`
	IDNo         string     `gorm:"size:100" json:"id_no"`
	IsActive     bool       `gorm:"index" json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName keeps the original collection name.
func (AreaSalesManager) TableName() string { return "area_sales_managers" }

// NewAreaSalesManager holds the provisioning payload for creating a manager.
type NewAreaSalesManager struct {
	Password    string
	EmployeeID  string
	Name        string
	Address     string
	PhoneNumber string
	DOB         *time.Time
	IDType      string
	IDNo        string
}

// AreaSalesManagerRepository defines the data access interface for managers.
type AreaSalesManagerRepository interface {
	List(ctx context.Context, req PageRequest) (*PageResult[AreaSalesManager], error)
	GetByID(ctx context.Context, id string) (*AreaSalesManager, error)
	GetByPhone(ctx context.Context, phone string) (*AreaSalesManager, error)
	Create(ctx context.Context, manager *AreaSalesManager) error
	Deactivate(ctx context.Context, id string) error
	All(ctx context.Context, req PageRequest) ([]AreaSalesManager, error)
	ActiveOptions(ctx context.Context) ([]FilterOption, error)
}

// AreaSalesManagerService defines the business logic interface for managers.
type AreaSalesManagerService interface {
	ListManagers(ctx context.Context, req PageRequest) (*PageResult[AreaSalesManager], error)
	GetManager(ctx context.Context, id string) (*AreaSalesManager, error)
	CreateManager(ctx context.Context, input NewAreaSalesManager) (*AreaSalesManager, error)
	DeactivateManager(ctx context.Context, id string) error
	ExportManagers(ctx context.Context, req PageRequest) ([]AreaSalesManager, error)
	ManagerOptions(ctx context.Context) ([]FilterOption, error)
}
