package domain

import (
	"context"
	"time"
)

// SalesOfficer is a field agent who visits shops and places orders.
// Each officer reports to exactly one area sales manager.
type SalesOfficer struct {
	ID                 string     `gorm:"primaryKey;size:36" json:"sales_officer_id"`
	EmployeeID         string     `gorm:"size:50;uniqueIndex;not null" json:"employee_id"`
	Name               string     `gorm:"size:255;not null" json:"name"`
	Address            string     `gorm:"size:500" json:"address"`
	PhoneNumber        string     `gorm:"size:32;uniqueIndex;not null" json:"phone_number"`
	PasswordHash       string     `gorm:"size:255" json:"-"`
	DOB                *time.Time `json:"dob"`
	Photo              string     `gorm:"size:500" json:"photo"`
	IDType             string     `gorm:"size:50" json:"id_type"`
	IDNo               string     `gorm:"size:100" json:"id_no"`
	IsActive           bool       `gorm:"index" json:"is_active"`
	ReportingManagerID string     `gorm:"size:36;index" json:"reporting_manager_id"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// ReportingManagerName is denormalized on read; not a column.
	ReportingManagerName string `gorm:"-" json:"reporting_manager_name,omitempty"`
}

// NewSalesOfficer holds the provisioning payload for creating an officer.
type NewSalesOfficer struct {
	Password           string
	EmployeeID         string
	Name               string
	Address            string
	PhoneNumber        string
	DOB                *time.Time
	IDType             string
	IDNo               string
	ReportingManagerID string
}

// SalesOfficerRepository defines the data access interface for sales officers.
type SalesOfficerRepository interface {
	List(ctx context.Context, ident *Identity, req PageRequest) (*PageResult[SalesOfficer], error)
	GetByID(ctx context.Context, ident *Identity, id string) (*SalesOfficer, error)
	GetByPhone(ctx context.Context, phone string) (*SalesOfficer, error)
	Create(ctx context.Context, officer *SalesOfficer) error
	Deactivate(ctx context.Context, id string) error
	All(ctx context.Context, ident *Identity, req PageRequest) ([]SalesOfficer, error)
	// ActiveOptions returns active officers as filter options, name order.
	ActiveOptions(ctx context.Context, ident *Identity) ([]FilterOption, error)
}

// SalesOfficerService defines the business logic interface for sales officers.
type SalesOfficerService interface {
	ListOfficers(ctx context.Context, ident *Identity, req PageRequest) (*PageResult[SalesOfficer], error)
	GetOfficer(ctx context.Context, ident *Identity, id string) (*SalesOfficer, error)
	CreateOfficer(ctx context.Context, ident *Identity, input NewSalesOfficer) (*SalesOfficer, error)
	DeactivateOfficer(ctx context.Context, ident *Identity, id string) error
	ExportOfficers(ctx context.Context, ident *Identity, req PageRequest) ([]SalesOfficer, error)
	OfficerOptions(ctx context.Context, ident *Identity) ([]FilterOption, error)
}
