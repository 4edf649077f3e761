package manager

import (
	"time"

	"github.com/fieldsales/salesadmin/internal/domain"
)

// CreateManagerRequest represents the input for provisioning an area sales
// manager.
type CreateManagerRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,max=50"`
	Name       string `json:"name" binding:"required,max=255"`
	Phone      string `json:"phone" binding:"required,min=4,max=32"`
	Password   string `json:"password" binding:"required,min=8,max=72"`
	Address    string `json:"address" binding:"omitempty,max=500"`
	DOB        string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	IDType     string `json:"id_type" binding:"omitempty,max=50"`
	IDNo       string `json:"id_no" binding:"omitempty,max=100"`
}

// toInput converts the request into the provisioning payload.
func (r CreateManagerRequest) toInput() domain.NewAreaSalesManager {
	input := domain.NewAreaSalesManager{
		Password:    r.Password,
		EmployeeID:  r.EmployeeID,
		Name:        r.Name,
		Address:     r.Address,
		PhoneNumber: r.Phone,
		IDType:      r.IDType,
		IDNo:        r.IDNo,
	}
	if r.DOB != "" {
		if dob, err := time.Parse("2006-01-02", r.DOB); err == nil {
			input.DOB = &dob
		}
	}
	return input
}
