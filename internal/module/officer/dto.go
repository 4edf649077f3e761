package officer

import (
	"time"

	"github.com/fieldsales/salesadmin/internal/domain"
)

// CreateOfficerRequest represents the input for provisioning a sales officer.
// ReportingManagerID is required for admins and ignored for managers, who can
// only provision onto their own team.
type CreateOfficerRequest struct {
	EmployeeID         string `json:"employee_id" binding:"required,max=50"`
	Name               string `json:"name" binding:"required,max=255"`
	Phone              string `json:"phone" binding:"required,min=4,max=32"`
	Password           string `json:"password" binding:"required,min=8,max=72"`
	Address            string `json:"address" binding:"omitempty,max=500"`
	DOB                string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	IDType             string `json:"id_type" binding:"omitempty,max=50"`
	IDNo               string `json:"id_no" binding:"omitempty,max=100"`
	ReportingManagerID string `json:"reporting_manager_id" binding:"omitempty,max=36"`
}

// toInput converts the request into the provisioning payload.
func (r CreateOfficerRequest) toInput() domain.NewSalesOfficer {
	input := domain.NewSalesOfficer{
		Password:           r.Password,
		EmployeeID:         r.EmployeeID,
		Name:               r.Name,
		Address:            r.Address,
		PhoneNumber:        r.Phone,
		IDType:             r.IDType,
		IDNo:               r.IDNo,
		ReportingManagerID: r.ReportingManagerID,
	}
	if r.DOB != "" {
		if dob, err := time.Parse("2006-01-02", r.DOB); err == nil {
			input.DOB = &dob
		}
	}
	return input
}
