package officer

import (
	"github.com/gin-gonic/gin"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/middleware"
	"github.com/fieldsales/salesadmin/internal/pkg"
)

// OfficerHandler handles REST API requests for sales officers.
type OfficerHandler struct {
	svc domain.SalesOfficerService
}

// NewHandler creates a new OfficerHandler with the given service.
func NewHandler(svc domain.SalesOfficerService) *OfficerHandler {
	return &OfficerHandler{svc: svc}
}

// List handles GET /api/v1/sales-officers.
func (h *OfficerHandler) List(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListOfficers(c.Request.Context(), ident, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /api/v1/sales-officers/:id.
func (h *OfficerHandler) Get(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	officer, err := h.svc.GetOfficer(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, officer)
}

// Create handles POST /api/v1/sales-officers.
func (h *OfficerHandler) Create(c *gin.Context) {
	var req CreateOfficerRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	ident := middleware.GetIdentity(c)
	officer, err := h.svc.CreateOfficer(c.Request.Context(), ident, req.toInput())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, officer)
}

// Deactivate handles DELETE /api/v1/sales-officers/:id.
func (h *OfficerHandler) Deactivate(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	if err := h.svc.DeactivateOfficer(c.Request.Context(), ident, c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"deactivated": true})
}

// Export handles GET /api/v1/sales-officers/export.
func (h *OfficerHandler) Export(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	req := pkg.ParsePageRequest(c)

	officers, err := h.svc.ExportOfficers(c.Request.Context(), ident, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	header := []string{"sales_officer_id", "employee_id", "name", "phone_number", "address", "reporting_manager", "active", "created_at"}
	rows := make([][]string, 0, len(officers))
	for _, o := range officers {
		active := "yes"
		if !o.IsActive {
			active = "no"
		}
		rows = append(rows, []string{
			o.ID,
			o.EmployeeID,
			o.Name,
			o.PhoneNumber,
			o.Address,
			o.ReportingManagerName,
			active,
			o.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	if err := pkg.WriteCSV(c, "sales-officers", header, rows); err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeInternal, "failed to write export", err))
	}
}

// Options handles GET /api/v1/sales-officers/options.
func (h *OfficerHandler) Options(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	options, err := h.svc.OfficerOptions(c.Request.Context(), ident)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"sales_officers": options})
}
