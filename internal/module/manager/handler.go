package manager

import (
	"github.com/gin-gonic/gin"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/pkg"
)

// ManagerHandler handles REST API requests for area sales managers.
type ManagerHandler struct {
	svc domain.AreaSalesManagerService
}

// NewHandler creates a new ManagerHandler with the given service.
func NewHandler(svc domain.AreaSalesManagerService) *ManagerHandler {
	return &ManagerHandler{svc: svc}
}

// List handles GET /api/v1/area-managers.
func (h *ManagerHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListManagers(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /api/v1/area-managers/:id.
func (h *ManagerHandler) Get(c *gin.Context) {
	manager, err := h.svc.GetManager(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, manager)
}

// Create handles POST /api/v1/area-managers.
func (h *ManagerHandler) Create(c *gin.Context) {
	var req CreateManagerRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	manager, err := h.svc.CreateManager(c.Request.Context(), req.toInput())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, manager)
}

// Deactivate handles DELETE /api/v1/area-managers/:id.
func (h *ManagerHandler) Deactivate(c *gin.Context) {
	if err := h.svc.DeactivateManager(c.Request.Context(), c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"deactivated": true})
}

// Export handles GET /api/v1/area-managers/export.
func (h *ManagerHandler) Export(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	managers, err := h.svc.ExportManagers(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	header := []string{"asm_user_id", "employee_id", "name", "phone_number", "address", "active", "created_at"}
	rows := make([][]string, 0, len(managers))
	for _, m := range managers {
		active := "yes"
		if !m.IsActive {
			active = "no"
		}
		rows = append(rows, []string{
			m.ID,
			m.EmployeeID,
			m.Name,
			m.PhoneNumber,
			m.Address,
			active,
			m.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	if err := pkg.WriteCSV(c, "area-managers", header, rows); err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeInternal, "failed to write export", err))
	}
}

// Options handles GET /api/v1/area-managers/options.
func (h *ManagerHandler) Options(c *gin.Context) {
	options, err := h.svc.ManagerOptions(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"area_managers": options})
}
