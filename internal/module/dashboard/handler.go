package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/fieldsales/salesadmin/internal/middleware"
	"github.com/fieldsales/salesadmin/internal/pkg"
)

// DashboardHandler handles the dashboard summary request.
type DashboardHandler struct {
	svc Service
}

// NewHandler creates a new DashboardHandler with the given service.
func NewHandler(svc Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary handles GET /api/v1/dashboard.
func (h *DashboardHandler) Summary(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	summary, err := h.svc.GetSummary(c.Request.Context(), ident)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, summary)
}
