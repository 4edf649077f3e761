package manager

import (
	"github.com/gin-gonic/gin"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/middleware"
)

// ManagerModule registers the area sales manager routes. The whole resource
// is admin-only.
type ManagerModule struct {
	handler *ManagerHandler
}

// NewModule creates a new ManagerModule with the given handler.
// Panics if h is nil.
func NewModule(h *ManagerHandler) *ManagerModule {
	if h == nil {
		panic("manager.NewModule: handler must not be nil")
	}
	return &ManagerModule{handler: h}
}

// RegisterRoutes registers manager API routes on the authenticated group.
func (m *ManagerModule) RegisterRoutes(api *gin.RouterGroup) {
	grp := api.Group("/area-managers")
	grp.Use(middleware.RequireRole(domain.RoleAdmin))
	grp.GET("", m.handler.List)
	grp.POST("", m.handler.Create)
	grp.GET("/export", m.handler.Export)
	grp.GET("/options", m.handler.Options)
	grp.GET("/:id", m.handler.Get)
	grp.DELETE("/:id", m.handler.Deactivate)
}
