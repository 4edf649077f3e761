package officer

import "github.com/gin-gonic/gin"

// OfficerModule registers the sales officer routes.
type OfficerModule struct {
	handler *OfficerHandler
}

// NewModule creates a new OfficerModule with the given handler.
// Panics if h is nil.
func NewModule(h *OfficerHandler) *OfficerModule {
	if h == nil {
		panic("officer.NewModule: handler must not be nil")
	}
	return &OfficerModule{handler: h}
}

// RegisterRoutes registers sales officer API routes on the authenticated group.
func (m *OfficerModule) RegisterRoutes(api *gin.RouterGroup) {
	grp := api.Group("/sales-officers")
	grp.GET("", m.handler.List)
	grp.POST("", m.handler.Create)
	grp.GET("/export", m.handler.Export)
	grp.GET("/options", m.handler.Options)
	grp.GET("/:id", m.handler.Get)
	grp.DELETE("/:id", m.handler.Deactivate)
}
