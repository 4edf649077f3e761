package scheme

import "github.com/gin-gonic/gin"

// SchemeModule registers the scheme routes.
type SchemeModule struct {
	handler *SchemeHandler
}

// NewModule creates a new SchemeModule with the given handler.
// Panics if h is nil.
func NewModule(h *SchemeHandler) *SchemeModule {
	if h == nil {
		panic("scheme.NewModule: handler must not be nil")
	}
	return &SchemeModule{handler: h}
}

// RegisterRoutes registers scheme API routes on the authenticated group.
func (m *SchemeModule) RegisterRoutes(api *gin.RouterGroup) {
	grp := api.Group("/schemes")
	grp.GET("", m.handler.List)
	grp.GET("/export", m.handler.Export)
	grp.GET("/:id", m.handler.Get)
	grp.DELETE("/:id", m.handler.Deactivate)
}
