package dashboard

import "github.com/gin-gonic/gin"

// DashboardModule registers the dashboard route.
type DashboardModule struct {
	handler *DashboardHandler
}

// NewModule creates a new DashboardModule with the given handler.
// Panics if h is nil.
func NewModule(h *DashboardHandler) *DashboardModule {
	if h == nil {
		panic("dashboard.NewModule: handler must not be nil")
	}
	return &DashboardModule{handler: h}
}

// RegisterRoutes registers the dashboard API route on the authenticated group.
func (m *DashboardModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/dashboard", m.handler.Summary)
}
