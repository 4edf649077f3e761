package order

import "github.com/gin-gonic/gin"

// OrderModule registers the order routes.
type OrderModule struct {
	handler *OrderHandler
}

// NewModule creates a new OrderModule with the given handler.
// Panics if h is nil.
func NewModule(h *OrderHandler) *OrderModule {
	if h == nil {
		panic("order.NewModule: handler must not be nil")
	}
	return &OrderModule{handler: h}
}

// RegisterRoutes registers order API routes on the authenticated group.
func (m *OrderModule) RegisterRoutes(api *gin.RouterGroup) {
	grp := api.Group("/orders")
	grp.GET("", m.handler.List)
	grp.GET("/export", m.handler.Export)
	grp.GET("/filter-options", m.handler.FilterOptions)
	grp.GET("/:id", m.handler.Get)
	grp.DELETE("/:id", m.handler.Delete)
}
