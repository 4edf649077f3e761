package shop

import "github.com/gin-gonic/gin"

// ShopModule registers the shop routes.
type ShopModule struct {
	handler *ShopHandler
}

// NewModule creates a new ShopModule with the given handler.
// Panics if h is nil.
func NewModule(h *ShopHandler) *ShopModule {
	if h == nil {
		panic("shop.NewModule: handler must not be nil")
	}
	return &ShopModule{handler: h}
}

// RegisterRoutes registers shop API routes on the authenticated group.
func (m *ShopModule) RegisterRoutes(api *gin.RouterGroup) {
	grp := api.Group("/shops")
	grp.GET("", m.handler.List)
	grp.GET("/export", m.handler.Export)
	grp.GET("/filter-options", m.handler.FilterOptions)
	grp.GET("/:id", m.handler.Get)
	grp.GET("/:id/details", m.handler.Details)
	grp.DELETE("/:id", m.handler.Delete)
}
