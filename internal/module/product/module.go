package product

import "github.com/gin-gonic/gin"

// ProductModule registers the product routes.
type ProductModule struct {
	handler *ProductHandler
}

// NewModule creates a new ProductModule with the given handler.
// Panics if h is nil.
func NewModule(h *ProductHandler) *ProductModule {
	if h == nil {
		panic("product.NewModule: handler must not be nil")
	}
	return &ProductModule{handler: h}
}

// RegisterRoutes registers product API routes on the authenticated group.
func (m *ProductModule) RegisterRoutes(api *gin.RouterGroup) {
	grp := api.Group("/products")
	grp.GET("", m.handler.List)
	grp.GET("/export", m.handler.Export)
	grp.GET("/categories", m.handler.Categories)
	grp.GET("/:id", m.handler.Get)
	grp.DELETE("/:id", m.handler.Deactivate)
}
