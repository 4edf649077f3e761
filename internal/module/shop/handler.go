package shop

import (
	"github.com/gin-gonic/gin"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/middleware"
	"github.com/fieldsales/salesadmin/internal/pkg"
)

// ShopHandler handles REST API requests for shops.
type ShopHandler struct {
	svc domain.ShopService
}

// NewHandler creates a new ShopHandler with the given service.
func NewHandler(svc domain.ShopService) *ShopHandler {
	return &ShopHandler{svc: svc}
}

// List handles GET /api/v1/shops.
func (h *ShopHandler) List(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListShops(c.Request.Context(), ident, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /api/v1/shops/:id.
func (h *ShopHandler) Get(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	shop, err := h.svc.GetShop(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, shop)
}

// Details handles GET /api/v1/shops/:id/details.
func (h *ShopHandler) Details(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	details, err := h.svc.GetShopDetails(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, details)
}

// Delete handles DELETE /api/v1/shops/:id.
func (h *ShopHandler) Delete(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	if err := h.svc.DeleteShop(c.Request.Context(), ident, c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"deleted": true})
}

// Export handles GET /api/v1/shops/export.
func (h *ShopHandler) Export(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	req := pkg.ParsePageRequest(c)

	shops, err := h.svc.ExportShops(c.Request.Context(), ident, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	header := []string{"shop_id", "name", "owner_name", "phone_number", "address", "territory", "city", "state", "country", "created_at"}
	rows := make([][]string, 0, len(shops))
	for _, s := range shops {
		rows = append(rows, []string{
			s.ID,
			s.Name,
			s.OwnerName,
			s.PhoneNumber,
			s.Address,
			s.Territory,
			s.City,
			s.State,
			s.Country,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	if err := pkg.WriteCSV(c, "shops", header, rows); err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeInternal, "failed to write export", err))
	}
}

// FilterOptions handles GET /api/v1/shops/filter-options.
func (h *ShopHandler) FilterOptions(c *gin.Context) {
	territories, cities, states, err := h.svc.ShopFilterOptions(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{
		"territories": territories,
		"cities":      cities,
		"states":      states,
	})
}
