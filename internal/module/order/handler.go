package order

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/middleware"
	"github.com/fieldsales/salesadmin/internal/pkg"
)

// OrderHandler handles REST API requests for orders. The filter-options
// endpoint pulls its officer and manager lists from the owning services.
type OrderHandler struct {
	svc      domain.OrderService
	officers domain.SalesOfficerService
	managers domain.AreaSalesManagerService
}

// NewHandler creates a new OrderHandler.
func NewHandler(svc domain.OrderService, officers domain.SalesOfficerService, managers domain.AreaSalesManagerService) *OrderHandler {
	return &OrderHandler{svc: svc, officers: officers, managers: managers}
}

// List handles GET /api/v1/orders.
func (h *OrderHandler) List(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListOrders(c.Request.Context(), ident, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /api/v1/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	order, err := h.svc.GetOrder(c.Request.Context(), ident, c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, order)
}

// Delete handles DELETE /api/v1/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	if err := h.svc.DeleteOrder(c.Request.Context(), ident, c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"deleted": true})
}

// Export handles GET /api/v1/orders/export. The CSV carries one row per
// order with its products flattened into a single cell, matching the list
// view's current filters.
func (h *OrderHandler) Export(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	req := pkg.ParsePageRequest(c)

	orders, err := h.svc.ExportOrders(c.Request.Context(), ident, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	header := []string{"order_id", "created_at", "shop", "sales_officer", "area_manager", "products", "total_amount", "currency"}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.OrderID,
			o.CreatedAt.Format("2006-01-02 15:04:05"),
			o.ShopName,
			o.SalesOfficerName,
			o.AreaManagerName,
			formatProducts(o.Products),
			o.TotalAmount.StringFixed(2),
			o.Currency,
		})
	}

	if err := pkg.WriteCSV(c, "orders", header, rows); err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeInternal, "failed to write export", err))
	}
}

// formatProducts flattens an order's lines into one export cell:
// "Name xQty" entries joined with "; ", free lines marked.
func formatProducts(products []domain.OrderProduct) string {
	parts := make([]string, 0, len(products))
	for _, p := range products {
		entry := fmt.Sprintf("%s x%d", p.ProductName, p.Quantity)
		if p.FreeQty > 0 {
			entry = fmt.Sprintf("%s x%d (free)", p.ProductName, p.FreeQty)
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, "; ")
}

// FilterOptions handles GET /api/v1/orders/filter-options. Officer options
// are scoped to the identity; the manager list is admin-only and empty for
// ASMs.
func (h *OrderHandler) FilterOptions(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	officerOpts, err := h.officers.OfficerOptions(c.Request.Context(), ident)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	managerOpts := []domain.FilterOption{}
	if ident != nil && ident.IsAdmin() {
		managerOpts, err = h.managers.ManagerOptions(c.Request.Context())
		if err != nil {
			pkg.Error(c, err)
			return
		}
	}

	pkg.Success(c, gin.H{
		"sales_officers": officerOpts,
		"area_managers":  managerOpts,
		"time_ranges":    []string{pkg.RangeToday, pkg.RangeWeek, pkg.RangeMonth},
	})
}
