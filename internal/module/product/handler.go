package product

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/pkg"
)

// ProductHandler handles REST API requests for products.
type ProductHandler struct {
	svc domain.ProductService
}

// NewHandler creates a new ProductHandler with the given service.
func NewHandler(svc domain.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// List handles GET /api/v1/products.
func (h *ProductHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListProducts(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /api/v1/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.svc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, product)
}

// Deactivate handles DELETE /api/v1/products/:id.
func (h *ProductHandler) Deactivate(c *gin.Context) {
	if err := h.svc.DeactivateProduct(c.Request.Context(), c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"deactivated": true})
}

// Export handles GET /api/v1/products/export.
func (h *ProductHandler) Export(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	products, err := h.svc.ExportProducts(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	header := []string{"product_id", "name", "category", "unit_of_measure", "mrp", "pts", "ptr", "gst_percent", "currency", "active"}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ID,
			p.Name,
			p.Category,
			p.UnitOfMeasure,
			p.MRP.StringFixed(2),
			decimalCell(p.PTS),
			decimalCell(p.PTR),
			decimalCell(p.GSTPercent),
			p.Currency,
			boolCell(p.IsActive),
		})
	}

	if err := pkg.WriteCSV(c, "products", header, rows); err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeInternal, "failed to write export", err))
	}
}

// Categories handles GET /api/v1/products/categories.
func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.svc.ProductCategories(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"categories": categories})
}

func decimalCell(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

func boolCell(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
