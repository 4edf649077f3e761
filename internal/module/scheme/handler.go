package scheme

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fieldsales/salesadmin/internal/domain"
	"github.com/fieldsales/salesadmin/internal/pkg"
)

// SchemeHandler handles REST API requests for schemes.
type SchemeHandler struct {
	svc domain.SchemeService
}

// NewHandler creates a new SchemeHandler with the given service.
func NewHandler(svc domain.SchemeService) *SchemeHandler {
	return &SchemeHandler{svc: svc}
}

// List handles GET /api/v1/schemes.
func (h *SchemeHandler) List(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	result, err := h.svc.ListSchemes(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /api/v1/schemes/:id.
func (h *SchemeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	scheme, err := h.svc.GetScheme(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, scheme)
}

// Deactivate handles DELETE /api/v1/schemes/:id.
func (h *SchemeHandler) Deactivate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.DeactivateScheme(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"deactivated": true})
}

// Export handles GET /api/v1/schemes/export.
func (h *SchemeHandler) Export(c *gin.Context) {
	req := pkg.ParsePageRequest(c)

	schemes, err := h.svc.ExportSchemes(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	header := []string{"scheme_id", "scheme_text", "scheme_min_price", "scheme_scope", "active", "created_at"}
	rows := make([][]string, 0, len(schemes))
	for _, sc := range schemes {
		minPrice := ""
		if sc.SchemeMinPrice != nil {
			minPrice = sc.SchemeMinPrice.StringFixed(2)
		}
		active := "yes"
		if !sc.IsActive {
			active = "no"
		}
		rows = append(rows, []string{
			strconv.FormatUint(uint64(sc.ID), 10),
			sc.SchemeText,
			minPrice,
			sc.SchemeScope,
			active,
			sc.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	if err := pkg.WriteCSV(c, "schemes", header, rows); err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeInternal, "failed to write export", err))
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, "invalid scheme id", err))
		return 0, false
	}
	return uint(id), true
}
