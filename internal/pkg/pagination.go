package pkg

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fieldsales/salesadmin/internal/domain"
)

const (
	defaultPage = 1
	// DefaultPageSize matches the fixed page size of the original dashboard.
	DefaultPageSize = 10
	maxPageSize     = 100
)

// reservedParams lists query parameter names used for pagination, sorting, and
// searching, not for field filtering. "active" is consumed by the ActiveOnly
// scope rather than matched against a column.
var reservedParams = map[string]bool{
	"page":      true,
	"page_size": true,
	"sort":      true,
	"q":         true,
}

// validFieldName matches only alphanumeric characters and underscores.
var validFieldName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// ParsePageRequest extracts pagination, sorting, searching, and filtering
// parameters from query params.
func ParsePageRequest(c *gin.Context) domain.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if page < 1 {
		page = defaultPage
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] {
			continue
		}
		if len(values) > 0 && values[0] != "" {
			filter[key] = values[0]
		}
	}

	return domain.PageRequest{
		Page:     page,
		PageSize: pageSize,
		Sort:     c.Query("sort"),
		Search:   strings.TrimSpace(c.Query("q")),
		Filter:   filter,
	}
}

// ClampPage keeps a 1-based page within [1, ceil(total/pageSize)]. When a
// deletion shrinks the total below the requested page, the caller lands on the
// last non-empty page instead of a blank one. An empty result set clamps to 1.
func ClampPage(page, pageSize int, total int64) int {
	if page < 1 {
		return 1
	}
	maxPage := TotalPages(total, pageSize)
	if maxPage == 0 {
		return 1
	}
	if page > maxPage {
		return maxPage
	}
	return page
}

// TotalPages returns ceil(total/pageSize), or 0 for an empty result set.
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(pageSize)))
}

// Paginate returns a GORM scope that applies LIMIT and OFFSET based on the page request.
func Paginate(req domain.PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (req.Page - 1) * req.PageSize
		return db.Offset(offset).Limit(req.PageSize)
	}
}

// Sort returns a GORM scope that applies ORDER BY based on the page request.
// Only field names present in the allowed list are accepted; anything else
// falls back to the given default ordering. A deterministic secondary order on
// tieBreak resolves ties between equal keys.
func Sort(req domain.PageRequest, allowed []string, fallback, tieBreak string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		field, direction, ok := parseSort(req.Sort, allowed)
		if !ok {
			field, direction, ok = parseSort(fallback, allowed)
			if !ok {
				return db
			}
		}

		order := field + " " + direction
		if tieBreak != "" && tieBreak != field {
			order += ", " + tieBreak + " asc"
		}
		return db.Order(order)
	}
}

// parseSort splits a "field:direction" value and validates it against the
// allowed list. Field names are checked against a strict pattern to prevent
// SQL injection.
func parseSort(sort string, allowed []string) (field, direction string, ok bool) {
	parts := strings.SplitN(sort, ":", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	field = strings.TrimSpace(parts[0])
	direction = strings.TrimSpace(strings.ToLower(parts[1]))

	if direction != "asc" && direction != "desc" {
		return "", "", false
	}
	if !validFieldName.MatchString(field) {
		return "", "", false
	}
	if !slices.Contains(allowed, field) {
		return "", "", false
	}
	return field, direction, true
}

// Filter returns a GORM scope that applies WHERE conditions based on the page
// request filters with AND semantics. Only filter keys present in the allowed
// list are applied; others are silently ignored. Keys ending with "__like"
// produce a LIKE '%value%' condition; others use exact match.
func Filter(req domain.PageRequest, allowed []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for key, value := range req.Filter {
			if strings.HasSuffix(key, "__like") {
				field := strings.TrimSuffix(key, "__like")
				if !validFieldName.MatchString(field) {
					continue
				}
				if !slices.Contains(allowed, field) {
					continue
				}
				db = db.Where(field+" LIKE ?", "%"+value+"%")
			} else {
				if !validFieldName.MatchString(key) {
					continue
				}
				if !slices.Contains(allowed, key) {
					continue
				}
				db = db.Where(key+" = ?", value)
			}
		}
		return db
	}
}

// Search returns a GORM scope that applies a case-insensitive substring match
// across the given field set with OR semantics: a row matches when ANY field
// contains the term. An empty term or field set leaves the query unchanged.
func Search(term string, fields []string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(fields) == 0 {
			return db
		}

		pattern := "%" + strings.ToLower(term) + "%"
		var sb strings.Builder
		args := make([]any, 0, len(fields))
		for i, f := range fields {
			if !validFieldName.MatchString(f) {
				continue
			}
			if i > 0 && sb.Len() > 0 {
				sb.WriteString(" OR ")
			}
			sb.WriteString("LOWER(" + f + ") LIKE ?")
			args = append(args, pattern)
		}
		if sb.Len() == 0 {
			return db
		}
		return db.Where("("+sb.String()+")", args...)
	}
}

// ActiveOnly returns a GORM scope that applies the default soft-state clause:
// rows are visible when column equals visible (is_active = true, or
// is_deleted = false). The clause is skipped when the request carries
// "active=false", which is how a caller asks for deactivated rows too.
func ActiveOnly(req domain.PageRequest, column string, visible bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if req.Filter["active"] == "false" {
			return db
		}
		return db.Where(column+" = ?", visible)
	}
}

// NewPageResult creates a PageResult with computed TotalPages.
func NewPageResult[T any](items []T, total int64, req domain.PageRequest) *domain.PageResult[T] {
	if items == nil {
		items = []T{}
	}

	return &domain.PageResult[T]{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: TotalPages(total, req.PageSize),
	}
}
