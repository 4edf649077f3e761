package order

import (
	"sort"
	"strings"

	"github.com/fieldsales/salesadmin/internal/domain"
)

// Orders are filtered, searched, and sorted in memory: the list entity only
// exists after aggregation, so the usual SQL pipeline cannot apply. The
// semantics mirror the SQL scopes in pkg (OR search across fields, AND
// filters, allow-listed sort keys).

// orderSortFields are the sort keys accepted by the order list.
var orderSortFields = map[string]bool{
	"created_at":         true,
	"order_id":           true,
	"total_amount":       true,
	"sales_officer_name": true,
	"shop_name":          true,
	"area_manager_name":  true,
}

const orderDefaultSort = "created_at:desc"

// matchOrder reports whether the order matches the search term in any of its
// searchable fields, product names included.
func matchOrder(o domain.Order, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range []string{o.OrderID, o.SalesOfficerName, o.ShopName, o.AreaManagerName} {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	for _, p := range o.Products {
		if strings.Contains(strings.ToLower(p.ProductName), term) {
			return true
		}
	}
	return false
}

// filterOrders narrows the aggregated set with AND semantics. The created
// preset is handled earlier at the query boundary and ignored here.
func filterOrders(orders []domain.Order, req domain.PageRequest) []domain.Order {
	officerID := req.Filter["sales_officer_id"]
	managerID := req.Filter["area_manager_id"]
	term := req.Search

	if officerID == "" && managerID == "" && term == "" {
		return orders
	}

	out := orders[:0:0]
	for _, o := range orders {
		if officerID != "" && o.SalesOfficerID != officerID {
			continue
		}
		if managerID != "" && o.AreaManagerID != managerID {
			continue
		}
		if !matchOrder(o, term) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// sortOrders orders the slice by the requested key. Unknown keys fall back to
// newest first. The sort is stable, so ties keep the fetch order, which is
// itself deterministic (created_at DESC, line id ASC).
func sortOrders(orders []domain.Order, sortParam string) {
	field, direction := parseOrderSort(sortParam)

	less := func(a, b domain.Order) bool {
		switch field {
		case "order_id":
			return a.OrderID < b.OrderID
		case "total_amount":
			return a.TotalAmount.LessThan(b.TotalAmount)
		case "sales_officer_name":
			return strings.ToLower(a.SalesOfficerName) < strings.ToLower(b.SalesOfficerName)
		case "shop_name":
			return strings.ToLower(a.ShopName) < strings.ToLower(b.ShopName)
		case "area_manager_name":
			return strings.ToLower(a.AreaManagerName) < strings.ToLower(b.AreaManagerName)
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		if direction == "desc" {
			return less(orders[j], orders[i])
		}
		return less(orders[i], orders[j])
	})
}

func parseOrderSort(sortParam string) (field, direction string) {
	parse := func(s string) (string, string, bool) {
		parts := strings.SplitN(s, ":", 2)
		if len(parts) != 2 {
			return "", "", false
		}
		f := strings.TrimSpace(parts[0])
		d := strings.TrimSpace(strings.ToLower(parts[1]))
		if (d != "asc" && d != "desc") || !orderSortFields[f] {
			return "", "", false
		}
		return f, d, true
	}

	if f, d, ok := parse(sortParam); ok {
		return f, d
	}
	f, d, _ := parse(orderDefaultSort)
	return f, d
}
