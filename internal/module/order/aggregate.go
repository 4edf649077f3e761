package order

import (
	"github.com/shopspring/decimal"

	"github.com/fieldsales/salesadmin/internal/domain"
)

// aggregateOrders groups flat order rows into orders in a single pass. The
// first row of a group seeds the order's scalar fields; every row appends a
// product line. The output sequence preserves the order of first appearance
// of each order id in the input.
//
// Lines with FreeQty > 0 are free goods: they are kept in Products (rendered
// separately by clients) but contribute nothing to TotalAmount.
func aggregateOrders(rows []domain.OrderRow) []domain.Order {
	byID := make(map[string]int, len(rows))
	orders := make([]domain.Order, 0, len(rows))

	for _, row := range rows {
		idx, seen := byID[row.OrderID]
		if !seen {
			idx = len(orders)
			byID[row.OrderID] = idx
			orders = append(orders, domain.Order{
				OrderID:          row.OrderID,
				VisitID:          row.VisitID,
				CreatedAt:        row.CreatedAt,
				Currency:         row.Currency,
				SalesOfficerID:   row.SalesOfficerID,
				SalesOfficerName: row.SalesOfficerName,
				ShopName:         row.ShopName,
				AreaManagerID:    row.AreaManagerID,
				AreaManagerName:  row.AreaManagerName,
				TotalAmount:      decimal.Zero,
			})
		}

		o := &orders[idx]
		o.Products = append(o.Products, domain.OrderProduct{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			Amount:      row.Amount,
			FreeQty:     row.FreeQty,
		})
		if row.FreeQty == 0 {
			o.TotalAmount = o.TotalAmount.Add(row.Amount)
		}
	}

	return orders
}
