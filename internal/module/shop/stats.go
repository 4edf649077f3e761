package shop

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fieldsales/salesadmin/internal/domain"
)

const (
	recentOrderLimit = 5
	topRankLimit     = 3
)

// buildShopDetails assembles the shop detail view from the shop's visits and
// the flat order rows attached to them: the most recent orders, the top
// products and officers by sold amount, and the all-time total. Free lines
// count toward quantities but never toward amounts.
func buildShopDetails(shop domain.Shop, visits []domain.Visit, rows []domain.OrderRow) *domain.ShopDetails {
	details := &domain.ShopDetails{
		Shop:         shop,
		RecentOrders: []domain.ShopOrder{},
		TopProducts:  []domain.TopProduct{},
		TopOfficers:  []domain.TopSalesOfficer{},
		TotalSales:   decimal.Zero,
	}

	visitsByOfficer := make(map[string]int, len(visits))
	for _, v := range visits {
		visitsByOfficer[v.SalesOfficerID]++
	}

	orderIdx := make(map[string]int, len(rows))
	orders := make([]domain.ShopOrder, 0, len(rows))
	products := make(map[string]*domain.TopProduct)
	officers := make(map[string]*domain.TopSalesOfficer)

	for _, row := range rows {
		idx, seen := orderIdx[row.OrderID]
		if !seen {
			idx = len(orders)
			orderIdx[row.OrderID] = idx
			orders = append(orders, domain.ShopOrder{
				OrderID:          row.OrderID,
				CreatedAt:        row.CreatedAt,
				Currency:         row.Currency,
				SalesOfficerName: row.SalesOfficerName,
				TotalAmount:      decimal.Zero,
			})

			off, ok := officers[row.SalesOfficerID]
			if !ok {
				off = &domain.TopSalesOfficer{
					SalesOfficerID: row.SalesOfficerID,
					Name:           row.SalesOfficerName,
					VisitCount:     visitsByOfficer[row.SalesOfficerID],
					TotalAmount:    decimal.Zero,
				}
				officers[row.SalesOfficerID] = off
			}
			off.OrderCount++
		}

		orders[idx].ProductCount++
		if row.FreeQty > 0 {
			continue
		}

		orders[idx].TotalAmount = orders[idx].TotalAmount.Add(row.Amount)
		details.TotalSales = details.TotalSales.Add(row.Amount)
		if details.SalesCurrency == "" {
			details.SalesCurrency = row.Currency
		}
		officers[row.SalesOfficerID].TotalAmount = officers[row.SalesOfficerID].TotalAmount.Add(row.Amount)

		prod, ok := products[row.ProductID]
		if !ok {
			prod = &domain.TopProduct{ProductID: row.ProductID, ProductName: row.ProductName}
			products[row.ProductID] = prod
		}
		prod.Quantity += row.Quantity
		prod.Amount = prod.Amount.Add(row.Amount)
	}

	// Rows arrive newest first, so the first N orders are the recent ones.
	if len(orders) > recentOrderLimit {
		orders = orders[:recentOrderLimit]
	}
	details.RecentOrders = orders

	for _, p := range products {
		details.TopProducts = append(details.TopProducts, *p)
	}
	sort.SliceStable(details.TopProducts, func(i, j int) bool {
		a, b := details.TopProducts[i], details.TopProducts[j]
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.GreaterThan(b.Amount)
		}
		return a.ProductName < b.ProductName
	})
	if len(details.TopProducts) > topRankLimit {
		details.TopProducts = details.TopProducts[:topRankLimit]
	}

	for _, o := range officers {
		details.TopOfficers = append(details.TopOfficers, *o)
	}
	sort.SliceStable(details.TopOfficers, func(i, j int) bool {
		a, b := details.TopOfficers[i], details.TopOfficers[j]
		if !a.TotalAmount.Equal(b.TotalAmount) {
			return a.TotalAmount.GreaterThan(b.TotalAmount)
		}
		return a.Name < b.Name
	})
	if len(details.TopOfficers) > topRankLimit {
		details.TopOfficers = details.TopOfficers[:topRankLimit]
	}

	return details
}
