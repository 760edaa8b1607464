package report

import (
	"strings"

	"github.com/JonMunkholm/acme-reports/internal/core"
)

// Report keys, also used as CLI subcommands and URL segments.
const (
	OrderCost         = "order-cost"
	PurchasedProducts = "purchased-products"
	CustomersRanking  = "customers-ranking"
)

// OrderCostRecord is one row of the order cost report.
type OrderCostRecord struct {
	ID    string  `parquet:"id" json:"id"`
	Euros float64 `parquet:"euros" json:"euros"`
}

// PurchasersRecord is one row of the purchased-products report.
type PurchasersRecord struct {
	ID          string `parquet:"id" json:"id"`
	CustomerIDs string `parquet:"customer_ids" json:"customer_ids"`
}

// RankingRecord is one row of the customer ranking report.
type RankingRecord struct {
	ID         string  `parquet:"id" json:"id"`
	FirstName  string  `parquet:"firstname" json:"firstname"`
	LastName   string  `parquet:"lastname" json:"lastname"`
	TotalEuros float64 `parquet:"total_euros" json:"total_euros"`
}

// OrderCostTable shapes order costs as id,euros.
func OrderCostTable(costs []core.OrderCost) *Table {
	records := make([]OrderCostRecord, len(costs))
	for i, c := range costs {
		records[i] = OrderCostRecord{ID: c.Order.ID, Euros: c.Total}
	}
	return newTable(OrderCost, []string{"id", "euros"}, records,
		func(r OrderCostRecord) []any { return []any{r.ID, r.Euros} })
}

// PurchasersTable shapes product purchasers as id,customer_ids with the
// customer ids joined by single spaces.
func PurchasersTable(purchasers []core.ProductPurchasers) *Table {
	records := make([]PurchasersRecord, len(purchasers))
	for i, p := range purchasers {
		records[i] = PurchasersRecord{ID: p.ProductID, CustomerIDs: strings.Join(p.CustomerIDs, " ")}
	}
	return newTable(PurchasedProducts, []string{"id", "customer_ids"}, records,
		func(r PurchasersRecord) []any { return []any{r.ID, r.CustomerIDs} })
}

// RankingTable shapes ranked customers as id,firstname,lastname,total_euros.
// The input order is kept; rank with core.RankCustomers first.
func RankingTable(ranked []core.CustomerSpend) *Table {
	records := make([]RankingRecord, len(ranked))
	for i, c := range ranked {
		records[i] = RankingRecord{
			ID:         c.ID,
			FirstName:  c.FirstName,
			LastName:   c.LastName,
			TotalEuros: c.TotalSpent,
		}
	}
	return newTable(CustomersRanking, []string{"id", "firstname", "lastname", "total_euros"}, records,
		func(r RankingRecord) []any { return []any{r.ID, r.FirstName, r.LastName, r.TotalEuros} })
}
