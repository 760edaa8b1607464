package core

import (
	"strings"

	"github.com/JonMunkholm/acme-reports/internal/schema"
)

// Row is a single data row keyed by (lower-cased) header name.
type Row struct {
	Line   int               // 1-indexed line in the source file, header is line 1
	Fields map[string]string // header name -> raw cell value
}

// Get returns the raw value of a column and whether the row carries it.
func (r Row) Get(column string) (string, bool) {
	v, ok := r.Fields[column]
	return v, ok
}

// Product is a purchasable item. Ids are opaque strings.
type Product struct {
	ID   string
	Name string
	Cost float64
}

// Order references a customer and a space-separated list of product ids.
// The same product id may occur several times.
type Order struct {
	ID         string
	CustomerID string
	Products   string
}

// ProductIDs splits the products field on whitespace.
// An empty field yields no tokens.
func (o Order) ProductIDs() []string {
	return strings.Fields(o.Products)
}

// HasProduct reports whether id equals one of the order's tokens.
func (o Order) HasProduct(id string) bool {
	for _, tok := range o.ProductIDs() {
		if tok == id {
			return true
		}
	}
	return false
}

// Customer is a person placing orders.
type Customer struct {
	ID        string
	FirstName string
	LastName  string
}

// OrderCost is an order together with the summed cost of its products.
type OrderCost struct {
	Order Order
	Total float64
}

// BelongsTo reports whether the order was placed by the given customer.
func (c OrderCost) BelongsTo(customerID string) bool {
	return c.Order.CustomerID == customerID
}

// ProductPurchasers lists the distinct customers that ordered a product,
// in order of first appearance.
type ProductPurchasers struct {
	ProductID   string
	CustomerIDs []string
}

// CustomerSpend is a customer with the total of all their orders.
type CustomerSpend struct {
	ID         string
	FirstName  string
	LastName   string
	TotalSpent float64
}

// Dataset holds the three decoded input lists. It is never mutated after
// LoadDataset returns, so derived reports may be computed concurrently.
type Dataset struct {
	Products  []Product
	Orders    []Order
	Customers []Customer
}

// InputPaths locates the three CSV files of a dataset.
type InputPaths struct {
	Products  string
	Orders    string
	Customers string
}

// Path returns the configured path for a source.
func (p InputPaths) Path(src schema.Source) string {
	switch src {
	case schema.Products:
		return p.Products
	case schema.Orders:
		return p.Orders
	case schema.Customers:
		return p.Customers
	default:
		return ""
	}
}
