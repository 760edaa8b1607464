package core

// join.go holds the three pairwise joins behind the reports. All of them
// are pure: inputs are only read and results follow the order of the
// first argument.

// productIndex maps a product id to its first occurrence in the list.
type productIndex map[string]Product

func indexProducts(products []Product) productIndex {
	idx := make(productIndex, len(products))
	for _, p := range products {
		if _, seen := idx[p.ID]; seen {
			continue
		}
		idx[p.ID] = p
	}
	return idx
}

// cost sums the product costs referenced by an order, once per token.
// Tokens without a matching product contribute nothing.
func (idx productIndex) cost(o Order) float64 {
	var total float64
	for _, id := range o.ProductIDs() {
		if p, ok := idx[id]; ok {
			total += p.Cost
		}
	}
	return total
}

// ComputeOrderCosts returns the total cost of every order.
// When several products share an id the first one in products is used.
func ComputeOrderCosts(orders []Order, products []Product) []OrderCost {
	idx := indexProducts(products)

	result := make([]OrderCost, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderCost{Order: o, Total: idx.cost(o)})
	}
	return result
}

// ComputePurchasersByProduct returns, for every product, the distinct ids of
// customers whose orders contain the product, in order of first appearance.
func ComputePurchasersByProduct(products []Product, orders []Order) []ProductPurchasers {
	result := make([]ProductPurchasers, 0, len(products))
	for _, p := range products {
		result = append(result, ProductPurchasers{
			ProductID:   p.ID,
			CustomerIDs: purchasersOf(p.ID, orders),
		})
	}
	return result
}

func purchasersOf(productID string, orders []Order) []string {
	seen := make(map[string]struct{})
	customers := []string{}

	for _, o := range orders {
		if !o.HasProduct(productID) {
			continue
		}
		if _, dup := seen[o.CustomerID]; dup {
			continue
		}
		seen[o.CustomerID] = struct{}{}
		customers = append(customers, o.CustomerID)
	}
	return customers
}

// ComputeCustomerSpend sums the order totals of every customer.
// Customers without orders get a total of zero.
func ComputeCustomerSpend(customers []Customer, orderCosts []OrderCost) []CustomerSpend {
	result := make([]CustomerSpend, 0, len(customers))
	for _, c := range customers {
		result = append(result, CustomerSpend{
			ID:         c.ID,
			FirstName:  c.FirstName,
			LastName:   c.LastName,
			TotalSpent: totalSpent(c.ID, orderCosts),
		})
	}
	return result
}

func totalSpent(customerID string, orderCosts []OrderCost) float64 {
	var total float64
	for _, oc := range orderCosts {
		if oc.BelongsTo(customerID) {
			total += oc.Total
		}
	}
	return total
}
