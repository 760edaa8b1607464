package core

import "sort"

// RankCustomers computes every customer's spend and orders the result by
// total spent, highest first. Customers with equal totals keep their
// relative order from the input list.
func RankCustomers(customers []Customer, orderCosts []OrderCost) []CustomerSpend {
	ranked := ComputeCustomerSpend(customers, orderCosts)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent > ranked[j].TotalSpent
	})
	return ranked
}
