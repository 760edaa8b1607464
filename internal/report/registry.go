package report

import (
	"fmt"
	"sort"
	"sync"

	"github.com/JonMunkholm/acme-reports/internal/core"
)

// Info contains display information about a report.
type Info struct {
	Key         string // Unique identifier: "order-cost"
	Label       string // Display name: "Order cost"
	Description string
}

// BuildFunc computes a report from a loaded dataset. It must not mutate ds.
type BuildFunc func(ds *core.Dataset) *Table

// Definition contains everything needed to produce a report.
type Definition struct {
	Info  Info
	Build BuildFunc
}

var (
	registry   = make(map[string]Definition)
	registryMu sync.RWMutex
)

func init() {
	Register(Definition{
		Info: Info{
			Key:         OrderCost,
			Label:       "Order cost",
			Description: "Total cost of every order in euros",
		},
		Build: func(ds *core.Dataset) *Table {
			return OrderCostTable(core.ComputeOrderCosts(ds.Orders, ds.Products))
		},
	})
	Register(Definition{
		Info: Info{
			Key:         PurchasedProducts,
			Label:       "Purchased products",
			Description: "Customers who bought each product",
		},
		Build: func(ds *core.Dataset) *Table {
			return PurchasersTable(core.ComputePurchasersByProduct(ds.Products, ds.Orders))
		},
	})
	Register(Definition{
		Info: Info{
			Key:         CustomersRanking,
			Label:       "Customer ranking",
			Description: "Customers ordered by total spend",
		},
		Build: func(ds *core.Dataset) *Table {
			costs := core.ComputeOrderCosts(ds.Orders, ds.Products)
			return RankingTable(core.RankCustomers(ds.Customers, costs))
		},
	})
}

// Register adds a report definition to the registry.
// Panics if a report with the same key is already registered.
func Register(def Definition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[def.Info.Key]; exists {
		panic(fmt.Sprintf("report already registered: %s", def.Info.Key))
	}
	registry[def.Info.Key] = def
}

// Get returns a report definition by key.
func Get(key string) (Definition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[key]
	return def, ok
}

// All returns all registered definitions sorted by key.
func All() []Definition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Definition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Info.Key < result[j].Info.Key
	})
	return result
}

// Keys returns the keys of all registered reports, sorted.
func Keys() []string {
	defs := All()
	keys := make([]string, len(defs))
	for i, def := range defs {
		keys[i] = def.Info.Key
	}
	return keys
}

// Generate builds the report registered under key from a fresh computation
// over ds.
func Generate(key string, ds *core.Dataset) (*Table, error) {
	def, ok := Get(key)
	if !ok {
		return nil, fmt.Errorf("unknown report %q", key)
	}
	return def.Build(ds), nil
}
