package report

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/acme-reports/internal/core"
)

func loadFixture(t *testing.T) *core.Dataset {
	t.Helper()
	dir := filepath.Join("..", "core", "testdata")
	ds, err := core.LoadDataset(context.Background(), core.InputPaths{
		Products:  filepath.Join(dir, "products.csv"),
		Orders:    filepath.Join(dir, "orders.csv"),
		Customers: filepath.Join(dir, "customers.csv"),
	})
	require.NoError(t, err)
	return ds
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{CustomersRanking, OrderCost, PurchasedProducts}, Keys())

	for _, key := range Keys() {
		def, ok := Get(key)
		require.True(t, ok, key)
		assert.Equal(t, key, def.Info.Key)
		assert.NotEmpty(t, def.Info.Label)
		assert.NotNil(t, def.Build)
	}

	_, ok := Get("revenue")
	assert.False(t, ok)
}

func TestRegister_DuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register(Definition{Info: Info{Key: OrderCost}})
	})
}

func TestGenerate_Unknown(t *testing.T) {
	_, err := Generate("revenue", &core.Dataset{})
	require.Error(t, err)
	assert.Equal(t, "RPT001", core.MapError(err).Code)
}

func TestGenerate_OrderCost(t *testing.T) {
	table, err := Generate(OrderCost, loadFixture(t))
	require.NoError(t, err)

	assert.Equal(t, OrderCost, table.Key)
	assert.Equal(t, []string{"id", "euros"}, table.Header)
	require.Equal(t, 8, table.Len())
	assert.Equal(t, []any{"0", 18.943120182823662}, table.Rows[0])
	assert.Equal(t, []any{"4", 0.0}, table.Rows[4])
}

func TestGenerate_PurchasedProducts(t *testing.T) {
	table, err := Generate(PurchasedProducts, loadFixture(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "customer_ids"}, table.Header)
	assert.Equal(t, [][]any{
		{"0", "0 1"},
		{"1", "0"},
		{"2", "2 1 5"},
		{"3", "1"},
		{"1", "0"},
	}, table.Rows)
}

func TestGenerate_CustomersRanking(t *testing.T) {
	table, err := Generate(CustomersRanking, loadFixture(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "firstname", "lastname", "total_euros"}, table.Header)
	require.Equal(t, 6, table.Len())
	assert.Equal(t, []any{"1", "Marie", "Curie", 24.981163654411738}, table.Rows[0])
	assert.Equal(t, []any{"4", "Isaac", "Newton", 0.0}, table.Rows[5])
}

func TestPurchasersTable_NoPurchasers(t *testing.T) {
	table := PurchasersTable([]core.ProductPurchasers{{ProductID: "9", CustomerIDs: []string{}}})

	require.Equal(t, 1, table.Len())
	assert.Equal(t, []any{"9", ""}, table.Rows[0])
}

func TestGenerate_DoesNotMutateDataset(t *testing.T) {
	ds := loadFixture(t)
	before := *ds
	before.Products = append([]core.Product(nil), ds.Products...)
	before.Orders = append([]core.Order(nil), ds.Orders...)
	before.Customers = append([]core.Customer(nil), ds.Customers...)

	for _, key := range Keys() {
		_, err := Generate(key, ds)
		require.NoError(t, err)
	}
	assert.Equal(t, before, *ds)
}
