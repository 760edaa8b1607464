package core

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/acme-reports/internal/logging"
)

func testdataPaths() InputPaths {
	return InputPaths{
		Products:  filepath.Join("testdata", "products.csv"),
		Orders:    filepath.Join("testdata", "orders.csv"),
		Customers: filepath.Join("testdata", "customers.csv"),
	}
}

func TestLoadDataset(t *testing.T) {
	ds, err := LoadDataset(context.Background(), testdataPaths())
	require.NoError(t, err)

	assert.Equal(t, fixtureProducts(), ds.Products)
	assert.Equal(t, fixtureOrders(), ds.Orders)
	assert.Equal(t, fixtureCustomers(), ds.Customers)

	assert.Equal(t, map[string]int{"products": 5, "orders": 8, "customers": 6}, ds.Counts())
}

func TestLoadDataset_ReportsFromFiles(t *testing.T) {
	ds, err := LoadDataset(context.Background(), testdataPaths())
	require.NoError(t, err)

	costs := ComputeOrderCosts(ds.Orders, ds.Products)
	require.NotEmpty(t, costs)
	assert.Equal(t, 18.943120182823662, costs[0].Total)

	ranked := RankCustomers(ds.Customers, costs)
	assert.Equal(t, "1", ranked[0].ID)
	assert.Equal(t, "4", ranked[len(ranked)-1].ID)
}

func TestLoadDataset_Idempotent(t *testing.T) {
	first, err := LoadDataset(context.Background(), testdataPaths())
	require.NoError(t, err)
	second, err := LoadDataset(context.Background(), testdataPaths())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t,
		ComputeOrderCosts(first.Orders, first.Products),
		ComputeOrderCosts(second.Orders, second.Products))
}

func TestLoadDataset_MissingFile(t *testing.T) {
	paths := testdataPaths()
	paths.Orders = filepath.Join(t.TempDir(), "orders.csv")

	_, err := LoadDataset(context.Background(), paths)

	var missing *MissingFileError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, paths.Orders, missing.Path)
	assert.Equal(t, "FILE001", MapError(err).Code)
}

func TestLoadDataset_MissingCostColumn(t *testing.T) {
	paths := testdataPaths()
	paths.Products = filepath.Join("testdata", "products_missing_cost.csv")

	_, err := LoadDataset(context.Background(), paths)

	var rowErr *MalformedRowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, "cost", rowErr.Column)
	assert.Equal(t, 2, rowErr.Line)
}

func TestLoadDataset_InvalidCost(t *testing.T) {
	paths := testdataPaths()
	paths.Products = filepath.Join("testdata", "products_bad_cost.csv")

	_, err := LoadDataset(context.Background(), paths)

	var numErr *InvalidNumericFieldError
	require.ErrorAs(t, err, &numErr)
	assert.Equal(t, "two", numErr.Value)
	assert.Equal(t, "VAL002", MapError(err).Code)
}

func TestLoadDataset_EmptyFile(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "customers.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0644))

	paths := testdataPaths()
	paths.Customers = empty

	_, err := LoadDataset(context.Background(), paths)
	assert.True(t, errors.Is(err, ErrEmptyFile), "got %v", err)
}

func TestLoadDataset_HeaderOnlyFiles(t *testing.T) {
	dir := t.TempDir()
	paths := InputPaths{
		Products:  filepath.Join(dir, "products.csv"),
		Orders:    filepath.Join(dir, "orders.csv"),
		Customers: filepath.Join(dir, "customers.csv"),
	}
	require.NoError(t, os.WriteFile(paths.Products, []byte("id,name,cost\n"), 0644))
	require.NoError(t, os.WriteFile(paths.Orders, []byte("id,customer,products\n"), 0644))
	require.NoError(t, os.WriteFile(paths.Customers, []byte("id,firstname,lastname\n"), 0644))

	ds, err := LoadDataset(context.Background(), paths)
	require.NoError(t, err)

	assert.Empty(t, ComputeOrderCosts(ds.Orders, ds.Products))
	assert.Empty(t, ComputePurchasersByProduct(ds.Products, ds.Orders))
	assert.Empty(t, RankCustomers(ds.Customers, nil))
}

func TestLoadDataset_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadDataset(ctx, testdataPaths())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadDataset_NonFiniteCost(t *testing.T) {
	for _, cost := range []string{"NaN", "-Inf", "0x1p-2"} {
		t.Run(cost, func(t *testing.T) {
			products := filepath.Join(t.TempDir(), "products.csv")
			content := "id,name,cost\n0,screwdriver,2.5\n1,hammer," + cost + "\n"
			require.NoError(t, os.WriteFile(products, []byte(content), 0644))

			paths := testdataPaths()
			paths.Products = products

			_, err := LoadDataset(context.Background(), paths)

			var numErr *InvalidNumericFieldError
			require.ErrorAs(t, err, &numErr)
			assert.Equal(t, 3, numErr.Line)
			assert.Equal(t, cost, numErr.Value)
		})
	}
}

func TestLoadDataset_LogsSourceFields(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(logging.New(&buf, "debug", "json"))
	t.Cleanup(func() { slog.SetDefault(prev) })

	paths := testdataPaths()
	paths.Orders = filepath.Join(t.TempDir(), "orders.csv")

	_, err := LoadDataset(context.Background(), paths)
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"source read","source":"products"`)
	assert.Contains(t, out, `"msg":"source read failed","source":"orders"`)
	assert.Contains(t, out, `"path":"`+paths.Orders+`"`)
}
