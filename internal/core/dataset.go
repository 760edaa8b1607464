package core

import (
	"context"
	"fmt"
	"time"

	"github.com/JonMunkholm/acme-reports/internal/logging"
	"github.com/JonMunkholm/acme-reports/internal/schema"
)

// LoadDataset reads and decodes the three input files. Any unreadable file
// or undecodable row aborts the load; nothing is partially returned.
func LoadDataset(ctx context.Context, paths InputPaths) (*Dataset, error) {
	start := time.Now()
	ds := &Dataset{}

	rows, err := loadSource(ctx, paths, schema.Products)
	if err != nil {
		return nil, err
	}
	if ds.Products, err = DecodeProducts(rows); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}

	if rows, err = loadSource(ctx, paths, schema.Orders); err != nil {
		return nil, err
	}
	if ds.Orders, err = DecodeOrders(rows); err != nil {
		return nil, fmt.Errorf("decoding orders: %w", err)
	}

	if rows, err = loadSource(ctx, paths, schema.Customers); err != nil {
		return nil, err
	}
	if ds.Customers, err = DecodeCustomers(rows); err != nil {
		return nil, fmt.Errorf("decoding customers: %w", err)
	}

	logging.FromContext(ctx).Info("dataset loaded",
		"products", len(ds.Products),
		"orders", len(ds.Orders),
		"customers", len(ds.Customers),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return ds, nil
}

func loadSource(ctx context.Context, paths InputPaths, src schema.Source) ([]Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load cancelled: %w", err)
	}

	path := paths.Path(src)
	logger := logging.WithFields(ctx, "source", src, "path", path)

	rows, n, err := ReadRowsFile(path)
	if err != nil {
		logger.Warn("source read failed", "error", err)
		return nil, err
	}

	logger.Debug("source read", "rows", len(rows), "bytes", n)
	return rows, nil
}

// Counts returns the number of decoded rows per source.
func (d *Dataset) Counts() map[string]int {
	return map[string]int{
		string(schema.Products):  len(d.Products),
		string(schema.Orders):    len(d.Orders),
		string(schema.Customers): len(d.Customers),
	}
}
