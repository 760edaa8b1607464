package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/JonMunkholm/acme-reports/internal/config"
	"github.com/JonMunkholm/acme-reports/internal/core"
	"github.com/JonMunkholm/acme-reports/internal/logging"
	"github.com/JonMunkholm/acme-reports/internal/metrics"
	"github.com/JonMunkholm/acme-reports/internal/report"
	"github.com/JonMunkholm/acme-reports/internal/web"
)

// run loads the dataset and executes a command: a report key, "all" or "serve".
func run(ctx context.Context, cfg *config.Config, command, dir string) error {
	switch command {
	case "serve", "all":
	default:
		if _, ok := report.Get(command); !ok {
			return fmt.Errorf("unknown report %q (want one of %v)", command, report.Keys())
		}
	}

	ds, err := core.LoadDataset(ctx, core.InputPaths{
		Products:  cfg.Input.ProductsCSV,
		Orders:    cfg.Input.OrdersCSV,
		Customers: cfg.Input.CustomersCSV,
	})
	if err != nil {
		return err
	}

	switch command {
	case "serve":
		return serve(ctx, cfg, ds)
	case "all":
		return writeAll(ctx, ds, cfg.Output.Format, dir)
	default:
		return writeReportTo(ctx, ds, command, cfg.Output.Format, cfg.Output.Path)
	}
}

// writeReportTo writes one report to path, or to stdout when path is empty.
func writeReportTo(ctx context.Context, ds *core.Dataset, key, format, path string) error {
	if path == "" {
		return writeReport(ctx, ds, key, format, os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := writeReport(ctx, ds, key, format, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeAll writes every registered report into dir as <key><ext>.
func writeAll(ctx context.Context, ds *core.Dataset, format, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for _, key := range report.Keys() {
		path := filepath.Join(dir, key+report.Extension(format))
		if err := writeReportTo(ctx, ds, key, format, path); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func writeReport(ctx context.Context, ds *core.Dataset, key, format string, w io.Writer) error {
	formatter, err := report.NewFormatter(format, w)
	if err != nil {
		return err
	}

	table, err := report.Generate(key, ds)
	if err != nil {
		return err
	}
	if err := formatter.Format(table); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	logging.FromContext(ctx).Info("report written", "report", key, "format", format, "rows", table.Len())
	return nil
}

// serve runs the HTTP server until ctx is cancelled.
func serve(ctx context.Context, cfg *config.Config, ds *core.Dataset) error {
	server := web.NewServer(ds, cfg, metrics.NewRegistry())

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.FromContext(ctx).Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
