package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/JonMunkholm/acme-reports/internal/config"
	"github.com/JonMunkholm/acme-reports/internal/core"
	"github.com/JonMunkholm/acme-reports/internal/logging"
	"github.com/JonMunkholm/acme-reports/internal/report"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

var (
	formatFlag = flag.String("f", "", "Output format: csv, json, table, parquet (overrides REPORT_FORMAT)")
	outputFlag = flag.String("o", "", "Output file (overrides REPORT_OUTPUT, default stdout)")
	dirFlag    = flag.String("dir", ".", "Output directory for the all command")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Computes reports over the products, orders and customers CSV files\n")
	fmt.Fprintf(os.Stderr, "named by PRODUCTS_CSV, ORDERS_CSV and CUSTOMERS_CSV.\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	for _, def := range report.All() {
		fmt.Fprintf(os.Stderr, "  %-20s %s\n", def.Info.Key, def.Info.Description)
	}
	fmt.Fprintf(os.Stderr, "  %-20s %s\n", "all", "Write every report into -dir")
	fmt.Fprintf(os.Stderr, "  %-20s %s\n", "list", "List report keys")
	fmt.Fprintf(os.Stderr, "  %-20s %s\n", "serve", "Serve reports over HTTP")
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
}

// fail prints a user-facing error in red and exits.
func fail(stage string, err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(os.Stderr, "error [%s]: ", stage)
	fmt.Fprintln(os.Stderr, err)
	if core.IsUserFacing(err) {
		color.New(color.FgYellow).Fprintln(os.Stderr, core.FormatUserError(err))
	}
	os.Exit(1)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	if command == "list" {
		fmt.Println(strings.Join(report.Keys(), "\n"))
		return
	}

	// A missing .env file is fine; the environment may already be set.
	envLoaded := godotenv.Overload() == nil

	cfg, err := config.Load()
	if err != nil {
		fail("config", err)
	}
	if *formatFlag != "" {
		cfg.Output.Format = *formatFlag
	}
	if *outputFlag != "" {
		cfg.Output.Path = *outputFlag
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, runID := logging.WithRunID(ctx)

	slog.Debug("configuration loaded", "config", cfg.String(), "env_file", envLoaded, "run_id", runID)

	if err := run(ctx, cfg, command, *dirFlag); err != nil {
		fail(command, err)
	}
}
