package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "info", "json")

	logger.Debug("hidden")
	logger.Info("report written", "report", "order-cost", "rows", 8)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1 (debug filtered): %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid JSON log line: %v", err)
	}
	if entry["msg"] != "report written" || entry["report"] != "order-cost" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "debug", "text").Debug("source read", "source", "orders")

	if !strings.Contains(buf.String(), "source=orders") {
		t.Errorf("text output = %q, want key=value pairs", buf.String())
	}
}

func TestRunID(t *testing.T) {
	if got := RunID(context.Background()); got != "" {
		t.Errorf("RunID(empty ctx) = %q, want empty", got)
	}

	ctx, id := WithRunID(context.Background())
	if id == "" {
		t.Fatal("WithRunID returned empty id")
	}
	if got := RunID(ctx); got != id {
		t.Errorf("RunID() = %q, want %q", got, id)
	}

	_, other := WithRunID(context.Background())
	if other == id {
		t.Error("run ids should be unique")
	}
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(New(&buf, "info", "json"))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx, runID := WithRunID(context.Background())
	ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-42")

	WithFields(ctx, "report", "customers-ranking").Info("report generated")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON log line: %v", err)
	}
	if entry["request_id"] != "req-42" {
		t.Errorf("request_id = %v, want req-42", entry["request_id"])
	}
	if entry["run_id"] != runID {
		t.Errorf("run_id = %v, want %s", entry["run_id"], runID)
	}
	if entry["report"] != "customers-ranking" {
		t.Errorf("report = %v, want customers-ranking", entry["report"])
	}
}
