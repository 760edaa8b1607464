package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Output formats.
const (
	FormatCSV     = "csv"
	FormatJSON    = "json"
	FormatTable   = "table"
	FormatParquet = "parquet"
)

// Formats lists the supported output formats.
var Formats = []string{FormatCSV, FormatJSON, FormatTable, FormatParquet}

// Formatter defines the interface for report writers.
type Formatter interface {
	// Format writes t in the formatter's specific format
	Format(t *Table) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// NewFormatter returns the formatter for a format name.
func NewFormatter(format string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(format) {
	case FormatCSV, "":
		return NewCSVFormatter(w), nil
	case FormatJSON, "jsonl":
		return NewJSONFormatter(w), nil
	case FormatTable:
		return NewTableFormatter(w), nil
	case FormatParquet:
		return NewParquetFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}

// ContentType returns the HTTP content type of a format.
func ContentType(format string) string {
	switch strings.ToLower(format) {
	case FormatJSON, "jsonl":
		return "application/x-ndjson"
	case FormatTable:
		return "text/plain; charset=utf-8"
	case FormatParquet:
		return "application/vnd.apache.parquet"
	default:
		return "text/csv; charset=utf-8"
	}
}

// Extension returns the file extension used when writing a format to disk.
func Extension(format string) string {
	switch strings.ToLower(format) {
	case FormatJSON, "jsonl":
		return ".jsonl"
	case FormatTable:
		return ".txt"
	case FormatParquet:
		return ".parquet"
	default:
		return ".csv"
	}
}

// CSVFormatter writes a header row followed by one record per row.
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes t as CSV
func (c *CSVFormatter) Format(t *Table) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(t.Header); err != nil {
		return err
	}

	record := make([]string, len(t.Header))
	for _, row := range t.Rows {
		for i := range record {
			record[i] = formatValue(row[i])
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// JSONFormatter writes one JSON object per row (JSON Lines).
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes t as JSON Lines. Keys follow the header order and numbers
// are encoded directly from float64.
func (j *JSONFormatter) Format(t *Table) error {
	if t.jsonl == nil {
		return fmt.Errorf("report %q has no typed records", t.Key)
	}
	return t.jsonl(j.writer)
}

// TableFormatter renders an aligned text table for terminals.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new text table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format writes t as a text table.
func (f *TableFormatter) Format(t *Table) error {
	tw := tablewriter.NewWriter(f.writer)
	tw.SetHeader(t.Header)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatValue(v)
		}
		tw.Append(cells)
	}
	tw.Render()
	return nil
}

// ParquetFormatter writes the typed records of a table as a parquet file.
type ParquetFormatter struct {
	writer io.Writer
}

// NewParquetFormatter creates a new parquet formatter
func NewParquetFormatter(w io.Writer) *ParquetFormatter {
	return &ParquetFormatter{writer: w}
}

// SetOutput sets the output writer
func (p *ParquetFormatter) SetOutput(w io.Writer) {
	p.writer = w
}

// Format writes t as parquet.
func (p *ParquetFormatter) Format(t *Table) error {
	if t.parquet == nil {
		return fmt.Errorf("report %q has no typed records", t.Key)
	}
	if err := t.parquet(p.writer); err != nil {
		return fmt.Errorf("failed to write parquet: %w", err)
	}
	return nil
}

// formatValue converts a cell to its text form. Floats use the shortest
// representation that parses back to the same value.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
