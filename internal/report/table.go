package report

import (
	"encoding/json"
	"io"

	"github.com/segmentio/parquet-go"
)

// Table is an assembled report: a fixed header and one typed cell per
// column in every row. Numeric cells stay float64 until a Formatter
// renders them.
type Table struct {
	Key    string
	Header []string
	Rows   [][]any

	// jsonl and parquet write the typed records behind Rows. Set by newTable.
	jsonl   func(w io.Writer) error
	parquet func(w io.Writer) error
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// newTable builds a Table from typed records. cells must return values in
// header order.
func newTable[T any](key string, header []string, records []T, cells func(T) []any) *Table {
	rows := make([][]any, 0, len(records))
	for _, rec := range records {
		rows = append(rows, cells(rec))
	}

	return &Table{
		Key:    key,
		Header: header,
		Rows:   rows,
		jsonl: func(w io.Writer) error {
			enc := json.NewEncoder(w)
			for _, rec := range records {
				if err := enc.Encode(rec); err != nil {
					return err
				}
			}
			return nil
		},
		parquet: func(w io.Writer) error {
			pw := parquet.NewGenericWriter[T](w)
			if _, err := pw.Write(records); err != nil {
				return err
			}
			return pw.Close()
		},
	}
}
