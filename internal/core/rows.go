package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyFile is returned when an input has no header row.
var ErrEmptyFile = errors.New("empty file: header row is mandatory")

// ReadRows parses CSV data whose first record is the header and returns one
// Row per data record. Header names are trimmed and lower-cased; cell values
// are kept verbatim. Records shorter than the header simply lack the trailing
// columns, which the decoder reports as malformed.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("invalid csv header: %w", err)
	}
	header = cleanHeader(header)

	var rows []Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid csv: %w", err)
		}

		line, _ := cr.FieldPos(0)
		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i >= len(rec) {
				break
			}
			fields[name] = rec[i]
		}
		rows = append(rows, Row{Line: line, Fields: fields})
	}

	return rows, nil
}

// ReadRowsFile opens path and parses it with ReadRows.
// It also returns the number of bytes read from disk.
func ReadRowsFile(path string) ([]Row, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, &MissingFileError{Path: path, Err: err}
	}
	defer f.Close()

	input, counter := WrapInput(f)
	rows, err := ReadRows(input)
	if err != nil {
		return nil, counter.BytesRead, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, counter.BytesRead, nil
}

func cleanHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.ToLower(strings.TrimSpace(h))
	}
	return out
}
