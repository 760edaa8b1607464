package core

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadRows(t *testing.T) {
	input := "ID, Name ,COST\n0,screwdriver,2.98\n1,\"hammer, claw\",6.49\n"

	rows, err := ReadRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	if rows[0].Line != 2 || rows[1].Line != 3 {
		t.Errorf("lines = %d,%d, want 2,3", rows[0].Line, rows[1].Line)
	}
	if v, _ := rows[1].Get("name"); v != "hammer, claw" {
		t.Errorf("name = %q, want %q", v, "hammer, claw")
	}
	if v, ok := rows[0].Get("cost"); !ok || v != "2.98" {
		t.Errorf("cost = %q (ok=%v), want 2.98", v, ok)
	}
}

func TestReadRows_KeepsCellValuesVerbatim(t *testing.T) {
	rows, err := ReadRows(strings.NewReader("id,firstname,lastname\n 7 ,Ada , Lovelace\n"))
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}
	if v, _ := rows[0].Get("id"); v != " 7 " {
		t.Errorf("id = %q, want %q", v, " 7 ")
	}
	if v, _ := rows[0].Get("lastname"); v != " Lovelace" {
		t.Errorf("lastname = %q, want %q", v, " Lovelace")
	}
}

func TestReadRows_ShortRecord(t *testing.T) {
	rows, err := ReadRows(strings.NewReader("id,name,cost\n0,screwdriver\n"))
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}
	if _, ok := rows[0].Get("cost"); ok {
		t.Error("short record should not carry the cost column")
	}

	_, err = DecodeProducts(rows)
	var rowErr *MalformedRowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("DecodeProducts() error = %v, want *MalformedRowError", err)
	}
}

func TestReadRows_HeaderOnly(t *testing.T) {
	rows, err := ReadRows(strings.NewReader("id,name,cost\n"))
	if err != nil {
		t.Fatalf("ReadRows() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestReadRows_Empty(t *testing.T) {
	_, err := ReadRows(strings.NewReader(""))
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("error = %v, want ErrEmptyFile", err)
	}
}

func TestReadRowsFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	_, _, err := ReadRowsFile(path)
	var missing *MissingFileError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want *MissingFileError", err)
	}
	if missing.Path != path {
		t.Errorf("Path = %q, want %q", missing.Path, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("MissingFileError should unwrap to os.ErrNotExist")
	}
}

func TestReadRowsFile_BOMAndByteCount(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("id,firstname,lastname\n0,John,Maxwell\n")...)
	path := filepath.Join(t.TempDir(), "customers.csv")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	rows, n, err := ReadRowsFile(path)
	if err != nil {
		t.Fatalf("ReadRowsFile() error = %v", err)
	}
	if n != int64(len(content)) {
		t.Errorf("bytes read = %d, want %d", n, len(content))
	}
	if v, ok := rows[0].Get("id"); !ok || v != "0" {
		t.Errorf("id = %q (ok=%v); BOM must not leak into the first header", v, ok)
	}
}
