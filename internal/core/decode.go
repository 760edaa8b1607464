package core

// decode.go maps generic header-keyed rows onto the typed entities.
//
// Every row must carry every required column of its source; a missing
// column fails the whole decode with a *MalformedRowError and a cost that
// does not parse fails it with an *InvalidNumericFieldError. No row is
// skipped, so output order always matches input order.

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/JonMunkholm/acme-reports/internal/schema"
)

// DecodeProducts converts rows with columns id,name,cost into products.
func DecodeProducts(rows []Row) ([]Product, error) {
	return decodeAll(rows, schema.Products, func(r fieldReader) Product {
		return Product{
			ID:   r.text("id"),
			Name: r.text("name"),
			Cost: r.number("cost"),
		}
	})
}

// DecodeOrders converts rows with columns id,customer,products into orders.
func DecodeOrders(rows []Row) ([]Order, error) {
	return decodeAll(rows, schema.Orders, func(r fieldReader) Order {
		return Order{
			ID:         r.text("id"),
			CustomerID: r.text("customer"),
			Products:   r.text("products"),
		}
	})
}

// DecodeCustomers converts rows with columns id,firstname,lastname into customers.
func DecodeCustomers(rows []Row) ([]Customer, error) {
	return decodeAll(rows, schema.Customers, func(r fieldReader) Customer {
		return Customer{
			ID:        r.text("id"),
			FirstName: r.text("firstname"),
			LastName:  r.text("lastname"),
		}
	})
}

func decodeAll[T any](rows []Row, src schema.Source, build func(fieldReader) T) ([]T, error) {
	specs := schema.Specs(src)
	out := make([]T, 0, len(rows))

	for _, row := range rows {
		if err := validateRow(row, src, specs); err != nil {
			return nil, err
		}

		out = append(out, build(fieldReader{row: row}))
	}

	return out, nil
}

// validateRow checks required columns and numeric formats before building.
func validateRow(row Row, src schema.Source, specs []schema.FieldSpec) error {
	for _, spec := range specs {
		raw, ok := row.Get(spec.Name)
		if !ok {
			if spec.Required {
				return &MalformedRowError{Source: src, Line: row.Line, Column: spec.Name}
			}
			continue
		}

		if spec.Type == schema.FieldNumeric {
			if _, err := parseNumber(raw); err != nil {
				return &InvalidNumericFieldError{
					Source: src,
					Line:   row.Line,
					Column: spec.Name,
					Value:  raw,
					Err:    err,
				}
			}
		}
	}
	return nil
}

// errNotDecimal rejects inputs ParseFloat accepts that are not plain decimals.
var errNotDecimal = errors.New("not a finite decimal number")

// parseNumber parses a decimal cell. Surrounding whitespace is ignored.
// NaN, infinities and hex floats are rejected.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, errNotDecimal
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotDecimal
	}
	return f, nil
}

// fieldReader reads cells of a row that already passed validateRow.
type fieldReader struct {
	row Row
}

func (r fieldReader) text(col string) string {
	v, _ := r.row.Get(col)
	return v
}

func (r fieldReader) number(col string) float64 {
	raw, _ := r.row.Get(col)
	f, _ := parseNumber(raw)
	return f
}
