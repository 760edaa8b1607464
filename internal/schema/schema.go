// Package schema defines the expected CSV columns for each input dataset.
package schema

// FieldType represents the expected data type for a CSV field.
type FieldType int

const (
	FieldText FieldType = iota
	FieldNumeric
	FieldTokens // space-separated list of ids
)

// FieldSpec defines validation rules for a single CSV column.
type FieldSpec struct {
	Name     string    // Column header name (matched case-insensitively)
	Type     FieldType // Expected data type
	Required bool      // Column must exist in every row
}

// Source identifies one of the input datasets.
type Source string

const (
	Products  Source = "products"
	Orders    Source = "orders"
	Customers Source = "customers"
)

// ProductFieldSpecs defines the expected CSV columns for products.csv.
var ProductFieldSpecs = []FieldSpec{
	{Name: "id", Type: FieldText, Required: true},
	{Name: "name", Type: FieldText, Required: true},
	{Name: "cost", Type: FieldNumeric, Required: true},
}

// OrderFieldSpecs defines the expected CSV columns for orders.csv.
var OrderFieldSpecs = []FieldSpec{
	{Name: "id", Type: FieldText, Required: true},
	{Name: "customer", Type: FieldText, Required: true},
	{Name: "products", Type: FieldTokens, Required: true},
}

// CustomerFieldSpecs defines the expected CSV columns for customers.csv.
var CustomerFieldSpecs = []FieldSpec{
	{Name: "id", Type: FieldText, Required: true},
	{Name: "firstname", Type: FieldText, Required: true},
	{Name: "lastname", Type: FieldText, Required: true},
}

// Specs returns the field specs for a source, or nil if unknown.
func Specs(src Source) []FieldSpec {
	switch src {
	case Products:
		return ProductFieldSpecs
	case Orders:
		return OrderFieldSpecs
	case Customers:
		return CustomerFieldSpecs
	default:
		return nil
	}
}
