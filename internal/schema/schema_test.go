package schema

import "testing"

func TestSpecs(t *testing.T) {
	tests := []struct {
		src     Source
		columns []string
		numeric string
	}{
		{Products, []string{"id", "name", "cost"}, "cost"},
		{Orders, []string{"id", "customer", "products"}, ""},
		{Customers, []string{"id", "firstname", "lastname"}, ""},
	}

	for _, tt := range tests {
		specs := Specs(tt.src)
		if len(specs) != len(tt.columns) {
			t.Fatalf("%s: got %d specs, want %d", tt.src, len(specs), len(tt.columns))
		}
		for i, spec := range specs {
			if spec.Name != tt.columns[i] {
				t.Errorf("%s[%d] = %q, want %q", tt.src, i, spec.Name, tt.columns[i])
			}
			if !spec.Required {
				t.Errorf("%s.%s should be required", tt.src, spec.Name)
			}
			if (spec.Type == FieldNumeric) != (spec.Name == tt.numeric) {
				t.Errorf("%s.%s numeric = %v", tt.src, spec.Name, spec.Type == FieldNumeric)
			}
		}
	}

	if Specs("invoices") != nil {
		t.Error("unknown source should have no specs")
	}
}
