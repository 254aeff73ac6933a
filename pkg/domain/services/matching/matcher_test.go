package matching

import "testing"

func TestProductMatcher_Matches(t *testing.T) {
	matcher := NewProductMatcher()

	testCases := []struct {
		name    string
		product string
		pattern string
		want    bool
	}{
		{"exact equality", "Alice Crib", "Alice Crib", true},
		{"product starts with pattern", "Alice Crib Deluxe", "Alice Crib", true},
		{"product contains first token", "Custom Alice Bed", "Alice Crib", true},
		{"first token only matters for containment", "Crib Frame", "Alice Crib", false},
		{"no relation", "Oak Table", "Alice Crib", false},
		{"single token pattern substring", "Dining Table Oak", "Table", true},
		{"empty pattern", "Oak Table", "", false},
		{"empty product", "", "Alice Crib", false},
		{"empty product equals empty pattern", "", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := matcher.Matches(tc.product, tc.pattern)
			if got != tc.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tc.product, tc.pattern, got, tc.want)
			}
		})
	}
}
