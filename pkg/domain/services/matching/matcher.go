package matching

import "strings"

// ProductMatcher decides whether an order's product string matches a BOM
// entry's product pattern.
//
// The heuristic is deliberately loose and order of checks does not matter:
// a match occurs when any of the following holds:
//   - the product contains the pattern's first whitespace-delimited token
//   - the product equals the pattern
//   - the product starts with the pattern
//
// Downstream pick-list totals depend on this exact looseness, so tightening
// it is a product decision, not a refactor.
type ProductMatcher struct{}

// NewProductMatcher creates a new ProductMatcher
func NewProductMatcher() *ProductMatcher {
	return &ProductMatcher{}
}

// Matches reports whether product matches pattern
func (m *ProductMatcher) Matches(product, pattern string) bool {
	if product == pattern {
		return true
	}
	if pattern != "" && strings.HasPrefix(product, pattern) {
		return true
	}
	if tokens := strings.Fields(pattern); len(tokens) > 0 {
		return strings.Contains(product, tokens[0])
	}
	return false
}
