package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BOMEntry is a static configuration row mapping a product pattern to a
// component and the quantity of that component consumed per finished unit
type BOMEntry struct {
	Product   string // pattern, matched loosely against order product strings
	Component string
	Per       decimal.Decimal
}

// NewBOMEntry creates a validated BOMEntry
func NewBOMEntry(product, component string, per decimal.Decimal) (*BOMEntry, error) {
	if product == "" {
		return nil, fmt.Errorf("product pattern cannot be empty")
	}
	if component == "" {
		return nil, fmt.Errorf("component cannot be empty")
	}
	if !per.IsPositive() {
		return nil, fmt.Errorf("per-unit quantity must be positive, got %s", per)
	}

	return &BOMEntry{
		Product:   product,
		Component: component,
		Per:       per,
	}, nil
}
