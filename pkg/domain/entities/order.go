package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderID uniquely identifies a customer order within a session
type OrderID string

// StageName identifies one named step in the ordered production pipeline
type StageName string

// Quantity represents an integer quantity value for discrete manufacturing units
type Quantity int64

// OrderItem is an explicit, order-specific parts line that supplements
// BOM-derived material requirements
type OrderItem struct {
	Name string
	Qty  Quantity
}

// Order represents one customer order moving through the production pipeline
type Order struct {
	ID       OrderID
	Customer string
	Product  string
	Qty      Quantity
	Value    decimal.Decimal
	Due      *time.Time // day granularity, nil when no due date is set
	Stage    StageName
	Assigned string
	Notes    string
	Items    []OrderItem
}

// NewOrder creates a validated Order
func NewOrder(
	id OrderID,
	customer, product string,
	qty Quantity,
	value decimal.Decimal,
	due *time.Time,
	stage StageName,
) (*Order, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("order id cannot be empty")
	}
	if product == "" {
		return nil, fmt.Errorf("product cannot be empty")
	}
	if qty <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", qty)
	}

	return &Order{
		ID:       id,
		Customer: customer,
		Product:  product,
		Qty:      qty,
		Value:    value,
		Due:      due,
		Stage:    stage,
	}, nil
}
