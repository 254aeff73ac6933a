package entities

import "errors"

// ErrNotFound indicates a referenced order id or stage index does not exist
var ErrNotFound = errors.New("not found")

// ErrDuplicateID indicates an insert would break the id uniqueness invariant
var ErrDuplicateID = errors.New("duplicate id")

// ErrInvalidWindow indicates a non-positive or unparsable pick-list window
var ErrInvalidWindow = errors.New("invalid window")
