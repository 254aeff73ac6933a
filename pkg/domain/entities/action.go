package entities

import "time"

// ActionKind discriminates the reversible action variants recorded in the undo log
type ActionKind int

const (
	ActionAdd ActionKind = iota
	ActionMove
)

// String method for ActionKind enum
func (k ActionKind) String() string {
	switch k {
	case ActionAdd:
		return "Add"
	case ActionMove:
		return "Move"
	default:
		return "Unknown"
	}
}

// Action is one reversible undo-log entry. Add actions carry the created
// order; Move actions capture the exact stage held immediately before the
// move, not recomputed at undo time.
type Action struct {
	Kind    ActionKind
	Order   *Order    // set for Add
	OrderID OrderID   // set for both kinds
	From    StageName // set for Move
	To      StageName // set for Move
	At      time.Time
}

// NewAddAction records that order was newly created at the given time
func NewAddAction(order *Order, at time.Time) Action {
	return Action{
		Kind:    ActionAdd,
		Order:   order,
		OrderID: order.ID,
		At:      at,
	}
}

// NewMoveAction records a stage transition for the order with the given id
func NewMoveAction(id OrderID, from, to StageName, at time.Time) Action {
	return Action{
		Kind:    ActionMove,
		OrderID: id,
		From:    from,
		To:      to,
		At:      at,
	}
}
