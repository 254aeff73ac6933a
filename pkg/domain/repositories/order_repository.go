package repositories

import "github.com/prateekshas457/magu-orderhub/pkg/domain/entities"

// OrderRepository provides access to the session's order collection
type OrderRepository interface {
	// Add inserts an order at the front of the collection. Fails with
	// entities.ErrDuplicateID when the id is already present.
	Add(order *entities.Order) error

	// Get returns a copy of the order with the given id
	Get(id entities.OrderID) (*entities.Order, error)

	// SetStage pins the order to a new stage and returns the stage held
	// immediately before the change
	SetStage(id entities.OrderID, stage entities.StageName) (entities.StageName, error)

	// Remove deletes the first order with the given id
	Remove(id entities.OrderID) error

	// All returns every order, most-recent-first
	All() ([]*entities.Order, error)
}
