package memory

import (
	"fmt"

	"github.com/prateekshas457/magu-orderhub/pkg/domain/entities"
	"github.com/prateekshas457/magu-orderhub/pkg/domain/repositories"
)

// OrderRepository provides in-memory order storage, most-recent-first
type OrderRepository struct {
	orders []entities.Order
}

// NewOrderRepository creates a new in-memory order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: []entities.Order{},
	}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// Add inserts an order at the front of the collection so newest orders
// render first. Fails with entities.ErrDuplicateID when the id exists.
func (r *OrderRepository) Add(order *entities.Order) error {
	for i := range r.orders {
		if r.orders[i].ID == order.ID {
			return fmt.Errorf("order %s: %w", order.ID, entities.ErrDuplicateID)
		}
	}

	r.orders = append([]entities.Order{*order}, r.orders...)
	return nil
}

// Get returns a copy of the order with the given id
func (r *OrderRepository) Get(id entities.OrderID) (*entities.Order, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			order := r.orders[i]
			return &order, nil
		}
	}
	return nil, fmt.Errorf("order %s: %w", id, entities.ErrNotFound)
}

// SetStage pins the order to a new stage and returns the stage held
// immediately before the change. The target stage is not validated against
// any registry.
func (r *OrderRepository) SetStage(id entities.OrderID, stage entities.StageName) (entities.StageName, error) {
	for i := range r.orders {
		if r.orders[i].ID == id {
			prior := r.orders[i].Stage
			r.orders[i].Stage = stage
			return prior, nil
		}
	}
	return "", fmt.Errorf("order %s: %w", id, entities.ErrNotFound)
}

// Remove deletes the first order with the given id
func (r *OrderRepository) Remove(id entities.OrderID) error {
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("order %s: %w", id, entities.ErrNotFound)
}

// All returns copies of every order, most-recent-first
func (r *OrderRepository) All() ([]*entities.Order, error) {
	orders := make([]*entities.Order, 0, len(r.orders))
	for i := range r.orders {
		order := r.orders[i]
		orders = append(orders, &order)
	}
	return orders, nil
}

// Len returns the number of stored orders
func (r *OrderRepository) Len() int {
	return len(r.orders)
}
