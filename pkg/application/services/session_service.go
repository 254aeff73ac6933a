package services

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/prateekshas457/magu-orderhub/pkg/domain/entities"
	"github.com/prateekshas457/magu-orderhub/pkg/domain/repositories"
	"github.com/prateekshas457/magu-orderhub/pkg/domain/services/calendar"
	"github.com/prateekshas457/magu-orderhub/pkg/infrastructure/history"
)

// Clock returns the current time; injectable for deterministic tests
type Clock func() time.Time

// StageColumn is one kanban column: a stage and the orders pinned to it,
// most-recent-first
type StageColumn struct {
	Stage  entities.StageName
	Orders []*entities.Order
}

// SessionService owns one session's stage registry, order store, and undo
// history. The triple is treated as a single atomic unit: every
// inspect-then-mutate operation executes under one lock.
type SessionService struct {
	mu       sync.Mutex
	registry repositories.StageRegistry
	orders   repositories.OrderRepository
	history  *history.Log
	logger   *slog.Logger
	now      Clock
}

// NewSessionService creates a session over the given registry, store, and log
func NewSessionService(
	registry repositories.StageRegistry,
	orders repositories.OrderRepository,
	hist *history.Log,
	logger *slog.Logger,
) *SessionService {
	return NewSessionServiceWithClock(registry, orders, hist, logger, time.Now)
}

// NewSessionServiceWithClock creates a session with a custom clock
func NewSessionServiceWithClock(
	registry repositories.StageRegistry,
	orders repositories.OrderRepository,
	hist *history.Log,
	logger *slog.Logger,
	now Clock,
) *SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionService{
		registry: registry,
		orders:   orders,
		history:  hist,
		logger:   logger,
		now:      now,
	}
}

// AddOrder inserts a new order at the front of the store and records a
// reversible Add action. Fails with entities.ErrDuplicateID when the id is
// already present; a failed add leaves state and history unchanged.
func (s *SessionService) AddOrder(order *entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.orders.Add(order); err != nil {
		return err
	}
	s.history.Push(entities.NewAddAction(order, s.now()))

	s.logger.Debug("order added",
		"id", string(order.ID),
		"product", order.Product,
		"stage", string(order.Stage))
	return nil
}

// MoveOrder pins an order to a new stage and records a reversible Move
// action capturing the exact prior stage. The target stage is not validated
// against the registry. Fails with entities.ErrNotFound for an unknown id.
func (s *SessionService) MoveOrder(id entities.OrderID, toStage entities.StageName) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.moveLocked(id, toStage)
}

func (s *SessionService) moveLocked(id entities.OrderID, toStage entities.StageName) error {
	fromStage, err := s.orders.SetStage(id, toStage)
	if err != nil {
		return err
	}
	s.history.Push(entities.NewMoveAction(id, fromStage, toStage, s.now()))

	s.logger.Debug("order moved",
		"id", string(id),
		"from", string(fromStage),
		"to", string(toStage))
	return nil
}

// RemoveOrder deletes an order. Deletion is not recorded in the history log
// and cannot be undone.
func (s *SessionService) RemoveOrder(id entities.OrderID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.orders.Remove(id); err != nil {
		return err
	}
	s.logger.Debug("order removed", "id", string(id))
	return nil
}

// Undo pops the most recent action and applies its inverse to the store.
// It returns false when the history is empty. Undo is strictly LIFO,
// consumes the entry, and never records a new action.
func (s *SessionService) Undo() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	action, ok := s.history.Pop()
	if !ok {
		return false, nil
	}

	switch action.Kind {
	case entities.ActionAdd:
		// Inverse: remove the first order with a matching id. A stale
		// entry whose order was already deleted still consumes the undo.
		if err := s.orders.Remove(action.OrderID); err != nil && !errors.Is(err, entities.ErrNotFound) {
			return false, err
		}
	case entities.ActionMove:
		// Inverse: restore the captured prior stage unconditionally.
		if _, err := s.orders.SetStage(action.OrderID, action.From); err != nil && !errors.Is(err, entities.ErrNotFound) {
			return false, err
		}
	}

	s.logger.Debug("action undone",
		"kind", action.Kind.String(),
		"id", string(action.OrderID))
	return true, nil
}

// AdvanceOrder moves an order to the next stage in the registry sequence,
// saturating at the last stage. An order whose current stage is no longer in
// the registry is orphaned and advancing it is a no-op.
func (s *SessionService) AdvanceOrder(id entities.OrderID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.orders.Get(id)
	if err != nil {
		return err
	}

	index, found := s.registry.IndexOf(order.Stage)
	if !found {
		return nil
	}

	next := index + 1
	if last := s.registry.Len() - 1; next > last {
		next = last
	}

	target := s.registry.Stages()[next]
	if target == order.Stage {
		return nil
	}
	return s.moveLocked(id, target)
}

// AddStage appends a stage to the registry
func (s *SessionService) AddStage(name entities.StageName) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.AddStage(name)
}

// RenameStage renames the stage at index. Orders pointing at the old name
// are not updated and become orphaned.
func (s *SessionService) RenameStage(index int, name entities.StageName) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.RenameStage(index, name)
}

// RemoveStage deletes the stage at index, orphaning any orders still on it
func (s *SessionService) RemoveStage(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.RemoveStage(index)
}

// Orders returns every order, most-recent-first
func (s *SessionService) Orders() ([]*entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.All()
}

// Board returns the kanban projection: one column per registry stage, in
// registry order. Orphaned orders appear in no column.
func (s *SessionService) Board() ([]StageColumn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orders.All()
	if err != nil {
		return nil, err
	}

	byStage := make(map[entities.StageName][]*entities.Order)
	for _, order := range orders {
		byStage[order.Stage] = append(byStage[order.Stage], order)
	}

	stages := s.registry.Stages()
	board := make([]StageColumn, 0, len(stages))
	for _, stage := range stages {
		board = append(board, StageColumn{
			Stage:  stage,
			Orders: byStage[stage],
		})
	}
	return board, nil
}

// Stages returns the current stage sequence
func (s *SessionService) Stages() []entities.StageName {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.Stages()
}

// HistoryLen returns the number of undoable actions; the UI uses it to
// enable the undo control
func (s *SessionService) HistoryLen() int {
	return s.history.Len()
}

// RecentActions returns up to n history entries, most recent first
func (s *SessionService) RecentActions(n int) []entities.Action {
	return s.history.Recent(n)
}

// Overdue reports whether an order's due date has passed, at day granularity
func (s *SessionService) Overdue(order *entities.Order) bool {
	return calendar.Overdue(order.Due, s.now())
}
