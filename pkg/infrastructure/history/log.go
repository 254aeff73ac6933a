package history

import (
	"sync"

	"github.com/prateekshas457/magu-orderhub/pkg/domain/entities"
)

// DefaultCapacity bounds the undo log when no capacity is configured
const DefaultCapacity = 50

// Log is a bounded, most-recent-first record of reversible actions.
// Once the capacity is exceeded the oldest entries are discarded silently;
// undo is strictly LIFO and there is no redo stack.
type Log struct {
	mu       sync.Mutex
	capacity int
	actions  []entities.Action
}

// NewLog creates an action log bounded at the given capacity
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		capacity: capacity,
		actions:  make([]entities.Action, 0, capacity),
	}
}

// Push prepends an action and truncates to the most recent entries
func (l *Log) Push(action entities.Action) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.actions = append([]entities.Action{action}, l.actions...)
	if len(l.actions) > l.capacity {
		l.actions = l.actions[:l.capacity]
	}
}

// Pop removes and returns the most recent action. The second return value
// is false when the log is empty.
func (l *Log) Pop() (entities.Action, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.actions) == 0 {
		return entities.Action{}, false
	}

	action := l.actions[0]
	l.actions = l.actions[1:]
	return action, true
}

// Len returns the number of recorded actions
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.actions)
}

// Recent returns copies of up to n actions, most recent first
func (l *Log) Recent(n int) []entities.Action {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n < 0 || n > len(l.actions) {
		n = len(l.actions)
	}

	recent := make([]entities.Action, n)
	copy(recent, l.actions[:n])
	return recent
}
