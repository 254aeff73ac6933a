package memory

import (
	"fmt"

	"github.com/prateekshas457/magu-orderhub/pkg/domain/entities"
	"github.com/prateekshas457/magu-orderhub/pkg/domain/repositories"
)

// StageRegistry holds the ordered production stage sequence in memory.
// There is no referential integrity with stored orders: renaming or removing
// a stage orphans any order still pointing at the old name.
type StageRegistry struct {
	stages []entities.StageName
}

// NewStageRegistry creates a registry seeded with an initial stage sequence
func NewStageRegistry(stages []entities.StageName) *StageRegistry {
	seeded := make([]entities.StageName, len(stages))
	copy(seeded, stages)
	return &StageRegistry{stages: seeded}
}

// Verify interface compliance
var _ repositories.StageRegistry = (*StageRegistry)(nil)

// AddStage appends a new stage at the end of the sequence
func (r *StageRegistry) AddStage(name entities.StageName) error {
	if _, exists := r.IndexOf(name); exists {
		return fmt.Errorf("stage %s: %w", name, entities.ErrDuplicateID)
	}
	r.stages = append(r.stages, name)
	return nil
}

// RenameStage replaces the stage at index in place
func (r *StageRegistry) RenameStage(index int, name entities.StageName) error {
	if index < 0 || index >= len(r.stages) {
		return fmt.Errorf("stage index %d: %w", index, entities.ErrNotFound)
	}
	if existing, exists := r.IndexOf(name); exists && existing != index {
		return fmt.Errorf("stage %s: %w", name, entities.ErrDuplicateID)
	}
	r.stages[index] = name
	return nil
}

// RemoveStage deletes the stage at index
func (r *StageRegistry) RemoveStage(index int) error {
	if index < 0 || index >= len(r.stages) {
		return fmt.Errorf("stage index %d: %w", index, entities.ErrNotFound)
	}
	r.stages = append(r.stages[:index], r.stages[index+1:]...)
	return nil
}

// IndexOf returns the positional index of a stage name
func (r *StageRegistry) IndexOf(name entities.StageName) (int, bool) {
	for i, stage := range r.stages {
		if stage == name {
			return i, true
		}
	}
	return -1, false
}

// Stages returns a copy of the current sequence
func (r *StageRegistry) Stages() []entities.StageName {
	stages := make([]entities.StageName, len(r.stages))
	copy(stages, r.stages)
	return stages
}

// Len returns the number of stages
func (r *StageRegistry) Len() int {
	return len(r.stages)
}
