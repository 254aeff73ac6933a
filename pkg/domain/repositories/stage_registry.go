package repositories

import "github.com/prateekshas457/magu-orderhub/pkg/domain/entities"

// StageRegistry provides access to the ordered catalog of production stages.
// Sequence position is semantically meaningful: it defines the "next stage"
// for advancement and the kanban column order.
type StageRegistry interface {
	// AddStage appends a new stage at the end of the sequence
	AddStage(name entities.StageName) error

	// RenameStage replaces the stage at index in place. Orders still
	// pointing at the old name are not updated and become orphaned.
	RenameStage(index int, name entities.StageName) error

	// RemoveStage deletes the stage at index. Orders referencing it are
	// likewise orphaned.
	RemoveStage(index int) error

	// IndexOf returns the positional index of a stage name
	IndexOf(name entities.StageName) (int, bool)

	// Stages returns a copy of the current sequence
	Stages() []entities.StageName

	Len() int
}
