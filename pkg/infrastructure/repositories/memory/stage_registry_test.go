package memory

import (
	"errors"
	"testing"

	"github.com/prateekshas457/magu-orderhub/pkg/domain/entities"
)

func newTestRegistry() *StageRegistry {
	return NewStageRegistry([]entities.StageName{"Carpentry", "Sanding", "Dispatch"})
}

func TestStageRegistry_AddStageAppends(t *testing.T) {
	registry := newTestRegistry()

	if err := registry.AddStage("Delivered"); err != nil {
		t.Fatalf("AddStage failed: %v", err)
	}

	stages := registry.Stages()
	if stages[len(stages)-1] != "Delivered" {
		t.Errorf("Expected Delivered appended at the end, got %v", stages)
	}

	if err := registry.AddStage("Sanding"); !errors.Is(err, entities.ErrDuplicateID) {
		t.Errorf("Expected ErrDuplicateID for existing stage, got %v", err)
	}
}

func TestStageRegistry_RenameStageInPlace(t *testing.T) {
	registry := newTestRegistry()

	if err := registry.RenameStage(1, "Polishing"); err != nil {
		t.Fatalf("RenameStage failed: %v", err)
	}
	if registry.Stages()[1] != "Polishing" {
		t.Errorf("Expected index 1 renamed to Polishing, got %v", registry.Stages())
	}

	// Renaming a stage to itself is allowed
	if err := registry.RenameStage(0, "Carpentry"); err != nil {
		t.Errorf("Self-rename must succeed: %v", err)
	}

	if err := registry.RenameStage(0, "Dispatch"); !errors.Is(err, entities.ErrDuplicateID) {
		t.Errorf("Expected ErrDuplicateID renaming onto another stage, got %v", err)
	}
	if err := registry.RenameStage(7, "X"); !errors.Is(err, entities.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for out-of-range index, got %v", err)
	}
}

func TestStageRegistry_RemoveStage(t *testing.T) {
	registry := newTestRegistry()

	if err := registry.RemoveStage(1); err != nil {
		t.Fatalf("RemoveStage failed: %v", err)
	}
	if registry.Len() != 2 {
		t.Fatalf("Expected 2 stages after removal, got %d", registry.Len())
	}
	if _, exists := registry.IndexOf("Sanding"); exists {
		t.Error("Removed stage must not be found")
	}

	if err := registry.RemoveStage(-1); !errors.Is(err, entities.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for negative index, got %v", err)
	}
}

func TestStageRegistry_StagesReturnsCopy(t *testing.T) {
	registry := newTestRegistry()

	stages := registry.Stages()
	stages[0] = "Hacked"

	if registry.Stages()[0] != "Carpentry" {
		t.Error("Mutating the returned slice must not affect the registry")
	}
}
