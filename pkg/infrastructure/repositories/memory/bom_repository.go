package memory

import (
	"github.com/prateekshas457/magu-orderhub/pkg/domain/entities"
	"github.com/prateekshas457/magu-orderhub/pkg/domain/repositories"
)

// BOMRepository provides in-memory storage for the static BOM table
type BOMRepository struct {
	entries []entities.BOMEntry
}

// NewBOMRepository creates a BOM repository with room for the expected rows
func NewBOMRepository(expectedEntries int) *BOMRepository {
	return &BOMRepository{
		entries: make([]entities.BOMEntry, 0, expectedEntries),
	}
}

// Verify interface compliance
var _ repositories.BOMRepository = (*BOMRepository)(nil)

// LoadEntries loads BOM rows into the repository
func (r *BOMRepository) LoadEntries(entries []*entities.BOMEntry) error {
	for _, entry := range entries {
		r.AddEntry(*entry)
	}
	return nil
}

// AddEntry adds a single BOM row
func (r *BOMRepository) AddEntry(entry entities.BOMEntry) {
	r.entries = append(r.entries, entry)
}

// GetAllEntries returns all BOM rows
func (r *BOMRepository) GetAllEntries() ([]*entities.BOMEntry, error) {
	var entries []*entities.BOMEntry
	for i := range r.entries {
		entry := r.entries[i]
		entries = append(entries, &entry)
	}
	return entries, nil
}
