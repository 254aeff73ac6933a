package repositories

import "github.com/prateekshas457/magu-orderhub/pkg/domain/entities"

// BOMRepository provides access to the static bill-of-materials table
type BOMRepository interface {
	GetAllEntries() ([]*entities.BOMEntry, error)
	LoadEntries(entries []*entities.BOMEntry) error
}
