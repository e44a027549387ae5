// Package catalog provides the recipe collection: an in-memory index,
// the built-in records, and loaders for catalog files.
package catalog

import (
	"fmt"
	"slices"

	"github.com/hammamikhairi/recipebrowser/internal/domain"
	"github.com/hammamikhairi/recipebrowser/internal/logger"
)

// Compile-time interface check.
var _ domain.CatalogIndex = (*MemoryIndex)(nil)

// MemoryIndex holds a fixed collection in its original order. It is never
// mutated after construction, so concurrent reads need no locking.
type MemoryIndex struct {
	records []domain.RecipeRecord
	byID    map[int]int // id -> position in records
	log     *logger.Logger
}

// NewMemoryIndex indexes records, keeping their order. Ids must be unique.
func NewMemoryIndex(records []domain.RecipeRecord, log *logger.Logger) (*MemoryIndex, error) {
	idx := &MemoryIndex{
		records: slices.Clone(records),
		byID:    make(map[int]int, len(records)),
		log:     log,
	}
	for i, r := range idx.records {
		if _, dup := idx.byID[r.ID]; dup {
			return nil, fmt.Errorf("recipe %d (%s): %w", r.ID, r.Name, domain.ErrDuplicateID)
		}
		idx.byID[r.ID] = i
	}
	log.Debug("indexed %d recipes", len(idx.records))
	return idx, nil
}

// NewSeededIndex creates an index over the built-in recipes.
func NewSeededIndex(log *logger.Logger) *MemoryIndex {
	idx, err := NewMemoryIndex(Builtin(), log)
	if err != nil {
		// Builtin ids are fixed and unique.
		panic(err)
	}
	return idx
}

// All returns a copy of the records in collection order.
func (m *MemoryIndex) All() []domain.RecipeRecord {
	return slices.Clone(m.records)
}

// FindByID returns the record with the given id.
func (m *MemoryIndex) FindByID(id int) (domain.RecipeRecord, bool) {
	i, ok := m.byID[id]
	if !ok {
		m.log.Debug("recipe not found: %d", id)
		return domain.RecipeRecord{}, false
	}
	return m.records[i], true
}

// Len returns the number of records.
func (m *MemoryIndex) Len() int { return len(m.records) }
