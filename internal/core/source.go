package core

import (
	"context"
	"slices"
	"sync"

	"github.com/JonMunkholm/atelier/internal/table"
)

// RecordSource supplies the raw records of a list page. Implementations do
// the I/O; the table engine only ever sees the finished slice.
type RecordSource interface {
	Records(ctx context.Context, def TableDefinition) ([]table.Record, error)
}

// Counter is implemented by sources that can count records without loading them.
type Counter interface {
	Count(ctx context.Context, def TableDefinition) (int64, error)
}

// MemorySource serves records held in memory, keyed by source name.
// Used for fixtures and tests.
type MemorySource struct {
	mu      sync.RWMutex
	records map[string][]table.Record
}

// NewMemorySource creates an empty MemorySource.
func NewMemorySource() *MemorySource {
	return &MemorySource{records: make(map[string][]table.Record)}
}

// Set replaces the records for a source name.
func (m *MemorySource) Set(source string, records []table.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[source] = slices.Clone(records)
}

// Records returns a copy of the slice stored for def. Unknown sources are empty.
func (m *MemorySource) Records(ctx context.Context, def TableDefinition) ([]table.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.records[def.SourceName()]), nil
}

// Count returns the number of stored records for def.
func (m *MemorySource) Count(ctx context.Context, def TableDefinition) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.records[def.SourceName()])), nil
}
