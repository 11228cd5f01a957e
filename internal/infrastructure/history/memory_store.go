package history

import (
	"context"
	"sync"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/ports"
)

// MemoryStore keeps records for the lifetime of the process.
type MemoryStore struct {
	mu      sync.Mutex
	records []domain.HistoryRecord
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append implements ports.HistoryRepository.
func (m *MemoryStore) Append(_ context.Context, record domain.HistoryRecord) error {
	record, err := prepare(record)
	if err != nil {
		return domain.Persistence("append history", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

// List implements ports.HistoryRepository.
func (m *MemoryStore) List(_ context.Context, filter domain.HistoryFilter) ([]domain.HistoryRecord, error) {
	m.mu.Lock()
	snapshot := append([]domain.HistoryRecord(nil), m.records...)
	m.mu.Unlock()
	return applyFilter(newestFirst(snapshot), filter), nil
}

// Clear implements ports.HistoryRepository.
func (m *MemoryStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	return nil
}

// Location describes where records live.
func (m *MemoryStore) Location() string {
	return "memory"
}

var _ ports.HistoryRepository = (*MemoryStore)(nil)
