package history

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/ports"
)

// FileStore appends history records to a jsonl file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the given jsonl path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append implements ports.HistoryRepository.
func (f *FileStore) Append(_ context.Context, record domain.HistoryRecord) error {
	record, err := prepare(record)
	if err != nil {
		return domain.Persistence("append history", err)
	}
	data, err := json.Marshal(record)
	if err != nil {
		return domain.Persistence("encode history record", err)
	}
	data = append(data, '\n')

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), domain.DirectoryPermissions); err != nil {
		return domain.Persistence("create history dir", err)
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, domain.DataFilePermissions)
	if err != nil {
		return domain.Persistence("open history file", err)
	}
	defer file.Close()
	if _, err := file.Write(data); err != nil {
		return domain.Persistence("write history file", err)
	}
	return nil
}

// List implements ports.HistoryRepository. Lines that fail to decode are skipped.
func (f *FileStore) List(_ context.Context, filter domain.HistoryFilter) ([]domain.HistoryRecord, error) {
	f.mu.Lock()
	data, err := os.ReadFile(f.path)
	f.mu.Unlock()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, domain.Persistence("read history file", err)
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	var records []domain.HistoryRecord
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		var rec domain.HistoryRecord
		if err := json.Unmarshal(line, &rec); err == nil {
			records = append(records, rec)
		}
	}
	return applyFilter(newestFirst(records), filter), nil
}

// Clear removes the history file.
func (f *FileStore) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return domain.Persistence("remove history file", err)
	}
	return nil
}

// Location returns the backing file path.
func (f *FileStore) Location() string {
	return f.path
}

var _ ports.HistoryRepository = (*FileStore)(nil)
