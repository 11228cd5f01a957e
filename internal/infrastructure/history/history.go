// Package history implements ports.HistoryRepository on SQLite, JSON lines,
// Redis and process memory.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/ports"
)

// Export writes every record, most recent first, as JSON lines.
func Export(ctx context.Context, repo ports.HistoryRepository, w io.Writer) error {
	records, err := repo.List(ctx, domain.HistoryFilter{})
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("encode record %s: %w", rec.ID, err)
		}
	}
	return nil
}

// prepare assigns an ID and timestamp when the caller left them empty.
func prepare(record domain.HistoryRecord) (domain.HistoryRecord, error) {
	if record.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return record, fmt.Errorf("generate record id: %w", err)
		}
		record.ID = id.String()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	return record, nil
}

// matches applies the case-insensitive search of a HistoryFilter.
func matches(rec domain.HistoryRecord, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	for _, field := range []string{rec.Phone, rec.Carrier, rec.CountryOfOrigin, rec.PhoneType} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// newestFirst orders records given in insertion order by descending
// timestamp; among equal timestamps the later insertion comes first.
func newestFirst(records []domain.HistoryRecord) []domain.HistoryRecord {
	out := make([]domain.HistoryRecord, len(records))
	for i := range records {
		out[len(records)-1-i] = records[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// applyFilter searches and limits records already in display order.
func applyFilter(records []domain.HistoryRecord, filter domain.HistoryFilter) []domain.HistoryRecord {
	var out []domain.HistoryRecord
	for _, rec := range records {
		if !matches(rec, filter.Search) {
			continue
		}
		out = append(out, rec)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out
}
