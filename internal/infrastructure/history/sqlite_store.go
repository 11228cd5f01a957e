package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/ports"
)

// SQLiteStore persists history in a SQLite database.
// When the database cannot be opened it falls back to a jsonl file next to it.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	fallback *FileStore
	mu       sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path.
func NewSQLiteStore(path string) *SQLiteStore {
	store := &SQLiteStore{path: path}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return store.degrade()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return store.degrade()
	}
	// One connection keeps concurrent appends from tripping SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	store.db = db
	if err := store.init(); err != nil {
		_ = db.Close()
		store.db = nil
		return store.degrade()
	}
	return store
}

func (s *SQLiteStore) degrade() *SQLiteStore {
	s.fallback = NewFileStore(strings.TrimSuffix(s.path, filepath.Ext(s.path)) + ".jsonl")
	return s
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS lookups (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL,
		carrier TEXT,
		country_of_origin TEXT,
		phone_type TEXT,
		timestamp INTEGER NOT NULL
	);`)
	return err
}

// Degraded reports whether the store is running on the jsonl fallback.
func (s *SQLiteStore) Degraded() bool {
	return s.db == nil
}

// Append inserts a new record.
func (s *SQLiteStore) Append(ctx context.Context, record domain.HistoryRecord) error {
	if s.db == nil {
		return s.fallback.Append(ctx, record)
	}
	record, err := prepare(record)
	if err != nil {
		return domain.Persistence("append history", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx, `INSERT INTO lookups
		(id, phone, carrier, country_of_origin, phone_type, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Phone,
		record.Carrier,
		record.CountryOfOrigin,
		record.PhoneType,
		record.Timestamp.UnixNano(),
	)
	if err != nil {
		return domain.Persistence("insert history record", err)
	}
	return nil
}

// likeEscaper makes search text match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// List returns history entries, newest first (limit/search optional).
func (s *SQLiteStore) List(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryRecord, error) {
	if s.db == nil {
		return s.fallback.List(ctx, filter)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT id, phone, carrier, country_of_origin, phone_type, timestamp FROM lookups")
	var args []interface{}
	if filter.Search != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%"
		builder.WriteString(` WHERE lower(phone) LIKE ? ESCAPE '\' OR lower(carrier) LIKE ? ESCAPE '\'` +
			` OR lower(country_of_origin) LIKE ? ESCAPE '\' OR lower(phone_type) LIKE ? ESCAPE '\'`)
		args = append(args, like, like, like, like)
	}
	builder.WriteString(" ORDER BY timestamp DESC, seq DESC")
	if filter.Limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	rows, err := s.db.QueryContext(ctx, builder.String(), args...)
	if err != nil {
		return nil, domain.Persistence("query history", err)
	}
	defer rows.Close()
	var records []domain.HistoryRecord
	for rows.Next() {
		var rec domain.HistoryRecord
		var carrier, country, phoneType sql.NullString
		var ts int64
		if err := rows.Scan(&rec.ID, &rec.Phone, &carrier, &country, &phoneType, &ts); err != nil {
			return nil, domain.Persistence("scan history row", err)
		}
		rec.Carrier = carrier.String
		rec.CountryOfOrigin = country.String
		rec.PhoneType = phoneType.String
		rec.Timestamp = time.Unix(0, ts)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Persistence("iterate history rows", err)
	}
	return records, nil
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if s.db == nil {
		return s.fallback.Clear(ctx)
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM lookups"); err != nil {
		return domain.Persistence("clear history", err)
	}
	return nil
}

// Location returns the sqlite database path, or the fallback file.
func (s *SQLiteStore) Location() string {
	if s.db == nil {
		return s.fallback.Location()
	}
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
