package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	cberror "github.com/msto63/chbrowse/foundation/core/error"
	"github.com/msto63/chbrowse/foundation/utils/filex"
)

// Status is the outcome of a dispatched line
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
	StatusMeta  Status = "meta"
)

// Entry is one recorded browser line
type Entry struct {
	ID        string    `json:"id"`
	Session   string    `json:"session"`
	Line      string    `json:"line"`
	Command   string    `json:"command,omitempty"`
	Status    Status    `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Recorder stores dispatched lines
type Recorder interface {
	Record(ctx context.Context, entry *Entry) error
}

// Lister returns recent lines, newest first
type Lister interface {
	Recent(ctx context.Context, limit int) ([]*Entry, error)
}

// Store is the full history persistence interface
type Store interface {
	Recorder
	Lister
	Prune(ctx context.Context, olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteStore implements Store using SQLite
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// Config holds configuration for the SQLite store
type Config struct {
	Path string
}

// DefaultConfig returns the default store location
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{Path: "./data/history.db"}
	}
	return Config{Path: filepath.Join(home, ".local", "share", "chbrowse", "history.db")}
}

// NewSQLiteStore opens or creates the history database
func NewSQLiteStore(cfg Config) (*SQLiteStore, error) {
	if cfg.Path == "" {
		cfg = DefaultConfig()
	}

	if err := filex.EnsureParent(cfg.Path); err != nil {
		return nil, storageError(err, "creating history directory", "history.NewSQLiteStore")
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, storageError(err, "opening history database", "history.NewSQLiteStore")
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, storageError(err, "initializing history schema", "history.NewSQLiteStore")
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		session TEXT NOT NULL,
		line TEXT NOT NULL,
		command TEXT,
		status TEXT NOT NULL,
		error TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_history_session ON history(session);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Record stores an entry, filling in ID and CreatedAt when unset
func (s *SQLiteStore) Record(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fill(entry)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history (id, session, line, command, status, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Session, entry.Line, nullable(entry.Command), string(entry.Status), nullable(entry.Error), entry.CreatedAt)
	if err != nil {
		return storageError(err, "inserting history entry", "history.Record")
	}

	return nil
}

// Recent returns up to limit entries, newest first. limit <= 0 means all.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, session, line, command, status, error, created_at FROM history ORDER BY created_at DESC, rowid DESC`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError(err, "querying history", "history.Recent")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var entry Entry
		var command, errText sql.NullString
		var status string

		if err := rows.Scan(&entry.ID, &entry.Session, &entry.Line, &command, &status, &errText, &entry.CreatedAt); err != nil {
			return nil, storageError(err, "scanning history entry", "history.Recent")
		}

		entry.Command = command.String
		entry.Error = errText.String
		entry.Status = Status(status)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError(err, "iterating history", "history.Recent")
	}

	return entries, nil
}

// Prune deletes entries older than olderThan
func (s *SQLiteStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	result, err := s.db.ExecContext(ctx, `DELETE FROM history WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, storageError(err, "pruning history", "history.Prune")
	}
	deleted, _ := result.RowsAffected()
	return deleted, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// MemoryStore is an in-memory implementation for tests and for runs
// without a database
type MemoryStore struct {
	mu      sync.RWMutex
	entries []*Entry
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Record stores a copy of entry
func (m *MemoryStore) Record(_ context.Context, entry *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	fill(entry)
	e := *entry
	m.entries = append(m.entries, &e)
	return nil
}

// Recent returns up to limit entries, newest first
func (m *MemoryStore) Recent(_ context.Context, limit int) ([]*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Entry, 0, len(m.entries))
	for i := len(m.entries) - 1; i >= 0; i-- {
		e := *m.entries[i]
		out = append(out, &e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Prune deletes entries older than olderThan
func (m *MemoryStore) Prune(_ context.Context, olderThan time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	kept := m.entries[:0]
	var deleted int64
	for _, e := range m.entries {
		if e.CreatedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	m.entries = kept
	return deleted, nil
}

// Close is a no-op
func (m *MemoryStore) Close() error {
	return nil
}

// NewSessionID returns a fresh browser session ID
func NewSessionID() string {
	return uuid.NewString()
}

func fill(entry *Entry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if entry.Status == "" {
		entry.Status = StatusOK
	}
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func storageError(err error, msg, op string) error {
	return cberror.Wrap(err, msg).
		WithCode(cberror.CodeStorageError).
		WithOperation(op)
}
