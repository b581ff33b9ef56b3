package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cberror "github.com/msto63/chbrowse/foundation/core/error"
)

func newSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(Config{Path: filepath.Join(t.TempDir(), "sub", "history.db")})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"sqlite": newSQLite(t),
		"memory": NewMemoryStore(),
	}
}

func TestRecordAndRecent(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			session := NewSessionID()
			base := time.Now().Add(-time.Minute)

			lines := []string{"factorial 5", "nonexistent 1", "list"}
			for i, line := range lines {
				entry := &Entry{
					Session:   session,
					Line:      line,
					CreatedAt: base.Add(time.Duration(i) * time.Second),
				}
				if i == 1 {
					entry.Status = StatusError
					entry.Error = "unknown command: nonexistent"
				}
				require.NoError(t, store.Record(ctx, entry))
				_, err := uuid.Parse(entry.ID)
				assert.NoError(t, err, "ID should be a UUID")
			}

			recent, err := store.Recent(ctx, 2)
			require.NoError(t, err)
			require.Len(t, recent, 2)
			assert.Equal(t, "list", recent[0].Line)
			assert.Equal(t, StatusOK, recent[0].Status)
			assert.Equal(t, "nonexistent 1", recent[1].Line)
			assert.Equal(t, StatusError, recent[1].Status)
			assert.Equal(t, "unknown command: nonexistent", recent[1].Error)
			assert.Equal(t, session, recent[1].Session)

			all, err := store.Recent(ctx, 0)
			require.NoError(t, err)
			assert.Len(t, all, 3)
		})
	}
}

func TestPrune(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.Record(ctx, &Entry{Session: "s", Line: "old", CreatedAt: time.Now().Add(-48 * time.Hour)}))
			require.NoError(t, store.Record(ctx, &Entry{Session: "s", Line: "new"}))

			deleted, err := store.Prune(ctx, 24*time.Hour)
			require.NoError(t, err)
			assert.Equal(t, int64(1), deleted)

			rest, err := store.Recent(ctx, 0)
			require.NoError(t, err)
			require.Len(t, rest, 1)
			assert.Equal(t, "new", rest[0].Line)
		})
	}
}

func TestSQLiteStoreReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, store.Record(ctx, &Entry{Session: "s", Line: "factorial 3", Command: "FactorialFinder"}))
	require.NoError(t, store.Close())

	store, err = NewSQLiteStore(Config{Path: path})
	require.NoError(t, err)
	defer store.Close()

	entries, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "FactorialFinder", entries[0].Command)
}

func TestSQLiteStoreBadPath(t *testing.T) {
	dir := t.TempDir()
	// A directory where the database file should be cannot be opened.
	_, err := NewSQLiteStore(Config{Path: dir})
	require.Error(t, err)
	assert.True(t, errors.Is(err, cberror.CodeStorageError))
}
