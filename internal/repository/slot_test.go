package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/ticklist/internal/db"
	"github.com/alexanderramin/ticklist/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slotBackends returns a fresh instance of every SlotRepo implementation.
func slotBackends(t *testing.T) map[string]SlotRepo {
	t.Helper()
	return map[string]SlotRepo{
		"sqlite": NewSQLiteSlotRepo(testutil.NewTestDB(t)),
		"file":   NewFileSlotRepo(filepath.Join(t.TempDir(), "slots")),
	}
}

func TestSlotRepo_GetMissing(t *testing.T) {
	for name, repo := range slotBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Get(context.Background(), "todos")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestSlotRepo_PutThenGet(t *testing.T) {
	for name, repo := range slotBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, repo.Put(ctx, "todos", []byte(`{"version":1}`)))

			got, err := repo.Get(ctx, "todos")
			require.NoError(t, err)
			assert.Equal(t, `{"version":1}`, string(got))
		})
	}
}

func TestSlotRepo_PutOverwrites(t *testing.T) {
	for name, repo := range slotBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, repo.Put(ctx, "todos", []byte("first")))
			require.NoError(t, repo.Put(ctx, "todos", []byte("second")))

			got, err := repo.Get(ctx, "todos")
			require.NoError(t, err)
			assert.Equal(t, "second", string(got))
		})
	}
}

func TestSlotRepo_KeysAreIndependent(t *testing.T) {
	for name, repo := range slotBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, repo.Put(ctx, "work", []byte("w")))
			require.NoError(t, repo.Put(ctx, "home", []byte("h")))

			w, err := repo.Get(ctx, "work")
			require.NoError(t, err)
			h, err := repo.Get(ctx, "home")
			require.NoError(t, err)
			assert.Equal(t, "w", string(w))
			assert.Equal(t, "h", string(h))
		})
	}
}

func TestSlotRepo_DeleteIsIdempotent(t *testing.T) {
	for name, repo := range slotBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, repo.Put(ctx, "todos", []byte("x")))
			require.NoError(t, repo.Delete(ctx, "todos"))
			require.NoError(t, repo.Delete(ctx, "todos"))

			_, err := repo.Get(ctx, "todos")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestFileSlotRepo_RejectsPathKeys(t *testing.T) {
	repo := NewFileSlotRepo(t.TempDir())
	ctx := context.Background()

	for _, key := range []string{"", "..", "a/b", `a\b`} {
		assert.Error(t, repo.Put(ctx, key, []byte("x")), "key=%q", key)
	}
}

func TestFileSlotRepo_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileSlotRepo(dir)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "todos", []byte("a")))
	require.NoError(t, repo.Put(ctx, "todos", []byte("b")))

	matches, err := filepath.Glob(filepath.Join(dir, "*"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "todos.json")}, matches)
}

// newFileTestDB creates a file-backed SQLite database in a temp directory.
// Unlike :memory:, a file-backed DB shares state across all connections in the
// pool and survives a reopen.
func newFileTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	require.NoError(t, err, "failed to open file-backed test database")
	return database
}

func TestSQLiteSlotRepo_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticklist.db")
	ctx := context.Background()

	first := newFileTestDB(t, path)
	require.NoError(t, NewSQLiteSlotRepo(first).Put(ctx, "todos", []byte("persisted")))
	require.NoError(t, first.Close())

	second := newFileTestDB(t, path)
	t.Cleanup(func() { second.Close() })

	got, err := NewSQLiteSlotRepo(second).Get(ctx, "todos")
	require.NoError(t, err)
	assert.Equal(t, "persisted", string(got))
}

func TestSQLiteSlotRepo_ConcurrentReadsDuringWrites(t *testing.T) {
	database := newFileTestDB(t, filepath.Join(t.TempDir(), "concurrent.db"))
	t.Cleanup(func() { database.Close() })
	repo := NewSQLiteSlotRepo(database)
	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, "todos", []byte("0")))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			if err := repo.Put(ctx, "todos", []byte{byte('a' + i)}); err != nil {
				t.Errorf("writer: put %d: %v", i, err)
				return
			}
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func(reader int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				if _, err := repo.Get(ctx, "todos"); err != nil {
					t.Errorf("reader %d: get: %v", reader, err)
					return
				}
			}
		}(r)
	}
	wg.Wait()

	got, err := repo.Get(ctx, "todos")
	require.NoError(t, err)
	assert.Equal(t, "t", string(got))
}
