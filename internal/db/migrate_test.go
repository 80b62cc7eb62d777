package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time; should succeed without error.
	require.NoError(t, Migrate(db))

	// Third time for good measure.
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesSlotsTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='slots'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "slots", name)

	_, err = db.Exec(`INSERT INTO slots (key, value, updated_at) VALUES ('k', 'v', 'now')`)
	require.NoError(t, err)
}

func TestMigrate_UpgradePath_SlotsWithoutUpdatedAt(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE slots (key TEXT PRIMARY KEY, value BLOB NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO slots (key, value) VALUES ('todos', '[]')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	var value, updatedAt string
	err = db.QueryRow(`SELECT value, updated_at FROM slots WHERE key = 'todos'`).Scan(&value, &updatedAt)
	require.NoError(t, err)
	assert.Equal(t, "[]", value, "existing data survives migration")
	assert.Equal(t, "", updatedAt, "new column gets its default")
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "ticklist.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
}

func TestOpenDB_PragmasApplyToEveryConnection(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "ticklist.db"))
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(3)

	ctx := context.Background()
	var conns []*sql.Conn
	for range 3 {
		conn, err := db.Conn(ctx)
		require.NoError(t, err)
		conns = append(conns, conn)
	}
	for i, conn := range conns {
		var timeout int
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA busy_timeout").Scan(&timeout))
		assert.Equal(t, 5000, timeout, "conn %d", i)

		var mode string
		require.NoError(t, conn.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode))
		assert.Equal(t, "wal", mode, "conn %d", i)
		require.NoError(t, conn.Close())
	}
}
