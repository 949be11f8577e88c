package database

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMemoryMigrates(t *testing.T) {
	db, err := Open(MemoryDSN)
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"users", "games", "daily_results"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, table)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "nested", "lexigon.db"))
	require.NoError(t, err)
	defer db.Close()

	fsys := fstest.MapFS{
		"002_extra.sql": {Data: []byte(`CREATE TABLE extra (id INTEGER PRIMARY KEY);`)},
	}
	require.NoError(t, Migrate(db, fsys))
	require.NoError(t, Migrate(db, fsys))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 2, n)
}
