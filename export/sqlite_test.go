package export

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "people.db")

	n, err := SQLite(dbPath, "people", records(t, people))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "people";`).Scan(&count))
	assert.Equal(t, 2, count)

	var age int64
	require.NoError(t, db.QueryRow(`SELECT "Age" FROM "people" WHERE "Name" = 'Alice';`).Scan(&age))
	assert.Equal(t, int64(30), age)
}

func TestSQLite_appendsOnSecondRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "people.db")

	_, err := SQLite(dbPath, "people", records(t, people))
	require.NoError(t, err)
	_, err = SQLite(dbPath, "people", records(t, people))
	require.NoError(t, err)

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "people";`).Scan(&count))
	assert.Equal(t, 4, count)
}

func TestSQLite_noHeaders(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.db")

	_, err := SQLite(dbPath, "people", records(t, ""))
	assert.Error(t, err)
}
