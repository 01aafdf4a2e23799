package database_test

import (
	"path/filepath"
	"testing"

	"listacrosseu/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "directory.db")

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"businesses", "reviews", "users"} {
		var name string
		err := db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestOpen_IsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "directory.db")

	db, err := database.Open(dbPath)
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO businesses (name, country_code, created_at, updated_at)
		VALUES ('Blue Cafe', 'de', '2024-01-01T00:00:00.000Z', '2024-01-01T00:00:00.000Z')
	`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Second open against the same file must not duplicate or alter anything
	db, err = database.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int64
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM businesses`).Scan(&count))
	assert.Equal(t, int64(1), count)
}

func TestOpen_RatingCheckConstraint(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "directory.db")

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		INSERT INTO reviews (business_id, reviewer_name, rating, created_at)
		VALUES (1, 'x', 6, '2024-01-01T00:00:00.000Z')
	`)
	assert.Error(t, err)
}
