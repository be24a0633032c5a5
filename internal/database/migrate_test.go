package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Migration steps are forward-only: versions must be contiguous from 1 so an
// accidental reorder or gap fails fast in CI rather than on a live schema.
func TestMigrationsAreOrdered(t *testing.T) {
	require.NotEmpty(t, migrations)
	for i, m := range migrations {
		assert.Equal(t, i+1, m.version, "migration versions must be contiguous from 1")
		assert.NotEmpty(t, m.name)
		assert.NotEmpty(t, m.stmts)
	}
}

func TestMigrateAppliesPendingSteps(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(0))
	for _, m := range migrations {
		for range m.stmts {
			mock.ExpectExec("CREATE TABLE IF NOT EXISTS").
				WillReturnResult(sqlmock.NewResult(0, 0))
		}
		mock.ExpectExec("INSERT INTO schema_migrations").
			WithArgs(m.version, m.name).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	require.NoError(t, Migrate(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}

// A schema already at the latest version applies nothing.
func TestMigrateIsIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	latest := migrations[len(migrations)-1].version
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(latest))

	require.NoError(t, Migrate(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedCatalogHasUniqueImdbIDs(t *testing.T) {
	seen := make(map[string]bool, len(defaultMovies))
	for _, m := range defaultMovies {
		assert.False(t, seen[m.ImdbID], "duplicate seed imdb id %s", m.ImdbID)
		seen[m.ImdbID] = true
		assert.NotEmpty(t, m.Title)
	}
}
