package history

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T, keep int) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "history.db")

	s, err := NewSQLite(path, keep)
	require.NoError(t, err)

	return s, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	s, path := newTestSQLite(t, 10)
	require.NoError(t, s.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='simulations'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "simulations", name)
}

func TestSQLiteRecordRoundTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t, 10)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	rec := testRecord(1)
	require.NoError(t, s.Record(ctx, rec))

	recs, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	got := recs[0]
	assert.Equal(t, rec.ID, got.ID)
	assert.True(t, got.CreatedAt.Equal(rec.CreatedAt))
	assert.Equal(t, rec.Parameters.NumSimulations, got.Parameters.NumSimulations)
	assert.InDelta(t, rec.Statistics.MeanFinalValue, got.Statistics.MeanFinalValue, 1e-9)
}

func TestSQLiteNewestFirstAndPruned(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t, 3)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Record(ctx, testRecord(i)))
	}

	recs, err := s.Recent(ctx, 100)
	require.NoError(t, err)
	require.Len(t, recs, 3, "insert must prune beyond the keep limit")
	assert.Equal(t, testRecord(9).ID, recs[0].ID)
	assert.Equal(t, testRecord(7).ID, recs[2].ID)
}

func TestSQLiteDuplicateIDRejected(t *testing.T) {
	t.Parallel()

	s, _ := newTestSQLite(t, 10)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	rec := testRecord(1)
	require.NoError(t, s.Record(ctx, rec))
	assert.Error(t, s.Record(ctx, rec), "result IDs are unique")
}
