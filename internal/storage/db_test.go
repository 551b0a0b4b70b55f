package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexander-D-Karpov/omnis/internal/config"
	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

func newTestDatabase(t *testing.T) (*Database, *config.Config) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.Backend = config.BackendSQLite
	cfg.Storage.DatabasePath = filepath.Join(t.TempDir(), "data", "omnis.db")
	cfg.Storage.EnableWAL = true

	db, err := NewDatabase(cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, cfg
}

func TestDatabaseGetSet(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDatabase(t)

	_, ok, err := db.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, db.Set(ctx, "k", "v1"))
	require.NoError(t, db.Set(ctx, "k", "v2"))

	value, ok, err := db.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", value)

	require.NoError(t, db.Delete(ctx, "k"))
	_, ok, err = db.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDatabaseEmptyValueIsPresent(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDatabase(t)

	require.NoError(t, db.Set(ctx, "blank", ""))
	value, ok, err := db.Get(ctx, "blank")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", value)
}

func TestDatabasePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	db, cfg := newTestDatabase(t)

	store := NewStore(zerolog.Nop())
	require.NoError(t, store.Attach(db))
	require.NoError(t, store.SaveLogs(ctx, []types.LogEntry{{ID: 1, DateStr: "2024-01-01", Events: []string{"C"}}}))
	require.NoError(t, db.Close())

	reopened, err := NewDatabase(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	store = NewStore(zerolog.Nop())
	require.NoError(t, store.Attach(reopened))
	logs, err := store.GetAllLogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.LogEntry{{ID: 1, DateStr: "2024-01-01", Events: []string{"C"}}}, logs)
}

func TestDatabaseClosed(t *testing.T) {
	ctx := context.Background()
	db, _ := newTestDatabase(t)
	require.NoError(t, db.Close())
	require.NoError(t, db.Close())

	_, _, err := db.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, db.Set(ctx, "k", "v"), ErrClosed)
}
