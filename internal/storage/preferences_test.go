package storage

import (
	"context"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

func TestPreferencesBackend(t *testing.T) {
	ctx := context.Background()
	app := test.NewTempApp(t)
	kv := NewPreferences(app.Preferences())

	_, ok, err := kv.Get(ctx, KeyLogs)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, KeySortPreference, "asc"))
	assert.Equal(t, "asc", app.Preferences().String(KeySortPreference))
}

func TestStoreOverPreferences(t *testing.T) {
	ctx := context.Background()
	app := test.NewTempApp(t)

	store := NewStore(zerolog.Nop())
	require.NoError(t, store.Attach(NewPreferences(app.Preferences())))

	app.Preferences().SetString(KeyLogs, `[{"id":2,"date_str":"2024-01-02","events":["A","B"]}, {"id":1,"date_str":"2024-01-01","events":["C"]}]`)

	logs, err := store.GetAllLogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.LogEntry{
		{ID: 2, DateStr: "2024-01-02", Events: []string{"A", "B"}},
		{ID: 1, DateStr: "2024-01-01", Events: []string{"C"}},
	}, logs)

	prefs, err := store.LoadPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultPreferences(), prefs)
}
