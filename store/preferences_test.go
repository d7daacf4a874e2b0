package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/oliverisaac/mynotes/store"
	"github.com/oliverisaac/mynotes/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceStore_Defaults(t *testing.T) {
	prefs := store.NewPreferenceStore(openTestDB(t)).Load(context.Background())
	assert.Equal(t, types.DefaultPreferences(), prefs)
}

func TestPreferenceStore_RoundTripAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.db")

	db, err := store.Open(path)
	require.NoError(t, err)
	p := store.NewPreferenceStore(db)
	require.NoError(t, p.SetAccentColor(ctx, types.AccentBlue))
	require.NoError(t, p.SetDarkMode(ctx, true))
	require.NoError(t, p.SetAccentColor(ctx, types.AccentOrange))
	require.NoError(t, p.SetAccentColor(ctx, types.AccentBlue))
	require.NoError(t, store.Close(db))

	db, err = store.Open(path)
	require.NoError(t, err)
	defer store.Close(db)

	prefs := store.NewPreferenceStore(db).Load(ctx)
	assert.Equal(t, types.AccentBlue, prefs.AccentColor)
	assert.True(t, prefs.DarkMode)
}

func TestPreferenceStore_UnknownStoredValuesFallBack(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	require.NoError(t, db.Exec(`INSERT INTO preferences ("key", "value") VALUES (?, ?), (?, ?)`,
		types.AccentColorKey, "magenta",
		types.DarkModeKey, "sometimes",
	).Error)

	prefs := store.NewPreferenceStore(db).Load(ctx)
	assert.Equal(t, types.AccentDefault, prefs.AccentColor)
	assert.False(t, prefs.DarkMode)
}

func TestPreferenceStore_RejectsUnknownColor(t *testing.T) {
	ctx := context.Background()
	p := store.NewPreferenceStore(openTestDB(t))

	require.NoError(t, p.SetAccentColor(ctx, types.AccentGreen))
	err := p.SetAccentColor(ctx, types.AccentColor("magenta"))
	require.Error(t, err)
	assert.True(t, types.IsValidationError(err))
	assert.Equal(t, types.AccentGreen, p.Load(ctx).AccentColor)
}
