package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/oliverisaac/mynotes/notes"
	"github.com/oliverisaac/mynotes/types"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *application {
	t.Helper()

	cfg := types.DefaultConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "notes.db")

	app, err := newApplication(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = app.Close()
	})

	current := time.Date(2026, 1, 4, 12, 0, 0, 0, time.UTC)
	app.notes = notes.NewService(app.noteStore, notes.WithClock(func() time.Time {
		current = current.Add(time.Second)
		return current
	}))
	return app
}
