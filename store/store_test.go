package store_test

import (
	"path/filepath"
	"testing"

	"github.com/oliverisaac/mynotes/store"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close(db)
	})
	return db
}
