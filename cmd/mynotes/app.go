package main

import (
	"github.com/oliverisaac/mynotes/notes"
	"github.com/oliverisaac/mynotes/store"
	"github.com/oliverisaac/mynotes/types"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// application is the set of handles every command and handler works from.
type application struct {
	cfg       types.Config
	db        *gorm.DB
	noteStore *store.NoteStore
	notes     *notes.Service
	prefs     *store.PreferenceStore
}

func newApplication(cfg types.Config) (*application, error) {
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	noteStore := store.NewNoteStore(db)
	return &application{
		cfg:       cfg,
		db:        db,
		noteStore: noteStore,
		notes:     notes.NewService(noteStore, notes.WithLocale(cfg.Language())),
		prefs:     store.NewPreferenceStore(db),
	}, nil
}

func (a *application) Close() error {
	return store.Close(a.db)
}
