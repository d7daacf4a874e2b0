package types

import (
	errs "errors"
)

// NoteListData is what a list screen renders: the filtered notes, the query
// that produced them and any error hit along the way.
type NoteListData struct {
	Query       string
	Notes       []Note
	Preferences Preferences
	Err         error
}

func (d *NoteListData) WithError(err error) *NoteListData {
	d.Err = errs.Join(d.Err, err)
	return d
}

func (d *NoteListData) WithNotes(notes []Note) *NoteListData {
	d.Notes = append(d.Notes, notes...)
	return d
}

func (d *NoteListData) WithPreferences(p Preferences) *NoteListData {
	d.Preferences = p
	return d
}
