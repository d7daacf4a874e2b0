package store

import (
	"context"
	errs "errors"

	"github.com/oliverisaac/mynotes/types"
	"gorm.io/gorm"
)

type NoteStore struct {
	db *gorm.DB
}

func NewNoteStore(db *gorm.DB) *NoteStore {
	return &NoteStore{db: db}
}

func (s *NoteStore) Insert(ctx context.Context, note *types.Note) error {
	if err := s.db.WithContext(ctx).Create(note).Error; err != nil {
		return &types.PersistenceError{Op: "inserting note", Err: err}
	}
	return nil
}

// Update overwrites the content and timestamp of an existing note. It never
// creates a row, so updating a deleted note returns ErrNoteNotFound.
func (s *NoteStore) Update(ctx context.Context, note *types.Note) error {
	result := s.db.WithContext(ctx).
		Model(&types.Note{}).
		Where("id = ?", note.ID).
		Updates(map[string]any{
			"content":    note.Content,
			"created_at": note.CreatedAt,
		})
	if result.Error != nil {
		return &types.PersistenceError{Op: "updating note", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return types.ErrNoteNotFound
	}
	return nil
}

// Delete removes the note with the given id. Deleting a missing note is not
// an error.
func (s *NoteStore) Delete(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&types.Note{}).Error; err != nil {
		return &types.PersistenceError{Op: "deleting note", Err: err}
	}
	return nil
}

func (s *NoteStore) Get(ctx context.Context, id string) (types.Note, error) {
	var note types.Note
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&note).Error
	if errs.Is(err, gorm.ErrRecordNotFound) {
		return types.Note{}, types.ErrNoteNotFound
	}
	if err != nil {
		return types.Note{}, &types.PersistenceError{Op: "loading note", Err: err}
	}
	return note, nil
}

// QueryAll returns every note, newest first.
func (s *NoteStore) QueryAll(ctx context.Context) ([]types.Note, error) {
	ret := []types.Note{}
	if err := s.db.WithContext(ctx).Order("created_at DESC").Order("id").Find(&ret).Error; err != nil {
		return nil, &types.PersistenceError{Op: "listing notes", Err: err}
	}
	return ret, nil
}

func (s *NoteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&types.Note{}).Count(&count).Error; err != nil {
		return 0, &types.PersistenceError{Op: "counting notes", Err: err}
	}
	return count, nil
}
