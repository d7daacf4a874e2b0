// Package notes holds the rules that sit between raw user text and the note
// store: trimming, validation, timestamps and search.
package notes

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oliverisaac/mynotes/types"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Store is the persistence the service needs. *store.NoteStore implements it.
type Store interface {
	Insert(ctx context.Context, note *types.Note) error
	Update(ctx context.Context, note *types.Note) error
	Delete(ctx context.Context, id string) error
	QueryAll(ctx context.Context) ([]types.Note, error)
}

type Service struct {
	store  Store
	locale language.Tag
	now    func() time.Time
}

type Option func(*Service)

// WithClock replaces the time source used for note timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLocale sets the language used for search matching.
func WithLocale(tag language.Tag) Option {
	return func(s *Service) {
		s.locale = tag
	}
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		locale: language.English,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Trim strips leading and trailing white space, newlines included.
func Trim(text string) string {
	return strings.TrimSpace(text)
}

// Validate reports whether text still has content once trimmed.
func Validate(text string) bool {
	return Trim(text) != ""
}

// Create stores a new note holding the trimmed text.
func (s *Service) Create(ctx context.Context, text string) (types.Note, error) {
	if !Validate(text) {
		return types.Note{}, types.ErrEmptyContent
	}

	note := types.Note{
		ID:        uuid.NewString(),
		Content:   Trim(text),
		CreatedAt: s.now(),
	}
	if err := s.store.Insert(ctx, &note); err != nil {
		return types.Note{}, errors.Wrap(err, "Saving note to db")
	}
	return note, nil
}

// Update replaces the content of note with the trimmed text and resets its
// timestamp, which moves it to the top of the listing. note is left as it
// was if the update is rejected or fails.
func (s *Service) Update(ctx context.Context, note *types.Note, text string) error {
	if !Validate(text) {
		return types.ErrEmptyContent
	}

	updated := *note
	updated.Content = Trim(text)
	updated.CreatedAt = s.now()
	if err := s.store.Update(ctx, &updated); err != nil {
		return errors.Wrapf(err, "Updating note %s", note.ID)
	}
	*note = updated
	return nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return errors.Wrapf(s.store.Delete(ctx, id), "Deleting note %s", id)
}

// List returns the stored notes matching query, newest first.
func (s *Service) List(ctx context.Context, query string) ([]types.Note, error) {
	all, err := s.store.QueryAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Looking for notes")
	}
	return s.Search(query, all), nil
}
