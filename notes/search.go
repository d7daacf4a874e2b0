package notes

import (
	"github.com/oliverisaac/mynotes/types"
	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// Search keeps the notes whose content contains query, ignoring case,
// diacritics and width under the service locale. Order is preserved and an
// empty query returns notes as given.
func (s *Service) Search(query string, notes []types.Note) []types.Note {
	return Search(s.locale, query, notes)
}

func Search(locale language.Tag, query string, notes []types.Note) []types.Note {
	if query == "" {
		return notes
	}

	m := search.New(locale, search.Loose)
	pattern := m.CompileString(query)

	ret := []types.Note{}
	for _, note := range notes {
		if start, _ := pattern.IndexString(note.Content); start >= 0 {
			ret = append(ret, note)
		}
	}
	return ret
}
