package notes_test

import (
	"testing"

	"github.com/oliverisaac/mynotes/notes"
	"github.com/oliverisaac/mynotes/types"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func contents(notes []types.Note) []string {
	ret := []string{}
	for _, n := range notes {
		ret = append(ret, n.Content)
	}
	return ret
}

func notesOf(texts ...string) []types.Note {
	ret := []types.Note{}
	for i, text := range texts {
		ret = append(ret, types.Note{ID: string(rune('a' + i)), Content: text})
	}
	return ret
}

func TestSearch_EmptyQueryReturnsInput(t *testing.T) {
	in := notesOf("A", "B", "C")
	got := notes.Search(language.English, "", in)
	assert.Equal(t, in, got)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	got := notes.Search(language.English, "CAT", notesOf("a cat", "dog"))
	assert.Equal(t, []string{"a cat"}, contents(got))
}

func TestSearch_PreservesOrderAndDuplicates(t *testing.T) {
	in := notesOf("cat one", "no match", "Cat two", "cat one")
	got := notes.Search(language.English, "cat", in)
	assert.Equal(t, []string{"cat one", "Cat two", "cat one"}, contents(got))
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Equal(t, "d", got[2].ID)
}

func TestSearch_IgnoresDiacritics(t *testing.T) {
	got := notes.Search(language.English, "cafe", notesOf("Café au lait", "tea"))
	assert.Equal(t, []string{"Café au lait"}, contents(got))
}

func TestSearch_NoMatches(t *testing.T) {
	got := notes.Search(language.English, "zebra", notesOf("a cat", "dog"))
	assert.Empty(t, got)
}

func TestService_SearchUsesLocale(t *testing.T) {
	svc := notes.NewService(newMemStore(), notes.WithLocale(language.Czech))
	got := svc.Search("POZNÁMKA", notesOf("moje poznámka", "jiný text"))
	assert.Equal(t, []string{"moje poznámka"}, contents(got))
}
