package types

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAccentColor(t *testing.T) {
	for _, c := range AccentColors() {
		got, ok := ParseAccentColor(string(c))
		assert.True(t, ok, c)
		assert.Equal(t, c, got)
	}

	got, ok := ParseAccentColor("magenta")
	assert.False(t, ok)
	assert.Equal(t, AccentDefault, got)

	got, ok = ParseAccentColor("Blue")
	assert.False(t, ok)
	assert.Equal(t, AccentDefault, got)
}

func TestAccentColors_Order(t *testing.T) {
	assert.Equal(t, []AccentColor{
		AccentDefault, AccentBlue, AccentOrange, AccentYellow, AccentGreen, AccentIndigo,
	}, AccentColors())

	// callers must not be able to reorder the picker
	colors := AccentColors()
	colors[0] = AccentIndigo
	assert.Equal(t, AccentDefault, AccentColors()[0])
}

func TestAccentColor_Label(t *testing.T) {
	assert.Equal(t, "Default", AccentDefault.Label())
	assert.Equal(t, "Indigo", AccentIndigo.Label())
	assert.Equal(t, "Default", AccentColor("magenta").Label())
}

func TestAccentColor_LabelConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, c := range AccentColors() {
				assert.NotEmpty(t, c.Label())
			}
		}()
	}
	wg.Wait()
}

func TestAccentColor_Background(t *testing.T) {
	assert.Equal(t, "rgba(142, 142, 147, 0.3)", AccentDefault.Background())
	assert.Equal(t, "rgba(0, 122, 255, 0.5)", AccentBlue.Background())
	assert.Equal(t, AccentDefault.Background(), AccentColor("nope").Background())
}
