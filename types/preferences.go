package types

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DarkModeKey    = "isDarkOn"
	AccentColorKey = "scheme"
)

type AccentColor string

const (
	AccentDefault AccentColor = "default"
	AccentBlue    AccentColor = "blue"
	AccentOrange  AccentColor = "orange"
	AccentYellow  AccentColor = "yellow"
	AccentGreen   AccentColor = "green"
	AccentIndigo  AccentColor = "indigo"
)

type rgb struct {
	r, g, b uint8
}

var accentColors = []AccentColor{
	AccentDefault,
	AccentBlue,
	AccentOrange,
	AccentYellow,
	AccentGreen,
	AccentIndigo,
}

var accentTints = map[AccentColor]rgb{
	AccentDefault: {142, 142, 147},
	AccentBlue:    {0, 122, 255},
	AccentOrange:  {255, 149, 0},
	AccentYellow:  {255, 204, 0},
	AccentGreen:   {52, 199, 89},
	AccentIndigo:  {88, 86, 214},
}

// accentLabels is filled once; a cases.Caser must not be shared between
// goroutines, a read-only map can.
var accentLabels = func() map[AccentColor]string {
	caser := cases.Title(language.English)
	ret := make(map[AccentColor]string, len(accentColors))
	for _, c := range accentColors {
		ret[c] = caser.String(string(c))
	}
	return ret
}()

// AccentColors returns every accent color in picker order.
func AccentColors() []AccentColor {
	ret := make([]AccentColor, len(accentColors))
	copy(ret, accentColors)
	return ret
}

// ParseAccentColor reports whether s names a known accent color.
func ParseAccentColor(s string) (AccentColor, bool) {
	c := AccentColor(s)
	if _, ok := accentTints[c]; ok {
		return c, true
	}
	return AccentDefault, false
}

func (c AccentColor) Valid() bool {
	_, ok := accentTints[c]
	return ok
}

func (c AccentColor) String() string {
	return string(c)
}

// Label is the capitalized display name, e.g. "Blue". Unknown colors are
// labelled as the default.
func (c AccentColor) Label() string {
	if label, ok := accentLabels[c]; ok {
		return label
	}
	return accentLabels[AccentDefault]
}

// Background is the CSS tint painted behind screens for this color. The
// default gray is lighter than the named colors.
func (c AccentColor) Background() string {
	tint, ok := accentTints[c]
	if !ok {
		c = AccentDefault
		tint = accentTints[AccentDefault]
	}
	opacity := "0.5"
	if c == AccentDefault {
		opacity = "0.3"
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", tint.r, tint.g, tint.b, opacity)
}

type Preferences struct {
	DarkMode    bool        `json:"darkMode"`
	AccentColor AccentColor `json:"accentColor"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		DarkMode:    false,
		AccentColor: AccentDefault,
	}
}
