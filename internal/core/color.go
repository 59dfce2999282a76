package core

import (
	"fmt"
	"strings"
)

// Color represents a foreground color for a screen cell.
// The terminal host maps each value to an ANSI 256-color code.
type Color uint8

// Palette shared by every game.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPurple
)

var colorNames = map[Color]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright-red",
	ColorBrightGreen:   "bright-green",
	ColorBrightYellow:  "bright-yellow",
	ColorBrightBlue:    "bright-blue",
	ColorBrightMagenta: "bright-magenta",
	ColorBrightCyan:    "bright-cyan",
	ColorBrightWhite:   "bright-white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
	ColorPurple:        "purple",
}

// String returns the palette name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// UnmarshalText parses a palette name, so colors can be written by name in YAML.
func (c *Color) UnmarshalText(text []byte) error {
	want := strings.ToLower(strings.TrimSpace(string(text)))
	for col, name := range colorNames {
		if name == want {
			*c = col
			return nil
		}
	}
	return fmt.Errorf("core: unknown color %q", string(text))
}

// MarshalText returns the palette name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Glyph is how one kind of entity looks on screen.
type Glyph struct {
	Rune  rune
	Color Color
}
