package canvas

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/matzehuels/slidedeck/pkg/errors"
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as six upper-case hex digits, e.g. "1E3A5F".
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// String returns the color in CSS notation, e.g. "#1E3A5F".
func (c Color) String() string {
	return "#" + c.Hex()
}

// Ptr returns a pointer to a copy of c, for optional fill and border arguments.
func (c Color) Ptr() *Color {
	return &c
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so deck files can spell
// colors as palette names or hex strings.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Palette colors used by the built-in deck.
var (
	Navy      = RGB(0x1E, 0x3A, 0x5F)
	Blue      = RGB(0x25, 0x63, 0xEB)
	LightBlue = RGB(0xDB, 0xEA, 0xFE)
	White     = RGB(0xFF, 0xFF, 0xFF)
	Grey      = RGB(0xF4, 0xF7, 0xFB)
	DarkGrey  = RGB(0x60, 0x7D, 0x9A)
	Red       = RGB(0xDC, 0x26, 0x26)
	Purple    = RGB(0x7C, 0x3A, 0xED)
	Amber     = RGB(0xB4, 0x53, 0x09)
	Green     = RGB(0x05, 0x96, 0x69)
	Black     = RGB(0x1E, 0x2A, 0x3A)
	Hairline  = RGB(0xDD, 0xE6, 0xF0)
	Midnight  = RGB(0x14, 0x1E, 0x33)
)

var palette = map[string]Color{
	"navy":       Navy,
	"blue":       Blue,
	"light-blue": LightBlue,
	"white":      White,
	"grey":       Grey,
	"dark-grey":  DarkGrey,
	"red":        Red,
	"purple":     Purple,
	"amber":      Amber,
	"green":      Green,
	"black":      Black,
	"hairline":   Hairline,
	"midnight":   Midnight,
}

// PaletteNames returns the named colors accepted by [ParseColor], sorted.
func PaletteNames() []string {
	names := make([]string, 0, len(palette))
	for name := range palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseColor parses "#RRGGBB", "RRGGBB" or a palette name (case-insensitive,
// "_" and "-" interchangeable).
func ParseColor(s string) (Color, error) {
	v := strings.TrimSpace(s)
	if c, ok := palette[strings.ReplaceAll(strings.ToLower(v), "_", "-")]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(v, "#")
	n, err := strconv.ParseUint(hex, 16, 32)
	if len(hex) != 6 || err != nil {
		return Color{}, errors.New(errors.ErrCodeInvalidColor,
			"invalid color %q: want #RRGGBB or one of %s", s, strings.Join(PaletteNames(), ", "))
	}
	return RGB(uint8(n>>16), uint8(n>>8), uint8(n)), nil
}

// MustColor is like [ParseColor] but panics on error. For package-level tables only.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
