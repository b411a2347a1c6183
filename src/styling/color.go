package styling

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Color is an RGBA color with "#rrggbb" / "#rrggbbaa" text marshalling,
// so themes can be written out as plain hex strings.
type Color drawing.Color

// ParseColor parses "#rrggbb", "rrggbb" or the 8-digit alpha variants.
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	c := Color{A: 0xFF}
	if len(h) == 8 {
		c.A = uint8(v & 0xFF)
		v >>= 8
	}
	c.B = uint8(v & 0xFF)
	c.G = uint8((v >> 8) & 0xFF)
	c.R = uint8((v >> 16) & 0xFF)
	return c, nil
}

// mustColor is for package-level constants known to be valid.
func mustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Draw converts to the go-chart drawing color.
func (c Color) Draw() drawing.Color { return drawing.Color(c) }

// WithAlpha returns the color with the given alpha.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

func (c Color) String() string {
	if c.A != 0xFF {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
