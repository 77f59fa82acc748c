package primitives

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a non-premultiplied RGBA color, one byte per channel, stored in
// the same order as a canvas pixel. Rasterizers copy it into the canvas
// verbatim; it is never blended.
type Color [4]uint8

// Common colors.
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Yellow      = Color{255, 255, 0, 255}
	Cyan        = Color{0, 255, 255, 255}
	Magenta     = Color{255, 0, 255, 255}
	Transparent = Color{0, 0, 0, 0}
)

// RGBA creates a color from its four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{r, g, b, a}
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b, 255}
}

// R returns the red channel.
func (c Color) R() uint8 { return c[0] }

// G returns the green channel.
func (c Color) G() uint8 { return c[1] }

// B returns the blue channel.
func (c Color) B() uint8 { return c[2] }

// A returns the alpha channel.
func (c Color) A() uint8 { return c[3] }

// NRGBA converts c to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// RGBA implements color.Color. The result is alpha-premultiplied, as the
// interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts any color.Color to a Color.
func FromColor(c color.Color) Color {
	if pc, ok := c.(Color); ok {
		return pc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

// ErrHexColor is returned by ParseHex for malformed input.
var ErrHexColor = errors.New("primitives: malformed hex color")

// ParseHex parses a color written as "RGB", "RGBA", "RRGGBB" or "RRGGBBAA",
// with or without a leading '#'. Omitted alpha is opaque.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrHexColor, s)
	}

	var c Color
	switch len(digits) {
	case 3, 4:
		// One nibble per channel, widened as 0xf -> 0xff.
		for i := range len(digits) {
			v := uint8(n>>(4*(len(digits)-1-i))) & 0xf
			c[i] = v<<4 | v
		}
	case 6, 8:
		for i := range len(digits) / 2 {
			c[i] = uint8(n >> (8 * (len(digits)/2 - 1 - i)))
		}
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrHexColor, s)
	}
	if len(digits) == 3 || len(digits) == 6 {
		c[3] = 255
	}
	return c, nil
}
