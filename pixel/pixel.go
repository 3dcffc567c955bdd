// Package pixel holds the packed color format shared by the strip controller, its
// patterns and the underlying strip device, as well as the color math the patterns
// are built on.
package pixel

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 24-bit RGB value (0xRRGGBB)
type Color uint32

// Off is the all-channels-off color
const Off Color = 0x000000

// RGB packs three 8-bit channels into a Color
func RGB(red, green, blue uint8) Color {
	return Color(uint32(red)<<16 | uint32(green)<<8 | uint32(blue))
}

// Red returns the red channel of the color
func (c Color) Red() uint8 {
	return uint8(c >> 16 & 0xff)
}

// Green returns the green channel of the color
func (c Color) Green() uint8 {
	return uint8(c >> 8 & 0xff)
}

// Blue returns the blue channel of the color
func (c Color) Blue() uint8 {
	return uint8(c & 0xff)
}

// Dim returns the color at half brightness, i.e. with every channel shifted one bit to the right
func (c Color) Dim() Color {
	return RGB(c.Red()>>1, c.Green()>>1, c.Blue()>>1)
}

// Wheel maps a position on a 256-wide color wheel to a fully saturated color.
// The colors transition red - green - blue - back to red.
func Wheel(pos uint8) Color {
	pos = 255 - pos
	if pos < 85 {
		return RGB(255-pos*3, 0, pos*3)
	}
	if pos < 170 {
		pos -= 85
		return RGB(0, pos*3, 255-pos*3)
	}
	pos -= 170
	return RGB(pos*3, 255-pos*3, 0)
}

// ParseHex parses a hex color string (e.g. "ff0000" or "#ff0000") into a Color
func ParseHex(value string) (Color, error) {
	parsed, err := colorful.Hex("#" + strings.TrimPrefix(value, "#"))
	if err != nil {
		return Off, fmt.Errorf("invalid color %q: %w", value, err)
	}
	red, green, blue := parsed.RGB255()
	return RGB(red, green, blue), nil
}

// Hex returns the color as a hex string (e.g. "#ff0000")
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.Red()) / 255,
		G: float64(c.Green()) / 255,
		B: float64(c.Blue()) / 255,
	}.Hex()
}
