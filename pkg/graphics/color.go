package graphics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// RGBA implements image/color.Color with alpha-premultiplied components.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(uint8(c>>24))
	r = uint32(uint8(c>>16)) * a / 0xFF
	g = uint32(uint8(c>>8)) * a / 0xFF
	b = uint32(uint8(c)) * a / 0xFF
	return r * 0x101, g * 0x101, b * 0x101, a * 0x101
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// Hex returns the color as #rrggbb, or #aarrggbb when not fully opaque.
func (c Color) Hex() string {
	if uint8(c>>24) == 0xFF {
		return fmt.Sprintf("#%06x", uint32(c)&0x00FFFFFF)
	}
	return fmt.Sprintf("#%08x", uint32(c))
}

func (c Color) String() string {
	return c.Hex()
}

// Lerp blends a toward b in CIE L*a*b* space, which keeps the midpoints of a
// sweep between saturated colors from turning muddy.
func Lerp(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ar, ag, ab, aa := a.RGBAF()
	br, bg, bb, ba := b.RGBAF()
	mixed := colorful.Color{R: ar, G: ag, B: ab}.BlendLab(colorful.Color{R: br, G: bg, B: bb}, t).Clamped()
	r, g, bl := mixed.RGB255()
	return RGBA8(r, g, bl, alpha01ToByte(aa+(ba-aa)*t))
}

// ParseColor parses #rgb, #rrggbb, #aarrggbb, rgb(r, g, b) and SVG color
// names such as "orchid".
func ParseColor(s string) (Color, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(in, "#"):
		return parseHex(in[1:])
	case strings.HasPrefix(in, "rgb(") && strings.HasSuffix(in, ")"):
		return parseRGBFunc(in[4 : len(in)-1])
	}
	if named, ok := colornames.Map[in]; ok {
		return RGBA8(named.R, named.G, named.B, named.A), nil
	}
	return 0, fmt.Errorf("unrecognized color %q", s)
}

func parseHex(digits string) (Color, error) {
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", "#"+digits, err)
	}
	switch len(digits) {
	case 6:
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		return Color(uint32(v)), nil
	default:
		return 0, fmt.Errorf("invalid hex color %q: want 3, 6 or 8 digits", "#"+digits)
	}
}

func parseRGBFunc(args string) (Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return 0, fmt.Errorf("rgb() takes 3 components, got %d", len(parts))
	}
	var c [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return 0, fmt.Errorf("rgb() component %q out of range 0-255", strings.TrimSpace(p))
		}
		c[i] = uint8(v)
	}
	return RGB(c[0], c[1], c[2]), nil
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)
