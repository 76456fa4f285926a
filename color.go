package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is the capability a color type must provide to participate in a
// Scheme: linear weighted blending and a perceptual difference metric.
// The forward mapping only needs Blend; the inverse mapping only needs
// Distance. RGBA is the default implementation; any color space (Lab, HCL,
// spectral) can plug in by satisfying this interface over its own type.
type Color[C any] interface {
	// Blend returns the linear weighted mean of the receiver and other.
	// t=0 returns the receiver, t=1 returns other.
	Blend(other C, t float64) C

	// Distance returns a perceptual difference against other: zero for
	// identical colors, growing with human-visible dissimilarity. It is
	// not required to be a metric in the mathematical sense.
	Distance(other C) float64
}

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements the standard color.Color interface, returning
// alpha-premultiplied 16-bit components.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R*c.A)*65535 + 0.5)
	g = uint32(clamp01(c.G*c.A)*65535 + 0.5)
	b = uint32(clamp01(c.B*c.A)*65535 + 0.5)
	a = uint32(clamp01(c.A)*65535 + 0.5)
	return
}

// Color converts RGBA to the standard color.Color interface as 8-bit NRGBA.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// color.Color returns premultiplied components; store straight alpha.
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Malformed input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return RGBA{R: 0, G: 0, B: 0, A: 1}
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// HSL creates a color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) RGBA {
	c := colorful.Hsl(h, s, l)
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1.0}
}

// Blend performs linear interpolation between two colors, per channel in
// the native RGB space. t=0 returns c, t=1 returns other.
func (c RGBA) Blend(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Distance returns the CIEDE2000 color difference between two colors.
// Alpha is ignored: the metric reflects visible chromatic and lightness
// difference only.
func (c RGBA) Distance(other RGBA) float64 {
	c1 := colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
	c2 := colorful.Color{R: clamp01(other.R), G: clamp01(other.G), B: clamp01(other.B)}
	return c1.DistanceCIEDE2000(c2)
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA{0, 0, 0, 0}
)
