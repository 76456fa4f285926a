package palette

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// FromNames builds an RGBA scheme from SVG 1.1 color names such as
// "steelblue" or "Coral". Names are matched case-insensitively; an unknown
// name fails the whole construction.
func FromNames(names []string, opts ...Option) (*Scheme[RGBA], error) {
	colors := make([]RGBA, 0, len(names))
	for _, name := range names {
		c, ok := colornames.Map[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("palette: unknown color name %q", name)
		}
		colors = append(colors, FromColor(c))
	}
	return New(colors, opts...)
}

// FromHex builds an RGBA scheme from hex strings in "#rgb" or "#rrggbb"
// form (the leading '#' is optional). Unlike the permissive Hex
// constructor, malformed input fails the whole construction.
func FromHex(hexes []string, opts ...Option) (*Scheme[RGBA], error) {
	colors := make([]RGBA, 0, len(hexes))
	for _, h := range hexes {
		norm := h
		if !strings.HasPrefix(norm, "#") {
			norm = "#" + norm
		}
		c, err := colorful.Hex(norm)
		if err != nil {
			return nil, fmt.Errorf("palette: invalid hex color %q: %w", h, err)
		}
		colors = append(colors, RGBA{R: c.R, G: c.G, B: c.B, A: 1.0})
	}
	return New(colors, opts...)
}
