// Package palette provides discrete, ordered color schemes with continuous
// interpolation in both directions: value→color sampling and color→value
// lookup.
//
// # Overview
//
// A Scheme is an immutable ordered sequence of colors plus free-text
// metadata. Sampling maps a scalar position (after configurable range
// normalization) to a blended color; locating maps a color back to the
// approximate position that would have produced it, using a perceptual
// color-difference search with local linear refinement.
//
// # Quick Start
//
//	import "github.com/gogpu/palette"
//
//	// Two-color gray ramp.
//	grays, _ := palette.New([]palette.RGBA{palette.Black, palette.White})
//
//	// Forward: position to color.
//	mid, _ := grays.Sample(0.5, palette.Clamp) // RGBA{0.5, 0.5, 0.5, 1}
//
//	// Inverse: color back to position.
//	pos, _ := grays.Locate(mid) // ≈ 0.5
//
// # Range Normalization
//
// Sampling accepts a Range describing how raw input values map onto the
// scheme's [0, 1] index space:
//   - palette.Clamp: the fixed span (0, 1)
//   - palette.Extrema: the observed min and max of the input slice
//   - palette.Span(lo, hi): an explicit pair
//
// Input outside the resolved span is clamped, never an error. A degenerate
// span (lo == hi) widens to (0, 1).
//
// # Color Types
//
// All scheme operations are generic over the Color capability: linear
// weighted blending plus a perceptual difference metric. RGBA is the
// default implementation, blending per channel and measuring difference
// with CIEDE2000. Other color spaces participate by satisfying Color over
// their own type.
//
// # Registries
//
// A Registry is an explicit name→Scheme mapping with last-writer-wins
// registration and Unicode-loose search over names, categories, and notes.
// There is no hidden package-global registry; callers own their own.
//
// # Logging
//
// The package is silent by default. Call SetLogger to surface registry
// overwrite warnings through a log/slog logger.
package palette
