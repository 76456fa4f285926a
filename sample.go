package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// RangeMode selects how raw input values are normalized before indexing
// into a scheme.
type RangeMode uint8

const (
	// ModeClamp normalizes against the fixed span (0, 1).
	ModeClamp RangeMode = iota
	// ModeExtrema normalizes against the observed min and max of the
	// input slice. For a scalar input the span is degenerate and
	// resolves to (0, 1).
	ModeExtrema
	// ModeSpan normalizes against an explicit (lo, hi) pair.
	ModeSpan
)

// Range describes the normalization applied to raw input values: the rule
// mapping the input domain onto the scheme's [0, 1] index space.
// Use the Clamp and Extrema values or the Span constructor.
type Range struct {
	Mode   RangeMode
	Lo, Hi float64
}

// Clamp normalizes against the fixed span (0, 1).
var Clamp = Range{Mode: ModeClamp}

// Extrema normalizes against the observed min and max of the input.
var Extrema = Range{Mode: ModeExtrema}

// Span returns a Range that normalizes against the explicit pair (lo, hi).
// A degenerate span (lo == hi) silently widens to (0, 1).
func Span(lo, hi float64) Range {
	return Range{Mode: ModeSpan, Lo: lo, Hi: hi}
}

// ErrUnsupportedRange is returned when a Range carries an unrecognized
// mode. Check with errors.Is.
var ErrUnsupportedRange = errors.New("palette: unsupported range mode")

// resolve returns the concrete (lo, hi) bounds for the input xs.
// Degenerate bounds widen to (0, 1) so callers never divide by zero.
func (r Range) resolve(xs []float64) (lo, hi float64, err error) {
	switch r.Mode {
	case ModeClamp:
		lo, hi = 0, 1
	case ModeExtrema:
		if len(xs) > 0 {
			lo, hi = xs[0], xs[0]
			for _, x := range xs[1:] {
				lo = math.Min(lo, x)
				hi = math.Max(hi, x)
			}
		}
	case ModeSpan:
		lo, hi = r.Lo, r.Hi
	default:
		return 0, 0, fmt.Errorf("%w: %d", ErrUnsupportedRange, r.Mode)
	}
	if lo == hi {
		lo, hi = 0, 1
	}
	return lo, hi, nil
}

// Sample returns the interpolated color at x, normalized by r.
// Out-of-range input is never an error: x is clamped into the resolved
// bounds, so the endpoint colors extend beyond them. With Extrema the
// scalar input is its own min and max, which degenerates to (0, 1).
func (s *Scheme[C]) Sample(x float64, r Range) (C, error) {
	lo, hi, err := r.resolve(nil)
	if err != nil {
		var zero C
		return zero, err
	}
	return s.sampleIn(x, lo, hi), nil
}

// SampleSlice returns the interpolated colors for each element of xs,
// normalized by r. The output has the same length and order as xs. With
// Extrema the bounds are the observed min and max of xs itself.
func (s *Scheme[C]) SampleSlice(xs []float64, r Range) ([]C, error) {
	lo, hi, err := r.resolve(xs)
	if err != nil {
		return nil, err
	}
	out := make([]C, len(xs))
	for i, x := range xs {
		out[i] = s.sampleIn(x, lo, hi)
	}
	return out, nil
}

// SampleBool maps false to the first color and true to the last,
// without interpolation. Useful for binary masks.
func (s *Scheme[C]) SampleBool(b bool) C {
	if b {
		return s.colors[len(s.colors)-1]
	}
	return s.colors[0]
}

// SampleBools maps each element of bs through SampleBool, skipping the
// floating-point interpolation path entirely.
func (s *Scheme[C]) SampleBools(bs []bool) []C {
	first := s.colors[0]
	last := s.colors[len(s.colors)-1]
	out := make([]C, len(bs))
	for i, b := range bs {
		if b {
			out[i] = last
		} else {
			out[i] = first
		}
	}
	return out
}

// SampleGray maps a gray pixel's luminance onto the scheme with the
// default (0, 1) range.
func (s *Scheme[C]) SampleGray(g color.Gray) C {
	return s.sampleIn(float64(g.Y)/255, 0, 1)
}

// sampleIn clamps x into [lo, hi] and samples the normalized position.
func (s *Scheme[C]) sampleIn(x, lo, hi float64) C {
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	return s.sampleAt((x - lo) / (hi - lo))
}

// sampleAt blends the two colors bracketing normalized position t.
// pos is clamped into [0, N-1] before indexing, so floating-point
// rounding at the boundaries can never index out of bounds.
func (s *Scheme[C]) sampleAt(t float64) C {
	n := len(s.colors)
	pos := t * float64(n-1)
	if pos < 0 {
		pos = 0
	}
	if limit := float64(n - 1); pos > limit {
		pos = limit
	}
	before := int(math.Floor(pos))
	after := before + 1
	if after > n-1 {
		after = n - 1
	}
	frac := pos - float64(before)
	return s.colors[before].Blend(s.colors[after], frac)
}
