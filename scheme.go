package palette

import "errors"

// ErrEmptyScheme is returned when a scheme is constructed or resampled
// with no colors.
var ErrEmptyScheme = errors.New("palette: scheme must contain at least one color")

// Option configures a Scheme during creation.
//
// Example:
//
//	s, err := palette.New(colors,
//	    palette.WithCategory("sequential"),
//	    palette.WithNotes("dark blue to bright yellow"))
type Option func(*schemeOptions)

// schemeOptions holds optional metadata for Scheme creation.
type schemeOptions struct {
	category string
	notes    string
}

// WithCategory sets the free-text classification label of the scheme.
// Category has no behavioral effect; it exists for registry search.
func WithCategory(category string) Option {
	return func(o *schemeOptions) {
		o.category = category
	}
}

// WithNotes sets the free-text description of the scheme.
// Notes have no behavioral effect; they exist for registry search.
func WithNotes(notes string) Option {
	return func(o *schemeOptions) {
		o.notes = notes
	}
}

// Scheme is an immutable ordered sequence of colors with descriptive
// metadata. Index 0 corresponds to position 0 of the continuous mapping,
// the last index to position 1. Order is the only invariant: colors need
// not be monotonic in any perceptual dimension.
//
// A Scheme is read-only after construction; Reverse and Resample return
// new Schemes. All methods are safe for concurrent use.
type Scheme[C Color[C]] struct {
	colors   []C
	category string
	notes    string
}

// New creates a Scheme from the given colors. The slice is copied, so the
// caller may reuse it. At least one color is required.
func New[C Color[C]](colors []C, opts ...Option) (*Scheme[C], error) {
	if len(colors) == 0 {
		return nil, ErrEmptyScheme
	}
	var o schemeOptions
	for _, opt := range opts {
		opt(&o)
	}
	cs := make([]C, len(colors))
	copy(cs, colors)
	return &Scheme[C]{colors: cs, category: o.category, notes: o.notes}, nil
}

// Len returns the number of colors in the scheme.
func (s *Scheme[C]) Len() int { return len(s.colors) }

// At returns the color at index i. It panics if i is out of range,
// matching slice indexing semantics.
func (s *Scheme[C]) At(i int) C { return s.colors[i] }

// Colors returns a copy of the scheme's colors in index order.
func (s *Scheme[C]) Colors() []C {
	cs := make([]C, len(s.colors))
	copy(cs, s.colors)
	return cs
}

// Category returns the scheme's classification label.
func (s *Scheme[C]) Category() string { return s.category }

// Notes returns the scheme's description.
func (s *Scheme[C]) Notes() string { return s.notes }

// Reverse returns a new Scheme with the colors in reverse index order.
// Category and notes carry over unchanged.
func (s *Scheme[C]) Reverse() *Scheme[C] {
	n := len(s.colors)
	cs := make([]C, n)
	for i, c := range s.colors {
		cs[n-1-i] = c
	}
	return &Scheme[C]{colors: cs, category: s.category, notes: s.notes}
}

// Resample returns a new Scheme of n colors sampled at evenly spaced
// positions across the scheme. n=1 samples position 0. Category and notes
// carry over unchanged.
func (s *Scheme[C]) Resample(n int) (*Scheme[C], error) {
	if n < 1 {
		return nil, ErrEmptyScheme
	}
	cs := make([]C, n)
	for i := range cs {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		cs[i] = s.sampleAt(t)
	}
	return &Scheme[C]{colors: cs, category: s.category, notes: s.notes}, nil
}
