package palette

import "errors"

// ErrInsufficientScheme is returned by Locate and LocateIn when the scheme
// holds fewer than two colors, too few for an inverse lookup to be
// meaningful. Check with errors.Is.
var ErrInsufficientScheme = errors.New("palette: locate requires a scheme of at least two colors")

// Locate returns the position v in (0, 1) such that Sample(v, Clamp) is
// the closest achievable approximation of c under the scheme's perceptual
// difference metric. It is the approximate inverse of Sample: exact scheme
// entries map back to their own positions, other colors to a locally
// refined estimate around the nearest entry.
func (s *Scheme[C]) Locate(c C) (float64, error) {
	return s.LocateIn(c, 0, 1)
}

// LocateIn is Locate with the result remapped into the span (lo, hi).
// A degenerate span (lo == hi) widens to (0, 1).
//
// The search scans every scheme color once, keeping the first index on
// equal distances, then refines linearly between the nearest entry and
// its better-matching neighbor. The refinement assumes the difference
// metric is locally linear near the minimum, so the result is an
// approximation rather than a global optimum.
func (s *Scheme[C]) LocateIn(c C, lo, hi float64) (float64, error) {
	n := len(s.colors)
	if n < 2 {
		return 0, ErrInsufficientScheme
	}
	if lo == hi {
		lo, hi = 0, 1
	}

	diffs := make([]float64, n)
	closest := 0
	for i, sc := range s.colors {
		diffs[i] = c.Distance(sc)
		if diffs[i] < diffs[closest] {
			closest = i
		}
	}

	// Pick the neighbor to interpolate against. Interior ties prefer the
	// lower index, matching the first-wins rule of the scan above.
	var left, right int
	switch {
	case closest == 0:
		left, right = 0, 1
	case closest == n-1:
		left, right = n-2, n-1
	case diffs[closest-1] <= diffs[closest+1]:
		left, right = closest-1, closest
	default:
		left, right = closest, closest+1
	}

	v := float64(left)
	if diffs[left] != diffs[right] {
		v += diffs[left] / (diffs[left] + diffs[right])
	}
	return lo + v/float64(n-1)*(hi-lo), nil
}
