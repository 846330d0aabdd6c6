// Package filter implements the per-point year range predicate evaluated on
// every frame. Weight is pure and allocation free so the map view can run
// it across half a million points per redraw.
package filter

// Range is the visible year window. Points inside [Lower, Upper] are fully
// opaque; the soft bands [SoftLower, Lower) and (Upper, SoftUpper] fade
// linearly to zero so points never pop in. Invariant:
// SoftLower <= Lower <= Upper <= SoftUpper.
type Range struct {
	Lower     int
	Upper     int
	SoftLower int
	SoftUpper int
}

// NewRange builds a range with a symmetric soft band of soft years around
// the hard window, normalizing inverted bounds.
func NewRange(lower, upper, soft int) Range {
	if lower > upper {
		lower, upper = upper, lower
	}
	if soft < 0 {
		soft = 0
	}
	return Range{
		Lower:     lower,
		Upper:     upper,
		SoftLower: lower - soft,
		SoftUpper: upper + soft,
	}
}

// Clamp restores the range invariant after direct field mutation.
func (r Range) Clamp() Range {
	if r.Lower > r.Upper {
		r.Lower, r.Upper = r.Upper, r.Lower
	}
	if r.SoftLower > r.Lower {
		r.SoftLower = r.Lower
	}
	if r.SoftUpper < r.Upper {
		r.SoftUpper = r.Upper
	}
	return r
}

// Weight returns the visibility of a point with the given year, in [0, 1].
// Inside the hard window it is 1. Across each soft band it fades linearly,
// still positive at the soft edge itself and zero one step beyond it, so a
// one-year band yields a half-visible point rather than an invisible one.
func (r Range) Weight(year int) float64 {
	switch {
	case year >= r.Lower && year <= r.Upper:
		return 1
	case year >= r.SoftLower && year < r.Lower:
		return float64(year-r.SoftLower+1) / float64(r.Lower-r.SoftLower+1)
	case year > r.Upper && year <= r.SoftUpper:
		return float64(r.SoftUpper-year+1) / float64(r.SoftUpper-r.Upper+1)
	default:
		return 0
	}
}
