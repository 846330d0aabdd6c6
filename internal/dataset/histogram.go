package dataset

// Year domain of the grant records. Points outside it are excluded from the
// histogram (they still render, permanently outside the filter).
const (
	DomainMin = 1600
	DomainMax = 1800
)

// Bounds is the span of years actually present in the data.
type Bounds struct {
	MinYear int
	MaxYear int
}

// Histogram maps each year in [DomainMin, DomainMax] to the number of
// points recorded for it. Built once per dataset load, immutable after.
// A prefix-sum table makes range totals O(1).
type Histogram struct {
	counts [DomainMax - DomainMin + 1]int
	prefix [DomainMax - DomainMin + 2]int
	total  int
}

// NewHistogram counts points per year, skipping out-of-domain years.
func NewHistogram(points []GrantPoint) *Histogram {
	h := &Histogram{}
	for _, p := range points {
		if p.Year < DomainMin || p.Year > DomainMax {
			continue
		}
		h.counts[p.Year-DomainMin]++
		h.total++
	}
	for i, c := range h.counts {
		h.prefix[i+1] = h.prefix[i] + c
	}
	return h
}

// Count returns the number of points for year, 0 outside the domain.
func (h *Histogram) Count(year int) int {
	if year < DomainMin || year > DomainMax {
		return 0
	}
	return h.counts[year-DomainMin]
}

// CountBetween returns the total over [lo, hi] inclusive, clamped to the
// domain.
func (h *Histogram) CountBetween(lo, hi int) int {
	if lo < DomainMin {
		lo = DomainMin
	}
	if hi > DomainMax {
		hi = DomainMax
	}
	if lo > hi {
		return 0
	}
	return h.prefix[hi-DomainMin+1] - h.prefix[lo-DomainMin]
}

// Total returns the number of in-domain points.
func (h *Histogram) Total() int {
	return h.total
}

// Bounds returns the first and last non-empty years. ok is false when the
// histogram is empty.
func (h *Histogram) Bounds() (b Bounds, ok bool) {
	if h.total == 0 {
		return Bounds{}, false
	}
	for y := DomainMin; y <= DomainMax; y++ {
		if h.counts[y-DomainMin] > 0 {
			b.MinYear = y
			break
		}
	}
	for y := DomainMax; y >= DomainMin; y-- {
		if h.counts[y-DomainMin] > 0 {
			b.MaxYear = y
			break
		}
	}
	return b, true
}

// Years returns a copy of the per-year counts keyed by year, for the
// distribution callback. Empty years are omitted.
func (h *Histogram) Years() map[int]int {
	m := make(map[int]int)
	for i, c := range h.counts {
		if c > 0 {
			m[DomainMin+i] = c
		}
	}
	return m
}
