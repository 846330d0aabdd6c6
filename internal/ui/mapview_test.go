package ui

import (
	"strings"
	"testing"

	"github.com/svanbekk/grantmap/internal/dataset"
	"github.com/svanbekk/grantmap/internal/filter"
)

func TestMapViewRendersVisiblePoints(t *testing.T) {
	v := newMapView([]dataset.GrantPoint{
		{Year: 1650, Lon: -74.0, Lat: 40.7},
		{Year: 1650, Lon: -73.0, Lat: 41.7},
	})
	v.update(filter.NewRange(1640, 1660, 1), 20, 6)

	if strings.TrimSpace(stripLines(v.view())) == "" {
		t.Fatal("in-range points rendered nothing")
	}
}

func TestMapViewHidesFilteredPoints(t *testing.T) {
	v := newMapView([]dataset.GrantPoint{
		{Year: 1650, Lon: -74.0, Lat: 40.7},
		{Year: 1650, Lon: -73.0, Lat: 41.7},
	})
	v.update(filter.NewRange(1700, 1750, 1), 20, 6)

	if strings.TrimSpace(stripLines(v.view())) != "" {
		t.Fatalf("out-of-range points leaked into the view:\n%s", v.view())
	}
}

func TestMapViewEmptyDataset(t *testing.T) {
	v := newMapView(nil)
	v.update(filter.NewRange(1600, 1800, 1), 10, 3)

	lines := strings.Split(v.view(), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 blank rows, got %d", len(lines))
	}
}

func TestDensityTiersAreOrdered(t *testing.T) {
	prev := -1
	for _, w := range []float64{0.5, 3, 10, 100} {
		tier := densityTier(w)
		if tier <= prev {
			t.Fatalf("tier not increasing at weight %v", w)
		}
		if tier < 0 || tier >= len(cellStyles) {
			t.Fatalf("tier %d out of range", tier)
		}
		prev = tier
	}
}

// stripLines removes ANSI-styled rune content down to plain text by
// keeping only spaces and newlines when no escape codes are present.
func stripLines(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == ' ' || r == '\n' {
			b.WriteRune(r)
			continue
		}
		b.WriteRune('x')
	}
	return b.String()
}
