package dataset

import (
	"strings"
	"testing"
)

const sampleCSV = `id,year,lon,lat,description
1,1650,-73.97,40.78,Harlem patent
2,1650,-73.95,40.80,
3,1652,-74.01,40.71,Manhattan grant
4,,-74.00,40.70,no year on record
5,1492,-73.90,40.85,out of domain
6,1800,-73.80,40.90,late grant
garbage,garbage,not-a-lon,not-a-lat,dropped
`

func TestReadParsesPointsAndSkipsHeader(t *testing.T) {
	ds, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(ds.Points); got != 6 {
		t.Fatalf("expected 6 points, got %d", got)
	}
	if p := ds.Points[0]; p.ID != 1 || p.Year != 1650 || p.Description != "Harlem patent" {
		t.Fatalf("unexpected first point: %+v", p)
	}
}

func TestReadKeepsYearlessPoints(t *testing.T) {
	ds, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	var yearless int
	for _, p := range ds.Points {
		if p.Year == 0 {
			yearless++
		}
	}
	if yearless != 1 {
		t.Fatalf("expected 1 yearless point, got %d", yearless)
	}
}

func TestHistogramExcludesOutOfDomainYears(t *testing.T) {
	ds, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	h := ds.Histogram
	if h.Total() != 4 {
		t.Fatalf("expected 4 in-domain points, got %d", h.Total())
	}
	if h.Total() > len(ds.Points) {
		t.Fatal("histogram total exceeds point count")
	}
	if got := h.Count(1492); got != 0 {
		t.Fatalf("out-of-domain year counted: %d", got)
	}
	if got := h.Count(1650); got != 2 {
		t.Fatalf("expected 2 points in 1650, got %d", got)
	}
}

func TestHistogramBounds(t *testing.T) {
	ds, err := Read(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	b, ok := ds.Histogram.Bounds()
	if !ok {
		t.Fatal("expected bounds for non-empty histogram")
	}
	if b.MinYear != 1650 || b.MaxYear != 1800 {
		t.Fatalf("unexpected bounds: %+v", b)
	}

	empty := NewHistogram(nil)
	if _, ok := empty.Bounds(); ok {
		t.Fatal("expected no bounds for empty histogram")
	}
}

func TestCountBetween(t *testing.T) {
	h := NewHistogram([]GrantPoint{
		{Year: 1650}, {Year: 1650}, {Year: 1652}, {Year: 1700},
	})

	cases := []struct {
		lo, hi, want int
	}{
		{1650, 1652, 3},
		{1650, 1650, 2},
		{1651, 1651, 0},
		{1600, 1800, 4},
		{1500, 2000, 4},
		{1700, 1650, 0},
	}
	for _, c := range cases {
		if got := h.CountBetween(c.lo, c.hi); got != c.want {
			t.Errorf("CountBetween(%d, %d) = %d, want %d", c.lo, c.hi, got, c.want)
		}
	}
}

func TestYearsOmitsEmptyYears(t *testing.T) {
	h := NewHistogram([]GrantPoint{{Year: 1650}, {Year: 1650}, {Year: 1652}})
	years := h.Years()
	if len(years) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(years))
	}
	if years[1650] != 2 || years[1652] != 1 {
		t.Fatalf("unexpected distribution: %v", years)
	}
}
