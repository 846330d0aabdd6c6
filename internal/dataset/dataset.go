// Package dataset loads geocoded land-grant records and derives the
// per-year statistics the playback engine runs on.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// GrantPoint is one geocoded historical record. Year is 0 when the source
// row carried no usable year; such points still render but never pass the
// year filter and never reach the histogram.
type GrantPoint struct {
	ID          int
	Year        int
	Lon         float64
	Lat         float64
	Description string
}

// Dataset holds the loaded points plus the histogram built from them.
type Dataset struct {
	Points    []GrantPoint
	Histogram *Histogram
}

// Load reads a CSV produced by the cleaning pipeline. Expected columns:
// id, year, lon, lat, description (description optional). Rows without
// parseable coordinates are dropped, which also skips a header row; rows
// without a parseable year keep the point with Year 0.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses CSV records from r. See Load for the column contract.
func Read(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var points []GrantPoint
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %w", err)
		}
		p, ok := parseRow(rec)
		if !ok {
			continue
		}
		points = append(points, p)
	}

	return &Dataset{Points: points, Histogram: NewHistogram(points)}, nil
}

func parseRow(rec []string) (GrantPoint, bool) {
	if len(rec) < 4 {
		return GrantPoint{}, false
	}
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(rec[3]), 64)
	if errLon != nil || errLat != nil {
		return GrantPoint{}, false
	}

	p := GrantPoint{Lon: lon, Lat: lat}
	if id, err := strconv.Atoi(strings.TrimSpace(rec[0])); err == nil {
		p.ID = id
	}
	if y, err := strconv.Atoi(strings.TrimSpace(rec[1])); err == nil {
		p.Year = y
	}
	if len(rec) > 4 {
		p.Description = strings.TrimSpace(rec[4])
	}
	return p, true
}
