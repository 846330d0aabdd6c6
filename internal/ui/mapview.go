package ui

import (
	"math"
	"strings"

	"github.com/svanbekk/grantmap/internal/dataset"
	"github.com/svanbekk/grantmap/internal/filter"
)

// mapView renders the point cloud as Unicode braille cells. Each cell is
// a 2x4 dot grid, giving 2x horizontal and 4x vertical resolution over
// the character grid. Dot occupancy comes from the filter weight of every
// point, so the soft band fades points in before they turn fully on.
type mapView struct {
	points []dataset.GrantPoint

	minLon, maxLon float64
	minLat, maxLat float64

	output string
}

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

// dotThreshold is the accumulated weight at which a dot lights up. Below
// 1 so a single half-faded point still shows.
const dotThreshold = 0.35

func newMapView(points []dataset.GrantPoint) *mapView {
	v := &mapView{
		points: points,
		minLon: math.Inf(1), maxLon: math.Inf(-1),
		minLat: math.Inf(1), maxLat: math.Inf(-1),
	}
	for _, p := range points {
		v.minLon = math.Min(v.minLon, p.Lon)
		v.maxLon = math.Max(v.maxLon, p.Lon)
		v.minLat = math.Min(v.minLat, p.Lat)
		v.maxLat = math.Max(v.maxLat, p.Lat)
	}
	return v
}

// update redraws the cloud for the given range into an internal buffer.
func (v *mapView) update(rng filter.Range, width, height int) {
	if width < 2 {
		width = 2
	}
	if height < 1 {
		height = 1
	}
	dotCols := width * 2
	dotRows := height * 4

	lonSpan := v.maxLon - v.minLon
	latSpan := v.maxLat - v.minLat
	if len(v.points) == 0 || lonSpan <= 0 || latSpan <= 0 {
		v.output = strings.TrimRight(strings.Repeat(strings.Repeat(" ", width)+"\n", height), "\n")
		return
	}

	weights := make([]float64, dotCols*dotRows)
	for _, p := range v.points {
		w := rng.Weight(p.Year)
		if w == 0 {
			continue
		}
		dc := int((p.Lon - v.minLon) / lonSpan * float64(dotCols-1))
		dr := int((v.maxLat - p.Lat) / latSpan * float64(dotRows-1)) // north up
		weights[dr*dotCols+dc] += w
	}

	rows := make([]string, height)
	for row := 0; row < height; row++ {
		var line strings.Builder
		for col := 0; col < width; col++ {
			var pattern uint
			var cellWeight float64
			for dx := 0; dx < 2; dx++ {
				for dy := 0; dy < 4; dy++ {
					w := weights[(row*4+dy)*dotCols+col*2+dx]
					cellWeight += w
					if w >= dotThreshold {
						pattern |= 1 << brailleBits[dx][dy]
					}
				}
			}
			if pattern == 0 {
				line.WriteByte(' ')
				continue
			}
			line.WriteString(cellStyles[densityTier(cellWeight)].Render(string(rune(0x2800 + pattern))))
		}
		rows[row] = line.String()
	}
	v.output = strings.Join(rows, "\n")
}

// densityTier buckets a cell's accumulated weight into a color index.
func densityTier(w float64) int {
	switch {
	case w < 2:
		return 0
	case w < 8:
		return 1
	case w < 32:
		return 2
	default:
		return 3
	}
}

func (v *mapView) view() string {
	return v.output
}
