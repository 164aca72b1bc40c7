package menunav

import (
	"cmp"
	"math"
	"slices"
)

var inf = math.Inf(1)

func abs(v float64) float64 { return math.Abs(v) }

// approxEqual reports whether two row coordinates belong to the same row.
func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

// BuildGroup arranges the panel's elements into a row-major grid.
//
// Disabled elements, nil elements and elements whose ID equals
// s.IgnoreID are skipped. The rest are stably sorted top to bottom; a new
// row starts whenever an element's Y differs from the previous element's Y
// by at least s.RowTolerance. Each row is then stably sorted left to right.
// Slider capabilities are resolved here, once per group.
//
// It returns false when no element survives filtering; callers treat that
// as a no-op activation.
func BuildGroup(panel Panel, elements []Element, s Settings) (*ContentGroup, bool) {
	s = s.normalized()

	filtered := make([]Element, 0, len(elements))
	for _, e := range elements {
		if e == nil || !e.Enabled() || e.ID() == s.IgnoreID {
			continue
		}
		filtered = append(filtered, e)
	}
	if len(filtered) == 0 {
		return nil, false
	}

	slices.SortStableFunc(filtered, func(a, b Element) int {
		return cmp.Compare(b.Position().Y, a.Position().Y)
	})

	var rows [][]Element
	for i, e := range filtered {
		if i == 0 || !approxEqual(e.Position().Y, filtered[i-1].Position().Y, s.RowTolerance) {
			rows = append(rows, nil)
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], e)
	}

	g := &ContentGroup{
		panel:   panel,
		rows:    rows,
		sliders: make([][]HorizontalSlider, len(rows)),
		bounds:  filtered[0].Bounds(),
	}
	for r, row := range rows {
		slices.SortStableFunc(row, func(a, b Element) int {
			return cmp.Compare(a.Position().X, b.Position().X)
		})
		g.sliders[r] = make([]HorizontalSlider, len(row))
		for c, e := range row {
			g.bounds = Union(g.bounds, e.Bounds())
			if sl, ok := e.(HorizontalSlider); ok {
				g.sliders[r][c] = sl
			}
		}
	}
	return g, true
}
