package menunav

// ContentGroup is the navigable grid of one activated panel. Rows are ordered
// top to bottom and each row left to right. A group always has at least one
// row and every row at least one element. Groups are immutable: layout
// changes produce a new group through BuildGroup.
type ContentGroup struct {
	panel   Panel
	rows    [][]Element
	sliders [][]HorizontalSlider // parallel to rows, nil where not a slider
	bounds  Bounds
}

// Panel returns the panel that owns the group.
func (g *ContentGroup) Panel() Panel {
	return g.panel
}

// Bounds returns the union of all element bounds in the group.
func (g *ContentGroup) Bounds() Bounds {
	return g.bounds
}

// RowCount returns the number of rows.
func (g *ContentGroup) RowCount() int {
	return len(g.rows)
}

// ColumnCount returns the number of elements in row, or 0 if row is out of
// range.
func (g *ContentGroup) ColumnCount(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// At returns the element at (row, col), or nil if out of range.
func (g *ContentGroup) At(row, col int) Element {
	if !g.valid(row, col) {
		return nil
	}
	return g.rows[row][col]
}

// Row returns a copy of the given row.
func (g *ContentGroup) Row(row int) []Element {
	if row < 0 || row >= len(g.rows) {
		return nil
	}
	out := make([]Element, len(g.rows[row]))
	copy(out, g.rows[row])
	return out
}

// Len returns the total number of elements in the group.
func (g *ContentGroup) Len() int {
	n := 0
	for _, r := range g.rows {
		n += len(r)
	}
	return n
}

// Find returns the position of the first element whose ID equals id,
// scanning row-major.
func (g *ContentGroup) Find(id string) (row, col int, ok bool) {
	for r, elems := range g.rows {
		for c, e := range elems {
			if e.ID() == id {
				return r, c, true
			}
		}
	}
	return -1, -1, false
}

// Slider returns the slider capability of the element at (row, col), or nil.
func (g *ContentGroup) Slider(row, col int) HorizontalSlider {
	if !g.valid(row, col) {
		return nil
	}
	return g.sliders[row][col]
}

// IsAboveOf reports whether g lies above other.
func (g *ContentGroup) IsAboveOf(other *ContentGroup) bool {
	return IsAbove(g.bounds, other.bounds)
}

// IsBelowOf reports whether g lies below other.
func (g *ContentGroup) IsBelowOf(other *ContentGroup) bool {
	return IsBelow(g.bounds, other.bounds)
}

// IsLeftOf reports whether g lies left of other.
func (g *ContentGroup) IsLeftOf(other *ContentGroup) bool {
	return IsLeftOf(g.bounds, other.bounds)
}

// IsRightOf reports whether g lies right of other.
func (g *ContentGroup) IsRightOf(other *ContentGroup) bool {
	return IsRightOf(g.bounds, other.bounds)
}

func (g *ContentGroup) valid(row, col int) bool {
	return row >= 0 && row < len(g.rows) && col >= 0 && col < len(g.rows[row])
}

// nearestColumn returns the column in row whose element X is closest to x.
// Ties keep the lowest index.
func (g *ContentGroup) nearestColumn(row int, x float64) int {
	best, diff := 0, inf
	for c, e := range g.rows[row] {
		if d := abs(x - e.Position().X); d < diff {
			diff = d
			best = c
		}
	}
	return best
}

// nearestRow returns the row whose first element Y is closest to y.
// Ties keep the lowest index.
func (g *ContentGroup) nearestRow(y float64) int {
	best, diff := 0, inf
	for r, elems := range g.rows {
		if d := abs(y - elems[0].Position().Y); d < diff {
			diff = d
			best = r
		}
	}
	return best
}
