package menunav

// Direction is a navigation direction.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// FocusState is the navigation cursor. The unfocused state has a nil Group
// and Row = Column = -1.
type FocusState struct {
	Group  *ContentGroup
	Row    int
	Column int
}

// unfocused is the cursor value when nothing has focus.
var unfocused = FocusState{Row: -1, Column: -1}

// Focused reports whether the state points at an element.
func (f FocusState) Focused() bool {
	return f.Group != nil
}

// Element returns the element under the cursor, or nil.
func (f FocusState) Element() Element {
	if f.Group == nil {
		return nil
	}
	return f.Group.At(f.Row, f.Column)
}
