package menunav

// Element is a focusable item arranged by the navigator. The navigator only
// reads elements; it never creates, mutates or destroys them.
type Element interface {
	// ID is the element's identifier, used by FocusByID and matched
	// against Settings.IgnoreID.
	ID() string
	// Position is used to bucket elements into rows and columns.
	Position() Vec2
	// Bounds sizes the evidence indicator and the owning group's box.
	Bounds() Bounds
	// Enabled reports whether the element takes part in navigation.
	Enabled() bool
}

// HorizontalSlider is implemented by elements whose value can be changed
// with Left/Right while focused. Percentages are fractions of the full
// range (0.1 = 10%).
type HorizontalSlider interface {
	IncreaseBy(percentage float64)
	DecreaseBy(percentage float64)
}

// Rollable is implemented by elements that react to focus with rollover
// effects.
type Rollable interface {
	SimulateRollOver()
	SimulateRollOut()
}

// Pressable is implemented by elements that can be activated with Enter.
type Pressable interface {
	SimulatePress()
}

// Panel owns a set of elements and identifies a content group. Panels are
// compared with ==, so implementations should be pointer types.
// Elements is called on every activation and refresh and must return the
// panel's current children.
type Panel interface {
	Elements() []Element
}

// ElementPanel is a Panel backed by a plain slice. Hosts that keep their
// own scene graph usually implement Panel directly instead.
type ElementPanel struct {
	Name  string
	Items []Element
}

// NewElementPanel creates a panel holding the given elements.
func NewElementPanel(name string, items ...Element) *ElementPanel {
	return &ElementPanel{Name: name, Items: items}
}

// Elements returns the panel's items.
func (p *ElementPanel) Elements() []Element {
	return p.Items
}

// Add appends elements to the panel. Call Navigator.Refresh afterwards if
// the panel is active.
func (p *ElementPanel) Add(items ...Element) {
	p.Items = append(p.Items, items...)
}
