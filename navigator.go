package menunav

import "log/slog"

// Navigator drives keyboard/gamepad focus across the content groups of one
// menu session. All state is owned by the Navigator value, so independent
// sessions can coexist. Navigator is not safe for concurrent use; call it
// from the game loop.
//
// Every operation is total: requests that cannot be honoured (moving while
// unfocused, focusing an unknown ID, exceeding the group limit) degrade to
// no-ops or documented fallbacks.
//
// Usage:
//
//	nav := menunav.NewNavigator(menunav.DefaultSettings(),
//		menunav.WithPresenter(menunav.NewElementPresenter(evidence)))
//	nav.Activate(mainPanel, menunav.WithFocus("play"))
//
//	// each tick
//	input.Update(nav)
type Navigator struct {
	settings  Settings
	registry  *Registry
	focus     FocusState
	presenter Presenter
	events    *Events
	sink      EventSink
	logger    *slog.Logger
	active    bool
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithPresenter sets the presenter receiving highlight, evidence and press
// calls. The default is NopPresenter.
func WithPresenter(p Presenter) Option {
	return func(n *Navigator) {
		if p != nil {
			n.presenter = p
		}
	}
}

// WithEvents sets the dispatcher used for navigation events.
func WithEvents(e *Events) Option {
	return func(n *Navigator) { n.events = e }
}

// WithEventSink forwards every navigation event to sink.
func WithEventSink(sink EventSink) Option {
	return func(n *Navigator) { n.sink = sink }
}

// WithLogger replaces the package logger for this navigator.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// NewNavigator creates an inactive, unfocused navigator.
func NewNavigator(s Settings, opts ...Option) *Navigator {
	s = s.normalized()
	n := &Navigator{
		settings:  s,
		registry:  NewRegistry(s.MaxGroups),
		focus:     unfocused,
		presenter: NopPresenter{},
		events:    NewEvents(),
		logger:    navLogger,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Settings returns the current settings.
func (n *Navigator) Settings() Settings {
	return n.settings
}

// SetSettings replaces the settings. Existing groups keep the layout they
// were built with until the next Refresh, which also drops the groups that
// exceed a lowered MaxGroups.
func (n *Navigator) SetSettings(s Settings) {
	n.settings = s.normalized()
	n.registry.max = n.settings.MaxGroups
}

// Events returns the navigator's event dispatcher.
func (n *Navigator) Events() *Events {
	return n.events
}

// Active reports whether at least one group has been activated since the
// last DeactivateAll.
func (n *Navigator) Active() bool {
	return n.active
}

// Groups returns the active groups in activation order.
func (n *Navigator) Groups() []*ContentGroup {
	return n.registry.Groups()
}

// Group returns the active group owned by panel, or nil.
func (n *Navigator) Group(panel Panel) *ContentGroup {
	return n.registry.At(n.registry.Index(panel))
}

// Focus returns the navigation cursor.
func (n *Navigator) Focus() FocusState {
	return n.focus
}

// Focused returns the focused element, or nil.
func (n *Navigator) Focused() Element {
	return n.focus.Element()
}

// HasFocus reports whether an element is focused.
func (n *Navigator) HasFocus() bool {
	return n.focus.Focused()
}

// --- Activation ---

type activateConfig struct {
	focusID    string
	force      bool
	additional bool
}

// ActivateOption configures Activate.
type ActivateOption func(*activateConfig)

// WithFocus focuses the element with the given ID after activation, falling
// back to the first element of the first group. It implies a forced
// refresh.
func WithFocus(id string) ActivateOption {
	return func(c *activateConfig) { c.focusID = id }
}

// WithForceRefresh rebuilds the panel's group even if it is already active.
func WithForceRefresh() ActivateOption {
	return func(c *activateConfig) { c.force = true }
}

// AsAdditionalGroup keeps the existing groups instead of replacing them.
func AsAdditionalGroup() ActivateOption {
	return func(c *activateConfig) { c.additional = true }
}

// Activate builds a content group from the panel's elements and registers
// it. By default all existing groups are replaced; use AsAdditionalGroup to
// add a panel alongside them.
//
// Activating a panel that is already active does nothing unless a refresh
// is forced, which happens with WithForceRefresh, WithFocus, or a replacing
// activation while several groups are active. A forced additional
// activation rebuilds the panel's group in place.
//
// After activation the element named by WithFocus is focused. Without it,
// the new group's first element is focused only if nothing has focus.
func (n *Navigator) Activate(panel Panel, opts ...ActivateOption) {
	if panel == nil {
		return
	}
	var cfg activateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	force := cfg.force || cfg.focusID != "" || !cfg.additional && n.registry.Len() > 1
	exists := n.registry.Contains(panel)
	if exists && !force {
		n.logger.Debug("Activate: panel already active", "groups", n.registry.Len())
		return
	}
	if !cfg.additional {
		n.DeactivateAll()
		exists = false
	}

	g, ok := BuildGroup(panel, panel.Elements(), n.settings)
	if !ok {
		n.logger.Debug("Activate: panel has no navigable elements")
		if exists {
			n.Deactivate(panel)
		}
		return
	}

	if exists {
		old := n.registry.Replace(g)
		n.emit(NavEvent{Type: NavGroupActivated, Panel: panel})
		if n.focus.Group == old {
			n.refocusIn(g)
		}
	} else {
		if !n.registry.Add(g) {
			n.logger.Warn("Activate: group limit reached, panel ignored", "max", n.registry.Cap())
			return
		}
		n.emit(NavEvent{Type: NavGroupActivated, Panel: panel})
	}
	n.active = true
	n.logger.Debug("Activate: group ready",
		"rows", g.RowCount(), "elements", g.Len(), "groups", n.registry.Len())

	switch {
	case cfg.focusID != "":
		n.FocusByID(cfg.focusID)
	case !n.focus.Focused():
		n.setFocus(g, 0, 0, NavEvent{})
	}
}

// AddGroup activates panel alongside the existing groups.
func (n *Navigator) AddGroup(panel Panel, opts ...ActivateOption) {
	n.Activate(panel, append(opts, AsAdditionalGroup())...)
}

// Deactivate removes the panel's group. Removing the last group is the
// same as DeactivateAll. If the removed group held focus, focus moves to the
// first element of the first remaining group.
func (n *Navigator) Deactivate(panel Panel) {
	if !n.registry.Contains(panel) {
		return
	}
	if n.registry.Len() == 1 {
		n.DeactivateAll()
		return
	}
	g := n.registry.Remove(panel)
	n.emit(NavEvent{Type: NavGroupDeactivated, Panel: panel})
	if n.focus.Group == g {
		n.setFocus(n.registry.At(0), 0, 0, NavEvent{})
	}
}

// DeactivateAll clears focus and removes every group.
func (n *Navigator) DeactivateAll() {
	n.active = false
	n.Unfocus()
	for _, g := range n.registry.groups {
		n.emit(NavEvent{Type: NavGroupDeactivated, Panel: g.panel})
	}
	n.registry.Clear()
}

// Refresh rebuilds every active group from its panel's current elements,
// keeping activation order. Focus stays on the element with the same ID in
// the rebuilt group when present, otherwise it falls back to the first
// element of that group, or of the first group if the focused panel lost all
// its elements. Groups beyond Settings.MaxGroups, in activation order, are
// dropped. An unfocused navigator stays unfocused.
func (n *Navigator) Refresh() {
	if n.registry.Len() == 0 {
		return
	}
	prevGroup := n.focus.Group
	old := n.registry.Groups()
	n.registry.Clear()

	var target *ContentGroup
	for _, og := range old {
		g, ok := BuildGroup(og.panel, og.panel.Elements(), n.settings)
		if !ok {
			n.emit(NavEvent{Type: NavGroupDeactivated, Panel: og.panel})
			continue
		}
		if !n.registry.Add(g) {
			n.logger.Warn("Refresh: group limit reached, panel dropped", "max", n.registry.Cap())
			n.emit(NavEvent{Type: NavGroupDeactivated, Panel: og.panel})
			continue
		}
		n.emit(NavEvent{Type: NavGroupActivated, Panel: og.panel})
		if og == prevGroup {
			target = g
		}
	}

	if n.registry.Len() == 0 {
		n.DeactivateAll()
		return
	}
	if prevGroup == nil {
		return
	}
	if target == nil {
		n.setFocus(n.registry.At(0), 0, 0, NavEvent{})
		return
	}
	n.refocusIn(target)
}

// refocusIn focuses the element of g matching the current focus ID, or g's
// first element.
func (n *Navigator) refocusIn(g *ContentGroup) {
	row, col := 0, 0
	if el := n.focus.Element(); el != nil {
		if r, c, ok := g.Find(el.ID()); ok {
			row, col = r, c
		}
	}
	n.setFocus(g, row, col, NavEvent{})
}

// --- Focus ---

// FocusByID focuses the first element whose ID equals id, scanning groups in
// activation order. If no element matches, the first element of the first
// group is focused. With no active groups it does nothing.
func (n *Navigator) FocusByID(id string) {
	if n.registry.Len() == 0 {
		return
	}
	g, row, col, ok := n.registry.Find(id)
	if !ok {
		n.logger.Debug("FocusByID: no match, focusing first element", "id", id)
		g, row, col = n.registry.At(0), 0, 0
	}
	n.setFocus(g, row, col, NavEvent{})
}

// SetFocus focuses the element at (row, col) of an active group. It returns
// false and changes nothing if g is not active or the indices are out of
// range.
func (n *Navigator) SetFocus(g *ContentGroup, row, col int) bool {
	if g == nil || n.Group(g.panel) != g || !g.valid(row, col) {
		return false
	}
	n.setFocus(g, row, col, NavEvent{})
	return true
}

// setFocus moves the cursor and runs the presentation side effects. move
// carries the Direction/Moved fields of the resulting event.
func (n *Navigator) setFocus(g *ContentGroup, row, col int, move NavEvent) {
	prev := n.focus.Element()
	if prev != nil && n.settings.RolloverEffects {
		n.presenter.Unhighlight(prev)
	}
	n.focus = FocusState{Group: g, Row: row, Column: col}
	el := g.rows[row][col]
	if n.settings.RolloverEffects {
		n.presenter.Highlight(el)
	}
	n.presenter.PositionEvidence(el.Bounds().Expand(n.settings.EvidenceBorder))

	n.logger.Debug("focus", "id", el.ID(), "row", row, "col", col)
	n.emit(NavEvent{
		Type:      NavFocusChanged,
		Panel:     g.panel,
		Element:   el,
		Previous:  prev,
		Row:       row,
		Column:    col,
		Direction: move.Direction,
		Moved:     move.Moved,
	})
}

// Unfocus clears focus, hiding the evidence indicator.
func (n *Navigator) Unfocus() {
	if !n.focus.Focused() {
		return
	}
	prev := n.focus.Element()
	panel := n.focus.Group.panel
	n.presenter.HideEvidence()
	if n.settings.RolloverEffects {
		n.presenter.Unhighlight(prev)
	}
	n.focus = unfocused
	n.emit(NavEvent{Type: NavFocusCleared, Panel: panel, Previous: prev, Row: -1, Column: -1})
}

// --- Commands ---

// Up moves focus up.
func (n *Navigator) Up() { n.Move(Up) }

// Down moves focus down.
func (n *Navigator) Down() { n.Move(Down) }

// Left decreases a focused slider, or moves focus left.
func (n *Navigator) Left() {
	if n.AdjustFocusedValue(Left, n.settings.SliderStep) {
		return
	}
	n.Move(Left)
}

// Right increases a focused slider, or moves focus right.
func (n *Navigator) Right() {
	if n.AdjustFocusedValue(Right, n.settings.SliderStep) {
		return
	}
	n.Move(Right)
}

// Enter presses the focused element.
func (n *Navigator) Enter() {
	if !n.focus.Focused() {
		return
	}
	el := n.focus.Element()
	n.presenter.SimulatePress(el)
	n.emit(NavEvent{
		Type:    NavPressed,
		Panel:   n.focus.Group.panel,
		Element: el,
		Row:     n.focus.Row,
		Column:  n.focus.Column,
	})
}

// AdjustFocusedValue changes the focused element's value if it is a
// HorizontalSlider: Left decreases by step, Right increases by step. It
// reports whether a slider was adjusted.
func (n *Navigator) AdjustFocusedValue(dir Direction, step float64) bool {
	if !n.focus.Focused() {
		return false
	}
	sl := n.focus.Group.Slider(n.focus.Row, n.focus.Column)
	if sl == nil {
		return false
	}
	var delta float64
	switch dir {
	case Left:
		sl.DecreaseBy(step)
		delta = -step
	case Right:
		sl.IncreaseBy(step)
		delta = step
	default:
		return false
	}
	n.emit(NavEvent{
		Type:      NavValueAdjusted,
		Panel:     n.focus.Group.panel,
		Element:   n.focus.Element(),
		Row:       n.focus.Row,
		Column:    n.focus.Column,
		Direction: dir,
		Delta:     delta,
	})
	return true
}

// Move moves focus one step in dir.
//
// Inside a group focus steps to the adjacent row or column. At the edge it
// hands off to the nearest group in that direction; with no such group it
// wraps when Settings.Loop is set and otherwise stays put. Changing row
// picks the column nearest the previous element's X; entering a group
// vertically lands on its last row (moving up) or first row (moving down),
// and horizontally on the row nearest the previous Y, at its last column
// (moving left) or first column (moving right).
func (n *Navigator) Move(dir Direction) {
	if !n.focus.Focused() {
		return
	}
	cur := n.focus
	from := cur.Group
	prevPos := cur.Element().Position()
	target, row, col := from, cur.Row, cur.Column

	switch dir {
	case Up:
		if row > 0 {
			row--
		} else if adj := n.registry.Adjacent(from, Up); adj != nil {
			target = adj
		} else if n.settings.Loop {
			row = from.RowCount() - 1
		}
	case Down:
		if row < from.RowCount()-1 {
			row++
		} else if adj := n.registry.Adjacent(from, Down); adj != nil {
			target = adj
		} else if n.settings.Loop {
			row = 0
		}
	case Left:
		if col > 0 {
			col--
		} else if adj := n.registry.Adjacent(from, Left); adj != nil {
			target = adj
		} else if n.settings.Loop {
			col = from.ColumnCount(row) - 1
		}
	case Right:
		if col < from.ColumnCount(row)-1 {
			col++
		} else if adj := n.registry.Adjacent(from, Right); adj != nil {
			target = adj
		} else if n.settings.Loop {
			col = 0
		}
	default:
		return
	}

	vertical := dir == Up || dir == Down
	switched := target != from
	switch {
	case row != cur.Row || switched && vertical:
		if switched {
			row = 0
			if dir == Up {
				row = target.RowCount() - 1
			}
		}
		col = target.nearestColumn(row, prevPos.X)
	case switched:
		row = target.nearestRow(prevPos.Y)
		col = 0
		if dir == Left {
			col = target.ColumnCount(row) - 1
		}
	}

	if !switched && row == cur.Row && col == cur.Column {
		return
	}
	n.setFocus(target, row, col, NavEvent{Direction: dir, Moved: true})
}

func (n *Navigator) emit(ev NavEvent) {
	n.events.emitNav(ev)
	if n.sink != nil {
		n.sink.EmitEvent(ev)
	}
}
