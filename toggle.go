package menunav

// ToggleButton is a Button whose click flips its selected state.
type ToggleButton struct {
	*Button
	Selected bool

	OnToggle   func(ButtonEvent)
	OnSelect   func(ButtonEvent)
	OnDeselect func(ButtonEvent)
}

// NewToggleButton creates an unselected toggle button centred on (x, y).
func NewToggleButton(name string, x, y, w, h float64) *ToggleButton {
	t := &ToggleButton{Button: NewButton(name, x, y, w, h)}
	t.afterClick = func() { t.SetSelected(!t.Selected) }
	return t
}

// SetSelected changes the selected state, firing Select or Deselect
// followed by Toggle. Setting the current state does nothing.
func (t *ToggleButton) SetSelected(selected bool) {
	if t.Selected == selected {
		return
	}
	t.Selected = selected
	if selected {
		t.fire(ButtonSelect, t.OnSelect)
	} else {
		t.fire(ButtonDeselect, t.OnDeselect)
	}
	t.fire(ButtonToggle, t.OnToggle)
}
