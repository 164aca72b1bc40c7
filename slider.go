package menunav

// Slider is a Button holding a value in [0, 1]. It implements
// HorizontalSlider, so Left/Right adjust it while it has focus.
type Slider struct {
	*Button
	Value float64

	// OnChange is called after Value changes.
	OnChange func(s *Slider)
}

// NewSlider creates a slider centred on (x, y) with the given value,
// clamped to [0, 1].
func NewSlider(name string, x, y, w, h, value float64) *Slider {
	return &Slider{Button: NewButton(name, x, y, w, h), Value: clamp01(value)}
}

// IncreaseBy raises the value by percentage (0.1 = 10%).
func (s *Slider) IncreaseBy(percentage float64) {
	s.SetValue(s.Value + percentage)
}

// DecreaseBy lowers the value by percentage (0.1 = 10%).
func (s *Slider) DecreaseBy(percentage float64) {
	s.SetValue(s.Value - percentage)
}

// SetValue clamps v to [0, 1] and stores it, calling OnChange if it differs
// from the current value.
func (s *Slider) SetValue(v float64) {
	v = clamp01(v)
	if v == s.Value {
		return
	}
	s.Value = v
	if s.OnChange != nil {
		s.OnChange(s)
	}
}
