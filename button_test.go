package menunav

import (
	"fmt"
	"math"
	"testing"
)

func recordButtonEvents(b *Button) *[]string {
	var got []string
	ev := NewEvents()
	for t := ButtonSelect; t < numButtonEventTypes; t++ {
		ev.OnButton(t, func(e ButtonEvent) { got = append(got, e.Type.String()) })
	}
	b.Events = ev
	return &got
}

func TestButtonElement(t *testing.T) {
	b := NewButton("play", 100, 50, 40, 20)
	if b.ID() != "play" || b.Position() != (Vec2{100, 50}) || !b.Enabled() {
		t.Fatalf("unexpected button %+v", b)
	}
	if b.Bounds() != box(80, 40, 120, 60) {
		t.Errorf("Bounds = %+v", b.Bounds())
	}
	b.Disabled = true
	if b.Enabled() {
		t.Error("disabled button reported enabled")
	}
	var _ Element = b
	var _ Rollable = b
	var _ Pressable = b
}

func TestButtonSimulatePressOrder(t *testing.T) {
	b := NewButton("b", 0, 0, 10, 10)
	got := recordButtonEvents(b)
	var callbacks []string
	b.OnPress = func(ButtonEvent) { callbacks = append(callbacks, "press") }
	b.OnClick = func(ButtonEvent) { callbacks = append(callbacks, "click") }
	b.OnRelease = func(ButtonEvent) { callbacks = append(callbacks, "release") }

	b.SimulatePress()
	if fmt.Sprint(*got) != "[Press Click Release]" {
		t.Errorf("events = %v", *got)
	}
	if fmt.Sprint(callbacks) != "[press click release]" {
		t.Errorf("callbacks = %v", callbacks)
	}
	if b.IsPressed() {
		t.Error("button still pressed")
	}
}

func TestButtonReleaseOutside(t *testing.T) {
	b := NewButton("b", 0, 0, 10, 10)
	got := recordButtonEvents(b)
	b.Press()
	b.Press()
	b.Release(false)
	b.Release(false)
	if fmt.Sprint(*got) != "[Press Release]" {
		t.Errorf("events = %v", *got)
	}
}

func TestButtonRollover(t *testing.T) {
	b := NewButton("b", 0, 0, 10, 10)
	got := recordButtonEvents(b)
	b.SimulateRollOver()
	b.SimulateRollOver()
	if !b.IsOver() {
		t.Error("IsOver false after roll over")
	}
	b.SimulateRollOut()
	b.SimulateRollOut()
	if fmt.Sprint(*got) != "[RollOver RollOut]" {
		t.Errorf("events = %v", *got)
	}
}

func TestButtonRolloverTween(t *testing.T) {
	b := NewButton("b", 0, 0, 10, 10)
	b.ScaleTween = TweenOnRollover

	b.SimulateRollOver()
	b.Update(buttonTweenDuration / 2)
	if b.Scale <= 1 || b.Scale >= DefaultScaleMultiplier {
		t.Errorf("mid-tween scale = %v", b.Scale)
	}
	b.Update(buttonTweenDuration)
	if math.Abs(b.Scale-DefaultScaleMultiplier) > 1e-6 {
		t.Errorf("scale = %v, want %v", b.Scale, DefaultScaleMultiplier)
	}
	if b.Bounds() != BoundsFromRect(0, 0, 10, 10) {
		t.Error("Bounds should ignore the visual scale")
	}

	b.SimulateRollOut()
	b.Update(buttonTweenDuration * 2)
	if math.Abs(b.Scale-1) > 1e-6 {
		t.Errorf("scale after roll out = %v, want 1", b.Scale)
	}
}

func TestButtonPressTween(t *testing.T) {
	b := NewButton("b", 0, 0, 10, 10)
	b.ScaleTween = TweenOnPress
	b.ScaleMultiplier = 1.5
	b.Press()
	if b.Scale != 1.5 {
		t.Errorf("scale on press = %v, want 1.5", b.Scale)
	}
	b.Release(true)
	b.Update(1)
	if math.Abs(b.Scale-1) > 1e-6 {
		t.Errorf("scale after release = %v, want 1", b.Scale)
	}
}

func TestButtonNoTween(t *testing.T) {
	b := NewButton("b", 0, 0, 10, 10)
	b.SimulateRollOver()
	b.Update(1)
	if b.Scale != 1 {
		t.Errorf("scale = %v, want 1 with TweenNone", b.Scale)
	}
}

func TestToggleButton(t *testing.T) {
	tb := NewToggleButton("full", 0, 0, 10, 10)
	got := recordButtonEvents(tb.Button)
	var toggles int
	tb.OnToggle = func(ButtonEvent) { toggles++ }

	tb.SimulatePress()
	if !tb.Selected {
		t.Fatal("click should select")
	}
	if fmt.Sprint(*got) != "[Press Click Select Toggle Release]" {
		t.Errorf("events = %v", *got)
	}

	*got = (*got)[:0]
	tb.SimulatePress()
	if tb.Selected {
		t.Fatal("second click should deselect")
	}
	if fmt.Sprint(*got) != "[Press Click Deselect Toggle Release]" {
		t.Errorf("events = %v", *got)
	}

	tb.SetSelected(false)
	if toggles != 2 {
		t.Errorf("toggles = %d, want 2", toggles)
	}
	tb.Press()
	tb.Release(false)
	if tb.Selected {
		t.Error("release outside should not toggle")
	}
}

func TestSlider(t *testing.T) {
	s := NewSlider("vol", 0, 0, 10, 10, 1.7)
	if s.Value != 1 {
		t.Errorf("initial value = %v, want clamped 1", s.Value)
	}
	var changes int
	s.OnChange = func(*Slider) { changes++ }

	s.IncreaseBy(0.1)
	if changes != 0 {
		t.Error("no-op increase fired OnChange")
	}
	s.DecreaseBy(0.25)
	if math.Abs(s.Value-0.75) > 1e-9 {
		t.Errorf("value = %v, want 0.75", s.Value)
	}
	s.DecreaseBy(5)
	if s.Value != 0 {
		t.Errorf("value = %v, want 0", s.Value)
	}
	if changes != 2 {
		t.Errorf("changes = %d, want 2", changes)
	}
	var _ HorizontalSlider = s
}

func TestSliderNavigation(t *testing.T) {
	s := NewSlider("vol", 0, 10, 10, 10, 0.5)
	n := newTestNavigator(false)
	n.Activate(NewElementPanel("p", s, NewButton("ok", 0, 0, 10, 10)))
	n.Right()
	n.Right()
	if math.Abs(s.Value-0.7) > 1e-9 {
		t.Errorf("value = %v, want 0.7", s.Value)
	}
	if focusID(n) != "vol" {
		t.Errorf("focus moved to %q", focusID(n))
	}
}

func TestElementPresenter(t *testing.T) {
	ev := NewEvidence(false)
	p := NewElementPresenter(ev)
	b := NewButton("b", 0, 0, 10, 10)
	clicks := 0
	b.OnClick = func(ButtonEvent) { clicks++ }

	p.Highlight(b)
	if !b.IsOver() {
		t.Error("Highlight should roll over")
	}
	p.Unhighlight(b)
	if b.IsOver() {
		t.Error("Unhighlight should roll out")
	}
	p.SimulatePress(b)
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}

	p.PositionEvidence(box(0, 0, 4, 4))
	if !ev.Visible() || ev.Bounds() != box(0, 0, 4, 4) {
		t.Error("PositionEvidence should show evidence")
	}
	p.HideEvidence()
	if ev.Visible() {
		t.Error("HideEvidence should hide evidence")
	}

	// Elements without capabilities are ignored.
	plain := elem("plain", 0, 0)
	p.Highlight(plain)
	p.SimulatePress(plain)
	NewElementPresenter(nil).PositionEvidence(box(0, 0, 1, 1))
}
