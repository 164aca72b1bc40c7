package menunav

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	buttonTweenDuration = 0.25 // seconds

	// DefaultScaleMultiplier is the scale a button tweens to when its
	// scale tween fires.
	DefaultScaleMultiplier = 1.1
)

// TweenMode selects when a button plays its scale tween.
type TweenMode uint8

const (
	TweenNone       TweenMode = iota // no animation
	TweenOnRollover                  // grow while rolled over, shrink back on roll out
	TweenOnPress                     // jump to full size on press, shrink back on release
)

// Button is a rectangular sprite button usable as a navigation Element.
// Position is the button centre; Width and Height give its unscaled size.
//
// Buttons are driven either by the navigator (through ElementPresenter) or
// directly by the host's pointer handling, via SimulateRollOver,
// SimulateRollOut and SimulatePress. Events fire on the per-button callback
// first, then on Events if set.
//
// Call Update(dt) once per frame while a scale tween may be running.
type Button struct {
	Name          string
	X, Y          float64
	Width, Height float64
	Disabled      bool

	// ScaleTween selects when Scale animates; ScaleMultiplier is the peak.
	ScaleTween      TweenMode
	ScaleMultiplier float64
	// Scale is the current visual scale, written by Update.
	Scale float64

	// Events, when set, receives every event this button fires.
	Events *Events

	OnRollOver func(ButtonEvent)
	OnRollOut  func(ButtonEvent)
	OnPress    func(ButtonEvent)
	OnRelease  func(ButtonEvent)
	OnClick    func(ButtonEvent)

	over       bool
	pressed    bool
	tween      *gween.Tween
	afterClick func() // set by ToggleButton
}

// NewButton creates an enabled button centred on (x, y).
func NewButton(name string, x, y, w, h float64) *Button {
	return &Button{
		Name:            name,
		X:               x,
		Y:               y,
		Width:           w,
		Height:          h,
		ScaleMultiplier: DefaultScaleMultiplier,
		Scale:           1,
	}
}

// ID returns the button name.
func (b *Button) ID() string { return b.Name }

// Position returns the button centre.
func (b *Button) Position() Vec2 { return Vec2{b.X, b.Y} }

// Bounds returns the unscaled button rectangle.
func (b *Button) Bounds() Bounds { return BoundsFromRect(b.X, b.Y, b.Width, b.Height) }

// Enabled reports whether the button takes part in navigation.
func (b *Button) Enabled() bool { return !b.Disabled }

// IsOver reports whether the button is rolled over.
func (b *Button) IsOver() bool { return b.over }

// IsPressed reports whether the button is held down.
func (b *Button) IsPressed() bool { return b.pressed }

// SimulateRollOver puts the button in its rolled-over state.
func (b *Button) SimulateRollOver() {
	if b.over {
		return
	}
	b.over = true
	if b.ScaleTween == TweenOnRollover {
		b.tweenScale(b.ScaleMultiplier)
	}
	b.fire(ButtonRollOver, b.OnRollOver)
}

// SimulateRollOut leaves the rolled-over state.
func (b *Button) SimulateRollOut() {
	if !b.over {
		return
	}
	b.over = false
	if b.ScaleTween == TweenOnRollover {
		b.tweenScale(1)
	}
	b.fire(ButtonRollOut, b.OnRollOut)
}

// SimulatePress presses and releases the button in place, which fires
// Press, Click and Release in that order.
func (b *Button) SimulatePress() {
	b.Press()
	b.Release(true)
}

// Press puts the button in its pressed state.
func (b *Button) Press() {
	if b.pressed {
		return
	}
	b.pressed = true
	if b.ScaleTween == TweenOnPress {
		b.tween = nil
		b.Scale = b.ScaleMultiplier
	}
	b.fire(ButtonPress, b.OnPress)
}

// Release ends a press. inside reports whether the pointer is still over
// the button, in which case Click fires before Release.
func (b *Button) Release(inside bool) {
	if !b.pressed {
		return
	}
	b.pressed = false
	if b.ScaleTween == TweenOnPress {
		b.tweenScale(1)
	}
	if inside {
		b.fire(ButtonClick, b.OnClick)
		if b.afterClick != nil {
			b.afterClick()
		}
	}
	b.fire(ButtonRelease, b.OnRelease)
}

// Update advances the scale tween by dt seconds.
func (b *Button) Update(dt float32) {
	if b.tween == nil {
		return
	}
	val, finished := b.tween.Update(dt)
	b.Scale = float64(val)
	if finished {
		b.tween = nil
	}
}

func (b *Button) tweenScale(to float64) {
	b.tween = gween.New(float32(b.Scale), float32(to), buttonTweenDuration, ease.OutQuad)
}

func (b *Button) fire(t ButtonEventType, fn func(ButtonEvent)) {
	ev := ButtonEvent{Type: t, Button: b}
	if fn != nil {
		fn(ev)
	}
	b.Events.emitButton(ev)
}
