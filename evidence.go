package menunav

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	evidencePulseDuration = 0.4 // seconds per half cycle
	evidencePulseMinAlpha = 0.5
)

// Evidence is the highlight rectangle placed around the focused element.
// When pulsing is enabled its alpha swings between 1 and 0.5 forever
// (InOutQuad, yoyo); the pulse restarts each time the indicator is moved
// and pauses while hidden.
//
// There is no global animation manager: call Update(dt) once per frame.
type Evidence struct {
	// Color is the outline color before the pulse alpha is applied.
	Color Color
	// Thickness is the outline stroke width in pixels.
	Thickness float64

	bounds  Bounds
	visible bool
	alpha   float64
	pulsing bool
	fading  bool // true while alpha is heading towards evidencePulseMinAlpha
	tween   *gween.Tween
}

// NewEvidence creates a hidden evidence indicator. pulse enables the alpha
// pulse animation.
func NewEvidence(pulse bool) *Evidence {
	return &Evidence{
		Color:     ColorWhite,
		Thickness: 2,
		alpha:     1,
		pulsing:   pulse,
	}
}

// NewEvidenceFrom creates a hidden evidence indicator that pulses when
// s.TweenEvidence is set.
func NewEvidenceFrom(s Settings) *Evidence {
	return NewEvidence(s.TweenEvidence)
}

// Show moves the indicator to b, makes it visible and restarts the pulse.
func (e *Evidence) Show(b Bounds) {
	e.bounds = b
	e.visible = true
	e.alpha = 1
	if e.pulsing {
		e.fading = true
		e.tween = gween.New(1, evidencePulseMinAlpha, evidencePulseDuration, ease.InOutQuad)
	}
}

// Hide hides the indicator and pauses the pulse.
func (e *Evidence) Hide() {
	e.visible = false
}

// Visible reports whether the indicator is shown.
func (e *Evidence) Visible() bool {
	return e.visible
}

// Bounds returns the indicator's current box.
func (e *Evidence) Bounds() Bounds {
	return e.bounds
}

// Alpha returns the current pulse alpha in [0.5, 1].
func (e *Evidence) Alpha() float64 {
	return e.alpha
}

// Update advances the pulse by dt seconds. It does nothing while hidden or
// when pulsing is disabled.
func (e *Evidence) Update(dt float32) {
	if !e.visible || e.tween == nil {
		return
	}
	val, finished := e.tween.Update(dt)
	e.alpha = float64(val)
	if !finished {
		return
	}
	if e.fading {
		e.tween = gween.New(evidencePulseMinAlpha, 1, evidencePulseDuration, ease.InOutQuad)
	} else {
		e.tween = gween.New(1, evidencePulseMinAlpha, evidencePulseDuration, ease.InOutQuad)
	}
	e.fading = !e.fading
}

// Draw strokes the indicator onto screen. Bounds are Y-up, so they are
// flipped against the screen height.
func (e *Evidence) Draw(screen *ebiten.Image) {
	if !e.visible {
		return
	}
	x, y, w, h := ScreenRect(e.bounds, float64(screen.Bounds().Dy()))
	c := e.Color
	c.A *= e.alpha
	vector.StrokeRect(screen, x, y, w, h, float32(e.Thickness), c.toRGBA(), true)
}

// ScreenRect converts Y-up bounds into a Y-down screen rectangle for a
// screen of the given height.
func ScreenRect(b Bounds, screenH float64) (x, y, w, h float32) {
	size := b.Size()
	return float32(b.Min.X), float32(screenH - b.Max.Y), float32(size.X), float32(size.Y)
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
