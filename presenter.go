package menunav

// Presenter receives the visual side effects of navigation.
type Presenter interface {
	// Highlight shows that e has gained focus.
	Highlight(e Element)
	// Unhighlight shows that e has lost focus.
	Unhighlight(e Element)
	// PositionEvidence moves and resizes the evidence indicator to b and
	// makes it visible.
	PositionEvidence(b Bounds)
	// HideEvidence hides the evidence indicator.
	HideEvidence()
	// SimulatePress activates e as if it had been clicked.
	SimulatePress(e Element)
}

// NopPresenter ignores every call.
type NopPresenter struct{}

func (NopPresenter) Highlight(Element)       {}
func (NopPresenter) Unhighlight(Element)     {}
func (NopPresenter) PositionEvidence(Bounds) {}
func (NopPresenter) HideEvidence()           {}
func (NopPresenter) SimulatePress(Element)   {}

// ElementPresenter forwards highlight and press calls to the element's own
// Rollable and Pressable capabilities, and evidence calls to Evidence when
// set. Elements without the capability are left alone.
type ElementPresenter struct {
	Evidence *Evidence
}

// NewElementPresenter creates a presenter driving the given evidence
// indicator, which may be nil.
func NewElementPresenter(evidence *Evidence) *ElementPresenter {
	return &ElementPresenter{Evidence: evidence}
}

// Highlight calls SimulateRollOver on rollable elements.
func (p *ElementPresenter) Highlight(e Element) {
	if r, ok := e.(Rollable); ok {
		r.SimulateRollOver()
	}
}

// Unhighlight calls SimulateRollOut on rollable elements.
func (p *ElementPresenter) Unhighlight(e Element) {
	if r, ok := e.(Rollable); ok {
		r.SimulateRollOut()
	}
}

// PositionEvidence shows the evidence indicator at b.
func (p *ElementPresenter) PositionEvidence(b Bounds) {
	if p.Evidence != nil {
		p.Evidence.Show(b)
	}
}

// HideEvidence hides the evidence indicator.
func (p *ElementPresenter) HideEvidence() {
	if p.Evidence != nil {
		p.Evidence.Hide()
	}
}

// SimulatePress calls SimulatePress on pressable elements.
func (p *ElementPresenter) SimulatePress(e Element) {
	if pr, ok := e.(Pressable); ok {
		pr.SimulatePress()
	}
}
