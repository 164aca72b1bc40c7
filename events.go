package menunav

import "slices"

// NavEventType identifies a kind of navigation event.
type NavEventType uint8

const (
	NavFocusChanged     NavEventType = iota // focus moved to a new element
	NavFocusCleared                         // focus was removed
	NavPressed                              // Enter was applied to the focused element
	NavValueAdjusted                        // Left/Right changed a focused slider
	NavGroupActivated                       // a content group was added or rebuilt
	NavGroupDeactivated                     // a content group was removed
	numNavEventTypes
)

var navEventNames = [numNavEventTypes]string{
	"FocusChanged", "FocusCleared", "Pressed", "ValueAdjusted", "GroupActivated", "GroupDeactivated",
}

// String returns the event type name.
func (t NavEventType) String() string {
	if t < numNavEventTypes {
		return navEventNames[t]
	}
	return "Unknown"
}

// NavEvent carries navigation event data. Fields not relevant to Type are
// zero.
type NavEvent struct {
	Type      NavEventType
	Panel     Panel
	Element   Element
	Previous  Element // FocusChanged, FocusCleared
	Row       int
	Column    int
	Moved     bool      // FocusChanged was caused by a directional move
	Direction Direction // valid when Moved, and for ValueAdjusted
	Delta     float64   // ValueAdjusted: signed fraction applied
}

// ButtonEventType identifies a kind of button event.
type ButtonEventType uint8

const (
	ButtonSelect   ButtonEventType = iota // a toggle button became selected
	ButtonDeselect                        // a toggle button became deselected
	ButtonToggle                          // a toggle button changed state
	ButtonPress                           // the button was pressed
	ButtonRelease                         // the button was released after a press
	ButtonClick                           // press and release completed on the button
	ButtonRollOver                        // the button gained rollover
	ButtonRollOut                         // the button lost rollover
	numButtonEventTypes
)

var buttonEventNames = [numButtonEventTypes]string{
	"Select", "Deselect", "Toggle", "Press", "Release", "Click", "RollOver", "RollOut",
}

// String returns the event type name.
func (t ButtonEventType) String() string {
	if t < numButtonEventTypes {
		return buttonEventNames[t]
	}
	return "Unknown"
}

// ButtonEvent carries the button that fired and the event type.
type ButtonEvent struct {
	Type   ButtonEventType
	Button *Button
}

// EventSink receives every navigation event. It is the hook used by the
// ECS adapter in menunav/ecs.
type EventSink interface {
	EmitEvent(event NavEvent)
}

type navHandler struct {
	id uint32
	fn func(NavEvent)
}

type buttonHandler struct {
	id uint32
	fn func(ButtonEvent)
}

// Events dispatches navigation and button events to registered callbacks.
// One Events value can be shared by a Navigator and any number of buttons.
type Events struct {
	nav    [numNavEventTypes][]navHandler
	button [numButtonEventTypes][]buttonHandler
	nextID uint32
}

// NewEvents creates an empty dispatcher.
func NewEvents() *Events {
	return &Events{}
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id     uint32
	ev     *Events
	button bool
	kind   uint8
}

// Remove unregisters the callback so it no longer fires. Removing twice is
// harmless.
func (h CallbackHandle) Remove() {
	if h.ev == nil {
		return
	}
	if h.button {
		s := h.ev.button[h.kind]
		for i := range s {
			if s[i].id == h.id {
				copy(s[i:], s[i+1:])
				s[len(s)-1] = buttonHandler{}
				h.ev.button[h.kind] = s[:len(s)-1]
				return
			}
		}
		return
	}
	s := h.ev.nav[h.kind]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = navHandler{}
			h.ev.nav[h.kind] = s[:len(s)-1]
			return
		}
	}
}

// OnNav registers fn for navigation events of type t.
func (e *Events) OnNav(t NavEventType, fn func(NavEvent)) CallbackHandle {
	if t >= numNavEventTypes || fn == nil {
		return CallbackHandle{}
	}
	e.nextID++
	e.nav[t] = append(e.nav[t], navHandler{id: e.nextID, fn: fn})
	return CallbackHandle{id: e.nextID, ev: e, kind: uint8(t)}
}

// OnButton registers fn for button events of type t.
func (e *Events) OnButton(t ButtonEventType, fn func(ButtonEvent)) CallbackHandle {
	if t >= numButtonEventTypes || fn == nil {
		return CallbackHandle{}
	}
	e.nextID++
	e.button[t] = append(e.button[t], buttonHandler{id: e.nextID, fn: fn})
	return CallbackHandle{id: e.nextID, ev: e, button: true, kind: uint8(t)}
}

func (e *Events) emitNav(ev NavEvent) {
	if e == nil || ev.Type >= numNavEventTypes {
		return
	}
	// Handlers may remove themselves or others while the event is sent.
	for _, h := range slices.Clone(e.nav[ev.Type]) {
		h.fn(ev)
	}
}

func (e *Events) emitButton(ev ButtonEvent) {
	if e == nil || ev.Type >= numButtonEventTypes {
		return
	}
	for _, h := range slices.Clone(e.button[ev.Type]) {
		h.fn(ev)
	}
}
