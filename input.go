package menunav

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Command is a navigation input.
type Command uint8

const (
	CommandUp Command = iota
	CommandDown
	CommandLeft
	CommandRight
	CommandEnter
	numCommands
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandEnter:
		return "enter"
	default:
		return "unknown"
	}
}

// Controller receives navigation commands. *Navigator implements it.
type Controller interface {
	Up()
	Down()
	Left()
	Right()
	Enter()
}

func dispatch(c Controller, cmd Command) {
	switch cmd {
	case CommandUp:
		c.Up()
	case CommandDown:
		c.Down()
	case CommandLeft:
		c.Left()
	case CommandRight:
		c.Right()
	case CommandEnter:
		c.Enter()
	}
}

// InputSource reports how long each command has been held.
type InputSource interface {
	// PressDuration returns the number of ticks cmd has been held,
	// 1 on the tick it was pressed and 0 when released.
	PressDuration(cmd Command) int
}

// Binding lists the keys and standard-layout gamepad buttons for a command.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// KeyMap binds commands to physical inputs.
type KeyMap map[Command]Binding

// DefaultKeyMap binds arrows and WASD to directions, Enter and Space to
// Enter, and the gamepad D-pad and bottom face button likewise.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		CommandUp: {
			Keys:    []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
		},
		CommandDown: {
			Keys:    []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		},
		CommandLeft: {
			Keys:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		},
		CommandRight: {
			Keys:    []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		},
		CommandEnter: {
			Keys:    []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace},
			Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
	}
}

// ebitenSource reads keyboard and gamepad state through inpututil.
type ebitenSource struct {
	keys       KeyMap
	gamepadIDs []ebiten.GamepadID
}

// NewEbitenSource returns an InputSource polling ebiten with the given
// bindings. A nil map uses DefaultKeyMap.
func NewEbitenSource(keys KeyMap) InputSource {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &ebitenSource{keys: keys}
}

func (s *ebitenSource) PressDuration(cmd Command) int {
	b, ok := s.keys[cmd]
	if !ok {
		return 0
	}
	best := 0
	for _, k := range b.Keys {
		if d := inpututil.KeyPressDuration(k); d > best {
			best = d
		}
	}
	if len(b.Buttons) == 0 {
		return best
	}
	s.gamepadIDs = ebiten.AppendGamepadIDs(s.gamepadIDs[:0])
	for _, id := range s.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, btn := range b.Buttons {
			if d := inpututil.StandardGamepadButtonPressDuration(id, btn); d > best {
				best = d
			}
		}
	}
	return best
}

// KeyInput turns per-tick input state into navigation commands. A direction
// fires when pressed and, while held, again after RepeatDelay ticks and then
// every RepeatInterval ticks. Enter never repeats.
//
// Injected commands take priority: while any are queued, one is delivered
// per Update and real input is ignored.
type KeyInput struct {
	source      InputSource
	delay       int
	interval    int
	injectQueue []Command
}

// NewKeyInput creates a KeyInput reading ebiten with DefaultKeyMap.
func NewKeyInput(s Settings) *KeyInput {
	return NewKeyInputFrom(NewEbitenSource(nil), s)
}

// NewKeyInputFrom creates a KeyInput reading the given source.
func NewKeyInputFrom(src InputSource, s Settings) *KeyInput {
	s = s.normalized()
	return &KeyInput{source: src, delay: s.RepeatDelay, interval: s.RepeatInterval}
}

// Update samples input once and delivers the resulting commands to c.
// Call it once per tick from the game's Update.
func (in *KeyInput) Update(c Controller) {
	if cmd, ok := in.popInjected(); ok {
		dispatch(c, cmd)
		return
	}
	if in.source == nil {
		return
	}
	for cmd := CommandUp; cmd < numCommands; cmd++ {
		if in.fires(cmd, in.source.PressDuration(cmd)) {
			dispatch(c, cmd)
		}
	}
}

// fires reports whether a command held for d ticks triggers this tick.
func (in *KeyInput) fires(cmd Command, d int) bool {
	if d == 1 {
		return true
	}
	if cmd == CommandEnter || d <= in.delay {
		return false
	}
	return (d-in.delay)%in.interval == 0
}
