package menunav

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a navigation script.
type scriptStep struct {
	Action string `json:"action"`
	ID     string `json:"id,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// script is the top-level JSON structure of a navigation script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptCommands = map[string]Command{
	"up":    CommandUp,
	"down":  CommandDown,
	"left":  CommandLeft,
	"right": CommandRight,
	"enter": CommandEnter,
}

// ScriptRunner replays a navigation script one frame at a time, for
// automated menu tests. Direction and enter steps go through the KeyInput
// inject queue; focus, unfocus and refresh act on the navigator directly.
//
// Example script:
//
//	{"steps": [
//		{"action": "focus", "id": "play"},
//		{"action": "down"},
//		{"action": "wait", "frames": 2},
//		{"action": "enter"}
//	]}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON navigation script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("menunav: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("menunav: parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "focus":
			if st.ID == "" {
				return nil, fmt.Errorf("menunav: parse script: step %d: focus needs an id", i)
			}
		case "wait", "refresh", "unfocus":
		default:
			if _, ok := scriptCommands[st.Action]; !ok {
				return nil, fmt.Errorf("menunav: parse script: step %d: unknown action %q", i, st.Action)
			}
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether every step has run and all injected commands have
// been delivered.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame. Call it before input.Update(nav)
// in the game's Update.
func (r *ScriptRunner) Step(input *KeyInput, nav *Navigator) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if input.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "focus":
		nav.FocusByID(st.ID)
	case "unfocus":
		nav.Unfocus()
	case "refresh":
		nav.Refresh()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		input.InjectCommand(scriptCommands[st.Action])
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && input.Pending() == 0 {
		r.done = true
	}
}
