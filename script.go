package canvas

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action  string  `json:"action"`
	Pointer int     `json:"pointer,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure of an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a scripted pointer sequence one event per frame, for
// automated interaction tests and demos. Call Step once per frame before
// draining the EventQueue.
//
// Script format:
//
//	{"steps": [
//		{"action": "press", "pointer": 0, "x": 105, "y": 3},
//		{"action": "move", "x": 110, "y": 8},
//		{"action": "release", "x": 110, "y": 8},
//		{"action": "tap", "x": 20, "y": 20},
//		{"action": "drag", "fromX": 0, "fromY": 0, "toX": 50, "toY": 0, "frames": 5},
//		{"action": "wait", "frames": 10}
//	]}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	pending   []PointerEvent
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "move", "release", "cancel", "tap", "drag", "wait":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether every step has been executed and posted.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame, posting at most one event to q.
func (r *ScriptRunner) Step(q *EventQueue) {
	if r.done {
		return
	}
	if len(r.pending) == 0 {
		if r.waitCount > 0 {
			r.waitCount--
			return
		}
		if r.cursor >= len(r.steps) {
			r.done = true
			return
		}
		r.expand(r.steps[r.cursor])
		r.cursor++
	}

	if len(r.pending) > 0 {
		q.Post(r.pending[0])
		copy(r.pending, r.pending[1:])
		r.pending = r.pending[:len(r.pending)-1]
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(r.pending) == 0 {
		r.done = true
	}
}

// expand turns a step into its queued events.
func (r *ScriptRunner) expand(st scriptStep) {
	id := st.Pointer
	switch st.Action {
	case "press":
		r.push(EventPointerPress, id, st.X, st.Y)
	case "move":
		r.push(EventPointerMove, id, st.X, st.Y)
	case "release":
		r.push(EventPointerRelease, id, st.X, st.Y)
	case "cancel":
		r.push(EventPointerCancel, id, st.X, st.Y)
	case "tap":
		r.push(EventPointerPress, id, st.X, st.Y)
		r.push(EventPointerRelease, id, st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		r.push(EventPointerPress, id, st.FromX, st.FromY)
		// frames-2 moves, the last one landing on (toX, toY).
		moves := frames - 2
		for i := 1; i <= moves; i++ {
			t := float64(i) / float64(moves)
			r.push(EventPointerMove, id, st.FromX+(st.ToX-st.FromX)*t, st.FromY+(st.ToY-st.FromY)*t)
		}
		r.push(EventPointerRelease, id, st.ToX, st.ToY)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}

func (r *ScriptRunner) push(kind EventType, id int, x, y float64) {
	r.pending = append(r.pending, PointerEvent{Type: kind, PointerID: id, X: x, Y: y})
}
