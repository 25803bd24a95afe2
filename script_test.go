package canvas

import (
	"strings"
	"testing"
)

// stepAll runs the script to completion, draining one frame at a time, and
// returns the posted events.
func stepAll(t *testing.T, r *ScriptRunner) []PointerEvent {
	t.Helper()
	q := NewEventQueue()
	var out []PointerEvent
	for frame := 0; !r.Done(); frame++ {
		if frame > 1000 {
			t.Fatal("script did not finish")
		}
		r.Step(q)
		q.mu.Lock()
		out = append(out, q.pending...)
		q.pending = q.pending[:0]
		q.mu.Unlock()
	}
	return out
}

func TestLoadScript(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "press", "pointer": 2, "x": 105, "y": 3},
		{"action": "move", "pointer": 2, "x": 110, "y": 8},
		{"action": "release", "pointer": 2, "x": 110, "y": 8}
	]}`))
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	events := stepAll(t, r)
	want := []PointerEvent{
		{Type: EventPointerPress, PointerID: 2, X: 105, Y: 3},
		{Type: EventPointerMove, PointerID: 2, X: 110, Y: 8},
		{Type: EventPointerRelease, PointerID: 2, X: 110, Y: 8},
	}
	if len(events) != len(want) {
		t.Fatalf("events = %+v, want %+v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event[%d] = %+v, want %+v", i, events[i], want[i])
		}
	}
}

func TestLoadScriptInvalid(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{"malformed", `{"steps": [`, "parse input script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "hover"}]}`, `unknown action "hover"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestScriptOneEventPerFrame(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [{"action": "tap", "x": 5, "y": 5}]}`))
	if err != nil {
		t.Fatal(err)
	}
	q := NewEventQueue()
	r.Step(q)
	if q.Len() != 1 {
		t.Fatalf("frame 1 Len = %d, want 1", q.Len())
	}
	r.Step(q)
	if q.Len() != 2 || !r.Done() {
		t.Errorf("frame 2 Len = %d, Done = %v", q.Len(), r.Done())
	}
}

func TestScriptDrag(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 0, "fromY": 0, "toX": 30, "toY": 60, "frames": 5}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	events := stepAll(t, r)
	if len(events) != 5 {
		t.Fatalf("events = %d, want 5", len(events))
	}
	if events[0].Type != EventPointerPress || events[4].Type != EventPointerRelease {
		t.Errorf("drag should start with press and end with release: %+v", events)
	}
	for i, want := range []Vec2{{10, 20}, {20, 40}, {30, 60}} {
		ev := events[i+1]
		if ev.Type != EventPointerMove {
			t.Errorf("event[%d].Type = %v, want move", i+1, ev.Type)
		}
		assertVec(t, "move", Vec2{ev.X, ev.Y}, want)
	}
}

func TestScriptDragMinFrames(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 0, "fromY": 0, "toX": 10, "toY": 0, "frames": 0}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	events := stepAll(t, r)
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2 (press and release)", len(events))
	}
}

func TestScriptWait(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "press", "x": 1, "y": 1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	q := NewEventQueue()
	frames := 0
	for q.Len() == 0 {
		r.Step(q)
		frames++
		if frames > 10 {
			t.Fatal("press never posted")
		}
	}
	if frames != 4 {
		t.Errorf("press posted on frame %d, want 4", frames)
	}
}

func TestScriptDrivesCanvas(t *testing.T) {
	var log pointerLog
	c, _, _ := newTwoBoxCanvas(&log)
	r, err := LoadScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 105, "fromY": 3, "toX": 5, "toY": 103, "frames": 3}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	q := NewEventQueue()
	for !r.Done() {
		r.Step(q)
		q.Drain(c)
	}
	assertCalls(t, log.events, []string{"A press", "A move", "A release"})
	assertVec(t, "release local", log.locals[2], Vec2{-95, 103})
}
