package canvas

import (
	"fmt"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordingRenderer is a Renderer that records every call together with the
// transform on top of its stack, without touching the GPU.
type recordingRenderer struct {
	stack *MatrixStack
	calls []string
	tops  []AffineTransform
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{stack: NewMatrixStack(nil)}
}

func (r *recordingRenderer) Transforms() TransformStack { return r.stack }

func (r *recordingRenderer) Clear(mask ClearMask, c Color) {
	r.record(fmt.Sprintf("clear %d", mask))
}

func (r *recordingRenderer) FillRect(rect Rect, c Color) {
	r.record(fmt.Sprintf("fill %vx%v", rect.Width, rect.Height))
}

func (r *recordingRenderer) StrokeRect(rect Rect, c Color) {
	r.record(fmt.Sprintf("stroke %vx%v", rect.Width, rect.Height))
}

func (r *recordingRenderer) DebugText(s string) {
	r.record("text " + s)
}

func (r *recordingRenderer) record(call string) {
	r.calls = append(r.calls, call)
	r.tops = append(r.tops, r.stack.Top())
}

func assertCalls(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("calls = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("call[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

// --- ImageRenderer ---

// A nil target panics on any draw, so these calls prove the early returns.

func TestImageRendererClearSkipsWithoutColorBit(t *testing.T) {
	r := NewImageRenderer(nil)
	r.Clear(0, Color{R: 1, A: 1})
	r.Clear(ClearDepthBuffer|ClearStencilBuffer, Color{R: 1, A: 1})
}

func TestImageRendererFillRectEarlyReturn(t *testing.T) {
	r := NewImageRenderer(nil)
	r.FillRect(Rect{Width: 0, Height: 10}, ColorWhite)
	r.FillRect(Rect{Width: 10, Height: -1}, ColorWhite)
	r.FillRect(Rect{Width: 10, Height: 10}, Color{R: 1, G: 1, B: 1, A: 0})
}

func TestImageRendererSetTargetResetsStack(t *testing.T) {
	r := NewImageRenderer(nil)
	r.Stack().PushApply(Translation(5, 5))
	screen := ebiten.NewImage(64, 64)
	r.SetTarget(screen)
	if r.Target() != screen {
		t.Error("Target should return the new image")
	}
	if r.Stack().Depth() != 0 {
		t.Errorf("Depth = %d, want 0", r.Stack().Depth())
	}
	assertTransform(t, "top", r.Stack().Top(), Identity())
	if r.Transforms() != TransformStack(r.Stack()) {
		t.Error("Transforms should expose the renderer's stack")
	}
}

func TestImageRendererDrawsCanvas(t *testing.T) {
	c := NewCanvas()
	c.SetClearColor(Color{R: 0.1, G: 0.1, B: 0.1, A: 1})
	box := NewRect("box", 20, 10, Color{R: 1, A: 1})
	box.SetPosition(8, 8)
	box.SetRotation(0.3)
	box.SetDrawDebugBorder(true)
	box.AddChild(NewFPSElement())
	c.RootElement().AddChild(box)

	r := NewImageRenderer(ebiten.NewImage(64, 64))
	c.Update(0.1)
	c.Draw(r)
	if r.Stack().Depth() != 0 {
		t.Errorf("Depth after draw = %d, want 0", r.Stack().Depth())
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	if got.R != 128 || got.G != 64 || got.B != 0 || got.A != 128 {
		t.Errorf("toRGBA = %+v, want {128 64 0 128}", got)
	}
}

func TestClamp8(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{2, 255},
	}
	for _, tt := range tests {
		if got := clamp8(tt.in); got != tt.want {
			t.Errorf("clamp8(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		typ  EventType
		want string
	}{
		{EventPointerPress, "press"},
		{EventPointerMove, "move"},
		{EventPointerRelease, "release"},
		{EventPointerCancel, "cancel"},
		{EventType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
