package canvas

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// captureLogs routes the package logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should discard everything")
	}
}

func TestReleaseModeContractViolationLogs(t *testing.T) {
	buf := captureLogs(t)
	old := NewElement("old")
	c := NewElement("c")
	old.AddChild(c)
	NewElement("p").AddChild(c)

	out := buf.String()
	if !strings.Contains(out, "contract violation") || !strings.Contains(out, `already has parent \"old\"`) {
		t.Errorf("log = %q, want a contract violation for the re-parent", out)
	}
}

func TestDebugModeDisposedParentPanics(t *testing.T) {
	withDebugMode(t)
	p := NewElement("p")
	p.Dispose()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if !strings.Contains(r.(string), "disposed element") {
			t.Errorf("panic = %v", r)
		}
	}()
	p.AddChild(NewElement("c"))
}

func TestReleaseModeDisposedParentNoPanic(t *testing.T) {
	p := NewElement("p")
	p.Dispose()
	p.AddChild(NewElement("c")) // tolerated outside debug mode
}

func TestDebugModeTreeDepthWarning(t *testing.T) {
	withDebugMode(t)
	buf := captureLogs(t)

	e := NewElement("root")
	for i := 0; i < debugMaxTreeDepth+1; i++ {
		child := NewElement("deep")
		e.AddChild(child)
		e = child
	}
	if !strings.Contains(buf.String(), "tree depth exceeds threshold") {
		t.Error("expected a tree depth warning")
	}
}

func TestDebugModeChildCountWarning(t *testing.T) {
	withDebugMode(t)
	buf := captureLogs(t)

	p := NewElement("wide")
	for i := 0; i <= debugMaxChildCount; i++ {
		p.AddChild(NewElement("c"))
	}
	if !strings.Contains(buf.String(), "child count exceeds threshold") {
		t.Error("expected a child count warning")
	}
}

func TestCaptureIsLoggedAtDebug(t *testing.T) {
	buf := captureLogs(t)
	var log pointerLog
	c, _, _ := newTwoBoxCanvas(&log)
	c.SendPointerPressEvent(0, Vec2{105, 3})
	if !strings.Contains(buf.String(), "pointer captured") || !strings.Contains(buf.String(), "element=A") {
		t.Errorf("log = %q", buf.String())
	}
}
