package canvas

import "testing"

func TestMatrixStackStartsAtIdentity(t *testing.T) {
	s := NewMatrixStack(nil)
	assertTransform(t, "top", s.Top(), Identity())
	if s.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", s.Depth())
	}
}

func TestMatrixStackPushApplyComposes(t *testing.T) {
	s := NewMatrixStack(nil)
	s.PushApply(Translation(10, 0))
	s.PushApply(Scaling(2, 2))
	assertTransform(t, "top", s.Top(), Compose(Translation(10, 0), Scaling(2, 2)))
	if s.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", s.Depth())
	}

	s.Pop()
	assertTransform(t, "after pop", s.Top(), Translation(10, 0))
	s.Pop()
	assertTransform(t, "base", s.Top(), Identity())
}

func TestMatrixStackPushReplaceAndTranslate(t *testing.T) {
	s := NewMatrixStack(nil)
	s.PushApply(Scaling(3, 3))
	s.PushReplace(Translation(1, 1))
	assertTransform(t, "replace", s.Top(), Translation(1, 1))
	s.Pop()

	s.PushTranslate(2, 0)
	assertTransform(t, "translate", s.Top(), Compose(Scaling(3, 3), Translation(2, 0)))

	s.ReplaceTop(Identity())
	assertTransform(t, "replace top", s.Top(), Identity())
	if s.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", s.Depth())
	}
}

func TestMatrixStackPopBasePanics(t *testing.T) {
	s := NewMatrixStack(nil)
	assertPanics(t, "pop base", s.Pop)
}

func TestMatrixStackReset(t *testing.T) {
	s := NewMatrixStack(nil)
	s.ReplaceTop(Translation(5, 5))
	s.PushApply(Scaling(2, 2))
	s.Reset()
	if s.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", s.Depth())
	}
	assertTransform(t, "base", s.Top(), Identity())
}

func TestMatrixStackListener(t *testing.T) {
	calls := 0
	s := NewMatrixStack(func() { calls++ })
	s.PushApply(Identity())
	s.PushReplace(Identity())
	s.PushTranslate(1, 1)
	s.ReplaceTop(Identity())
	s.Pop()
	s.Reset()
	if calls != 6 {
		t.Errorf("listener calls = %d, want 6", calls)
	}
}
