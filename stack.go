package canvas

// TransformStack is the renderer-owned stack that brackets each element's
// draw call. PushApply pushes the composition of the current top with t.
type TransformStack interface {
	PushApply(t AffineTransform)
	Pop()
}

// MatrixStack is the default TransformStack. It always holds at least one
// entry (the base), which starts as the identity.
type MatrixStack struct {
	matrices []AffineTransform
	listener func()
}

// NewMatrixStack creates a stack holding only the identity. listener, if
// non-nil, runs after every change to the top entry.
func NewMatrixStack(listener func()) *MatrixStack {
	s := &MatrixStack{
		matrices: make([]AffineTransform, 1, 16),
		listener: listener,
	}
	s.matrices[0] = Identity()
	return s
}

// Reset drops every entry except the base and resets the base to identity.
func (s *MatrixStack) Reset() {
	s.matrices = s.matrices[:1]
	s.matrices[0] = Identity()
	s.changed()
}

// Top returns the current transform.
func (s *MatrixStack) Top() AffineTransform {
	return s.matrices[len(s.matrices)-1]
}

// Depth returns the number of entries pushed on top of the base.
func (s *MatrixStack) Depth() int {
	return len(s.matrices) - 1
}

// ReplaceTop overwrites the current top entry.
func (s *MatrixStack) ReplaceTop(t AffineTransform) {
	s.matrices[len(s.matrices)-1] = t
	s.changed()
}

// PushReplace pushes t as-is, ignoring the current top.
func (s *MatrixStack) PushReplace(t AffineTransform) {
	s.matrices = append(s.matrices, t)
	s.changed()
}

// PushApply pushes Top() * t.
func (s *MatrixStack) PushApply(t AffineTransform) {
	s.matrices = append(s.matrices, Compose(s.Top(), t))
	s.changed()
}

// PushTranslate pushes Top() translated by (x, y).
func (s *MatrixStack) PushTranslate(x, y float64) {
	top := s.Top()
	top.Translate(x, y)
	s.matrices = append(s.matrices, top)
	s.changed()
}

// Pop removes the top entry. Panics if only the base remains.
func (s *MatrixStack) Pop() {
	if len(s.matrices) <= 1 {
		panic("canvas: pop on empty transform stack")
	}
	s.matrices = s.matrices[:len(s.matrices)-1]
	s.changed()
}

func (s *MatrixStack) changed() {
	if s.listener != nil {
		s.listener()
	}
}
