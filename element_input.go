package canvas

// --- Hit shapes ---

// HitShape is a custom hit-testing region in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area in local coordinates.
// Points must define a convex polygon in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside the polygon using a
// cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// --- Event filters ---

// EventFilter intercepts pointer events before the element's own hooks run.
// Returning true consumes the event. For a press, consuming it makes the
// filtered element the capture target.
type EventFilter interface {
	FilterPointerPress(e *Element, id int, local Vec2) bool
	FilterPointerMove(e *Element, id int, local Vec2) bool
	FilterPointerRelease(e *Element, id int, local Vec2) bool
	FilterPointerCancel(e *Element, id int, local Vec2) bool
}

// EventFilterFuncs adapts optional functions to EventFilter. Nil functions
// pass the event through. Install it by pointer so RemoveEventFilter can
// find it again.
type EventFilterFuncs struct {
	Press   func(e *Element, id int, local Vec2) bool
	Move    func(e *Element, id int, local Vec2) bool
	Release func(e *Element, id int, local Vec2) bool
	Cancel  func(e *Element, id int, local Vec2) bool
}

// FilterPointerPress calls f.Press, or passes the event through if it is nil.
func (f *EventFilterFuncs) FilterPointerPress(e *Element, id int, local Vec2) bool {
	return f.Press != nil && f.Press(e, id, local)
}

// FilterPointerMove calls f.Move, or passes the event through if it is nil.
func (f *EventFilterFuncs) FilterPointerMove(e *Element, id int, local Vec2) bool {
	return f.Move != nil && f.Move(e, id, local)
}

// FilterPointerRelease calls f.Release, or passes the event through if it is nil.
func (f *EventFilterFuncs) FilterPointerRelease(e *Element, id int, local Vec2) bool {
	return f.Release != nil && f.Release(e, id, local)
}

// FilterPointerCancel calls f.Cancel, or passes the event through if it is nil.
func (f *EventFilterFuncs) FilterPointerCancel(e *Element, id int, local Vec2) bool {
	return f.Cancel != nil && f.Cancel(e, id, local)
}

// InstallEventFilter appends a filter. Filters run in installation order.
func (e *Element) InstallEventFilter(f EventFilter) {
	if f == nil {
		return
	}
	e.filters = append(e.filters, f)
}

// RemoveEventFilter removes every installation of f. Safe to call from
// inside a filter.
func (e *Element) RemoveEventFilter(f EventFilter) {
	var kept []EventFilter
	for _, installed := range e.filters {
		if installed != f {
			kept = append(kept, installed)
		}
	}
	// A fresh slice keeps any in-progress iteration over the old one valid.
	e.filters = kept
}

// filterEvent runs the filters in order and reports whether one consumed the
// event.
func (e *Element) filterEvent(kind EventType, id int, local Vec2) bool {
	for _, f := range e.filters {
		var consumed bool
		switch kind {
		case EventPointerPress:
			consumed = f.FilterPointerPress(e, id, local)
		case EventPointerMove:
			consumed = f.FilterPointerMove(e, id, local)
		case EventPointerRelease:
			consumed = f.FilterPointerRelease(e, id, local)
		case EventPointerCancel:
			consumed = f.FilterPointerCancel(e, id, local)
		}
		if consumed {
			return true
		}
	}
	return false
}

// --- Pointer routing ---

// SendPointerPressEvent hit-tests the subtree rooted at e. pos is in e's
// parent space. Children are probed topmost first; if none accepts, e itself
// is offered the point. Returns the accepting element, or nil. Invisible
// elements, elements with a non-invertible local transform (such as a zero
// scale) and their subtrees never accept.
func (e *Element) SendPointerPressEvent(id int, pos Vec2) *Element {
	if !e.IsVisible() || !e.LocalTransform().Invertible() {
		return nil
	}
	local := e.InverseLocalTransform().Transform(pos)

	if len(e.filters) > 0 && e.filterEvent(EventPointerPress, id, local) {
		return e
	}

	for c := e.lastChild; c != nil; {
		prev := c.prev
		if hit := c.SendPointerPressEvent(id, local); hit != nil {
			return hit
		}
		c = prev
	}

	if e.acceptsPress(id, local) {
		return e
	}
	return nil
}

// acceptsPress offers a local point to the element's own press hook.
func (e *Element) acceptsPress(id int, local Vec2) bool {
	if e.OnPointerPress != nil {
		return e.OnPointerPress(e, id, local)
	}
	if e.HitShape != nil {
		return e.HitShape.Contains(local.X, local.Y)
	}
	return false
}

// SendPointerMoveEvent delivers a move for a captured pointer. pos is in
// canvas space and is mapped through the cached inverse world transform.
// Captured events are dropped while the world transform is not invertible.
func (e *Element) SendPointerMoveEvent(id int, pos Vec2) {
	local, ok := e.worldToLocalChecked(pos)
	if !ok {
		return
	}
	if len(e.filters) > 0 && e.filterEvent(EventPointerMove, id, local) {
		return
	}
	if e.OnPointerMove != nil {
		e.OnPointerMove(e, id, local)
	}
}

// SendPointerReleaseEvent delivers a release for a captured pointer.
func (e *Element) SendPointerReleaseEvent(id int, pos Vec2) {
	local, ok := e.worldToLocalChecked(pos)
	if !ok {
		return
	}
	if len(e.filters) > 0 && e.filterEvent(EventPointerRelease, id, local) {
		return
	}
	if e.OnPointerRelease != nil {
		e.OnPointerRelease(e, id, local)
	}
}

// SendPointerCancelEvent delivers a cancel for a captured pointer.
func (e *Element) SendPointerCancelEvent(id int, pos Vec2) {
	local, ok := e.worldToLocalChecked(pos)
	if !ok {
		return
	}
	if len(e.filters) > 0 && e.filterEvent(EventPointerCancel, id, local) {
		return
	}
	if e.OnPointerCancel != nil {
		e.OnPointerCancel(e, id, local)
	}
}

// worldToLocalChecked maps a canvas-space point into local space. ok is false
// when the world transform is degenerate and the point has no local image.
func (e *Element) worldToLocalChecked(pos Vec2) (Vec2, bool) {
	if !e.WorldTransform().Invertible() {
		return Vec2{}, false
	}
	return e.InverseWorldTransform().Transform(pos), true
}
