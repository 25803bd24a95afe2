package canvas

import "weak"

// EntityStore is the interface for optional ECS integration.
// When set on a Canvas, pointer events delivered to elements with a
// non-zero EntityID are forwarded to the store.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries pointer event data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	EntityID  uint32
	PointerID int
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
}

// Canvas is the root of an element tree. It holds clear parameters and the
// pointer capture state.
//
// Capture is single: the element that accepted the most recent press
// receives every move, release and cancel, whatever the pointer id, until
// the last pressed pointer goes up. A second concurrent press on another
// element takes capture away from the first.
type Canvas struct {
	root       *Element
	clearColor Color
	clearMask  ClearMask
	store      EntityStore

	pressed  int
	captured weak.Pointer[Element]
}

// NewCanvas creates a canvas with an empty root element that clears the
// color buffer to transparent black.
func NewCanvas() *Canvas {
	return &Canvas{
		root:       NewElement("root"),
		clearColor: ColorTransparent,
		clearMask:  ClearColorBuffer,
	}
}

// RootElement returns the root element, which may be nil.
func (c *Canvas) RootElement() *Element {
	return c.root
}

// SetRootElement replaces the root element. nil leaves the canvas empty.
func (c *Canvas) SetRootElement(e *Element) {
	c.root = e
}

// ClearColor returns the color used when the color buffer is cleared.
func (c *Canvas) ClearColor() Color {
	return c.clearColor
}

// SetClearColor sets the clear color.
func (c *Canvas) SetClearColor(col Color) {
	c.clearColor = col
}

// ClearMask returns which buffers Draw clears. Zero disables clearing.
func (c *Canvas) ClearMask() ClearMask {
	return c.clearMask
}

// SetClearMask sets which buffers Draw clears.
func (c *Canvas) SetClearMask(mask ClearMask) {
	c.clearMask = mask
}

// SetEntityStore sets the optional ECS bridge.
func (c *Canvas) SetEntityStore(store EntityStore) {
	c.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, contract
// violations (re-parenting without detaching, disposed-element use, pointer
// events without a pressed pointer) panic instead of being logged, and tree
// shape warnings are logged.
func (c *Canvas) SetDebugMode(enabled bool) {
	debugMode = enabled
}

// Update advances the tree by dt seconds.
func (c *Canvas) Update(dt float64) {
	if c.root != nil {
		c.root.Update(dt)
	}
}

// Draw clears the target as configured and draws the tree.
func (c *Canvas) Draw(r Renderer) {
	if c.clearMask != 0 {
		r.Clear(c.clearMask, c.clearColor)
	}
	if c.root != nil {
		c.root.DrawIfVisible(r)
	}
}

// PressedPointers returns the number of pointers currently down.
func (c *Canvas) PressedPointers() int {
	return c.pressed
}

// Captured returns the live capture target, or nil.
func (c *Canvas) Captured() *Element {
	e := c.captured.Value()
	if e == nil || e.IsDisposed() {
		return nil
	}
	return e
}

// SendPointerPressEvent hit-tests pos (canvas space) from the root. An
// accepting element becomes the capture target.
func (c *Canvas) SendPointerPressEvent(id int, pos Vec2) {
	c.pressed++
	if c.root == nil {
		return
	}
	target := c.root.SendPointerPressEvent(id, pos)
	if target == nil {
		return
	}
	logger.Debug("canvas: pointer captured", "pointer", id, "element", target.Name)
	c.captured = weak.Make(target)
	c.emit(EventPointerPress, target, id, pos)
}

// SendPointerMoveEvent forwards a move to the capture target. A move with no
// pressed pointer is dropped.
func (c *Canvas) SendPointerMoveEvent(id int, pos Vec2) {
	if c.pressed <= 0 {
		contractViolation("SendPointerMoveEvent(%d) with no pressed pointers", id)
		return
	}
	if target := c.deliveryTarget(EventPointerMove, id); target != nil {
		target.SendPointerMoveEvent(id, pos)
		c.emit(EventPointerMove, target, id, pos)
	}
}

// SendPointerReleaseEvent forwards a release to the capture target and ends
// the gesture for one pointer.
func (c *Canvas) SendPointerReleaseEvent(id int, pos Vec2) {
	if target := c.deliveryTarget(EventPointerRelease, id); target != nil {
		target.SendPointerReleaseEvent(id, pos)
		c.emit(EventPointerRelease, target, id, pos)
	}
	c.endPointer("SendPointerReleaseEvent", id)
}

// SendPointerCancelEvent forwards a cancel to the capture target and ends
// the gesture for one pointer, exactly like a release.
func (c *Canvas) SendPointerCancelEvent(id int, pos Vec2) {
	if target := c.deliveryTarget(EventPointerCancel, id); target != nil {
		target.SendPointerCancelEvent(id, pos)
		c.emit(EventPointerCancel, target, id, pos)
	}
	c.endPointer("SendPointerCancelEvent", id)
}

// deliveryTarget returns the capture target if a captured event can be
// mapped into its local space. A collected, disposed or degenerate target
// (for example one scaled to zero) gets nothing; capture itself is kept.
func (c *Canvas) deliveryTarget(kind EventType, id int) *Element {
	target := c.Captured()
	if target == nil {
		logger.Debug("canvas: event dropped, no capture target", "event", kind, "pointer", id)
		return nil
	}
	if !target.WorldTransform().Invertible() {
		logger.Debug("canvas: event dropped, degenerate transform",
			"event", kind, "pointer", id, "element", target.Name)
		return nil
	}
	return target
}

// endPointer decrements the pressed count and drops capture once no
// pointer is down.
func (c *Canvas) endPointer(op string, id int) {
	if c.pressed <= 0 {
		contractViolation("%s(%d) with no pressed pointers", op, id)
		c.captured = weak.Pointer[Element]{}
		return
	}
	c.pressed--
	if c.pressed == 0 {
		c.captured = weak.Pointer[Element]{}
	}
}

// Dispatch routes a queued pointer event to the matching Send method.
func (c *Canvas) Dispatch(ev PointerEvent) {
	pos := Vec2{ev.X, ev.Y}
	switch ev.Type {
	case EventPointerPress:
		c.SendPointerPressEvent(ev.PointerID, pos)
	case EventPointerMove:
		c.SendPointerMoveEvent(ev.PointerID, pos)
	case EventPointerRelease:
		c.SendPointerReleaseEvent(ev.PointerID, pos)
	case EventPointerCancel:
		c.SendPointerCancelEvent(ev.PointerID, pos)
	}
}

func (c *Canvas) emit(kind EventType, e *Element, id int, pos Vec2) {
	if c.store == nil || e.EntityID == 0 {
		return
	}
	local := e.WorldToLocal(pos)
	c.store.EmitEvent(InteractionEvent{
		Type:      kind,
		EntityID:  e.EntityID,
		PointerID: id,
		GlobalX:   pos.X,
		GlobalY:   pos.Y,
		LocalX:    local.X,
		LocalY:    local.Y,
	})
}
