package canvas

// elementFlags is the per-element bit set.
type elementFlags uint32

const (
	flagLocalDirty elementFlags = 1 << iota
	flagInverseLocalDirty
	flagWorldDirty
	flagInverseWorldDirty
	flagInSizeChanged
	flagVisible
	flagDrawDebugBorder
	flagDisposed
)

const (
	flagsLocalDirty = flagLocalDirty | flagInverseLocalDirty
	flagsWorldDirty = flagWorldDirty | flagInverseWorldDirty
)

// DebugBorderColor is the stroke color used for elements with
// SetDrawDebugBorder(true).
var DebugBorderColor = Color{R: 1, G: 0, B: 1, A: 1}

// transformCache holds the lazily computed transforms of an Element. Which
// entries are valid is tracked by the element's dirty flags.
type transformCache struct {
	local        AffineTransform
	inverseLocal AffineTransform
	world        AffineTransform
	inverseWorld AffineTransform

	// recompute counters, one per cached transform
	localCount, inverseLocalCount, worldCount, inverseWorldCount int
}

// --- ID counter ---

// elementIDCounter is a plain counter (no atomic; canvas is single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is a node of the canvas tree. It owns its children; the parent
// pointer is a non-owning back-reference that is cleared on detach.
//
// Behavior is customized through the On* hook fields, which are nil by
// default. A nil hook means the default behavior described on each field.
type Element struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy. Children form an intrusive doubly linked list; a child's
	// prev/next links double as its position token for O(1) removal.
	parent      *Element
	firstChild  *Element
	lastChild   *Element
	prev, next  *Element
	numChildren int

	// Local state
	position Vec2
	rotation float64
	scale    Vec2
	size     Vec2
	color    Color
	flags    elementFlags

	cache   transformCache
	filters []EventFilter

	// HitShape, when set, is the default press acceptance region in local
	// coordinates. Ignored if OnPointerPress is set.
	HitShape HitShape

	// Metadata
	EntityID uint32
	UserData any

	// OnUpdate replaces the default update, which updates all children in
	// order. Call UpdateChildren to keep the default recursion.
	OnUpdate func(e *Element, dt float64)
	// OnDraw replaces the default draw, which draws all children in order.
	// It runs with the element's local transform pushed.
	OnDraw func(e *Element, r Renderer)
	// OnSizeChanged runs after SetSize changes the size. Calling SetSize on
	// the same element from inside the hook does not re-enter it.
	OnSizeChanged func(e *Element)

	// Pointer hooks receive positions in the element's local space.
	OnPointerPress   func(e *Element, id int, local Vec2) bool
	OnPointerMove    func(e *Element, id int, local Vec2)
	OnPointerRelease func(e *Element, id int, local Vec2)
	OnPointerCancel  func(e *Element, id int, local Vec2)
}

// NewElement creates a detached, visible element at the origin with unit
// scale, zero size and white color.
func NewElement(name string) *Element {
	e := &Element{
		ID:    nextElementID(),
		Name:  name,
		scale: Vec2{1, 1},
		color: ColorWhite,
		flags: flagsLocalDirty | flagsWorldDirty | flagVisible,
	}
	e.cache.local = Identity()
	return e
}

// NewRect creates an element of the given size that fills its bounds with
// color and then draws its children on top.
func NewRect(name string, w, h float64, c Color) *Element {
	e := NewElement(name)
	e.size = Vec2{w, h}
	e.color = c
	e.OnDraw = drawRect
	return e
}

func drawRect(e *Element, r Renderer) {
	r.FillRect(Rect{Width: e.size.X, Height: e.size.Y}, e.color)
	e.DrawChildren(r)
}

// --- Attributes ---

// Parent returns the element's parent, or nil for a root or detached element.
func (e *Element) Parent() *Element {
	return e.parent
}

// Position returns the element's position in its parent's space.
func (e *Element) Position() Vec2 {
	return e.position
}

// SetPosition moves the element. No-op if the position is unchanged.
func (e *Element) SetPosition(x, y float64) {
	p := Vec2{x, y}
	if e.position == p {
		return
	}
	e.position = p
	e.invalidateLocalTransform()
}

// Rotation returns the rotation in radians.
func (e *Element) Rotation() float64 {
	return e.rotation
}

// SetRotation sets the rotation in radians. No-op if unchanged.
func (e *Element) SetRotation(r float64) {
	if e.rotation == r {
		return
	}
	e.rotation = r
	e.invalidateLocalTransform()
}

// Scale returns the scale factors.
func (e *Element) Scale() Vec2 {
	return e.scale
}

// SetScale sets non-uniform scale factors. No-op if unchanged.
func (e *Element) SetScale(sx, sy float64) {
	s := Vec2{sx, sy}
	if e.scale == s {
		return
	}
	e.scale = s
	e.invalidateLocalTransform()
}

// Size returns the element's size in local units.
func (e *Element) Size() Vec2 {
	return e.size
}

// SetSize sets the size and fires OnSizeChanged if it changed. Size does not
// affect transforms.
func (e *Element) SetSize(w, h float64) {
	s := Vec2{w, h}
	if e.size == s {
		return
	}
	e.size = s
	if e.flags&flagInSizeChanged == 0 {
		e.notifySizeChanged()
	}
}

func (e *Element) notifySizeChanged() {
	e.flags |= flagInSizeChanged
	defer func() { e.flags &^= flagInSizeChanged }()
	if e.OnSizeChanged != nil {
		e.OnSizeChanged(e)
	}
}

// Color returns the element's color.
func (e *Element) Color() Color {
	return e.color
}

// SetColor sets the element's color.
func (e *Element) SetColor(c Color) {
	e.color = c
}

// IsVisible reports whether the element is drawn and hit-tested.
func (e *Element) IsVisible() bool {
	return e.flags&flagVisible != 0
}

// SetVisible shows or hides the element and its subtree.
func (e *Element) SetVisible(visible bool) {
	if visible {
		e.flags |= flagVisible
	} else {
		e.flags &^= flagVisible
	}
}

// IsDrawDebugBorder reports whether a debug border is stroked after drawing.
func (e *Element) IsDrawDebugBorder() bool {
	return e.flags&flagDrawDebugBorder != 0
}

// SetDrawDebugBorder enables or disables the debug border.
func (e *Element) SetDrawDebugBorder(enabled bool) {
	if enabled {
		e.flags |= flagDrawDebugBorder
	} else {
		e.flags &^= flagDrawDebugBorder
	}
}

// LocalPointInside reports whether a local-space point lies within
// [0, size) on both axes.
func (e *Element) LocalPointInside(p Vec2) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < e.size.X && p.Y < e.size.Y
}

// --- Cached transforms ---

// LocalTransform returns Translate(position) * Rotate(rotation) * Scale(scale).
func (e *Element) LocalTransform() AffineTransform {
	if e.flags&flagLocalDirty != 0 {
		e.recomputeLocalTransform()
	}
	return e.cache.local
}

// InverseLocalTransform maps the parent's space into this element's space.
func (e *Element) InverseLocalTransform() AffineTransform {
	if e.flags&flagInverseLocalDirty != 0 {
		e.recomputeInverseLocalTransform()
	}
	return e.cache.inverseLocal
}

// WorldTransform maps this element's space into canvas space. For a root it
// equals LocalTransform.
func (e *Element) WorldTransform() AffineTransform {
	if e.flags&flagWorldDirty != 0 {
		e.recomputeWorldTransform()
	}
	return e.cache.world
}

// InverseWorldTransform maps canvas space into this element's space.
func (e *Element) InverseWorldTransform() AffineTransform {
	if e.flags&flagInverseWorldDirty != 0 {
		e.recomputeInverseWorldTransform()
	}
	return e.cache.inverseWorld
}

func (e *Element) recomputeLocalTransform() {
	e.cache.local = TranslationRotationScale(e.position, e.rotation, e.scale)
	e.cache.localCount++
	e.flags &^= flagLocalDirty
}

func (e *Element) recomputeInverseLocalTransform() {
	e.cache.inverseLocal = e.LocalTransform().Inverse()
	e.cache.inverseLocalCount++
	e.flags &^= flagInverseLocalDirty
}

func (e *Element) recomputeWorldTransform() {
	if e.parent == nil {
		e.cache.world = e.LocalTransform()
	} else {
		e.cache.world = Compose(e.parent.WorldTransform(), e.LocalTransform())
	}
	e.cache.worldCount++
	e.flags &^= flagWorldDirty
}

func (e *Element) recomputeInverseWorldTransform() {
	e.cache.inverseWorld = e.WorldTransform().Inverse()
	e.cache.inverseWorldCount++
	e.flags &^= flagInverseWorldDirty
}

// WorldToLocal converts a canvas-space point to this element's local space.
func (e *Element) WorldToLocal(p Vec2) Vec2 {
	return e.InverseWorldTransform().Transform(p)
}

// LocalToWorld converts a local-space point to canvas space.
func (e *Element) LocalToWorld(p Vec2) Vec2 {
	return e.WorldTransform().Transform(p)
}

func (e *Element) invalidateLocalTransform() {
	e.flags |= flagsLocalDirty
	e.invalidateWorldTransform()
}

// invalidateWorldTransform marks e and its subtree world-dirty. A world-dirty
// element always has a fully world-dirty subtree, so the walk stops there.
func (e *Element) invalidateWorldTransform() {
	if e.flags&flagsWorldDirty == flagsWorldDirty {
		return
	}
	e.flags |= flagsWorldDirty
	for c := e.firstChild; c != nil; c = c.next {
		c.invalidateWorldTransform()
	}
}

// --- Tree manipulation ---

// AddChild appends child as the topmost child of e.
// Panics if child is nil or is an ancestor of e (cycle). A child that still
// has a parent is a contract violation: it panics in debug mode and is
// detached from its old parent otherwise.
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("canvas: cannot add nil child")
	}
	if debugMode {
		debugCheckDisposed(e, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, e) {
		panic("canvas: adding child would create a cycle")
	}
	if child.parent != nil {
		contractViolation("AddChild: element %q already has parent %q", child.Name, child.parent.Name)
		child.RemoveFromParent()
	}
	e.linkChild(child)
	child.invalidateWorldTransform()
	if debugMode {
		debugCheckTreeDepth(child)
		debugCheckChildCount(e)
	}
}

// RemoveChild detaches child from e.
// Panics if child's parent is not e.
func (e *Element) RemoveChild(child *Element) {
	if child == nil || child.parent != e {
		panic("canvas: child's parent is not this element")
	}
	child.RemoveFromParent()
}

// RemoveFromParent detaches e from its parent in O(1) and invalidates its
// world transform. No-op if e has no parent.
func (e *Element) RemoveFromParent() {
	if e.parent == nil {
		return
	}
	e.parent.unlinkChild(e)
	e.invalidateWorldTransform()
}

// Children returns a newly allocated slice of the children in draw order.
func (e *Element) Children() []*Element {
	out := make([]*Element, 0, e.numChildren)
	for c := e.firstChild; c != nil; c = c.next {
		out = append(out, c)
	}
	return out
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return e.numChildren
}

// ChildAt returns the child at index in draw order. Panics if out of range.
func (e *Element) ChildAt(index int) *Element {
	if index < 0 || index >= e.numChildren {
		panic("canvas: child index out of range")
	}
	c := e.firstChild
	for ; index > 0; index-- {
		c = c.next
	}
	return c
}

// FirstChild returns the bottommost child, or nil.
func (e *Element) FirstChild() *Element { return e.firstChild }

// LastChild returns the topmost child, or nil.
func (e *Element) LastChild() *Element { return e.lastChild }

// NextSibling returns the sibling drawn after e, or nil.
func (e *Element) NextSibling() *Element { return e.next }

// PrevSibling returns the sibling drawn before e, or nil.
func (e *Element) PrevSibling() *Element { return e.prev }

// linkChild appends child to e's list and sets the back-reference.
func (e *Element) linkChild(child *Element) {
	child.parent = e
	child.prev = e.lastChild
	child.next = nil
	if e.lastChild != nil {
		e.lastChild.next = child
	} else {
		e.firstChild = child
	}
	e.lastChild = child
	e.numChildren++
}

// unlinkChild removes child from e's list and clears the back-reference.
func (e *Element) unlinkChild(child *Element) {
	if child.prev != nil {
		child.prev.next = child.next
	} else {
		e.firstChild = child.next
	}
	if child.next != nil {
		child.next.prev = child.prev
	} else {
		e.lastChild = child.prev
	}
	child.prev = nil
	child.next = nil
	child.parent = nil
	e.numChildren--
}

// isAncestor reports whether candidate is e or one of e's ancestors.
func isAncestor(candidate, e *Element) bool {
	for p := e; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// --- Disposal ---

// Dispose detaches e from its parent, detaches every child (each child's
// parent becomes nil) and marks e as disposed. Children are not disposed.
// A disposed element no longer receives captured pointer events.
func (e *Element) Dispose() {
	if e.IsDisposed() {
		return
	}
	e.RemoveFromParent()
	for c := e.firstChild; c != nil; {
		next := c.next
		c.parent = nil
		c.prev = nil
		c.next = nil
		c.invalidateWorldTransform()
		c = next
	}
	e.firstChild = nil
	e.lastChild = nil
	e.numChildren = 0
	e.filters = nil
	e.HitShape = nil
	e.UserData = nil
	e.OnUpdate = nil
	e.OnDraw = nil
	e.OnSizeChanged = nil
	e.OnPointerPress = nil
	e.OnPointerMove = nil
	e.OnPointerRelease = nil
	e.OnPointerCancel = nil
	e.flags |= flagDisposed
}

// IsDisposed reports whether Dispose has been called.
func (e *Element) IsDisposed() bool {
	return e.flags&flagDisposed != 0
}

// --- Update & draw ---

// Update advances the element by dt seconds.
func (e *Element) Update(dt float64) {
	if e.OnUpdate != nil {
		e.OnUpdate(e, dt)
		return
	}
	e.UpdateChildren(dt)
}

// UpdateChildren updates every child in order. A child may detach itself
// during its update.
func (e *Element) UpdateChildren(dt float64) {
	for c := e.firstChild; c != nil; {
		next := c.next
		c.Update(dt)
		c = next
	}
}

// DrawIfVisible draws e if it is visible, bracketed by a push of its local
// transform and a matching pop.
func (e *Element) DrawIfVisible(r Renderer) {
	if !e.IsVisible() {
		return
	}
	stack := r.Transforms()
	stack.PushApply(e.LocalTransform())
	defer stack.Pop()

	if e.OnDraw != nil {
		e.OnDraw(e, r)
	} else {
		e.DrawChildren(r)
	}

	if e.flags&flagDrawDebugBorder != 0 {
		r.StrokeRect(Rect{Width: e.size.X, Height: e.size.Y}, DebugBorderColor)
	}
}

// DrawChildren draws every child in order, so later children paint over
// earlier ones.
func (e *Element) DrawChildren(r Renderer) {
	for c := e.firstChild; c != nil; {
		next := c.next
		c.DrawIfVisible(r)
		c = next
	}
}
