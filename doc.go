// Package canvas is a retained-mode 2D scene graph for [Ebitengine] games.
//
// A [Canvas] owns a tree of [Element] values. Each element has a position,
// rotation, scale and size, and caches its local and world transforms (and
// their inverses). Caches are recomputed lazily after a setter marks them
// dirty; invalidating an element's world transform invalidates its whole
// subtree.
//
// # Quick start
//
//	c := canvas.NewCanvas()
//	box := canvas.NewRect("box", 80, 40, canvas.Color{R: 0.3, G: 0.7, B: 1, A: 1})
//	box.SetPosition(100, 50)
//	box.OnPointerPress = func(e *canvas.Element, id int, p canvas.Vec2) bool {
//		return e.LocalPointInside(p)
//	}
//	c.RootElement().AddChild(box)
//
//	canvas.Run(c, canvas.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// For full control, drive the canvas yourself: feed pointer events to
// [Canvas.SendPointerPressEvent] and friends (or post them to an
// [EventQueue] from any goroutine and [EventQueue.Drain] it on the game
// goroutine), then call [Canvas.Update] and [Canvas.Draw] with an
// [ImageRenderer] or any other [Renderer].
//
// # Pointer capture
//
// A press is hit-tested depth-first from the root, probing the topmost child
// first. The first element that accepts becomes the capture target. Moves,
// releases and cancels skip hit-testing and go straight to the captured
// element, with positions mapped through its cached inverse world transform.
// The canvas tracks a single capture target: a second concurrent press that
// lands on another element takes capture over.
//
// # Threading
//
// Canvas and Element are not safe for concurrent use. Only [EventQueue] may
// be shared across goroutines.
//
// [Ebitengine]: https://ebitengine.org
package canvas
