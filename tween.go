package canvas

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 values of an Element simultaneously and writes
// them back through the element's setters, so transform caches are
// invalidated as usual. Create one with TweenPosition, TweenScale,
// TweenRotation, TweenSize or TweenColor and call Update(dt) each frame,
// typically from an OnUpdate hook. If the target element is disposed, the
// group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	values [4]float64
	count  int
	apply  func(e *Element, v *[4]float64)
	target *Element
	Done   bool
}

func newTweenGroup(e *Element, duration float32, fn ease.TweenFunc,
	apply func(*Element, *[4]float64), pairs ...[2]float64) *TweenGroup {
	g := &TweenGroup{count: len(pairs), apply: apply, target: e}
	for i, p := range pairs {
		g.tweens[i] = gween.New(float32(p[0]), float32(p[1]), duration, fn)
		g.values[i] = p[0]
	}
	return g
}

// Update advances all tweens by dt seconds and applies the values to the
// target.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target == nil || g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.values[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(g.target, &g.values)
}

// TweenPosition animates the element's position to (toX, toY).
func TweenPosition(e *Element, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	p := e.Position()
	return newTweenGroup(e, duration, fn,
		func(e *Element, v *[4]float64) { e.SetPosition(v[0], v[1]) },
		[2]float64{p.X, toX}, [2]float64{p.Y, toY})
}

// TweenScale animates the element's scale to (toSX, toSY).
func TweenScale(e *Element, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	s := e.Scale()
	return newTweenGroup(e, duration, fn,
		func(e *Element, v *[4]float64) { e.SetScale(v[0], v[1]) },
		[2]float64{s.X, toSX}, [2]float64{s.Y, toSY})
}

// TweenRotation animates the element's rotation to the given radians.
func TweenRotation(e *Element, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(e, duration, fn,
		func(e *Element, v *[4]float64) { e.SetRotation(v[0]) },
		[2]float64{e.Rotation(), to})
}

// TweenSize animates the element's size, firing OnSizeChanged as it goes.
func TweenSize(e *Element, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	s := e.Size()
	return newTweenGroup(e, duration, fn,
		func(e *Element, v *[4]float64) { e.SetSize(v[0], v[1]) },
		[2]float64{s.X, toW}, [2]float64{s.Y, toH})
}

// TweenColor animates all four color components to the target color.
func TweenColor(e *Element, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	c := e.Color()
	return newTweenGroup(e, duration, fn,
		func(e *Element, v *[4]float64) { e.SetColor(Color{v[0], v[1], v[2], v[3]}) },
		[2]float64{c.R, to.R}, [2]float64{c.G, to.G}, [2]float64{c.B, to.B}, [2]float64{c.A, to.A})
}
