package canvas

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default element color.
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent is the default canvas clear color.
var ColorTransparent = Color{}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: clamp8(c.R * c.A),
		G: clamp8(c.G * c.A),
		B: clamp8(c.B * c.A),
		A: clamp8(c.A),
	}
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Vec2 is a 2D vector used for positions, offsets, sizes and scale factors.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// ClearMask selects which target buffers Canvas.Draw clears before drawing.
// Values can be combined with bitwise OR.
type ClearMask uint8

const (
	ClearColorBuffer   ClearMask = 1 << iota // color buffer
	ClearDepthBuffer                         // depth buffer (ignored by ImageRenderer)
	ClearStencilBuffer                       // stencil buffer (ignored by ImageRenderer)
)

// EventType identifies a kind of pointer event.
type EventType uint8

const (
	EventPointerPress   EventType = iota // pointer went down and an element accepted it
	EventPointerMove                     // captured pointer moved
	EventPointerRelease                  // captured pointer went up
	EventPointerCancel                   // captured gesture was aborted by the platform
)

// String returns the lower-case event name.
func (t EventType) String() string {
	switch t {
	case EventPointerPress:
		return "press"
	case EventPointerMove:
		return "move"
	case EventPointerRelease:
		return "release"
	case EventPointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}
