package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer is the drawing collaborator handed to Element draw hooks. All
// drawing calls use the current top of Transforms().
type Renderer interface {
	Transforms() TransformStack
	Clear(mask ClearMask, c Color)
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color)
	DebugText(s string)
}

// debugBorderWidth is the stroke width of debug borders, in pixels.
const debugBorderWidth = 1

// whitePixel is a 1x1 white image scaled to draw solid rectangles. Created
// on first use so that importing the package does not touch the GPU.
var whitePixel *ebiten.Image

func getWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// ImageRenderer draws into an *ebiten.Image.
type ImageRenderer struct {
	target *ebiten.Image
	stack  *MatrixStack
	op     ebiten.DrawImageOptions
}

// NewImageRenderer creates a renderer targeting img. img may be nil and set
// later with SetTarget.
func NewImageRenderer(img *ebiten.Image) *ImageRenderer {
	return &ImageRenderer{
		target: img,
		stack:  NewMatrixStack(nil),
	}
}

// SetTarget switches the destination image and resets the transform stack.
func (r *ImageRenderer) SetTarget(img *ebiten.Image) {
	r.target = img
	r.stack.Reset()
}

// Target returns the destination image.
func (r *ImageRenderer) Target() *ebiten.Image {
	return r.target
}

// Stack returns the concrete transform stack.
func (r *ImageRenderer) Stack() *MatrixStack {
	return r.stack
}

// Transforms implements Renderer.
func (r *ImageRenderer) Transforms() TransformStack {
	return r.stack
}

// Clear fills the target with c when the color buffer bit is set. Depth and
// stencil bits have no ebiten counterpart and are ignored.
func (r *ImageRenderer) Clear(mask ClearMask, c Color) {
	if mask&ClearColorBuffer == 0 {
		return
	}
	r.target.Fill(c.toRGBA())
}

// FillRect fills rect (in current local space) with c.
func (r *ImageRenderer) FillRect(rect Rect, c Color) {
	if rect.Width <= 0 || rect.Height <= 0 || c.A <= 0 {
		return
	}
	r.op = ebiten.DrawImageOptions{}
	r.op.GeoM.Scale(rect.Width, rect.Height)
	r.op.GeoM.Translate(rect.X, rect.Y)
	r.op.GeoM.Concat(r.stack.Top().GeoM())
	r.op.ColorScale.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
	r.target.DrawImage(getWhitePixel(), &r.op)
}

// StrokeRect outlines rect (in current local space) with c. Rotated
// elements get a rotated outline.
func (r *ImageRenderer) StrokeRect(rect Rect, c Color) {
	top := r.stack.Top()
	corners := [4]Vec2{
		top.Transform(Vec2{rect.X, rect.Y}),
		top.Transform(Vec2{rect.X + rect.Width, rect.Y}),
		top.Transform(Vec2{rect.X + rect.Width, rect.Y + rect.Height}),
		top.Transform(Vec2{rect.X, rect.Y + rect.Height}),
	}
	clr := c.toRGBA()
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		vector.StrokeLine(r.target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			debugBorderWidth, clr, true)
	}
}

// DebugText prints s with ebiten's debug font at the current local origin.
// The text itself is not rotated or scaled.
func (r *ImageRenderer) DebugText(s string) {
	origin := r.stack.Top().Transform(Vec2{})
	ebitenutil.DebugPrintAt(r.target, s, int(origin.X), int(origin.Y))
}
