package canvas

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// AffineTransform is a 2D affine matrix. The implicit bottom row is (0, 0, 1):
//
//	| A  C  TX |
//	| B  D  TY |
//	| 0  0   1 |
//
// The zero value is not the identity; use Identity.
type AffineTransform struct {
	A, B, C, D float64
	TX, TY     float64
}

// degenerateEpsilon is the determinant magnitude below which a transform is
// treated as non-invertible.
const degenerateEpsilon = 1e-12

// Identity returns the identity transform.
func Identity() AffineTransform {
	return AffineTransform{A: 1, D: 1}
}

// Translation returns a pure translation.
func Translation(x, y float64) AffineTransform {
	return AffineTransform{A: 1, D: 1, TX: x, TY: y}
}

// Rotation returns a rotation by r radians.
func Rotation(r float64) AffineTransform {
	sin, cos := math.Sincos(r)
	return AffineTransform{A: cos, B: sin, C: -sin, D: cos}
}

// Scaling returns a non-uniform scale.
func Scaling(sx, sy float64) AffineTransform {
	return AffineTransform{A: sx, D: sy}
}

// TranslationRotation returns Translate(t) * Rotate(r).
func TranslationRotation(t Vec2, r float64) AffineTransform {
	sin, cos := math.Sincos(r)
	return AffineTransform{A: cos, B: sin, C: -sin, D: cos, TX: t.X, TY: t.Y}
}

// TranslationScale returns Translate(t) * Scale(s).
func TranslationScale(t, s Vec2) AffineTransform {
	return AffineTransform{A: s.X, D: s.Y, TX: t.X, TY: t.Y}
}

// TranslationRotationScale returns Translate(t) * Rotate(r) * Scale(s). This
// is the local transform of an Element.
func TranslationRotationScale(t Vec2, r float64, s Vec2) AffineTransform {
	sin, cos := math.Sincos(r)
	return AffineTransform{
		A:  s.X * cos,
		B:  s.X * sin,
		C:  -s.Y * sin,
		D:  s.Y * cos,
		TX: t.X,
		TY: t.Y,
	}
}

// Compose returns t1 * t2: t2 applied in t1's frame. A point p maps to
// t1.Transform(t2.Transform(p)).
func Compose(t1, t2 AffineTransform) AffineTransform {
	return AffineTransform{
		A:  t1.A*t2.A + t1.C*t2.B,
		B:  t1.B*t2.A + t1.D*t2.B,
		C:  t1.A*t2.C + t1.C*t2.D,
		D:  t1.B*t2.C + t1.D*t2.D,
		TX: t1.A*t2.TX + t1.C*t2.TY + t1.TX,
		TY: t1.B*t2.TX + t1.D*t2.TY + t1.TY,
	}
}

// Then is the method form of Compose(t, child).
func (t AffineTransform) Then(child AffineTransform) AffineTransform {
	return Compose(t, child)
}

// Translate post-multiplies a translation in place and returns t.
func (t *AffineTransform) Translate(x, y float64) *AffineTransform {
	t.TX += t.A*x + t.C*y
	t.TY += t.B*x + t.D*y
	return t
}

// Rotate post-multiplies a rotation of r radians in place and returns t.
func (t *AffineTransform) Rotate(r float64) *AffineTransform {
	sin, cos := math.Sincos(r)
	a, b, c, d := t.A, t.B, t.C, t.D
	t.A = a*cos + c*sin
	t.B = b*cos + d*sin
	t.C = c*cos - a*sin
	t.D = d*cos - b*sin
	return t
}

// Scale post-multiplies a non-uniform scale in place and returns t.
func (t *AffineTransform) Scale(sx, sy float64) *AffineTransform {
	t.A *= sx
	t.B *= sx
	t.C *= sy
	t.D *= sy
	return t
}

// Determinant returns the determinant of the linear part.
func (t AffineTransform) Determinant() float64 {
	return t.A*t.D - t.B*t.C
}

// Invertible reports whether t has a finite inverse. A zero scale factor
// makes a transform degenerate.
func (t AffineTransform) Invertible() bool {
	det := t.Determinant()
	return det <= -degenerateEpsilon || det >= degenerateEpsilon
}

// TryInverse returns the inverse of t and true, or the identity and false
// when t is degenerate.
func (t AffineTransform) TryInverse() (AffineTransform, bool) {
	det := t.Determinant()
	if det > -degenerateEpsilon && det < degenerateEpsilon {
		return Identity(), false
	}
	inv := 1 / det
	return AffineTransform{
		A:  t.D * inv,
		B:  -t.B * inv,
		C:  -t.C * inv,
		D:  t.A * inv,
		TX: (t.C*t.TY - t.D*t.TX) * inv,
		TY: (t.B*t.TX - t.A*t.TY) * inv,
	}, true
}

// Inverse returns the inverse of t. Returns the identity if t is degenerate;
// use TryInverse or Invertible to tell the two apart.
func (t AffineTransform) Inverse() AffineTransform {
	inv, _ := t.TryInverse()
	return inv
}

// Transform applies t to a point.
func (t AffineTransform) Transform(p Vec2) Vec2 {
	return Vec2{
		X: t.A*p.X + t.C*p.Y + t.TX,
		Y: t.B*p.X + t.D*p.Y + t.TY,
	}
}

// TransformXY applies t to the point (x, y).
func (t AffineTransform) TransformXY(x, y float64) (float64, float64) {
	return t.A*x + t.C*y + t.TX, t.B*x + t.D*y + t.TY
}

// GeoM converts t to an ebiten geometry matrix.
func (t AffineTransform) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, t.A)
	g.SetElement(0, 1, t.C)
	g.SetElement(0, 2, t.TX)
	g.SetElement(1, 0, t.B)
	g.SetElement(1, 1, t.D)
	g.SetElement(1, 2, t.TY)
	return g
}
