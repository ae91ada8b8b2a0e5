package spring

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transform is a 2D drawable's placement: the target that the Position,
// Scale, Rotation, Opacity and Tint adapters write into. The affine matrix is
// cached and recomputed only after a change.
type Transform struct {
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64
	Alpha    float64
	Color    Color

	matrix [6]float64
	dirty  bool
}

// NewTransform returns a Transform at the origin with unit scale, full alpha
// and a white tint.
func NewTransform() *Transform {
	return &Transform{
		ScaleX: 1,
		ScaleY: 1,
		Alpha:  1,
		Color:  ColorWhite,
		dirty:  true,
	}
}

// SetPosition sets X and Y and marks the transform dirty.
func (t *Transform) SetPosition(x, y float64) {
	t.X = x
	t.Y = y
	t.dirty = true
}

// SetScale sets ScaleX and ScaleY and marks the transform dirty.
func (t *Transform) SetScale(sx, sy float64) {
	t.ScaleX = sx
	t.ScaleY = sy
	t.dirty = true
}

// SetRotation sets the rotation (in radians) and marks the transform dirty.
func (t *Transform) SetRotation(r float64) {
	t.Rotation = r
	t.dirty = true
}

// SetPivot sets PivotX and PivotY and marks the transform dirty.
func (t *Transform) SetPivot(px, py float64) {
	t.PivotX = px
	t.PivotY = py
	t.dirty = true
}

// MarkDirty forces a recomputation of the matrix. Needed after writing the
// exported fields directly.
func (t *Transform) MarkDirty() {
	t.dirty = true
}

// Matrix returns the affine matrix [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func (t *Transform) Matrix() [6]float64 {
	if !t.dirty {
		return t.matrix
	}
	t.dirty = false

	sx, sy := t.ScaleX, t.ScaleY
	sin, cos := math.Sincos(t.Rotation)

	preTx := -t.PivotX * sx
	preTy := -t.PivotY * sy

	t.matrix = [6]float64{
		cos * sx,
		sin * sx,
		-sin * sy,
		cos * sy,
		cos*preTx - sin*preTy + t.X,
		sin*preTx + cos*preTy + t.Y,
	}
	return t.matrix
}

// GeoM returns the matrix as an ebiten.GeoM for DrawImageOptions.
func (t *Transform) GeoM() ebiten.GeoM {
	return geoM(t.Matrix())
}

// ColorScale returns the tint and alpha as a premultiplied ebiten.ColorScale.
func (t *Transform) ColorScale() ebiten.ColorScale {
	a := clamp01(t.Color.A * t.Alpha)
	var cs ebiten.ColorScale
	cs.Scale(float32(t.Color.R*a), float32(t.Color.G*a), float32(t.Color.B*a), float32(a))
	return cs
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// --- Transform adapters ---

// Position springs t.X and t.Y.
func Position(t *Transform, opts ...Option) (*Bound, error) {
	s, err := New([]float64{t.X, t.Y}, opts...)
	if err != nil {
		return nil, err
	}
	return Bind(s, func(v []float64) { t.SetPosition(v[0], v[1]) }), nil
}

// Scale springs t.ScaleX and t.ScaleY.
func Scale(t *Transform, opts ...Option) (*Bound, error) {
	s, err := New([]float64{t.ScaleX, t.ScaleY}, opts...)
	if err != nil {
		return nil, err
	}
	return Bind(s, func(v []float64) { t.SetScale(v[0], v[1]) }), nil
}

// Rotation springs t.Rotation (radians). Angles are not wrapped; a goal of
// 2π from 0 turns a full circle.
func Rotation(t *Transform, opts ...Option) (*Bound, error) {
	s, err := New([]float64{t.Rotation}, opts...)
	if err != nil {
		return nil, err
	}
	return Bind(s, func(v []float64) { t.SetRotation(v[0]) }), nil
}

// Opacity springs t.Alpha. Overshoot is kept in the field and clamped only
// when drawing.
func Opacity(t *Transform, opts ...Option) (*Bound, error) {
	s, err := New([]float64{t.Alpha}, opts...)
	if err != nil {
		return nil, err
	}
	return Bind(s, func(v []float64) { t.Alpha = v[0] }), nil
}

// Tint springs all four components of t.Color.
func Tint(t *Transform, opts ...Option) (*Bound, error) {
	s, err := New(t.Color.Axes(), opts...)
	if err != nil {
		return nil, err
	}
	return Bind(s, func(v []float64) {
		t.Color = Color{R: v[0], G: v[1], B: v[2], A: v[3]}
	}), nil
}
