package spring

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Camera controls the view into a 2D world: position, zoom, rotation, and
// viewport. It is the target of the Zoom, LookAt and CameraRotation adapters.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool
}

// NewCamera creates a Camera with zoom 1 rendering into viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
	c.ClampToBounds()
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the camera position so the visible area
// stays within Bounds. On an axis where Bounds is narrower than the visible
// area the camera centers on Bounds. No-op if BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if !c.BoundsEnabled {
		return
	}
	c.X = clampCenter(c.X, c.Bounds.X, c.Bounds.Width, c.Viewport.Width/(2*c.Zoom))
	c.Y = clampCenter(c.Y, c.Bounds.Y, c.Bounds.Height, c.Viewport.Height/(2*c.Zoom))
	c.dirty = true
}

// clampCenter keeps a view of half-extent half, centered on pos, inside
// [lo, lo+size].
func clampCenter(pos, lo, size, half float64) float64 {
	if size < 2*half {
		return lo + size/2
	}
	return math.Min(math.Max(pos, lo+half), lo+size-half)
}

// MarkDirty forces a recomputation of the view matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// ViewMatrix returns the world-to-screen matrix, recomputing it if dirty:
// move (X, Y) to the origin, rotate by -Rotation, scale by Zoom, then move
// the origin to the viewport center.
func (c *Camera) ViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	sin, cos := math.Sincos(-c.Rotation)
	z := c.Zoom
	lens := [6]float64{
		z * cos, z * sin,
		-z * sin, z * cos,
		c.Viewport.X + c.Viewport.Width/2,
		c.Viewport.Y + c.Viewport.Height/2,
	}
	c.viewMatrix = multiplyAffine(lens, [6]float64{1, 0, 0, 1, -c.X, -c.Y})
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return transformPoint(c.ViewMatrix(), wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.ViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// VisibleBounds returns the world-space rectangle enclosing everything the
// viewport shows. Under rotation it is larger than the viewport itself.
func (c *Camera) VisibleBounds() Rect {
	vp := c.Viewport
	minX, minY := c.ScreenToWorld(vp.X, vp.Y)
	maxX, maxY := minX, minY
	for _, corner := range [3][2]float64{
		{vp.X + vp.Width, vp.Y},
		{vp.X + vp.Width, vp.Y + vp.Height},
		{vp.X, vp.Y + vp.Height},
	} {
		x, y := transformPoint(c.invViewMatrix, corner[0], corner[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// GeoM returns the screen-space placement of t as seen through the camera.
func (c *Camera) GeoM(t *Transform) ebiten.GeoM {
	return geoM(multiplyAffine(c.ViewMatrix(), t.Matrix()))
}

// --- Camera adapters ---

// Zoom springs c.Zoom. Every applied step invalidates the cached view matrix
// and re-clamps to bounds, since the visible area depends on zoom.
func Zoom(c *Camera, opts ...Option) (*Bound, error) {
	s, err := New([]float64{c.Zoom}, opts...)
	if err != nil {
		return nil, err
	}
	return Bind(s, func(v []float64) {
		c.Zoom = v[0]
		c.dirty = true
		c.ClampToBounds()
	}), nil
}

// LookAt springs the point the camera centers on. With bounds enabled the
// camera stops at the edge while the spring keeps its own value; it settles
// when the spring does.
func LookAt(c *Camera, opts ...Option) (*Bound, error) {
	s, err := New([]float64{c.X, c.Y}, opts...)
	if err != nil {
		return nil, err
	}
	return Bind(s, func(v []float64) {
		c.X = v[0]
		c.Y = v[1]
		c.dirty = true
		c.ClampToBounds()
	}), nil
}

// CameraRotation springs c.Rotation (radians).
func CameraRotation(c *Camera, opts ...Option) (*Bound, error) {
	s, err := New([]float64{c.Rotation}, opts...)
	if err != nil {
		return nil, err
	}
	return Bind(s, func(v []float64) {
		c.Rotation = v[0]
		c.dirty = true
	}), nil
}
