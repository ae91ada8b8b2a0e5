package spring

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestNewTransformDefaults(t *testing.T) {
	tr := NewTransform()
	if tr.ScaleX != 1 || tr.ScaleY != 1 {
		t.Errorf("Scale = (%f,%f), want (1,1)", tr.ScaleX, tr.ScaleY)
	}
	if tr.Alpha != 1 || tr.Color != ColorWhite {
		t.Errorf("Alpha = %f Color = %v, want 1 and white", tr.Alpha, tr.Color)
	}
	if tr.Matrix() != identityTransform {
		t.Errorf("Matrix = %v, want identity", tr.Matrix())
	}
}

func TestTransformTranslation(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(10, 20)
	m := tr.Matrix()
	x, y := transformPoint(m, 0, 0)
	if !approxEqual(x, 10, epsilon) || !approxEqual(y, 20, epsilon) {
		t.Errorf("origin -> (%f,%f), want (10,20)", x, y)
	}
}

func TestTransformRotationWithPivot(t *testing.T) {
	tr := NewTransform()
	tr.SetPivot(1, 0)
	tr.SetRotation(math.Pi / 2)
	// The pivot stays put; the local origin swings from (-1,0) to (0,-1).
	x, y := transformPoint(tr.Matrix(), 1, 0)
	if !approxEqual(x, 0, epsilon) || !approxEqual(y, 0, epsilon) {
		t.Errorf("pivot -> (%f,%f), want (0,0)", x, y)
	}
	x, y = transformPoint(tr.Matrix(), 0, 0)
	if !approxEqual(x, 0, epsilon) || !approxEqual(y, -1, epsilon) {
		t.Errorf("origin -> (%f,%f), want (0,-1)", x, y)
	}
}

func TestTransformMatrixCached(t *testing.T) {
	tr := NewTransform()
	tr.Matrix()
	tr.X = 50 // direct write without MarkDirty
	if x, _ := transformPoint(tr.Matrix(), 0, 0); x != 0 {
		t.Errorf("x = %f, cached matrix should be reused until MarkDirty", x)
	}
	tr.MarkDirty()
	if x, _ := transformPoint(tr.Matrix(), 0, 0); x != 50 {
		t.Errorf("x = %f, want 50 after MarkDirty", x)
	}
}

func TestTransformGeoMMatchesMatrix(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(3, 4)
	tr.SetScale(2, 5)
	tr.SetRotation(0.3)
	m := tr.Matrix()
	g := tr.GeoM()
	gx, gy := g.Apply(1, 1)
	mx, my := transformPoint(m, 1, 1)
	if !approxEqual(gx, mx, 1e-6) || !approxEqual(gy, my, 1e-6) {
		t.Errorf("GeoM.Apply = (%f,%f), matrix = (%f,%f)", gx, gy, mx, my)
	}
}

func TestTransformColorScalePremultiplied(t *testing.T) {
	tr := NewTransform()
	tr.Color = Color{R: 1, G: 0.5, B: 0, A: 1}
	tr.Alpha = 0.5
	cs := tr.ColorScale()
	if !approxEqual(float64(cs.R()), 0.5, 1e-6) || !approxEqual(float64(cs.G()), 0.25, 1e-6) ||
		!approxEqual(float64(cs.B()), 0, 1e-6) || !approxEqual(float64(cs.A()), 0.5, 1e-6) {
		t.Errorf("ColorScale = (%f,%f,%f,%f), want (0.5,0.25,0,0.5)", cs.R(), cs.G(), cs.B(), cs.A())
	}
}

func TestPositionAdapter(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(5, 5)
	pos, err := Position(tr)
	if err != nil {
		t.Fatal(err)
	}
	tr.Matrix() // clear dirty

	_ = pos.To(Vec(100, 50))
	pos.Update(1.0 / 60)
	if !tr.dirty {
		t.Fatal("expected transform to be marked dirty after an applied step")
	}
	for pos.Update(1.0 / 60) {
	}
	if tr.X != 100 || tr.Y != 50 {
		t.Errorf("position = (%f,%f), want (100,50)", tr.X, tr.Y)
	}
}

func TestScaleAndRotationAdapters(t *testing.T) {
	tr := NewTransform()
	sc, _ := Scale(tr)
	rot, _ := Rotation(tr)
	_ = sc.To(Vec(2, 3))
	_ = rot.To(Vec(2 * math.Pi))
	for sc.Update(1.0/60) || rot.Update(1.0/60) {
	}
	if tr.ScaleX != 2 || tr.ScaleY != 3 {
		t.Errorf("scale = (%f,%f), want (2,3)", tr.ScaleX, tr.ScaleY)
	}
	if tr.Rotation != 2*math.Pi {
		t.Errorf("rotation = %f, want 2π", tr.Rotation)
	}
}

func TestOpacityAdapter(t *testing.T) {
	tr := NewTransform()
	op, _ := Opacity(tr)
	_ = op.To(Vec(0))
	steps := 0
	for op.Update(1.0 / 60) {
		steps++
	}
	if steps == 0 {
		t.Fatal("expected at least one step")
	}
	if tr.Alpha != 0 {
		t.Errorf("Alpha = %f, want 0", tr.Alpha)
	}
}

func TestOpacitySetAppliesWithoutUpdate(t *testing.T) {
	tr := NewTransform()
	op, _ := Opacity(tr)
	_ = op.Set(Vec(0.25))
	if tr.Alpha != 0.25 {
		t.Errorf("Alpha = %f, want 0.25", tr.Alpha)
	}
}

func TestTintAdapterAllComponents(t *testing.T) {
	tr := NewTransform()
	tint, _ := Tint(tr)
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}
	_ = tint.To(target.Axes())
	for tint.Update(1.0 / 60) {
	}
	if tr.Color != target {
		t.Errorf("Color = %v, want %v", tr.Color, target)
	}
}
