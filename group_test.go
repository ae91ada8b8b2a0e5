package spring

import (
	"errors"
	"testing"
)

func TestGroupDoneFlagTransition(t *testing.T) {
	tr := NewTransform()
	pos, _ := Position(tr)
	op, _ := Opacity(tr)

	g := NewGroup()
	g.Add("position", pos)
	g.Add("opacity", op)
	if !g.Done {
		t.Fatal("group of idle springs should be Done")
	}

	_ = pos.To(Vec(50, 50))
	_ = op.To(Vec(0.5))
	if !g.Update(1.0 / 60) {
		t.Fatal("expected a change")
	}
	if g.Done {
		t.Fatal("should not be Done partway through")
	}

	for g.Update(1.0 / 60) {
	}
	if !g.Done {
		t.Fatal("should be Done once every member settled")
	}
	if tr.X != 50 || tr.Y != 50 || tr.Alpha != 0.5 {
		t.Errorf("transform = (%f,%f,%f), want (50,50,0.5)", tr.X, tr.Y, tr.Alpha)
	}

	// Update after done is a no-op.
	if g.Update(0.1) {
		t.Error("Update after Done should report no change")
	}
}

func TestGroupAddAnimatingClearsDone(t *testing.T) {
	s := mustNew(t, Vec(0))
	_ = s.To(Vec(1))
	g := NewGroup()
	g.Add("s", s)
	if g.Done {
		t.Error("adding an animating member should clear Done")
	}
}

func TestGroupRemove(t *testing.T) {
	a := mustNew(t, Vec(0))
	b := mustNew(t, Vec(0))
	g := NewGroup()
	g.Add("a", a)
	g.Add("b", b)

	if !g.Remove(a) {
		t.Fatal("Remove(a) = false, want true")
	}
	if g.Remove(a) {
		t.Error("second Remove(a) = true, want false")
	}
	if g.Len() != 1 {
		t.Errorf("Len = %d, want 1", g.Len())
	}

	_ = a.To(Vec(5))
	g.Update(0.1)
	if a.At(0) != 0 {
		t.Error("removed member should not be updated")
	}
}

func TestGroupClearStopsAll(t *testing.T) {
	a := mustNew(t, Vec(0))
	b := mustNew(t, Vec(0))
	g := NewGroup()
	g.Add("a", a)
	g.Add("b", b)
	_ = a.To(Vec(1))
	_ = b.To(Vec(1))
	g.Update(0.1)

	g.Clear()
	if !g.Done || a.Animating() || b.Animating() {
		t.Error("Clear should stop every member")
	}
	if g.Update(0.1) {
		t.Error("Update after Clear should report no change")
	}
}

func TestGroupReconfigure(t *testing.T) {
	a := mustNew(t, Vec(0))
	b := mustNew(t, Vec(0))
	g := NewGroup()
	g.Add("a", a)
	g.Add("b", b)

	if err := g.Reconfigure(Friction(9)); err != nil {
		t.Fatal(err)
	}
	if a.Physics().Friction != 9 || b.Physics().Friction != 9 {
		t.Error("Reconfigure should reach every member")
	}
	if err := g.Reconfigure(Mass(-1)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestGroupDebugModeDoesNotChangeResults(t *testing.T) {
	run := func(debug bool) []float64 {
		s := mustNew(t, Vec(0), Stiffness(400), Mass(1), Friction(1))
		g := NewGroup()
		g.SetDebugMode(debug)
		g.Add("s", s)
		_ = s.To(Vec(1))
		for i := 0; i < 20; i++ {
			g.Update(1.0 / 60)
		}
		return s.Value()
	}
	if a, b := run(false), run(true); !equalVec(a, b) {
		t.Errorf("debug mode changed the trajectory: %v vs %v", a, b)
	}
}

func TestGroupRemoveRecomputesDone(t *testing.T) {
	g := NewGroup()
	idle := mustNew(t, Vec(0))
	moving := mustNew(t, Vec(0))
	g.Add("idle", idle)
	g.Add("moving", moving)
	_ = moving.To(Vec(1))
	g.Update(1.0 / 60)
	if g.Done {
		t.Fatal("Done = true while a member is animating")
	}

	if !g.Remove(moving) {
		t.Fatal("Remove reported moving was not a member")
	}
	if !g.Done {
		t.Errorf("Done = false after removing the only animating member (Len %d)", g.Len())
	}

	_ = idle.To(Vec(1))
	other := mustNew(t, Vec(0))
	g.Add("other", other)
	g.Remove(other)
	if g.Done {
		t.Error("Done = true while the remaining member is animating")
	}
}

func TestGroupUpdateZeroAlloc(t *testing.T) {
	tr := NewTransform()
	pos, _ := Position(tr)
	g := NewGroup()
	g.Add("position", pos)
	_ = pos.To(Vec(1e9, 1e9))
	g.Update(0.001)

	result := testing.AllocsPerRun(100, func() {
		g.Update(0.001)
	})
	if result > 0 {
		t.Errorf("Group.Update allocated %f times per run, want 0", result)
	}
}
