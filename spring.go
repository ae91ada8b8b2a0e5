package spring

import (
	"fmt"
	"math"
)

// State reports whether a Spring is currently being driven toward a goal.
type State uint8

const (
	StateIdle      State = iota // no goal; Update is a no-op
	StateAnimating              // goal set; Update advances the value
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Spring advances a fixed-size vector toward a goal using damped
// spring-mass dynamics, one explicit Euler step per Update.
//
// A Spring owns its value, goal and velocity buffers. The axis count is fixed
// by the initial value passed to New. A Spring is not safe for concurrent use.
type Spring struct {
	value    []float64
	goal     []float64
	velocity []float64
	offset   []float64 // scratch, reused every step

	animating bool
	physics   Physics
}

// New creates a Spring at rest at initial. The axis count is len(initial) and
// must be at least 1. Options are applied over DefaultPhysics.
func New(initial []float64, opts ...Option) (*Spring, error) {
	if len(initial) == 0 {
		return nil, fmt.Errorf("%w: spring needs at least one axis", ErrShapeMismatch)
	}
	physics, err := apply(DefaultPhysics, opts)
	if err != nil {
		return nil, err
	}
	n := len(initial)
	buf := make([]float64, 4*n)
	s := &Spring{
		value:    buf[0:n:n],
		goal:     buf[n : 2*n : 2*n],
		velocity: buf[2*n : 3*n : 3*n],
		offset:   buf[3*n : 4*n : 4*n],
		physics:  physics,
	}
	copy(s.value, initial)
	return s, nil
}

// Len returns the number of axes.
func (s *Spring) Len() int { return len(s.value) }

// At returns the current value of axis i.
func (s *Spring) At(i int) float64 { return s.value[i] }

// Value returns a copy of the current value.
func (s *Spring) Value() []float64 {
	return s.CopyTo(make([]float64, len(s.value)))
}

// CopyTo copies the current value into dst and returns dst. dst must have
// at least Len elements.
func (s *Spring) CopyTo(dst []float64) []float64 {
	copy(dst[:len(s.value)], s.value)
	return dst
}

// Goal returns a copy of the goal and true while animating, or nil and false
// when idle.
func (s *Spring) Goal() ([]float64, bool) {
	if !s.animating {
		return nil, false
	}
	g := make([]float64, len(s.goal))
	copy(g, s.goal)
	return g, true
}

// Speed returns the Euclidean norm of the internal velocity.
func (s *Spring) Speed() float64 { return norm(s.velocity) }

// Physics returns the live physics configuration.
func (s *Spring) Physics() Physics { return s.physics }

// State returns StateAnimating while a goal is set.
func (s *Spring) State() State {
	if s.animating {
		return StateAnimating
	}
	return StateIdle
}

// Animating reports whether a goal is set.
func (s *Spring) Animating() bool { return s.animating }

// Set jumps to next and cancels any animation in flight. Velocity is kept.
func (s *Spring) Set(next []float64) error {
	if err := s.checkShape("set", next); err != nil {
		return err
	}
	copy(s.value, next)
	s.animating = false
	return nil
}

// To starts (or redirects) an animation toward next. Neither value nor
// velocity is touched, so a redirect keeps its momentum.
func (s *Spring) To(next []float64) error {
	if err := s.checkShape("to", next); err != nil {
		return err
	}
	copy(s.goal, next)
	s.animating = true
	return nil
}

// Clear drops the goal. Value and velocity stay where they are.
func (s *Spring) Clear() {
	s.animating = false
}

// Reconfigure merges opts into the live physics. On error the physics is left
// unchanged. Safe to call mid-animation; takes effect on the next Update.
func (s *Spring) Reconfigure(opts ...Option) error {
	physics, err := apply(s.physics, opts)
	if err != nil {
		return err
	}
	s.physics = physics
	return nil
}

// Update advances the simulation by dt seconds and reports whether the value
// changed. When idle it returns false without touching anything.
//
// Once both the distance to the goal and the speed fall below Precision, the
// value snaps exactly to the goal, the spring goes idle and Update returns
// true for that final step. dt is not clamped or substepped; large steps with
// stiff springs can diverge.
func (s *Spring) Update(dt float64) bool {
	if !s.animating {
		return false
	}

	for i := range s.value {
		s.offset[i] = s.value[i] - s.goal[i]
	}

	p := s.physics
	distance := norm(s.offset)
	speed := norm(s.velocity)

	if speed < p.Precision && distance < p.Precision {
		copy(s.value, s.goal)
		s.animating = false
		return true
	}

	// Every product is rounded by an explicit conversion so the compiler
	// cannot fuse it into an FMA; trajectories must match on every GOARCH.
	for i := range s.value {
		damping := float64(s.velocity[i] * p.Friction)
		pull := float64(s.offset[i] * p.Stiffness)
		force := -(damping + pull)
		s.velocity[i] += force / p.Mass
		s.value[i] += float64(s.velocity[i] * dt)
	}

	return true
}

func (s *Spring) checkShape(op string, v []float64) error {
	if len(v) != len(s.value) {
		return fmt.Errorf("%w: %s got %d axes, spring has %d", ErrShapeMismatch, op, len(v), len(s.value))
	}
	return nil
}

// norm returns the Euclidean length of v.
func norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x * x)
	}
	return math.Sqrt(sum)
}
