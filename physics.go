package spring

import (
	"fmt"
	"math"
)

// Physics holds the constants of the damped oscillator that drives a Spring.
type Physics struct {
	// Stiffness scales the pull toward the goal. Must be > 0.
	Stiffness float64
	// Mass divides the net force into acceleration. Must be > 0.
	Mass float64
	// Friction scales the damping force opposing velocity. Must be >= 0.
	Friction float64
	// Precision is the settling threshold for both distance to the goal and
	// speed. Must be >= 0; zero means the spring never settles on its own.
	Precision float64
}

// DefaultPhysics is used for every field a caller leaves unspecified.
var DefaultPhysics = Physics{
	Stiffness: 40,
	Mass:      10,
	Friction:  3,
	Precision: 0.0005,
}

// Validate reports ErrInvalidConfig if p cannot drive a simulation.
func (p Physics) Validate() error {
	check := func(name string, v float64, allowZero bool) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidConfig, name, v)
		}
		if v < 0 || (v == 0 && !allowZero) {
			return fmt.Errorf("%w: %s must be %s, got %v", ErrInvalidConfig, name, bound(allowZero), v)
		}
		return nil
	}
	if err := check("stiffness", p.Stiffness, false); err != nil {
		return err
	}
	if err := check("mass", p.Mass, false); err != nil {
		return err
	}
	if err := check("friction", p.Friction, true); err != nil {
		return err
	}
	return check("precision", p.Precision, true)
}

func bound(allowZero bool) string {
	if allowZero {
		return ">= 0"
	}
	return "> 0"
}

// Option overrides one or more fields of a Physics. Fields an option does not
// touch keep their current value.
type Option func(*Physics)

// Stiffness sets Physics.Stiffness.
func Stiffness(v float64) Option { return func(p *Physics) { p.Stiffness = v } }

// Mass sets Physics.Mass.
func Mass(v float64) Option { return func(p *Physics) { p.Mass = v } }

// Friction sets Physics.Friction.
func Friction(v float64) Option { return func(p *Physics) { p.Friction = v } }

// Precision sets Physics.Precision.
func Precision(v float64) Option { return func(p *Physics) { p.Precision = v } }

// WithPhysics replaces every field at once.
func WithPhysics(physics Physics) Option { return func(p *Physics) { *p = physics } }

// WithConfig applies the non-nil fields of c.
func WithConfig(c Config) Option { return c.apply }

// apply merges opts over base and validates the result. base is not modified.
func apply(base Physics, opts []Option) (Physics, error) {
	for _, opt := range opts {
		if opt != nil {
			opt(&base)
		}
	}
	if err := base.Validate(); err != nil {
		return Physics{}, err
	}
	return base, nil
}

// Config is the partial, decodable form of Physics used by presets and
// scripts. Nil fields are left untouched when the config is applied.
type Config struct {
	Stiffness *float64 `yaml:"stiffness,omitempty" json:"stiffness,omitempty"`
	Mass      *float64 `yaml:"mass,omitempty" json:"mass,omitempty"`
	Friction  *float64 `yaml:"friction,omitempty" json:"friction,omitempty"`
	Precision *float64 `yaml:"precision,omitempty" json:"precision,omitempty"`
}

func (c Config) apply(p *Physics) {
	if c.Stiffness != nil {
		p.Stiffness = *c.Stiffness
	}
	if c.Mass != nil {
		p.Mass = *c.Mass
	}
	if c.Friction != nil {
		p.Friction = *c.Friction
	}
	if c.Precision != nil {
		p.Precision = *c.Precision
	}
}

// Options returns c as a single-element option list, convenient for
// passing straight to New or Reconfigure.
func (c Config) Options() []Option {
	return []Option{c.apply}
}

// Config returns p as a fully populated Config.
func (p Physics) Config() Config {
	return Config{
		Stiffness: &p.Stiffness,
		Mass:      &p.Mass,
		Friction:  &p.Friction,
		Precision: &p.Precision,
	}
}

// Resolve returns DefaultPhysics with c applied, validated.
func (c Config) Resolve() (Physics, error) {
	return apply(DefaultPhysics, c.Options())
}

// Stable reports whether an undriven spring with physics p decays at a fixed
// frame step dt. Zero friction never decays. Update neither clamps nor substeps dt, so a driver feeding
// large or irregular steps can use this to pick a safe step.
//
// One step maps (offset, velocity) through a matrix with determinant
// 1 - friction/mass and trace 2 - friction/mass - dt*stiffness/mass; both
// eigenvalues lie inside the unit circle exactly when the checks below hold.
func (p Physics) Stable(dt float64) bool {
	damp := p.Friction / p.Mass
	pull := dt * p.Stiffness / p.Mass
	if damp <= 0 || damp >= 2 || pull <= 0 {
		return false
	}
	return pull < 4-2*damp
}
