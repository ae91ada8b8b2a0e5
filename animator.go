package spring

// Animator is the common surface of a Spring and anything that decorates one.
type Animator interface {
	Set(next []float64) error
	To(next []float64) error
	Clear()
	Reconfigure(opts ...Option) error
	Update(dt float64) bool
	Animating() bool
}

var (
	_ Animator = (*Spring)(nil)
	_ Animator = (*Bound)(nil)
)

// Bound ties a Spring to an externally owned target. Whenever the spring's
// value changes, Bound copies it out through apply. The spring itself never
// writes to the target.
type Bound struct {
	*Spring
	apply func(v []float64)
}

// Bind wraps s so that every changing Update, and every Set, is committed to
// the target through apply. apply receives the spring's internal buffer and
// must not retain it.
func Bind(s *Spring, apply func(v []float64)) *Bound {
	return &Bound{Spring: s, apply: apply}
}

// Set jumps the spring to next and commits it immediately.
func (b *Bound) Set(next []float64) error {
	if err := b.Spring.Set(next); err != nil {
		return err
	}
	b.commit()
	return nil
}

// Update steps the spring and commits the value if it changed.
func (b *Bound) Update(dt float64) bool {
	if !b.Spring.Update(dt) {
		return false
	}
	b.commit()
	return true
}

func (b *Bound) commit() {
	if b.apply != nil {
		b.apply(b.Spring.value)
	}
}

// Scalar binds a one-axis spring to *p, starting at its current value.
func Scalar(p *float64, opts ...Option) (*Bound, error) {
	s, err := New([]float64{*p}, opts...)
	if err != nil {
		return nil, err
	}
	return Bind(s, func(v []float64) { *p = v[0] }), nil
}

// Pair binds a two-axis spring to *x and *y, starting at their current values.
func Pair(x, y *float64, opts ...Option) (*Bound, error) {
	s, err := New([]float64{*x, *y}, opts...)
	if err != nil {
		return nil, err
	}
	return Bind(s, func(v []float64) {
		*x = v[0]
		*y = v[1]
	}), nil
}
