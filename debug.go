package spring

import (
	"fmt"
	"os"
)

// debugSettled prints a settle notice to stderr. Only called when the owning
// Group is in debug mode.
func debugSettled(name string, a Animator) {
	if s := springOf(a); s != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[spring] %q settled at %v (speed %.6g)\n", name, s.value, s.Speed())
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[spring] %q settled\n", name)
}

// debugCheckStable warns on stderr when p diverges at frame step dt.
func debugCheckStable(name string, p Physics, dt float64) {
	if !p.Stable(dt) {
		_, _ = fmt.Fprintf(os.Stderr, "[spring] warning: %q diverges at dt %.4g (stiffness %g, mass %g, friction %g)\n",
			name, dt, p.Stiffness, p.Mass, p.Friction)
	}
}

// springOf unwraps the Spring behind an Animator, or nil.
func springOf(a Animator) *Spring {
	switch v := a.(type) {
	case *Spring:
		return v
	case *Bound:
		return v.Spring
	}
	return nil
}
