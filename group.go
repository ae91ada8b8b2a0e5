package spring

// Group steps a set of animators together, typically every spring that
// belongs to one on-screen object. Call Update(dt) once per frame.
//
// There is no global animation manager; users call Update themselves.
type Group struct {
	members []Animator
	names   []string
	checked []bool

	// Done is true once every member is idle after an Update.
	Done bool

	debug bool
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	return &Group{Done: true}
}

// Add appends a to the group under name. The name is only used in debug
// output.
func (g *Group) Add(name string, a Animator) {
	g.members = append(g.members, a)
	g.names = append(g.names, name)
	g.checked = append(g.checked, false)
	if a.Animating() {
		g.Done = false
	}
}

// Remove drops a from the group and recomputes Done from the remaining
// members. It reports whether a was a member.
func (g *Group) Remove(a Animator) bool {
	for i, m := range g.members {
		if m == a {
			g.members = append(g.members[:i], g.members[i+1:]...)
			g.names = append(g.names[:i], g.names[i+1:]...)
			g.checked = append(g.checked[:i], g.checked[i+1:]...)
			g.Done = true
			for _, rest := range g.members {
				if rest.Animating() {
					g.Done = false
					break
				}
			}
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (g *Group) Len() int { return len(g.members) }

// Clear stops every member where it stands.
func (g *Group) Clear() {
	for _, m := range g.members {
		m.Clear()
	}
	g.Done = true
}

// Reconfigure applies opts to every member. The first error is returned and
// members after it are left unchanged.
func (g *Group) Reconfigure(opts ...Option) error {
	for _, m := range g.members {
		if err := m.Reconfigure(opts...); err != nil {
			return err
		}
	}
	return nil
}

// SetDebugMode enables diagnostics on stderr: a one-time divergence warning
// per member and a notice whenever a member settles.
func (g *Group) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// Update advances every member by dt seconds and reports whether any value
// changed.
func (g *Group) Update(dt float64) bool {
	changed := false
	done := true
	for i, m := range g.members {
		was := m.Animating()
		if was && g.debug && !g.checked[i] {
			if s := springOf(m); s != nil {
				debugCheckStable(g.names[i], s.physics, dt)
			}
			g.checked[i] = true
		}
		if m.Update(dt) {
			changed = true
		}
		if m.Animating() {
			done = false
		} else if was && g.debug {
			debugSettled(g.names[i], m)
		}
	}
	g.Done = done
	return changed
}
