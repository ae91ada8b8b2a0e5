package spring

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Presets maps a name to a partial physics configuration.
type Presets map[string]Config

func ptr(v float64) *float64 { return &v }

// DefaultPresets are always available; LoadPresets merges over a copy.
var DefaultPresets = Presets{
	"default":  {},
	"gentle":   {Stiffness: ptr(12), Mass: ptr(10), Friction: ptr(7)},
	"wobbly":   {Stiffness: ptr(18), Mass: ptr(10), Friction: ptr(1.2)},
	"stiff":    {Stiffness: ptr(210), Mass: ptr(10), Friction: ptr(13)},
	"slow":     {Stiffness: ptr(28), Mass: ptr(10), Friction: ptr(6)},
	"molasses": {Stiffness: ptr(28), Mass: ptr(40), Friction: ptr(24)},
}

// presetFile is the on-disk YAML layout.
type presetFile struct {
	Presets map[string]Config `yaml:"presets"`
}

// LoadPresets parses YAML of the form
//
//	presets:
//	  bouncy: {stiffness: 60, friction: 2}
//	  heavy:
//	    mass: 50
//
// and returns the built-in presets with the parsed ones merged over them.
// Every entry must resolve against DefaultPhysics to a valid Physics.
func LoadPresets(data []byte) (Presets, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("spring: failed to parse presets: %w", err)
	}

	out := make(Presets, len(DefaultPresets)+len(file.Presets))
	for name, c := range DefaultPresets {
		out[name] = c
	}
	for name, c := range file.Presets {
		if _, err := c.Resolve(); err != nil {
			return nil, fmt.Errorf("spring: preset %q: %w", name, err)
		}
		out[name] = c
	}
	return out, nil
}

// Options returns the named preset as options for New or Reconfigure.
func (p Presets) Options(name string) ([]Option, error) {
	c, ok := p[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return c.Options(), nil
}

// Physics resolves the named preset against DefaultPhysics.
func (p Presets) Physics(name string) (Physics, error) {
	c, ok := p[name]
	if !ok {
		return Physics{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return c.Resolve()
}

// Names returns the preset names in sorted order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
