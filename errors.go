package spring

import "errors"

var (
	// ErrShapeMismatch is returned when a vector's axis count differs from the
	// axis count the spring was built with.
	ErrShapeMismatch = errors.New("spring: shape mismatch")

	// ErrInvalidConfig is returned when a physics configuration would make the
	// simulation ill-defined (non-positive mass or stiffness, negative friction
	// or precision, NaN or infinite values).
	ErrInvalidConfig = errors.New("spring: invalid config")

	// ErrUnknownPreset is returned by Presets.Options for a name that has no
	// preset.
	ErrUnknownPreset = errors.New("spring: unknown preset")
)
