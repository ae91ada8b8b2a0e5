// Package spring animates numeric vectors with damped spring physics.
//
// Instead of a fixed-duration easing curve, a [Spring] pulls its value toward
// a goal each frame through a spring-mass-damper step. Goals can change at any
// time and the motion carries its momentum into the new target, which makes
// springs a good fit for interruptible UI and camera motion.
//
// # Quick start
//
//	s, err := spring.New(spring.Vec(0, 0))
//	if err != nil {
//		return err
//	}
//	s.To(spring.Vec(100, 50))
//
//	// once per frame
//	if s.Update(dt) {
//		x, y := s.At(0), s.At(1)
//		// ... draw at x, y ...
//	}
//
// Update returns false once the spring has settled: both the distance to the
// goal and the speed are under [Physics.Precision], at which point the value
// is snapped exactly onto the goal.
//
// # Physics
//
// Each spring carries a [Physics] (stiffness, mass, friction, precision).
// Unspecified fields default to [DefaultPhysics]. Options such as
// [Stiffness] and [Friction] override single fields at construction or later
// through [Spring.Reconfigure]. Named configurations can be loaded from YAML
// with [LoadPresets].
//
// Update performs one explicit Euler step and never clamps dt. Use
// [Physics.Stable] to check a frame step before trusting a configuration.
//
// # Adapters
//
// A [Bound] wraps a spring and copies each new value into a target it does
// not own. Adapters exist for a [Transform] ([Position], [Scale], [Rotation],
// [Opacity], [Tint]), for a [Camera] ([Zoom], [LookAt], [CameraRotation]) and
// for plain fields ([Scalar], [Pair]). A [Group] steps many of them per frame.
//
// ECS integration via [Donburi] lives in spring/ecs.
//
// [Donburi]: https://github.com/yohamta/donburi
package spring
