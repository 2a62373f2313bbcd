package glaze

import "math"

// Animation tweens a scalar from a start to an end value over a fixed
// duration through an easing curve. Nothing advances implicitly; call
// [Animation.Update] with the frame delta.
type Animation struct {
	// Loop restarts the animation when a cycle completes.
	Loop bool
	// Reverse plays the eased progress backwards (end toward start).
	Reverse bool
	// Yoyo alternates direction each cycle instead of snapping back.
	Yoyo bool

	start    float64
	end      float64
	current  float64
	duration float64
	elapsed  float64
	easing   EasingType
	forward  bool
}

// NewAnimation creates an animation from start to end over duration
// seconds with the given easing curve.
func NewAnimation(start, end, duration float64, easing EasingType) *Animation {
	return &Animation{
		start:    start,
		end:      end,
		current:  start,
		duration: duration,
		easing:   easing,
		forward:  true,
	}
}

// Update advances the animation by dt seconds and returns the current
// value. On loop or yoyo wrap the overshoot past the duration carries
// into the next cycle, so large dt steps stay continuous.
func (a *Animation) Update(dt float64) float64 {
	if a.IsFinished() && !a.Loop && !a.Yoyo {
		return a.current
	}

	a.elapsed += dt

	if a.elapsed >= a.duration {
		if a.Yoyo {
			a.forward = !a.forward
			a.elapsed -= a.duration
		} else if a.Loop {
			a.elapsed -= a.duration
		}
	}

	t := math.Min(a.elapsed/a.duration, 1)
	eased := Ease(a.easing, t)

	if a.Reverse || (a.Yoyo && !a.forward) {
		eased = 1 - eased
	}

	a.current = a.start + (a.end-a.start)*eased
	return a.current
}

// Value returns the current animated value.
func (a *Animation) Value() float64 {
	return a.current
}

// Progress returns the normalized elapsed time in [0, 1].
func (a *Animation) Progress() float64 {
	return math.Min(a.elapsed/a.duration, 1)
}

// IsFinished reports whether the elapsed time has reached the duration.
// Looping and yoyo animations report finished only momentarily at wrap.
func (a *Animation) IsFinished() bool {
	return a.elapsed >= a.duration
}

// IsRunning reports the inverse of IsFinished.
func (a *Animation) IsRunning() bool {
	return !a.IsFinished()
}

// Reset rewinds the animation to its start value and forward direction.
func (a *Animation) Reset() {
	a.elapsed = 0
	a.forward = true
	a.current = a.start
}

// Restart is an alias for Reset.
func (a *Animation) Restart() {
	a.Reset()
}

// SetStart replaces the start value.
func (a *Animation) SetStart(v float64) { a.start = v }

// SetEnd replaces the end value.
func (a *Animation) SetEnd(v float64) { a.end = v }

// SetDuration replaces the duration in seconds.
func (a *Animation) SetDuration(d float64) { a.duration = d }

// SetEasing replaces the easing curve.
func (a *Animation) SetEasing(e EasingType) { a.easing = e }

// Spring rest detection thresholds.
const (
	springRestThreshold     = 1e-3
	springVelocityThreshold = 1e-3
)

// SpringAnimation drives a value toward a movable target by integrating a
// damped harmonic oscillator with semi-implicit Euler steps. Unlike
// [Animation] it has no fixed duration; it settles when position and
// velocity fall under the rest thresholds.
type SpringAnimation struct {
	position  float64
	velocity  float64
	target    float64
	stiffness float64
	damping   float64
	mass      float64
}

// NewSpring creates a spring resting at target with the given physics
// constants.
func NewSpring(target, stiffness, damping, mass float64) *SpringAnimation {
	return &SpringAnimation{
		position:  target,
		target:    target,
		stiffness: stiffness,
		damping:   damping,
		mass:      mass,
	}
}

// Gentle returns a soft, slightly bouncy spring preset.
func Gentle(target float64) *SpringAnimation { return NewSpring(target, 120, 14, 1) }

// Wobbly returns a pronounced-overshoot spring preset.
func Wobbly(target float64) *SpringAnimation { return NewSpring(target, 180, 12, 1) }

// Stiff returns a fast, tight spring preset.
func Stiff(target float64) *SpringAnimation { return NewSpring(target, 210, 20, 1) }

// Slow returns a heavily damped, non-overshooting spring preset.
func Slow(target float64) *SpringAnimation { return NewSpring(target, 280, 60, 1) }

// Update integrates the spring for dt seconds and returns the new
// position. Velocity is updated before position (symplectic Euler), which
// keeps the oscillator stable at game-loop step sizes.
func (s *SpringAnimation) Update(dt float64) float64 {
	displacement := s.position - s.target
	accel := (-s.stiffness*displacement - s.damping*s.velocity) / s.mass

	s.velocity += accel * dt
	s.position += s.velocity * dt
	return s.position
}

// Value returns the current position.
func (s *SpringAnimation) Value() float64 {
	return s.position
}

// Velocity returns the current velocity.
func (s *SpringAnimation) Velocity() float64 {
	return s.velocity
}

// Target returns the value the spring is pulling toward.
func (s *SpringAnimation) Target() float64 {
	return s.target
}

// SetTarget retargets the spring without touching position or velocity.
func (s *SpringAnimation) SetTarget(target float64) {
	s.target = target
}

// SetValue teleports the spring to a position and zeroes its velocity.
func (s *SpringAnimation) SetValue(v float64) {
	s.position = v
	s.velocity = 0
}

// SetStiffness replaces the spring constant.
func (s *SpringAnimation) SetStiffness(v float64) { s.stiffness = v }

// SetDamping replaces the damping coefficient.
func (s *SpringAnimation) SetDamping(v float64) { s.damping = v }

// SetMass replaces the oscillating mass.
func (s *SpringAnimation) SetMass(v float64) { s.mass = v }

// IsAtRest reports whether both the displacement from the target and the
// velocity are below the rest thresholds.
func (s *SpringAnimation) IsAtRest() bool {
	return math.Abs(s.position-s.target) < springRestThreshold &&
		math.Abs(s.velocity) < springVelocityThreshold
}

// IsFinished is an alias for IsAtRest.
func (s *SpringAnimation) IsFinished() bool {
	return s.IsAtRest()
}
