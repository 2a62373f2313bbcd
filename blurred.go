package glaze

import "math"

// BlurredSurface pairs a surface with an animated blur radius. The radius
// is a small idle/animating state machine advanced by Update; Render
// produces a padded, blurred copy without mutating the wrapped surface.
type BlurredSurface struct {
	surface *Surface

	currentRadius float64
	animating     bool
	startRadius   float64
	targetRadius  float64
	duration      float64
	elapsed       float64
	easing        EasingType
}

// NewBlurredSurface creates a blurred surface wrapping a fresh
// transparent surface of the given size.
func NewBlurredSurface(width, height int) *BlurredSurface {
	return &BlurredSurface{surface: NewSurface(width, height)}
}

// WrapBlurredSurface creates a blurred surface that takes ownership of an
// existing surface. Panics if surface is nil.
func WrapBlurredSurface(surface *Surface) *BlurredSurface {
	if surface == nil {
		panic("glaze: cannot wrap nil surface")
	}
	return &BlurredSurface{surface: surface}
}

// Surface returns the wrapped (unblurred) surface for drawing.
func (b *BlurredSurface) Surface() *Surface {
	return b.surface
}

// BlurRadius returns the current blur radius.
func (b *BlurredSurface) BlurRadius() float64 {
	return b.currentRadius
}

// IsAnimating reports whether a radius animation is in flight.
func (b *BlurredSurface) IsAnimating() bool {
	return b.animating
}

// SetBlurRadius sets the radius immediately, cancelling any animation.
// Negative radii are clamped to zero.
func (b *BlurredSurface) SetBlurRadius(radius float64) {
	b.currentRadius = math.Max(0, radius)
	b.animating = false
}

// AnimateBlurRadius eases the radius from its current value to target
// over duration seconds. A non-positive duration applies the target
// immediately.
func (b *BlurredSurface) AnimateBlurRadius(target, duration float64, easing EasingType) {
	if duration <= 0 {
		b.SetBlurRadius(target)
		return
	}

	b.startRadius = b.currentRadius
	b.targetRadius = math.Max(0, target)
	b.duration = duration
	b.elapsed = 0
	b.easing = easing
	b.animating = true
}

// Update advances the radius animation by dt seconds. No-op while idle.
func (b *BlurredSurface) Update(dt float64) {
	if !b.animating {
		return
	}

	b.elapsed += dt

	if b.elapsed >= b.duration {
		b.currentRadius = b.targetRadius
		b.animating = false
		return
	}

	eased := Ease(b.easing, b.elapsed/b.duration)
	b.currentRadius = b.startRadius + (b.targetRadius-b.startRadius)*eased
}

// Render returns a blurred copy of the surface. At radius <= 0.5 this is
// a plain clone; otherwise the copy is padded by ceil(3*radius) per side
// so the Gaussian tail is not clipped, and the result is correspondingly
// larger than the source.
func (b *BlurredSurface) Render() *Surface {
	if b.currentRadius <= 0.5 {
		return b.surface.Clone()
	}

	padding := int(math.Ceil(b.currentRadius * 3))
	result := NewSurface(b.surface.width+padding*2, b.surface.height+padding*2)
	result.Blit(b.surface, padding, padding)
	GaussianBlur(result, b.currentRadius)
	return result
}

// RenderTo blits the blurred rendering onto dest so that the unpadded
// source content lands at (x, y).
func (b *BlurredSurface) RenderTo(dest *Surface, x, y int) {
	blurred := b.Render()

	if b.currentRadius > 0.5 {
		padding := int(math.Ceil(b.currentRadius * 3))
		dest.Blit(blurred, x-padding, y-padding)
	} else {
		dest.Blit(blurred, x, y)
	}
}
