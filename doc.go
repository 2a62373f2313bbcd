// Package glaze is a software 2D rendering and compositing engine.
//
// Glaze renders entirely on the CPU into owned RGBA8 pixel buffers. It
// provides drawing primitives with optional anti-aliasing, a multi-layer
// alpha compositor with nine blend modes and a backdrop-blur "frosted
// glass" material, an in-place visual effects library, and a time-stepped
// animation layer.
//
// # Quick start
//
// Create a [LayerStack], draw into layer surfaces, and composite:
//
//	stack := glaze.NewLayerStack(640, 480)
//	stack.Background = glaze.Color{R: 30, G: 30, B: 40, A: 255}
//
//	card := stack.NewLayer("card")
//	card.Surface().FillRoundRect(0, 0, 200, 120, 16, glaze.Color{R: 255, G: 255, B: 255, A: 230})
//	card.X, card.Y = 60, 40
//
//	frame := stack.Composite()
//
// The composited [Surface] exposes its raw buffer via [Surface.Data]: a
// tightly packed row-major RGBA8 byte slice (pitch = width*4, no row
// padding) ready for presentation, e.g. ebiten's Image.WritePixels. See
// the examples directory for runnable window demos.
//
// # Surfaces and drawing
//
// Every [Surface] owns its pixels. Out-of-bounds reads return transparent
// black and out-of-bounds writes are no-ops, so drawing never needs to be
// pre-clipped. Each surface carries its own Antialias flag; there is no
// process-wide rendering state.
//
// # Layers and materials
//
// A [Layer] wraps one surface with position, scale, opacity, a [BlendMode]
// and a [Material]. A frosted-glass material blurs whatever is already
// composited behind the layer before the layer's own pixels are drawn.
//
// # Effects
//
// Package-level functions ([BoxBlur], [GaussianBlur], [Ripple],
// [Saturation], [PerlinNoise], ...) mutate a surface in place. All run to
// completion in a single full-frame pass.
//
// # Animation
//
// [Animation] tweens a scalar through one of 19 easing curves (via
// [gween]), [SpringAnimation] integrates a damped spring toward a target,
// and [TweenGroup] animates layer fields directly. Nothing advances on its
// own; drive everything with explicit Update(dt) calls from your frame
// loop. The engine is single-threaded; callers serialize access.
//
// [gween]: https://github.com/tanema/gween
package glaze
