package glaze

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 fields on a Layer simultaneously. Create
// one via the convenience constructors (TweenPosition, TweenScale,
// TweenOpacity, TweenRotation) and call Update(dt) each frame. If the
// target layer is disposed, the group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	apply  [4]func(float32)
	count  int
	target *Layer
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target layer. If the layer has been disposed, Done is set to true and
// no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.apply[i](val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that animates layer.X and layer.Y to
// the given coordinates over duration seconds. Positions are integer
// fields; intermediate values round to the nearest pixel.
func TweenPosition(layer *Layer, toX, toY int, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: layer}
	g.tweens[0] = gween.New(float32(layer.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(layer.Y), float32(toY), duration, fn)
	g.apply[0] = func(v float32) { layer.X = int(math.Round(float64(v))) }
	g.apply[1] = func(v float32) { layer.Y = int(math.Round(float64(v))) }
	return g
}

// TweenScale creates a TweenGroup that animates layer.ScaleX and
// layer.ScaleY to the given values over duration seconds.
func TweenScale(layer *Layer, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: layer}
	g.tweens[0] = gween.New(float32(layer.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(layer.ScaleY), float32(toSY), duration, fn)
	g.apply[0] = func(v float32) { layer.ScaleX = float64(v) }
	g.apply[1] = func(v float32) { layer.ScaleY = float64(v) }
	return g
}

// TweenOpacity creates a TweenGroup that animates the layer opacity to
// the target value over duration seconds. Values pass through
// Layer.SetOpacity and therefore stay clamped to [0, 1].
func TweenOpacity(layer *Layer, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: layer}
	g.tweens[0] = gween.New(float32(layer.Opacity()), float32(to), duration, fn)
	g.apply[0] = func(v float32) { layer.SetOpacity(float64(v)) }
	return g
}

// TweenRotation creates a TweenGroup that animates layer.Rotation to the
// target angle in degrees over duration seconds.
func TweenRotation(layer *Layer, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: layer}
	g.tweens[0] = gween.New(float32(layer.Rotation), float32(to), duration, fn)
	g.apply[0] = func(v float32) { layer.Rotation = float64(v) }
	return g
}
