package glaze

import "math"

// Layer wraps a single exclusively owned [Surface] with the transform and
// style state the compositor applies: position, scale, opacity,
// visibility, a blend mode, and a material.
type Layer struct {
	// X and Y position the layer's top-left corner in stack coordinates.
	X, Y int
	// ScaleX and ScaleY resample the layer with bilinear interpolation,
	// pivoting about the surface center. Default 1.
	ScaleX, ScaleY float64
	// Rotation is in degrees. It participates in HitTest only; the
	// compositing sampling loop applies scale but not rotation.
	Rotation float64
	// Visible layers with opacity > 0 are composited; everything else is
	// skipped.
	Visible bool
	// BlendMode selects the channel formula used against the backdrop.
	BlendMode BlendMode
	// Material describes the backdrop interaction (solid or frosted glass).
	Material Material
	// Name is the lookup key used by LayerStack.LayerByName.
	Name string

	surface  *Surface
	opacity  float64
	disposed bool
}

// NewLayer creates a standalone layer owning a fresh transparent surface.
// Panics on non-positive dimensions, like [NewSurface].
func NewLayer(width, height int) *Layer {
	return NewLayerFromSurface(NewSurface(width, height))
}

// NewLayerFromSurface creates a layer that takes ownership of an existing
// surface. Panics if surface is nil.
func NewLayerFromSurface(surface *Surface) *Layer {
	if surface == nil {
		panic("glaze: cannot create layer from nil surface")
	}
	return &Layer{
		ScaleX:   1,
		ScaleY:   1,
		Visible:  true,
		Material: Solid(),
		surface:  surface,
		opacity:  1,
	}
}

// Surface returns the layer's pixel surface for drawing.
func (l *Layer) Surface() *Surface {
	return l.surface
}

// Opacity returns the layer opacity in [0, 1].
func (l *Layer) Opacity() float64 {
	return l.opacity
}

// SetOpacity sets the layer opacity, clamped to [0, 1].
func (l *Layer) SetOpacity(opacity float64) {
	l.opacity = clamp01(opacity)
}

// HitTest reports whether the stack-space point (x, y) falls inside the
// layer's scaled bounds. Rotation is honored by inverse-rotating the
// point about the scaled center.
func (l *Layer) HitTest(x, y int) bool {
	w := float64(l.surface.width) * l.ScaleX
	h := float64(l.surface.height) * l.ScaleY

	if l.Rotation == 0 {
		return float64(x) >= float64(l.X) && float64(x) < float64(l.X)+w &&
			float64(y) >= float64(l.Y) && float64(y) < float64(l.Y)+h
	}

	cx := float64(l.X) + w*0.5
	cy := float64(l.Y) + h*0.5
	dx := float64(x) - cx
	dy := float64(y) - cy

	rad := -l.Rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)
	nx := dx*cos - dy*sin
	ny := dx*sin + dy*cos

	return math.Abs(nx) <= w*0.5 && math.Abs(ny) <= h*0.5
}

// Dispose releases the layer's surface. A disposed layer is skipped by
// the compositor and stops any [TweenGroup] targeting it.
func (l *Layer) Dispose() {
	if l.disposed {
		return
	}
	l.disposed = true
	l.surface.Dispose()
}

// IsDisposed reports whether Dispose has been called.
func (l *Layer) IsDisposed() bool {
	return l.disposed
}

// LayerStack owns an ordered back-to-front list of layers sharing one
// output size and composites them over a background color. Compositing is
// stateless per call: every Composite fully rebuilds the destination.
type LayerStack struct {
	// Background fills the destination before any layer is drawn.
	Background Color

	width     int
	height    int
	layers    []*Layer
	composite *Surface // scratch buffer reused by Composite
}

// NewLayerStack creates an empty stack of the given output size.
// Panics on non-positive dimensions.
func NewLayerStack(width, height int) *LayerStack {
	return &LayerStack{
		Background: Color{A: 255},
		width:      width,
		height:     height,
		composite:  NewSurface(width, height),
	}
}

// Width returns the stack's output width.
func (ls *LayerStack) Width() int {
	return ls.width
}

// Height returns the stack's output height.
func (ls *LayerStack) Height() int {
	return ls.height
}

// NewLayer creates a layer sized to the stack, appends it on top, and
// returns it.
func (ls *LayerStack) NewLayer(name string) *Layer {
	layer := NewLayer(ls.width, ls.height)
	layer.Name = name
	ls.layers = append(ls.layers, layer)
	return layer
}

// NewLayerFromSurface wraps an existing surface in a layer, appends it on
// top, and returns it.
func (ls *LayerStack) NewLayerFromSurface(surface *Surface, name string) *Layer {
	layer := NewLayerFromSurface(surface)
	layer.Name = name
	ls.layers = append(ls.layers, layer)
	return layer
}

// Add appends an externally created layer on top.
func (ls *LayerStack) Add(layer *Layer) {
	if layer == nil {
		panic("glaze: cannot add nil layer")
	}
	ls.layers = append(ls.layers, layer)
}

// Remove detaches the first occurrence of layer from the stack.
// No-op if the layer is not a member.
func (ls *LayerStack) Remove(layer *Layer) {
	for i, l := range ls.layers {
		if l == layer {
			copy(ls.layers[i:], ls.layers[i+1:])
			ls.layers[len(ls.layers)-1] = nil
			ls.layers = ls.layers[:len(ls.layers)-1]
			return
		}
	}
}

// RemoveAt removes and returns the layer at the given index.
// Panics if the index is out of range.
func (ls *LayerStack) RemoveAt(index int) *Layer {
	if index < 0 || index >= len(ls.layers) {
		panic("glaze: layer index out of range")
	}
	layer := ls.layers[index]
	copy(ls.layers[index:], ls.layers[index+1:])
	ls.layers[len(ls.layers)-1] = nil
	ls.layers = ls.layers[:len(ls.layers)-1]
	return layer
}

// Clear removes all layers.
func (ls *LayerStack) Clear() {
	for i := range ls.layers {
		ls.layers[i] = nil
	}
	ls.layers = ls.layers[:0]
}

// Len returns the number of layers.
func (ls *LayerStack) Len() int {
	return len(ls.layers)
}

// Layer returns the layer at the given index, or nil when out of range.
func (ls *LayerStack) Layer(index int) *Layer {
	if index < 0 || index >= len(ls.layers) {
		return nil
	}
	return ls.layers[index]
}

// LayerByName returns the first layer with the given name, or nil.
func (ls *LayerStack) LayerByName(name string) *Layer {
	for _, l := range ls.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Layers returns the back-to-front layer list. The returned slice MUST
// NOT be mutated by the caller.
func (ls *LayerStack) Layers() []*Layer {
	return ls.layers
}

// --- Ordering ---

// MoveUp swaps the layer with the one directly above it.
func (ls *LayerStack) MoveUp(layer *Layer) {
	for i := 0; i < len(ls.layers)-1; i++ {
		if ls.layers[i] == layer {
			ls.layers[i], ls.layers[i+1] = ls.layers[i+1], ls.layers[i]
			return
		}
	}
}

// MoveDown swaps the layer with the one directly below it.
func (ls *LayerStack) MoveDown(layer *Layer) {
	for i := 1; i < len(ls.layers); i++ {
		if ls.layers[i] == layer {
			ls.layers[i], ls.layers[i-1] = ls.layers[i-1], ls.layers[i]
			return
		}
	}
}

// MoveToTop makes the layer composite last (frontmost).
func (ls *LayerStack) MoveToTop(layer *Layer) {
	ls.Remove(layer)
	ls.layers = append(ls.layers, layer)
}

// MoveToBottom makes the layer composite first (backmost).
func (ls *LayerStack) MoveToBottom(layer *Layer) {
	ls.Remove(layer)
	ls.layers = append([]*Layer{layer}, ls.layers...)
}

// SetIndex moves the layer to the given position in the back-to-front
// order, clamping to the list length.
func (ls *LayerStack) SetIndex(layer *Layer, index int) {
	ls.Remove(layer)
	if index > len(ls.layers) {
		index = len(ls.layers)
	}
	if index < 0 {
		index = 0
	}
	ls.layers = append(ls.layers, nil)
	copy(ls.layers[index+1:], ls.layers[index:])
	ls.layers[index] = layer
}

// --- Compositing ---

// Composite renders all layers into the stack's internal scratch surface
// and returns it. The returned surface is reused by the next Composite
// call; Clone it to keep a frame.
func (ls *LayerStack) Composite() *Surface {
	ls.CompositeTo(ls.composite)
	return ls.composite
}

// CompositeTo fully rebuilds dest from the background color and the layer
// list, back to front. Invisible, zero-opacity, and disposed layers are
// skipped. Frosted-glass layers blur the backdrop already in dest before
// their own pixels are drawn.
func (ls *LayerStack) CompositeTo(dest *Surface) {
	dest.Fill(ls.Background)

	for _, layer := range ls.layers {
		if layer.disposed || !layer.Visible || layer.opacity <= 0 {
			continue
		}

		src := layer.surface
		opacity := layer.opacity
		mode := layer.BlendMode

		scaledW := int(float64(src.width) * layer.ScaleX)
		scaledH := int(float64(src.height) * layer.ScaleY)

		// Center pivot: scaling keeps the layer's visual center fixed.
		drawX := layer.X + (src.width-scaledW)/2
		drawY := layer.Y + (src.height-scaledH)/2

		if layer.Material.IsFrostedGlass() && layer.Material.BlurRadius > 0.5 {
			ls.applyFrostedGlass(dest, drawX, drawY, scaledW, scaledH,
				src, layer.ScaleX, layer.ScaleY, layer.Material.BlurRadius)
		}

		if layer.ScaleX == 1 && layer.ScaleY == 1 {
			ls.compositeUnscaled(dest, src, layer.X, layer.Y, mode, opacity)
		} else {
			ls.compositeScaled(dest, src, drawX, drawY, scaledW, scaledH,
				layer.ScaleX, layer.ScaleY, mode, opacity)
		}
	}
}

// compositeUnscaled is the exact per-pixel fast path for untransformed
// layers.
func (ls *LayerStack) compositeUnscaled(dest, src *Surface, lx, ly int, mode BlendMode, opacity float64) {
	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			dx := lx + sx
			dy := ly + sy
			if dx < 0 || dx >= ls.width || dy < 0 || dy >= ls.height {
				continue
			}

			c := src.At(sx, sy)
			if c.A == 0 {
				continue
			}
			dest.Set(dx, dy, blendPixels(dest.At(dx, dy), c, mode, opacity))
		}
	}
}

// compositeScaled resamples the layer with a bilinear 4-neighbor lerp so
// anti-aliased edges survive scaling.
func (ls *LayerStack) compositeScaled(dest, src *Surface, drawX, drawY, scaledW, scaledH int, scaleX, scaleY float64, mode BlendMode, opacity float64) {
	for dy := 0; dy < scaledH; dy++ {
		for dx := 0; dx < scaledW; dx++ {
			px := drawX + dx
			py := drawY + dy
			if px < 0 || px >= ls.width || py < 0 || py >= ls.height {
				continue
			}

			c := sampleBilinear(src, float64(dx)/scaleX, float64(dy)/scaleY)
			if c.A == 0 {
				continue
			}
			dest.Set(px, py, blendPixels(dest.At(px, py), c, mode, opacity))
		}
	}
}

// Backdrop-blur masking thresholds: the blur fades in over source alpha
// 10..35 so soft shape edges don't produce a hard blur boundary.
const (
	frostAlphaThreshold = 10
	frostAlphaRamp      = 25
)

// applyFrostedGlass blurs the part of dest behind the layer rect and
// writes it back only where the layer's own alpha exceeds the threshold.
// The blurred region is padded by ceil(3*radius) per side to cover the
// Gaussian tail so edges match a full-frame blur. Destination alpha is
// left untouched.
func (ls *LayerStack) applyFrostedGlass(dest *Surface, x, y, w, h int, mask *Surface, scaleX, scaleY, blurRadius float64) {
	if w <= 0 || h <= 0 {
		return
	}
	padding := int(math.Ceil(blurRadius * 3))

	padded := NewSurface(w+padding*2, h+padding*2)
	for py := 0; py < padded.height; py++ {
		for px := 0; px < padded.width; px++ {
			padded.Set(px, py, dest.At(x-padding+px, y-padding+py))
		}
	}

	GaussianBlur(padded, blurRadius)

	startX := max(0, x)
	startY := max(0, y)
	endX := min(dest.width, x+w)
	endY := min(dest.height, y+h)

	for destY := startY; destY < endY; destY++ {
		for destX := startX; destX < endX; destX++ {
			localX := destX - x
			localY := destY - y

			srcX := clampInt(int(float64(localX)/scaleX), 0, mask.width-1)
			srcY := clampInt(int(float64(localY)/scaleY), 0, mask.height-1)

			maskAlpha := mask.At(srcX, srcY).A
			if maskAlpha < frostAlphaThreshold {
				continue
			}

			orig := dest.At(destX, destY)
			blurred := padded.At(localX+padding, localY+padding)

			t := clamp01(float64(int(maskAlpha)-frostAlphaThreshold) / frostAlphaRamp)

			dest.Set(destX, destY, Color{
				R: lerpU8(orig.R, blurred.R, t),
				G: lerpU8(orig.G, blurred.G, t),
				B: lerpU8(orig.B, blurred.B, t),
				A: orig.A,
			})
		}
	}
}
