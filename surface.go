package glaze

// Surface is an owned 2D RGBA8 pixel buffer. Pixels are stored row-major,
// 4 bytes per pixel, with no row padding (pitch = width*4).
//
// Out-of-bounds reads return [Transparent] and out-of-bounds writes are
// silent no-ops, so callers never need to pre-clip coordinates. Surfaces
// are not safe for concurrent mutation; one render goroutine per frame is
// the intended usage.
type Surface struct {
	// Antialias selects the anti-aliased implementations of the drawing
	// primitives (Wu lines, SDF shape coverage). It replaces the
	// process-wide setting some engines use so that rendering stays
	// deterministic per surface. Default true.
	Antialias bool

	width    int
	height   int
	pixels   []byte
	disposed bool
}

// NewSurface creates a transparent surface of the given size.
// Panics if width or height is not positive; this is the only invalid
// construction state in the package.
func NewSurface(width, height int) *Surface {
	if width <= 0 || height <= 0 {
		panic("glaze: surface dimensions must be positive")
	}
	return &Surface{
		Antialias: true,
		width:     width,
		height:    height,
		pixels:    make([]byte, width*height*4),
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Data returns the raw pixel buffer: tightly packed row-major RGBA8.
// This is the byte layout presentation backends consume directly
// (e.g. ebiten's Image.WritePixels).
func (s *Surface) Data() []byte {
	return s.pixels
}

// Pitch returns the byte stride of one pixel row.
func (s *Surface) Pitch() int {
	return s.width * 4
}

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

func (s *Surface) offset(x, y int) int {
	return (y*s.width + x) * 4
}

// At returns the pixel at (x, y), or [Transparent] when out of bounds.
func (s *Surface) At(x, y int) Color {
	if !s.inBounds(x, y) {
		return Transparent
	}
	i := s.offset(x, y)
	return Color{R: s.pixels[i], G: s.pixels[i+1], B: s.pixels[i+2], A: s.pixels[i+3]}
}

// Set writes the pixel at (x, y). Out-of-bounds writes are no-ops.
func (s *Surface) Set(x, y int, c Color) {
	if !s.inBounds(x, y) {
		return
	}
	i := s.offset(x, y)
	s.pixels[i] = c.R
	s.pixels[i+1] = c.G
	s.pixels[i+2] = c.B
	s.pixels[i+3] = c.A
}

// BlendPixel source-over composites c onto the pixel at (x, y).
// A fully transparent source is a no-op; a fully opaque source degenerates
// to [Surface.Set].
func (s *Surface) BlendPixel(x, y int, c Color) {
	if !s.inBounds(x, y) || c.A == 0 {
		return
	}
	if c.A == 255 {
		s.Set(x, y, c)
		return
	}

	dst := s.At(x, y)
	alpha := float64(c.A) / 255
	inv := 1 - alpha

	s.Set(x, y, Color{
		R: uint8(float64(c.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(c.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(c.B)*alpha + float64(dst.B)*inv),
		A: uint8(min(255, float64(c.A)+float64(dst.A)*inv)),
	})
}

// plotAA blends c at (x, y) with its alpha scaled by brightness in [0, 1].
// Shared by the anti-aliased primitives.
func (s *Surface) plotAA(x, y int, c Color, brightness float64) {
	if brightness <= 0 {
		return
	}
	if brightness > 1 {
		brightness = 1
	}
	s.BlendPixel(x, y, c.WithAlpha(uint8(float64(c.A)*brightness)))
}

// Fill sets every pixel to c.
func (s *Surface) Fill(c Color) {
	for i := 0; i < len(s.pixels); i += 4 {
		s.pixels[i] = c.R
		s.pixels[i+1] = c.G
		s.pixels[i+2] = c.B
		s.pixels[i+3] = c.A
	}
}

// Clear resets every pixel to transparent black.
func (s *Surface) Clear() {
	clear(s.pixels)
}

// FillRect fills the half-open rectangle [x, x+w) x [y, y+h), clipped to
// the surface.
func (s *Surface) FillRect(x, y, w, h int, c Color) {
	x1 := max(0, x)
	y1 := max(0, y)
	x2 := min(s.width, x+w)
	y2 := min(s.height, y+h)

	for py := y1; py < y2; py++ {
		i := s.offset(x1, py)
		for px := x1; px < x2; px++ {
			s.pixels[i] = c.R
			s.pixels[i+1] = c.G
			s.pixels[i+2] = c.B
			s.pixels[i+3] = c.A
			i += 4
		}
	}
}

// Clone returns a deep copy of the surface.
func (s *Surface) Clone() *Surface {
	dup := NewSurface(s.width, s.height)
	dup.Antialias = s.Antialias
	copy(dup.pixels, s.pixels)
	return dup
}

// SubSurface returns a deep copy of the w x h window at (x, y). Parts of
// the window outside the surface read as transparent black.
func (s *Surface) SubSurface(x, y, w, h int) *Surface {
	sub := NewSurface(w, h)
	sub.Antialias = s.Antialias
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			sub.Set(px, py, s.At(x+px, y+py))
		}
	}
	return sub
}

// Resize discards the pixel contents and reallocates the buffer at the
// given dimensions. Panics on non-positive dimensions.
func (s *Surface) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		panic("glaze: surface dimensions must be positive")
	}
	s.width = width
	s.height = height
	s.pixels = make([]byte, width*height*4)
}

// Dispose releases the pixel buffer. The surface must not be used after
// disposal; [TweenGroup] checks this flag to stop animating dead layers.
func (s *Surface) Dispose() {
	s.disposed = true
	s.pixels = nil
	// Zero dimensions so every pixel operation bounds-checks to a no-op.
	s.width = 0
	s.height = 0
}

// IsDisposed reports whether Dispose has been called.
func (s *Surface) IsDisposed() bool {
	return s.disposed
}

// --- Blitting ---

// Blit copies src onto this surface at (destX, destY) with per-pixel
// source-over blending. Fully opaque source pixels are copied directly.
func (s *Surface) Blit(src *Surface, destX, destY int) {
	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			dx := destX + sx
			dy := destY + sy
			if !s.inBounds(dx, dy) {
				continue
			}

			c := src.At(sx, sy)
			if c.A == 255 {
				s.Set(dx, dy, c)
			} else if c.A > 0 {
				s.BlendPixel(dx, dy, c)
			}
		}
	}
}

// BlitScaled draws src into a destW x destH rectangle at (destX, destY)
// using nearest-neighbor sampling.
func (s *Surface) BlitScaled(src *Surface, destX, destY, destW, destH int) {
	if destW <= 0 || destH <= 0 {
		return
	}
	scaleX := float64(src.width) / float64(destW)
	scaleY := float64(src.height) / float64(destH)

	for dy := 0; dy < destH; dy++ {
		for dx := 0; dx < destW; dx++ {
			px := destX + dx
			py := destY + dy
			if !s.inBounds(px, py) {
				continue
			}

			c := src.At(int(float64(dx)*scaleX), int(float64(dy)*scaleY))
			if c.A == 255 {
				s.Set(px, py, c)
			} else if c.A > 0 {
				s.BlendPixel(px, py, c)
			}
		}
	}
}

// BlitAlpha blends src onto this surface with every source alpha scaled by
// alpha in [0, 1].
func (s *Surface) BlitAlpha(src *Surface, destX, destY int, alpha float64) {
	alpha = clamp01(alpha)

	for sy := 0; sy < src.height; sy++ {
		for sx := 0; sx < src.width; sx++ {
			dx := destX + sx
			dy := destY + sy
			if !s.inBounds(dx, dy) {
				continue
			}

			c := src.At(sx, sy)
			s.BlendPixel(dx, dy, c.WithAlpha(uint8(float64(c.A)*alpha)))
		}
	}
}
