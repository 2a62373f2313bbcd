package glaze

import (
	"math"
	"math/rand/v2"
)

// The effects in this file are stateless full-frame passes that mutate a
// surface in place. None of them allocate per pixel; the distortion
// effects snapshot the source once and inverse-map against the copy.
// Degenerate parameters (radius <= 0, zero-length gradient axis) degrade
// to a no-op or flat fill rather than erroring.

// --- Blur ---

// BoxBlur applies a separable box blur of the given radius: a horizontal
// then a vertical sliding-window average with clamp-to-edge sampling.
// radius <= 0 is a no-op.
func BoxBlur(s *Surface, radius int) {
	if radius <= 0 {
		return
	}
	horizontalBoxBlur(s, radius)
	verticalBoxBlur(s, radius)
}

func horizontalBoxBlur(s *Surface, radius int) {
	w := s.width
	h := s.height
	src := s.pixels
	temp := make([]byte, len(src))

	// Truncating integer divide: a uniform surface stays bit-identical.
	window := 2*radius + 1

	for y := 0; y < h; y++ {
		var rSum, gSum, bSum, aSum int

		// Prime the window; edge samples clamp to the nearest column.
		for i := -radius; i <= radius; i++ {
			x := clampInt(i, 0, w-1)
			o := (y*w + x) * 4
			rSum += int(src[o])
			gSum += int(src[o+1])
			bSum += int(src[o+2])
			aSum += int(src[o+3])
		}

		for x := 0; x < w; x++ {
			o := (y*w + x) * 4
			temp[o] = uint8(rSum / window)
			temp[o+1] = uint8(gSum / window)
			temp[o+2] = uint8(bSum / window)
			temp[o+3] = uint8(aSum / window)

			left := (y*w + max(0, x-radius)) * 4
			right := (y*w + min(w-1, x+radius+1)) * 4
			rSum += int(src[right]) - int(src[left])
			gSum += int(src[right+1]) - int(src[left+1])
			bSum += int(src[right+2]) - int(src[left+2])
			aSum += int(src[right+3]) - int(src[left+3])
		}
	}

	copy(src, temp)
}

func verticalBoxBlur(s *Surface, radius int) {
	w := s.width
	h := s.height
	src := s.pixels
	temp := make([]byte, len(src))

	window := 2*radius + 1

	for x := 0; x < w; x++ {
		var rSum, gSum, bSum, aSum int

		for i := -radius; i <= radius; i++ {
			y := clampInt(i, 0, h-1)
			o := (y*w + x) * 4
			rSum += int(src[o])
			gSum += int(src[o+1])
			bSum += int(src[o+2])
			aSum += int(src[o+3])
		}

		for y := 0; y < h; y++ {
			o := (y*w + x) * 4
			temp[o] = uint8(rSum / window)
			temp[o+1] = uint8(gSum / window)
			temp[o+2] = uint8(bSum / window)
			temp[o+3] = uint8(aSum / window)

			top := (max(0, y-radius)*w + x) * 4
			bottom := (min(h-1, y+radius+1)*w + x) * 4
			rSum += int(src[bottom]) - int(src[top])
			gSum += int(src[bottom+1]) - int(src[top+1])
			bSum += int(src[bottom+2]) - int(src[top+2])
			aSum += int(src[bottom+3]) - int(src[top+3])
		}
	}

	copy(src, temp)
}

// GaussianBlur approximates a Gaussian blur of the given sigma with
// repeated box blur passes. Pass count scales from 3 up to 6 with sigma;
// the per-pass radius is adjusted so the total variance stays equivalent.
// Cost therefore grows with pixel count, not radius. sigma <= 0 is a
// no-op.
func GaussianBlur(s *Surface, sigma float64) {
	if sigma <= 0 {
		return
	}

	passes := 3 + min(3, int(sigma/10))
	adjusted := sigma / math.Sqrt(float64(passes)/3)
	radius := max(1, int(math.Ceil(adjusted)))

	for i := 0; i < passes; i++ {
		BoxBlur(s, radius)
	}
}

// BlurRegion box-blurs only the given window of the surface.
func BlurRegion(s *Surface, x, y, w, h, radius int) {
	region := s.SubSurface(x, y, w, h)
	BoxBlur(region, radius)

	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			s.Set(x+px, y+py, region.At(px, py))
		}
	}
}

// FrostedGlass applies the fixed frosted-glass pipeline: Gaussian blur,
// then noise, then a saturation adjustment, in that order.
func FrostedGlass(s *Surface, blurRadius float64, noiseAmount, saturation float64) {
	GaussianBlur(s, blurRadius)
	Noise(s, noiseAmount)
	Saturation(s, saturation)
}

// FrostedGlassRegion applies the frosted-glass pipeline to a window of the
// surface with default noise and saturation.
func FrostedGlassRegion(s *Surface, x, y, w, h int, blurRadius float64) {
	region := s.SubSurface(x, y, w, h)
	FrostedGlass(region, blurRadius, 0.05, 1.2)

	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			s.Set(x+px, y+py, region.At(px, py))
		}
	}
}

// --- Distortion ---

// Displace offsets each pixel by the displacement map's R and G channels,
// read as signed [-1, 1] offsets scaled by strength.
func Displace(s *Surface, displacementMap *Surface, strength float64) {
	w := s.width
	h := s.height
	original := s.Clone()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := displacementMap.At(x, y)

			dx := (float64(d.R)/255 - 0.5) * 2 * strength
			dy := (float64(d.G)/255 - 0.5) * 2 * strength

			srcX := clampInt(int(float64(x)+dx), 0, w-1)
			srcY := clampInt(int(float64(y)+dy), 0, h-1)
			s.Set(x, y, original.At(srcX, srcY))
		}
	}
}

// WaveDistort shifts each row horizontally by
// amplitude * sin(frequency*y + phase).
func WaveDistort(s *Surface, amplitude, frequency, phase float64) {
	w := s.width
	h := s.height
	original := s.Clone()

	for y := 0; y < h; y++ {
		offset := amplitude * math.Sin(frequency*float64(y)+phase)
		for x := 0; x < w; x++ {
			srcX := clampInt(int(float64(x)+offset), 0, w-1)
			s.Set(x, y, original.At(srcX, y))
		}
	}
}

// Ripple displaces pixels radially from (centerX, centerY) by a sinusoid
// of the given amplitude and wavelength, sampling the source with
// bilinear interpolation.
func Ripple(s *Surface, centerX, centerY int, amplitude, wavelength, phase float64) {
	w := s.width
	h := s.height
	original := s.Clone()
	k := 2 * math.Pi / wavelength

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x - centerX)
			dy := float64(y - centerY)
			dist := math.Hypot(dx, dy)
			if dist <= 0 {
				continue
			}

			factor := amplitude * math.Sin(dist*k+phase)
			srcX := float64(x) + dx/dist*factor
			srcY := float64(y) + dy/dist*factor
			s.Set(x, y, sampleBilinear(original, srcX, srcY))
		}
	}
}

// sampleBilinear samples a surface at fractional coordinates with a
// 4-neighbor lerp, clamping to the valid range.
func sampleBilinear(s *Surface, fx, fy float64) Color {
	fx = math.Min(math.Max(fx, 0), float64(s.width-1))
	fy = math.Min(math.Max(fy, 0), float64(s.height-1))

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	x1 := min(x0+1, s.width-1)
	y1 := min(y0+1, s.height-1)

	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := s.At(x0, y0)
	c10 := s.At(x1, y0)
	c01 := s.At(x0, y1)
	c11 := s.At(x1, y1)

	lerp := func(a, b uint8, t float64) float64 {
		return float64(a) + t*(float64(b)-float64(a))
	}

	return Color{
		R: clampU8(lerp(c00.R, c10.R, tx) + ty*(lerp(c01.R, c11.R, tx)-lerp(c00.R, c10.R, tx))),
		G: clampU8(lerp(c00.G, c10.G, tx) + ty*(lerp(c01.G, c11.G, tx)-lerp(c00.G, c10.G, tx))),
		B: clampU8(lerp(c00.B, c10.B, tx) + ty*(lerp(c01.B, c11.B, tx)-lerp(c00.B, c10.B, tx))),
		A: clampU8(lerp(c00.A, c10.A, tx) + ty*(lerp(c01.A, c11.A, tx)-lerp(c00.A, c10.A, tx))),
	}
}

// --- Color adjustment ---

// Brightness adds amount*255 to every RGB channel, clamped.
func Brightness(s *Surface, amount float64) {
	adj := int(amount * 255)

	forEachPixel(s, func(c Color) Color {
		c.R = uint8(clampInt(int(c.R)+adj, 0, 255))
		c.G = uint8(clampInt(int(c.G)+adj, 0, 255))
		c.B = uint8(clampInt(int(c.B)+adj, 0, 255))
		return c
	})
}

// Contrast scales channel distance from the 128 pivot by the standard
// 259-factor curve. amount is in [-1, 1]; 0 is identity.
func Contrast(s *Surface, amount float64) {
	factor := (259 * (amount*255 + 255)) / (255 * (259 - amount*255))

	forEachPixel(s, func(c Color) Color {
		c.R = clampU8(factor*(float64(c.R)-128) + 128)
		c.G = clampU8(factor*(float64(c.G)-128) + 128)
		c.B = clampU8(factor*(float64(c.B)-128) + 128)
		return c
	})
}

// Saturation interpolates each channel toward the pixel's luma by amount:
// 0 is grayscale, 1 is identity, >1 oversaturates.
func Saturation(s *Surface, amount float64) {
	forEachPixel(s, func(c Color) Color {
		gray := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
		c.R = clampU8(gray + amount*(float64(c.R)-gray))
		c.G = clampU8(gray + amount*(float64(c.G)-gray))
		c.B = clampU8(gray + amount*(float64(c.B)-gray))
		return c
	})
}

// HueShift rotates hue by the given angle in degrees using the YIQ
// rotation matrix.
func HueShift(s *Surface, degrees float64) {
	rad := degrees * math.Pi / 180
	cosH := math.Cos(rad)
	sinH := math.Sin(rad)

	m := [3][3]float64{
		{0.299 + 0.701*cosH + 0.168*sinH, 0.587 - 0.587*cosH + 0.330*sinH, 0.114 - 0.114*cosH - 0.497*sinH},
		{0.299 - 0.299*cosH - 0.328*sinH, 0.587 + 0.413*cosH + 0.035*sinH, 0.114 - 0.114*cosH + 0.292*sinH},
		{0.299 - 0.300*cosH + 1.250*sinH, 0.587 - 0.588*cosH - 1.050*sinH, 0.114 + 0.886*cosH - 0.203*sinH},
	}

	forEachPixel(s, func(c Color) Color {
		r := float64(c.R)
		g := float64(c.G)
		b := float64(c.B)
		c.R = clampU8(m[0][0]*r + m[0][1]*g + m[0][2]*b)
		c.G = clampU8(m[1][0]*r + m[1][1]*g + m[1][2]*b)
		c.B = clampU8(m[2][0]*r + m[2][1]*g + m[2][2]*b)
		return c
	})
}

// Invert negates the RGB channels, leaving alpha untouched.
func Invert(s *Surface) {
	forEachPixel(s, func(c Color) Color {
		c.R = 255 - c.R
		c.G = 255 - c.G
		c.B = 255 - c.B
		return c
	})
}

// Grayscale removes all color.
func Grayscale(s *Surface) {
	Saturation(s, 0)
}

// Sepia lerps each pixel toward the classic sepia matrix by strength in
// [0, 1].
func Sepia(s *Surface, strength float64) {
	inv := 1 - strength

	forEachPixel(s, func(c Color) Color {
		r := float64(c.R)
		g := float64(c.G)
		b := float64(c.B)

		sr := math.Min(255, 0.393*r+0.769*g+0.189*b)
		sg := math.Min(255, 0.349*r+0.686*g+0.168*b)
		sb := math.Min(255, 0.272*r+0.534*g+0.131*b)

		c.R = uint8(r*inv + sr*strength)
		c.G = uint8(g*inv + sg*strength)
		c.B = uint8(b*inv + sb*strength)
		return c
	})
}

// CrossBlend mixes src into dst by alpha over the overlapping region,
// leaving dst's alpha channel alone.
func CrossBlend(dst, src *Surface, alpha float64) {
	w := min(dst.width, src.width)
	h := min(dst.height, src.height)
	inv := 1 - alpha

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := dst.At(x, y)
			c := src.At(x, y)
			d.R = uint8(float64(d.R)*inv + float64(c.R)*alpha)
			d.G = uint8(float64(d.G)*inv + float64(c.G)*alpha)
			d.B = uint8(float64(d.B)*inv + float64(c.B)*alpha)
			dst.Set(x, y, d)
		}
	}
}

// forEachPixel applies fn to every pixel in place.
func forEachPixel(s *Surface, fn func(Color) Color) {
	for i := 0; i < len(s.pixels); i += 4 {
		c := fn(Color{R: s.pixels[i], G: s.pixels[i+1], B: s.pixels[i+2], A: s.pixels[i+3]})
		s.pixels[i] = c.R
		s.pixels[i+1] = c.G
		s.pixels[i+2] = c.B
		s.pixels[i+3] = c.A
	}
}

// --- Gradients ---

// LinearGradient fills the surface with a gradient from c1 at (x1, y1) to
// c2 at (x2, y2), projecting each pixel onto the axis. A zero-length axis
// degrades to a flat c1 fill.
func LinearGradient(s *Surface, x1, y1, x2, y2 int, c1, c2 Color) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	lenSq := dx*dx + dy*dy

	if lenSq == 0 {
		s.Fill(c1)
		return
	}

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			t := clamp01((float64(x-x1)*dx + float64(y-y1)*dy) / lenSq)
			s.Set(x, y, Color{
				R: lerpU8(c1.R, c2.R, t),
				G: lerpU8(c1.G, c2.G, t),
				B: lerpU8(c1.B, c2.B, t),
				A: lerpU8(c1.A, c2.A, t),
			})
		}
	}
}

// RadialGradient fills the surface with a gradient from inner at the
// center point to outer at the given radius and beyond.
func RadialGradient(s *Surface, cx, cy, radius int, inner, outer Color) {
	r := float64(radius)

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			dist := math.Hypot(float64(x-cx), float64(y-cy))
			t := math.Min(dist/r, 1)
			s.Set(x, y, Color{
				R: lerpU8(inner.R, outer.R, t),
				G: lerpU8(inner.G, outer.G, t),
				B: lerpU8(inner.B, outer.B, t),
				A: lerpU8(inner.A, outer.A, t),
			})
		}
	}
}

// --- Noise ---

// Noise adds an independent uniform delta to each RGB channel of every
// pixel, scaled by amount in [0, 1].
func Noise(s *Surface, amount float64) {
	intensity := int(amount * 255)
	delta := func() int {
		return (rand.IntN(256) - 128) * intensity / 127
	}

	forEachPixel(s, func(c Color) Color {
		c.R = uint8(clampInt(int(c.R)+delta(), 0, 255))
		c.G = uint8(clampInt(int(c.G)+delta(), 0, 255))
		c.B = uint8(clampInt(int(c.B)+delta(), 0, 255))
		return c
	})
}

const perlinGridSize = 64

// PerlinNoise overwrites the surface with grayscale gradient noise:
// multiple octaves over a periodic 64x64 random-gradient grid with
// smoothstep fade, amplitude halved and frequency doubled per octave.
func PerlinNoise(s *Surface, scale float64, octaves int) {
	gradients := make([][2]float64, perlinGridSize*perlinGridSize)
	for i := range gradients {
		angle := rand.Float64() * 2 * math.Pi
		gradients[i][0] = math.Cos(angle)
		gradients[i][1] = math.Sin(angle)
	}

	dotGridGradient := func(ix, iy int, x, y float64) float64 {
		dx := x - float64(ix)
		dy := y - float64(iy)
		idx := (iy%perlinGridSize)*perlinGridSize + ix%perlinGridSize
		return dx*gradients[idx][0] + dy*gradients[idx][1]
	}

	lerp := func(a, b, t float64) float64 { return a + t*(b-a) }
	fade := func(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }

	w := float64(s.width)
	h := float64(s.height)

	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			var value, maxValue float64
			amplitude := 1.0
			frequency := 1.0

			for o := 0; o < octaves; o++ {
				nx := float64(x) * scale * frequency / w
				ny := float64(y) * scale * frequency / h

				x0 := int(math.Floor(nx))
				y0 := int(math.Floor(ny))

				sx := fade(nx - float64(x0))
				sy := fade(ny - float64(y0))

				n00 := dotGridGradient(x0, y0, nx, ny)
				n10 := dotGridGradient(x0+1, y0, nx, ny)
				n01 := dotGridGradient(x0, y0+1, nx, ny)
				n11 := dotGridGradient(x0+1, y0+1, nx, ny)

				value += lerp(lerp(n00, n10, sx), lerp(n01, n11, sx), sy) * amplitude
				maxValue += amplitude
				amplitude *= 0.5
				frequency *= 2
			}

			gray := clampU8((value/maxValue + 1) * 0.5 * 255)
			s.Set(x, y, Color{R: gray, G: gray, B: gray, A: 255})
		}
	}
}

// --- Shadow ---

// DropShadow renders src with a blurred shadow of the given color at an
// offset onto a new, larger transparent surface: the shadow is stamped
// through the source's alpha, blurred, then the original is blitted on
// top. The returned surface is sized to contain both.
func DropShadow(src *Surface, offsetX, offsetY, blurRadius int, shadow Color) *Surface {
	w := src.width + abs(offsetX) + blurRadius*2
	h := src.height + abs(offsetY) + blurRadius*2
	result := NewSurface(w, h)

	shadowX := max(0, offsetX) + blurRadius
	shadowY := max(0, offsetY) + blurRadius

	for y := 0; y < src.height; y++ {
		for x := 0; x < src.width; x++ {
			a := src.At(x, y).A
			if a > 0 {
				result.Set(shadowX+x, shadowY+y, shadow.WithAlpha(uint8(int(shadow.A)*int(a)/255)))
			}
		}
	}

	GaussianBlur(result, float64(blurRadius))

	result.Blit(src, max(0, -offsetX)+blurRadius, max(0, -offsetY)+blurRadius)
	return result
}
