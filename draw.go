package glaze

import "math"

// DrawLine draws a line from (x1, y1) to (x2, y2), anti-aliased when the
// surface's Antialias flag is set.
func (s *Surface) DrawLine(x1, y1, x2, y2 int, c Color) {
	if s.Antialias {
		s.drawLineAA(x1, y1, x2, y2, c)
	} else {
		s.drawLineNoAA(x1, y1, x2, y2, c)
	}
}

// DrawCircle strokes a circle of the given radius centered at (cx, cy).
func (s *Surface) DrawCircle(cx, cy, radius int, c Color) {
	if s.Antialias {
		s.drawCircleAA(cx, cy, radius, c)
	} else {
		s.drawCircleNoAA(cx, cy, radius, c)
	}
}

// FillCircle fills a circle of the given radius centered at (cx, cy).
func (s *Surface) FillCircle(cx, cy, radius int, c Color) {
	if s.Antialias {
		s.fillCircleAA(cx, cy, radius, c)
	} else {
		s.fillCircleNoAA(cx, cy, radius, c)
	}
}

// DrawRect strokes the rectangle outline.
func (s *Surface) DrawRect(x, y, w, h int, c Color) {
	if s.Antialias {
		s.drawLineAA(x, y, x+w-1, y, c)
		s.drawLineAA(x, y+h-1, x+w-1, y+h-1, c)
		s.drawLineAA(x, y, x, y+h-1, c)
		s.drawLineAA(x+w-1, y, x+w-1, y+h-1, c)
		return
	}
	for px := x; px < x+w; px++ {
		s.Set(px, y, c)
		s.Set(px, y+h-1, c)
	}
	for py := y; py < y+h; py++ {
		s.Set(x, py, c)
		s.Set(x+w-1, py, c)
	}
}

// drawLineNoAA is Bresenham's algorithm.
func (s *Surface) drawLineNoAA(x1, y1, x2, y2 int, c Color) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 >= x2 {
		sx = -1
	}
	sy := 1
	if y1 >= y2 {
		sy = -1
	}
	err := dx - dy

	for {
		s.Set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawLineAA is Xiaolin Wu's algorithm: two pixels per column (or row for
// steep lines) with coverage split by the fractional intersection.
func (s *Surface) drawLineAA(x1, y1, x2, y2 int, c Color) {
	fpart := func(v float64) float64 { return v - math.Floor(v) }
	rfpart := func(v float64) float64 { return 1 - fpart(v) }

	steep := abs(y2-y1) > abs(x2-x1)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}
	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	// First endpoint.
	xend := math.Round(float64(x1))
	yend := float64(y1) + gradient*(xend-float64(x1))
	xgap := rfpart(float64(x1) + 0.5)
	xpxl1 := int(xend)
	ypxl1 := int(math.Floor(yend))

	if steep {
		s.plotAA(ypxl1, xpxl1, c, rfpart(yend)*xgap)
		s.plotAA(ypxl1+1, xpxl1, c, fpart(yend)*xgap)
	} else {
		s.plotAA(xpxl1, ypxl1, c, rfpart(yend)*xgap)
		s.plotAA(xpxl1, ypxl1+1, c, fpart(yend)*xgap)
	}

	intery := yend + gradient

	// Second endpoint.
	xend = math.Round(float64(x2))
	yend = float64(y2) + gradient*(xend-float64(x2))
	xgap = fpart(float64(x2) + 0.5)
	xpxl2 := int(xend)
	ypxl2 := int(math.Floor(yend))

	if steep {
		s.plotAA(ypxl2, xpxl2, c, rfpart(yend)*xgap)
		s.plotAA(ypxl2+1, xpxl2, c, fpart(yend)*xgap)
	} else {
		s.plotAA(xpxl2, ypxl2, c, rfpart(yend)*xgap)
		s.plotAA(xpxl2, ypxl2+1, c, fpart(yend)*xgap)
	}

	for x := xpxl1 + 1; x < xpxl2; x++ {
		ipart := int(math.Floor(intery))
		f := fpart(intery)

		if steep {
			s.plotAA(ipart, x, c, 1-f)
			s.plotAA(ipart+1, x, c, f)
		} else {
			s.plotAA(x, ipart, c, 1-f)
			s.plotAA(x, ipart+1, c, f)
		}
		intery += gradient
	}
}

// drawCircleNoAA is the midpoint algorithm with 8-way symmetry.
func (s *Surface) drawCircleNoAA(cx, cy, radius int, c Color) {
	x := radius
	y := 0
	err := 0

	for x >= y {
		s.Set(cx+x, cy+y, c)
		s.Set(cx+y, cy+x, c)
		s.Set(cx-y, cy+x, c)
		s.Set(cx-x, cy+y, c)
		s.Set(cx-x, cy-y, c)
		s.Set(cx-y, cy-x, c)
		s.Set(cx+y, cy-x, c)
		s.Set(cx+x, cy-y, c)

		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

func (s *Surface) fillCircleNoAA(cx, cy, radius int, c Color) {
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= radius*radius {
				s.Set(cx+x, cy+y, c)
			}
		}
	}
}

// drawCircleAA strokes with a per-pixel distance-from-center alpha ramp.
func (s *Surface) drawCircleAA(cx, cy, radius int, c Color) {
	r := float64(radius)

	for y := -radius - 1; y <= radius+1; y++ {
		for x := -radius - 1; x <= radius+1; x++ {
			dist := math.Sqrt(float64(x*x + y*y))
			diff := math.Abs(dist - r)
			if diff < 1.5 {
				s.plotAA(cx+x, cy+y, c, clamp01(1-diff))
			}
		}
	}
}

// fillCircleAA fills with full opacity inside r-1 and a linear alpha ramp
// over the band r-1..r+1.
func (s *Surface) fillCircleAA(cx, cy, radius int, c Color) {
	r := float64(radius)

	for y := -radius - 1; y <= radius+1; y++ {
		for x := -radius - 1; x <= radius+1; x++ {
			dist := math.Sqrt(float64(x*x + y*y))
			switch {
			case dist <= r-1:
				s.BlendPixel(cx+x, cy+y, c)
			case dist <= r+1:
				s.plotAA(cx+x, cy+y, c, clamp01((r+1-dist)/2))
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
