package glaze

import "math"

// Rounded and superelliptical shapes are rendered from signed distance
// functions evaluated per candidate pixel. Coverage rule shared by all of
// them: d <= -0.5 is fully inside; the band -0.5 < d < 0.5 gets
// alpha = 0.5 - d, exactly one device pixel of anti-aliasing.

// FillRoundRect fills a rectangle with rounded corners. The radius is
// clamped to half the smaller dimension; radius <= 0 degenerates to
// [Surface.FillRect].
func (s *Surface) FillRoundRect(x, y, w, h, radius int, c Color) {
	radius = clampInt(radius, 0, min(w, h)/2)
	if radius <= 0 {
		s.FillRect(x, y, w, h, c)
		return
	}

	r := float64(radius)
	halfW := float64(w) * 0.5
	halfH := float64(h) * 0.5
	cx := float64(x) + halfW
	cy := float64(y) + halfH
	boxW := halfW - r
	boxH := halfH - r

	minX := max(0, x-1)
	maxX := min(s.width, x+w+1)
	minY := max(0, y-1)
	maxY := min(s.height, y+h+1)

	for py := minY; py < maxY; py++ {
		for px := minX; px < maxX; px++ {
			qx := math.Abs(float64(px)-cx+0.5) - boxW
			qy := math.Abs(float64(py)-cy+0.5) - boxH

			// sdRoundedBox: min(max(q,0)) + length(max(q,0)) - r.
			d := math.Min(math.Max(qx, qy), 0) +
				math.Hypot(math.Max(qx, 0), math.Max(qy, 0)) - r

			if d <= -0.5 {
				s.BlendPixel(px, py, c)
			} else if s.Antialias && d < 0.5 {
				s.BlendPixel(px, py, c.WithAlpha(uint8(float64(c.A)*clamp01(0.5-d))))
			} else if !s.Antialias && d <= 0 {
				s.BlendPixel(px, py, c)
			}
		}
	}
}

// DrawRoundRect strokes a rectangle outline with rounded corners:
// four edge lines plus four midpoint-circle quadrant arcs.
func (s *Surface) DrawRoundRect(x, y, w, h, radius int, c Color) {
	radius = clampInt(radius, 0, min(w, h)/2)
	if radius <= 0 {
		s.DrawRect(x, y, w, h, c)
		return
	}

	s.DrawLine(x+radius, y, x+w-radius, y, c)
	s.DrawLine(x+radius, y+h-1, x+w-radius, y+h-1, c)
	s.DrawLine(x, y+radius, x, y+h-radius, c)
	s.DrawLine(x+w-1, y+radius, x+w-1, y+h-radius, c)

	s.drawCornerArc(x+w-radius-1, y+radius, radius, 0, c)     // top right
	s.drawCornerArc(x+w-radius-1, y+h-radius-1, radius, 1, c) // bottom right
	s.drawCornerArc(x+radius, y+h-radius-1, radius, 2, c)     // bottom left
	s.drawCornerArc(x+radius, y+radius, radius, 3, c)         // top left
}

// drawCornerArc plots one quadrant of a midpoint circle centered at
// (cx, cy). Quadrants: 0=TR, 1=BR, 2=BL, 3=TL.
func (s *Surface) drawCornerArc(cx, cy, r, quadrant int, c Color) {
	plot := func(px, py int) {
		switch quadrant {
		case 0:
			s.BlendPixel(cx+px, cy-py, c)
		case 1:
			s.BlendPixel(cx+px, cy+py, c)
		case 2:
			s.BlendPixel(cx-px, cy+py, c)
		case 3:
			s.BlendPixel(cx-px, cy-py, c)
		}
	}

	x := 0
	y := r
	d := 3 - 2*r

	for y >= x {
		plot(x, y)
		plot(y, x)

		if d < 0 {
			d += 4*x + 6
		} else {
			d += 4*(x-y) + 10
			y--
		}
		x++
	}
}

// FillPill fills a pill (stadium) shape: a round rect whose radius is half
// the smaller dimension.
func (s *Surface) FillPill(x, y, w, h int, c Color) {
	s.FillRoundRect(x, y, w, h, min(w, h)/2, c)
}

// DrawPill strokes a pill outline.
func (s *Surface) DrawPill(x, y, w, h int, c Color) {
	s.DrawRoundRect(x, y, w, h, min(w, h)/2, c)
}

// FillSquircle fills a superellipse |dx/a|^4 + |dy/b|^4 <= 1 inscribed in
// the rectangle. With Antialias set, the signed distance is approximated
// as (P-1)/|grad P| using the analytic gradient; otherwise it uses an
// aliased scanline solve of the implicit function.
func (s *Surface) FillSquircle(x, y, w, h int, c Color) {
	a := float64(w) * 0.5
	b := float64(h) * 0.5
	if a <= 0 || b <= 0 {
		return
	}
	cx := float64(x) + a
	cy := float64(y) + b

	if s.Antialias {
		minX := max(0, x-1)
		maxX := min(s.width, x+w+1)
		minY := max(0, y-1)
		maxY := min(s.height, y+h+1)

		for py := minY; py < maxY; py++ {
			for px := minX; px < maxX; px++ {
				dx := math.Abs(float64(px) - cx + 0.5)
				dy := math.Abs(float64(py) - cy + 0.5)

				xt := dx / a
				yt := dy / b
				p := xt*xt*xt*xt + yt*yt*yt*yt

				gx := 4 * (xt * xt * xt) / a
				gy := 4 * (yt * yt * yt) / b
				d := (p - 1) / (math.Hypot(gx, gy) + 1e-6)

				if d <= -0.5 {
					s.BlendPixel(px, py, c)
				} else if d < 0.5 {
					alpha := clamp01(0.5 - d)
					if alpha > 0 {
						s.BlendPixel(px, py, c.WithAlpha(uint8(float64(c.A)*alpha)))
					}
				}
			}
		}
		return
	}

	minY := max(0, y)
	maxY := min(s.height, y+h)
	minX := max(0, x)
	maxX := min(s.width, x+w)

	for py := minY; py < maxY; py++ {
		dy := math.Abs(float64(py) - cy + 0.5)
		if dy >= b {
			continue
		}

		yt := dy / b
		yt4 := math.Min(yt*yt*yt*yt, 1)
		dx := a * math.Pow(1-yt4, 0.25)

		startX := clampInt(int(math.Floor(cx-dx)), minX, maxX)
		endX := clampInt(int(math.Ceil(cx+dx)), minX, maxX)
		for px := startX; px < endX; px++ {
			s.Set(px, py, c)
		}
	}
}

// DrawSquircle strokes a one-pixel superellipse outline using the same
// gradient-normalized distance approximation.
func (s *Surface) DrawSquircle(x, y, w, h int, c Color) {
	a := float64(w) * 0.5
	b := float64(h) * 0.5
	if a <= 0 || b <= 0 {
		return
	}
	cx := float64(x) + a
	cy := float64(y) + b

	for py := y - 1; py < y+h+1; py++ {
		for px := x - 1; px < x+w+1; px++ {
			dx := math.Abs(float64(px) - cx + 0.5)
			dy := math.Abs(float64(py) - cy + 0.5)

			xt := dx / a
			yt := dy / b
			p := xt*xt*xt*xt + yt*yt*yt*yt

			gx := 4 * (xt * xt * xt) / a
			gy := 4 * (yt * yt * yt) / b
			dist := math.Abs(p-1) / (math.Hypot(gx, gy) + 1e-6)

			if dist < 1 {
				s.BlendPixel(px, py, c.WithAlpha(uint8(float64(c.A)*(1-dist))))
			}
		}
	}
}
