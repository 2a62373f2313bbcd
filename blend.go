package glaze

import "math"

// BlendMode selects the per-channel formula used when compositing a layer
// over its backdrop. The set is closed; dispatch is a plain switch.
type BlendMode uint8

const (
	BlendNormal     BlendMode = iota // source replaces backdrop (alpha-weighted)
	BlendMultiply                    // src * dst; only darkens
	BlendScreen                      // 1 - (1-src)*(1-dst); only brightens
	BlendOverlay                     // multiply below 0.5 backdrop, screen above
	BlendAdd                         // clamped additive
	BlendSubtract                    // clamped subtractive
	BlendDifference                  // absolute difference
	BlendColorDodge                  // dst / (1-src)
	BlendColorBurn                   // 1 - (1-dst)/src
)

// String returns the mode name for debugging output.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "Normal"
	case BlendMultiply:
		return "Multiply"
	case BlendScreen:
		return "Screen"
	case BlendOverlay:
		return "Overlay"
	case BlendAdd:
		return "Add"
	case BlendSubtract:
		return "Subtract"
	case BlendDifference:
		return "Difference"
	case BlendColorDodge:
		return "ColorDodge"
	case BlendColorBurn:
		return "ColorBurn"
	default:
		return "Unknown"
	}
}

// blendPixels combines top over bottom with the given mode and layer
// opacity. Channel math happens on [0, 1] floats; the blended color is
// then source-over composited with effective alpha
// (top.A/255)*opacity, and destination alpha accumulates as
// alpha + bottomAlpha*(1-alpha).
func blendPixels(bottom, top Color, mode BlendMode, opacity float64) Color {
	alpha := float64(top.A) / 255 * opacity
	inv := 1 - alpha

	br := float64(bottom.R) / 255
	bg := float64(bottom.G) / 255
	bb := float64(bottom.B) / 255
	tr := float64(top.R) / 255
	tg := float64(top.G) / 255
	tb := float64(top.B) / 255

	var rr, rg, rb float64

	switch mode {
	case BlendMultiply:
		rr = br * tr
		rg = bg * tg
		rb = bb * tb

	case BlendScreen:
		rr = 1 - (1-br)*(1-tr)
		rg = 1 - (1-bg)*(1-tg)
		rb = 1 - (1-bb)*(1-tb)

	case BlendOverlay:
		rr = overlayChannel(br, tr)
		rg = overlayChannel(bg, tg)
		rb = overlayChannel(bb, tb)

	case BlendAdd:
		rr = math.Min(1, br+tr)
		rg = math.Min(1, bg+tg)
		rb = math.Min(1, bb+tb)

	case BlendSubtract:
		rr = math.Max(0, br-tr)
		rg = math.Max(0, bg-tg)
		rb = math.Max(0, bb-tb)

	case BlendDifference:
		rr = math.Abs(br - tr)
		rg = math.Abs(bg - tg)
		rb = math.Abs(bb - tb)

	case BlendColorDodge:
		rr = dodgeChannel(br, tr)
		rg = dodgeChannel(bg, tg)
		rb = dodgeChannel(bb, tb)

	case BlendColorBurn:
		rr = burnChannel(br, tr)
		rg = burnChannel(bg, tg)
		rb = burnChannel(bb, tb)

	default: // BlendNormal
		rr = tr
		rg = tg
		rb = tb
	}

	return Color{
		R: clampU8((rr*alpha + br*inv) * 255),
		G: clampU8((rg*alpha + bg*inv) * 255),
		B: clampU8((rb*alpha + bb*inv) * 255),
		A: clampU8((alpha + float64(bottom.A)/255*inv) * 255),
	}
}

func overlayChannel(b, t float64) float64 {
	if b < 0.5 {
		return 2 * b * t
	}
	return 1 - 2*(1-b)*(1-t)
}

func dodgeChannel(b, t float64) float64 {
	if t >= 1 {
		return 1
	}
	return math.Min(1, b/(1-t))
}

func burnChannel(b, t float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Max(0, 1-(1-b)/t)
}
