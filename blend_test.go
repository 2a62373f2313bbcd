package glaze

import "testing"

func TestBlendModeString(t *testing.T) {
	if BlendNormal.String() != "Normal" {
		t.Errorf("BlendNormal = %q", BlendNormal.String())
	}
	if BlendColorDodge.String() != "ColorDodge" {
		t.Errorf("BlendColorDodge = %q", BlendColorDodge.String())
	}
	if BlendMode(200).String() != "Unknown" {
		t.Errorf("unknown mode = %q", BlendMode(200).String())
	}
}

func TestBlendNormalFullOpacityReplacesBottom(t *testing.T) {
	bottom := RGB(10, 20, 30)
	top := RGB(200, 100, 50)

	got := blendPixels(bottom, top, BlendNormal, 1.0)
	if got.R != 200 || got.G != 100 || got.B != 50 || got.A != 255 {
		t.Errorf("got %v, want top color", got)
	}
}

func TestBlendNormalHalfOpacity(t *testing.T) {
	bottom := RGB(0, 0, 0)
	top := RGB(255, 0, 0)

	got := blendPixels(bottom, top, BlendNormal, 0.5)
	if got.R < 126 || got.R > 129 {
		t.Errorf("R = %d, want ~127", got.R)
	}
	if got.G != 0 || got.B != 0 {
		t.Errorf("G,B = %d,%d, want 0,0", got.G, got.B)
	}
	if got.A != 255 {
		t.Errorf("A = %d, want 255 over opaque bottom", got.A)
	}
}

func TestBlendZeroOpacityKeepsBottom(t *testing.T) {
	bottom := RGB(10, 20, 30)
	top := RGB(255, 255, 255)

	for mode := BlendNormal; mode <= BlendColorBurn; mode++ {
		got := blendPixels(bottom, top, mode, 0)
		if got != bottom {
			t.Errorf("mode %v at opacity 0: got %v, want bottom", mode, got)
		}
	}
}

func TestBlendMultiply(t *testing.T) {
	bottom := RGB(128, 255, 0)
	top := RGB(128, 128, 255)

	got := blendPixels(bottom, top, BlendMultiply, 1.0)
	// 0.502*0.502 = 0.252 -> ~64; 1*0.502 -> ~128; 0*1 -> 0
	if got.R < 63 || got.R > 65 {
		t.Errorf("R = %d, want ~64", got.R)
	}
	if got.G < 127 || got.G > 129 {
		t.Errorf("G = %d, want ~128", got.G)
	}
	if got.B != 0 {
		t.Errorf("B = %d, want 0", got.B)
	}
}

func TestBlendScreenNeverDarkens(t *testing.T) {
	bottom := RGB(100, 150, 200)
	top := RGB(50, 50, 50)

	got := blendPixels(bottom, top, BlendScreen, 1.0)
	if got.R < bottom.R || got.G < bottom.G || got.B < bottom.B {
		t.Errorf("screen darkened: %v under %v -> %v", bottom, top, got)
	}
}

func TestBlendAddSaturates(t *testing.T) {
	got := blendPixels(RGB(200, 0, 0), RGB(200, 0, 0), BlendAdd, 1.0)
	if got.R != 255 {
		t.Errorf("R = %d, want 255 (clamped)", got.R)
	}
}

func TestBlendSubtractFloorsAtZero(t *testing.T) {
	got := blendPixels(RGB(50, 100, 0), RGB(100, 30, 10), BlendSubtract, 1.0)
	if got.R != 0 {
		t.Errorf("R = %d, want 0 (floored)", got.R)
	}
	if got.G < 69 || got.G > 71 {
		t.Errorf("G = %d, want ~70", got.G)
	}
}

func TestBlendDifferenceSymmetric(t *testing.T) {
	a := RGB(200, 30, 100)
	b := RGB(60, 180, 100)

	ab := blendPixels(a, b, BlendDifference, 1.0)
	ba := blendPixels(b, a, BlendDifference, 1.0)
	if ab.R != ba.R || ab.G != ba.G || ab.B != ba.B {
		t.Errorf("difference not symmetric: %v vs %v", ab, ba)
	}
	if ab.R < 139 || ab.R > 141 {
		t.Errorf("R = %d, want ~140", ab.R)
	}
	if ab.B != 0 {
		t.Errorf("B = %d, want 0 (equal channels cancel)", ab.B)
	}
}

func TestBlendOverlayBranches(t *testing.T) {
	// Dark bottom multiplies, light bottom screens.
	dark := blendPixels(RGB(64, 64, 64), RGB(128, 128, 128), BlendOverlay, 1.0)
	if dark.R >= 128 {
		t.Errorf("dark overlay R = %d, want < 128", dark.R)
	}
	light := blendPixels(RGB(192, 192, 192), RGB(128, 128, 128), BlendOverlay, 1.0)
	if light.R <= 128 {
		t.Errorf("light overlay R = %d, want > 128", light.R)
	}
}

func TestBlendDodgeAndBurnExtremes(t *testing.T) {
	// Dodge by white forces white; burn by black forces black.
	dodge := blendPixels(RGB(30, 30, 30), RGB(255, 255, 255), BlendColorDodge, 1.0)
	if dodge.R != 255 {
		t.Errorf("dodge by white R = %d, want 255", dodge.R)
	}
	burn := blendPixels(RGB(200, 200, 200), RGB(0, 0, 0), BlendColorBurn, 1.0)
	if burn.R != 0 {
		t.Errorf("burn by black R = %d, want 0", burn.R)
	}
}

func TestBlendTransparentTopIsNoOp(t *testing.T) {
	bottom := RGBA(10, 20, 30, 200)
	top := RGBA(255, 255, 255, 0)

	got := blendPixels(bottom, top, BlendMultiply, 1.0)
	if got != bottom {
		t.Errorf("transparent top changed pixel: %v", got)
	}
}

func TestBlendAlphaAccumulates(t *testing.T) {
	bottom := RGBA(0, 0, 0, 128)
	top := RGBA(255, 255, 255, 128)

	got := blendPixels(bottom, top, BlendNormal, 1.0)
	// alpha = 0.502 + 0.502*0.498 = 0.752 -> ~192
	if got.A < 190 || got.A > 194 {
		t.Errorf("A = %d, want ~192", got.A)
	}
}
