package glaze

import "testing"

func TestEmptyStackCompositesBackground(t *testing.T) {
	ls := NewLayerStack(8, 8)
	ls.Background = RGB(30, 40, 50)

	out := ls.Composite()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if out.At(x, y) != RGB(30, 40, 50) {
				t.Fatalf("pixel (%d,%d) = %v, want background", x, y, out.At(x, y))
			}
		}
	}
}

func TestNewLayerStackDefaults(t *testing.T) {
	ls := NewLayerStack(4, 4)
	if ls.Background != (Color{A: 255}) {
		t.Errorf("default background = %v, want opaque black", ls.Background)
	}
	if ls.Width() != 4 || ls.Height() != 4 {
		t.Errorf("size = %dx%d", ls.Width(), ls.Height())
	}
}

func TestLayerDefaults(t *testing.T) {
	l := NewLayer(4, 4)
	if !l.Visible {
		t.Error("new layer should be visible")
	}
	if l.Opacity() != 1 {
		t.Errorf("opacity = %f, want 1", l.Opacity())
	}
	if l.ScaleX != 1 || l.ScaleY != 1 {
		t.Error("default scale should be 1")
	}
	if l.BlendMode != BlendNormal {
		t.Error("default blend mode should be BlendNormal")
	}
	if l.Material.IsFrostedGlass() {
		t.Error("default material should be solid")
	}
}

func TestSetOpacityClamps(t *testing.T) {
	l := NewLayer(2, 2)
	l.SetOpacity(3.5)
	if l.Opacity() != 1 {
		t.Errorf("opacity = %f, want clamped 1", l.Opacity())
	}
	l.SetOpacity(-2)
	if l.Opacity() != 0 {
		t.Errorf("opacity = %f, want clamped 0", l.Opacity())
	}
}

func TestCompositeSingleOpaqueLayer(t *testing.T) {
	ls := NewLayerStack(8, 8)
	ls.Background = RGB(0, 0, 0)

	l := ls.NewLayer("fg")
	l.Surface().Fill(RGB(255, 0, 0))

	out := ls.Composite()
	if out.At(4, 4) != RGB(255, 0, 0) {
		t.Errorf("composite = %v, want layer color", out.At(4, 4))
	}
}

func TestCompositeRespectsPosition(t *testing.T) {
	ls := NewLayerStack(10, 10)
	ls.Background = RGB(0, 0, 0)

	l := NewLayerFromSurface(NewSurface(3, 3))
	l.Surface().Fill(RGB(0, 255, 0))
	l.X, l.Y = 5, 5
	ls.Add(l)

	out := ls.Composite()
	if out.At(5, 5) != RGB(0, 255, 0) || out.At(7, 7) != RGB(0, 255, 0) {
		t.Error("layer content missing at its position")
	}
	if out.At(4, 4) != RGB(0, 0, 0) {
		t.Error("layer leaked outside its bounds")
	}
}

func TestCompositeSkipsHiddenDisposedAndZeroOpacity(t *testing.T) {
	ls := NewLayerStack(4, 4)
	ls.Background = RGB(0, 0, 0)

	hidden := ls.NewLayer("hidden")
	hidden.Surface().Fill(RGB(255, 0, 0))
	hidden.Visible = false

	faded := ls.NewLayer("faded")
	faded.Surface().Fill(RGB(0, 255, 0))
	faded.SetOpacity(0)

	dead := ls.NewLayer("dead")
	dead.Surface().Fill(RGB(0, 0, 255))
	dead.Dispose()

	out := ls.Composite()
	if out.At(2, 2) != RGB(0, 0, 0) {
		t.Errorf("skipped layers leaked: %v", out.At(2, 2))
	}
}

func TestCompositeLayerOpacity(t *testing.T) {
	ls := NewLayerStack(4, 4)
	ls.Background = RGB(0, 0, 0)

	l := ls.NewLayer("half")
	l.Surface().Fill(RGB(255, 0, 0))
	l.SetOpacity(0.5)

	out := ls.Composite()
	r := out.At(2, 2).R
	if r < 126 || r > 129 {
		t.Errorf("R = %d, want ~127 at 50%% opacity", r)
	}
}

func TestCompositeOrderBackToFront(t *testing.T) {
	ls := NewLayerStack(4, 4)

	bottom := ls.NewLayer("bottom")
	bottom.Surface().Fill(RGB(255, 0, 0))
	top := ls.NewLayer("top")
	top.Surface().Fill(RGB(0, 0, 255))

	if ls.Composite().At(2, 2) != RGB(0, 0, 255) {
		t.Fatal("top layer should win")
	}

	ls.MoveToTop(bottom)
	if ls.Composite().At(2, 2) != RGB(255, 0, 0) {
		t.Error("MoveToTop did not change compositing order")
	}
}

func TestCompositeBlendModeApplied(t *testing.T) {
	ls := NewLayerStack(2, 2)
	ls.Background = RGB(100, 100, 100)

	l := ls.NewLayer("mult")
	l.Surface().Fill(RGB(128, 128, 128))
	l.BlendMode = BlendMultiply

	out := ls.Composite()
	r := out.At(0, 0).R
	// 0.392 * 0.502 = 0.197 -> ~50
	if r < 48 || r > 52 {
		t.Errorf("multiply R = %d, want ~50", r)
	}
}

func TestCompositeScaledBounds(t *testing.T) {
	ls := NewLayerStack(16, 16)
	ls.Background = RGB(0, 0, 0)

	l := NewLayerFromSurface(NewSurface(4, 4))
	l.Surface().Fill(RGB(255, 255, 255))
	l.X, l.Y = 6, 6
	l.ScaleX, l.ScaleY = 2, 2
	ls.Add(l)

	out := ls.Composite()
	// Scaling pivots on the center: a 4x4 at (6,6) scaled 2x covers 8x8
	// starting at (4,4).
	if out.At(4, 4).A == 0 || out.At(11, 11).A == 0 {
		t.Error("scaled layer does not cover expected bounds")
	}
	if out.At(7, 7) != RGB(255, 255, 255) {
		t.Errorf("scaled interior = %v, want white", out.At(7, 7))
	}
	if out.At(2, 2) != RGB(0, 0, 0) {
		t.Error("scaled layer overflowed its bounds")
	}
}

func TestFrostedGlassBlursBackdrop(t *testing.T) {
	ls := NewLayerStack(32, 32)
	ls.Background = RGB(0, 0, 0)

	// Busy backdrop: hard white stripes.
	backdrop := ls.NewLayer("backdrop")
	for x := 0; x < 32; x += 4 {
		backdrop.Surface().FillRect(x, 0, 2, 32, RGB(255, 255, 255))
	}

	glass := NewLayerFromSurface(NewSurface(16, 16))
	glass.Surface().Fill(RGBA(255, 255, 255, 60))
	glass.X, glass.Y = 8, 8
	glass.Material = FrostedGlassMaterial(4)
	ls.Add(glass)

	out := ls.Composite()

	// Outside the glass the stripes stay hard.
	if got := out.At(0, 2).R; got != 255 {
		t.Errorf("outside stripe = %d, want 255", got)
	}
	if got := out.At(2, 2).R; got != 0 {
		t.Errorf("outside gap = %d, want 0", got)
	}

	// Under the glass, stripe and gap pull toward each other.
	stripe := out.At(16, 16).R
	gap := out.At(18, 16).R
	if stripe == 255 && gap == 0 {
		t.Error("backdrop under glass not blurred")
	}
}

func TestFrostedGlassZeroRadiusIsSolidPath(t *testing.T) {
	ls := NewLayerStack(8, 8)
	ls.Background = RGB(10, 10, 10)

	glass := ls.NewLayer("glass")
	glass.Surface().Fill(RGBA(0, 255, 0, 128))
	glass.Material = FrostedGlassMaterial(0)

	// Must composite like a plain translucent layer, no blur pass.
	out := ls.Composite()
	if out.At(4, 4).G < 100 {
		t.Errorf("G = %d, want blended green", out.At(4, 4).G)
	}
}

func TestLayerOrderingOps(t *testing.T) {
	ls := NewLayerStack(4, 4)
	a := ls.NewLayer("a")
	b := ls.NewLayer("b")
	c := ls.NewLayer("c")

	ls.MoveUp(a)
	if ls.Layer(1) != a || ls.Layer(0) != b {
		t.Error("MoveUp did not swap")
	}

	ls.MoveDown(c)
	if ls.Layer(1) != c || ls.Layer(2) != a {
		t.Error("MoveDown did not swap")
	}

	ls.MoveToBottom(a)
	if ls.Layer(0) != a {
		t.Error("MoveToBottom failed")
	}

	ls.SetIndex(b, 2)
	if ls.Layer(2) != b {
		t.Error("SetIndex failed")
	}

	// Ordering a non-member is a no-op.
	outsider := NewLayer(2, 2)
	ls.MoveUp(outsider)
	if ls.Len() != 3 {
		t.Error("ordering op changed membership")
	}
}

func TestRemoveAndClear(t *testing.T) {
	ls := NewLayerStack(4, 4)
	a := ls.NewLayer("a")
	ls.NewLayer("b")

	ls.Remove(a)
	if ls.Len() != 1 || ls.LayerByName("a") != nil {
		t.Error("Remove failed")
	}
	ls.Remove(a) // second remove is a no-op

	got := ls.RemoveAt(0)
	if got == nil || got.Name != "b" || ls.Len() != 0 {
		t.Error("RemoveAt failed")
	}

	ls.NewLayer("x")
	ls.NewLayer("y")
	ls.Clear()
	if ls.Len() != 0 {
		t.Error("Clear left layers behind")
	}
}

func TestRemoveAtPanicsOutOfRange(t *testing.T) {
	ls := NewLayerStack(4, 4)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range index")
		}
	}()
	ls.RemoveAt(0)
}

func TestLayerByNameAndIndex(t *testing.T) {
	ls := NewLayerStack(4, 4)
	a := ls.NewLayer("ui")
	ls.NewLayer("ui") // duplicate name; first wins

	if ls.LayerByName("ui") != a {
		t.Error("LayerByName should return the first match")
	}
	if ls.LayerByName("missing") != nil {
		t.Error("missing name should return nil")
	}
	if ls.Layer(-1) != nil || ls.Layer(99) != nil {
		t.Error("out-of-range index should return nil")
	}
}

func TestHitTestUnrotated(t *testing.T) {
	l := NewLayerFromSurface(NewSurface(10, 10))
	l.X, l.Y = 5, 5

	if !l.HitTest(5, 5) || !l.HitTest(14, 14) {
		t.Error("points inside bounds rejected")
	}
	if l.HitTest(4, 5) || l.HitTest(15, 15) {
		t.Error("points outside bounds accepted")
	}
}

func TestHitTestScaled(t *testing.T) {
	l := NewLayerFromSurface(NewSurface(10, 10))
	l.ScaleX, l.ScaleY = 2, 2

	if !l.HitTest(19, 19) {
		t.Error("scaled bounds should extend to 2x size")
	}
	if l.HitTest(20, 20) {
		t.Error("point beyond scaled bounds accepted")
	}
}

func TestHitTestRotated(t *testing.T) {
	l := NewLayerFromSurface(NewSurface(20, 4))
	l.Rotation = 90

	// Rotated 90 degrees about the center (10,2): the long axis is now
	// vertical, so a point far right on the old axis misses...
	if l.HitTest(19, 2) {
		t.Error("point on unrotated long axis should miss after rotation")
	}
	// ...and a point above the center along the new axis hits.
	if !l.HitTest(10, 9) {
		t.Error("point on rotated long axis should hit")
	}
}

func TestDisposedLayerStopsCompositing(t *testing.T) {
	ls := NewLayerStack(4, 4)
	l := ls.NewLayer("gone")
	l.Surface().Fill(RGB(255, 0, 0))
	l.Dispose()

	if !l.IsDisposed() {
		t.Fatal("IsDisposed = false")
	}
	out := ls.Composite()
	if out.At(0, 0) != (Color{A: 255}) {
		t.Error("disposed layer still composited")
	}
	l.Dispose() // idempotent
}
