package obj

import (
	"image"
	"image/color"
	"testing"

	"github.com/milk9111/mouseball/common"
)

var red = color.RGBA{R: 0xff, A: 0xff}

func testSettings() common.Settings {
	return common.Settings{
		Width:     600,
		Height:    600,
		InnerRect: image.Rect(100, 100, 500, 500),
		BallSize:  10,
		ScaleStep: 2,
		MinSize:   6,
		Filter:    "nearest",
	}
}

// markedImage is a w×w blue square with a red block of size mark in the top
// left corner.
func markedImage(w, mark int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, w))
	for y := 0; y < w; y++ {
		for x := 0; x < w; x++ {
			c := color.RGBA{B: 0xff, A: 0xff}
			if x < mark && y < mark {
				c = red
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func redCorner(t *testing.T, img *image.RGBA) string {
	t.Helper()
	b := img.Bounds()
	corners := map[string]image.Point{
		"top-left":     {b.Min.X, b.Min.Y},
		"top-right":    {b.Max.X - 1, b.Min.Y},
		"bottom-left":  {b.Min.X, b.Max.Y - 1},
		"bottom-right": {b.Max.X - 1, b.Max.Y - 1},
	}
	found := ""
	for name, p := range corners {
		if img.RGBAAt(p.X, p.Y) == red {
			if found != "" {
				t.Fatalf("red found in both %s and %s", found, name)
			}
			found = name
		}
	}
	return found
}

func TestBallStartsScaledAtOrigin(t *testing.T) {
	b := NewBall(markedImage(64, 8), testSettings())

	if got := b.Scale(); got != image.Pt(10, 10) {
		t.Fatalf("expected scale (10,10), got %v", got)
	}
	if got := b.Bounds(); got != image.Rect(0, 0, 10, 10) {
		t.Fatalf("expected bounds at origin, got %v", got)
	}
	if got := b.Image().Bounds().Size(); got != image.Pt(10, 10) {
		t.Fatalf("expected 10x10 image, got %v", got)
	}
}

func TestBallStaysInsideInnerRect(t *testing.T) {
	s := testSettings()
	sizes := []int{10, 100, 400}

	for _, size := range sizes {
		b := NewBall(markedImage(16, 4), s)
		for b.Scale().X < size {
			b.ScaleUp()
		}
		for y := -50; y <= 650; y += 7 {
			for x := -50; x <= 650; x += 7 {
				b.SetCenter(image.Pt(x, y))
				b.Update()
				if !b.Bounds().In(s.InnerRect) {
					t.Fatalf("size %d centre (%d,%d): bounds %v escape %v", size, x, y, b.Bounds(), s.InnerRect)
				}
			}
		}
	}
}

func TestBallClampEdges(t *testing.T) {
	cases := []struct {
		name   string
		center image.Point
		want   image.Rectangle
	}{
		{"inside", image.Pt(300, 300), image.Rect(295, 295, 305, 305)},
		{"top_left", image.Pt(0, 0), image.Rect(100, 100, 110, 110)},
		{"bottom_right", image.Pt(600, 600), image.Rect(490, 490, 500, 500)},
		{"left_only", image.Pt(50, 300), image.Rect(100, 295, 110, 305)},
		{"bottom_only", image.Pt(300, 499), image.Rect(295, 490, 305, 500)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBall(markedImage(16, 4), testSettings())
			b.SetCenter(c.center)
			b.Update()
			if b.Bounds() != c.want {
				t.Fatalf("expected %v, got %v", c.want, b.Bounds())
			}
		})
	}
}

func TestBallSetCenterDoesNotClamp(t *testing.T) {
	b := NewBall(markedImage(16, 4), testSettings())
	b.SetCenter(image.Pt(5, 5))
	if got := b.Center(); got != image.Pt(5, 5) {
		t.Fatalf("expected unclamped centre (5,5), got %v", got)
	}
}

func TestBallScaleKeepsCenter(t *testing.T) {
	b := NewBall(markedImage(16, 4), testSettings())
	b.SetCenter(image.Pt(300, 300))
	b.Update()

	for i := 0; i < 20; i++ {
		b.ScaleUp()
		b.Update()
		if got := b.Center(); got != image.Pt(300, 300) {
			t.Fatalf("step %d: centre moved to %v", i, got)
		}
		if got := b.Bounds().Size(); got != b.Scale() {
			t.Fatalf("step %d: bounds size %v differs from scale %v", i, got, b.Scale())
		}
	}
}

func TestBallScaleBounds(t *testing.T) {
	s := testSettings()
	b := NewBall(markedImage(16, 4), s)

	for i := 0; i < 300; i++ {
		b.ScaleUp()
		b.Update()
		if b.Scale().X > s.InnerRect.Dx() {
			t.Fatalf("scale %v grew beyond inner width %d", b.Scale(), s.InnerRect.Dx())
		}
	}
	if got := b.Scale(); got != image.Pt(400, 400) {
		t.Fatalf("expected scale to stop at (400,400), got %v", got)
	}

	for i := 0; i < 300; i++ {
		b.ScaleDown()
		b.Update()
		if b.Scale().X <= 5 {
			t.Fatalf("scale %v shrank to 5 or below", b.Scale())
		}
	}
	if got := b.Scale(); got != image.Pt(6, 6) {
		t.Fatalf("expected scale to stop at (6,6), got %v", got)
	}
}

func TestBallScrollSequence(t *testing.T) {
	b := NewBall(markedImage(16, 4), testSettings())
	b.SetCenter(image.Pt(300, 300))
	b.Update()

	for i := 0; i < 5; i++ {
		b.ScaleUp()
	}
	b.Update()
	if got := b.Scale(); got != image.Pt(20, 20) {
		t.Fatalf("expected (20,20) after 5 scale ups, got %v", got)
	}

	for i := 0; i < 3; i++ {
		b.ScaleDown()
	}
	b.Update()
	if got := b.Scale(); got != image.Pt(14, 14) {
		t.Fatalf("expected (14,14) after 3 scale downs, got %v", got)
	}
}

func TestBallRotation(t *testing.T) {
	cases := []struct {
		name  string
		steps []func(b *Ball)
		want  string
	}{
		{"none", nil, "top-left"},
		{"left", []func(b *Ball){(*Ball).RotateLeft}, "bottom-left"},
		{"right", []func(b *Ball){(*Ball).RotateRight}, "top-right"},
		{"left_right", []func(b *Ball){(*Ball).RotateLeft, (*Ball).RotateRight}, "top-left"},
		{"right_left", []func(b *Ball){(*Ball).RotateRight, (*Ball).RotateLeft}, "top-left"},
		{"left_left", []func(b *Ball){(*Ball).RotateLeft, (*Ball).RotateLeft}, "bottom-right"},
		{"four_left", []func(b *Ball){(*Ball).RotateLeft, (*Ball).RotateLeft, (*Ball).RotateLeft, (*Ball).RotateLeft}, "top-left"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBall(markedImage(10, 1), testSettings())
			b.SetCenter(image.Pt(300, 300))
			b.Update()
			for _, step := range c.steps {
				step(b)
				b.Update()
			}
			if got := redCorner(t, b.Image()); got != c.want {
				t.Fatalf("expected red in %s, got %q", c.want, got)
			}
		})
	}
}

// Rotation works on the displayed image, so the source resolution is
// replaced by the current scale.
func TestBallRotationUsesDisplayedImage(t *testing.T) {
	b := NewBall(markedImage(40, 10), testSettings())
	b.Update()
	if got := b.base.Bounds().Size(); got != image.Pt(40, 40) {
		t.Fatalf("expected untouched 40x40 base, got %v", got)
	}

	b.RotateLeft()
	if got := b.base.Bounds().Size(); got != image.Pt(10, 10) {
		t.Fatalf("expected base replaced by the 10x10 displayed image, got %v", got)
	}

	for i := 0; i < 5; i++ {
		b.ScaleUp()
	}
	b.Update()
	if got := b.Image().Bounds().Size(); got != image.Pt(20, 20) {
		t.Fatalf("expected 20x20 display, got %v", got)
	}
	if got := b.base.Bounds().Size(); got != image.Pt(10, 10) {
		t.Fatalf("scaling must not restore the original base, got %v", got)
	}
}

func TestBallSetImage(t *testing.T) {
	b := NewBall(markedImage(10, 1), testSettings())
	b.SetCenter(image.Pt(300, 300))
	b.ScaleUp()
	b.Update()

	b.SetImage(markedImage(32, 32))
	b.Update()
	if got := b.Scale(); got != image.Pt(12, 12) {
		t.Fatalf("SetImage should keep scale, got %v", got)
	}
	if got := b.Image().RGBAAt(11, 11); got != red {
		t.Fatalf("expected the new all-red image, got %v", got)
	}
	if got := b.Center(); got != image.Pt(300, 300) {
		t.Fatalf("SetImage should keep centre, got %v", got)
	}
}
