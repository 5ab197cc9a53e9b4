package obj

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mouseball/common"
	"golang.org/x/image/draw"
)

// Ball is a sprite that follows the cursor and stays inside the inner
// rectangle. base is resampled to scale on every change and drawn at rect.
type Ball struct {
	base    *image.RGBA
	current *image.RGBA
	rect    image.Rectangle
	scale   image.Point

	bounds  image.Rectangle
	step    int
	minSize int
	scaler  draw.Scaler

	// stale is set when base or scale changed since current was computed.
	stale bool

	sprite      *ebiten.Image
	spriteDirty bool
}

// NewBall creates a ball from src, already scaled to the configured size and
// placed at the origin.
func NewBall(src image.Image, s common.Settings) *Ball {
	b := &Ball{
		base:    toRGBA(src),
		scale:   image.Pt(s.BallSize, s.BallSize),
		bounds:  s.InnerRect,
		step:    s.ScaleStep,
		minSize: s.MinSize,
		scaler:  s.Scaler(),
	}
	b.current = scaleRGBA(b.base, b.scale, b.scaler)
	b.rect = b.current.Bounds()
	b.spriteDirty = true
	return b
}

// Update rescales the image while keeping the centre, then pushes each edge
// back inside the inner rectangle.
func (b *Ball) Update() {
	c := b.Center()
	if b.stale {
		b.current = scaleRGBA(b.base, b.scale, b.scaler)
		b.stale = false
		b.spriteDirty = true
	}
	b.rect = common.CenteredRect(c, b.current.Bounds().Size())
	b.clamp()
}

// clamp checks left, right, top and bottom in turn. A ball wider than the
// bounds ends up flush with the right (or bottom) edge.
func (b *Ball) clamp() {
	if d := b.bounds.Min.X - b.rect.Min.X; d > 0 {
		b.rect = b.rect.Add(image.Pt(d, 0))
	}
	if d := b.rect.Max.X - b.bounds.Max.X; d > 0 {
		b.rect = b.rect.Sub(image.Pt(d, 0))
	}
	if d := b.bounds.Min.Y - b.rect.Min.Y; d > 0 {
		b.rect = b.rect.Add(image.Pt(0, d))
	}
	if d := b.rect.Max.Y - b.bounds.Max.Y; d > 0 {
		b.rect = b.rect.Sub(image.Pt(0, d))
	}
}

// RotateLeft turns the displayed image 90 degrees counter-clockwise.
//
// The rotated image is the current, already scaled one, so repeated rotations
// compound and the original resolution is lost after the first rotation.
func (b *Ball) RotateLeft() {
	b.base = rotateCCW(b.current)
	b.stale = true
}

// RotateRight turns the displayed image 90 degrees clockwise. See RotateLeft.
func (b *Ball) RotateRight() {
	b.base = rotateCW(b.current)
	b.stale = true
}

// ScaleUp grows the ball by one step unless that would exceed the width of
// the inner rectangle.
func (b *Ball) ScaleUp() {
	if b.scale.X+b.step > b.bounds.Dx() {
		return
	}
	b.scale = b.scale.Add(image.Pt(b.step, b.step))
	b.stale = true
}

// ScaleDown shrinks the ball by one step unless that would go below the
// minimum size.
func (b *Ball) ScaleDown() {
	if b.scale.X-b.step < b.minSize {
		return
	}
	b.scale = b.scale.Sub(image.Pt(b.step, b.step))
	b.stale = true
}

// SetCenter moves the ball without any bounds check; Update clamps it.
func (b *Ball) SetCenter(p image.Point) {
	b.rect = common.CenteredRect(p, b.rect.Size())
}

// SetImage replaces the source image, keeping scale and position.
func (b *Ball) SetImage(src image.Image) {
	b.base = toRGBA(src)
	b.stale = true
}

func (b *Ball) Center() image.Point {
	return common.RectCenter(b.rect)
}

func (b *Ball) Bounds() image.Rectangle {
	return b.rect
}

func (b *Ball) Scale() image.Point {
	return b.scale
}

// Image returns the displayed image.
func (b *Ball) Image() *image.RGBA {
	return b.current
}

func (b *Ball) Draw(screen *ebiten.Image) {
	if b.spriteDirty || b.sprite == nil {
		if b.sprite != nil {
			b.sprite.Deallocate()
		}
		b.sprite = ebiten.NewImageFromImage(b.current)
		b.spriteDirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.rect.Min.X), float64(b.rect.Min.Y))
	screen.DrawImage(b.sprite, op)
}
