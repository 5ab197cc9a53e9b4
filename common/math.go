package common

import "image"

// RectCenter returns the centre of r, rounding towards Min on odd sizes.
func RectCenter(r image.Rectangle) image.Point {
	return image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
}

// CenteredRect returns a rectangle of the given size whose RectCenter is c.
func CenteredRect(c image.Point, size image.Point) image.Rectangle {
	tl := image.Pt(c.X-size.X/2, c.Y-size.Y/2)
	return image.Rectangle{Min: tl, Max: tl.Add(size)}
}

// Inset shrinks r by margin on every side.
func Inset(r image.Rectangle, margin int) image.Rectangle {
	return image.Rect(r.Min.X+margin, r.Min.Y+margin, r.Max.X-margin, r.Max.Y-margin)
}
