// Package geom holds the small value types used to place things on a
// pixel grid.
package geom

import (
	"fmt"
	"image"
)

// Delta - a displacement between two positions
type Delta struct {
	DX, DY int
}

// Position - a pixel coordinate
type Position struct {
	X, Y int
}

// Translate returns the position moved by d.
func (p Position) Translate(d Delta) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Point converts p for use with the image packages.
func (p Position) Point() image.Point {
	return image.Pt(p.X, p.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size - width and height in pixels
type Size struct {
	Width, Height int
}

// SizeOf returns the size of an image's bounds.
func SizeOf(img image.Image) Size {
	b := img.Bounds()
	return Size{Width: b.Dx(), Height: b.Dy()}
}

// Rect is the rectangle of this size anchored at the origin.
func (s Size) Rect() image.Rectangle {
	return image.Rect(0, 0, s.Width, s.Height)
}

// Scale multiplies both dimensions by factor.
func (s Size) Scale(factor int) Size {
	return Size{Width: s.Width * factor, Height: s.Height * factor}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
