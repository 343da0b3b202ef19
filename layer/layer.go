// Package layer renders the annotation layers of a diagram: cell
// outlines, cell numbers and the reference grid. Every layer is a fresh
// transparent canvas; inputs are never modified.
package layer

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/submersibletoaster/pixelgrid/examine"
	"github.com/submersibletoaster/pixelgrid/geom"
	"github.com/submersibletoaster/pixelgrid/glyph"
)

// OutlineColor - stroke colour of cell outlines
var OutlineColor = color.NRGBA{A: 0xff}

// OutlineWidth - stroke width of cell outlines
const OutlineWidth = 1

// New returns a fully transparent layer of the given size.
func New(size geom.Size) *image.NRGBA {
	return image.NewNRGBA(size.Rect())
}

// Outlines draws an unfilled square for every cell. The square covers
// the cell's corner and the point Size pixels right and down of it, both
// included, so neighbouring outlines share an edge.
func Outlines(size geom.Size, cells []examine.Cell) *image.NRGBA {
	dst := New(size)
	for _, c := range cells {
		r := c.Bounds()
		r.Max = r.Max.Add(image.Pt(1, 1))
		strokeRect(dst, r, OutlineWidth, OutlineColor)
	}
	return dst
}

// Numbers writes every numbering with font, digits spacing pixels apart.
func Numbers(size geom.Size, numbers []examine.Numbering, font glyph.DigitFont, spacing int) *image.NRGBA {
	dst := New(size)
	for _, n := range numbers {
		font.DrawNumber(dst, n.Value, n.Position, spacing)
	}
	return dst
}

// Grid draws horizontal then vertical lines every pitch pixels starting
// at 0. Lines replace what is under them, so crossings keep c unblended.
func Grid(size geom.Size, pitch geom.Size, width int, c color.Color) *image.NRGBA {
	dst := New(size)
	if pitch.Width <= 0 || pitch.Height <= 0 || width <= 0 {
		return dst
	}
	src := image.NewUniform(c)
	for y := 0; y < size.Height; y += pitch.Height {
		draw.Draw(dst, image.Rect(0, y, size.Width, y+width), src, image.Point{}, draw.Src)
	}
	for x := 0; x < size.Width; x += pitch.Width {
		draw.Draw(dst, image.Rect(x, 0, x+width, size.Height), src, image.Point{}, draw.Src)
	}
	return dst
}

// strokeRect paints the border of r, width pixels thick and inside r.
func strokeRect(dst draw.Image, r image.Rectangle, width int, c color.Color) {
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width),
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y),
		image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(r), src, image.Point{}, draw.Src)
	}
}
