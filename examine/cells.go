// Package examine slices an image into square cells and finds the ones a
// drawing step actually touched.
package examine

import (
	"image"

	"github.com/anthonynsimon/bild/channel"
	log "github.com/sirupsen/logrus"

	"github.com/submersibletoaster/pixelgrid/geom"
)

const opaque = 0xff

// Cell - a square region of the grid. Position is the top left corner.
type Cell struct {
	Position geom.Position
	Size     int
}

// Bounds - the cell as an image rectangle, relative to the image origin
func (c Cell) Bounds() image.Rectangle {
	return image.Rect(c.Position.X, c.Position.Y, c.Position.X+c.Size, c.Position.Y+c.Size)
}

// EachCell walks src in cellSize steps, rows top to bottom and columns left
// to right, and calls fn for every cell holding at least one fully opaque
// pixel. Walking stops when fn returns false.
//
// Cells on the right and bottom edges are tested only over the pixels that
// exist, but are still reported with the full cellSize.
func EachCell(src image.Image, cellSize int, fn func(Cell) bool) {
	if cellSize <= 0 || src.Bounds().Empty() {
		return
	}
	alpha := channel.Extract(src, channel.Alpha)
	size := geom.SizeOf(src)

	for y := 0; y < size.Height; y += cellSize {
		for x := 0; x < size.Width; x += cellSize {
			cell := Cell{Position: geom.Position{X: x, Y: y}, Size: cellSize}
			if !hasOpaquePixel(alpha, cell.Bounds()) {
				continue
			}
			if !fn(cell) {
				return
			}
		}
	}
}

// TouchedCells - every cell of src with a fully opaque pixel, in scan order
func TouchedCells(src image.Image, cellSize int) []Cell {
	var cells []Cell
	EachCell(src, cellSize, func(c Cell) bool {
		cells = append(cells, c)
		return true
	})
	log.Debugf("TouchedCells: %d cells of %dpx", len(cells), cellSize)
	return cells
}

// hasOpaquePixel reports whether r, taken relative to the alpha plane's
// origin and clipped to it, contains an alpha of 0xff.
func hasOpaquePixel(alpha *image.Gray, r image.Rectangle) bool {
	b := alpha.Bounds()
	r = r.Add(b.Min).Intersect(b)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := alpha.Pix[alpha.PixOffset(r.Min.X, y):alpha.PixOffset(r.Max.X, y)]
		for _, a := range row {
			if a == opaque {
				return true
			}
		}
	}
	return false
}
