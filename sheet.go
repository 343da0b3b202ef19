package pixelgrid

import (
	"image"
	"image/color"

	"github.com/submersibletoaster/pixelgrid/geom"
	"github.com/submersibletoaster/pixelgrid/glyph"
	"github.com/submersibletoaster/pixelgrid/layer"
)

// SheetGridColor - separator colour between glyphs on a digit sheet
var SheetGridColor = color.NRGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}

// DigitSheet lays the ten glyphs of font out on a white strip, one pixel
// apart, scales it up and draws separators between them. It is meant for
// checking a font before using it.
func DigitSheet(font glyph.DigitFont, scale int) *image.NRGBA {
	cell := font.Size()
	pitch := geom.Size{Width: cell.Width + 1, Height: cell.Height + 1}
	size := geom.Size{Width: pitch.Width*glyph.Digits + 1, Height: pitch.Height + 1}

	digits := layer.New(size)
	for d := 0; d < glyph.Digits; d++ {
		font.DrawNumber(digits, d, geom.Position{X: d*pitch.Width + 1, Y: 1}, 0)
	}

	sheet := Scale(Composite(Filled(size, color.White), digits), scale)
	grid := layer.Grid(geom.SizeOf(sheet), pitch.Scale(scale), scale, SheetGridColor)
	Over(sheet, grid)
	return sheet
}
