package pixelgrid

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/submersibletoaster/pixelgrid/geom"
	"github.com/submersibletoaster/pixelgrid/glyph"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

func fillRect(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// digitStrip - a 3x5 digit strip; glyph d has one opaque pixel in its top
// left corner, green for 0 and shades of red for the others.
func digitStrip() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3*glyph.Digits, 5))
	img.SetNRGBA(0, 0, green)
	for d := 1; d < glyph.Digits; d++ {
		img.SetNRGBA(d*3, 0, color.NRGBA{R: uint8(d * 25), A: 255})
	}
	return img
}

func testFont(t *testing.T) glyph.DigitFont {
	t.Helper()
	f, err := glyph.NewDigitFont(digitStrip(), geom.Size{Width: 3, Height: 5})
	require.NoError(t, err)
	return f
}

func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}
