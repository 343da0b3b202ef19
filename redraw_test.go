package pixelgrid

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/submersibletoaster/pixelgrid/geom"
)

func TestScale(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(0, 0, red)
	src.SetNRGBA(1, 0, green)
	src.SetNRGBA(2, 1, blue)
	src.SetNRGBA(0, 1, white)

	dst := Scale(src, 10)
	require.Equal(t, image.Rect(0, 0, 30, 20), dst.Bounds())

	for y := 0; y < 20; y++ {
		for x := 0; x < 30; x++ {
			require.Equal(t, src.NRGBAAt(x/10, y/10), dst.NRGBAAt(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestScaleKeepsTranslucentPixels(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 256, 255))
	for a := 1; a < 256; a++ {
		for r := 0; r < 256; r++ {
			src.SetNRGBA(r, a-1, color.NRGBA{R: uint8(r), G: uint8(255 - r), B: 7, A: uint8(a)})
		}
	}

	dst := Scale(src, 10)

	require.Equal(t, image.Rect(0, 0, 2560, 2550), dst.Bounds())
	for y := 0; y < 255; y++ {
		for x := 0; x < 256; x++ {
			want := src.NRGBAAt(x, y)
			require.Equal(t, want, dst.NRGBAAt(x*10, y*10), "block %d,%d", x, y)
			require.Equal(t, want, dst.NRGBAAt(x*10+9, y*10+9), "block %d,%d", x, y)
		}
	}
}

func TestScaleOffsetSource(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	src.SetNRGBA(6, 5, red)

	dst := Scale(src, 10)

	assert.Equal(t, image.Rect(0, 0, 20, 10), dst.Bounds())
	assert.Equal(t, uint8(0), dst.NRGBAAt(9, 9).A)
	assert.Equal(t, red, dst.NRGBAAt(10, 0))
	assert.Equal(t, red, dst.NRGBAAt(19, 9))
}

func TestDimTransparentIsNoop(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))

	dst := Dim(src, 128)

	assert.Equal(t, src.Pix, dst.Pix)
}

func TestDim(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, red)
	src.SetNRGBA(1, 0, color.NRGBA{G: 200, A: 1})

	dst := Dim(src, 128)

	assert.Equal(t, color.NRGBA{R: 255, A: 128}, dst.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{G: 200, A: 128}, dst.NRGBAAt(1, 0))
	assert.Equal(t, uint8(0), dst.NRGBAAt(2, 0).A)
	assert.Equal(t, red, src.NRGBAAt(0, 0), "source must be left alone")

	assert.Equal(t, dst.Pix, Dim(dst, 128).Pix)
}

func TestComposite(t *testing.T) {
	bottom := Filled(geom.Size{Width: 4, Height: 1}, white)
	top := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	top.SetNRGBA(1, 0, red)
	top.SetNRGBA(2, 0, color.NRGBA{B: 255, A: 128})
	upper := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	upper.SetNRGBA(1, 0, green)

	out := Composite(bottom, top, upper)

	assert.Equal(t, white, out.NRGBAAt(0, 0))
	assert.Equal(t, green, out.NRGBAAt(1, 0))
	half := out.NRGBAAt(2, 0)
	assert.Equal(t, uint8(255), half.A)
	assert.Equal(t, uint8(255), half.B)
	assert.InDelta(t, 127, int(half.R), 1)
	assert.Equal(t, white, out.NRGBAAt(3, 0))
	assert.Equal(t, white, bottom.NRGBAAt(1, 0), "bottom layer must be left alone")
}

func TestClone(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 5, 5))
	src.SetNRGBA(4, 4, blue)

	dst := Clone(src)

	assert.Equal(t, image.Rect(0, 0, 3, 2), dst.Bounds())
	assert.Equal(t, blue, dst.NRGBAAt(2, 1))
	dst.SetNRGBA(0, 0, red)
	assert.Equal(t, uint8(0), src.NRGBAAt(2, 3).A)

	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.Pix[0] = 0xff
	assert.Equal(t, white, Clone(gray).NRGBAAt(0, 0))
}
