package pixelgrid

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/submersibletoaster/pixelgrid/geom"
)

// Clone copies src into a new NRGBA image anchored at the origin.
func Clone(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+b.Dx()*4], n.Pix[n.PixOffset(b.Min.X, b.Min.Y+y):])
		}
		return dst
	}
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Scale enlarges src by an integer factor with nearest neighbour
// sampling, so every source pixel becomes a factor x factor block with the
// same NRGBA bytes.
func Scale(src image.Image, factor int) *image.NRGBA {
	from := Clone(src)
	dst := image.NewNRGBA(geom.SizeOf(from).Scale(factor).Rect())
	// RGBA views over the NRGBA buffers hit the byte copying RGBA->RGBA
	// path, so straight alpha values are not premultiplied on the way.
	xdraw.NearestNeighbor.Scale(rgbaView(dst), dst.Rect, rgbaView(from), from.Rect, xdraw.Src, nil)
	return dst
}

func rgbaView(n *image.NRGBA) *image.RGBA {
	return &image.RGBA{Pix: n.Pix, Stride: n.Stride, Rect: n.Rect}
}

// Dim returns a copy of src where every pixel that is not fully
// transparent has its alpha set to alpha. Colour is kept.
func Dim(src image.Image, alpha uint8) *image.NRGBA {
	dst := Clone(src)
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] > 0 {
			dst.Pix[i] = alpha
		}
	}
	return dst
}

// Filled returns an image of size painted with c.
func Filled(size geom.Size, c color.Color) *image.NRGBA {
	dst := image.NewNRGBA(size.Rect())
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return dst
}

// Composite merges layers bottom to top, each one alpha composited over
// the result so far, like merging visible layers in an editor. All
// layers are aligned on their top left corners. The first layer is
// copied, not modified.
func Composite(bottom image.Image, layers ...image.Image) *image.NRGBA {
	dst := Clone(bottom)
	for _, l := range layers {
		Over(dst, l)
	}
	return dst
}

// Over composites src onto dst in place, top left corners aligned.
func Over(dst *image.NRGBA, src image.Image) {
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Over)
}
