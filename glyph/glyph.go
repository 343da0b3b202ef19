// Package glyph provides fixed width bitmap digit fonts cut from a single
// strip image.
package glyph

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/submersibletoaster/pixelgrid/geom"
)

// Digits - number of glyphs in a strip
const Digits = 10

// ErrFontFormat - the font asset's name or strip does not describe a digit font
var ErrFontFormat = errors.New("malformed digit font")

// DigitFont - glyphs 0 to 9 laid out left to right in Strip, each
// Width x Height pixels
type DigitFont struct {
	Strip  image.Image
	Width  int
	Height int

	glyphs [Digits]*image.NRGBA
}

// ParseSizeToken reads the glyph size from a font file name of the form
// name-WxH.ext. Everything up to the first hyphen is the name.
func ParseSizeToken(path string) (geom.Size, error) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	parts := strings.SplitN(stem, "-", 2)
	if len(parts) != 2 {
		return geom.Size{}, fmt.Errorf("%w: %q has no -WxH size token", ErrFontFormat, base)
	}
	dims := strings.SplitN(parts[1], "x", 2)
	if len(dims) != 2 {
		return geom.Size{}, fmt.Errorf("%w: size token %q in %q is not WxH", ErrFontFormat, parts[1], base)
	}
	w, err := strconv.Atoi(dims[0])
	if err != nil || w <= 0 {
		return geom.Size{}, fmt.Errorf("%w: bad glyph width %q in %q", ErrFontFormat, dims[0], base)
	}
	h, err := strconv.Atoi(dims[1])
	if err != nil || h <= 0 {
		return geom.Size{}, fmt.Errorf("%w: bad glyph height %q in %q", ErrFontFormat, dims[1], base)
	}
	return geom.Size{Width: w, Height: h}, nil
}

// NewDigitFont wraps a decoded strip. The strip must be wide and tall
// enough for ten glyphs of the given size.
func NewDigitFont(strip image.Image, glyph geom.Size) (DigitFont, error) {
	have := geom.SizeOf(strip)
	if have.Width < glyph.Width*Digits || have.Height < glyph.Height {
		return DigitFont{}, fmt.Errorf("%w: strip is %v, need at least %dx%d for %v glyphs",
			ErrFontFormat, have, glyph.Width*Digits, glyph.Height, glyph)
	}
	log.Debugf("NewDigitFont: %v glyphs from %v strip", glyph, have)
	f := DigitFont{Strip: strip, Width: glyph.Width, Height: glyph.Height}
	o := strip.Bounds().Min
	for d := range f.glyphs {
		x := o.X + d*glyph.Width
		f.glyphs[d] = cut(strip, image.Rect(x, o.Y, x+glyph.Width, o.Y+glyph.Height))
	}
	return f, nil
}

// cut copies r out of src into an image anchored at the origin. NRGBA
// strips are copied byte for byte.
func cut(src image.Image, r image.Rectangle) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < r.Dy(); y++ {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+r.Dx()*4], n.Pix[n.PixOffset(r.Min.X, r.Min.Y+y):])
		}
		return dst
	}
	draw.Draw(dst, dst.Bounds(), src, r.Min, draw.Src)
	return dst
}

// Size - size of a single glyph
func (f DigitFont) Size() geom.Size {
	return geom.Size{Width: f.Width, Height: f.Height}
}

// Digit returns the glyph for d, which must be in 0..9. The glyph is
// shared by every call and must not be modified.
func (f DigitFont) Digit(d int) *image.NRGBA {
	return f.glyphs[d]
}

// DrawNumber writes value in decimal onto dst starting at at, one glyph at
// a time. Consecutive glyphs are Width+spacing apart. Glyphs are pasted
// through their own alpha so their transparent background leaves dst
// alone. value must not be negative.
func (f DigitFont) DrawNumber(dst draw.Image, value int, at geom.Position, spacing int) {
	pos := at
	for _, c := range strconv.Itoa(value) {
		g := f.Digit(int(c - '0'))
		gb := g.Bounds()
		r := image.Rectangle{Min: pos.Point(), Max: pos.Point().Add(gb.Size())}
		draw.DrawMask(dst, r, g, gb.Min, g, gb.Min, draw.Over)
		pos = pos.Translate(geom.Delta{DX: f.Width + spacing})
	}
}
