package pixelgrid

import (
	"github.com/submersibletoaster/pixelgrid/glyph"
)

// LoadFont reads a digit font whose file is named name-WxH.ext. The name
// is checked before the file is opened, so a malformed name fails with
// glyph.ErrFontFormat without decoding anything.
func LoadFont(path string) (glyph.DigitFont, error) {
	size, err := glyph.ParseSizeToken(path)
	if err != nil {
		return glyph.DigitFont{}, err
	}
	img, err := LoadImage(path)
	if err != nil {
		return glyph.DigitFont{}, err
	}
	return glyph.NewDigitFont(Clone(img), size)
}
