package pixelgrid

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitSheet(t *testing.T) {
	sheet := DigitSheet(testFont(t), 4)

	// ten 4x6 slots plus a closing separator, scaled 4x
	assert.Equal(t, image.Rect(0, 0, 41*4, 7*4), sheet.Bounds())

	assert.Equal(t, green, sheet.NRGBAAt(4, 4), "digit 0")
	assert.Equal(t, color.NRGBA{R: 125, A: 255}, sheet.NRGBAAt((5*4+1)*4, 4), "digit 5")
	assert.Equal(t, white, sheet.NRGBAAt(2*4, 2*4))

	assert.Equal(t, SheetGridColor, sheet.NRGBAAt(0, 10))
	assert.Equal(t, SheetGridColor, sheet.NRGBAAt(4*4+1, 10), "separator after digit 0")
	assert.Equal(t, SheetGridColor, sheet.NRGBAAt(50, 0))
	assert.Equal(t, SheetGridColor, sheet.NRGBAAt(50, 6*4+3), "bottom separator")
}
