package pixelgrid

import (
	"fmt"
	"image/color"
)

// Options - the fixed parameters of a diagram. DefaultOptions gives the
// reference configuration.
type Options struct {
	// Scale - integer nearest neighbour upscale applied to every step
	Scale int
	// CellSize - pitch of the touched cell grid, in scaled pixels
	CellSize int
	// GridPitch - pitch of the reference grid, in scaled pixels
	GridPitch int
	// GridWidth - line width of the reference grid
	GridWidth int
	// GridColor - usually translucent so the art shows through
	GridColor color.NRGBA
	// NumberSpacing - extra pixels between the glyphs of a number
	NumberSpacing int
	// DimAlpha - alpha given to every visible pixel of earlier steps
	DimAlpha uint8
	// Background - colour under everything else
	Background color.NRGBA
}

func DefaultOptions() Options {
	return Options{
		Scale:         10,
		CellSize:      50,
		GridPitch:     10,
		GridWidth:     1,
		GridColor:     color.NRGBA{A: 50},
		NumberSpacing: 1,
		DimAlpha:      128,
		Background:    color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

// Validate rejects options that cannot produce a diagram.
func (o Options) Validate() error {
	switch {
	case o.Scale <= 0:
		return fmt.Errorf("%w: scale %d", ErrInvalidOptions, o.Scale)
	case o.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalidOptions, o.CellSize)
	case o.GridPitch <= 0:
		return fmt.Errorf("%w: grid pitch %d", ErrInvalidOptions, o.GridPitch)
	case o.GridWidth <= 0:
		return fmt.Errorf("%w: grid width %d", ErrInvalidOptions, o.GridWidth)
	case o.NumberSpacing < 0:
		return fmt.Errorf("%w: number spacing %d", ErrInvalidOptions, o.NumberSpacing)
	}
	return nil
}
