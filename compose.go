// Package pixelgrid turns the incremental steps of a pixel art piece into
// annotated build diagrams: earlier steps dimmed, the new pixels on top,
// each newly touched cell outlined and numbered, and a reference grid over
// everything.
package pixelgrid

import (
	"fmt"
	"image"

	log "github.com/sirupsen/logrus"

	"github.com/submersibletoaster/pixelgrid/examine"
	"github.com/submersibletoaster/pixelgrid/geom"
	"github.com/submersibletoaster/pixelgrid/glyph"
	"github.com/submersibletoaster/pixelgrid/layer"
)

// Diagrammer holds what stays fixed across the steps of one run.
type Diagrammer struct {
	Font    glyph.DigitFont
	Options Options
	// Grid - reference grid overlay, sized to the scaled background
	Grid *image.NRGBA
}

// NewDiagrammer builds the grid overlay once for images of size, already
// scaled.
func NewDiagrammer(size geom.Size, font glyph.DigitFont, opt Options) *Diagrammer {
	pitch := geom.Size{Width: opt.GridPitch, Height: opt.GridPitch}
	return &Diagrammer{
		Font:    font,
		Options: opt,
		Grid:    layer.Grid(size, pitch, opt.GridWidth, opt.GridColor),
	}
}

// CreateDiagram draws one step. drawn is everything visible before this
// step, background included; newLayer is what the step adds. Neither is
// modified.
func (d *Diagrammer) CreateDiagram(drawn, newLayer image.Image) *image.NRGBA {
	size := geom.SizeOf(drawn)

	cells := examine.TouchedCells(newLayer, d.Options.CellSize)
	numbers := examine.Number(cells)
	outlines := layer.Outlines(size, cells)
	labels := layer.Numbers(size, numbers, d.Font, d.Options.NumberSpacing)
	log.Debugf("CreateDiagram: %d touched cells", len(cells))

	return Composite(
		Filled(size, d.Options.Background),
		Dim(drawn, d.Options.DimAlpha),
		newLayer,
		outlines,
		labels,
		d.Grid,
	)
}

// ComposeSteps returns one diagram for every step after the first. The
// first step is the background the others are drawn over. Steps must all
// be the same size.
func ComposeSteps(steps []image.Image, font glyph.DigitFont, opt Options) ([]*image.NRGBA, error) {
	if len(steps) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientSteps, len(steps))
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	want := geom.SizeOf(steps[0])
	for i, s := range steps[1:] {
		if have := geom.SizeOf(s); have != want {
			return nil, fmt.Errorf("%w: step %d is %v, background is %v", ErrSizeMismatch, i+1, have, want)
		}
	}

	scaled := make([]*image.NRGBA, len(steps))
	for i, s := range steps {
		scaled[i] = Scale(s, opt.Scale)
	}
	background, layers := scaled[0], scaled[1:]

	d := NewDiagrammer(geom.SizeOf(background), font, opt)

	// drawn accumulates the background and every layer already shown.
	drawn := Clone(background)
	out := make([]*image.NRGBA, 0, len(layers))
	for i, l := range layers {
		log.Debugf("ComposeSteps: step %d of %d", i+1, len(layers))
		out = append(out, d.CreateDiagram(drawn, l))
		Over(drawn, l)
	}
	return out, nil
}
