package examine

import "github.com/submersibletoaster/pixelgrid/geom"

// NumberMargin - offset of a number from its cell's top left corner
var NumberMargin = geom.Delta{DX: 2, DY: 2}

// Numbering - the label drawn for a cell
type Numbering struct {
	Position geom.Position
	Value    int
}

// Number labels cells 0..n-1 in the order given. It does not sort; the
// order is whatever the caller scanned.
func Number(cells []Cell) []Numbering {
	out := make([]Numbering, 0, len(cells))
	for i, c := range cells {
		out = append(out, Numbering{
			Position: c.Position.Translate(NumberMargin),
			Value:    i,
		})
	}
	return out
}
