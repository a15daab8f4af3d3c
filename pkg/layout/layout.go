// Package layout positions glyph runs on a baseline. It is a small consumer
// of foreach: glyph IDs and advances arrive as views over whatever buffers
// the shaper produced.
package layout

import (
	"golang.org/x/image/math/fixed"

	"github.com/rawbytedev/foreach"
)

// GlyphID is a glyph index within a font.
type GlyphID uint16

// Placement is a glyph and the pen position it is drawn at.
type Placement struct {
	Glyph GlyphID
	Dot   fixed.Point26_6
}

// Place lays glyphs out left to right starting at origin, advancing the pen
// by the matching advance after each glyph. Glyphs without an advance (or
// advances without a glyph) are dropped.
func Place(origin fixed.Point26_6, glyphs foreach.View[GlyphID], advances foreach.View[fixed.Int26_6]) ([]Placement, error) {
	pairs, err := foreach.Zip(glyphs, advances, glyphs.Len())
	if err != nil {
		return nil, err
	}
	out := make([]Placement, len(pairs))
	dot := origin
	for i, p := range pairs {
		out[i] = Placement{Glyph: p.First, Dot: dot}
		dot.X += p.Second
	}
	return out, nil
}

// Width returns the sum of advances.
func Width(advances foreach.View[fixed.Int26_6]) (w fixed.Int26_6, err error) {
	c := advances.Cursor()
	defer func() {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	for c.Next() {
		w += c.Current()
	}
	return w, c.Err()
}

// Bounds returns the rectangle covered by placements with the given ascent
// and descent; the last glyph extends by its own advance.
func Bounds(placed []Placement, last fixed.Int26_6, ascent, descent fixed.Int26_6) fixed.Rectangle26_6 {
	if len(placed) == 0 {
		return fixed.Rectangle26_6{}
	}
	first, end := placed[0].Dot, placed[len(placed)-1].Dot
	return fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: first.X, Y: first.Y - ascent},
		Max: fixed.Point26_6{X: end.X + last, Y: end.Y + descent},
	}
}
