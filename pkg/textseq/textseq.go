// Package textseq exposes text as foreach sequences of user-perceived
// characters (extended grapheme clusters).
package textseq

import (
	"github.com/rivo/uniseg"

	"github.com/rawbytedev/foreach"
)

// Clusters is the grapheme clusters of a string in visual order. Its length
// is not known without segmenting the whole text, so it does not implement
// foreach.Sized.
type Clusters struct {
	text string
}

// Graphemes returns the cluster sequence of text.
func Graphemes(text string) *Clusters {
	return &Clusters{text: text}
}

// View returns c as a sequence-mode view.
func (c *Clusters) View() foreach.View[string] {
	return foreach.OfSequence[string](c)
}

func (c *Clusters) Open() foreach.Handle[string] {
	return &handle{g: uniseg.NewGraphemes(c.text)}
}

// String returns the underlying text.
func (c *Clusters) String() string { return c.text }

// Count returns the number of clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

type handle struct {
	g *uniseg.Graphemes
}

func (h *handle) Next() bool      { return h.g.Next() }
func (h *handle) Current() string { return h.g.Str() }
func (h *handle) Reset()          { h.g.Reset() }
func (h *handle) Close() error    { return nil }
