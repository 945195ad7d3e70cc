// Package layout turns a poem version into a positioned grid of glyph
// cells, resolving right-to-left and vertical scripts by index arithmetic
// alone. No Unicode directional or vertical control characters are ever
// emitted; terminal emulators disagree too much about those.
//
// Coordinates are logical: one cell per grapheme cluster, regardless of how
// many terminal columns the glyph occupies when painted. The scroll axis is
// always the row axis: rows are source lines for horizontal text and
// depth-within-columns for vertical text.
package layout

import (
	"github.com/rivo/uniseg"

	"leaves/internal/poem"
)

// Cell is one positioned grapheme. Row/Col are logical grid coordinates;
// SrcLine/SrcCol trace the grapheme back to its place in the source text.
// Bold and Italic carry the emphasis spans the loader stripped.
type Cell struct {
	Row, Col int
	Grapheme string
	SrcLine  int
	SrcCol   int
	Bold     bool
	Italic   bool
}

// Layout is the direction-resolved grid for one version.
//
// ScrollExtent is the number of slots along the scroll axis: the line count
// for horizontal text, the longest line's grapheme count for vertical text.
// CrossExtent is the fixed perpendicular extent.
type Layout struct {
	Cells        []Cell
	ScrollExtent int
	CrossExtent  int
	RTL          bool
	Vertical     bool
}

// Compute lays out a version. Every grapheme produces exactly one cell, and
// every source line, empty lines included, occupies one row or column slot.
func Compute(v poem.Version) Layout {
	if v.Vertical {
		return computeVertical(v)
	}
	return computeHorizontal(v)
}

func computeHorizontal(v poem.Version) Layout {
	lines := graphemeLines(v.Lines)

	width := 0
	for _, gs := range lines {
		if len(gs) > width {
			width = len(gs)
		}
	}

	l := Layout{
		ScrollExtent: len(lines),
		CrossExtent:  width,
		RTL:          v.RTL,
	}
	for i, gs := range lines {
		off := 0
		for j, g := range gs {
			col := j
			if v.RTL {
				// Mirror the line so reading order runs right to left.
				col = width - 1 - j
			}
			bold, italic := emphasisAt(v.Spans, i, off)
			l.Cells = append(l.Cells, Cell{
				Row:      i,
				Col:      col,
				Grapheme: g,
				SrcLine:  i,
				SrcCol:   j,
				Bold:     bold,
				Italic:   italic,
			})
			off += len(g)
		}
	}
	return l
}

// computeVertical maps source line i to column slot i, read top to bottom.
// Column slots are painted right to left by the renderer, so the first line
// ends up rightmost; the scroll axis is depth through the columns.
func computeVertical(v poem.Version) Layout {
	lines := graphemeLines(v.Lines)

	depth := 0
	for _, gs := range lines {
		if len(gs) > depth {
			depth = len(gs)
		}
	}

	l := Layout{
		ScrollExtent: depth,
		CrossExtent:  len(lines),
		RTL:          v.RTL,
		Vertical:     true,
	}
	for i, gs := range lines {
		off := 0
		for j, g := range gs {
			bold, italic := emphasisAt(v.Spans, i, off)
			l.Cells = append(l.Cells, Cell{
				Row:      j,
				Col:      i,
				Grapheme: g,
				SrcLine:  i,
				SrcCol:   j,
				Bold:     bold,
				Italic:   italic,
			})
			off += len(g)
		}
	}
	return l
}

// emphasisAt reports the emphasis flags covering byte offset off of line.
func emphasisAt(spans []poem.Span, line, off int) (bold, italic bool) {
	for _, s := range spans {
		if s.Line == line && off >= s.Start && off < s.End {
			bold = bold || s.Bold
			italic = italic || s.Italic
		}
	}
	return bold, italic
}

// graphemeLines splits each line into grapheme clusters. Whitespace is kept
// verbatim; spacing in verse is intentional.
func graphemeLines(lines []string) [][]string {
	out := make([][]string, len(lines))
	for i, line := range lines {
		var gs []string
		rest := line
		state := -1
		for len(rest) > 0 {
			var g string
			g, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			gs = append(gs, g)
		}
		out[i] = gs
	}
	return out
}
