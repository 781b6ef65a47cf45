// Package render turns a decoration result into drawable runs and marked-up
// text.
package render

import (
	"strings"

	"github.com/bethropolis/regplay/internal/core/decoration"
	"github.com/bethropolis/regplay/internal/types"
)

// Segment is a run of text drawn with one style.
type Segment struct {
	Text        string
	Start       int // Rune column of the first rune
	Highlighted bool
}

// Line is one block broken into segments. Segments cover the block text
// exactly, in order; a zero-length highlighted segment marks an empty match.
type Line struct {
	Block    int
	Segments []Segment
}

// Segments splits every block of r into plain and highlighted runs.
// A NoHighlight result yields one plain segment per block.
func Segments(r decoration.Result) []Line {
	lines := make([]Line, len(r.Blocks))
	highlighted := r.IsHighlighted()
	for i, blk := range r.Blocks {
		var spans []types.MatchSpan
		if highlighted {
			spans = r.SpansForBlock(blk.Index)
		}
		lines[i] = Line{Block: blk.Index, Segments: blockSegments(blk.Text, spans)}
	}
	return lines
}

func blockSegments(text string, spans []types.MatchSpan) []Segment {
	runes := []rune(text)
	var segs []Segment
	pos := 0
	for _, s := range spans {
		start := clamp(s.Start, pos, len(runes))
		end := clamp(s.End, start, len(runes))
		if start > pos {
			segs = append(segs, Segment{Text: string(runes[pos:start]), Start: pos})
		}
		segs = append(segs, Segment{Text: string(runes[start:end]), Start: start, Highlighted: true})
		pos = end
	}
	if pos < len(runes) || len(segs) == 0 {
		segs = append(segs, Segment{Text: string(runes[pos:]), Start: pos})
	}
	return segs
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Markup renders r as text with every highlighted run wrapped in open and
// close. Blocks are joined with '\n'.
func Markup(r decoration.Result, open, close string) string {
	var b strings.Builder
	for i, line := range Segments(r) {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, seg := range line.Segments {
			if seg.Highlighted {
				b.WriteString(open)
				b.WriteString(seg.Text)
				b.WriteString(close)
			} else {
				b.WriteString(seg.Text)
			}
		}
	}
	return b.String()
}

// Plain joins the block texts with '\n', exactly as a NoHighlight result
// renders.
func Plain(blocks []types.TextBlock) string {
	texts := make([]string, len(blocks))
	for i, blk := range blocks {
		texts[i] = blk.Text
	}
	return strings.Join(texts, "\n")
}

// HighlightedAt reports whether the rune at col falls in a highlighted
// segment of line.
func HighlightedAt(line Line, col int) bool {
	for _, seg := range line.Segments {
		if !seg.Highlighted {
			continue
		}
		end := seg.Start + len([]rune(seg.Text))
		if col >= seg.Start && col < end {
			return true
		}
	}
	return false
}
