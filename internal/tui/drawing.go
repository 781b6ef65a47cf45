// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/regplay/internal/render"
	"github.com/bethropolis/regplay/internal/theme"
	"github.com/bethropolis/regplay/internal/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// PatternLine is what the top row shows.
type PatternLine struct {
	Pattern string
	Flags   string
	Caret   int  // Rune index in Pattern
	Invalid bool // Last pass failed to compile
}

// TextView is the slice of the document visible in the text pane.
type TextView struct {
	Lines    []render.Line
	Top      int // Screen row of the pane
	Height   int
	ViewY    int // First document line shown
	ViewX    int // First cell column shown
	TabWidth int
}

// fill paints row y with style.
func (t *TUI) fill(y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}
}

// putString draws s from column x and returns the column after it.
func (t *TUI) putString(x, y, width int, s string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := gr.Width()
		if x+w > width {
			break
		}
		runes := gr.Runes()
		t.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}

// DrawPatternLine draws "/pattern/flags" on row y and returns the screen
// column of the caret.
func DrawPatternLine(t *TUI, y int, line PatternLine, th *theme.Theme) int {
	width, _ := t.Size()
	base := th.GetStyle(theme.StylePatternLine)
	t.fill(y, width, th.GetStyle(theme.StyleDefault))

	patternStyle := base
	if line.Invalid {
		patternStyle = th.GetStyle(theme.StylePatternInvalid)
	}
	delim := th.GetStyle(theme.StylePatternDelimiter)

	x := t.putString(0, y, width, "/", delim)
	caretX := x + utils.VisualColumn(line.Pattern, line.Caret, 1)
	x = t.putString(x, y, width, line.Pattern, patternStyle)
	x = t.putString(x, y, width, "/", delim)
	t.putString(x, y, width, line.Flags, th.GetStyle(theme.StylePatternFlags))
	return caretX
}

// DrawText draws the visible document lines with their highlights.
func DrawText(t *TUI, view TextView, th *theme.Theme) {
	width, _ := t.Size()
	if view.Height <= 0 || width <= 0 {
		return
	}
	defaultStyle := th.GetStyle(theme.StyleDefault)
	matchStyle := th.GetStyle(theme.StyleMatch)
	emptyStyle := th.GetStyle(theme.StyleMatchEmpty)

	for row := 0; row < view.Height; row++ {
		y := view.Top + row
		t.fill(y, width, defaultStyle)

		idx := view.ViewY + row
		if idx < 0 || idx >= len(view.Lines) {
			continue
		}

		visual := 0
		for _, seg := range view.Lines[idx].Segments {
			style := defaultStyle
			if seg.Highlighted {
				style = matchStyle
			}
			if seg.Highlighted && seg.Text == "" {
				// Empty match: mark the cell it sits in front of
				if x := visual - view.ViewX; x >= 0 && x < width {
					mainc, comb, st, _ := t.screen.GetContent(x, y)
					if st == defaultStyle {
						t.screen.SetContent(x, y, mainc, comb, emptyStyle)
					}
				}
				continue
			}
			visual = drawSegment(t, y, width, visual, view, seg.Text, style, emptyStyle)
		}
	}
}

// drawSegment draws text starting at document cell column visual and returns
// the column after it.
func drawSegment(t *TUI, y, width, visual int, view TextView, text string, style, emptyStyle tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		w := utils.ClusterWidth(runes, gr.Width(), visual, view.TabWidth)
		x := visual - view.ViewX
		if x >= width {
			return visual + w
		}
		if x >= 0 {
			// Keep the empty-match marker if one was placed on this cell
			_, _, prev, _ := t.screen.GetContent(x, y)
			cellStyle := style
			if prev == emptyStyle && style != emptyStyle {
				cellStyle = emptyStyle
			}
			if runes[0] == '\t' {
				for i := 0; i < w && x+i < width; i++ {
					t.screen.SetContent(x+i, y, ' ', nil, cellStyle)
				}
			} else {
				t.screen.SetContent(x, y, runes[0], runes[1:], cellStyle)
				for i := 1; i < w && x+i < width; i++ {
					t.screen.SetContent(x+i, y, ' ', nil, cellStyle)
				}
			}
		}
		visual += w
	}
	return visual
}

// DrawCursor shows the terminal cursor at (x, y), or hides it when the cell
// is off screen.
func DrawCursor(t *TUI, x, y int) {
	width, height := t.Size()
	if x < 0 || y < 0 || x >= width || y >= height {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(x, y)
}
