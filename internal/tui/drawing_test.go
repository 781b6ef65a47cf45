package tui

import (
	"strings"
	"testing"

	"github.com/bethropolis/regplay/internal/core/decoration"
	"github.com/bethropolis/regplay/internal/core/flags"
	"github.com/bethropolis/regplay/internal/render"
	"github.com/bethropolis/regplay/internal/theme"
	"github.com/bethropolis/regplay/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimTUI(t *testing.T, w, h int) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	tu, err := NewWithScreen(sim)
	require.NoError(t, err)
	sim.SetSize(w, h)
	t.Cleanup(tu.Close)
	return tu, sim
}

func rowText(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteString(string(c.Runes))
	}
	return b.String()
}

func styleAt(sim tcell.SimulationScreen, x, y int) tcell.Style {
	cells, w, _ := sim.GetContents()
	return cells[y*w+x].Style
}

func lines(text, pattern, rawFlags string) []render.Line {
	blocks := types.BlocksFromLines(strings.Split(text, "\n"))
	return render.Segments(decoration.Compute(blocks, pattern, flags.Normalize(rawFlags)))
}

func TestDrawPatternLine(t *testing.T) {
	tu, sim := newSimTUI(t, 20, 3)
	th := &theme.PlaygroundDark

	caretX := DrawPatternLine(tu, 0, PatternLine{Pattern: "a+b", Flags: "gi", Caret: 1}, th)
	tu.Show()

	assert.Equal(t, "/a+b/gi", strings.TrimRight(rowText(sim, 0), " "))
	assert.Equal(t, 2, caretX)
	assert.Equal(t, th.GetStyle(theme.StylePatternDelimiter), styleAt(sim, 0, 0))
	assert.Equal(t, th.GetStyle(theme.StylePatternFlags), styleAt(sim, 5, 0))
}

func TestDrawPatternLineInvalid(t *testing.T) {
	tu, sim := newSimTUI(t, 20, 3)
	th := &theme.PlaygroundDark

	DrawPatternLine(tu, 0, PatternLine{Pattern: "(", Flags: "g", Invalid: true}, th)
	tu.Show()
	assert.Equal(t, th.GetStyle(theme.StylePatternInvalid), styleAt(sim, 1, 0))
}

func TestDrawTextHighlights(t *testing.T) {
	tu, sim := newSimTUI(t, 20, 4)
	th := &theme.PlaygroundDark

	DrawText(tu, TextView{
		Lines:    lines("ab Cd\nEf", `[A-Z]\w+`, "g"),
		Top:      1,
		Height:   3,
		TabWidth: 4,
	}, th)
	tu.Show()

	assert.Equal(t, "ab Cd", strings.TrimRight(rowText(sim, 1), " "))
	assert.Equal(t, "Ef", strings.TrimRight(rowText(sim, 2), " "))
	assert.Equal(t, "", strings.TrimRight(rowText(sim, 3), " "))

	match := th.GetStyle(theme.StyleMatch)
	def := th.GetStyle(theme.StyleDefault)
	assert.Equal(t, def, styleAt(sim, 2, 1))
	assert.Equal(t, match, styleAt(sim, 3, 1))
	assert.Equal(t, match, styleAt(sim, 4, 1))
	assert.Equal(t, match, styleAt(sim, 0, 2))
}

func TestDrawTextTabsAndScroll(t *testing.T) {
	tu, sim := newSimTUI(t, 10, 2)
	th := &theme.PlaygroundDark

	DrawText(tu, TextView{
		Lines:    lines("\tXy\nskip", "X", "g"),
		Top:      0,
		Height:   1,
		ViewX:    2,
		TabWidth: 4,
	}, th)
	tu.Show()

	assert.Equal(t, "  Xy", strings.TrimRight(rowText(sim, 0), " "))
	assert.Equal(t, th.GetStyle(theme.StyleMatch), styleAt(sim, 2, 0))
}

func TestDrawTextEmptyMatchMarker(t *testing.T) {
	tu, sim := newSimTUI(t, 10, 1)
	th := &theme.PlaygroundDark

	DrawText(tu, TextView{Lines: lines("ab", "^", "g"), Height: 1, TabWidth: 4}, th)
	tu.Show()

	assert.Equal(t, th.GetStyle(theme.StyleMatchEmpty), styleAt(sim, 0, 0))
	assert.Equal(t, th.GetStyle(theme.StyleDefault), styleAt(sim, 1, 0))
}
