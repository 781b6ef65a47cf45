package statusbar

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/regplay/internal/theme"
	"github.com/bethropolis/regplay/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(string(c.Runes))
	}
	return b.String()
}

func TestDrawSummary(t *testing.T) {
	s := newScreen(t, 70, 1)
	sb := New(DefaultConfig())
	sb.SetMode("TEXT")
	sb.SetMatchInfo("gi", 3, 2, nil)
	sb.SetFileInfo("notes.txt", true)
	sb.SetCursorInfo(types.Position{Line: 1, Col: 4})

	sb.Draw(s, 0, 70, &theme.PlaygroundDark)
	s.Show()

	row := rowText(s, 0)
	assert.True(t, strings.HasPrefix(row, " TEXT  [gi]  3 matches in 2 lines"), row)
	assert.True(t, strings.HasSuffix(row, "notes.txt [Modified]  Ln 2, Col 5 "), row)
}

func TestDrawInvalidPatternHint(t *testing.T) {
	s := newScreen(t, 60, 1)
	sb := New(DefaultConfig())
	sb.SetMode("PATTERN")
	sb.SetMatchInfo("", 0, 0, errors.New("bad"))

	sb.Draw(s, 0, 60, &theme.PlaygroundDark)
	s.Show()
	assert.Contains(t, rowText(s, 0), " PATTERN  [-]  no matches  invalid pattern")
}

func TestTemporaryMessageExpires(t *testing.T) {
	s := newScreen(t, 40, 1)
	now := time.Unix(1000, 0)
	sb := New(Config{MessageTimeout: time.Second})
	sb.now = func() time.Time { return now }
	sb.SetMode("TEXT")
	sb.SetMatchInfo("g", 1, 1, nil)

	sb.SetTemporaryMessage("Copied %d matches", 1)
	sb.Draw(s, 0, 40, &theme.PlaygroundDark)
	s.Show()
	assert.Contains(t, rowText(s, 0), "Copied 1 matches")

	now = now.Add(2 * time.Second)
	sb.Draw(s, 0, 40, &theme.PlaygroundDark)
	s.Show()
	assert.Contains(t, rowText(s, 0), "1 match in 1 line")
}
