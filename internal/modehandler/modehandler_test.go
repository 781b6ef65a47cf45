package modehandler

import (
	"testing"

	"github.com/bethropolis/regplay/internal/buffer"
	"github.com/bethropolis/regplay/internal/core"
	"github.com/bethropolis/regplay/internal/core/clipboard"
	"github.com/bethropolis/regplay/internal/core/decoration"
	"github.com/bethropolis/regplay/internal/core/find"
	"github.com/bethropolis/regplay/internal/core/flags"
	"github.com/bethropolis/regplay/internal/event"
	"github.com/bethropolis/regplay/internal/input"
	"github.com/bethropolis/regplay/internal/statusbar"
	"github.com/bethropolis/regplay/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	mh      *ModeHandler
	editor  *core.Editor
	pattern *core.PatternField
	finder  *find.Manager
	clip    *clipboard.Manager
	events  *event.Manager
	quit    chan struct{}
}

func newFixture(t *testing.T, text, pattern, rawFlags string) *fixture {
	t.Helper()
	events := event.NewManager()
	ed := core.NewEditor(buffer.NewFromText(text), 4)
	ed.SetEventManager(events)
	field := core.NewPatternField(pattern)
	finder := find.NewManager(ed, events, decoration.DefaultOptions(), pattern, flags.Normalize(rawFlags))
	clip := clipboard.NewManager(false)
	quit := make(chan struct{})

	mh := New(Config{
		Editor:         ed,
		Pattern:        field,
		Finder:         finder,
		Clipboard:      clip,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   events,
		StatusBar:      statusbar.New(statusbar.DefaultConfig()),
		QuitSignal:     quit,
	})
	return &fixture{mh: mh, editor: ed, pattern: field, finder: finder, clip: clip, events: events, quit: quit}
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func typeRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func alt(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModAlt)
}

func TestTypingPatternRecomputes(t *testing.T) {
	f := newFixture(t, "Cat and Dog", "", "g")
	require.False(t, f.finder.HasHighlights())

	for _, r := range `[A-Z]\w+` {
		assert.True(t, f.mh.HandleKeyEvent(typeRune(r)))
	}
	assert.Equal(t, `[A-Z]\w+`, f.finder.Pattern())
	assert.Equal(t, []string{"Cat", "Dog"}, f.finder.MatchedText())

	f.mh.HandleKeyEvent(key(tcell.KeyBackspace2))
	assert.Equal(t, `[A-Z]\w`, f.finder.Pattern())
	assert.Equal(t, []string{"Ca", "Do"}, f.finder.MatchedText())
}

func TestCaretMovesDoNotRecompute(t *testing.T) {
	f := newFixture(t, "abc", "b", "g")
	passes := 0
	f.events.Subscribe(event.TypeDecorationChanged, func(event.Event) bool {
		passes++
		return false
	})

	f.mh.HandleKeyEvent(key(tcell.KeyLeft))
	f.mh.HandleKeyEvent(key(tcell.KeyHome))
	f.mh.HandleKeyEvent(key(tcell.KeyDelete))
	assert.Equal(t, "", f.pattern.Text())
	assert.Equal(t, 1, passes)

	// Nothing left to delete
	f.mh.HandleKeyEvent(key(tcell.KeyDelete))
	assert.Equal(t, 1, passes)
}

func TestFlagToggles(t *testing.T) {
	f := newFixture(t, "Cat cat", "cat", "")

	f.mh.HandleKeyEvent(alt('g'))
	assert.Equal(t, "g", f.finder.Flags().String())
	f.mh.HandleKeyEvent(alt('i'))
	assert.Equal(t, "gi", f.finder.Flags().String())
	assert.Equal(t, []string{"Cat", "cat"}, f.finder.MatchedText())
	f.mh.HandleKeyEvent(alt('m'))
	assert.Equal(t, "gmi", f.finder.Flags().String())
	f.mh.HandleKeyEvent(alt('g'))
	assert.Equal(t, "mi", f.finder.Flags().String())
}

func TestSwitchModeAndEditText(t *testing.T) {
	f := newFixture(t, "lower", `[A-Z]\w+`, "g")
	var modes []string
	f.events.Subscribe(event.TypeModeChanged, func(e event.Event) bool {
		modes = append(modes, e.Data.(event.ModeChangedData).Mode)
		return false
	})

	assert.Equal(t, "PATTERN", f.mh.GetCurrentModeString())
	f.mh.HandleKeyEvent(key(tcell.KeyTab))
	assert.Equal(t, ModeText, f.mh.GetCurrentMode())

	f.mh.HandleKeyEvent(typeRune('X'))
	assert.Equal(t, []string{"Xlower"}, f.finder.MatchedText())
	assert.Equal(t, types.Position{Line: 0, Col: 1}, f.editor.GetCursor())

	f.mh.HandleKeyEvent(key(tcell.KeyBackspace))
	assert.False(t, f.finder.HasHighlights())

	// Up on the first line returns to the pattern
	f.mh.HandleKeyEvent(key(tcell.KeyUp))
	assert.Equal(t, ModePattern, f.mh.GetCurrentMode())
	assert.Equal(t, []string{"TEXT", "PATTERN"}, modes)
}

func TestEnterInPatternFocusesText(t *testing.T) {
	f := newFixture(t, "a\nb", "a", "g")
	f.mh.HandleKeyEvent(key(tcell.KeyEnter))
	assert.Equal(t, ModeText, f.mh.GetCurrentMode())

	f.mh.HandleKeyEvent(key(tcell.KeyEnter))
	assert.Equal(t, 3, f.editor.GetBuffer().LineCount())
}

func TestCopyMatches(t *testing.T) {
	f := newFixture(t, "Cat and Dog", `[A-Z]\w+`, "g")
	assert.True(t, f.mh.HandleKeyEvent(key(tcell.KeyCtrlY)))
	assert.Equal(t, "Cat\nDog", f.clip.Contents())
}

func TestClearPattern(t *testing.T) {
	f := newFixture(t, "Cat", "C", "g")
	assert.True(t, f.mh.HandleKeyEvent(key(tcell.KeyCtrlU)))
	assert.Equal(t, "", f.finder.Pattern())
	assert.False(t, f.finder.HasHighlights())
	assert.False(t, f.mh.HandleKeyEvent(key(tcell.KeyCtrlU)))
}

func TestQuitClosesOnce(t *testing.T) {
	f := newFixture(t, "", "", "")
	assert.False(t, f.mh.HandleKeyEvent(key(tcell.KeyEscape)))
	assert.NotPanics(t, func() { f.mh.HandleKeyEvent(key(tcell.KeyCtrlC)) })

	select {
	case <-f.quit:
	default:
		t.Fatal("quit signal not closed")
	}
}
