package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want ActionEvent
	}{
		{"plain rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionEvent{Action: ActionInsertRune, Rune: 'x'}},
		{"shifted rune", tcell.NewEventKey(tcell.KeyRune, 'X', tcell.ModShift), ActionEvent{Action: ActionInsertRune, Rune: 'X'}},
		{"alt g", tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModAlt), ActionEvent{Action: ActionToggleGlobal}},
		{"alt m", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModAlt), ActionEvent{Action: ActionToggleMultiline}},
		{"alt i", tcell.NewEventKey(tcell.KeyRune, 'i', tcell.ModAlt), ActionEvent{Action: ActionToggleInsensitive}},
		{"alt unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModAlt), ActionEvent{Action: ActionUnknown}},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionEvent{Action: ActionSwitchMode}},
		{"ctrl y", tcell.NewEventKey(tcell.KeyCtrlY, 0, tcell.ModCtrl), ActionEvent{Action: ActionCopyMatches}},
		{"ctrl u", tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModCtrl), ActionEvent{Action: ActionClearPattern}},
		{"ctrl c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionEvent{Action: ActionQuit}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionEvent{Action: ActionQuit}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionEvent{Action: ActionInsertNewLine}},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), ActionEvent{Action: ActionDeleteCharBackward}},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), ActionEvent{Action: ActionDeleteCharForward}},
		{"shift arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModShift), ActionEvent{Action: ActionMoveLeft}},
		{"home", tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone), ActionEvent{Action: ActionMoveHome}},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ActionEvent{Action: ActionUnknown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ProcessEvent(tt.ev))
		})
	}
}
