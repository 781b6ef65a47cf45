package modehandler

import (
	"github.com/bethropolis/regplay/internal/input"
)

// handleActionPattern edits the pattern field. Every change to the text is
// pushed to the finder, which recomputes only if the pattern differs.
func (mh *ModeHandler) handleActionPattern(ae input.ActionEvent) bool {
	changed := false
	switch ae.Action {
	case input.ActionInsertRune:
		mh.pattern.InsertRune(ae.Rune)
		changed = true
	case input.ActionDeleteCharBackward:
		changed = mh.pattern.DeleteBackward()
	case input.ActionDeleteCharForward:
		changed = mh.pattern.DeleteForward()
	case input.ActionMoveLeft:
		mh.pattern.MoveCaret(-1)
	case input.ActionMoveRight:
		mh.pattern.MoveCaret(1)
	case input.ActionMoveHome:
		mh.pattern.Home()
	case input.ActionMoveEnd:
		mh.pattern.End()
	case input.ActionInsertNewLine, input.ActionMoveDown:
		// Enter or Down hands focus to the text
		mh.SetMode(ModeText)
	default:
		return false
	}

	if changed {
		mh.finder.SetPattern(mh.pattern.Text())
	}
	return true
}
