package modehandler

import (
	"github.com/bethropolis/regplay/internal/event"
	"github.com/bethropolis/regplay/internal/input"
	"github.com/bethropolis/regplay/internal/logger"
)

// handleActionText edits the document. Buffer events raised by the editor
// drive the recompute.
func (mh *ModeHandler) handleActionText(ae input.ActionEvent) bool {
	actionProcessed := true
	originalCursor := mh.editor.GetCursor()

	switch ae.Action {
	case input.ActionMoveUp:
		if originalCursor.Line == 0 {
			mh.SetMode(ModePattern)
			return true
		}
		mh.editor.MoveCursor(-1, 0)
	case input.ActionMoveDown:
		mh.editor.MoveCursor(1, 0)
	case input.ActionMoveLeft:
		mh.editor.MoveCursor(0, -1)
	case input.ActionMoveRight:
		mh.editor.MoveCursor(0, 1)
	case input.ActionMovePageUp:
		mh.editor.PageMove(-1)
	case input.ActionMovePageDown:
		mh.editor.PageMove(1)
	case input.ActionMoveHome:
		mh.editor.Home()
	case input.ActionMoveEnd:
		mh.editor.End()

	case input.ActionInsertRune:
		if err := mh.editor.InsertRune(ae.Rune); err != nil {
			logger.Debugf("Err InsertRune: %v", err)
			actionProcessed = false
		}
	case input.ActionInsertNewLine:
		if err := mh.editor.InsertNewLine(); err != nil {
			logger.Debugf("Err InsertNewLine: %v", err)
			actionProcessed = false
		}
	case input.ActionDeleteCharBackward:
		deleted, err := mh.editor.DeleteBackward()
		if err != nil {
			logger.Debugf("Err DeleteBackward: %v", err)
		}
		actionProcessed = deleted
	case input.ActionDeleteCharForward:
		deleted, err := mh.editor.DeleteForward()
		if err != nil {
			logger.Debugf("Err DeleteForward: %v", err)
		}
		actionProcessed = deleted

	default:
		actionProcessed = false
	}

	if newCursor := mh.editor.GetCursor(); newCursor != originalCursor {
		mh.statusBar.SetCursorInfo(newCursor)
		mh.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: newCursor})
	}
	return actionProcessed
}
