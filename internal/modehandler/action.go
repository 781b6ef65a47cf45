package modehandler

import (
	"github.com/bethropolis/regplay/internal/core/flags"
	"github.com/bethropolis/regplay/internal/input"
	"github.com/bethropolis/regplay/internal/logger"
)

var flagToggles = map[input.Action]flags.Flag{
	input.ActionToggleGlobal:      flags.Global,
	input.ActionToggleMultiline:   flags.Multiline,
	input.ActionToggleInsensitive: flags.CaseInsensitive,
}

// handleCommon runs the actions that behave the same in both modes.
func (mh *ModeHandler) handleCommon(ae input.ActionEvent) (handled, redraw bool) {
	if f, ok := flagToggles[ae.Action]; ok {
		mh.finder.ToggleFlag(f)
		state := "off"
		if mh.finder.Flags().Has(f) {
			state = "on"
		}
		mh.statusBar.SetTemporaryMessage("%s %s", f.Name(), state)
		return true, true
	}

	switch ae.Action {
	case input.ActionQuit:
		mh.quit()
		return true, false

	case input.ActionSwitchMode:
		if mh.currentMode == ModePattern {
			mh.SetMode(ModeText)
		} else {
			mh.SetMode(ModePattern)
		}
		return true, true

	case input.ActionCopyMatches:
		mh.copyMatches()
		return true, true

	case input.ActionClearPattern:
		if !mh.pattern.Clear() {
			return true, false
		}
		mh.finder.SetPattern("")
		return true, true
	}
	return false, false
}

func (mh *ModeHandler) copyMatches() {
	matched := mh.finder.MatchedText()
	if len(matched) == 0 {
		mh.statusBar.SetTemporaryMessage("Nothing to copy")
		return
	}
	n, err := mh.clipboard.CopyLines(matched)
	if err != nil {
		logger.Warnf("ModeHandler: copy matches: %v", err)
		mh.statusBar.SetTemporaryMessage("Copied %d matches (system clipboard unavailable)", n)
		return
	}
	mh.statusBar.SetTemporaryMessage("Copied %d matches", n)
}
