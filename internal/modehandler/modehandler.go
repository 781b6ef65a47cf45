// internal/modehandler/modehandler.go
package modehandler

import (
	"sync"

	"github.com/bethropolis/regplay/internal/core"
	"github.com/bethropolis/regplay/internal/core/clipboard"
	"github.com/bethropolis/regplay/internal/core/find"
	"github.com/bethropolis/regplay/internal/event"
	"github.com/bethropolis/regplay/internal/input"
	"github.com/bethropolis/regplay/internal/logger"
	"github.com/bethropolis/regplay/internal/statusbar"
	"github.com/gdamore/tcell/v2"
)

// InputMode says which field receives typed text.
type InputMode int

const (
	ModePattern InputMode = iota
	ModeText
)

func (m InputMode) String() string {
	if m == ModeText {
		return "TEXT"
	}
	return "PATTERN"
}

// ModeHandler routes decoded key presses to the pattern field or the
// document, depending on the focused field.
type ModeHandler struct {
	editor         *core.Editor
	pattern        *core.PatternField
	finder         *find.Manager
	clipboard      *clipboard.Manager
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}
	quitOnce       sync.Once

	currentMode InputMode
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	Pattern        *core.PatternField
	Finder         *find.Manager
	Clipboard      *clipboard.Manager
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{} // Closed once on quit
}

// New creates a new ModeHandler focused on the pattern field.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.Pattern == nil || cfg.Finder == nil || cfg.Clipboard == nil ||
		cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	mh := &ModeHandler{
		editor:         cfg.Editor,
		pattern:        cfg.Pattern,
		finder:         cfg.Finder,
		clipboard:      cfg.Clipboard,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModePattern,
	}
	mh.statusBar.SetMode(mh.currentMode.String())
	return mh
}

// HandleKeyEvent decodes ev and applies it. Returns true if a redraw is needed.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev)
	if handled, redraw := mh.handleCommon(actionEvent); handled {
		return redraw
	}

	switch mh.currentMode {
	case ModePattern:
		return mh.handleActionPattern(actionEvent)
	case ModeText:
		return mh.handleActionText(actionEvent)
	default:
		logger.Warnf("ModeHandler: unknown input mode %d", mh.currentMode)
		return false
	}
}

// GetCurrentMode returns the focused field.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCurrentModeString returns the label shown in the status bar.
func (mh *ModeHandler) GetCurrentModeString() string {
	return mh.currentMode.String()
}

// SetMode moves focus to mode.
func (mh *ModeHandler) SetMode(mode InputMode) {
	if mode == mh.currentMode {
		return
	}
	mh.currentMode = mode
	mh.statusBar.SetMode(mode.String())
	mh.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{Mode: mode.String()})
	logger.DebugTagf("input", "ModeHandler: focus moved to %s", mode)
}

func (mh *ModeHandler) quit() {
	mh.quitOnce.Do(func() {
		logger.Debugf("ModeHandler: quit requested")
		close(mh.quitSignal)
	})
}
