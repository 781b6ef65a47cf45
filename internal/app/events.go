package app

import (
	"github.com/bethropolis/regplay/internal/event"
	"github.com/bethropolis/regplay/internal/logger"
)

// handleDecorationChanged schedules a redraw after every recompute pass.
func (a *App) handleDecorationChanged(e event.Event) bool {
	if data, ok := e.Data.(event.DecorationChangedData); ok {
		logger.DebugTagf("app", "App: decoration changed, %d matches", data.MatchCount)
	}
	a.requestRedraw()
	return false
}

func (a *App) handleBufferLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.BufferLoadedData); ok {
		a.statusBar.SetFileInfo(data.FilePath, false)
	}
	a.requestRedraw()
	return false
}

func (a *App) handleModeChanged(e event.Event) bool {
	a.requestRedraw()
	return false
}

func (a *App) handleThemeChanged(e event.Event) bool {
	logger.Debugf("App: theme changed to %q", a.themeManager.Current().Name)
	a.requestRedraw()
	return false
}
