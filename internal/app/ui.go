package app

import (
	"github.com/bethropolis/regplay/internal/config"
	"github.com/bethropolis/regplay/internal/logger"
	"github.com/bethropolis/regplay/internal/modehandler"
	"github.com/bethropolis/regplay/internal/render"
	"github.com/bethropolis/regplay/internal/tui"
	"github.com/bethropolis/regplay/internal/utils"
)

// Draw clears the screen and redraws the pattern line, the text pane and
// the status bar.
func (a *App) Draw() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.updateStatusBarContent()

	th := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	textTop := config.PatternLineHeight
	textHeight := height - config.PatternLineHeight - config.StatusBarHeight
	if textHeight < 0 {
		textHeight = 0
	}
	a.editor.SetViewSize(width, textHeight)

	logger.DebugTagf("draw", "Draw: screen %dx%d, text pane height %d", width, height, textHeight)

	a.tuiManager.Clear()
	caretX := tui.DrawPatternLine(a.tuiManager, 0, tui.PatternLine{
		Pattern: a.pattern.Text(),
		Flags:   a.finder.Flags().String(),
		Caret:   a.pattern.Caret(),
		Invalid: a.finder.LastError() != nil,
	}, th)

	viewY, viewX := a.editor.GetViewport()
	tui.DrawText(a.tuiManager, tui.TextView{
		Lines:    render.Segments(a.finder.Decoration()),
		Top:      textTop,
		Height:   textHeight,
		ViewY:    viewY,
		ViewX:    viewX,
		TabWidth: a.editor.TabWidth,
	}, th)

	if height > textTop {
		a.statusBar.Draw(screen, height-config.StatusBarHeight, width, th)
	}

	if a.modeHandler.GetCurrentMode() == modehandler.ModePattern {
		tui.DrawCursor(a.tuiManager, caretX, 0)
	} else {
		cur := a.editor.GetCursor()
		line, _ := a.editor.GetBuffer().Line(cur.Line)
		x := utils.VisualColumn(string(line), cur.Col, a.editor.TabWidth) - viewX
		y := textTop + cur.Line - viewY
		if y >= textTop+textHeight {
			y = -1
		}
		tui.DrawCursor(a.tuiManager, x, y)
	}
	a.tuiManager.Show()
}

// updateStatusBarContent pushes the current state to the status bar.
func (a *App) updateStatusBarContent() {
	buf := a.editor.GetBuffer()
	result := a.finder.Decoration()
	a.statusBar.SetMode(a.modeHandler.GetCurrentModeString())
	a.statusBar.SetFileInfo(buf.FilePath(), buf.IsModified())
	a.statusBar.SetCursorInfo(a.editor.GetCursor())
	a.statusBar.SetMatchInfo(a.finder.Flags().String(), len(result.Spans), result.MatchedBlocks(), result.Err)
}
