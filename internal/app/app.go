// internal/app/app.go
package app

import (
	"fmt"
	"sync"

	"github.com/bethropolis/regplay/internal/buffer"
	"github.com/bethropolis/regplay/internal/config"
	"github.com/bethropolis/regplay/internal/core"
	"github.com/bethropolis/regplay/internal/core/clipboard"
	"github.com/bethropolis/regplay/internal/core/decoration"
	"github.com/bethropolis/regplay/internal/core/find"
	"github.com/bethropolis/regplay/internal/core/flags"
	"github.com/bethropolis/regplay/internal/core/match"
	"github.com/bethropolis/regplay/internal/event"
	"github.com/bethropolis/regplay/internal/input"
	"github.com/bethropolis/regplay/internal/logger"
	"github.com/bethropolis/regplay/internal/modehandler"
	"github.com/bethropolis/regplay/internal/statusbar"
	"github.com/bethropolis/regplay/internal/theme"
	"github.com/bethropolis/regplay/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App wires the playground together and runs its loops.
type App struct {
	tuiManager   *tui.TUI
	editor       *core.Editor
	pattern      *core.PatternField
	finder       *find.Manager
	clipboard    *clipboard.Manager
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.ModeHandler
	themeManager *theme.Manager

	// Held while handling a key or drawing; the two run on different goroutines
	mu sync.Mutex

	quit          chan struct{}
	redrawRequest chan struct{}
}

// DecorationOptions maps the match settings onto builder options.
func DecorationOptions(cfg *config.Config) decoration.Options {
	return decoration.Options{
		ResetOnMiss: cfg.Match.ResetOnMiss,
		Match:       match.Options{MatchTimeout: cfg.Match.MatchTimeout.Duration},
	}
}

// NewApp creates the playground over buf. A nil screen opens the terminal;
// a nil theme manager uses the built-in theme.
func NewApp(cfg *config.Config, buf buffer.Buffer, screen tcell.Screen, themes *theme.Manager) (*App, error) {
	var (
		tuiManager *tui.TUI
		err        error
	)
	if screen == nil {
		tuiManager, err = tui.New()
	} else {
		tuiManager, err = tui.NewWithScreen(screen)
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	if themes == nil {
		themes = theme.NewManager("")
	}

	eventManager := event.NewManager()
	editor := core.NewEditor(buf, cfg.Playground.TabWidth)
	editor.SetEventManager(eventManager)

	pattern := core.NewPatternField(cfg.Playground.Pattern)
	finder := find.NewManager(editor, eventManager, DecorationOptions(cfg),
		cfg.Playground.Pattern, flags.Normalize(cfg.Playground.Flags))

	statusBar := statusbar.New(statusbar.Config{MessageTimeout: config.MessageTimeout})
	clip := clipboard.NewManager(cfg.Playground.SystemClipboard)
	quitChan := make(chan struct{})

	modeHandler := modehandler.New(modehandler.Config{
		Editor:         editor,
		Pattern:        pattern,
		Finder:         finder,
		Clipboard:      clip,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		QuitSignal:     quitChan,
	})

	a := &App{
		tuiManager:    tuiManager,
		editor:        editor,
		pattern:       pattern,
		finder:        finder,
		clipboard:     clip,
		statusBar:     statusBar,
		eventManager:  eventManager,
		modeHandler:   modeHandler,
		themeManager:  themes,
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
	}

	eventManager.Subscribe(event.TypeDecorationChanged, a.handleDecorationChanged)
	eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoaded)
	eventManager.Subscribe(event.TypeModeChanged, a.handleModeChanged)
	eventManager.Subscribe(event.TypeThemeChanged, a.handleThemeChanged)

	logger.Infof("App: playground ready, pattern /%s/%s over %d lines",
		finder.Pattern(), finder.Flags(), buf.LineCount())
	return a, nil
}

// Run starts the event loop and draws until quit.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("Tab switch field | Alt+g/m/i flags | Ctrl+Y copy matches | Esc quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("App: exiting")
			return nil
		case <-a.redrawRequest:
			a.Draw()
		}
	}
}

// eventLoop handles terminal events, delegating keys to the ModeHandler.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false
		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.Sync()
			needsRedraw = true
		case *tcell.EventKey:
			needsRedraw = a.HandleKey(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// HandleKey applies one key press. Returns true if a redraw is needed.
func (a *App) HandleKey(ev *tcell.EventKey) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.modeHandler.HandleKeyEvent(ev)
}

// SetTheme activates a registered theme by name.
func (a *App) SetTheme(name string) error {
	if err := a.themeManager.SetTheme(name); err != nil {
		return err
	}
	a.eventManager.Dispatch(event.TypeThemeChanged, nil)
	return nil
}

// Finder exposes the live decoration state.
func (a *App) Finder() *find.Manager {
	return a.finder
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // A redraw is already pending
	}
}
