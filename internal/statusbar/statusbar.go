// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/regplay/internal/theme"
	"github.com/bethropolis/regplay/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the behaviour of the status bar.
type Config struct {
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{MessageTimeout: 4 * time.Second}
}

// StatusBar is the bottom line: mode, flags, match summary, document info and
// transient messages.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	mode          string
	flags         string
	matchCount    int
	matchedBlocks int
	patternErr    error
	filePath      string
	isModified    bool
	cursorPos     types.Position

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

func (sb *StatusBar) SetMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.mode = mode
}

// SetMatchInfo updates the flag string and match summary. err is the failure
// swallowed by the last pass, shown as a dim hint.
func (sb *StatusBar) SetMatchInfo(flags string, matches, blocks int, err error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.flags = flags
	sb.matchCount = matches
	sb.matchedBlocks = blocks
	sb.patternErr = err
}

func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// summaryText builds the flags and match summary. Caller holds the lock.
func (sb *StatusBar) summaryText() string {
	summary := "no matches"
	if sb.matchCount > 0 {
		summary = fmt.Sprintf("%d %s in %d %s",
			sb.matchCount, plural(sb.matchCount, "match", "matches"),
			sb.matchedBlocks, plural(sb.matchedBlocks, "line", "lines"))
	}
	flags := sb.flags
	if flags == "" {
		flags = "-"
	}
	return fmt.Sprintf("  [%s]  %s", flags, summary)
}

// rightText builds the document info. Caller holds the lock.
func (sb *StatusBar) rightText() string {
	name := sb.filePath
	if name == "" {
		name = "[scratch]"
	}
	modified := ""
	if sb.isModified {
		modified = " [Modified]"
	}
	return fmt.Sprintf("%s%s  Ln %d, Col %d ", name, modified, sb.cursorPos.Line+1, sb.cursorPos.Col+1)
}

// Draw renders the status bar on row y.
func (sb *StatusBar) Draw(screen tcell.Screen, y, width int, th *theme.Theme) {
	if width <= 0 {
		return
	}

	sb.mu.Lock()
	active := !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !active {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	message := sb.tempMessage
	summary := sb.summaryText()
	right := sb.rightText()
	hint := ""
	if sb.patternErr != nil {
		hint = "  invalid pattern"
	}
	mode := sb.mode
	sb.mu.Unlock()

	base := th.GetStyle(theme.StyleStatusBar)
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, base)
	}

	if active {
		drawString(screen, 0, y, width, " "+message, th.GetStyle(theme.StyleStatusBarMessage))
		return
	}

	x := drawString(screen, 0, y, width, " "+mode, th.GetStyle(theme.StyleStatusBarMode))
	x = drawString(screen, x, y, width, summary, base)
	x = drawString(screen, x, y, width, hint, th.GetStyle(theme.StyleStatusBarError))

	rightWidth := uniseg.StringWidth(right)
	if start := width - rightWidth; start > x {
		drawString(screen, start, y, width, right, base)
	}
}

// drawString draws s from column x, clipped at width, and returns the column
// after the last cell drawn.
func drawString(screen tcell.Screen, x, y, width int, s string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := gr.Width()
		if x+w > width {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}
