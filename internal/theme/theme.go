// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/regplay/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names looked up by the front-end.
const (
	StyleDefault          = "Default"
	StyleMatch            = "Match"
	StyleMatchEmpty       = "Match.empty" // Marker drawn for zero-length matches
	StylePatternLine      = "PatternLine"
	StylePatternDelimiter = "PatternLine.delimiter"
	StylePatternFlags     = "PatternLine.flags"
	StylePatternInvalid   = "PatternLine.invalid"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMode    = "StatusBar.mode"
	StyleStatusBarMessage = "StatusBar.message"
	StyleStatusBarError   = "StatusBar.error"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves name, falling back to its base (the part before the first
// dot) and then to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName := name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, baseName)
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// --- Built-in themes ---

var PlaygroundDark Theme

func init() {
	bg := tcell.NewHexColor(0x2a2f38)
	fg := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	red := tcell.NewHexColor(0xe06c75)
	blue := tcell.NewHexColor(0x61afef)

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)

	PlaygroundDark = Theme{
		Name:   "Playground Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:    baseStyle,
			StyleMatch:      tcell.StyleDefault.Background(yellow).Foreground(tcell.ColorBlack),
			StyleMatchEmpty: baseStyle.Foreground(yellow).Underline(true),

			StylePatternLine:      baseStyle.Bold(true),
			StylePatternDelimiter: baseStyle.Foreground(muted),
			StylePatternFlags:     baseStyle.Foreground(blue),
			StylePatternInvalid:   baseStyle.Foreground(red),

			StyleStatusBar:        tcell.StyleDefault.Background(bg).Foreground(fg),
			StyleStatusBarMode:    tcell.StyleDefault.Background(bg).Foreground(green).Bold(true),
			StyleStatusBarMessage: tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true),
			StyleStatusBarError:   tcell.StyleDefault.Background(bg).Foreground(red).Dim(true),
		},
	}
}
