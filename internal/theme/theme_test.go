package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTheme = `
name = "Paper"
is_dark = false

[styles.Default]
fg = "#101010"
bg = "white"

[styles.Match]
bg = "#ffd700"
bold = true

[styles."StatusBar.error"]
fg = "nosuchcolor"
`

func writeTheme(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadThemeFromFile(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "paper.toml", sampleTheme)

	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Paper", th.Name)
	assert.False(t, th.IsDark)

	fg, bg, _ := th.GetStyle(StyleDefault).Decompose()
	assert.Equal(t, tcell.NewHexColor(0x101010), fg)
	assert.Equal(t, tcell.ColorWhite, bg)

	// Match inherits the Default foreground
	fg, bg, attrs := th.GetStyle(StyleMatch).Decompose()
	assert.Equal(t, tcell.NewHexColor(0x101010), fg)
	assert.Equal(t, tcell.NewHexColor(0xffd700), bg)
	assert.NotZero(t, attrs&tcell.AttrBold)

	// Bad colour is skipped, so lookup falls back to the base name then Default
	_, ok := th.Styles[StyleStatusBarError]
	assert.False(t, ok)
	assert.Equal(t, th.Styles[StyleDefault], th.GetStyle(StyleStatusBarError))
}

func TestLoadThemeNameFromFilename(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "nameless.toml", "[styles.Match]\nfg = \"red\"\n")
	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "nameless", th.Name)
}

func TestLoadThemeErrors(t *testing.T) {
	_, err := LoadThemeFromFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := writeTheme(t, t.TempDir(), "broken.toml", "name = ")
	_, err = LoadThemeFromFile(path)
	assert.Error(t, err)
}

func TestParseColorString(t *testing.T) {
	c, err := parseColorString(" #FF0000 ")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewHexColor(0xff0000), c)

	c, err = parseColorString("reset")
	require.NoError(t, err)
	assert.Equal(t, tcell.ColorReset, c)

	_, err = parseColorString("#fff")
	assert.Error(t, err)
}

func TestGetStyleFallbacks(t *testing.T) {
	th := &PlaygroundDark
	assert.Equal(t, th.Styles[StylePatternLine], th.GetStyle("PatternLine.unknown"))
	assert.Equal(t, th.Styles[StyleDefault], th.GetStyle("Nothing"))

	empty := &Theme{Name: "empty"}
	assert.Equal(t, tcell.StyleDefault, empty.GetStyle("Match"))
}

func TestManager(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "paper.toml", sampleTheme)
	writeTheme(t, dir, "notes.txt", "ignored")

	mgr := NewManager(dir)
	assert.Equal(t, PlaygroundDark.Name, mgr.Current().Name)
	assert.Equal(t, []string{"Paper", "Playground Dark"}, mgr.ListThemes())

	require.NoError(t, mgr.SetTheme("paper"))
	assert.Equal(t, "Paper", mgr.Current().Name)
	assert.Error(t, mgr.SetTheme("nope"))

	other := writeTheme(t, t.TempDir(), "ink.toml", "name = \"Ink\"\n")
	require.NoError(t, mgr.LoadAndActivate(other))
	assert.Equal(t, "Ink", mgr.Current().Name)
}

func TestManagerMissingDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "none"))
	assert.Equal(t, []string{"Playground Dark"}, mgr.ListThemes())
}
