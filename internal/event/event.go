// internal/event/event.go
package event

import (
	"github.com/bethropolis/regplay/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Document events
	TypeBufferModified // Content changed through the editing surface
	TypeBufferLoaded   // Content replaced wholesale (file, stdin, SetText)
	TypeCursorMoved    // Caret moved in the text pane

	// Matcher events
	TypePatternChanged    // The regex text changed
	TypeFlagsChanged      // The flag set changed
	TypeDecorationChanged // A decoration pass produced a new result

	TypeModeChanged // Focus moved between the pattern and text fields
	TypeKeyPressed  // Raw key press forwarded

	// Application lifecycle
	TypeAppReady
	TypeAppQuit

	TypeThemeChanged
)

var typeNames = map[Type]string{
	TypeUnknown:           "Unknown",
	TypeBufferModified:    "BufferModified",
	TypeBufferLoaded:      "BufferLoaded",
	TypeCursorMoved:       "CursorMoved",
	TypePatternChanged:    "PatternChanged",
	TypeFlagsChanged:      "FlagsChanged",
	TypeDecorationChanged: "DecorationChanged",
	TypeModeChanged:       "ModeChanged",
	TypeKeyPressed:        "KeyPressed",
	TypeAppReady:          "AppReady",
	TypeAppQuit:           "AppQuit",
	TypeThemeChanged:      "ThemeChanged",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// --- Event payloads ---

// BufferModifiedData describes one edit.
type BufferModifiedData struct {
	Edit types.EditInfo
}

// BufferLoadedData names where the new content came from.
type BufferLoadedData struct {
	FilePath string // Empty for stdin or in-memory text
}

type CursorMovedData struct {
	NewPosition types.Position
}

type PatternChangedData struct {
	Pattern string
}

type FlagsChangedData struct {
	Flags string // Canonical flag string
}

// DecorationChangedData carries the new decoration. Result is a
// decoration.Result; kept as interface{} so this package stays a leaf.
type DecorationChangedData struct {
	Result     interface{}
	MatchCount int
}

type ModeChangedData struct {
	Mode string
}

type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

type AppQuitData struct{}

type AppReadyData struct{}
