// internal/input/action.go
package input

// Action is an operation requested by a key press.
type Action int

const (
	// --- Meta Actions ---
	ActionUnknown Action = iota
	ActionQuit
	ActionSwitchMode // Move focus between the pattern and text fields

	// --- Matcher ---
	ActionToggleGlobal
	ActionToggleMultiline
	ActionToggleInsensitive
	ActionCopyMatches
	ActionClearPattern

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome
	ActionMoveEnd

	// --- Text Manipulation ---
	ActionInsertRune // Carries Rune
	ActionInsertNewLine
	ActionDeleteCharForward
	ActionDeleteCharBackward
)

// ActionEvent is a decoded key press.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
}
