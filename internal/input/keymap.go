// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps runes typed with a modifier to actions.
type RuneKeymap map[rune]Action

// InputProcessor translates tcell key events into ActionEvents. Mode is not
// considered here; the mode handler decides what an action means.
type InputProcessor struct {
	keymap   Keymap
	altRunes RuneKeymap
}

// NewInputProcessor creates a processor with the default bindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:   make(Keymap),
		altRunes: make(RuneKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyTab] = ActionSwitchMode
	p.keymap[tcell.KeyBacktab] = ActionSwitchMode
	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyCtrlC] = ActionQuit
	p.keymap[tcell.KeyCtrlY] = ActionCopyMatches
	p.keymap[tcell.KeyCtrlU] = ActionClearPattern

	p.altRunes['g'] = ActionToggleGlobal
	p.altRunes['m'] = ActionToggleMultiline
	p.altRunes['i'] = ActionToggleInsensitive
}

// ProcessEvent decodes one key press.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	if key == tcell.KeyRune {
		if mod&tcell.ModAlt != 0 {
			if action, ok := p.altRunes[ev.Rune()]; ok {
				return ActionEvent{Action: action}
			}
			return ActionEvent{Action: ActionUnknown}
		}
		if mod&tcell.ModCtrl != 0 {
			return ActionEvent{Action: ActionUnknown}
		}
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}

	if action, ok := p.keymap[key]; ok {
		return ActionEvent{Action: action}
	}
	return ActionEvent{Action: ActionUnknown}
}
