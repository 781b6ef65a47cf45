// internal/core/editor.go
package core

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/bethropolis/regplay/internal/buffer"
	"github.com/bethropolis/regplay/internal/event"
	"github.com/bethropolis/regplay/internal/logger"
	"github.com/bethropolis/regplay/internal/types"
	"github.com/bethropolis/regplay/internal/utils"
)

// Editor owns the document, the caret and the text pane viewport.
type Editor struct {
	buffer    buffer.Buffer
	Cursor    types.Position
	ViewportY int // Top visible line
	ViewportX int // Leftmost visible cell
	TabWidth  int

	viewWidth  int
	viewHeight int // Height of the text pane only

	eventManager *event.Manager
}

// NewEditor creates an editor over buf.
func NewEditor(buf buffer.Buffer, tabWidth int) *Editor {
	return &Editor{buffer: buf, TabWidth: tabWidth}
}

// SetEventManager sets where buffer events are dispatched.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// Blocks returns a snapshot of the document.
func (e *Editor) Blocks() []types.TextBlock {
	return e.buffer.Blocks()
}

func (e *Editor) GetCursor() types.Position {
	return e.Cursor
}

// GetViewport returns the top line and the leftmost cell.
func (e *Editor) GetViewport() (int, int) {
	return e.ViewportY, e.ViewportX
}

// SetCursor moves the caret to pos, clamped to the document.
func (e *Editor) SetCursor(pos types.Position) {
	e.Cursor = e.clamp(pos)
	e.ScrollToCursor()
}

// SetViewSize records the text pane size.
func (e *Editor) SetViewSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	e.viewWidth, e.viewHeight = width, height
	e.ScrollToCursor()
}

func (e *Editor) lineLen(line int) int {
	b, err := e.buffer.Line(line)
	if err != nil {
		return 0
	}
	return utf8.RuneCount(b)
}

func (e *Editor) clamp(pos types.Position) types.Position {
	if pos.Line >= e.buffer.LineCount() {
		pos.Line = e.buffer.LineCount() - 1
	}
	if pos.Line < 0 {
		pos.Line = 0
	}
	if max := e.lineLen(pos.Line); pos.Col > max {
		pos.Col = max
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	return pos
}

// MoveCursor moves the caret, wrapping across line ends on horizontal moves.
func (e *Editor) MoveCursor(deltaLine, deltaCol int) {
	cur := e.Cursor
	switch {
	case deltaLine == 0 && deltaCol > 0 && cur.Col >= e.lineLen(cur.Line) && cur.Line < e.buffer.LineCount()-1:
		cur = types.Position{Line: cur.Line + 1}
	case deltaLine == 0 && deltaCol < 0 && cur.Col <= 0 && cur.Line > 0:
		cur = types.Position{Line: cur.Line - 1, Col: e.lineLen(cur.Line - 1)}
	default:
		cur = types.Position{Line: cur.Line + deltaLine, Col: cur.Col + deltaCol}
	}
	e.SetCursor(cur)
	logger.DebugTagf("core", "MoveCursor: Delta(%d,%d) -> (%d,%d)", deltaLine, deltaCol, e.Cursor.Line, e.Cursor.Col)
}

// PageMove moves the caret by whole text pane heights.
func (e *Editor) PageMove(deltaPages int) {
	if e.viewHeight <= 0 {
		return
	}
	e.MoveCursor(deltaPages*e.viewHeight, 0)
}

func (e *Editor) Home() {
	e.SetCursor(types.Position{Line: e.Cursor.Line})
}

func (e *Editor) End() {
	e.SetCursor(types.Position{Line: e.Cursor.Line, Col: e.lineLen(e.Cursor.Line)})
}

// ScrollToCursor adjusts the viewport so the caret is visible.
func (e *Editor) ScrollToCursor() {
	if e.viewHeight > 0 {
		if e.Cursor.Line < e.ViewportY {
			e.ViewportY = e.Cursor.Line
		} else if e.Cursor.Line >= e.ViewportY+e.viewHeight {
			e.ViewportY = e.Cursor.Line - e.viewHeight + 1
		}
	}
	if e.viewWidth > 0 {
		line, _ := e.buffer.Line(e.Cursor.Line)
		col := utils.VisualColumn(string(line), e.Cursor.Col, e.TabWidth)
		if col < e.ViewportX {
			e.ViewportX = col
		} else if col >= e.ViewportX+e.viewWidth {
			e.ViewportX = col - e.viewWidth + 1
		}
	}
}

func (e *Editor) dispatchModified(edit types.EditInfo) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: edit})
	}
}

func (e *Editor) dispatchLoaded() {
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: e.buffer.FilePath()})
	}
}

// InsertRune inserts r at the caret.
func (e *Editor) InsertRune(r rune) error {
	return e.insert(string(r))
}

// InsertNewLine splits the line at the caret.
func (e *Editor) InsertNewLine() error {
	return e.insert("\n")
}

func (e *Editor) insert(text string) error {
	edit, err := e.buffer.Insert(e.Cursor, []byte(text))
	if err != nil {
		return fmt.Errorf("insert at %d:%d: %w", e.Cursor.Line, e.Cursor.Col, err)
	}
	e.SetCursor(edit.NewEnd)
	e.dispatchModified(edit)
	return nil
}

// DeleteBackward removes the rune before the caret, joining lines at column 0.
// Returns false if there was nothing to delete.
func (e *Editor) DeleteBackward() (bool, error) {
	if e.Cursor.Line == 0 && e.Cursor.Col == 0 {
		return false, nil
	}
	start := types.Position{Line: e.Cursor.Line, Col: e.Cursor.Col - 1}
	if e.Cursor.Col == 0 {
		start = types.Position{Line: e.Cursor.Line - 1, Col: e.lineLen(e.Cursor.Line - 1)}
	}
	return e.delete(start, e.Cursor)
}

// DeleteForward removes the rune under the caret, joining lines at line end.
func (e *Editor) DeleteForward() (bool, error) {
	end := types.Position{Line: e.Cursor.Line, Col: e.Cursor.Col + 1}
	if e.Cursor.Col >= e.lineLen(e.Cursor.Line) {
		if e.Cursor.Line >= e.buffer.LineCount()-1 {
			return false, nil
		}
		end = types.Position{Line: e.Cursor.Line + 1}
	}
	return e.delete(e.Cursor, end)
}

func (e *Editor) delete(start, end types.Position) (bool, error) {
	edit, err := e.buffer.Delete(start, end)
	if err != nil {
		return false, fmt.Errorf("delete %d:%d-%d:%d: %w", start.Line, start.Col, end.Line, end.Col, err)
	}
	e.SetCursor(edit.Start)
	e.dispatchModified(edit)
	return true, nil
}

// SetText replaces the whole document and moves the caret to the start.
func (e *Editor) SetText(text string) {
	e.buffer.SetText(text)
	e.resetView()
	e.dispatchLoaded()
}

// LoadFile replaces the document with the file content.
func (e *Editor) LoadFile(path string) error {
	if err := e.buffer.Load(path); err != nil {
		return err
	}
	e.resetView()
	e.dispatchLoaded()
	return nil
}

// LoadReader replaces the document with everything read from r.
func (e *Editor) LoadReader(r io.Reader) error {
	if err := e.buffer.LoadReader(r); err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	e.resetView()
	e.dispatchLoaded()
	return nil
}

func (e *Editor) resetView() {
	e.Cursor = types.Position{}
	e.ViewportY, e.ViewportX = 0, 0
}
