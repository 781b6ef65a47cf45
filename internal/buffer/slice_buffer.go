// internal/buffer/slice_buffer.go
package buffer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/bethropolis/regplay/internal/types"
)

// SliceBuffer keeps the document as a slice of lines.
type SliceBuffer struct {
	lines    [][]byte
	filePath string
	modified bool // Edited since the last load
}

// NewSliceBuffer creates a buffer holding a single empty line.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{lines: [][]byte{{}}}
}

// NewFromText creates a buffer holding text split on newlines.
func NewFromText(text string) *SliceBuffer {
	sb := NewSliceBuffer()
	sb.lines = splitLines([]byte(text))
	return sb
}

func splitLines(text []byte) [][]byte {
	text = bytes.ReplaceAll(text, []byte("\r\n"), []byte("\n"))
	parts := bytes.Split(text, []byte("\n"))
	lines := make([][]byte, len(parts))
	for i, p := range parts {
		lines[i] = append([]byte(nil), p...)
	}
	return lines
}

// Load reads a file into the buffer, replacing existing content.
func (sb *SliceBuffer) Load(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer file.Close()

	if err := sb.LoadReader(file); err != nil {
		return fmt.Errorf("error reading file '%s': %w", filePath, err)
	}
	sb.filePath = filePath
	return nil
}

// LoadReader replaces the content with everything read from r.
func (sb *SliceBuffer) LoadReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	newLines := [][]byte{}
	for scanner.Scan() {
		newLines = append(newLines, append([]byte(nil), scanner.Bytes()...))
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if len(newLines) == 0 {
		newLines = append(newLines, []byte{})
	}
	sb.lines = newLines
	sb.modified = false
	return nil
}

// SetText replaces the whole document.
func (sb *SliceBuffer) SetText(text string) types.EditInfo {
	oldEnd := sb.end()
	sb.lines = splitLines([]byte(text))
	sb.modified = true
	return types.EditInfo{OldEnd: oldEnd, NewEnd: sb.end()}
}

func (sb *SliceBuffer) end() types.Position {
	last := len(sb.lines) - 1
	return types.Position{Line: last, Col: utf8.RuneCount(sb.lines[last])}
}

func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// Blocks copies the lines into an indexed snapshot.
func (sb *SliceBuffer) Blocks() []types.TextBlock {
	blocks := make([]types.TextBlock, len(sb.lines))
	for i, line := range sb.lines {
		blocks[i] = types.TextBlock{Index: i, Text: string(line)}
	}
	return blocks
}

// Bytes joins the lines with '\n'.
func (sb *SliceBuffer) Bytes() []byte {
	return bytes.Join(sb.lines, []byte("\n"))
}

func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

// clamp pins pos inside the document and returns its byte offset in the line.
func (sb *SliceBuffer) clamp(pos types.Position) (types.Position, int) {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(sb.lines) {
		pos.Line = len(sb.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	line := sb.lines[pos.Line]
	offset, col := 0, 0
	for offset < len(line) && col < pos.Col {
		_, size := utf8.DecodeRune(line[offset:])
		offset += size
		col++
	}
	pos.Col = col
	return pos, offset
}

// Insert inserts text at pos; embedded newlines split the line.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) (types.EditInfo, error) {
	start, offset := sb.clamp(pos)
	if len(text) == 0 {
		return types.EditInfo{Start: start, OldEnd: start, NewEnd: start}, nil
	}
	sb.modified = true

	current := sb.lines[start.Line]
	head := append([]byte(nil), current[:offset]...)
	tail := append([]byte(nil), current[offset:]...)
	inserted := splitLines(text)

	newLines := make([][]byte, len(inserted))
	copy(newLines, inserted)
	newLines[0] = append(head, newLines[0]...)
	lastIdx := len(newLines) - 1
	newEnd := types.Position{Line: start.Line + lastIdx, Col: utf8.RuneCount(newLines[lastIdx])}
	newLines[lastIdx] = append(newLines[lastIdx], tail...)

	rest := append([][]byte(nil), sb.lines[start.Line+1:]...)
	sb.lines = append(append(sb.lines[:start.Line], newLines...), rest...)

	return types.EditInfo{Start: start, OldEnd: start, NewEnd: newEnd}, nil
}

// Delete removes the range [start, end); the ends are swapped if reversed.
func (sb *SliceBuffer) Delete(start, end types.Position) (types.EditInfo, error) {
	if end.Line < start.Line || (end.Line == start.Line && end.Col < start.Col) {
		start, end = end, start
	}
	vStart, startOffset := sb.clamp(start)
	vEnd, endOffset := sb.clamp(end)
	if vStart == vEnd {
		return types.EditInfo{Start: vStart, OldEnd: vStart, NewEnd: vStart}, nil
	}
	sb.modified = true

	merged := append([]byte(nil), sb.lines[vStart.Line][:startOffset]...)
	merged = append(merged, sb.lines[vEnd.Line][endOffset:]...)

	rest := append([][]byte(nil), sb.lines[vEnd.Line+1:]...)
	sb.lines = append(append(sb.lines[:vStart.Line], merged), rest...)

	return types.EditInfo{Start: vStart, OldEnd: vEnd, NewEnd: vStart}, nil
}

var _ Buffer = (*SliceBuffer)(nil)
