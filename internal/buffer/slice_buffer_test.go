package buffer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/regplay/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(line, col int) types.Position {
	return types.Position{Line: line, Col: col}
}

func TestNewFromTextBlocks(t *testing.T) {
	sb := NewFromText("Cat\r\ncat\n")
	assert.Equal(t, []types.TextBlock{
		{Index: 0, Text: "Cat"},
		{Index: 1, Text: "cat"},
		{Index: 2, Text: ""},
	}, sb.Blocks())
	assert.False(t, sb.IsModified())
}

func TestLoadAndLoadReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))

	sb := NewSliceBuffer()
	require.NoError(t, sb.Load(path))
	assert.Equal(t, 2, sb.LineCount())
	assert.Equal(t, path, sb.FilePath())
	assert.Equal(t, "one\ntwo", string(sb.Bytes()))

	require.NoError(t, sb.LoadReader(strings.NewReader("")))
	assert.Equal(t, 1, sb.LineCount())

	err := sb.Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestInsertSingleLine(t *testing.T) {
	sb := NewFromText("hllo")
	edit, err := sb.Insert(pos(0, 1), []byte("e"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(sb.Bytes()))
	assert.Equal(t, pos(0, 2), edit.NewEnd)
	assert.True(t, sb.IsModified())
}

func TestInsertSplitsLines(t *testing.T) {
	sb := NewFromText("héllo world")
	edit, err := sb.Insert(pos(0, 5), []byte("\nnew\n"))
	require.NoError(t, err)
	assert.Equal(t, "héllo\nnew\n world", string(sb.Bytes()))
	assert.Equal(t, pos(2, 0), edit.NewEnd)
}

func TestInsertClampsPosition(t *testing.T) {
	sb := NewFromText("ab")
	_, err := sb.Insert(pos(5, 99), []byte("c"))
	require.NoError(t, err)
	assert.Equal(t, "abc", string(sb.Bytes()))
}

func TestDeleteWithinLine(t *testing.T) {
	sb := NewFromText("wörld")
	_, err := sb.Delete(pos(0, 1), pos(0, 2))
	require.NoError(t, err)
	assert.Equal(t, "wrld", string(sb.Bytes()))
}

func TestDeleteAcrossLines(t *testing.T) {
	sb := NewFromText("one\ntwo\nthree")
	edit, err := sb.Delete(pos(2, 2), pos(0, 1))
	require.NoError(t, err)
	assert.Equal(t, "oree", string(sb.Bytes()))
	assert.Equal(t, pos(0, 1), edit.Start)
	assert.Equal(t, pos(2, 2), edit.OldEnd)
}

func TestDeleteLineJoin(t *testing.T) {
	sb := NewFromText("ab\ncd")
	_, err := sb.Delete(pos(0, 2), pos(1, 0))
	require.NoError(t, err)
	assert.Equal(t, []string{"abcd"}, linesOf(sb))
}

func TestSetText(t *testing.T) {
	sb := NewFromText("old")
	edit := sb.SetText("new\ntext")
	assert.Equal(t, []string{"new", "text"}, linesOf(sb))
	assert.Equal(t, pos(0, 3), edit.OldEnd)
	assert.Equal(t, pos(1, 4), edit.NewEnd)
}

func TestLineOutOfBounds(t *testing.T) {
	sb := NewSliceBuffer()
	_, err := sb.Line(3)
	assert.Error(t, err)
}

func linesOf(sb *SliceBuffer) []string {
	out := []string{}
	for _, l := range sb.Lines() {
		out = append(out, string(l))
	}
	return out
}
