// internal/buffer/buffer.go
package buffer

import (
	"io"

	"github.com/bethropolis/regplay/internal/types"
)

// Buffer is the document the playground edits and the pattern runs against.
// Every line is one block.
type Buffer interface {
	Load(filePath string) error
	LoadReader(r io.Reader) error
	SetText(text string) types.EditInfo
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	// Blocks returns a read-only snapshot of the current content.
	Blocks() []types.TextBlock
	Insert(pos types.Position, text []byte) (types.EditInfo, error)
	Delete(start, end types.Position) (types.EditInfo, error)
	Bytes() []byte
	FilePath() string
	IsModified() bool
}
