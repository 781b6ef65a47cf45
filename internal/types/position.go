// internal/types/position.go
package types

// Position represents a caret position within the document.
// Line is the 0-based block index.
// Col is the 0-based column (rune) index within the block.
type Position struct {
	Line int
	Col  int // Rune index
}
