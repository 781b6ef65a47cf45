package types

import "fmt"

// TextBlock is one line of the document with its position among all lines.
// Blocks handed to the core are a read-only snapshot.
type TextBlock struct {
	Index int    // 0-based position in the document
	Text  string // Raw text, no trailing newline
}

// MatchSpan is a half-open rune range [Start, End) inside a single block.
// Zero-length spans are valid when the pattern matches the empty string.
type MatchSpan struct {
	Block int
	Start int
	End   int
}

// Len returns the number of runes covered by the span.
func (s MatchSpan) Len() int {
	return s.End - s.Start
}

// Contains reports whether the rune at col on block lies inside the span.
func (s MatchSpan) Contains(block, col int) bool {
	return s.Block == block && col >= s.Start && col < s.End
}

func (s MatchSpan) String() string {
	return fmt.Sprintf("%d:[%d,%d)", s.Block, s.Start, s.End)
}

// BlocksFromLines builds an indexed snapshot from plain lines.
func BlocksFromLines(lines []string) []TextBlock {
	blocks := make([]TextBlock, len(lines))
	for i, line := range lines {
		blocks[i] = TextBlock{Index: i, Text: line}
	}
	return blocks
}
