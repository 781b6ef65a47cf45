package utils

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// RuneIndexToByteOffset converts a rune index to a byte offset in s.
// Returns -1 if runeIndex is past the end.
func RuneIndexToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	currentRune := 0
	for byteOffset := range s {
		if currentRune == runeIndex {
			return byteOffset
		}
		currentRune++
	}
	if currentRune == runeIndex {
		return len(s)
	} // Allow index at the very end
	return -1
}

// ByteOffsetToRuneIndex converts a byte offset to a rune index in s.
// A rune straddling byteOffset is not counted.
func ByteOffsetToRuneIndex(s string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	runeIndex := 0
	for offset := range s {
		_, size := utf8.DecodeRuneInString(s[offset:])
		if offset+size > byteOffset {
			break
		}
		runeIndex++
	}
	return runeIndex
}

// RuneSlice returns the runes [start, end) of s, clamped to its length.
func RuneSlice(s string, start, end int) string {
	n := utf8.RuneCountInString(s)
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return ""
	}
	from := RuneIndexToByteOffset(s, start)
	to := RuneIndexToByteOffset(s, end)
	return s[from:to]
}

// VisualColumn returns the number of terminal cells taken by the first
// runeIndex runes of line. Tabs advance to the next multiple of tabWidth.
func VisualColumn(line string, runeIndex, tabWidth int) int {
	if runeIndex <= 0 {
		return 0
	}
	visual, runes := 0, 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() && runes < runeIndex {
		cluster := gr.Runes()
		visual += ClusterWidth(cluster, gr.Width(), visual, tabWidth)
		runes += len(cluster)
	}
	return visual
}

// ClusterWidth is the cell width of a grapheme cluster drawn at column x,
// expanding tabs.
func ClusterWidth(cluster []rune, width, x, tabWidth int) int {
	if len(cluster) > 0 && cluster[0] == '\t' {
		if tabWidth <= 0 {
			tabWidth = 1
		}
		return tabWidth - x%tabWidth
	}
	return width
}
