package types

// EditInfo describes a single change to the document, in rune positions.
// The recompute trigger only needs to know that content changed, the range is
// kept for logging and for listeners that care about the touched lines.
type EditInfo struct {
	Start  Position // Start of the edit
	OldEnd Position // End of the replaced text before the edit
	NewEnd Position // End of the inserted text after the edit
}
