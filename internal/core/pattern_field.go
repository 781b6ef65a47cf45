package core

// PatternField is the single-line regex input with its own caret.
type PatternField struct {
	runes []rune
	caret int // Rune index, 0..len(runes)
}

// NewPatternField creates a field holding text with the caret at the end.
func NewPatternField(text string) *PatternField {
	f := &PatternField{}
	f.Set(text)
	return f
}

func (f *PatternField) Text() string {
	return string(f.runes)
}

func (f *PatternField) Caret() int {
	return f.caret
}

// Set replaces the text and moves the caret to the end.
func (f *PatternField) Set(text string) {
	f.runes = []rune(text)
	f.caret = len(f.runes)
}

// Clear empties the field. Returns false if it was already empty.
func (f *PatternField) Clear() bool {
	if len(f.runes) == 0 {
		return false
	}
	f.runes, f.caret = nil, 0
	return true
}

func (f *PatternField) InsertRune(r rune) {
	f.runes = append(f.runes[:f.caret], append([]rune{r}, f.runes[f.caret:]...)...)
	f.caret++
}

// DeleteBackward removes the rune before the caret.
func (f *PatternField) DeleteBackward() bool {
	if f.caret == 0 {
		return false
	}
	f.runes = append(f.runes[:f.caret-1], f.runes[f.caret:]...)
	f.caret--
	return true
}

// DeleteForward removes the rune under the caret.
func (f *PatternField) DeleteForward() bool {
	if f.caret >= len(f.runes) {
		return false
	}
	f.runes = append(f.runes[:f.caret], f.runes[f.caret+1:]...)
	return true
}

func (f *PatternField) MoveCaret(delta int) {
	f.caret += delta
	if f.caret < 0 {
		f.caret = 0
	}
	if f.caret > len(f.runes) {
		f.caret = len(f.runes)
	}
}

func (f *PatternField) Home() {
	f.caret = 0
}

func (f *PatternField) End() {
	f.caret = len(f.runes)
}
