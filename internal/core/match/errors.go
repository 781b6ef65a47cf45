package match

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic checking.
var (
	ErrInvalidPattern = errors.New("invalid regex pattern")
	ErrMatchTimeout   = errors.New("regex match timed out")
)

// PatternCompileError reports a pattern the regex engine refused to compile.
// It never escapes a decoration pass; the block simply has no matches.
type PatternCompileError struct {
	Pattern string
	Flags   string // Effective matcher flags, e.g. "gm"
	Err     error  // Engine error
}

func (e *PatternCompileError) Error() string {
	return fmt.Sprintf("invalid pattern /%s/%s: %v", e.Pattern, e.Flags, e.Err)
}

func (e *PatternCompileError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrInvalidPattern) match any compile error.
func (e *PatternCompileError) Is(target error) bool {
	return target == ErrInvalidPattern
}
