// Package match evaluates a regex against one text block at a time, threading
// the cross-block state that decides which blocks may still produce matches.
package match

import (
	"fmt"
	"strings"
	"time"

	"github.com/bethropolis/regplay/internal/core/flags"
	"github.com/bethropolis/regplay/internal/logger"
	"github.com/bethropolis/regplay/internal/types"
	"github.com/dlclark/regexp2"
)

// State is carried across the blocks of one decoration pass.
type State struct {
	RowIndex   int // Blocks visited so far
	MatchCount int // Blocks that yielded at least one match
}

// Outcome classifies what happened to a single block.
type Outcome int

const (
	Skipped Outcome = iota // Not evaluated because of the anchor or first-match rules
	Matched                // At least one span kept
	NoMatch                // Evaluated, nothing kept; asks the pass to render plain text
	Failed                 // Pattern did not compile or the scan timed out
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Matched:
		return "matched"
	case NoMatch:
		return "no-match"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// BlockResult is the evaluation of one block.
type BlockResult struct {
	Spans   []types.MatchSpan
	Outcome Outcome
	Err     error // Set when Outcome is Failed
}

// Options tune the underlying matcher.
type Options struct {
	// MatchTimeout bounds a single scan of a block. Zero means no limit.
	MatchTimeout time.Duration
}

// Evaluator applies one pattern and flag set to blocks in document order.
// The compiled matcher is memoised, so a pass compiles at most once.
type Evaluator struct {
	pattern string
	flags   flags.Set
	opts    Options

	compiled   bool
	re         *regexp2.Regexp
	compileErr error
}

// NewEvaluator prepares an evaluator. The pattern is not compiled until a
// block actually needs it.
func NewEvaluator(pattern string, f flags.Set, opts Options) *Evaluator {
	return &Evaluator{pattern: pattern, flags: f, opts: opts}
}

// IsAnchored reports whether the pattern starts with '^' or ends with '$'.
func IsAnchored(pattern string) bool {
	return strings.HasPrefix(pattern, "^") || strings.HasSuffix(pattern, "$")
}

// EffectiveFlags is the flag string the matcher is built with. Global is always
// forced so every occurrence is found; the evaluator decides how many to keep.
func EffectiveFlags(f flags.Set) string {
	return f.With(flags.Global).String()
}

func compileOptions(f flags.Set) regexp2.RegexOptions {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if f.Has(flags.Multiline) {
		opts |= regexp2.Multiline
	}
	if f.Has(flags.CaseInsensitive) {
		opts |= regexp2.IgnoreCase
	}
	return opts
}

// Compile builds the matcher for pattern and f, returning a *PatternCompileError
// for malformed input.
func Compile(pattern string, f flags.Set, opts Options) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, compileOptions(f))
	if err != nil {
		return nil, &PatternCompileError{Pattern: pattern, Flags: EffectiveFlags(f), Err: err}
	}
	if opts.MatchTimeout > 0 {
		re.MatchTimeout = opts.MatchTimeout
	}
	return re, nil
}

func (e *Evaluator) matcher() (*regexp2.Regexp, error) {
	if !e.compiled {
		e.compiled = true
		e.re, e.compileErr = Compile(e.pattern, e.flags, e.opts)
		if e.compileErr != nil {
			logger.DebugTagf("match", "Evaluator: %v", e.compileErr)
		}
	}
	return e.re, e.compileErr
}

// Evaluate runs the pattern over one block and updates state in place.
// RowIndex advances for every block, whatever the outcome.
func (e *Evaluator) Evaluate(block types.TextBlock, state *State) (res BlockResult) {
	defer func() { state.RowIndex++ }()

	// Anchors outside multiline mode only make sense for the first block
	if !e.flags.Has(flags.Multiline) && IsAnchored(e.pattern) && state.RowIndex > 0 {
		return BlockResult{Outcome: Skipped}
	}

	isGlobal := e.flags.Has(flags.Global)
	// First-match mode applies to the whole document, not just one block
	if !isGlobal && state.MatchCount > 0 {
		return BlockResult{Outcome: Skipped}
	}

	re, err := e.matcher()
	if err != nil {
		return BlockResult{Outcome: Failed, Err: err}
	}

	spans, err := collect(re, block, isGlobal)
	if err != nil {
		logger.DebugTagf("match", "Evaluator: block %d: %v", block.Index, err)
		return BlockResult{Outcome: Failed, Err: err}
	}
	if len(spans) == 0 {
		return BlockResult{Outcome: NoMatch}
	}

	state.MatchCount++
	return BlockResult{Spans: spans, Outcome: Matched}
}

// collect walks the non-overlapping matches of re in the block, left to right.
// Without global only the first match is kept.
func collect(re *regexp2.Regexp, block types.TextBlock, global bool) ([]types.MatchSpan, error) {
	var spans []types.MatchSpan
	m, err := re.FindStringMatch(block.Text)
	for err == nil && m != nil {
		spans = append(spans, types.MatchSpan{
			Block: block.Index,
			Start: m.Index,
			End:   m.Index + m.Length,
		})
		if !global {
			break
		}
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMatchTimeout, err)
	}
	return spans, nil
}
