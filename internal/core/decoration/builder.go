// Package decoration runs the match evaluator over a whole document and
// decides whether the document renders highlighted or plain.
package decoration

import (
	"github.com/bethropolis/regplay/internal/core/flags"
	"github.com/bethropolis/regplay/internal/core/match"
	"github.com/bethropolis/regplay/internal/logger"
	"github.com/bethropolis/regplay/internal/types"
)

// Kind tells the renderer how to draw the document.
type Kind int

const (
	NoHighlight Kind = iota // Plain, undecorated text
	Highlighted             // Text with Spans emphasised
)

func (k Kind) String() string {
	if k == Highlighted {
		return "highlighted"
	}
	return "plain"
}

// Result is the outcome of one decoration pass. Blocks is the snapshot the
// pass ran on, so a NoHighlight result still renders the current text exactly.
type Result struct {
	Kind   Kind
	Spans  []types.MatchSpan // Block order, then offset order
	Blocks []types.TextBlock

	// Err is the last evaluation failure swallowed during the pass, if any.
	// It is informational only.
	Err error
}

// IsHighlighted reports whether there is anything to emphasise.
func (r Result) IsHighlighted() bool {
	return r.Kind == Highlighted && len(r.Spans) > 0
}

// SpansForBlock returns the spans that fall in the given block.
func (r Result) SpansForBlock(index int) []types.MatchSpan {
	var out []types.MatchSpan
	for _, s := range r.Spans {
		if s.Block == index {
			out = append(out, s)
		} else if s.Block > index {
			break
		}
	}
	return out
}

// MatchedBlocks counts distinct blocks carrying at least one span.
func (r Result) MatchedBlocks() int {
	n, last := 0, -1
	for _, s := range r.Spans {
		if s.Block != last {
			n++
			last = s.Block
		}
	}
	return n
}

// Options control a Builder.
type Options struct {
	// ResetOnMiss abandons the pass as soon as a block yields nothing while no
	// earlier block matched, rendering the whole document plain.
	ResetOnMiss bool

	Match match.Options
}

// DefaultOptions mirrors the playground's stock behaviour.
func DefaultOptions() Options {
	return Options{ResetOnMiss: true}
}

// Builder runs decoration passes with fixed options.
type Builder struct {
	opts Options
}

// NewBuilder creates a Builder.
func NewBuilder(opts Options) *Builder {
	return &Builder{opts: opts}
}

// Compute decorates blocks with the default options.
func Compute(blocks []types.TextBlock, pattern string, f flags.Set) Result {
	return NewBuilder(DefaultOptions()).Compute(blocks, pattern, f)
}

func plain(blocks []types.TextBlock, err error) Result {
	return Result{Kind: NoHighlight, Blocks: blocks, Err: err}
}

// Compute walks the blocks in order with fresh state and collects spans.
// It never fails: malformed patterns come back as NoHighlight.
func (b *Builder) Compute(blocks []types.TextBlock, pattern string, f flags.Set) Result {
	snapshot := make([]types.TextBlock, len(blocks))
	copy(snapshot, blocks)

	if pattern == "" {
		return plain(snapshot, nil)
	}

	ev := match.NewEvaluator(pattern, f, b.opts.Match)
	var state match.State
	var spans []types.MatchSpan
	var lastErr error

	for _, blk := range snapshot {
		res := ev.Evaluate(blk, &state)
		if res.Err != nil {
			lastErr = res.Err
		}

		miss := res.Outcome == match.NoMatch || res.Outcome == match.Failed
		if miss && b.opts.ResetOnMiss && state.MatchCount == 0 {
			logger.DebugTagf("decoration", "Builder: block %d yielded nothing before any match, resetting to plain text", blk.Index)
			return plain(snapshot, lastErr)
		}
		spans = append(spans, res.Spans...)
	}

	if len(spans) == 0 {
		return plain(snapshot, lastErr)
	}

	logger.DebugTagf("decoration", "Builder: /%s/%s produced %d spans over %d blocks", pattern, f, len(spans), len(snapshot))
	return Result{Kind: Highlighted, Spans: spans, Blocks: snapshot, Err: lastErr}
}
