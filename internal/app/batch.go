package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/bethropolis/regplay/internal/config"
	"github.com/bethropolis/regplay/internal/core/decoration"
	"github.com/bethropolis/regplay/internal/core/flags"
	"github.com/bethropolis/regplay/internal/logger"
	"github.com/bethropolis/regplay/internal/render"
	"github.com/bethropolis/regplay/internal/types"
)

// PrintDecorated runs one pass over blocks with the configured pattern and
// writes the text with every highlighted span wrapped in the output markers.
// A failed pass prints the text unmarked. Output always ends in a newline.
func PrintDecorated(w io.Writer, blocks []types.TextBlock, cfg *config.Config) (decoration.Result, error) {
	builder := decoration.NewBuilder(DecorationOptions(cfg))
	f := flags.Normalize(cfg.Playground.Flags)
	result := builder.Compute(blocks, cfg.Playground.Pattern, f)
	if result.Err != nil {
		logger.Warnf("Batch: pattern /%s/%s: %v", cfg.Playground.Pattern, f, result.Err)
	}
	logger.Debugf("Batch: %s, %d spans over %d blocks", result.Kind, len(result.Spans), len(blocks))

	out := render.Markup(result, cfg.Output.Open, cfg.Output.Close)
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if _, err := io.WriteString(w, out); err != nil {
		return result, fmt.Errorf("failed to write output: %w", err)
	}
	return result, nil
}
