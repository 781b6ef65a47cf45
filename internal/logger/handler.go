package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// debugFilter prints every filtering decision to stderr. Toggled by -debug-log.
var debugFilter bool

// SetDebugFilter enables diagnostics for the filtering handler itself.
func SetDebugFilter(enabled bool) {
	debugFilter = enabled
}

// filteringHandler wraps a base slog.Handler to drop records by tag, package or file.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config // Processed config, nil disables filtering
}

func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{baseHandler: base, cfg: cfg}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// passes applies the enabled/disabled pair for one dimension.
// Disabled wins over enabled; an empty enabled set lets everything through.
func passes(kind, value string, enabled, disabled map[string]struct{}) bool {
	if value == "" {
		return true
	}
	key := strings.ToLower(value)
	if disabled != nil {
		if _, found := disabled[key]; found {
			if debugFilter {
				fmt.Fprintf(os.Stderr, "[FILTER] FILTERED OUT: disabled %s '%s'\n", kind, value)
			}
			return false
		}
	}
	if enabled != nil {
		if _, found := enabled[key]; !found {
			if debugFilter {
				fmt.Fprintf(os.Stderr, "[FILTER] FILTERED OUT: %s '%s' not in enabled list\n", kind, value)
			}
			return false
		}
	}
	return true
}

// recordSource returns the package directory and file name the record was logged from.
func recordSource(r slog.Record) (pkg, file string) {
	if r.PC == 0 {
		return "", ""
	}
	frames := runtime.CallersFrames([]uintptr{r.PC})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "", ""
	}
	return filepath.Base(filepath.Dir(frame.File)), filepath.Base(frame.File)
}

func recordTag(r slog.Record) (string, bool) {
	var tag string
	var found bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tag = a.Value.String()
			found = true
			return false
		}
		return true
	})
	return tag, found
}

// Handle applies filtering logic before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	if debugFilter {
		fmt.Fprintf(os.Stderr, "[FILTER] Message: Level=%s, Msg=%s\n", r.Level, r.Message)
	}

	pkg, file := recordSource(r)
	if !passes("package", pkg, h.cfg.enabledPackagesSet, h.cfg.disabledPackagesSet) {
		return nil
	}
	if !passes("file", file, h.cfg.enabledFilesSet, h.cfg.disabledFilesSet) {
		return nil
	}

	tag, tagged := recordTag(r)
	if tagged {
		if !passes("tag", tag, h.cfg.enabledTagsSet, h.cfg.disabledTagsSet) {
			return nil
		}
	} else if h.cfg.enabledTagsSet != nil {
		// Filtering for specific tags drops untagged messages
		if debugFilter {
			fmt.Fprintln(os.Stderr, "[FILTER] FILTERED OUT: Message has no tag but specific tags are enabled")
		}
		return nil
	}

	return h.baseHandler.Handle(ctx, r)
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
