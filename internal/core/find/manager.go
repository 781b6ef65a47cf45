// Package find keeps the live decoration in step with the pattern, the flags
// and the document.
package find

import (
	"sync"

	"github.com/bethropolis/regplay/internal/core/decoration"
	"github.com/bethropolis/regplay/internal/core/flags"
	"github.com/bethropolis/regplay/internal/event"
	"github.com/bethropolis/regplay/internal/logger"
	"github.com/bethropolis/regplay/internal/types"
	"github.com/bethropolis/regplay/internal/utils"
)

// Document is the source of block snapshots.
type Document interface {
	Blocks() []types.TextBlock
}

// Manager owns the current pattern, flags and latest decoration.
type Manager struct {
	doc     Document
	events  *event.Manager
	builder *decoration.Builder

	mutex   sync.RWMutex // Protects the fields below
	pattern string
	flags   flags.Set
	result  decoration.Result
}

// NewManager creates a find manager and runs the first pass. events may be
// nil, in which case buffer changes must be followed by Recompute.
func NewManager(doc Document, events *event.Manager, opts decoration.Options, pattern string, f flags.Set) *Manager {
	m := &Manager{
		doc:     doc,
		events:  events,
		builder: decoration.NewBuilder(opts),
		pattern: pattern,
		flags:   f,
	}
	if events != nil {
		events.Subscribe(event.TypeBufferModified, m.handleBufferChange)
		events.Subscribe(event.TypeBufferLoaded, m.handleBufferChange)
	}
	m.Recompute()
	return m
}

func (m *Manager) handleBufferChange(e event.Event) bool {
	logger.DebugTagf("find", "FindManager: %v, recomputing", e.Type)
	m.Recompute()
	return false
}

// SetPattern replaces the pattern. Returns true if it changed.
func (m *Manager) SetPattern(pattern string) bool {
	m.mutex.Lock()
	if pattern == m.pattern {
		m.mutex.Unlock()
		return false
	}
	m.pattern = pattern
	m.mutex.Unlock()

	if m.events != nil {
		m.events.Dispatch(event.TypePatternChanged, event.PatternChangedData{Pattern: pattern})
	}
	m.Recompute()
	return true
}

// SetFlags normalises raw and applies it. Returns true if the set changed.
func (m *Manager) SetFlags(raw string) bool {
	return m.applyFlags(flags.Normalize(raw))
}

// ToggleFlag flips one flag and recomputes.
func (m *Manager) ToggleFlag(f flags.Flag) {
	m.mutex.RLock()
	next := m.flags.Toggle(f)
	m.mutex.RUnlock()
	m.applyFlags(next)
}

func (m *Manager) applyFlags(next flags.Set) bool {
	m.mutex.Lock()
	if next == m.flags {
		m.mutex.Unlock()
		return false
	}
	m.flags = next
	m.mutex.Unlock()

	if m.events != nil {
		m.events.Dispatch(event.TypeFlagsChanged, event.FlagsChangedData{Flags: next.String()})
	}
	m.Recompute()
	return true
}

// Recompute takes a fresh snapshot and replaces the decoration.
func (m *Manager) Recompute() decoration.Result {
	m.mutex.RLock()
	pattern, f := m.pattern, m.flags
	m.mutex.RUnlock()

	result := m.builder.Compute(m.doc.Blocks(), pattern, f)
	if result.Err != nil {
		logger.DebugTagf("find", "FindManager: pass for /%s/%s swallowed: %v", pattern, f, result.Err)
	}

	m.mutex.Lock()
	m.result = result
	m.mutex.Unlock()

	if m.events != nil {
		m.events.Dispatch(event.TypeDecorationChanged, event.DecorationChangedData{
			Result:     result,
			MatchCount: len(result.Spans),
		})
	}
	return result
}

// Decoration returns the latest result.
func (m *Manager) Decoration() decoration.Result {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.result
}

// MatchCount is the number of highlighted spans.
func (m *Manager) MatchCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.result.Spans)
}

// HasHighlights checks if the latest result has anything to emphasise.
func (m *Manager) HasHighlights() bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.result.IsHighlighted()
}

func (m *Manager) Pattern() string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.pattern
}

func (m *Manager) Flags() flags.Set {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.flags
}

// LastError returns the failure swallowed by the latest pass, for display only.
func (m *Manager) LastError() error {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.result.Err
}

// MatchedText returns the text under each highlighted span, in order.
func (m *Manager) MatchedText() []string {
	m.mutex.RLock()
	result := m.result
	m.mutex.RUnlock()

	if !result.IsHighlighted() {
		return nil
	}
	out := make([]string, 0, len(result.Spans))
	for _, s := range result.Spans {
		if s.Block < 0 || s.Block >= len(result.Blocks) {
			continue
		}
		out = append(out, utils.RuneSlice(result.Blocks[s.Block].Text, s.Start, s.End))
	}
	return out
}
