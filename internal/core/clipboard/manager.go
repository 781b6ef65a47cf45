// Package clipboard copies text to the system clipboard, falling back to an
// internal register when the system one is disabled or unavailable.
package clipboard

import (
	"fmt"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/regplay/internal/logger"
)

// Manager handles clipboard operations.
type Manager struct {
	mu          sync.Mutex
	useSystem   bool
	unsupported bool
	register    string
	writeAll    func(string) error // Replaced in tests
}

// NewManager creates a clipboard manager.
func NewManager(useSystem bool) *Manager {
	return &Manager{
		useSystem:   useSystem,
		writeAll:    clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
}

// Copy stores text in the internal register and, when enabled, on the system
// clipboard. A system clipboard failure is returned but the register still
// holds the text.
func (m *Manager) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.register = text
	if !m.useSystem {
		return nil
	}
	if m.unsupported {
		logger.DebugTagf("clipboard", "ClipboardManager: system clipboard unsupported, using internal register")
		return nil
	}
	if err := m.writeAll(text); err != nil {
		logger.Warnf("ClipboardManager: system clipboard write failed: %v", err)
		return fmt.Errorf("system clipboard: %w", err)
	}
	logger.DebugTagf("clipboard", "ClipboardManager: copied %d bytes to system clipboard", len(text))
	return nil
}

// CopyLines copies items joined by newlines and returns how many were copied.
func (m *Manager) CopyLines(items []string) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	return len(items), m.Copy(strings.Join(items, "\n"))
}

// Contents returns the internal register.
func (m *Manager) Contents() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.register
}

// UsesSystem reports whether copies reach the system clipboard.
func (m *Manager) UsesSystem() bool {
	return m.useSystem && !m.unsupported
}
