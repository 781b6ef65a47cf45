// internal/theme/manager.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/regplay/internal/logger"
)

// Manager holds loaded themes and the active one.
type Manager struct {
	mutex       sync.RWMutex
	themes      map[string]*Theme // Keyed by lowercase name
	activeTheme *Theme
}

// NewManager registers the built-in themes, loads every .toml file in
// themesDir (if non-empty) and activates PlaygroundDark.
func NewManager(themesDir string) *Manager {
	mgr := &Manager{themes: make(map[string]*Theme)}
	mgr.register(&PlaygroundDark)
	mgr.activeTheme = &PlaygroundDark

	if themesDir != "" {
		if err := mgr.LoadThemesFromDir(themesDir); err != nil {
			logger.Warnf("Error loading themes from '%s': %v", themesDir, err)
		}
	}
	return mgr
}

func (m *Manager) register(t *Theme) {
	key := strings.ToLower(t.Name)
	if existing, ok := m.themes[key]; ok && existing != t {
		logger.Warnf("Theme '%s' overrides existing theme '%s'", t.Name, existing.Name)
	}
	m.themes[key] = t
}

// LoadThemesFromDir loads every .toml file in dir. A missing directory is
// not an error.
func (m *Manager) LoadThemesFromDir(dir string) error {
	files, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		logger.DebugTagf("theme", "Theme directory '%s' does not exist, no custom themes loaded", dir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read theme directory '%s': %w", dir, err)
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	loaded := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".toml") {
			continue
		}
		path := filepath.Join(dir, file.Name())
		t, err := LoadThemeFromFile(path)
		if err != nil {
			logger.Warnf("Failed to load theme from '%s': %v", path, err)
			continue
		}
		m.register(t)
		loaded++
	}
	logger.Infof("Loaded %d custom themes from %s", loaded, dir)
	return nil
}

// LoadAndActivate loads a single theme file and makes it active.
func (m *Manager) LoadAndActivate(path string) error {
	t, err := LoadThemeFromFile(path)
	if err != nil {
		return err
	}
	m.mutex.Lock()
	m.register(t)
	m.activeTheme = t
	m.mutex.Unlock()
	logger.Infof("Active theme set to: %s", t.Name)
	return nil
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.activeTheme
}

// SetTheme activates a loaded theme by name (case-insensitive).
func (m *Manager) SetTheme(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	t, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}
	m.activeTheme = t
	logger.Infof("Active theme set to: %s", t.Name)
	return nil
}

// ListThemes returns the names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.themes))
	for _, t := range m.themes {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}
