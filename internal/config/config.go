// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/regplay/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger     logger.Config    `toml:"logger"`
	Playground PlaygroundConfig `toml:"playground"`
	Match      MatchConfig      `toml:"match"`
	Output     OutputConfig     `toml:"output"`

	unknownKeys []string
}

// PlaygroundConfig seeds the interactive session.
type PlaygroundConfig struct {
	Pattern         string `toml:"pattern"`
	Flags           string `toml:"flags"`
	TextFile        string `toml:"text_file"`
	SystemClipboard bool   `toml:"system_clipboard"`
	TabWidth        int    `toml:"tab_width"`
	Theme           string `toml:"theme"` // Theme file, or the name of a theme in the themes dir
}

// MatchConfig tunes the decoration pass.
type MatchConfig struct {
	ResetOnMiss  bool     `toml:"reset_on_miss"`
	MatchTimeout Duration `toml:"match_timeout"`
}

// OutputConfig holds the span markers used by batch output.
type OutputConfig struct {
	Open  string `toml:"open"`
	Close string `toml:"close"`
}

// Duration decodes TOML strings such as "500ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

var (
	loadedConfig *Config
	configMutex  sync.RWMutex
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Playground: PlaygroundConfig{
			Pattern:         DefaultPattern,
			Flags:           DefaultFlags,
			SystemClipboard: SystemClipboard,
			TabWidth:        DefaultTabWidth,
		},
		Match: MatchConfig{
			ResetOnMiss:  DefaultResetOnMiss,
			MatchTimeout: Duration{DefaultMatchTimeout},
		},
		Output: OutputConfig{
			Open:  DefaultOpenMarker,
			Close: DefaultCloseMarker,
		},
	}
}

// UnknownKeys lists config file keys that matched no setting. The logger is
// not up while the file is read, so callers log these afterwards.
func (c *Config) UnknownKeys() []string {
	return c.unknownKeys
}

// DefaultConfigPath returns the per-user config file location, or "" if the
// config dir cannot be determined.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// ThemesDir returns the per-user themes directory, or "".
func ThemesDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, ThemesDirName)
}

// loadFromFile decodes filePath over cfg. Keys absent from the file keep
// their current values. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	for _, key := range metadata.Undecoded() {
		cfg.unknownKeys = append(cfg.unknownKeys, key.String())
	}
	return nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Playground.TabWidth <= 0 {
		c.Playground.TabWidth = defaults.Playground.TabWidth
	}
	if c.Match.MatchTimeout.Duration < 0 {
		c.Match.MatchTimeout = defaults.Match.MatchTimeout
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// LoadConfig loads defaults, then the file, then flag overrides, then
// validates. An empty configFilePath means DefaultConfigPath. The result is
// also stored for Get. On a file error the returned config still holds the
// defaults plus overrides.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}

	var loadErr error
	if effectivePath != "" {
		if err := loadFromFile(effectivePath, cfg); err != nil {
			loadErr = err
			cfg = NewDefaultConfig()
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()

	configMutex.Lock()
	loadedConfig = cfg
	configMutex.Unlock()

	return cfg, loadErr
}

// Get returns the loaded configuration, or defaults if LoadConfig has not run.
func Get() *Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	if loadedConfig == nil {
		return NewDefaultConfig()
	}
	return loadedConfig
}
