// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bethropolis/regplay/internal/logger"
)

// Flags holds values parsed from command-line flags. Only flags that were
// actually set override the config file.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath *string
	Version        *bool
	Print          *bool

	Pattern     *string
	RegexFlags  *string
	OpenMarker  *string
	CloseMarker *string
	ThemePath   *string
	TabWidth    *int

	LogLevel        *string
	LogFilePath     *string
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	EnableFiles     *string
	DisableFiles    *string
	DebugLog        *bool
	SystemClipboard *bool
}

// DefineFlags registers the flags on fs.
func (f *Flags) DefineFlags(fs *flag.FlagSet) {
	f.fs = fs
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default <user config dir>/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.Print = fs.Bool("print", false, "Print the decorated text and exit (default when stdout is not a terminal)")

	f.Pattern = fs.String("pattern", "", fmt.Sprintf("Initial pattern (default %s)", DefaultPattern))
	f.RegexFlags = fs.String("flags", "", fmt.Sprintf("Initial flags, any of g, m, i (default %q)", DefaultFlags))
	f.OpenMarker = fs.String("open", "", fmt.Sprintf("Marker printed before each match in -print mode (default %q)", DefaultOpenMarker))
	f.CloseMarker = fs.String("close", "", fmt.Sprintf("Marker printed after each match in -print mode (default %q)", DefaultCloseMarker))
	f.ThemePath = fs.String("theme", "", "Theme TOML file, or the name of a theme in the themes directory")
	f.TabWidth = fs.Int("tabwidth", 0, "Number of spaces per tab - Overrides config file")

	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	f.DebugLog = fs.Bool("debug-log", false, "Enable verbose debug logging for the logger filtering system")
	f.SystemClipboard = fs.Bool("system-clipboard", SystemClipboard, "Use system clipboard instead of internal clipboard")
}

// ParseFlags defines and parses the flags from args (without the program
// name) and returns the remaining arguments.
func (f *Flags) ParseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	f.DefineFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}

// IsSet reports whether the named flag was given on the command line.
func (f *Flags) IsSet(name string) bool {
	if f.fs == nil {
		return false
	}
	set := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

// ApplyOverrides copies every flag that was set into cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.fs == nil {
		return
	}
	f.fs.Visit(func(fl *flag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		switch fl.Name {
		case "pattern":
			cfg.Playground.Pattern = *f.Pattern
		case "flags":
			cfg.Playground.Flags = *f.RegexFlags
		case "open":
			cfg.Output.Open = *f.OpenMarker
		case "close":
			cfg.Output.Close = *f.CloseMarker
		case "theme":
			cfg.Playground.Theme = *f.ThemePath
		case "tabwidth":
			if *f.TabWidth > 0 {
				cfg.Playground.TabWidth = *f.TabWidth
			}
		case "system-clipboard":
			cfg.Playground.SystemClipboard = *f.SystemClipboard
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(*f.DisableFiles)
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
