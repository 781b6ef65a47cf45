// cmd/regplay/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	stlog "log" // Standard log for fatal errors before the logger is ready
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/regplay/internal/app"
	"github.com/bethropolis/regplay/internal/buffer"
	"github.com/bethropolis/regplay/internal/config"
	"github.com/bethropolis/regplay/internal/logger"
	"github.com/bethropolis/regplay/internal/theme"
	"golang.org/x/term"
)

// Set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	flags := &config.Flags{}
	args, err := flags.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}

	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, flags)

	logOutput, closeLog := openLogOutput(cfg.Logger.LogFilePath)
	defer closeLog()
	logger.Init(cfg.Logger, logOutput)
	logger.SetDebugFilter(*flags.DebugLog)

	logger.Infof("Starting %s %s", config.AppName, version)
	if cfgErr != nil {
		logger.Warnf("Config: %v (using defaults)", cfgErr)
	}
	for _, key := range cfg.UnknownKeys() {
		logger.Warnf("Config: unknown key %q ignored", key)
	}

	stdinPiped := !term.IsTerminal(int(os.Stdin.Fd()))
	buf, err := loadDocument(cfg, args, stdinPiped)
	if err != nil {
		logger.Errorf("Failed to load document: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	batch := *flags.Print || !term.IsTerminal(int(os.Stdout.Fd()))
	if batch {
		if _, err := app.PrintDecorated(os.Stdout, buf.Blocks(), cfg); err != nil {
			logger.Errorf("Batch output failed: %v", err)
			os.Exit(1)
		}
		return
	}
	if stdinPiped {
		// The terminal needs stdin for keys
		logger.Errorf("Interactive mode needs a terminal on stdin")
		fmt.Fprintf(os.Stderr, "%s: stdin is not a terminal; use -print for batch output\n", config.AppName)
		os.Exit(1)
	}

	playground, err := app.NewApp(cfg, buf, nil, loadThemes(cfg))
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}
	if err := playground.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}

// openLogOutput opens the log destination. "-" is stderr; an empty path
// writes the default log file in the working directory.
func openLogOutput(path string) (io.Writer, func()) {
	switch path {
	case "-":
		return os.Stderr, func() {}
	case "":
		path = config.DefaultLogFileName
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		stlog.Fatalf("Failed to open log file '%s': %v", path, err)
	}
	return f, func() { f.Close() }
}

// loadDocument picks the text to match against: a file argument, piped
// stdin, the configured text file, then the built-in sample.
func loadDocument(cfg *config.Config, args []string, stdinPiped bool) (*buffer.SliceBuffer, error) {
	buf := buffer.NewSliceBuffer()
	switch {
	case len(args) > 0 && args[0] != "-":
		logger.Debugf("Document: file %s", args[0])
		return buf, buf.Load(args[0])
	case stdinPiped || (len(args) > 0 && args[0] == "-"):
		logger.Debugf("Document: stdin")
		return buf, buf.LoadReader(os.Stdin)
	case cfg.Playground.TextFile != "":
		logger.Debugf("Document: configured text file %s", cfg.Playground.TextFile)
		return buf, buf.Load(cfg.Playground.TextFile)
	default:
		buf.SetText(config.SampleText)
		return buf, nil
	}
}

// loadThemes registers the user's themes and activates the configured one,
// given either as a theme file or by name.
func loadThemes(cfg *config.Config) *theme.Manager {
	mgr := theme.NewManager(config.ThemesDir())
	name := cfg.Playground.Theme
	if name == "" {
		return mgr
	}

	var err error
	if strings.HasSuffix(name, ".toml") || strings.ContainsRune(name, filepath.Separator) {
		err = mgr.LoadAndActivate(name)
	} else {
		err = mgr.SetTheme(name)
	}
	if err != nil {
		logger.Warnf("Theme %q not applied: %v (available: %s)", name, err, strings.Join(mgr.ListThemes(), ", "))
	}
	return mgr
}
