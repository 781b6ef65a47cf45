package config

import "time"

// Base application details
const AppName = "regplay"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "regplay.log"

// Playground defaults
const DefaultPattern = `[A-Z]\w+`
const DefaultFlags = "g"
const DefaultTabWidth = 4
const SystemClipboard = true

// Matching
const DefaultResetOnMiss = true
const DefaultMatchTimeout = time.Second

// Batch output markers
const DefaultOpenMarker = "["
const DefaultCloseMarker = "]"

// UI Layout
const StatusBarHeight = 1
const PatternLineHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// SampleText seeds the document when no file is given.
const SampleText = `Regplay highlights every match of the pattern above as you type.
Edit the Pattern on the top line, or press Tab to edit This text.
Toggle Global, Multiline and Insensitive with Alt+g, Alt+m and Alt+i.
lines that start in lower case stop a global pass that has not matched yet.`
