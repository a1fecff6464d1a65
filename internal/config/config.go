package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"notesapp/internal/notes"
)

const (
	DefaultColor    = "#ffffff"
	DefaultLogLevel = "info"
	DefaultTitle    = "Notes App"
	DefaultWidth    = 800
	DefaultHeight   = 600
)

// Swatch is a named palette entry offered by the color chooser
type Swatch struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
}

// Window holds the preferred window geometry
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Config holds the unified application configuration
type Config struct {
	DefaultColor string   `yaml:"default_color"`
	Palette      []Swatch `yaml:"palette"`
	LogLevel     string   `yaml:"log_level"`
	LogFile      string   `yaml:"log_file"`
	Window       Window   `yaml:"window"`
}

// CLIFlags holds parsed CLI flags. Env vars are already folded in by the CLI layer.
type CLIFlags struct {
	ConfigPath string
	LogLevel   string
	LogFile    string
	Color      string
}

// DefaultPalette is offered when the config file does not define one.
var DefaultPalette = []Swatch{
	{Name: "White", Hex: "#ffffff"},
	{Name: "Yellow", Hex: "#fff3a0"},
	{Name: "Green", Hex: "#c8f7c5"},
	{Name: "Blue", Hex: "#bfdcff"},
	{Name: "Pink", Hex: "#ffc9de"},
	{Name: "Orange", Hex: "#ffd8a8"},
	{Name: "Purple", Hex: "#dcc6ff"},
	{Name: "Gray", Hex: "#d9d9d9"},
}

// Default returns the built-in configuration
func Default() *Config {
	palette := make([]Swatch, len(DefaultPalette))
	copy(palette, DefaultPalette)
	return &Config{
		DefaultColor: DefaultColor,
		Palette:      palette,
		LogLevel:     DefaultLogLevel,
		LogFile:      DefaultLogFile(),
		Window: Window{
			Title:  DefaultTitle,
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

// Load loads configuration with priority: CLI flags/env > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := Default()

	path := flags.ConfigPath
	if path == "" {
		path = DefaultConfigPath()
	}
	path = expandPath(path)

	fileConfig, err := loadConfigFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// no config file, defaults stand
	case err != nil:
		return nil, err
	default:
		cfg.merge(fileConfig)
	}

	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	if flags.LogFile != "" {
		cfg.LogFile = flags.LogFile
	}
	if flags.Color != "" {
		cfg.DefaultColor = flags.Color
	}
	cfg.LogFile = expandPath(cfg.LogFile)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) merge(file *Config) {
	if file.DefaultColor != "" {
		c.DefaultColor = file.DefaultColor
	}
	if len(file.Palette) > 0 {
		c.Palette = file.Palette
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
	}
	if file.LogFile != "" {
		c.LogFile = file.LogFile
	}
	if file.Window.Title != "" {
		c.Window.Title = file.Window.Title
	}
	if file.Window.Width > 0 {
		c.Window.Width = file.Window.Width
	}
	if file.Window.Height > 0 {
		c.Window.Height = file.Window.Height
	}
}

// Validate checks that every color in the config parses
func (c *Config) Validate() error {
	if _, err := notes.ParseColor(c.DefaultColor); err != nil {
		return fmt.Errorf("default_color: %w", err)
	}
	for i, s := range c.Palette {
		if _, err := notes.ParseColor(s.Hex); err != nil {
			return fmt.Errorf("palette[%d] %q: %w", i, s.Name, err)
		}
	}
	return nil
}

// PendingColor returns the color assigned to notes until the user picks another.
func (c *Config) PendingColor() notes.Color {
	color, err := notes.ParseColor(c.DefaultColor)
	if err != nil {
		return notes.White
	}
	return color
}

// Swatches returns the palette as parsed colors, skipping invalid entries.
func (c *Config) Swatches() []NamedColor {
	out := make([]NamedColor, 0, len(c.Palette))
	for _, s := range c.Palette {
		color, err := notes.ParseColor(s.Hex)
		if err != nil {
			continue
		}
		out = append(out, NamedColor{Name: s.Name, Color: color})
	}
	return out
}

// NamedColor is a parsed Swatch
type NamedColor struct {
	Name  string
	Color notes.Color
}

// DefaultConfigPath returns the path to the configuration file
func DefaultConfigPath() string {
	return filepath.Join("~", ".config", "notesapp", "config.yaml")
}

// DefaultLogFile returns the path of the debug log
func DefaultLogFile() string {
	return expandPath(filepath.Join("~", ".local", "state", "notesapp", "debug.log"))
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &cfg, nil
}

func expandPath(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}
