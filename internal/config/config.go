// Package config loads game and UI settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/mastermind/internal/colors"
	"github.com/lox/mastermind/internal/game"
)

// DefaultFile is the config file looked up when none is given
const DefaultFile = "mastermind.hcl"

// Config represents the complete configuration
type Config struct {
	Game GameSettings `hcl:"game,block"`
	UI   UISettings   `hcl:"ui,block"`
}

// fileConfig mirrors Config with optional blocks
type fileConfig struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// GameSettings controls the rules of a round
type GameSettings struct {
	Palette     []string `hcl:"palette,optional"`
	CodeLength  int      `hcl:"code_length,optional"`
	MaxAttempts int      `hcl:"max_attempts,optional"`
	Seed        int64    `hcl:"seed,optional"` // 0 seeds from the clock
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	Color    string `hcl:"color,optional"` // auto, always or never
	Initials bool   `hcl:"initials,optional"`
}

// Default returns the standard game: eight colors, four positions, ten attempts
func Default() *Config {
	names := make([]string, len(colors.All))
	for i, c := range colors.All {
		names[i] = c.String()
	}
	return &Config{
		Game: GameSettings{
			Palette:     names,
			CodeLength:  game.DefaultCodeLength,
			MaxAttempts: game.DefaultMaxAttempts,
		},
		UI: UISettings{
			LogLevel: "info",
			LogFile:  "mastermind.log",
			Color:    "auto",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var decoded fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &decoded)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	var config Config
	if decoded.Game != nil {
		config.Game = *decoded.Game
	}
	if decoded.UI != nil {
		config.UI = *decoded.UI
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if len(c.Game.Palette) == 0 {
		c.Game.Palette = defaults.Game.Palette
	}
	if c.Game.CodeLength == 0 {
		c.Game.CodeLength = defaults.Game.CodeLength
	}
	if c.Game.MaxAttempts == 0 {
		c.Game.MaxAttempts = defaults.Game.MaxAttempts
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = defaults.UI.LogFile
	}
	if c.UI.Color == "" {
		c.UI.Color = defaults.UI.Color
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("game palette: %w", err)
	}
	if c.Game.CodeLength < 1 {
		return fmt.Errorf("code length must be positive, got %d", c.Game.CodeLength)
	}
	if c.Game.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be positive, got %d", c.Game.MaxAttempts)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	validColorModes := map[string]bool{
		"auto":   true,
		"always": true,
		"never":  true,
	}
	if !validColorModes[c.UI.Color] {
		return fmt.Errorf("invalid color mode: %s", c.UI.Color)
	}

	return nil
}

// Palette parses the configured palette
func (c *Config) Palette() (colors.Palette, error) {
	return colors.ParsePalette(c.Game.Palette)
}

// GameOptions converts the game settings into game options. The seed is
// resolved by the caller since zero means "seed from the clock".
func (c *Config) GameOptions() ([]game.Option, error) {
	palette, err := c.Palette()
	if err != nil {
		return nil, err
	}
	return []game.Option{
		game.WithPalette(palette),
		game.WithCodeLength(c.Game.CodeLength),
		game.WithMaxAttempts(c.Game.MaxAttempts),
	}, nil
}
