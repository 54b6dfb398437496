package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/lox/mastermind/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config string `short:"c" default:"${config_file}" help:"HCL config file (defaults apply when missing)"`
	Debug  bool   `help:"Enable debug logging"`
	Seed   int64  `help:"Deterministic RNG seed (0 uses the config seed, then the clock)"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Let the solver play a batch of games"`
	Score    ScoreCmd         `cmd:"" help:"Score a guess against a secret"`
}

// loadConfig reads and validates the config file, applying flag overrides.
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", g.Config, err)
	}
	if g.Seed != 0 {
		cfg.Game.Seed = g.Seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", g.Config, err)
	}
	return cfg, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("mastermind"),
		kong.Description("Crack the hidden color code before you run out of attempts"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
