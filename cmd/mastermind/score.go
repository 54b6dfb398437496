package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/mastermind/internal/config"
	"github.com/lox/mastermind/internal/game"
)

// ScoreCmd scores a single guess, handy for checking feedback by hand
type ScoreCmd struct {
	Secret string `arg:"" help:"Secret code, e.g. rbgy or \"red,blue,green,yellow\""`
	Guess  string `arg:"" help:"Guess to score against the secret"`
}

func (c *ScoreCmd) Run(globals *Globals) error {
	cfg, err := globals.loadConfig()
	if err != nil {
		return err
	}
	return c.score(os.Stdout, cfg)
}

func (c *ScoreCmd) score(w io.Writer, cfg *config.Config) error {
	palette, err := cfg.Palette()
	if err != nil {
		return err
	}
	secret, err := game.ParseCode(c.Secret, cfg.Game.CodeLength, palette)
	if err != nil {
		return fmt.Errorf("secret: %w", err)
	}
	guess, err := game.ParseCode(c.Guess, cfg.Game.CodeLength, palette)
	if err != nil {
		return fmt.Errorf("guess: %w", err)
	}

	fb, err := game.Evaluate(secret, guess)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s vs %s: %s (%d exact, %d partial)\n", guess, secret, fb, fb.Exact, fb.Partial)
	return nil
}
