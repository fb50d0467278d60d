// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/plyboard/internal/chess"
	"github.com/lgbarn/plyboard/internal/config"
)

var (
	colour     = flag.String("color", "white", "Colour seated on ranks 6-7: white or black")
	layout     = flag.String("layout", "", "Starting layout: 64 piece codes 0-6, '.' for empty (default: standard)")
	jsonOutput = flag.Bool("J", false, "Print boards as JSON")
	logFile    = flag.String("log", "", "Write log output to this file (default: stderr)")
	verbosity  = flag.Int("v", 1, "Verbosity: 0=quiet, 1=lifecycle, 2=every move")
	help       = flag.Bool("h", false, "Show help")
)

// applyFlags copies parsed flag values into cfg.
func applyFlags(cfg *config.Config) error {
	c, ok := chess.ParseColour(*colour)
	if !ok {
		return fmt.Errorf("unknown colour %q", *colour)
	}
	cfg.Game.PlayerColour = c
	cfg.Game.Layout = *layout
	cfg.JSONFormat = *jsonOutput
	cfg.Verbosity = *verbosity
	return cfg.Validate()
}

// setupLogFile points cfg.LogFile at the -log file when given.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}
