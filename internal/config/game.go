package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/plyboard/internal/chess"
	"github.com/lgbarn/plyboard/internal/engine"
	"github.com/lgbarn/plyboard/internal/errors"
)

// GameConfig holds settings for new games.
type GameConfig struct {
	// Colour seated on ranks 6-7.
	PlayerColour chess.Colour

	// Layout text for engine.ParseLayout; empty means the standard layout.
	Layout string
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		PlayerColour: chess.White,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if !g.PlayerColour.Valid() {
		return fmt.Errorf("player colour %v: %w", g.PlayerColour, errors.ErrInvalidConfig)
	}
	if _, err := g.BoardLayout(); err != nil {
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}

// BoardLayout returns the configured layout.
func (g *GameConfig) BoardLayout() (engine.Layout, error) {
	if strings.TrimSpace(g.Layout) == "" {
		return engine.StandardLayout, nil
	}
	return engine.ParseLayout(g.Layout)
}

// NewBoard creates a board from the configured colour and layout.
func (g *GameConfig) NewBoard() (*engine.Board, error) {
	layout, err := g.BoardLayout()
	if err != nil {
		return nil, err
	}
	return engine.FromLayout(g.PlayerColour, layout)
}
