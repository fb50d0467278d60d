package storage

import (
	"fmt"
	"time"

	"github.com/lgbarn/plyboard/internal/chess"
	"github.com/lgbarn/plyboard/internal/engine"
	"github.com/lgbarn/plyboard/internal/errors"
)

// Record is the persisted form of one game: enough to rebuild its board
// by replaying the moves over the starting layout.
type Record struct {
	ID      string    `json:"id"`
	Player  string    `json:"player"`
	Layout  []int     `json:"layout"`
	Moves   []uint16  `json:"moves"` // chess.Move.Encode values, oldest first
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// NewRecord captures board, which was created from layout.
func NewRecord(id string, layout engine.Layout, board *engine.Board) Record {
	history := board.History()
	moves := make([]uint16, len(history))
	for i, m := range history {
		moves[i] = m.Encode()
	}
	now := time.Now().UTC()
	return Record{
		ID:      id,
		Player:  board.PlayerColour().String(),
		Layout:  layout.Codes(),
		Moves:   moves,
		Created: now,
		Updated: now,
	}
}

// StartingLayout decodes the stored layout.
func (r Record) StartingLayout() (engine.Layout, error) {
	return engine.LayoutFromCodes(r.Layout)
}

// Replay rebuilds the board the record describes.
func (r Record) Replay() (*engine.Board, error) {
	player, ok := chess.ParseColour(r.Player)
	if !ok {
		return nil, fmt.Errorf("game %s: player colour %q: %w", r.ID, r.Player, errors.ErrInvalidLayout)
	}
	layout, err := r.StartingLayout()
	if err != nil {
		return nil, errors.Wrapf(err, "game %s", r.ID)
	}
	board, err := engine.FromLayout(player, layout)
	if err != nil {
		return nil, errors.Wrapf(err, "game %s", r.ID)
	}

	moves := make([]chess.Move, len(r.Moves))
	for i, code := range r.Moves {
		m, err := chess.DecodeMove(code)
		if err != nil {
			return nil, errors.Wrapf(err, "game %s move %d", r.ID, i)
		}
		moves[i] = m
	}
	if err := board.Replay(moves); err != nil {
		return nil, errors.Wrapf(err, "game %s", r.ID)
	}
	return board, nil
}
