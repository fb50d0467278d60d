// Package engine provides chess move validation and board manipulation.
package engine

import (
	"github.com/lgbarn/plyboard/internal/chess"
)

// MaxPly is the number of half-moves a game may contain. The ceiling is
// flat: it counts every ply and is unrelated to the fifty-move draw rule.
const MaxPly = 50

// Board holds the squares, the ply counter and the move history of one game.
// A Board is not safe for concurrent use; callers serialise access.
type Board struct {
	// tiles[file + 8*rank]
	tiles [chess.NumSquares]chess.Tile

	// The colour seated on ranks 6-7. Pawns of this colour advance
	// toward rank 0, the others toward rank 7.
	player chess.Colour

	// Number of half-moves taken, 0..MaxPly.
	ply int

	// history[i] is the move taken at ply i; only history[:ply] is set.
	history [MaxPly]chess.Move
}

// New creates a board in the standard starting layout with player's
// pieces on ranks 6-7.
func New(player chess.Colour) *Board {
	b, err := FromLayout(player, StandardLayout)
	if err != nil {
		// StandardLayout only holds valid codes.
		panic(err)
	}
	return b
}

// FromLayout creates a board from a 64-entry layout. The opponent's colour
// is assigned to ranks 0-1 and player's colour to ranks 6-7; ranks 2-5 start
// empty whatever the layout holds there.
func FromLayout(player chess.Colour, layout Layout) (*Board, error) {
	if !player.Valid() {
		return nil, errInvalidPlayer(player)
	}
	b := &Board{player: player}
	opponent := player.Opposite()

	for i, code := range layout {
		piece, err := chess.DecodePiece(code)
		if err != nil {
			return nil, layoutEntryError(i, err)
		}
		var colour chess.Colour
		switch rank := i / chess.BoardSize; {
		case rank <= 1:
			colour = opponent
		case rank >= 6:
			colour = player
		default:
			continue
		}
		tile, err := chess.NewTile(piece, colour)
		if err != nil {
			return nil, layoutEntryError(i, err)
		}
		b.tiles[i] = tile
	}
	return b, nil
}

// PlayerColour returns the colour seated on ranks 6-7.
func (b *Board) PlayerColour() chess.Colour {
	return b.player
}

// Ply returns the number of half-moves taken so far.
func (b *Board) Ply() int {
	return b.ply
}

// IsOver returns true once no further moves are accepted.
func (b *Board) IsOver() bool {
	return b.ply >= MaxPly
}

// Tile returns the tile at c.
func (b *Board) Tile(c chess.Coord) chess.Tile {
	return b.tiles[c.Index()]
}

// TilePair returns the tiles at src and dst.
func (b *Board) TilePair(src, dst chess.Coord) (chess.Tile, chess.Tile) {
	return b.tiles[src.Index()], b.tiles[dst.Index()]
}

// Tiles returns a copy of all 64 tiles, indexed by file + 8*rank.
func (b *Board) Tiles() [chess.NumSquares]chess.Tile {
	return b.tiles
}

// LastMove returns the most recent move, or false before the first move.
func (b *Board) LastMove() (chess.Move, bool) {
	if b.ply == 0 {
		return chess.Move{}, false
	}
	return b.history[b.ply-1], true
}

// History returns a copy of the moves taken so far, oldest first.
func (b *Board) History() []chess.Move {
	moves := make([]chess.Move, b.ply)
	copy(moves, b.history[:b.ply])
	return moves
}

// Clone creates a deep copy of the board.
func (b *Board) Clone() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
