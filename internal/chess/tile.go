package chess

import (
	"fmt"

	"github.com/lgbarn/plyboard/internal/errors"
)

// Tile is the occupancy of one square: a piece, its colour, and whether
// it has been moved. An empty tile has neither piece nor colour.
type Tile struct {
	piece  Piece
	colour Colour
	moved  bool
}

// EmptyTile is the tile of an unoccupied square.
var EmptyTile = Tile{}

// NewTile creates a tile holding piece in colour.
// An Empty piece yields the empty tile regardless of colour.
// A piece without a valid colour is ErrInvalidTile.
func NewTile(piece Piece, colour Colour) (Tile, error) {
	if !piece.Valid() {
		return EmptyTile, fmt.Errorf("piece %d: %w", int(piece), errors.ErrInvalidPieceCode)
	}
	if piece == Empty {
		return EmptyTile, nil
	}
	if !colour.Valid() {
		return EmptyTile, fmt.Errorf("%v without a colour: %w", piece, errors.ErrInvalidTile)
	}
	return Tile{piece: piece, colour: colour}, nil
}

// Piece returns the piece on the tile, or Empty.
func (t Tile) Piece() Piece {
	return t.piece
}

// Colour returns the colour of the piece on the tile, or NoColour.
func (t Tile) Colour() Colour {
	return t.colour
}

// IsEmpty returns true if no piece occupies the tile.
func (t Tile) IsEmpty() bool {
	return t.piece == Empty
}

// HasMoved returns true once the piece on the tile has been relocated.
func (t Tile) HasMoved() bool {
	return t.moved
}

// MarkMoved returns a copy of t with the moved flag set.
func (t Tile) MarkMoved() Tile {
	t.moved = true
	return t
}

// IsOpponentOf returns true if the tile holds a piece of the colour opposite to c.
func (t Tile) IsOpponentOf(c Colour) bool {
	return !t.IsEmpty() && c.Valid() && t.colour == c.Opposite()
}

// String returns a short description such as "White Pawn" or "Empty".
func (t Tile) String() string {
	if t.IsEmpty() {
		return "Empty"
	}
	return t.colour.String() + " " + t.piece.String()
}
