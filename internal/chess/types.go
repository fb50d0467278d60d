// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/plyboard/internal/errors"
)

// Colour represents the colour of a piece or player.
// The zero value NoColour marks an empty square.
type Colour int

const (
	NoColour Colour = iota
	Black
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColour
	}
}

// Valid reports whether c is Black or White.
func (c Colour) Valid() bool {
	return c == Black || c == White
}

// ParseColour converts "white"/"black" (any case, or w/b) to a Colour.
func ParseColour(s string) (Colour, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	}
	return NoColour, false
}

// Piece represents a chess piece type.
// Empty (0) means no piece; Pawn through King use codes 1..6.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{'.', 'P', 'R', 'N', 'B', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Valid reports whether p is Empty or one of the six piece kinds.
func (p Piece) Valid() bool {
	return p >= Empty && p < NumPieceValues
}

// IsSlider reports whether p moves along rays.
func (p Piece) IsSlider() bool {
	return p == Rook || p == Bishop || p == Queen
}

// DecodePiece converts a raw piece code to a Piece.
// Code 0 decodes to Empty; anything outside 0..6 is ErrInvalidPieceCode.
func DecodePiece(code int) (Piece, error) {
	p := Piece(code)
	if !p.Valid() {
		return Empty, fmt.Errorf("code %d: %w", code, errors.ErrInvalidPieceCode)
	}
	return p, nil
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// NumSquares is the number of squares on the board.
const NumSquares = BoardSize * BoardSize
