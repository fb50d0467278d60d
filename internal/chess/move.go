package chess

import (
	"fmt"

	"github.com/lgbarn/plyboard/internal/errors"
)

// MoveOption classifies a move.
type MoveOption uint8

const (
	Quiet MoveOption = iota
	DoublePawnPush
	KingCastle
	QueenCastle
	Captures
	EpCapture
	numMoveOptions
)

// String returns the string representation of a move option.
func (o MoveOption) String() string {
	names := []string{"Quiet", "DoublePawnPush", "KingCastle", "QueenCastle", "Captures", "EpCapture"}
	if int(o) < len(names) {
		return names[o]
	}
	return "Unknown"
}

// Valid reports whether o is one of the defined options.
func (o MoveOption) Valid() bool {
	return o < numMoveOptions
}

// Move is a single half-move: source, destination and classification.
type Move struct {
	From   Coord
	To     Coord
	Option MoveOption
}

// NewMove creates a move.
func NewMove(from, to Coord, option MoveOption) Move {
	return Move{From: from, To: to, Option: option}
}

// IsCapture returns true if this move removes an opposing piece.
func (m Move) IsCapture() bool {
	return m.Option == Captures || m.Option == EpCapture
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Option {
	case KingCastle, QueenCastle:
		return true
	default:
		return false
	}
}

// String returns the move as "(f,r)-(f,r)", with "x" in place of "-" for captures.
func (m Move) String() string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	return m.From.String() + sep + m.To.String()
}

// Packed move layout, 16 bits:
//
//	bits  0-2  from file
//	bits  3-5  from rank
//	bits  6-8  to file
//	bits  9-11 to rank
//	bits 12-15 option
const (
	moveCoordMask   = 0x7
	moveFromRankPos = 3
	moveToFilePos   = 6
	moveToRankPos   = 9
	moveOptionPos   = 12
	moveOptionMask  = 0xf
)

// Encode packs the move into 16 bits.
func (m Move) Encode() uint16 {
	return uint16(m.From.file) |
		uint16(m.From.rank)<<moveFromRankPos |
		uint16(m.To.file)<<moveToFilePos |
		uint16(m.To.rank)<<moveToRankPos |
		uint16(m.Option)<<moveOptionPos
}

// DecodeMove unpacks a move produced by Encode.
// Option values above EpCapture are rejected rather than aliased.
func DecodeMove(code uint16) (Move, error) {
	option := MoveOption(code >> moveOptionPos & moveOptionMask)
	if !option.Valid() {
		return Move{}, fmt.Errorf("code %#04x option %d: %w", code, option, errors.ErrInvalidMoveCode)
	}
	// Three-bit fields are always in range.
	from := Coord{
		file: int8(code & moveCoordMask),
		rank: int8(code >> moveFromRankPos & moveCoordMask),
	}
	to := Coord{
		file: int8(code >> moveToFilePos & moveCoordMask),
		rank: int8(code >> moveToRankPos & moveCoordMask),
	}
	return Move{From: from, To: to, Option: option}, nil
}
