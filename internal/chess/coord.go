package chess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/plyboard/internal/errors"
)

// Coord is a validated (file, rank) pair on the 8x8 grid.
// The zero value is the square (0,0). Coords are only created through
// NewCoord, CoordFromIndex, ParseCoord or Offset, so every Coord in
// circulation is on the board.
type Coord struct {
	file int8
	rank int8
}

// NewCoord returns the coordinate (file, rank), or false if either
// component falls outside [0,7].
func NewCoord(file, rank int) (Coord, bool) {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return Coord{}, false
	}
	return Coord{file: int8(file), rank: int8(rank)}, true
}

// MustCoord is NewCoord for constant coordinates known to be on the board.
// It panics on an off-board pair.
func MustCoord(file, rank int) Coord {
	c, ok := NewCoord(file, rank)
	if !ok {
		panic(fmt.Sprintf("chess: coordinate (%d,%d) is off the board", file, rank))
	}
	return c
}

// CoordFromIndex converts a board array index (file + 8*rank) to a Coord.
func CoordFromIndex(index int) (Coord, bool) {
	if index < 0 || index >= NumSquares {
		return Coord{}, false
	}
	return NewCoord(index%BoardSize, index/BoardSize)
}

// ParseCoord parses the text form "file,rank", e.g. "0,1".
// Surrounding parentheses and spaces are accepted.
func ParseCoord(s string) (Coord, error) {
	trimmed := strings.Trim(strings.TrimSpace(s), "()")
	fileText, rankText, found := strings.Cut(trimmed, ",")
	if !found {
		return Coord{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidCoord)
	}
	file, err := strconv.Atoi(strings.TrimSpace(fileText))
	if err != nil {
		return Coord{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidCoord)
	}
	rank, err := strconv.Atoi(strings.TrimSpace(rankText))
	if err != nil {
		return Coord{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidCoord)
	}
	c, ok := NewCoord(file, rank)
	if !ok {
		return Coord{}, fmt.Errorf("%q is off the board: %w", s, errors.ErrInvalidCoord)
	}
	return c, nil
}

// File returns the file (column) index, 0..7.
func (c Coord) File() int {
	return int(c.file)
}

// Rank returns the rank (row) index, 0..7.
func (c Coord) Rank() int {
	return int(c.rank)
}

// Index returns the board array index file + 8*rank.
func (c Coord) Index() int {
	return int(c.file) + BoardSize*int(c.rank)
}

// Offset returns the square dx files and dy ranks away from c,
// or false if that square is off the board.
func (c Coord) Offset(dx, dy int) (Coord, bool) {
	return NewCoord(int(c.file)+dx, int(c.rank)+dy)
}

// String returns the text form "(file,rank)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.file, c.rank)
}
