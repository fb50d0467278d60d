package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/plyboard/internal/chess"
	"github.com/lgbarn/plyboard/internal/errors"
)

// Layout lists a piece code for each square, indexed by file + 8*rank.
// Codes are 0 for an empty square and 1..6 for Pawn..King. Colours are
// not part of a layout; FromLayout assigns them by rank.
type Layout [chess.NumSquares]int

// StandardLayout is the usual starting position.
var StandardLayout = Layout{
	2, 3, 4, 5, 6, 4, 3, 2,
	1, 1, 1, 1, 1, 1, 1, 1,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 1,
	2, 3, 4, 5, 6, 4, 3, 2,
}

// ParseLayout parses 64 piece codes written as digits, rank 0 first.
// Whitespace is ignored and '.' may be used for 0.
func ParseLayout(s string) (Layout, error) {
	var layout Layout
	n := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if n == chess.NumSquares {
			return Layout{}, fmt.Errorf("more than %d squares: %w", chess.NumSquares, errors.ErrInvalidLayout)
		}
		switch {
		case r == '.':
			layout[n] = 0
		case r >= '0' && r <= '9':
			piece, err := chess.DecodePiece(int(r - '0'))
			if err != nil {
				return Layout{}, layoutEntryError(n, err)
			}
			layout[n] = int(piece)
		default:
			return Layout{}, fmt.Errorf("square %d has %q: %w", n, r, errors.ErrInvalidLayout)
		}
		n++
	}
	if n != chess.NumSquares {
		return Layout{}, fmt.Errorf("got %d squares, want %d: %w", n, chess.NumSquares, errors.ErrInvalidLayout)
	}
	return layout, nil
}

// String returns the layout as eight space-separated rows of digits.
func (l Layout) String() string {
	rows := make([]string, 0, chess.BoardSize)
	for rank := 0; rank < chess.BoardSize; rank++ {
		var sb strings.Builder
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(byte('0' + l[file+chess.BoardSize*rank]))
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, " ")
}

// Codes returns the layout as a slice, for encoders that need one.
func (l Layout) Codes() []int {
	return append([]int(nil), l[:]...)
}

// LayoutFromCodes is the inverse of Codes.
func LayoutFromCodes(codes []int) (Layout, error) {
	if len(codes) != chess.NumSquares {
		return Layout{}, fmt.Errorf("got %d codes, want %d: %w", len(codes), chess.NumSquares, errors.ErrInvalidLayout)
	}
	var layout Layout
	for i, code := range codes {
		if _, err := chess.DecodePiece(code); err != nil {
			return Layout{}, layoutEntryError(i, err)
		}
		layout[i] = code
	}
	return layout, nil
}

func layoutEntryError(index int, err error) error {
	return errors.Wrapf(err, "layout square %d", index)
}

func errInvalidPlayer(c chess.Colour) error {
	return fmt.Errorf("player colour %v: %w", c, errors.ErrInvalidLayout)
}
