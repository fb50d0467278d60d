// Package output provides diagnostic rendering of boards as text and JSON.
package output

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/lgbarn/plyboard/internal/chess"
	"github.com/lgbarn/plyboard/internal/engine"
)

// TileSymbol returns the letter for a tile: uppercase for White,
// lowercase for Black, '.' for empty.
func TileSymbol(tile chess.Tile) byte {
	letter := tile.Piece().Letter()
	if tile.Colour() == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// Render writes the board as an 8x8 grid, rank 0 at the top, with file
// and rank indexes around it.
func Render(w io.Writer, board *engine.Board) error {
	var sb strings.Builder

	sb.WriteString("   0 1 2 3 4 5 6 7\n")
	for rank := 0; rank < chess.BoardSize; rank++ {
		fmt.Fprintf(&sb, "%d ", rank)
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			sb.WriteByte(TileSymbol(board.Tile(chess.MustCoord(file, rank))))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "player %v, ply %d/%d", board.PlayerColour(), board.Ply(), engine.MaxPly)
	if last, ok := board.LastMove(); ok {
		fmt.Fprintf(&sb, ", last %v %v", last, last.Option)
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderString returns the output of Render as a string.
func RenderString(board *engine.Board) string {
	var sb strings.Builder
	Render(&sb, board) //nolint:errcheck // strings.Builder never fails
	return sb.String()
}
