package engine

import "github.com/lgbarn/plyboard/internal/chess"

// knightOffsets are the eight L-shaped jumps.
var knightOffsets = []direction{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

// Candidates returns the squares the piece on from could move to,
// ignoring whose turn it is. An empty square has no candidates.
// The order of the result is unspecified.
func Candidates(board *Board, from chess.Coord) []chess.Coord {
	tile := board.Tile(from)
	colour := tile.Colour()

	switch tile.Piece() {
	case chess.Pawn:
		return pawnMoves(board, from, tile)
	case chess.Knight:
		return knightMoves(board, from, colour)
	case chess.Rook:
		return plusRays(board, from, colour)
	case chess.Bishop:
		return diagRays(board, from, colour)
	case chess.Queen:
		dst := slide(board, from, colour, plusDirections, nil)
		return slide(board, from, colour, diagDirections, dst)
	case chess.King:
		return kingMoves(board, from, colour)
	}
	return nil
}

// knightMoves returns the knight jumps from from that stay on the board and
// do not land on a piece of colour. Intervening squares are irrelevant.
func knightMoves(board *Board, from chess.Coord, colour chess.Colour) []chess.Coord {
	var dst []chess.Coord
	for _, d := range knightOffsets {
		to, ok := from.Offset(d.dx, d.dy)
		if !ok {
			continue
		}
		if target := board.Tile(to); !target.IsEmpty() && target.Colour() == colour {
			continue
		}
		dst = append(dst, to)
	}
	return dst
}

// kingMoves never yields a square: king movement, and with it castling,
// is not implemented.
func kingMoves(*Board, chess.Coord, chess.Colour) []chess.Coord {
	return nil
}

// containsCoord returns true if c is in coords.
func containsCoord(coords []chess.Coord, c chess.Coord) bool {
	for _, x := range coords {
		if x == c {
			return true
		}
	}
	return false
}
