package engine

import "github.com/lgbarn/plyboard/internal/chess"

// pawnDirection returns the rank step for a pawn of colour: pawns of the
// player's colour advance toward rank 0, the opponent's toward rank 7.
func pawnDirection(board *Board, colour chess.Colour) int {
	if colour == board.player {
		return -1
	}
	return 1
}

// pawnMoves returns the pushes and captures available to pawn on from.
func pawnMoves(board *Board, from chess.Coord, pawn chess.Tile) []chess.Coord {
	colour := pawn.Colour()
	dir := pawnDirection(board, colour)
	var dst []chess.Coord

	// An occupied near square blocks both pushes; an occupied far square
	// blocks only the double push.
	near, nearOK := from.Offset(0, dir)
	if nearOK && board.Tile(near).IsEmpty() {
		if !pawn.HasMoved() {
			if far, ok := from.Offset(0, 2*dir); ok && board.Tile(far).IsEmpty() {
				dst = append(dst, far)
			}
		}
		dst = append(dst, near)
	}

	// Captures need an opposing piece on the diagonal; there is no en passant.
	for _, dx := range []int{-1, 1} {
		to, ok := from.Offset(dx, dir)
		if !ok {
			continue
		}
		if board.Tile(to).IsOpponentOf(colour) {
			dst = append(dst, to)
		}
	}
	return dst
}
