package engine

import (
	"github.com/lgbarn/plyboard/internal/chess"
)

// IsLegal reports whether the piece on src may move to dst.
// A move is illegal when src == dst, when both squares hold the same
// colour (two empty squares included), or when dst is not among the
// piece's candidate squares.
func IsLegal(board *Board, src, dst chess.Coord) bool {
	if src == dst {
		return false
	}
	from, to := board.TilePair(src, dst)
	if from.Colour() == to.Colour() {
		return false
	}
	return containsCoord(Candidates(board, src), dst)
}

// Classify tags a legal move using the occupancy before it is made.
func Classify(board *Board, src, dst chess.Coord) chess.MoveOption {
	from, to := board.TilePair(src, dst)
	if to.IsOpponentOf(from.Colour()) {
		return chess.Captures
	}
	if from.Piece() == chess.Pawn && abs(dst.Rank()-src.Rank()) == 2 {
		return chess.DoublePawnPush
	}
	return chess.Quiet
}

// LegalMoves returns every legal move for the piece on from, classified.
func LegalMoves(board *Board, from chess.Coord) []chess.Move {
	var moves []chess.Move
	for _, to := range Candidates(board, from) {
		if !IsLegal(board, from, to) {
			continue
		}
		moves = append(moves, chess.NewMove(from, to, Classify(board, from, to)))
	}
	return moves
}
