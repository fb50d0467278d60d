package engine

import (
	"github.com/lgbarn/plyboard/internal/chess"
	"github.com/lgbarn/plyboard/internal/errors"
)

// TakeTurn moves the piece on src to dst and records the move.
//
// Once MaxPly moves have been taken it fails with a *errors.GameOverError,
// before the move itself is looked at. An illegal move fails with a
// *errors.MoveError wrapping errors.ErrIllegalMove. On any failure the
// board is left exactly as it was.
func (b *Board) TakeTurn(src, dst chess.Coord) (chess.Move, error) {
	if b.IsOver() {
		return chess.Move{}, &errors.GameOverError{Reason: errors.TurnLimitReached, Ply: b.ply}
	}

	if !IsLegal(b, src, dst) {
		return chess.Move{}, &errors.MoveError{
			Err:  errors.ErrIllegalMove,
			Ply:  b.ply,
			From: src.String(),
			To:   dst.String(),
		}
	}

	move := chess.NewMove(src, dst, Classify(b, src, dst))

	b.tiles[dst.Index()] = b.tiles[src.Index()].MarkMoved()
	b.tiles[src.Index()] = chess.EmptyTile
	b.history[b.ply] = move
	b.ply++

	return move, nil
}

// Replay applies moves in order, as recorded by History. It stops at the
// first move that fails and returns that error; moves before it stay
// applied and the failing move is not. A recorded option that differs from
// the replayed classification is an ErrIllegalMove.
func (b *Board) Replay(moves []chess.Move) error {
	for _, m := range moves {
		if !b.IsOver() && IsLegal(b, m.From, m.To) {
			if got := Classify(b, m.From, m.To); got != m.Option {
				return &errors.MoveError{
					Err:  errors.Wrapf(errors.ErrIllegalMove, "recorded as %v, replayed as %v", m.Option, got),
					Ply:  b.ply,
					From: m.From.String(),
					To:   m.To.String(),
				}
			}
		}
		if _, err := b.TakeTurn(m.From, m.To); err != nil {
			return err
		}
	}
	return nil
}
