package engine

import "github.com/lgbarn/plyboard/internal/chess"

// direction is a single-square step.
type direction struct {
	dx, dy int
}

var (
	// plusDirections are the four cardinal steps used by rooks and queens.
	plusDirections = []direction{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

	// diagDirections are the four diagonal steps used by bishops and queens.
	diagDirections = []direction{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
)

// plusRays returns the squares a rook standing on from could reach.
func plusRays(board *Board, from chess.Coord, colour chess.Colour) []chess.Coord {
	return slide(board, from, colour, plusDirections, nil)
}

// diagRays returns the squares a bishop standing on from could reach.
func diagRays(board *Board, from chess.Coord, colour chess.Colour) []chess.Coord {
	return slide(board, from, colour, diagDirections, nil)
}

// slide extends a ray from from along each direction and appends the
// reachable squares to dst. A ray stops before a piece of colour, stops
// on (and includes) an opposing piece, and stops at the board edge.
func slide(board *Board, from chess.Coord, colour chess.Colour, dirs []direction, dst []chess.Coord) []chess.Coord {
	for _, d := range dirs {
		sq := from
		for {
			next, ok := sq.Offset(d.dx, d.dy)
			if !ok {
				break
			}
			tile := board.Tile(next)
			if tile.IsEmpty() {
				dst = append(dst, next)
				sq = next
				continue
			}
			if tile.Colour() != colour {
				dst = append(dst, next)
			}
			break
		}
	}
	return dst
}
