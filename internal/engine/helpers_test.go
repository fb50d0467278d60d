package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/plyboard/internal/chess"
)

// sq is shorthand for a coordinate known to be on the board.
func sq(file, rank int) chess.Coord {
	return chess.MustCoord(file, rank)
}

// emptyBoard returns a board with no pieces.
func emptyBoard(player chess.Colour) *Board {
	return &Board{player: player}
}

// place puts a fresh piece on c, bypassing FromLayout's rank rules so that
// tests can build mid-game positions.
func place(t *testing.T, b *Board, c chess.Coord, piece chess.Piece, colour chess.Colour) {
	t.Helper()
	tile, err := chess.NewTile(piece, colour)
	if err != nil {
		t.Fatalf("NewTile(%v, %v): %v", piece, colour, err)
	}
	b.tiles[c.Index()] = tile
}

// placeMoved is place with the moved flag already set.
func placeMoved(t *testing.T, b *Board, c chess.Coord, piece chess.Piece, colour chess.Colour) {
	t.Helper()
	place(t, b, c, piece, colour)
	b.tiles[c.Index()] = b.tiles[c.Index()].MarkMoved()
}

// sortedIndexes converts coordinates to sorted board indexes so that
// candidate sets compare independently of generation order.
func sortedIndexes(coords []chess.Coord) []int {
	idx := make([]int, len(coords))
	for i, c := range coords {
		idx[i] = c.Index()
	}
	sort.Ints(idx)
	return idx
}

// snapshot captures everything observable about a board.
type snapshot struct {
	tiles   [chess.NumSquares]chess.Tile
	ply     int
	history []chess.Move
}

func takeSnapshot(b *Board) snapshot {
	return snapshot{tiles: b.Tiles(), ply: b.Ply(), history: b.History()}
}
