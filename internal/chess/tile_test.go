package chess

import (
	"testing"

	"github.com/lgbarn/plyboard/internal/errors"
	"github.com/lgbarn/plyboard/internal/testutil"
)

func TestNewTile(t *testing.T) {
	tests := []struct {
		name       string
		piece      Piece
		colour     Colour
		wantPiece  Piece
		wantColour Colour
		wantErr    error
	}{
		{"white pawn", Pawn, White, Pawn, White, nil},
		{"black pawn", Pawn, Black, Pawn, Black, nil},
		{"black king", King, Black, King, Black, nil},
		{"empty", Empty, NoColour, Empty, NoColour, nil},
		{"empty ignores colour", Empty, White, Empty, NoColour, nil},
		{"piece without colour", Rook, NoColour, Empty, NoColour, errors.ErrInvalidTile},
		{"piece with bogus colour", Rook, Colour(9), Empty, NoColour, errors.ErrInvalidTile},
		{"bogus piece", Piece(9), White, Empty, NoColour, errors.ErrInvalidPieceCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile, err := NewTile(tt.piece, tt.colour)
			if tt.wantErr != nil {
				testutil.AssertErrorIs(t, err, tt.wantErr)
				return
			}
			testutil.AssertNoError(t, err)
			if tile.Piece() != tt.wantPiece {
				t.Errorf("Piece() = %v; want %v", tile.Piece(), tt.wantPiece)
			}
			if tile.Colour() != tt.wantColour {
				t.Errorf("Colour() = %v; want %v", tile.Colour(), tt.wantColour)
			}
			if tile.HasMoved() {
				t.Error("new tile HasMoved() = true")
			}
		})
	}
}

// Colour is present if and only if a piece is present, for every tile
// NewTile can produce.
func TestTile_ColourIffPiece(t *testing.T) {
	for p := Empty; p < NumPieceValues; p++ {
		for c := NoColour; c <= White; c++ {
			tile, err := NewTile(p, c)
			if err != nil {
				continue
			}
			for _, tl := range []Tile{tile, tile.MarkMoved()} {
				if tl.IsEmpty() != (tl.Colour() == NoColour) {
					t.Errorf("NewTile(%v, %v) = %v breaks colour/piece invariant", p, c, tl)
				}
			}
		}
	}
}

func TestTile_MarkMoved(t *testing.T) {
	tile, err := NewTile(Pawn, White)
	testutil.AssertNoError(t, err)

	moved := tile.MarkMoved()

	testutil.AssertFalse(t, tile.HasMoved(), "original tile must be unchanged")
	testutil.AssertTrue(t, moved.HasMoved())
	testutil.AssertEqual(t, moved.Piece(), Pawn)
	testutil.AssertEqual(t, moved.Colour(), White)
	testutil.AssertTrue(t, moved.MarkMoved().HasMoved(), "moved flag is sticky")
}

func TestTile_IsOpponentOf(t *testing.T) {
	white, _ := NewTile(Knight, White)
	black, _ := NewTile(Knight, Black)

	testutil.AssertTrue(t, white.IsOpponentOf(Black))
	testutil.AssertFalse(t, white.IsOpponentOf(White))
	testutil.AssertTrue(t, black.IsOpponentOf(White))
	testutil.AssertFalse(t, EmptyTile.IsOpponentOf(White))
	testutil.AssertFalse(t, EmptyTile.IsOpponentOf(Black))
	testutil.AssertFalse(t, white.IsOpponentOf(NoColour))
}

func TestTile_String(t *testing.T) {
	queen, _ := NewTile(Queen, Black)
	testutil.AssertEqual(t, queen.String(), "Black Queen")
	testutil.AssertEqual(t, EmptyTile.String(), "Empty")
}
