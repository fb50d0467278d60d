package storage

import (
	"context"
	"testing"

	"github.com/lgbarn/plyboard/internal/chess"
	"github.com/lgbarn/plyboard/internal/engine"
	"github.com/lgbarn/plyboard/internal/errors"
	"github.com/lgbarn/plyboard/internal/testutil"
)

func openMemory(t *testing.T) *Storage {
	t.Helper()
	s, err := Open("")
	if err != nil {
		t.Fatalf("Open(\"\"): %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func playedBoard(t *testing.T) *engine.Board {
	t.Helper()
	b := engine.New(chess.White)
	moves := [][2]chess.Coord{
		{chess.MustCoord(1, 1), chess.MustCoord(1, 3)},
		{chess.MustCoord(0, 6), chess.MustCoord(0, 4)},
		{chess.MustCoord(1, 3), chess.MustCoord(0, 4)},
	}
	for _, m := range moves {
		if _, err := b.TakeTurn(m[0], m[1]); err != nil {
			t.Fatalf("TakeTurn(%v, %v): %v", m[0], m[1], err)
		}
	}
	return b
}

func TestNewRecord(t *testing.T) {
	b := playedBoard(t)
	rec := NewRecord("g1", engine.StandardLayout, b)

	testutil.AssertEqual(t, rec.ID, "g1")
	testutil.AssertEqual(t, rec.Player, "White")
	testutil.AssertEqual(t, rec.Layout, engine.StandardLayout.Codes())
	testutil.AssertEqual(t, len(rec.Moves), 3)

	last, _ := b.LastMove()
	testutil.AssertEqual(t, rec.Moves[2], last.Encode())
}

func TestRecord_Replay(t *testing.T) {
	original := playedBoard(t)
	rec := NewRecord("g1", engine.StandardLayout, original)

	replayed, err := rec.Replay()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, replayed.Tiles(), original.Tiles())
	testutil.AssertEqual(t, replayed.History(), original.History())
	testutil.AssertEqual(t, replayed.Ply(), 3)
}

func TestRecord_ReplayErrors(t *testing.T) {
	base := NewRecord("g1", engine.StandardLayout, playedBoard(t))

	tests := []struct {
		name   string
		mutate func(*Record)
		want   error
	}{
		{"unknown colour", func(r *Record) { r.Player = "Green" }, errors.ErrInvalidLayout},
		{"short layout", func(r *Record) { r.Layout = r.Layout[:10] }, errors.ErrInvalidLayout},
		{"bad move code", func(r *Record) { r.Moves[0] = 0xF000 }, errors.ErrInvalidMoveCode},
		{"illegal move", func(r *Record) {
			r.Moves = []uint16{chess.NewMove(chess.MustCoord(4, 7), chess.MustCoord(4, 6), chess.Quiet).Encode()}
		}, errors.ErrIllegalMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := base
			rec.Layout = append([]int(nil), base.Layout...)
			rec.Moves = append([]uint16(nil), base.Moves...)
			tt.mutate(&rec)

			_, err := rec.Replay()
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}

func TestStorage_SaveLoad(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	rec := NewRecord("g1", engine.StandardLayout, playedBoard(t))

	testutil.AssertNoError(t, s.Save(ctx, rec))

	got, err := s.Load(ctx, "g1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got.ID, rec.ID)
	testutil.AssertEqual(t, got.Player, rec.Player)
	testutil.AssertEqual(t, got.Layout, rec.Layout)
	testutil.AssertEqual(t, got.Moves, rec.Moves)
	testutil.AssertFalse(t, got.Updated.IsZero(), "Updated should be set")
}

func TestStorage_SaveKeepsCreated(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	b := engine.New(chess.Black)

	rec := NewRecord("g1", engine.StandardLayout, b)
	testutil.AssertNoError(t, s.Save(ctx, rec))
	first, err := s.Load(ctx, "g1")
	testutil.AssertNoError(t, err)

	if _, err := b.TakeTurn(chess.MustCoord(1, 0), chess.MustCoord(2, 2)); err != nil {
		t.Fatalf("TakeTurn: %v", err)
	}
	next := NewRecord("g1", engine.StandardLayout, b)
	testutil.AssertNoError(t, s.Save(ctx, next))

	second, err := s.Load(ctx, "g1")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, second.Created.Equal(first.Created), "Created changed on update")
	testutil.AssertEqual(t, len(second.Moves), 1)
}

func TestStorage_LoadMissing(t *testing.T) {
	s := openMemory(t)
	_, err := s.Load(context.Background(), "nope")
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)
}

func TestStorage_ListAndDelete(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	for _, id := range []string{"b", "a", "c"} {
		testutil.AssertNoError(t, s.Save(ctx, NewRecord(id, engine.StandardLayout, engine.New(chess.White))))
	}

	ids, err := s.List(ctx)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, ids, []string{"a", "b", "c"})

	testutil.AssertNoError(t, s.Delete(ctx, "b"))
	testutil.AssertNoError(t, s.Delete(ctx, "missing"))

	records, err := s.LoadAll(ctx)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(records), 2)
	testutil.AssertEqual(t, records[0].ID, "a")
	testutil.AssertEqual(t, records[1].ID, "c")

	_, err = s.Load(ctx, "b")
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)
}

func TestStorage_CancelledContext(t *testing.T) {
	s := openMemory(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Save(ctx, NewRecord("g1", engine.StandardLayout, engine.New(chess.White)))
	testutil.AssertErrorIs(t, err, context.Canceled)
	_, err = s.List(ctx)
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestStorage_OnDisk(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(dir)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, s.Save(ctx, NewRecord("g1", engine.StandardLayout, playedBoard(t))))
	testutil.AssertNoError(t, s.Close())

	reopened, err := Open(dir)
	testutil.AssertNoError(t, err)
	defer reopened.Close()

	rec, err := reopened.Load(ctx, "g1")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(rec.Moves), 3)
}

func TestDefaultDataDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)
	t.Setenv("APPDATA", base)
	t.Setenv("HOME", base)

	dir, err := DefaultDataDir()
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, dir, base)
	testutil.AssertContains(t, dir, appName)
}

func TestStorage_SaveRejectsEmptyID(t *testing.T) {
	s := openMemory(t)
	rec := NewRecord("", engine.StandardLayout, engine.New(chess.White))

	err := s.Save(context.Background(), rec)
	testutil.AssertErrorIs(t, err, errors.ErrInvalidGameID)

	ids, err := s.List(context.Background())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(ids), 0)
}
