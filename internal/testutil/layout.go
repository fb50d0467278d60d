package testutil

import (
	"strings"
	"testing"
)

// pieceDigits maps the letters used in test diagrams to layout codes.
var pieceDigits = map[rune]byte{
	'.': '0',
	'P': '1', 'p': '1',
	'R': '2', 'r': '2',
	'N': '3', 'n': '3',
	'B': '4', 'b': '4',
	'Q': '5', 'q': '5',
	'K': '6', 'k': '6',
}

// Layout converts eight diagram rows, rank 0 first, into the 64-digit
// layout text accepted by engine.ParseLayout. Each row holds eight
// characters from ".PRNBQK" (either case). Spaces are ignored.
// Layout calls t.Fatal on a malformed diagram.
func Layout(t *testing.T, rows ...string) string {
	t.Helper()
	if len(rows) != 8 {
		t.Fatalf("layout diagram has %d rows, want 8", len(rows))
	}
	var sb strings.Builder
	for i, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		if len(row) != 8 {
			t.Fatalf("layout row %d %q has %d squares, want 8", i, row, len(row))
		}
		for _, r := range row {
			digit, ok := pieceDigits[r]
			if !ok {
				t.Fatalf("layout row %d has unknown piece %q", i, r)
			}
			sb.WriteByte(digit)
		}
	}
	return sb.String()
}
