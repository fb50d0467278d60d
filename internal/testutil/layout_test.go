package testutil

import (
	"strings"
	"testing"
)

func TestLayout(t *testing.T) {
	got := Layout(t,
		"RNBQKBNR",
		"PPPPPPPP",
		"........",
		"........",
		"........",
		"........",
		"pppppppp",
		"rnbqkbnr",
	)

	want := "23456432" + "11111111" + strings.Repeat("0", 32) + "11111111" + "23456432"
	AssertEqual(t, got, want)
}

func TestLayout_IgnoresSpaces(t *testing.T) {
	got := Layout(t,
		". . . . K . . .",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....k...",
	)

	AssertEqual(t, len(got), 64)
	AssertEqual(t, got[4], byte('6'))
	AssertEqual(t, got[60], byte('6'))
}
