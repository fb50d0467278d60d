package output

import (
	"io"

	"github.com/lgbarn/plyboard/internal/engine"
)

// BoardWriter is the interface for writing boards to output.
// Different implementations handle different output formats.
type BoardWriter interface {
	// WriteBoard writes the current state of a board.
	WriteBoard(board *engine.Board) error
}

// TextWriter writes boards as a diagnostic grid.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteBoard writes a board as a grid.
func (tw *TextWriter) WriteBoard(board *engine.Board) error {
	return Render(tw.w, board)
}

// JSONWriter writes each board as an indented JSON document.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteBoard writes a board in JSON format.
func (jw *JSONWriter) WriteBoard(board *engine.Board) error {
	return WriteBoardJSON(jw.w, board)
}

// NewBoardWriter returns a JSONWriter when asJSON is set, otherwise a TextWriter.
func NewBoardWriter(w io.Writer, asJSON bool) BoardWriter {
	if asJSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}
