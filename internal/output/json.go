package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/plyboard/internal/chess"
	"github.com/lgbarn/plyboard/internal/engine"
)

// JSONBoard represents a board in JSON format.
type JSONBoard struct {
	ID       string       `json:"id,omitempty"`
	Player   string       `json:"player"` // colour seated on ranks 6-7
	Ply      int          `json:"ply"`
	MaxPly   int          `json:"maxPly"`
	Over     bool         `json:"over"`
	Squares  []JSONSquare `json:"squares"`
	Moves    []JSONMove   `json:"moves"`
	LastMove *JSONMove    `json:"lastMove,omitempty"`
}

// JSONSquare represents one occupied square.
type JSONSquare struct {
	File   int    `json:"file"`
	Rank   int    `json:"rank"`
	Piece  string `json:"piece"`
	Colour string `json:"colour"`
	Moved  bool   `json:"moved,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply    int    `json:"ply"`
	From   string `json:"from"`
	To     string `json:"to"`
	Option string `json:"option"`
	Code   uint16 `json:"code"`
}

// MoveToJSON converts a move taken at ply (0-based) to its JSON form.
func MoveToJSON(ply int, m chess.Move) JSONMove {
	return JSONMove{
		Ply:    ply,
		From:   coordText(m.From),
		To:     coordText(m.To),
		Option: m.Option.String(),
		Code:   m.Encode(),
	}
}

// BoardToJSON converts a board to its JSON form. Only occupied squares
// are listed.
func BoardToJSON(board *engine.Board) *JSONBoard {
	jb := &JSONBoard{
		Player:  board.PlayerColour().String(),
		Ply:     board.Ply(),
		MaxPly:  engine.MaxPly,
		Over:    board.IsOver(),
		Squares: make([]JSONSquare, 0, 32),
		Moves:   make([]JSONMove, 0, board.Ply()),
	}

	for i, tile := range board.Tiles() {
		if tile.IsEmpty() {
			continue
		}
		c, _ := chess.CoordFromIndex(i)
		jb.Squares = append(jb.Squares, JSONSquare{
			File:   c.File(),
			Rank:   c.Rank(),
			Piece:  tile.Piece().String(),
			Colour: tile.Colour().String(),
			Moved:  tile.HasMoved(),
		})
	}

	for ply, m := range board.History() {
		jb.Moves = append(jb.Moves, MoveToJSON(ply, m))
	}
	if n := len(jb.Moves); n > 0 {
		last := jb.Moves[n-1]
		jb.LastMove = &last
	}
	return jb
}

// WriteBoardJSON writes a board as indented JSON.
func WriteBoardJSON(w io.Writer, board *engine.Board) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BoardToJSON(board))
}

// coordText is the "file,rank" form accepted by chess.ParseCoord.
func coordText(c chess.Coord) string {
	return string([]byte{byte('0' + c.File()), ',', byte('0' + c.Rank())})
}
