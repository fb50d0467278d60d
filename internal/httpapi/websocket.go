package httpapi

import (
	"context"
	"sync"

	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/plyboard/internal/output"
)

// Message types on the game stream.
const (
	msgState = "state"
	msgMove  = "move"
	msgError = "error"
)

// wsMessage is sent in both directions. Clients send {"type":"move",
// "from":"f,r","to":"f,r"}; the server sends state, move and error.
type wsMessage struct {
	Type  string            `json:"type"`
	Board *output.JSONBoard `json:"board,omitempty"`
	Event *moveEvent        `json:"event,omitempty"`
	Error string            `json:"error,omitempty"`
	From  string            `json:"from,omitempty"`
	To    string            `json:"to,omitempty"`
}

// streamGame sends the current board, then one message per move until the
// client goes away or the game is deleted. Moves sent by the client are
// played as if posted to the REST endpoint.
func (s *Server) streamGame(c *websocket.Conn) {
	id := c.Params("id")

	var wmu sync.Mutex
	write := func(msg wsMessage) error {
		wmu.Lock()
		defer wmu.Unlock()
		return c.WriteJSON(msg)
	}

	events, cancel, err := s.games.Subscribe(id)
	if err != nil {
		write(wsMessage{Type: msgError, Error: err.Error()}) //nolint:errcheck // closing anyway
		return
	}
	defer cancel()

	jb, err := s.games.Get(id)
	if err != nil {
		write(wsMessage{Type: msgError, Error: err.Error()}) //nolint:errcheck // closing anyway
		return
	}
	if err := write(wsMessage{Type: msgState, Board: jb}); err != nil {
		return
	}
	s.cfg.Logf(2, "game %s: websocket subscriber connected", id)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg wsMessage
			if err := c.ReadJSON(&msg); err != nil {
				return
			}
			if msg.Type != msgMove {
				write(wsMessage{Type: msgError, Error: "unknown message type " + msg.Type}) //nolint:errcheck // reported by the read loop
				continue
			}
			if _, err := s.playMove(context.Background(), id, moveRequest{From: msg.From, To: msg.To}); err != nil {
				write(wsMessage{Type: msgError, Error: err.Error()}) //nolint:errcheck // reported by the read loop
			}
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			wire := toMoveEvent(ev)
			if err := write(wsMessage{Type: msgMove, Event: &wire}); err != nil {
				return
			}
		case <-done:
			s.cfg.Logf(2, "game %s: websocket subscriber left", id)
			return
		}
	}
}
