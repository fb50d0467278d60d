package httpapi

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/lgbarn/plyboard/internal/chess"
	"github.com/lgbarn/plyboard/internal/engine"
	"github.com/lgbarn/plyboard/internal/errors"
	"github.com/lgbarn/plyboard/internal/output"
	"github.com/lgbarn/plyboard/internal/session"
)

type createRequest struct {
	Color  string `json:"color"`
	Layout string `json:"layout"`
}

type moveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// moveEvent is the wire form of session.Event.
type moveEvent struct {
	GameID string          `json:"gameId"`
	Move   output.JSONMove `json:"move"`
	Over   bool            `json:"over"`
}

func toMoveEvent(ev session.Event) moveEvent {
	return moveEvent{
		GameID: ev.GameID,
		Move:   output.MoveToJSON(ev.Ply, ev.Move),
		Over:   ev.Over,
	}
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrGameOver):
		return fiber.StatusGone
	case stderrors.Is(err, errors.ErrIllegalMove):
		return fiber.StatusConflict
	case stderrors.Is(err, errors.ErrInvalidCoord),
		stderrors.Is(err, errors.ErrInvalidLayout),
		stderrors.Is(err, errors.ErrInvalidGameID),
		stderrors.Is(err, errors.ErrInvalidPieceCode),
		stderrors.Is(err, errors.ErrInvalidTile):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req createRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	player := s.cfg.Game.PlayerColour
	if req.Color != "" {
		var ok bool
		if player, ok = chess.ParseColour(req.Color); !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "unknown color " + req.Color,
			})
		}
	}

	layout, err := s.cfg.Game.BoardLayout()
	if strings.TrimSpace(req.Layout) != "" {
		layout, err = engine.ParseLayout(req.Layout)
	}
	if err != nil {
		return fail(c, err)
	}

	id, err := s.games.Create(c.UserContext(), player, layout)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"game_id": id,
	})
}

func (s *Server) listGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"games": s.games.List(),
	})
}

func (s *Server) getGame(c *fiber.Ctx) error {
	jb, err := s.games.Get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(jb)
}

func (s *Server) getText(c *fiber.Ctx) error {
	board, err := s.games.Board(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(output.RenderString(board))
}

func (s *Server) legalMoves(c *fiber.Ctx) error {
	from, err := chess.ParseCoord(c.Query("from"))
	if err != nil {
		return fail(c, err)
	}
	board, err := s.games.Board(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	moves := engine.LegalMoves(board, from)
	out := make([]output.JSONMove, len(moves))
	for i, m := range moves {
		out[i] = output.MoveToJSON(board.Ply(), m)
	}
	return c.JSON(fiber.Map{
		"from":  c.Query("from"),
		"moves": out,
	})
}

func (s *Server) makeMove(c *fiber.Ctx) error {
	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	// Params point into fasthttp's reused request buffer.
	ev, err := s.playMove(c.UserContext(), utils.CopyString(c.Params("id")), req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(toMoveEvent(ev))
}

func (s *Server) playMove(ctx context.Context, id string, req moveRequest) (session.Event, error) {
	src, err := chess.ParseCoord(req.From)
	if err != nil {
		return session.Event{}, err
	}
	dst, err := chess.ParseCoord(req.To)
	if err != nil {
		return session.Event{}, err
	}
	return s.games.Move(ctx, id, src, dst)
}

func (s *Server) deleteGame(c *fiber.Ctx) error {
	if err := s.games.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
