package main

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/plyboard/internal/chess"
	"github.com/lgbarn/plyboard/internal/config"
	"github.com/lgbarn/plyboard/internal/engine"
	"github.com/lgbarn/plyboard/internal/errors"
	"github.com/lgbarn/plyboard/internal/output"
)

// play runs the command loop until quit, end of input or the turn limit.
// Bad commands and illegal moves are reported and the loop carries on.
func play(cfg *config.Config, board *engine.Board, in io.Reader) error {
	out := cfg.OutputFile
	writer := output.NewBoardWriter(out, cfg.JSONFormat)
	cfg.Logf(1, "new game, player %v", board.PlayerColour())

	if err := writer.WriteBoard(board); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch {
		case fields[0] == "quit":
			return nil

		case fields[0] == "show":
			if err := writer.WriteBoard(board); err != nil {
				return err
			}

		case fields[0] == "moves" && len(fields) == 2:
			from, err := chess.ParseCoord(fields[1])
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			for _, m := range engine.LegalMoves(board, from) {
				fmt.Fprintf(out, "%v %v\n", m, m.Option)
			}

		case len(fields) == 2:
			over, err := playMove(cfg, board, fields[0], fields[1])
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				if !over {
					continue
				}
			} else if err := writer.WriteBoard(board); err != nil {
				return err
			}
			if over {
				fmt.Fprintf(out, "game over after %d plies\n", board.Ply())
				cfg.Logf(1, "game over at ply %d", board.Ply())
				return nil
			}

		default:
			fmt.Fprintf(out, "error: unknown command %q\n", scanner.Text())
		}
	}
	return scanner.Err()
}

// playMove applies one move and reports whether the game is now over.
func playMove(cfg *config.Config, board *engine.Board, srcText, dstText string) (bool, error) {
	src, err := chess.ParseCoord(srcText)
	if err != nil {
		return false, err
	}
	dst, err := chess.ParseCoord(dstText)
	if err != nil {
		return false, err
	}

	move, err := board.TakeTurn(src, dst)
	if err != nil {
		return stderrors.Is(err, errors.ErrGameOver), err
	}
	cfg.Logf(2, "ply %d: %v %v", board.Ply()-1, move, move.Option)
	return board.IsOver(), nil
}
