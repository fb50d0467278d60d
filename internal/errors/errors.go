// Package errors provides sentinel errors and error types for plyboard.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidTile indicates a piece was supplied without a colour.
	ErrInvalidTile = errors.New("invalid tile")

	// ErrInvalidPieceCode indicates a raw piece value outside 0..6.
	ErrInvalidPieceCode = errors.New("invalid piece code")

	// ErrInvalidMoveCode indicates a packed move with an unknown option field.
	ErrInvalidMoveCode = errors.New("invalid move code")

	// ErrIllegalMove indicates a move that violates the movement rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates the game accepts no further moves.
	ErrGameOver = errors.New("game over")

	// ErrInvalidCoord indicates a malformed or off-board coordinate.
	ErrInvalidCoord = errors.New("invalid coordinate")

	// ErrInvalidLayout indicates a malformed board layout.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidGameID indicates a missing or malformed game id.
	ErrInvalidGameID = errors.New("invalid game id")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameOverReason says why a game stopped accepting moves.
type GameOverReason int

const (
	// TurnLimitReached means the ply counter hit its ceiling.
	TurnLimitReached GameOverReason = iota
)

// String returns the string representation of a reason.
func (r GameOverReason) String() string {
	switch r {
	case TurnLimitReached:
		return "turn limit reached"
	default:
		return "unknown reason"
	}
}

// GameOverError reports a move attempted after the game ended.
// It matches ErrGameOver under errors.Is().
type GameOverError struct {
	Reason GameOverReason
	Ply    int // Ply counter at the time of the attempt
}

// Error returns a formatted error message.
func (e *GameOverError) Error() string {
	return fmt.Sprintf("%v: %v at ply %d", ErrGameOver, e.Reason, e.Ply)
}

// Unwrap returns ErrGameOver.
func (e *GameOverError) Unwrap() error {
	return ErrGameOver
}

// MoveError wraps errors with move context, including the ply at which the
// move was attempted and its squares. It supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Ply  int    // Ply counter when the move was attempted
	From string // Source square (if known)
	To   string // Destination square (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("ply %d", e.Ply))

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
