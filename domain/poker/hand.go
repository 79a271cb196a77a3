package poker

import (
	"errors"
	"fmt"
)

const (
	BoardSize = 5
	HoleSize  = 2
)

// BoardHand holds the community cards shared by every player of a showdown.
type BoardHand []Card

// HoleHand holds the private cards of one player.
type HoleHand []Card

// ErrInvalidHand is matched by every HandValidationError.
var ErrInvalidHand = errors.New("hands are invalid")

// HandValidationError reports a board or hole hand of the wrong size.
type HandValidationError struct {
	BoardSize int
	HoleSize  int
}

func (e *HandValidationError) Error() string {
	return fmt.Sprintf("%s: board has %d cards (want %d), hole has %d cards (want %d)",
		ErrInvalidHand, e.BoardSize, BoardSize, e.HoleSize, HoleSize)
}

func (e *HandValidationError) Is(target error) bool {
	return target == ErrInvalidHand
}

// IsBoardHandValid reports whether the board has exactly five cards.
func IsBoardHandValid(board BoardHand) bool {
	return len(board) == BoardSize
}

// IsPlayerHandValid reports whether the hole hand has exactly two cards.
func IsPlayerHandValid(hole HoleHand) bool {
	return len(hole) == HoleSize
}

// AreHandsValid returns a *HandValidationError unless both hands have the
// right size. Card values and duplicates are not checked.
func AreHandsValid(board BoardHand, hole HoleHand) error {
	if IsBoardHandValid(board) && IsPlayerHandValid(hole) {
		return nil
	}
	return &HandValidationError{BoardSize: len(board), HoleSize: len(hole)}
}
