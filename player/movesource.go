// Package player holds the pre-recorded moves of one side of a match.
package player

import (
	"errors"
	"fmt"

	"battlesim/types"
)

// ErrExhausted is returned by Next once every loaded move has been drawn.
var ErrExhausted = errors.New("no moves left")

// MoveSource yields a player's moves in order, one at a time.
type MoveSource struct {
	moves  []types.Coord
	cursor int
}

// NewMoveSource creates a move source loaded with moves.
func NewMoveSource(moves []types.Coord) *MoveSource {
	s := &MoveSource{}
	s.Load(moves)
	return s
}

// Load replaces the move list and rewinds to the first move.
// The slice is copied; no validation is done here.
func (s *MoveSource) Load(moves []types.Coord) {
	s.moves = append([]types.Coord(nil), moves...)
	s.cursor = 0
}

// Next returns the move at the cursor and advances past it.
func (s *MoveSource) Next() (types.Coord, error) {
	if s.cursor >= len(s.moves) {
		return types.Coord{}, fmt.Errorf("move %d of %d: %w", s.cursor+1, len(s.moves), ErrExhausted)
	}
	m := s.moves[s.cursor]
	s.cursor++
	return m, nil
}

// Remaining returns how many moves have not been drawn yet.
func (s *MoveSource) Remaining() int {
	return len(s.moves) - s.cursor
}
