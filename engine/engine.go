// Package engine owns the two battlegrounds of a match and resolves moves against them.
package engine

import (
	"errors"
	"fmt"

	"battlesim/types"
)

var (
	// ErrInvalidPlayer is returned for player ids other than 1 and 2.
	ErrInvalidPlayer = errors.New("player id needs to be either 1 or 2")
	// ErrNotSetUp is returned when moves are registered before Setup.
	ErrNotSetUp = errors.New("battleground is not set up")
)

// Battleground holds both players' grids and the destroyed-ship counters.
type Battleground struct {
	size int
	// boards[0] is player 1's own grid, boards[1] player 2's.
	boards [2]types.Grid
	// destroyed[i] counts the ship cells of player i+1 hit by the opponent.
	destroyed [2]int
}

// NewBattleground creates a battleground that still needs Setup.
func NewBattleground() *Battleground {
	return &Battleground{}
}

// Setup allocates both size x size grids and places the ships.
// Duplicate ship coordinates collapse into one ship cell.
func (b *Battleground) Setup(size int, p1Ships, p2Ships []types.Coord) error {
	if size < 1 {
		return fmt.Errorf("board size %d: must be at least 1", size)
	}
	var boards [2]types.Grid
	for i, ships := range [][]types.Coord{p1Ships, p2Ships} {
		boards[i] = types.NewGrid(size)
		for _, c := range ships {
			if !c.InBounds(size) {
				return fmt.Errorf("player %d ship at %s is off the %dx%d board", i+1, c, size, size)
			}
			boards[i][c.X][c.Y] = types.CellShip
		}
	}
	b.size = size
	b.boards = boards
	b.destroyed = [2]int{}
	return nil
}

// RegisterMove fires the attacker's missile at target on the defender's grid.
func (b *Battleground) RegisterMove(attacker int, target types.Coord) (types.Outcome, error) {
	if !types.ValidPlayer(attacker) {
		return 0, fmt.Errorf("attacker %d: %w", attacker, ErrInvalidPlayer)
	}
	if b.boards[0] == nil {
		return 0, ErrNotSetUp
	}
	if !target.InBounds(b.size) {
		return 0, fmt.Errorf("target %s is off the %dx%d board", target, b.size, b.size)
	}

	defender := types.Opponent(attacker) - 1
	cell := &b.boards[defender][target.X][target.Y]
	switch *cell {
	case types.CellShip:
		*cell = types.CellHit
		b.destroyed[defender]++
		return types.OutcomeHit, nil
	case types.CellEmpty:
		*cell = types.CellMiss
		return types.OutcomeMiss, nil
	default:
		return types.OutcomeAlreadyResolved, nil
	}
}

// Score returns the number of opposing ship cells the player has destroyed.
func (b *Battleground) Score(player int) (int, error) {
	if !types.ValidPlayer(player) {
		return 0, fmt.Errorf("score of player %d: %w", player, ErrInvalidPlayer)
	}
	return b.destroyed[types.Opponent(player)-1], nil
}

// Board returns a copy of the player's own grid.
func (b *Battleground) Board(player int) (types.Grid, error) {
	if !types.ValidPlayer(player) {
		return nil, fmt.Errorf("board of player %d: %w", player, ErrInvalidPlayer)
	}
	return b.boards[player-1].Clone(), nil
}

// Size returns the edge length of the grids, or 0 before Setup.
func (b *Battleground) Size() int {
	return b.size
}

// Result compares the destroyed counters. The player who lost more ship
// cells loses the match.
func (b *Battleground) Result() types.Result {
	switch {
	case b.destroyed[0] == b.destroyed[1]:
		return types.ResultDraw
	case b.destroyed[0] > b.destroyed[1]:
		return types.ResultPlayer2Wins
	default:
		return types.ResultPlayer1Wins
	}
}
