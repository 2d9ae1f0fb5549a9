// Package types contains shared data structures for battlesim.
package types

import (
	"fmt"
	"strings"
)

// Coord is a position on a battleground. X selects the row and Y the column,
// so a grid is indexed as grid[X][Y].
type Coord struct {
	X int
	Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// InBounds reports whether c lies on a size x size grid.
func (c Coord) InBounds(size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

// CellState is the state of a single cell on a player's own grid.
type CellState int

const (
	CellEmpty CellState = iota
	CellShip
	CellHit
	CellMiss
)

// Symbol returns the single character used for the cell in reports.
func (s CellState) Symbol() byte {
	switch s {
	case CellShip:
		return 'B'
	case CellHit:
		return 'X'
	case CellMiss:
		return 'O'
	default:
		return '_'
	}
}

func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "Empty"
	case CellShip:
		return "Ship"
	case CellHit:
		return "Hit"
	case CellMiss:
		return "Miss"
	default:
		return "Unknown"
	}
}

// Resolved returns true once the cell has been fired at.
func (s CellState) Resolved() bool {
	return s == CellHit || s == CellMiss
}

// Grid is a square board indexed as Grid[x][y].
type Grid [][]CellState

// NewGrid creates an empty size x size grid.
func NewGrid(size int) Grid {
	g := make(Grid, size)
	for i := range g {
		g[i] = make([]CellState, size)
	}
	return g
}

// Size returns the edge length of the grid.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for i := range g {
		c[i] = append([]CellState(nil), g[i]...)
	}
	return c
}

// Count returns the number of cells in the given state.
func (g Grid) Count(state CellState) int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			if cell == state {
				n++
			}
		}
	}
	return n
}

// String renders the grid one row per line, each cell symbol followed by a space.
func (g Grid) String() string {
	var sb strings.Builder
	for _, row := range g {
		for _, cell := range row {
			sb.WriteByte(cell.Symbol())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Outcome is the effect of a single registered move.
type Outcome int

const (
	OutcomeMiss Outcome = iota
	OutcomeHit
	OutcomeAlreadyResolved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "miss"
	case OutcomeHit:
		return "hit"
	case OutcomeAlreadyResolved:
		return "already resolved"
	default:
		return "unknown"
	}
}

// Result is the final verdict of a match.
type Result int

const (
	ResultDraw Result = iota
	ResultPlayer1Wins
	ResultPlayer2Wins
)

func (r Result) String() string {
	switch r {
	case ResultPlayer1Wins:
		return "Player 1 wins"
	case ResultPlayer2Wins:
		return "Player 2 wins"
	default:
		return "It is a draw"
	}
}

// ValidPlayer returns true for player ids 1 and 2.
func ValidPlayer(player int) bool {
	return player == 1 || player == 2
}

// Opponent returns the other player's id (1->2, 2->1).
func Opponent(player int) int {
	if player == 1 {
		return 2
	}
	return 1
}
