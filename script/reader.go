// Package script reads the match description: board size, ship placements,
// missile count and both players' moves, one field per line.
package script

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"battlesim/types"
)

var (
	// ErrMalformed marks a field that does not follow its grammar.
	ErrMalformed = errors.New("invalid format")
	// ErrOutOfBounds marks a number or coordinate outside its allowed range.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrCount marks a list whose length differs from the declared count.
	ErrCount = errors.New("wrong number of items")
)

// FieldError reports which field of the input was rejected.
type FieldError struct {
	Field string
	Line  int // 1-based
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Script is a validated match description. It is never modified after Parse.
type Script struct {
	boardSize    int
	shipCount    int
	missileCount int
	ships        [2][]types.Coord
	moves        [2][]types.Coord
}

func (s *Script) BoardSize() int { return s.boardSize }
func (s *Script) ShipCount() int { return s.shipCount }
func (s *Script) MissileCount() int { return s.missileCount }

func (s *Script) Player1Ships() []types.Coord { return clone(s.ships[0]) }
func (s *Script) Player2Ships() []types.Coord { return clone(s.ships[1]) }
func (s *Script) Player1Moves() []types.Coord { return clone(s.moves[0]) }
func (s *Script) Player2Moves() []types.Coord { return clone(s.moves[1]) }

func (s *Script) String() string {
	return fmt.Sprintf("M=%d S=%d P1_POS_SHIPS=%v P2_POS_SHIPS=%v T=%d P1_MOVES=%v P2_MOVES=%v",
		s.boardSize, s.shipCount, s.ships[0], s.ships[1], s.missileCount, s.moves[0], s.moves[1])
}

func clone(c []types.Coord) []types.Coord {
	return append([]types.Coord(nil), c...)
}

// listGrammar describes how a coordinate list is written on its line.
type listGrammar struct {
	itemSep string
	pairSep string
}

var (
	shipGrammar = listGrammar{itemSep: ",", pairSep: ":"}
	moveGrammar = listGrammar{itemSep: ":", pairSep: ","}
)

// field is one line of the input. apply parses raw, checks it against the
// fields already stored in s and stores the result.
type field struct {
	name  string
	apply func(s *Script, raw string) error
}

// fields are evaluated in order; each may depend on the ones before it.
var fields = []field{
	{
		name: "Battleground size input (M)",
		apply: func(s *Script, raw string) (err error) {
			s.boardSize, err = parseBounded(raw, 0, 10)
			return
		},
	},
	{
		name: "Number of ships (S)",
		apply: func(s *Script, raw string) (err error) {
			s.shipCount, err = parseBounded(raw, 0, s.boardSize*s.boardSize/2)
			return
		},
	},
	{
		name: "Player 1 ship positions",
		apply: func(s *Script, raw string) (err error) {
			s.ships[0], err = parseCoords(raw, shipGrammar, s.shipCount, s.boardSize)
			return
		},
	},
	{
		name: "Player 2 ship positions",
		apply: func(s *Script, raw string) (err error) {
			s.ships[1], err = parseCoords(raw, shipGrammar, s.shipCount, s.boardSize)
			return
		},
	},
	{
		name: "Number of missiles (T)",
		apply: func(s *Script, raw string) (err error) {
			s.missileCount, err = parseBounded(raw, 0, 100)
			return
		},
	},
	{
		name: "Player 1 moves",
		apply: func(s *Script, raw string) (err error) {
			s.moves[0], err = parseCoords(raw, moveGrammar, s.missileCount, s.boardSize)
			return
		},
	},
	{
		name: "Player 2 moves",
		apply: func(s *Script, raw string) (err error) {
			s.moves[1], err = parseCoords(raw, moveGrammar, s.missileCount, s.boardSize)
			return
		},
	},
}

// FieldNames returns the names of the input fields in line order.
func FieldNames() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

// Parse reads a match description from r. The first invalid field aborts
// parsing with a *FieldError; later fields are not looked at.
func Parse(r io.Reader) (*Script, error) {
	// Strip a UTF-8 byte order mark left by some editors.
	data, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ParseString(string(data))
}

// ParseString is Parse for input already in memory.
func ParseString(content string) (*Script, error) {
	lines := strings.Split(content, "\n")
	s := &Script{}
	for i, f := range fields {
		if i >= len(lines) {
			return nil, &FieldError{Field: f.name, Line: i + 1, Err: fmt.Errorf("line is missing: %w", ErrMalformed)}
		}
		raw := strings.TrimSuffix(lines[i], "\r")
		if err := f.apply(s, raw); err != nil {
			return nil, &FieldError{Field: f.name, Line: i + 1, Err: err}
		}
	}
	return s, nil
}

func parseInt(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", raw, ErrMalformed)
	}
	return n, nil
}

// parseBounded parses an integer strictly between lower and upper.
func parseBounded(raw string, lower, upper int) (int, error) {
	n, err := parseInt(raw)
	if err != nil {
		return 0, err
	}
	if n <= lower {
		return 0, fmt.Errorf("%d must be greater than %d: %w", n, lower, ErrOutOfBounds)
	}
	if n >= upper {
		return 0, fmt.Errorf("%d must be less than %d: %w", n, upper, ErrOutOfBounds)
	}
	return n, nil
}

// parseCoords parses exactly count coordinate pairs, each on a size x size board.
// The whole list is parsed before its length and range are checked.
func parseCoords(raw string, g listGrammar, count, size int) ([]types.Coord, error) {
	items := strings.Split(raw, g.itemSep)
	coords := make([]types.Coord, 0, len(items))
	for i, item := range items {
		parts := strings.Split(item, g.pairSep)
		if len(parts) != 2 {
			return nil, fmt.Errorf("item %d %q is not a %q separated pair: %w", i+1, item, g.pairSep, ErrMalformed)
		}
		x, err := parseInt(parts[0])
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		y, err := parseInt(parts[1])
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		coords = append(coords, types.Coord{X: x, Y: y})
	}

	if len(coords) != count {
		return nil, fmt.Errorf("got %d items, must match %d: %w", len(coords), count, ErrCount)
	}
	for i, c := range coords {
		if !c.InBounds(size) {
			return nil, fmt.Errorf("item %d %s is not in the range [0, %d]: %w", i+1, c, size-1, ErrOutOfBounds)
		}
	}
	return coords, nil
}
