// Package match drives a scripted Battleship match: it loads and validates
// the script, replays both players' moves and renders the final report.
package match

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"battlesim/engine"
	"battlesim/player"
	"battlesim/script"
	"battlesim/types"
)

var (
	// ErrNotReady is returned when the match is used before a script was loaded.
	ErrNotReady = errors.New("match input needs to be loaded before simulation")
	// ErrAlreadySimulated is returned by a second call to Simulate.
	ErrAlreadySimulated = errors.New("match has already been simulated")
)

// Match is a single scripted game between player 1 and player 2.
type Match struct {
	ID string

	script    *script.Script
	ground    *engine.Battleground
	players   [2]*player.MoveSource
	simulated bool

	debugLog *log.Logger
}

// Option configures a Match.
type Option func(*Match)

// WithLogger sends debug traces to l.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) {
		if l != nil {
			m.debugLog = l
		}
	}
}

// WithID overrides the generated match id.
func WithID(id string) Option {
	return func(m *Match) {
		m.ID = id
	}
}

// New creates an empty match. Load must be called before Simulate.
func New(opts ...Option) *Match {
	m := &Match{
		ID:       uuid.NewString()[:8],
		debugLog: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load parses the script from r and sets up the battleground and both players.
// On error the match stays unloaded.
func (m *Match) Load(r io.Reader) error {
	s, err := script.Parse(r)
	if err != nil {
		return err
	}
	m.debugLog.Printf("[%s] sanitized inputs: %s", m.ID, s)

	ground := engine.NewBattleground()
	if err := ground.Setup(s.BoardSize(), s.Player1Ships(), s.Player2Ships()); err != nil {
		return fmt.Errorf("set up battleground: %w", err)
	}

	m.script = s
	m.ground = ground
	m.players = [2]*player.MoveSource{
		player.NewMoveSource(s.Player1Moves()),
		player.NewMoveSource(s.Player2Moves()),
	}
	m.simulated = false
	return nil
}

// Ready returns true once a script has been loaded.
func (m *Match) Ready() bool {
	return m.script != nil
}

// Script returns the loaded script, or nil.
func (m *Match) Script() *script.Script {
	return m.script
}

// Simulate plays exactly MissileCount rounds. In each round player 1 fires
// first, then player 2. The match does not stop early when a fleet is gone.
func (m *Match) Simulate() error {
	if !m.Ready() {
		return ErrNotReady
	}
	if m.simulated {
		return ErrAlreadySimulated
	}
	m.simulated = true

	for round := 1; round <= m.script.MissileCount(); round++ {
		for i, src := range m.players {
			attacker := i + 1
			move, err := src.Next()
			if err != nil {
				return fmt.Errorf("round %d, player %d: %w", round, attacker, err)
			}
			out, err := m.ground.RegisterMove(attacker, move)
			if err != nil {
				return fmt.Errorf("round %d, player %d: %w", round, attacker, err)
			}
			m.debugLog.Printf("[%s] round %d: player %d fires at %s: %s", m.ID, round, attacker, move, out)
		}
	}
	return nil
}

// Result returns the verdict for the current state of the battleground.
func (m *Match) Result() (types.Result, error) {
	if !m.Ready() {
		return types.ResultDraw, ErrNotReady
	}
	res := m.ground.Result()
	m.debugLog.Printf("[%s] result: %s", m.ID, res)
	return res, nil
}

// Score returns how many opposing ship cells the player has destroyed.
func (m *Match) Score(player int) (int, error) {
	if !m.Ready() {
		return 0, ErrNotReady
	}
	return m.ground.Score(player)
}

// Board returns a snapshot of the player's own grid.
func (m *Match) Board(player int) (types.Grid, error) {
	if !m.Ready() {
		return nil, ErrNotReady
	}
	return m.ground.Board(player)
}
