package match

import (
	"bufio"
	"fmt"
	"io"

	"battlesim/types"
)

// Summary is everything the report shows about a match.
type Summary struct {
	Boards [2]types.Grid
	Scores [2]int
	Result types.Result
}

// Summary collects both boards, both scores and the verdict.
func (m *Match) Summary() (*Summary, error) {
	if !m.Ready() {
		return nil, ErrNotReady
	}
	var s Summary
	for i := range s.Boards {
		b, err := m.ground.Board(i + 1)
		if err != nil {
			return nil, err
		}
		score, err := m.ground.Score(i + 1)
		if err != nil {
			return nil, err
		}
		s.Boards[i] = b
		s.Scores[i] = score
	}
	s.Result = m.ground.Result()
	return &s, nil
}

// WriteReport renders the match report to w. The layout is consumed by
// text comparisons and must not change.
func (m *Match) WriteReport(w io.Writer) error {
	s, err := m.Summary()
	if err != nil {
		return err
	}
	return s.Render(w)
}

// Render writes the report layout: both boards, both scores and the result line.
func (s *Summary) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Player1\n%s\n\n\n", s.Boards[0])
	fmt.Fprintf(bw, "Player2\n%s\n", s.Boards[1])
	fmt.Fprintf(bw, "P1:%d\nP2:%d\n%s", s.Scores[0], s.Scores[1], s.Result)
	return bw.Flush()
}
