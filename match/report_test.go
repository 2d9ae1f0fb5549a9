package match

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battlesim/types"
)

func TestReportAfterFullMatch(t *testing.T) {
	m := loadedMatch(t, sampleInput)
	require.NoError(t, m.Simulate())

	var buf bytes.Buffer
	require.NoError(t, m.WriteReport(&buf))

	want := "Player1\n" +
		"O O _ _ _ \n" +
		"_ _ X _ _ \n" +
		"_ _ _ X B \n" +
		"_ _ _ _ B \n" +
		"B _ _ O _ \n" +
		"\n\n\n" +
		"Player2\n" +
		"_ O _ B B \n" +
		"B _ _ _ _ \n" +
		"_ _ _ O B \n" +
		"_ X _ _ _ \n" +
		"_ O _ O _ \n" +
		"\n" +
		"P1:1\n" +
		"P2:2\n" +
		"Player 2 wins"
	assert.Equal(t, want, buf.String())
}

func TestReportBeforeAnyMove(t *testing.T) {
	m := loadedMatch(t, sampleInput)

	var buf bytes.Buffer
	require.NoError(t, m.WriteReport(&buf))

	want := "Player1\n" +
		"_ _ _ _ _ \n" +
		"_ _ B _ _ \n" +
		"_ _ _ B B \n" +
		"_ _ _ _ B \n" +
		"B _ _ _ _ \n" +
		"\n\n\n" +
		"Player2\n" +
		"_ _ _ B B \n" +
		"B _ _ _ _ \n" +
		"_ _ _ _ B \n" +
		"_ B _ _ _ \n" +
		"_ _ _ _ _ \n" +
		"\n" +
		"P1:0\n" +
		"P2:0\n" +
		"It is a draw"
	assert.Equal(t, want, buf.String())
}

func TestSummary(t *testing.T) {
	m := loadedMatch(t, sampleInput)
	require.NoError(t, m.Simulate())

	s, err := m.Summary()
	require.NoError(t, err)
	assert.Equal(t, [2]int{1, 2}, s.Scores)
	assert.Equal(t, types.ResultPlayer2Wins, s.Result)
	assert.Equal(t, 5, s.Boards[0].Size())
}
