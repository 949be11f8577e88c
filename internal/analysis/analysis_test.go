package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonkhler/lexigon/internal/game"
)

var fixtureWords = []string{
	"trading", "rating", "dating", "grand", "giant", "grind", "grin", "drag",
	"darn", "train", "tag", "garden", "letters",
}

func fixtureWordlist(t *testing.T) *game.Wordlist {
	t.Helper()
	wl, err := game.NewWordlist(fixtureWords)
	require.NoError(t, err)
	return wl
}

func TestParseLetters(t *testing.T) {
	wl := fixtureWordlist(t)

	lx, err := ParseLetters(" GTradin ", wl)
	require.NoError(t, err)
	assert.Equal(t, "g[tradin]", lx.String())

	tests := []struct {
		name    string
		letters string
	}{
		{"too few", "gtrad"},
		{"too many", "gtradinx"},
		{"mandatory repeated", "gtradig"},
		{"optional repeated", "gtradaa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLetters(tt.letters, wl)
			assert.ErrorIs(t, err, game.ErrConfiguration)
		})
	}
}

func TestSolve(t *testing.T) {
	lx, err := ParseLetters("gtradin", fixtureWordlist(t))
	require.NoError(t, err)

	r := Solve(lx)
	assert.Equal(t, "g[tradin]", r.Letters)
	assert.Equal(t, []WordScore{
		{"dating", 3}, {"drag", 1}, {"giant", 2}, {"grand", 2},
		{"grin", 1}, {"grind", 2}, {"rating", 3}, {"trading", 10},
	}, r.Words)
	assert.Equal(t, 24, r.MaxPoints)
	assert.Equal(t, 24, r.Target)
}

func TestSurvey(t *testing.T) {
	wl := fixtureWordlist(t)
	require.Equal(t, 7, Puzzles(wl))

	steps := 0
	s, err := Survey(wl, func() { steps++ })
	require.NoError(t, err)

	assert.Equal(t, 7, steps)
	// per mandatory letter: d 19, t 20, r 22, i 23, a 24, g 24, n 26
	assert.Equal(t, Summary{
		Puzzles: 7,
		Min:     19,
		Median:  23,
		Max:     26,
		Capped:  0,
		Buckets: []Bucket{{From: 10, To: 19, Count: 1}, {From: 20, To: 29, Count: 6}},
	}, s)
}

func TestSummarizeCapped(t *testing.T) {
	s := summarize([]int{60, 5, 50, 12})
	assert.Equal(t, 4, s.Puzzles)
	assert.Equal(t, 5, s.Min)
	assert.Equal(t, 50, s.Median)
	assert.Equal(t, 60, s.Max)
	assert.Equal(t, 2, s.Capped)
	assert.Len(t, s.Buckets, 4)

	assert.Equal(t, Summary{}, summarize(nil))
}
