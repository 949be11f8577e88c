package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fixtureWords backs a puzzle built on the isogram "trading".
//
// With mandatory 'g' and optional "tradin" the possible words are
//
//	trading 10, rating 3, dating 3, grand 2, giant 2, grind 2, grin 1, drag 1
//
// for a total of 24 points.
var fixtureWords = []string{
	"trading", "rating", "dating", "grand", "giant", "grind", "grin", "drag",
	"darn", "train", "tag", "garden", "letters",
}

const fixtureMaxPoints = 24

func fixtureWordlist(t *testing.T) *Wordlist {
	t.Helper()
	wl, err := NewWordlist(fixtureWords)
	require.NoError(t, err)
	return wl
}

func fixtureLexigon(t *testing.T) *Lexigon {
	t.Helper()
	lx, err := NewLexigon('g', []rune("tradin"), fixtureWordlist(t))
	require.NoError(t, err)
	return lx
}

func fixtureState(t *testing.T, opts ...Option) State {
	t.Helper()
	return NewFromLexigon(fixtureLexigon(t), NewRand(1), opts...)
}

// play types word letter by letter and submits it.
func play(t *testing.T, s State, word string) (State, error) {
	t.Helper()
	for _, r := range word {
		var err error
		s, err = s.AddLetter(string(r))
		require.NoError(t, err)
	}
	return s.AddMove()
}

// mustPlay is play that requires success.
func mustPlay(t *testing.T, s State, word string) State {
	t.Helper()
	next, err := play(t, s, word)
	require.NoError(t, err, "playing %q", word)
	return next
}
