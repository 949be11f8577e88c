package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromLexigon(t *testing.T) {
	s := fixtureState(t)

	assert.Equal(t, "", s.Candidate())
	assert.Equal(t, 0, s.Moves().Len())
	assert.Equal(t, fixtureMaxPoints, s.MaxPoints())
	assert.Equal(t, 0, s.CurrentPoints())
	assert.Equal(t, 0, s.TotalPenalty())
	assert.True(t, s.Hint().Exhausted())
	assert.False(t, s.Completed())
}

func TestNewFromWordlistCapsMaxPoints(t *testing.T) {
	// Every isogram scores the bonus; six of them exceed the cap on their own.
	words := []string{"trading", "gradint", "tradgin", "dartign", "gintard", "grindat"}
	wl, err := NewWordlist(words)
	require.NoError(t, err)

	s := NewFromWordlist(wl, NewRand(7))
	assert.Equal(t, 6*IsogramBonus, s.Lexigon().MaxPoints())
	assert.Equal(t, MaxPoints, s.MaxPoints())
}

func TestAddLetter(t *testing.T) {
	s := fixtureState(t)

	for _, bad := range []string{"", "gr", "ab"} {
		_, err := s.AddLetter(bad)
		require.ErrorIs(t, err, ErrNotSingleLetter, "letter %q", bad)
		require.ErrorIs(t, err, ErrValidation)
	}

	next, err := s.AddLetter("g")
	require.NoError(t, err)
	next, err = next.AddLetter("ü")
	require.NoError(t, err)

	assert.Equal(t, "gü", next.Candidate())
	assert.Equal(t, "", s.Candidate(), "receiver is untouched")
}

func TestAddMoveScores(t *testing.T) {
	s := fixtureState(t)

	s = mustPlay(t, s, "trading")
	assert.Equal(t, IsogramBonus, s.CurrentPoints())

	s = mustPlay(t, s, "grin")
	assert.Equal(t, IsogramBonus+1, s.CurrentPoints())
	assert.Equal(t, "", s.Candidate())
	assert.Equal(t, []Move{{"trading", 10}, {"grin", 1}}, s.Moves().Slice())
}

func TestAddMoveRejectsInvalidWord(t *testing.T) {
	s := fixtureState(t)

	next, err := play(t, s, "darn")
	require.ErrorIs(t, err, ErrMissingMandatory)
	assert.Equal(t, "darn", next.Candidate(), "failed transition returns the prior state")
	assert.Equal(t, 0, next.Moves().Len())

	cleared := next.ClearCandidate()
	assert.Equal(t, "", cleared.Candidate())
	assert.Equal(t, 0, cleared.Moves().Len())
}

func TestAddMoveDuplicate(t *testing.T) {
	s := mustPlay(t, fixtureState(t), "grand")

	_, err := play(t, s, "grand")
	require.ErrorIs(t, err, ErrDuplicateMove)
}

func TestAddMovePrefixOfFoundWord(t *testing.T) {
	loose := mustPlay(t, fixtureState(t), "grind")
	_, err := play(t, loose, "grin")
	require.ErrorIs(t, err, ErrDuplicateMove)

	strict := mustPlay(t, fixtureState(t, WithExactDuplicates(true)), "grind")
	strict = mustPlay(t, strict, "grin")
	assert.Equal(t, 3, strict.CurrentPoints())
}

func TestEmptyCandidate(t *testing.T) {
	_, err := fixtureState(t).AddMove()
	assert.ErrorIs(t, err, ErrDuplicateMove, "the empty string is in every tree")

	_, err = fixtureState(t, WithExactDuplicates(true)).AddMove()
	assert.ErrorIs(t, err, ErrMissingMandatory)
}

func TestMaxPointsTightens(t *testing.T) {
	s := fixtureState(t)
	prev := s.MaxPoints()

	for _, w := range []string{"grand", "trading", "rating", "drag"} {
		s = mustPlay(t, s, w)
		assert.LessOrEqual(t, s.MaxPoints(), prev, "after %q", w)
		assert.LessOrEqual(t, s.MaxPoints(), MaxPoints)

		leftover := 0
		for _, lw := range s.LeftoverWords() {
			leftover += s.Lexigon().Evaluate(lw)
		}
		assert.Equal(t, min(leftover, MaxPoints), s.MaxPoints(), "after %q", w)
		prev = s.MaxPoints()
	}
}

func TestLeftoverWords(t *testing.T) {
	s := mustPlay(t, fixtureState(t), "grind")
	// grin is a prefix of grind and counts as found
	assert.Equal(t, []string{"dating", "drag", "giant", "grand", "rating", "trading"}, s.LeftoverWords())

	s = mustPlay(t, fixtureState(t, WithExactDuplicates(true)), "grind")
	assert.Contains(t, s.LeftoverWords(), "grin")
}

func TestRequestHintNeedsPoints(t *testing.T) {
	s := fixtureState(t)

	next, err := s.RequestHint()
	require.ErrorIs(t, err, ErrInsufficientPoints)
	assert.Empty(t, next.Penalties())
	assert.True(t, next.Hint().Exhausted())
}

func TestRequestHintPenalties(t *testing.T) {
	s := mustPlay(t, fixtureState(t), "trading")
	require.Equal(t, 10, s.CurrentPoints())

	// 1+2+3+4 = 10 is affordable, a fifth reveal is not.
	for i := 1; i <= 4; i++ {
		var err error
		s, err = s.RequestHint()
		require.NoError(t, err, "hint %d", i)
		assert.GreaterOrEqual(t, s.Score(), 0)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, s.Penalties())
	assert.Equal(t, 10, s.TotalPenalty())
	assert.Equal(t, 0, s.Score())

	next, err := s.RequestHint()
	require.ErrorIs(t, err, ErrInsufficientPoints)
	assert.Equal(t, s.Penalties(), next.Penalties())
	assert.Equal(t, s.Hint().String(), next.Hint().String())
}

func TestHintExhaustionPicksNewTarget(t *testing.T) {
	s := fixtureState(t)
	for _, w := range []string{"trading", "rating", "dating", "grand", "giant", "grind"} {
		s = mustPlay(t, s, w)
	}
	require.Equal(t, []string{"drag"}, s.LeftoverWords())
	require.Equal(t, 22, s.CurrentPoints())

	for i := 1; i <= 4; i++ {
		var err error
		s, err = s.RequestHint()
		require.NoError(t, err)
		assert.Equal(t, i, s.Hint().Revealed())
	}
	assert.True(t, s.Hint().Exhausted())
	assert.Equal(t, "drag", s.Hint().String())

	s, err := s.RequestHint()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Hint().Revealed())
	assert.Equal(t, "d", s.Hint().String())
	assert.Equal(t, []int{1, 2, 3, 4, 1}, s.Penalties())
}

func TestSubmissionClearsHint(t *testing.T) {
	s := mustPlay(t, fixtureState(t), "trading")
	s, err := s.RequestHint()
	require.NoError(t, err)
	require.Equal(t, 1, s.Hint().Revealed())
	assert.Equal(t, 2, s.NextHintCost())

	s = mustPlay(t, s, "grin")
	assert.True(t, s.Hint().Exhausted())
	assert.Equal(t, 1, s.NextHintCost())
	assert.Equal(t, []int{1}, s.Penalties(), "penalties survive submissions")
}

func TestNoLeftoverWordsToHint(t *testing.T) {
	s := fixtureState(t)
	for _, w := range []string{"trading", "rating", "dating", "grand", "giant", "grind", "drag"} {
		s = mustPlay(t, s, w)
	}
	require.Empty(t, s.LeftoverWords())

	_, err := s.RequestHint()
	assert.ErrorIs(t, err, ErrNoLeftoverWords)
}

func TestCompletionAndReset(t *testing.T) {
	s := mustPlay(t, fixtureState(t), "trading")
	assert.False(t, s.Completed(), "10 points against 14 left")

	s = mustPlay(t, s, "rating")
	for range 2 {
		var err error
		s, err = s.RequestHint()
		require.NoError(t, err)
	}

	assert.Equal(t, 13, s.CurrentPoints())
	assert.Equal(t, 11, s.MaxPoints())
	assert.Equal(t, 10, s.Score())
	assert.True(t, s.Completed(), "penalties do not affect completion")

	fresh := s.Reset()
	assert.False(t, fresh.Completed())
	assert.Equal(t, 0, fresh.Moves().Len())
	assert.Empty(t, fresh.Penalties())
	assert.Equal(t, "", fresh.Candidate())
	assert.Same(t, s.Wordlist(), fresh.Wordlist())
}

func TestResetKeepsOptions(t *testing.T) {
	s := fixtureState(t, WithExactDuplicates(true)).Reset()
	assert.True(t, s.ExactDuplicates())
	assert.True(t, s.Moves().Exact())
}

func TestProgress(t *testing.T) {
	s := fixtureState(t)
	assert.Equal(t, 0.0, s.Progress())

	s = mustPlay(t, s, "trading")
	assert.InDelta(t, 10.0/14.0, s.Progress(), 1e-9)
}
