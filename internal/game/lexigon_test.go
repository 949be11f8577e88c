package game

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLexigonInvariants(t *testing.T) {
	wl := fixtureWordlist(t)

	_, err := NewLexigon('g', []rune("tradig"), wl)
	assert.ErrorIs(t, err, ErrConfiguration, "mandatory among optional")

	_, err = NewLexigon('g', []rune("traddn"), wl)
	assert.ErrorIs(t, err, ErrConfiguration, "repeated optional letter")

	_, err = NewLexigon('g', []rune("tradin"), nil)
	assert.ErrorIs(t, err, ErrConfiguration, "missing word list")
}

func TestAllows(t *testing.T) {
	lx := fixtureLexigon(t)
	for _, r := range "gtradin" {
		assert.True(t, lx.Allows(r), string(r))
	}
	for _, r := range "zeG7" {
		assert.False(t, lx.Allows(r), string(r))
	}
}

func TestSolve(t *testing.T) {
	lx := fixtureLexigon(t)

	tests := []struct {
		word   string
		points int
		err    error
	}{
		{"trading", IsogramBonus, nil},
		{"grand", 2, nil},
		{"grin", 1, nil},
		{"rating", 3, nil},
		{"darn", 0, ErrMissingMandatory},
		{"garden", 0, ErrDisallowedLetter},
		{"grad", 0, ErrNotInWordlist},
		{"ga", 0, ErrNotInWordlist},
		{"tag", 0, ErrTooShort},
		{"", 0, ErrMissingMandatory},
	}
	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			points, err := lx.Solve(tc.word)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.points, points)
		})
	}
}

func TestEvaluate(t *testing.T) {
	lx := fixtureLexigon(t)
	assert.Equal(t, IsogramBonus, lx.Evaluate("trading"))
	assert.Equal(t, 1, lx.Evaluate("drag"))
	assert.Equal(t, 2, lx.Evaluate("giant"))
	assert.Equal(t, 3, lx.Evaluate("dating"))
}

func TestPossibleWords(t *testing.T) {
	lx := fixtureLexigon(t)

	first := slices.Collect(lx.PossibleWords())
	second := slices.Collect(lx.PossibleWords())

	assert.Equal(t, []string{"dating", "drag", "giant", "grand", "grin", "grind", "rating", "trading"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, fixtureMaxPoints, lx.MaxPoints())
}

func TestPossibleWordsStopsEarly(t *testing.T) {
	lx := fixtureLexigon(t)
	var got []string
	for w := range lx.PossibleWords() {
		got = append(got, w)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"dating", "drag"}, got)
}

func TestGeneratePartitionsIsogram(t *testing.T) {
	wl, err := NewWordlist([]string{"trading", "pointed", "kämpfer", "grand", "letters"})
	require.NoError(t, err)

	for seed := uint64(0); seed < 64; seed++ {
		lx := Generate(wl, NewRand(seed))
		letters := append([]rune{lx.Mandatory()}, lx.Optional()...)

		require.Len(t, lx.Optional(), NumOptionalLetters)
		assert.NotContains(t, lx.Optional(), lx.Mandatory())

		slices.Sort(letters)
		matched := false
		for _, iso := range wl.Isograms() {
			want := []rune(iso)
			slices.Sort(want)
			if slices.Equal(want, letters) {
				matched = true
			}
		}
		assert.True(t, matched, "seed %d: letters %q are not an isogram", seed, string(letters))
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	wl := fixtureWordlist(t)
	a := Generate(wl, NewRand(42))
	b := Generate(wl, NewRand(42))
	assert.Equal(t, a.String(), b.String())
}
