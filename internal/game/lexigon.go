// internal/game/lexigon.go
//
// The puzzle definition: one mandatory letter, NumOptionalLetters optional
// letters and the Wordlist backing them.
// Responsibilities:
//   - Validate candidate words (mandatory letter, alphabet, word list, length).
//   - Score valid words (isogram bonus or length-based).
//   - Enumerate every solvable word and the theoretical maximum score.
//   - Generate a random puzzle from a Wordlist's isograms.
//
// A Lexigon is immutable for the lifetime of a puzzle.

package game

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Lexigon is a single puzzle.
type Lexigon struct {
	mandatory rune
	optional  []rune
	wordlist  *Wordlist
}

// NewLexigon validates the letters and returns the puzzle.
// Returns ErrConfiguration when the mandatory letter repeats among the
// optional letters, an optional letter repeats, or no wordlist is given.
func NewLexigon(mandatory rune, optional []rune, wl *Wordlist) (*Lexigon, error) {
	if wl == nil {
		return nil, fmt.Errorf("%w: lexigon needs a word list", ErrConfiguration)
	}
	if mandatory == utf8.RuneError {
		return nil, fmt.Errorf("%w: mandatory letter must be a single character", ErrConfiguration)
	}
	if slices.Contains(optional, mandatory) {
		return nil, fmt.Errorf("%w: mandatory letter %q cannot be in optional letters", ErrConfiguration, mandatory)
	}
	if len(lo.Uniq(optional)) != len(optional) {
		return nil, fmt.Errorf("%w: optional letters %q repeat", ErrConfiguration, string(optional))
	}
	return &Lexigon{
		mandatory: mandatory,
		optional:  slices.Clone(optional),
		wordlist:  wl,
	}, nil
}

// Generate picks a uniformly random isogram, shuffles its letters and
// takes the first as mandatory and the rest as optional.
func Generate(wl *Wordlist, rng Rand) *Lexigon {
	isograms := wl.Isograms()
	picked := []rune(isograms[rng.IntN(len(isograms))])
	rng.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })

	lx := &Lexigon{
		mandatory: picked[0],
		optional:  picked[1:],
		wordlist:  wl,
	}
	log.Debug().
		Str("mandatory", string(lx.mandatory)).
		Str("optional", string(lx.optional)).
		Int("maxPoints", lx.MaxPoints()).
		Msg("generated lexigon")
	return lx
}

// Mandatory is the letter every word must contain.
func (l *Lexigon) Mandatory() rune { return l.mandatory }

// Optional returns a copy of the optional letters in puzzle order.
func (l *Lexigon) Optional() []rune { return slices.Clone(l.optional) }

// Wordlist is the backing word list.
func (l *Lexigon) Wordlist() *Wordlist { return l.wordlist }

// Allows reports whether r is one of the puzzle's letters.
func (l *Lexigon) Allows(r rune) bool {
	return r == l.mandatory || slices.Contains(l.optional, r)
}

// Solve validates word and returns its score.
//
// Checks run in order and the first failure is reported:
//   1. word contains the mandatory letter      (ErrMissingMandatory)
//   2. every letter belongs to the puzzle      (ErrDisallowedLetter)
//   3. word is in the backing word list        (ErrNotInWordlist)
//   4. word has at least MinWordLength letters (ErrTooShort)
func (l *Lexigon) Solve(word string) (int, error) {
	if !strings.ContainsRune(word, l.mandatory) {
		return 0, fmt.Errorf("%w: word must contain %q", ErrMissingMandatory, l.mandatory)
	}
	for _, r := range word {
		if !l.Allows(r) {
			return 0, fmt.Errorf("%w: %q in word %q", ErrDisallowedLetter, r, word)
		}
	}
	if !l.wordlist.Contains(word) {
		return 0, fmt.Errorf("%w: %q", ErrNotInWordlist, word)
	}
	if utf8.RuneCountInString(word) < MinWordLength {
		return 0, fmt.Errorf("%w: %q must be at least %d letters", ErrTooShort, word, MinWordLength)
	}
	return l.Evaluate(word), nil
}

// Evaluate scores a word assumed valid: IsogramBonus for isograms, otherwise
// one point for a MinWordLength word plus one per extra letter.
func (l *Lexigon) Evaluate(word string) int {
	if l.wordlist.IsIsogram(word) {
		return IsogramBonus
	}
	return utf8.RuneCountInString(word) - MinWordLength + 1
}

// PossibleWords yields every word of the word list that Solve accepts.
// The sequence is recomputed on each iteration.
func (l *Lexigon) PossibleWords() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, w := range l.wordlist.Words() {
			if _, err := l.Solve(w); err != nil {
				continue
			}
			if !yield(w) {
				return
			}
		}
	}
}

// MaxPoints is the sum of Evaluate over PossibleWords, before any cap.
func (l *Lexigon) MaxPoints() int {
	return l.sumPoints(l.PossibleWords())
}

func (l *Lexigon) sumPoints(words iter.Seq[string]) int {
	total := 0
	for w := range words {
		total += l.Evaluate(w)
	}
	return total
}

func (l *Lexigon) String() string {
	return fmt.Sprintf("%c[%s]", l.mandatory, string(l.optional))
}
