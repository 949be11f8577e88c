// internal/game/wordlist.go
//
// Wordlist is the immutable corpus a puzzle is drawn from.
// It keeps the full word set plus the derived isograms: words of exactly
// NumOptionalLetters+1 distinct letters, each of which can seed a puzzle.
//
// Words are stored sorted so iteration order (and therefore every draw
// from an injected Rand) is reproducible.

package game

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Wordlist is shared by reference across puzzle generations and never mutated.
type Wordlist struct {
	words      []string // sorted, unique
	wordSet    map[string]struct{}
	isograms   []string // sorted subset of words
	isogramSet map[string]struct{}
}

// NewWordlist builds a Wordlist from words.
// Returns ErrConfiguration if no word qualifies as an isogram.
func NewWordlist(words []string) (*Wordlist, error) {
	sorted := lo.Uniq(words)
	slices.Sort(sorted)

	isograms := lo.Filter(sorted, func(w string, _ int) bool { return isIsogram(w) })
	if len(isograms) == 0 {
		return nil, fmt.Errorf("%w: no isograms found in %d words", ErrConfiguration, len(sorted))
	}
	return &Wordlist{
		words:      sorted,
		wordSet:    toSet(sorted),
		isograms:   isograms,
		isogramSet: toSet(isograms),
	}, nil
}

// isIsogram reports whether w has NumOptionalLetters+1 letters, none repeated.
func isIsogram(w string) bool {
	n := utf8.RuneCountInString(w)
	if n != NumOptionalLetters+1 {
		return false
	}
	return len(lo.Uniq([]rune(w))) == n
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// Contains reports membership in the full word set.
func (wl *Wordlist) Contains(word string) bool {
	_, ok := wl.wordSet[word]
	return ok
}

// IsIsogram reports membership in the derived isogram set.
func (wl *Wordlist) IsIsogram(word string) bool {
	_, ok := wl.isogramSet[word]
	return ok
}

// Words returns the sorted word list. The slice must not be modified.
func (wl *Wordlist) Words() []string { return wl.words }

// Isograms returns the sorted isograms. The slice must not be modified.
func (wl *Wordlist) Isograms() []string { return wl.isograms }

// Len is the number of words.
func (wl *Wordlist) Len() int { return len(wl.words) }

func (wl *Wordlist) String() string {
	return fmt.Sprintf("{num_words: %d, num_isograms: %d}", len(wl.words), len(wl.isograms))
}
