// internal/game/state.go
//
// State is the top-level game state for one player and one puzzle.
// Responsibilities:
//   - Build a fresh state from a Wordlist or a Lexigon.
//   - Apply player transitions: add letter, submit candidate, request hint, reset.
//   - Derive the read-only views the presentation layer renders
//     (points, penalty, cap, completion, leftover words).
//
// Notes:
//   - Every transition returns a new State and leaves its receiver untouched;
//     on error the receiver is still the current state.
//   - Completion compares raw points (before hint penalties) against the cap.
//   - The Rand is carried along so Reset and hints draw from the same source.

package game

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// State holds the progress of a single puzzle.
type State struct {
	candidate string
	lexigon   *Lexigon
	moves     Moves
	maxPoints int
	hint      Hint
	penalties []int
	rng       Rand
	exact     bool
}

// Option configures a new State.
type Option func(*State)

// WithExactDuplicates switches duplicate detection from prefix matching to
// whole-word matching, so finding "cat" does not block "catalog".
func WithExactDuplicates(exact bool) Option {
	return func(s *State) { s.exact = exact }
}

// NewFromWordlist generates a puzzle from wl and returns its initial state.
func NewFromWordlist(wl *Wordlist, rng Rand, opts ...Option) State {
	return NewFromLexigon(Generate(wl, rng), rng, opts...)
}

// NewFromLexigon returns the initial state for lx: empty candidate and moves,
// no hint, no penalties, and the cap set to min(lx.MaxPoints(), MaxPoints).
func NewFromLexigon(lx *Lexigon, rng Rand, opts ...Option) State {
	s := State{lexigon: lx, rng: rng}
	for _, opt := range opts {
		opt(&s)
	}
	s.moves = NewMoves(s.exact)
	s.maxPoints = min(lx.MaxPoints(), MaxPoints)
	log.Debug().Stringer("lexigon", lx).Int("maxPoints", s.maxPoints).Msg("new game state")
	return s
}

// ----------------------------- transitions ---------------------------------

// AddLetter appends a single character to the candidate. The alphabet is
// not checked here; Solve does that on submission.
func (s State) AddLetter(letter string) (State, error) {
	if utf8.RuneCountInString(letter) != 1 {
		return s, fmt.Errorf("%w: %q", ErrNotSingleLetter, letter)
	}
	s.candidate += letter
	return s, nil
}

// ClearCandidate drops the candidate. The presentation layer calls it after
// a failed submission.
func (s State) ClearCandidate() State {
	s.candidate = ""
	return s
}

// AddMove submits the candidate.
//
// Fails with ErrDuplicateMove when the ledger already contains the candidate,
// or with the Solve error when the word is invalid. On success the move is
// recorded, candidate and hint are cleared, and the cap is recomputed as
// min(points of the words still left, MaxPoints).
func (s State) AddMove() (State, error) {
	if s.moves.Contains(s.candidate) {
		return s, fmt.Errorf("%w: %q was already found", ErrDuplicateMove, s.candidate)
	}
	points, err := s.lexigon.Solve(s.candidate)
	if err != nil {
		return s, err
	}

	s.moves = s.moves.Insert(Move{Word: s.candidate, Points: points})
	s.candidate = ""
	s.hint = Hint{}
	s.maxPoints = min(s.lexigon.sumPoints(slices.Values(s.LeftoverWords())), MaxPoints)
	return s, nil
}

// RequestHint reveals one more letter of an unfound word at a cost equal to
// the number of letters revealed so far. When the current hint is exhausted
// a new target is drawn from the leftover words.
//
// Fails with ErrInsufficientPoints when the projected score (points minus
// all penalties including this one) would drop below zero, and with
// ErrNoLeftoverWords when there is nothing left to hint.
func (s State) RequestHint() (State, error) {
	hint := s.hint
	if hint.Exhausted() {
		leftover := s.LeftoverWords()
		if len(leftover) == 0 {
			return s, ErrNoLeftoverWords
		}
		hint = NewHint(leftover[s.rng.IntN(len(leftover))])
	}
	hint = hint.Next()

	penalties := append(slices.Clone(s.penalties), hint.Revealed())
	if missing := lo.Sum(penalties) - s.CurrentPoints(); missing > 0 {
		return s, fmt.Errorf("%w: missing %d points for the next letter", ErrInsufficientPoints, missing)
	}

	s.hint = hint
	s.penalties = penalties
	return s, nil
}

// Reset discards all progress and starts a new puzzle from the same word list.
func (s State) Reset() State {
	log.Info().Int("moves", s.moves.Len()).Msg("resetting game state")
	return NewFromWordlist(s.Wordlist(), s.rng, WithExactDuplicates(s.exact))
}

// ------------------------------- views -------------------------------------

// Candidate is the word being built.
func (s State) Candidate() string { return s.candidate }

// Lexigon is the active puzzle.
func (s State) Lexigon() *Lexigon { return s.lexigon }

// Wordlist is the word list the puzzle was built from.
func (s State) Wordlist() *Wordlist { return s.lexigon.Wordlist() }

// Moves is the ledger of found words.
func (s State) Moves() Moves { return s.moves }

// MaxPoints is the current target score.
func (s State) MaxPoints() int { return s.maxPoints }

// Hint is the current hint.
func (s State) Hint() Hint { return s.hint }

// NextHintCost is the penalty the next RequestHint would record.
func (s State) NextHintCost() int {
	if s.hint.Exhausted() {
		return 1
	}
	return s.hint.Revealed() + 1
}

// Penalties returns a copy of the recorded hint costs.
func (s State) Penalties() []int { return slices.Clone(s.penalties) }

// CurrentPoints is the sum of all move points, penalties not subtracted.
func (s State) CurrentPoints() int {
	return lo.SumBy(s.moves.moves, func(m Move) int { return m.Points })
}

// TotalPenalty is the sum of all hint costs.
func (s State) TotalPenalty() int { return lo.Sum(s.penalties) }

// Score is the displayed score: CurrentPoints minus TotalPenalty.
func (s State) Score() int { return s.CurrentPoints() - s.TotalPenalty() }

// Completed reports whether raw points reached the cap.
func (s State) Completed() bool { return s.CurrentPoints() >= s.maxPoints }

// Progress is Score relative to MaxPoints, clamped to [0, 1].
func (s State) Progress() float64 {
	if s.maxPoints <= 0 {
		return 1
	}
	return max(0, min(1, float64(s.Score())/float64(s.maxPoints)))
}

// ExactDuplicates reports whether whole-word duplicate detection is on.
func (s State) ExactDuplicates() bool { return s.exact }

// LeftoverWords returns the possible words not yet found, sorted.
func (s State) LeftoverWords() []string {
	var out []string
	for w := range s.lexigon.PossibleWords() {
		if !s.moves.Contains(w) {
			out = append(out, w)
		}
	}
	return out
}
