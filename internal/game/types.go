// internal/game/types.go
//
// Core type definitions for the Lexigon puzzle engine.
// Defines:
//   - Puzzle constants (letter counts, scoring, score cap).
//   - Error taxonomy shared by every transition.
//   - Move: one accepted word and its points.
//   - Rand: the injected randomness capability.

package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	// NumOptionalLetters is the number of letters around the mandatory one.
	NumOptionalLetters = 6
	// MinWordLength is the shortest word a puzzle accepts.
	MinWordLength = 4
	// IsogramBonus is the flat score for a word using all puzzle letters once.
	IsogramBonus = 10
	// MaxPoints caps the target score of a single puzzle.
	MaxPoints = 50
)

// Rules is the short player-facing description of the game.
const Rules = `Form words from the given letters. Every word must contain the center letter
and be at least 4 letters long. Longer words earn more points; an isogram using
all seven letters once earns 10. Hints reveal a missing word letter by letter and
cost 1 point for the first letter, 2 for the second, and so on.`

// Error taxonomy. Every failure is local and recoverable; callers match with errors.Is.
var (
	ErrConfiguration      = errors.New("configuration error")
	ErrValidation         = errors.New("validation error")
	ErrDuplicateMove      = errors.New("duplicate move")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrNoLeftoverWords    = errors.New("no words left to hint")
)

// Validation reasons, in the order Lexigon.Solve checks them.
var (
	ErrMissingMandatory = fmt.Errorf("%w: missing mandatory letter", ErrValidation)
	ErrDisallowedLetter = fmt.Errorf("%w: disallowed letter", ErrValidation)
	ErrNotInWordlist    = fmt.Errorf("%w: not in word list", ErrValidation)
	ErrTooShort         = fmt.Errorf("%w: word too short", ErrValidation)
	ErrNotSingleLetter  = fmt.Errorf("%w: not a single letter", ErrValidation)
)

// Move is a word accepted by the puzzle together with the points it earned.
type Move struct {
	Word   string `json:"word"`
	Points int    `json:"points"`
}

// Rand is the source of randomness for puzzle generation and hint selection.
// *rand.Rand from math/rand/v2 satisfies it. Implementations need not be
// safe for concurrent use; give every session its own.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a deterministic PCG-backed source for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewCryptoRand returns a PCG source seeded from crypto/rand.
func NewCryptoRand() *rand.Rand {
	var b [16]byte
	_, _ = crand.Read(b[:])
	return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])))
}
