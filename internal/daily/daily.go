package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/jonkhler/lexigon/internal/game"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed derives a deterministic seed for a date from HMAC(salt, YYYY-MM-DD).
func Seed(date time.Time, salt string) uint64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes are plenty for a PCG seed
	return binary.BigEndian.Uint64(sum[:8])
}

// Puzzle generates the day's puzzle from wl. Everyone asking for the same
// date, salt and word list gets the same letters. The returned Rand keeps
// drawing from the same deterministic stream for hints and resets.
func Puzzle(date time.Time, salt string, wl *game.Wordlist) (*game.Lexigon, game.Rand) {
	rng := game.NewRand(Seed(date, salt))
	return game.Generate(wl, rng), rng
}
