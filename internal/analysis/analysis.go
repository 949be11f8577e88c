// internal/analysis/analysis.go
//
// Offline puzzle analysis behind the `solve` and `survey` commands.
//   - Solve lists every word of one puzzle with its points.
//   - Survey computes max points for every puzzle a word list can produce
//     (each isogram with each of its letters as the mandatory one).

package analysis

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/jonkhler/lexigon/internal/game"
)

// ParseLetters builds a puzzle from "<mandatory><optional...>", e.g. "gtradin".
func ParseLetters(letters string, wl *game.Wordlist) (*game.Lexigon, error) {
	letters = strings.ToLower(strings.TrimSpace(letters))
	if n := utf8.RuneCountInString(letters); n != game.NumOptionalLetters+1 {
		return nil, fmt.Errorf("%w: need %d letters, got %d", game.ErrConfiguration, game.NumOptionalLetters+1, n)
	}
	runes := []rune(letters)
	return game.NewLexigon(runes[0], runes[1:], wl)
}

// WordScore is one possible word of a puzzle.
type WordScore struct {
	Word   string `json:"word" yaml:"word"`
	Points int    `json:"points" yaml:"points"`
}

// Report is the full solution of a puzzle.
type Report struct {
	Letters   string      `json:"letters" yaml:"letters"`
	Words     []WordScore `json:"words" yaml:"words"`
	MaxPoints int         `json:"maxPoints" yaml:"max_points"`
	// Target is MaxPoints capped at game.MaxPoints, the score that wins.
	Target int `json:"target" yaml:"target"`
}

// Solve lists the possible words of lx, sorted, with their points.
func Solve(lx *game.Lexigon) Report {
	var ws []WordScore
	for w := range lx.PossibleWords() {
		ws = append(ws, WordScore{Word: w, Points: lx.Evaluate(w)})
	}
	total := lo.SumBy(ws, func(w WordScore) int { return w.Points })
	return Report{
		Letters:   lx.String(),
		Words:     ws,
		MaxPoints: total,
		Target:    min(total, game.MaxPoints),
	}
}

// Bucket counts puzzles whose max points fall in [From, To].
type Bucket struct {
	From  int `json:"from" yaml:"from"`
	To    int `json:"to" yaml:"to"`
	Count int `json:"count" yaml:"count"`
}

// Summary describes the max-points distribution over all puzzles of a word list.
type Summary struct {
	Puzzles int      `json:"puzzles" yaml:"puzzles"`
	Min     int      `json:"min" yaml:"min"`
	Median  int      `json:"median" yaml:"median"`
	Max     int      `json:"max" yaml:"max"`
	Capped  int      `json:"capped" yaml:"capped"` // puzzles reaching game.MaxPoints
	Buckets []Bucket `json:"buckets" yaml:"buckets"`
}

const bucketWidth = 10

// Puzzles returns how many puzzles Survey will evaluate for wl.
func Puzzles(wl *game.Wordlist) int {
	return len(wl.Isograms()) * (game.NumOptionalLetters + 1)
}

// Survey evaluates every isogram of wl with every choice of mandatory letter.
// step, if not nil, is called once per evaluated puzzle.
func Survey(wl *game.Wordlist, step func()) (Summary, error) {
	points := make([]int, 0, Puzzles(wl))
	for _, iso := range wl.Isograms() {
		letters := []rune(iso)
		for i, m := range letters {
			optional := slices.Concat(letters[:i], letters[i+1:])
			lx, err := game.NewLexigon(m, optional, wl)
			if err != nil {
				return Summary{}, fmt.Errorf("isogram %q: %w", iso, err)
			}
			points = append(points, lx.MaxPoints())
			if step != nil {
				step()
			}
		}
	}
	return summarize(points), nil
}

func summarize(points []int) Summary {
	if len(points) == 0 {
		return Summary{}
	}
	slices.Sort(points)
	s := Summary{
		Puzzles: len(points),
		Min:     points[0],
		Median:  points[len(points)/2],
		Max:     points[len(points)-1],
		Capped:  lo.CountBy(points, func(p int) bool { return p >= game.MaxPoints }),
	}
	counts := lo.CountValuesBy(points, func(p int) int { return p / bucketWidth })
	for _, b := range lo.Range(s.Max/bucketWidth + 1) {
		if counts[b] == 0 {
			continue
		}
		s.Buckets = append(s.Buckets, Bucket{From: b * bucketWidth, To: b*bucketWidth + bucketWidth - 1, Count: counts[b]})
	}
	return s
}
