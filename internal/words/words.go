// internal/words/words.go
//
// Word list ingestion for the puzzle engine.
//
// Responsibilities:
//   - Load every "<name>.txt" file of a directory as a named word list
//     (the file stem is the name), or fall back to the embedded defaults.
//   - Normalize words: trimmed, lowercased, blank lines and '#' comments dropped.
//   - Build a game.Wordlist per file; lists without isograms are skipped
//     with a warning instead of failing the whole catalog.
//
// Constraints:
//   • A catalog holds at least one usable word list.
//   • Catalogs are read-only after loading and safe to share.

package words

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/jonkhler/lexigon/assets"
	"github.com/jonkhler/lexigon/internal/game"
)

// ErrEmptyCatalog is returned when no word list could seed a puzzle.
var ErrEmptyCatalog = errors.New("words: no usable word lists")

// Catalog is a set of named word lists.
type Catalog struct {
	lists map[string]*game.Wordlist
}

// Load reads word lists from dir, or the embedded defaults when dir is empty.
func Load(dir string) (*Catalog, error) {
	if dir == "" {
		return LoadEmbedded()
	}
	return LoadDir(dir)
}

// LoadEmbedded builds a catalog from the word lists compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	raw, err := assets.Wordlists()
	if err != nil {
		return nil, fmt.Errorf("read embedded word lists: %w", err)
	}
	return FromWords(raw)
}

// LoadDir builds a catalog from the *.txt files in dir.
func LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read word list dir %s: %w", dir, err)
	}
	raw := make(map[string][]string)
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			continue
		}
		list, err := readWordFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		raw[strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))] = list
	}
	return FromWords(raw)
}

// FromWords builds a catalog from already normalized word sets.
func FromWords(raw map[string][]string) (*Catalog, error) {
	c := &Catalog{lists: make(map[string]*game.Wordlist, len(raw))}
	for name, list := range raw {
		wl, err := game.NewWordlist(list)
		if errors.Is(err, game.ErrConfiguration) {
			log.Warn().Err(err).Str("wordlist", name).Msg("skipping word list")
			continue
		}
		if err != nil {
			return nil, err
		}
		log.Info().Str("wordlist", name).Stringer("stats", wl).Msg("loaded word list")
		c.lists[name] = wl
	}
	if len(c.lists) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out, err := assets.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// Names returns the word list names, sorted.
func (c *Catalog) Names() []string {
	names := lo.Keys(c.lists)
	slices.Sort(names)
	return names
}

// Get looks up a word list by name.
func (c *Catalog) Get(name string) (*game.Wordlist, bool) {
	wl, ok := c.lists[name]
	return wl, ok
}

// Default returns preferred if present, otherwise the first name in order.
func (c *Catalog) Default(preferred string) (string, *game.Wordlist) {
	if wl, ok := c.lists[preferred]; ok {
		return preferred, wl
	}
	name := c.Names()[0]
	return name, c.lists[name]
}

// Stat summarizes one word list.
type Stat struct {
	Name     string `json:"name"`
	Words    int    `json:"words"`
	Isograms int    `json:"isograms"`
}

// Stats returns word and isogram counts per list, sorted by name.
func (c *Catalog) Stats() []Stat {
	return lo.Map(c.Names(), func(name string, _ int) Stat {
		wl := c.lists[name]
		return Stat{Name: name, Words: wl.Len(), Isograms: len(wl.Isograms())}
	})
}
