// Package assets embeds the default word lists and the SQL migrations.
package assets

import (
	"bufio"
	"embed"
	"io"
	"io/fs"
	"path"
	"strings"
)

//go:embed wordlists/*.txt sql/*.sql
var FS embed.FS

// ReadLines returns the non-empty, non-comment lines of r, trimmed and lowercased.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// Wordlists returns the embedded word lists keyed by file stem.
func Wordlists() (map[string][]string, error) {
	entries, err := fs.ReadDir(FS, "wordlists")
	if err != nil {
		return nil, err
	}
	out := make(map[string][]string, len(entries))
	for _, e := range entries {
		words, err := readLines(path.Join("wordlists", e.Name()))
		if err != nil {
			return nil, err
		}
		out[strings.TrimSuffix(e.Name(), path.Ext(e.Name()))] = words
	}
	return out, nil
}

// Migrations exposes the embedded *.sql files at the root of the returned FS.
func Migrations() fs.FS {
	sub, err := fs.Sub(FS, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}
