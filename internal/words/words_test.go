package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"english", "german"}, c.Names())

	en, ok := c.Get("english")
	require.True(t, ok)
	assert.True(t, en.IsIsogram("trading"))
	assert.False(t, en.Contains("# default english word list. one word per line, lowercase."))

	de, ok := c.Get("german")
	require.True(t, ok)
	assert.True(t, de.IsIsogram("kämpfer"))
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("small.txt", "  Trading\n\n# comment\nGRAND\ngrin\n")
	write("short.txt", "cat\ndog\n")
	write("notes.md", "pointed\n")

	c, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"small"}, c.Names(), "lists without isograms are skipped")

	wl, _ := c.Get("small")
	assert.Equal(t, []string{"grand", "grin", "trading"}, wl.Words())

	assert.Equal(t, []Stat{{Name: "small", Words: 3, Isograms: 1}}, c.Stats())
}

func TestLoadDirWithoutUsableLists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "short.txt"), []byte("cat\n"), 0o644))

	_, err := LoadDir(dir)
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = LoadDir(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	name, wl := c.Default("german")
	assert.Equal(t, "german", name)
	assert.NotNil(t, wl)

	name, _ = c.Default("klingon")
	assert.Equal(t, "english", name)
}
