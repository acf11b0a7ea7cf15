package article

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadArticle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "article.txt", "Some article text.")

	got, err := LoadArticle(filepath.Join(dir, "article.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Some article text.", got)
}

func TestLoadArticleMissing(t *testing.T) {
	_, err := LoadArticle(filepath.Join(t.TempDir(), "article.txt"))
	require.Error(t, err)
}

func TestLoadSourcesSortedByName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "source2.txt", "second")
	writeFile(t, dir, "source1.txt", "first")
	writeFile(t, dir, "source10.txt", "tenth")
	writeFile(t, dir, "notes.txt", "ignored")

	sources, err := LoadSources(dir)
	require.NoError(t, err)

	require.Len(t, sources, 3)
	assert.Equal(t, Source{Name: "source1.txt", Text: "first"}, sources[0])
	assert.Equal(t, Source{Name: "source10.txt", Text: "tenth"}, sources[1])
	assert.Equal(t, Source{Name: "source2.txt", Text: "second"}, sources[2])
}

func TestLoadSourcesNoneFound(t *testing.T) {
	_, err := LoadSources(t.TempDir())
	require.ErrorIs(t, err, ErrNoSources)
}
