package article

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrNoSources indicates no file matched the source*.txt glob.
var ErrNoSources = errors.New("no source files found matching pattern 'source*.txt'")

type Source struct {
	Name string
	Text string
}

func LoadArticle(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read article file: %w", err)
	}

	return string(data), nil
}

// LoadSources reads every source*.txt in dir, keyed by filename, in sorted
// name order.
func LoadSources(dir string) ([]Source, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "source*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob source files: %w", err)
	}

	sort.Strings(matches)

	var sources []Source
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read source file %s: %w", path, err)
		}

		sources = append(sources, Source{
			Name: filepath.Base(path),
			Text: string(data),
		})
	}

	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	return sources, nil
}
