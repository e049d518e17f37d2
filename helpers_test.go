package inquiry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suggestionTexts(suggestions []Suggestion) []string {
	texts := make([]string, len(suggestions))
	for i, s := range suggestions {
		texts[i] = s.Text
	}
	return texts
}

func TestNewFuzzySuggester(t *testing.T) {
	t.Parallel()

	suggester := NewFuzzySuggester([]string{"git status", "git commit", "docker run", "kubectl get"})

	t.Run("empty input suggests everything in order", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			[]string{"git status", "git commit", "docker run", "kubectl get"},
			suggestionTexts(suggester("")))
	})

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()
		texts := suggestionTexts(suggester("git"))
		assert.ElementsMatch(t, []string{"git status", "git commit"}, texts)
	})

	t.Run("fuzzy", func(t *testing.T) {
		t.Parallel()
		texts := suggestionTexts(suggester("dkr"))
		assert.Equal(t, []string{"docker run"}, texts)
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, suggester("zzz"))
	})
}

func TestNewFileSuggester(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alpha.txt"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "another.md"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "beta"), 0o700))

	suggester := NewFileSuggester()
	sep := string(filepath.Separator)

	t.Run("directory listing", func(t *testing.T) {
		t.Parallel()

		suggestions := suggester(dir + sep)
		assert.ElementsMatch(t, []Suggestion{
			{Text: filepath.Join(dir, "alpha.txt"), Description: "file"},
			{Text: filepath.Join(dir, "another.md"), Description: "file"},
			{Text: filepath.Join(dir, "beta") + sep, Description: "directory"},
		}, suggestions)
	})

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()

		texts := suggestionTexts(suggester(filepath.Join(dir, "al")))
		assert.Equal(t, []string{filepath.Join(dir, "alpha.txt")}, texts)
	})

	t.Run("hidden entries on request", func(t *testing.T) {
		t.Parallel()

		texts := suggestionTexts(suggester(filepath.Join(dir, ".h")))
		assert.Equal(t, []string{filepath.Join(dir, ".hidden")}, texts)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, suggester(filepath.Join(dir, "missing", "x")))
	})
}

func TestFilterOptions(t *testing.T) {
	t.Parallel()

	options := []string{"red", "green", "blue"}
	tests := []struct {
		filter string
		want   []int
	}{
		{filter: "", want: []int{0, 1, 2}},
		{filter: "e", want: []int{0, 1, 2}},
		{filter: "bl", want: []int{2}},
		{filter: "rd", want: []int{0}},
		{filter: "zz", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, filterOptions(options, tt.filter))
		})
	}
}
