package inquiry

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggestion is one autocompletion candidate of a Text prompt.
type Suggestion struct {
	Text        string // The text that replaces the input when accepted
	Description string // Optional description painted next to the text
}

// Suggester returns the completions for the current input of a Text prompt.
type Suggester func(input string) []Suggestion

// NewFuzzySuggester creates a suggester matching the input against the
// candidates with fuzzy matching, best matches first.
//
// An empty input suggests every candidate in the given order.
//
// Example:
//
//	suggester := inquiry.NewFuzzySuggester([]string{
//		"git status", "git commit", "docker run", "kubectl get",
//	})
//	text := inquiry.NewText("Command:").WithSuggester(suggester)
func NewFuzzySuggester(candidates []string) Suggester {
	return func(input string) []Suggestion {
		if input == "" {
			suggestions := make([]Suggestion, len(candidates))
			for i, c := range candidates {
				suggestions[i] = Suggestion{Text: c}
			}
			return suggestions
		}

		matches := fuzzy.Find(input, candidates)
		suggestions := make([]Suggestion, len(matches))
		for i, m := range matches {
			suggestions[i] = Suggestion{Text: m.Str}
		}
		return suggestions
	}
}

// NewFileSuggester creates a suggester that completes file and directory
// paths. Directories are suggested with a trailing separator; hidden entries
// are only suggested once the typed name starts with a dot.
func NewFileSuggester() Suggester {
	return completeFilePath
}

func completeFilePath(path string) []Suggestion {
	// Handle empty path - start from current directory
	if path == "" {
		path = "."
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)

	// If path ends with separator, we're completing in that directory
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		dir = path
		base = ""
	}
	if path == "." {
		base = ""
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	suggestions := make([]Suggestion, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()

		// Skip hidden files unless explicitly requested
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if base != "" && !strings.HasPrefix(name, base) {
			continue
		}

		fullPath := filepath.Join(dir, name)
		if dir == "." && !strings.HasPrefix(path, "./") {
			fullPath = name
		}

		description := "file"
		if entry.IsDir() {
			fullPath += string(filepath.Separator)
			description = "directory"
		}

		suggestions = append(suggestions, Suggestion{
			Text:        fullPath,
			Description: description,
		})
	}

	return suggestions
}

// filterOptions returns the indices of the options matching filter, in list
// order. An empty filter matches everything.
func filterOptions(options []string, filter string) []int {
	if filter == "" {
		all := make([]int, len(options))
		for i := range options {
			all[i] = i
		}
		return all
	}

	matches := fuzzy.Find(filter, options)
	matched := make([]bool, len(options))
	for _, m := range matches {
		matched[m.Index] = true
	}
	indices := make([]int, 0, len(matches))
	for i, ok := range matched {
		if ok {
			indices = append(indices, i)
		}
	}
	return indices
}
