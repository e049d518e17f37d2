// Package main demonstrates autocompletion in a text question.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/inquiry"
)

// commandSuggester suggests commands while the first word is typed and
// file paths for the argument of "open".
func commandSuggester(input string) []inquiry.Suggestion {
	commands := []inquiry.Suggestion{
		{Text: "help", Description: "Show help information"},
		{Text: "list", Description: "List all items"},
		{Text: "create", Description: "Create a new item"},
		{Text: "delete", Description: "Delete an existing item"},
		{Text: "open", Description: "Open a file"},
	}

	if rest, ok := strings.CutPrefix(input, "open "); ok {
		files := inquiry.NewFileSuggester()(rest)
		for i := range files {
			files[i].Text = "open " + files[i].Text
		}
		return files
	}

	var suggestions []inquiry.Suggestion
	for _, cmd := range commands {
		if strings.HasPrefix(cmd.Text, strings.ToLower(input)) {
			suggestions = append(suggestions, cmd)
		}
	}
	return suggestions
}

func main() {
	command, err := inquiry.NewText("Command:").
		WithSuggester(commandSuggester).
		WithHelpMessage("tab to complete, ↑↓ to choose").
		Prompt()
	if err != nil {
		if errors.Is(err, inquiry.ErrOperationCanceled) {
			fmt.Println("Canceled")
			return
		}
		log.Fatal(err)
	}

	language, err := inquiry.NewText("Favorite language:").
		WithSuggester(inquiry.NewFuzzySuggester([]string{"Go", "Rust", "Python", "TypeScript", "Haskell"})).
		WithDefault("Go").
		Prompt()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Running %q in %s\n", command, language)
}
