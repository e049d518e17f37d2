// Package main demonstrates history recall in a text question.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/inquiry"
)

func main() {
	history := []string{"git status", "git log --oneline", "make test"}

	fmt.Println("Press ↑ and ↓ to recall earlier commands, Esc to quit")
	for {
		command, err := inquiry.NewText("$").
			WithHistory(history).
			Prompt()
		if err != nil {
			if errors.Is(err, inquiry.ErrOperationCanceled) {
				fmt.Println("Goodbye!")
				return
			}
			log.Fatal(err)
		}
		if command == "" {
			continue
		}
		history = append(history, command)
	}
}
