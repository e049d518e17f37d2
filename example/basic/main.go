// Package main demonstrates a text and a password question.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/nao1215/inquiry"
)

func main() {
	name, err := inquiry.NewText("What is your name?").
		WithPlaceholder("first name").
		WithValidator(inquiry.Required("a name is required")).
		Prompt()
	if err != nil {
		exit(err)
	}

	password, err := inquiry.NewPassword("Choose a password:").
		WithHelpMessage("at least 8 characters").
		WithValidator(inquiry.MinLength(8, "the password is too short")).
		Prompt()
	if err != nil {
		exit(err)
	}

	fmt.Printf("Hello %s, your password has %d bytes\n", name, len(password))
}

func exit(err error) {
	if errors.Is(err, inquiry.ErrOperationCanceled) {
		fmt.Println("Canceled")
		os.Exit(1)
	}
	log.Fatal(err)
}
