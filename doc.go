// Package inquiry asks interactive questions on the terminal.
//
// Five kinds of question are provided: Password (masked text), Text (free
// text with optional suggestions and history), Confirm (yes/no), Select (one
// option from a list) and MultiSelect (any number of options). Each is built
// with a constructor followed by chained With* options and asked with
// Prompt.
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//		"github.com/nao1215/inquiry"
//	)
//
//	func main() {
//		name, err := inquiry.NewText("What is your name?").
//			WithDefault("gopher").
//			Prompt()
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("Hello, %s\n", name)
//	}
//
// Validation and Formatting:
//
// Validators run when Enter is pressed. A rejected answer keeps the question
// open and shows the validator's message above it; the caller only ever sees
// an accepted answer. Formatters decide how the accepted answer is painted
// once the question is closed, and never change the returned value:
//
//	password, err := inquiry.NewPassword("Password:").
//		WithValidator(inquiry.MinLength(8, "at least 8 characters")).
//		Prompt()
//
// Lists:
//
//	sel, err := inquiry.NewSelect("Region:", []string{"us-east-1", "eu-west-1"})
//	if err != nil {
//		log.Fatal(err) // ErrEmptyOptions
//	}
//	option, err := sel.WithStartingCursor(1).Prompt()
//	fmt.Println(option.Index, option.Value)
//
// Typing in a list question filters the options. Up and Down wrap around at
// the ends of the list.
//
// Key Bindings:
//
//   - Enter: Submit
//   - Esc / Ctrl+C: Cancel and return ErrOperationCanceled
//   - Backspace: Delete character backwards
//   - Left/Right, Home/End, Ctrl+A/Ctrl+E: Move the cursor (Text)
//   - Ctrl+U, Ctrl+K, Ctrl+W: Delete line, to the end, word backwards (Text)
//   - Up/Down, PageUp/PageDown: Move in lists, suggestions or history
//   - Tab: Complete the suggestion (Text), move down (lists)
//   - Space: Toggle an option; Right/Left select all/none (MultiSelect)
//
// Bindings are configured with a KeyMap passed through WithKeyMap.
//
// Several Questions:
//
// AskAll asks questions one after another on one terminal session and
// leaves every answered question on screen:
//
//	answers, err := inquiry.AskAll([]inquiry.Question{
//		inquiry.NewText("Name:"),
//		inquiry.NewConfirm("Subscribe?").WithDefault(true),
//	})
//
// Error Handling:
//
//   - ErrOperationCanceled: the user pressed Esc or Ctrl+C
//   - ErrEmptyOptions, ErrInvalidDefault: a list question was misconfigured
//   - ErrInvalidToken: a Confirm token is not a single character
//   - *TerminalError: the terminal could not be put in raw mode, read or
//     written; unwraps to the underlying error
//
// Terminal State:
//
// The terminal is in raw mode only while a question is being asked and is
// restored on every return path, including errors and cancellation. Prompts
// draw on stderr and only ever erase the rows they painted themselves.
//
// Testing:
//
// PromptWithRenderer runs a question on a caller supplied Renderer. Combined
// with NewScriptedTerminal it runs without a terminal:
//
//	var out bytes.Buffer
//	r := inquiry.NewRenderer(inquiry.NewScriptedTerminal("y\r"),
//		inquiry.WithOutput(&out), inquiry.WithColorScheme(inquiry.ThemeMonochrome))
//	ok, err := inquiry.NewConfirm("Continue?").PromptWithRenderer(r)
//
// Thread Safety:
//
// Questions and renderers are not thread-safe. Each question should be asked
// from a single goroutine.
package inquiry
