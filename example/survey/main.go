// Package main asks a sequence of questions on a single terminal session.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nao1215/inquiry"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if os.Getenv("INQUIRY_DEBUG") != "" {
		logger.SetLevel(logrus.DebugLevel)
	}

	editor, err := inquiry.NewSelect("Editor:", []string{"vim", "emacs", "nano", "helix"})
	if err != nil {
		logger.Fatal(err)
	}
	toppings, err := inquiry.NewMultiSelect("Pizza toppings:", []string{"cheese", "tomato", "basil", "olives", "mushrooms"})
	if err != nil {
		logger.Fatal(err)
	}

	answers, err := inquiry.AskAll([]inquiry.Question{
		inquiry.NewText("Project name:").WithDefault("demo"),
		inquiry.NewPassword("API token:"),
		inquiry.NewConfirm("Enable telemetry?").WithDefault(false),
		editor.WithStartingCursor(0),
		toppings.WithKeepFilter(false),
	}, inquiry.WithLogger(logger), inquiry.WithColorScheme(inquiry.ThemeAccessible))
	if err != nil {
		if errors.Is(err, inquiry.ErrOperationCanceled) {
			fmt.Printf("Canceled after %d answers\n", len(answers))
			os.Exit(1)
		}
		logger.WithError(err).Fatal("survey failed")
	}

	for i, a := range answers {
		switch v := a.(type) {
		case inquiry.TextAnswer:
			if i == 1 {
				fmt.Printf("%d: token of %d bytes\n", i, len(v))
				continue
			}
			fmt.Printf("%d: %s\n", i, string(v))
		case inquiry.ConfirmAnswer:
			fmt.Printf("%d: %t\n", i, bool(v))
		case inquiry.OptionAnswer:
			fmt.Printf("%d: %s\n", i, v.Value)
		case inquiry.OptionsAnswer:
			fmt.Printf("%d: %d selected\n", i, len(v))
		}
	}
}
