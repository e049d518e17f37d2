package inquiry

import (
	"errors"
	"strings"

	"github.com/rivo/uniseg"
)

// StringValidator checks text content at submit time. A non-nil error
// rejects the content; its message is shown to the user verbatim and the
// prompt keeps running.
type StringValidator func(input string) error

// BoolValidator checks a Confirm answer at submit time.
type BoolValidator func(answer bool) error

// OptionValidator checks the option picked in a Select at submit time.
type OptionValidator func(option ListOption) error

// MultiOptionValidator checks the selected options of a MultiSelect at
// submit time.
type MultiOptionValidator func(selected []ListOption) error

// StringFormatter turns the submitted text into what is painted after
// submission. It never changes the value returned to the caller.
type StringFormatter func(input string) string

// BoolFormatter formats a Confirm answer.
type BoolFormatter func(answer bool) string

// OptionFormatter formats a Select answer.
type OptionFormatter func(option ListOption) string

// MultiOptionFormatter formats a MultiSelect answer.
type MultiOptionFormatter func(options []ListOption) string

// DefaultStringFormatter paints the text as typed.
func DefaultStringFormatter(input string) string {
	return input
}

// DefaultBoolFormatter paints "Yes" or "No".
func DefaultBoolFormatter(answer bool) string {
	if answer {
		return "Yes"
	}
	return "No"
}

// DefaultOptionFormatter paints the option value.
func DefaultOptionFormatter(option ListOption) string {
	return option.Value
}

// DefaultMultiOptionFormatter paints the option values separated by ", ".
func DefaultMultiOptionFormatter(options []ListOption) string {
	values := make([]string, len(options))
	for i, o := range options {
		values[i] = o.Value
	}
	return strings.Join(values, ", ")
}

// Required rejects empty content.
func Required(message string) StringValidator {
	return func(input string) error {
		if input == "" {
			return errors.New(message)
		}
		return nil
	}
}

// MinLength rejects content shorter than n characters. Characters are
// counted as grapheme clusters.
func MinLength(n int, message string) StringValidator {
	return func(input string) error {
		if uniseg.GraphemeClusterCount(input) < n {
			return errors.New(message)
		}
		return nil
	}
}

// MaxLength rejects content longer than n characters. Characters are
// counted as grapheme clusters.
func MaxLength(n int, message string) StringValidator {
	return func(input string) error {
		if uniseg.GraphemeClusterCount(input) > n {
			return errors.New(message)
		}
		return nil
	}
}

// MinSelections rejects fewer than n selected options.
func MinSelections(n int, message string) MultiOptionValidator {
	return func(selected []ListOption) error {
		if len(selected) < n {
			return errors.New(message)
		}
		return nil
	}
}

// MaxSelections rejects more than n selected options.
func MaxSelections(n int, message string) MultiOptionValidator {
	return func(selected []ListOption) error {
		if len(selected) > n {
			return errors.New(message)
		}
		return nil
	}
}

// validateString runs validators in order and returns the first rejection.
func validateString(validators []StringValidator, input string) error {
	for _, v := range validators {
		if err := v(input); err != nil {
			return err
		}
	}
	return nil
}

func validateOptions(validators []MultiOptionValidator, selected []ListOption) error {
	for _, v := range validators {
		if err := v(selected); err != nil {
			return err
		}
	}
	return nil
}

func validateBool(validators []BoolValidator, answer bool) error {
	for _, v := range validators {
		if err := v(answer); err != nil {
			return err
		}
	}
	return nil
}

func validateOption(validators []OptionValidator, option ListOption) error {
	for _, v := range validators {
		if err := v(option); err != nil {
			return err
		}
	}
	return nil
}
