package inquiry

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordPrompt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "\r",
			expected: "",
		},
		{
			name:     "single letter",
			input:    "b\r",
			expected: "b",
		},
		{
			name:     "input terminated by newline",
			input:    "normal input\n",
			expected: "normal input",
		},
		{
			name:     "non ascii input",
			input:    "ñoñó and 🗻\r",
			expected: "ñoñó and 🗻",
		},
		{
			name:     "backspace removes characters",
			input:    "anor" + strings.Repeat("\x7f", 4) + "normal input\r",
			expected: "normal input",
		},
		{
			name:     "excessive backspaces",
			input:    "ab" + strings.Repeat("\x7f", 5) + "c\r",
			expected: "c",
		},
		{
			name:     "backspace removes a whole emoji",
			input:    "👍🏽x\x7f\x7f\r",
			expected: "",
		},
		{
			name:     "arrows and tab are ignored",
			input:    "ab\x1b[D\x1b[Ac\t\r",
			expected: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, term, _ := newTestRenderer(t, tt.input)
			got, err := NewPassword("Password:").PromptWithRenderer(r)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.False(t, term.rawMode, "raw mode should be released")
		})
	}
}

func TestPasswordValidator(t *testing.T) {
	t.Parallel()

	validator := func(s string) error {
		if len(s) > 5 && len(s) < 10 {
			return nil
		}
		return errors.New("length must be between 6 and 9")
	}

	input := "1234567890\r" + strings.Repeat("\x7f", 5) + "yes\r"
	r, _, out := newTestRenderer(t, input)
	got, err := NewPassword("Password:").WithValidator(validator).PromptWithRenderer(r)
	require.NoError(t, err)
	assert.Equal(t, "12345yes", got)
	assert.Contains(t, out.String(), "# length must be between 6 and 9")
}

func TestPasswordCancel(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"secret\x03", "secret\x1b"} {
		r, term, out := newTestRenderer(t, input)
		_, err := NewPassword("Password:").PromptWithRenderer(r)
		require.ErrorIs(t, err, ErrOperationCanceled)
		assert.False(t, term.rawMode, "raw mode should be released after cancel")
		assert.Equal(t, 1, term.rawCount)
		assert.NotContains(t, out.String(), "********", "cancel must not paint a cleanup frame")
	}
}

func TestPasswordNeverEchoed(t *testing.T) {
	t.Parallel()

	t.Run("default mask", func(t *testing.T) {
		t.Parallel()

		r, _, out := newTestRenderer(t, "hunter2\r")
		got, err := NewPassword("Password:").WithHelpMessage("never shared").PromptWithRenderer(r)
		require.NoError(t, err)
		assert.Equal(t, "hunter2", got)

		assert.NotContains(t, out.String(), "hunter")
		assert.Contains(t, out.String(), "[never shared]")
		assert.Contains(t, out.String(), "? Password: ********\r\n")
	})

	t.Run("custom formatter", func(t *testing.T) {
		t.Parallel()

		r, _, out := newTestRenderer(t, "hunter2\r")
		got, err := NewPassword("Password:").
			WithFormatter(func(s string) string { return strings.Repeat("*", len(s)) }).
			PromptWithRenderer(r)
		require.NoError(t, err)
		assert.Equal(t, "hunter2", got)
		assert.Contains(t, out.String(), "? Password: *******\r\n")
		assert.NotContains(t, out.String(), "hunter")
	})
}

func TestPasswordTerminalError(t *testing.T) {
	t.Parallel()

	r, term, _ := newTestRenderer(t, "abc")
	_, err := NewPassword("Password:").PromptWithRenderer(r)

	var te *TerminalError
	require.ErrorAs(t, err, &te)
	assert.ErrorIs(t, err, io.EOF)
	assert.NotErrorIs(t, err, ErrOperationCanceled)
	assert.False(t, term.rawMode)
}
