package inquiry

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Confirm asks a yes/no question.
//
// Pressing the yes or no token sets the answer, Backspace clears it again.
// Tokens match without regard to case, so "Y" and "y" both answer yes.
// Submitting with no answer set falls back to the default, if one is
// configured, and is rejected otherwise. Validators see the resolved
// answer, default included.
type Confirm struct {
	Message     string          // Message presented to the user
	HelpMessage string          // Help line shown below the question; empty for none
	Default     *bool           // Answer used when nothing was typed; nil for none
	YesToken    string          // Character answering yes, "y" by default
	NoToken     string          // Character answering no, "n" by default
	Formatter   BoolFormatter   // Formats the answer for the final rendering
	Validators  []BoolValidator // Applied in order at submit time
}

// NewConfirm creates a Confirm with the given message and default options.
func NewConfirm(message string) *Confirm {
	return &Confirm{
		Message:   message,
		YesToken:  "y",
		NoToken:   "n",
		Formatter: DefaultBoolFormatter,
	}
}

// WithHelpMessage sets the help message of the prompt.
func (c *Confirm) WithHelpMessage(message string) *Confirm {
	c.HelpMessage = message
	return c
}

// WithDefault sets the answer used when the user submits without typing.
func (c *Confirm) WithDefault(value bool) *Confirm {
	c.Default = &value
	return c
}

// WithTokens sets the keys answering yes and no. Each token is typed with a
// single key press, so it must be exactly one rune, and the two must differ
// without regard to case; otherwise the prompt fails with ErrInvalidToken.
func (c *Confirm) WithTokens(yes, no string) *Confirm {
	c.YesToken = yes
	c.NoToken = no
	return c
}

// WithFormatter sets the formatter.
func (c *Confirm) WithFormatter(formatter BoolFormatter) *Confirm {
	c.Formatter = formatter
	return c
}

// WithValidator adds a validator to the collection of validators.
func (c *Confirm) WithValidator(validator BoolValidator) *Confirm {
	c.Validators = append(c.Validators, validator)
	return c
}

// WithValidators adds the validators to the collection of validators.
func (c *Confirm) WithValidators(validators ...BoolValidator) *Confirm {
	c.Validators = append(c.Validators, validators...)
	return c
}

// Prompt asks the question on the process terminal.
func (c *Confirm) Prompt() (bool, error) {
	answer, err := Ask(c)
	if err != nil {
		return false, err
	}
	return bool(answer.(ConfirmAnswer)), nil
}

// PromptWithRenderer asks the question on r.
func (c *Confirm) PromptWithRenderer(r *Renderer) (bool, error) {
	st, err := c.newState()
	if err != nil {
		return false, err
	}
	return run[bool](r, st)
}

// AskWithRenderer implements Question.
func (c *Confirm) AskWithRenderer(r *Renderer) (Answer, error) {
	b, err := c.PromptWithRenderer(r)
	if err != nil {
		return nil, err
	}
	return ConfirmAnswer(b), nil
}

func (c *Confirm) newState() (*confirmState, error) {
	yes, no := c.YesToken, c.NoToken
	if yes == "" {
		yes = "y"
	}
	if no == "" {
		no = "n"
	}
	fold := cases.Fold()
	if utf8.RuneCountInString(yes) != 1 || utf8.RuneCountInString(no) != 1 ||
		fold.String(yes) == fold.String(no) {
		return nil, ErrInvalidToken
	}
	formatter := c.Formatter
	if formatter == nil {
		formatter = DefaultBoolFormatter
	}
	return &confirmState{
		promptState:  promptState{message: c.Message, help: c.HelpMessage},
		defaultValue: c.Default,
		yes:          yes,
		no:           no,
		yesFolded:    fold.String(yes),
		noFolded:     fold.String(no),
		fold:         fold,
		formatter:    formatter,
		validators:   c.Validators,
	}, nil
}

type confirmState struct {
	promptState
	answer       *bool // nil until a token is pressed
	defaultValue *bool
	yes, no      string
	yesFolded    string
	noFolded     string
	fold         cases.Caser
	formatter    BoolFormatter
	validators   []BoolValidator
}

func (s *confirmState) onKey(k Key) {
	switch {
	case k.Code == KeyBackspace:
		s.answer = nil
	case k.Code == KeyChar && k.Modifiers&^ModShift == ModNone:
		switch s.fold.String(string(k.Rune)) {
		case s.yesFolded:
			v := true
			s.answer = &v
		case s.noFolded:
			v := false
			s.answer = &v
		}
	}
}

func (s *confirmState) submit() (bool, error) {
	answer := s.answer
	if answer == nil {
		answer = s.defaultValue
	}
	if answer == nil {
		return false, fmt.Errorf("please answer %s or %s", s.yes, s.no)
	}
	if err := validateBool(s.validators, *answer); err != nil {
		return false, err
	}
	return *answer, nil
}

func (s *confirmState) final(value bool) (string, string) {
	return s.message, s.formatter(value)
}

// hint returns "Y/n", "y/N" or "y/n" depending on the default.
func (s *confirmState) hint() string {
	upper := cases.Upper(language.Und)
	switch {
	case s.defaultValue == nil:
		return s.yes + "/" + s.no
	case *s.defaultValue:
		return upper.String(s.yes) + "/" + s.no
	default:
		return s.yes + "/" + upper.String(s.no)
	}
}

func (s *confirmState) render(r *Renderer) error {
	if err := s.beginFrame(r); err != nil {
		return err
	}
	preview := ""
	if s.answer != nil {
		preview = s.no
		if *s.answer {
			preview = s.yes
		}
	}
	if err := r.PrintPrompt(s.message, s.hint(), preview); err != nil {
		return err
	}
	return s.endFrame(r)
}
