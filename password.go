package inquiry

// Password presents a message and reads a single line of text without
// echoing it.
//
// Password differs from Text by never painting the typed content, neither
// while typing nor after submission, and by supporting fewer editing keys:
// characters are appended and Backspace removes the last character.
//
// By default the submitted answer is painted as "********".
type Password struct {
	Message     string            // Message presented to the user
	HelpMessage string            // Help line shown below the question; empty for none
	Formatter   StringFormatter   // Formats the answer for the final rendering
	Validators  []StringValidator // Applied in order at submit time
}

// DefaultPasswordFormatter paints a fixed mask regardless of the content.
func DefaultPasswordFormatter(string) string {
	return "********"
}

// NewPassword creates a Password with the given message and default options.
func NewPassword(message string) *Password {
	return &Password{
		Message:   message,
		Formatter: DefaultPasswordFormatter,
	}
}

// WithHelpMessage sets the help message of the prompt.
func (p *Password) WithHelpMessage(message string) *Password {
	p.HelpMessage = message
	return p
}

// WithFormatter sets the formatter.
func (p *Password) WithFormatter(formatter StringFormatter) *Password {
	p.Formatter = formatter
	return p
}

// WithValidator adds a validator to the collection of validators.
func (p *Password) WithValidator(validator StringValidator) *Password {
	p.Validators = append(p.Validators, validator)
	return p
}

// WithValidators adds the validators to the collection of validators.
func (p *Password) WithValidators(validators ...StringValidator) *Password {
	p.Validators = append(p.Validators, validators...)
	return p
}

// Prompt asks the question on the process terminal and returns the raw
// typed content.
func (p *Password) Prompt() (string, error) {
	answer, err := Ask(p)
	if err != nil {
		return "", err
	}
	return string(answer.(TextAnswer)), nil
}

// PromptWithRenderer asks the question on r.
func (p *Password) PromptWithRenderer(r *Renderer) (string, error) {
	return run[string](r, p.newState())
}

// AskWithRenderer implements Question.
func (p *Password) AskWithRenderer(r *Renderer) (Answer, error) {
	s, err := p.PromptWithRenderer(r)
	if err != nil {
		return nil, err
	}
	return TextAnswer(s), nil
}

func (p *Password) newState() *passwordState {
	formatter := p.Formatter
	if formatter == nil {
		formatter = DefaultPasswordFormatter
	}
	return &passwordState{
		promptState: promptState{message: p.Message, help: p.HelpMessage},
		content:     newLineBuffer(""),
		formatter:   formatter,
		validators:  p.Validators,
	}
}

type passwordState struct {
	promptState
	content    *lineBuffer
	formatter  StringFormatter
	validators []StringValidator
}

func (s *passwordState) onKey(k Key) {
	switch {
	case k.Code == KeyBackspace:
		s.content.backspace()
	case k.Code == KeyChar && k.Modifiers == ModNone:
		s.content.insert(k.Rune)
	}
}

func (s *passwordState) submit() (string, error) {
	if err := validateString(s.validators, s.content.String()); err != nil {
		return "", err
	}
	return s.content.String(), nil
}

func (s *passwordState) final(value string) (string, string) {
	return s.message, s.formatter(value)
}

func (s *passwordState) render(r *Renderer) error {
	if err := s.beginFrame(r); err != nil {
		return err
	}
	if err := r.PrintPrompt(s.message, "", ""); err != nil {
		return err
	}
	return s.endFrame(r)
}
