package inquiry

import "errors"

// Select asks the user to pick one option from a list.
//
// Typing filters the list, Backspace edits the filter. Up/Down (and
// Tab/Shift+Tab) move the cursor and wrap around at the ends; PageUp,
// PageDown, Home and End jump and stop at the ends. Enter picks the option
// under the cursor; with no option matching the filter it is rejected like
// a failed validation.
type Select struct {
	Message        string            // Message presented to the user
	HelpMessage    string            // Help line shown below the question; empty for none
	Options        []string          // Options to choose from, never empty
	StartingCursor int               // Option under the cursor when the prompt opens
	PageSize       int               // Options shown at once
	Formatter      OptionFormatter   // Formats the answer for the final rendering
	Validators     []OptionValidator // Applied in order at submit time
}

// DefaultSelectHelp is the help line shown when none is configured.
const DefaultSelectHelp = "↑↓ to move, enter to select, type to filter"

// NewSelect creates a Select over options. It fails with ErrEmptyOptions
// when options is empty.
func NewSelect(message string, options []string) (*Select, error) {
	if len(options) == 0 {
		return nil, ErrEmptyOptions
	}
	return &Select{
		Message:     message,
		HelpMessage: DefaultSelectHelp,
		Options:     append([]string{}, options...),
		PageSize:    DefaultPageSize,
		Formatter:   DefaultOptionFormatter,
	}, nil
}

// WithHelpMessage sets the help message of the prompt.
func (s *Select) WithHelpMessage(message string) *Select {
	s.HelpMessage = message
	return s
}

// WithStartingCursor sets the option under the cursor when the prompt opens.
func (s *Select) WithStartingCursor(index int) *Select {
	s.StartingCursor = index
	return s
}

// WithPageSize sets how many options are shown at once.
func (s *Select) WithPageSize(size int) *Select {
	s.PageSize = size
	return s
}

// WithFormatter sets the formatter.
func (s *Select) WithFormatter(formatter OptionFormatter) *Select {
	s.Formatter = formatter
	return s
}

// WithValidator adds a validator to the collection of validators.
func (s *Select) WithValidator(validator OptionValidator) *Select {
	s.Validators = append(s.Validators, validator)
	return s
}

// WithValidators adds the validators to the collection of validators.
func (s *Select) WithValidators(validators ...OptionValidator) *Select {
	s.Validators = append(s.Validators, validators...)
	return s
}

// Prompt asks the question on the process terminal.
func (s *Select) Prompt() (ListOption, error) {
	answer, err := Ask(s)
	if err != nil {
		return ListOption{}, err
	}
	return ListOption(answer.(OptionAnswer)), nil
}

// PromptWithRenderer asks the question on r.
func (s *Select) PromptWithRenderer(r *Renderer) (ListOption, error) {
	st, err := s.newState()
	if err != nil {
		return ListOption{}, err
	}
	return run[ListOption](r, st)
}

// AskWithRenderer implements Question.
func (s *Select) AskWithRenderer(r *Renderer) (Answer, error) {
	o, err := s.PromptWithRenderer(r)
	if err != nil {
		return nil, err
	}
	return OptionAnswer(o), nil
}

func (s *Select) newState() (*selectState, error) {
	if len(s.Options) == 0 {
		return nil, ErrEmptyOptions
	}
	if s.StartingCursor < 0 || s.StartingCursor >= len(s.Options) {
		return nil, ErrInvalidDefault
	}
	formatter := s.Formatter
	if formatter == nil {
		formatter = DefaultOptionFormatter
	}
	return &selectState{
		promptState: promptState{message: s.Message, help: s.HelpMessage},
		list:        newListView(s.Options, s.PageSize, s.StartingCursor),
		formatter:   formatter,
		validators:  s.Validators,
	}, nil
}

type selectState struct {
	promptState
	list       *listView
	formatter  OptionFormatter
	validators []OptionValidator
}

func (s *selectState) onKey(k Key) {
	if s.list.navigate(k) {
		return
	}
	s.list.editFilter(k)
}

// errNoSelection keeps the loop running when Enter is pressed while the
// filter hides every option.
var errNoSelection = errors.New(noMatchingOptions)

func (s *selectState) submit() (ListOption, error) {
	idx, ok := s.list.current()
	if !ok {
		return ListOption{}, errNoSelection
	}
	option := ListOption{Index: idx, Value: s.list.options[idx]}
	if err := validateOption(s.validators, option); err != nil {
		return ListOption{}, err
	}
	return option, nil
}

func (s *selectState) final(value ListOption) (string, string) {
	return s.message, s.formatter(value)
}

func (s *selectState) render(r *Renderer) error {
	if err := s.beginFrame(r); err != nil {
		return err
	}
	if err := s.list.renderPrompt(r, s.message); err != nil {
		return err
	}

	if len(s.list.visible) == 0 {
		if err := r.PrintOption(false, noMatchingOptions); err != nil {
			return err
		}
	}
	start, end := s.list.window()
	for i := start; i < end; i++ {
		if err := r.PrintOption(i == s.list.cursor, s.list.options[s.list.visible[i]]); err != nil {
			return err
		}
	}

	return s.endFrame(r)
}
