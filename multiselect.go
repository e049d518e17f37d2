package inquiry

// MultiSelect asks the user to pick any number of options from a list.
//
// Space toggles the option under the cursor, Right selects every option
// matching the filter and Left deselects them. Typing filters the list.
// Navigation works as in Select and never changes the selection. Enter runs
// the validators against the selection; the answer lists the selected
// options in list order.
type MultiSelect struct {
	Message        string                 // Message presented to the user
	HelpMessage    string                 // Help line shown below the question; empty for none
	Options        []string               // Options to choose from, never empty
	Default        []int                  // Indices selected when the prompt opens
	StartingCursor int                    // Option under the cursor when the prompt opens
	PageSize       int                    // Options shown at once
	KeepFilter     bool                   // Keep the filter after toggling an option
	Formatter      MultiOptionFormatter   // Formats the answer for the final rendering
	Validators     []MultiOptionValidator // Applied in order at submit time
}

// DefaultMultiSelectHelp is the help line shown when none is configured.
const DefaultMultiSelectHelp = "↑↓ to move, space to select one, → to all, ← to none, type to filter"

// NewMultiSelect creates a MultiSelect over options. It fails with
// ErrEmptyOptions when options is empty.
func NewMultiSelect(message string, options []string) (*MultiSelect, error) {
	if len(options) == 0 {
		return nil, ErrEmptyOptions
	}
	return &MultiSelect{
		Message:     message,
		HelpMessage: DefaultMultiSelectHelp,
		Options:     append([]string{}, options...),
		PageSize:    DefaultPageSize,
		KeepFilter:  true,
		Formatter:   DefaultMultiOptionFormatter,
	}, nil
}

// WithHelpMessage sets the help message of the prompt.
func (m *MultiSelect) WithHelpMessage(message string) *MultiSelect {
	m.HelpMessage = message
	return m
}

// WithDefault sets the indices selected when the prompt opens.
func (m *MultiSelect) WithDefault(indices ...int) *MultiSelect {
	m.Default = append([]int{}, indices...)
	return m
}

// WithStartingCursor sets the option under the cursor when the prompt opens.
func (m *MultiSelect) WithStartingCursor(index int) *MultiSelect {
	m.StartingCursor = index
	return m
}

// WithPageSize sets how many options are shown at once.
func (m *MultiSelect) WithPageSize(size int) *MultiSelect {
	m.PageSize = size
	return m
}

// WithKeepFilter sets whether the filter survives toggling an option.
func (m *MultiSelect) WithKeepFilter(keep bool) *MultiSelect {
	m.KeepFilter = keep
	return m
}

// WithFormatter sets the formatter.
func (m *MultiSelect) WithFormatter(formatter MultiOptionFormatter) *MultiSelect {
	m.Formatter = formatter
	return m
}

// WithValidator adds a validator to the collection of validators.
func (m *MultiSelect) WithValidator(validator MultiOptionValidator) *MultiSelect {
	m.Validators = append(m.Validators, validator)
	return m
}

// WithValidators adds the validators to the collection of validators.
func (m *MultiSelect) WithValidators(validators ...MultiOptionValidator) *MultiSelect {
	m.Validators = append(m.Validators, validators...)
	return m
}

// Prompt asks the question on the process terminal.
func (m *MultiSelect) Prompt() ([]ListOption, error) {
	answer, err := Ask(m)
	if err != nil {
		return nil, err
	}
	return []ListOption(answer.(OptionsAnswer)), nil
}

// PromptWithRenderer asks the question on r.
func (m *MultiSelect) PromptWithRenderer(r *Renderer) ([]ListOption, error) {
	st, err := m.newState()
	if err != nil {
		return nil, err
	}
	return run[[]ListOption](r, st)
}

// AskWithRenderer implements Question.
func (m *MultiSelect) AskWithRenderer(r *Renderer) (Answer, error) {
	o, err := m.PromptWithRenderer(r)
	if err != nil {
		return nil, err
	}
	return OptionsAnswer(o), nil
}

func (m *MultiSelect) newState() (*multiSelectState, error) {
	if len(m.Options) == 0 {
		return nil, ErrEmptyOptions
	}
	if m.StartingCursor < 0 || m.StartingCursor >= len(m.Options) {
		return nil, ErrInvalidDefault
	}
	checked := make([]bool, len(m.Options))
	for _, i := range m.Default {
		if i < 0 || i >= len(m.Options) {
			return nil, ErrInvalidDefault
		}
		checked[i] = true
	}
	formatter := m.Formatter
	if formatter == nil {
		formatter = DefaultMultiOptionFormatter
	}
	return &multiSelectState{
		promptState: promptState{message: m.Message, help: m.HelpMessage},
		list:        newListView(m.Options, m.PageSize, m.StartingCursor),
		checked:     checked,
		keepFilter:  m.KeepFilter,
		formatter:   formatter,
		validators:  m.Validators,
	}, nil
}

type multiSelectState struct {
	promptState
	list       *listView
	checked    []bool // selection, indexed like the options
	keepFilter bool
	formatter  MultiOptionFormatter
	validators []MultiOptionValidator
}

func (s *multiSelectState) onKey(k Key) {
	switch {
	case k.Code == KeyChar && k.Modifiers == ModNone && k.Rune == ' ':
		if idx, ok := s.list.current(); ok {
			s.checked[idx] = !s.checked[idx]
			if !s.keepFilter {
				s.list.clearFilter()
			}
		}
	case k.Code == KeyRight:
		s.setVisible(true)
	case k.Code == KeyLeft:
		s.setVisible(false)
	case s.list.navigate(k):
	default:
		s.list.editFilter(k)
	}
}

// setVisible checks or unchecks every option matching the filter.
func (s *multiSelectState) setVisible(checked bool) {
	for _, idx := range s.list.visible {
		s.checked[idx] = checked
	}
	if !s.keepFilter {
		s.list.clearFilter()
	}
}

func (s *multiSelectState) selection() []ListOption {
	selected := make([]ListOption, 0, len(s.checked))
	for i, ok := range s.checked {
		if ok {
			selected = append(selected, ListOption{Index: i, Value: s.list.options[i]})
		}
	}
	return selected
}

func (s *multiSelectState) submit() ([]ListOption, error) {
	selected := s.selection()
	if err := validateOptions(s.validators, selected); err != nil {
		return nil, err
	}
	return selected, nil
}

func (s *multiSelectState) final(value []ListOption) (string, string) {
	return s.message, s.formatter(value)
}

func (s *multiSelectState) render(r *Renderer) error {
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
		idx := s.list.visible[i]
		if err := r.PrintMultiOption(i == s.list.cursor, s.checked[idx], s.list.options[idx]); err != nil {
			return err
		}
	}

	return s.endFrame(r)
}
