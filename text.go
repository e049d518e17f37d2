package inquiry

// DefaultPageSize is the number of list lines shown at once.
const DefaultPageSize = 7

// Text presents a message and reads a single line of text, echoing it as it
// is typed.
//
// Supported keys:
//   - Left/Right, Home/End (Ctrl+A/Ctrl+E): move the cursor
//   - Ctrl+Left/Ctrl+Right: move by words
//   - Backspace/Delete: delete before/under the cursor
//   - Ctrl+U: clear the line, Ctrl+K: delete to the end, Ctrl+W: delete the word before the cursor
//   - Up/Down: move through suggestions while one is highlighted, otherwise
//     through history; Down starts the suggestion list when not recalling
//   - Tab: complete with the highlighted (or first) suggestion
type Text struct {
	Message      string            // Message presented to the user
	HelpMessage  string            // Help line shown below the question; empty for none
	Default      string            // Answer used when the input is submitted empty
	InitialValue string            // Content the editor starts with
	Placeholder  string            // Dimmed text shown while the input is empty
	Formatter    StringFormatter   // Formats the answer for the final rendering
	Validators   []StringValidator // Applied in order at submit time
	Suggester    Suggester         // Autocompletion source; nil disables suggestions
	History      []string          // Earlier answers recalled with Up/Down, oldest first
	PageSize     int               // Suggestions shown at once
}

// NewText creates a Text with the given message and default options.
func NewText(message string) *Text {
	return &Text{
		Message:   message,
		Formatter: DefaultStringFormatter,
		PageSize:  DefaultPageSize,
	}
}

// WithHelpMessage sets the help message of the prompt.
func (t *Text) WithHelpMessage(message string) *Text {
	t.HelpMessage = message
	return t
}

// WithDefault sets the answer used when the input is submitted empty.
func (t *Text) WithDefault(value string) *Text {
	t.Default = value
	return t
}

// WithInitialValue sets the content the editor starts with.
func (t *Text) WithInitialValue(value string) *Text {
	t.InitialValue = value
	return t
}

// WithPlaceholder sets the text shown while the input is empty.
func (t *Text) WithPlaceholder(placeholder string) *Text {
	t.Placeholder = placeholder
	return t
}

// WithFormatter sets the formatter.
func (t *Text) WithFormatter(formatter StringFormatter) *Text {
	t.Formatter = formatter
	return t
}

// WithValidator adds a validator to the collection of validators.
func (t *Text) WithValidator(validator StringValidator) *Text {
	t.Validators = append(t.Validators, validator)
	return t
}

// WithValidators adds the validators to the collection of validators.
func (t *Text) WithValidators(validators ...StringValidator) *Text {
	t.Validators = append(t.Validators, validators...)
	return t
}

// WithSuggester sets the autocompletion source.
func (t *Text) WithSuggester(suggester Suggester) *Text {
	t.Suggester = suggester
	return t
}

// WithHistory sets the entries recalled with Up and Down, oldest first.
func (t *Text) WithHistory(entries []string) *Text {
	t.History = append([]string{}, entries...)
	return t
}

// WithPageSize sets how many suggestions are shown at once.
func (t *Text) WithPageSize(size int) *Text {
	t.PageSize = size
	return t
}

// Prompt asks the question on the process terminal and returns the raw
// answer.
func (t *Text) Prompt() (string, error) {
	answer, err := Ask(t)
	if err != nil {
		return "", err
	}
	return string(answer.(TextAnswer)), nil
}

// PromptWithRenderer asks the question on r.
func (t *Text) PromptWithRenderer(r *Renderer) (string, error) {
	return run[string](r, t.newState())
}

// AskWithRenderer implements Question.
func (t *Text) AskWithRenderer(r *Renderer) (Answer, error) {
	s, err := t.PromptWithRenderer(r)
	if err != nil {
		return nil, err
	}
	return TextAnswer(s), nil
}

func (t *Text) newState() *textState {
	formatter := t.Formatter
	if formatter == nil {
		formatter = DefaultStringFormatter
	}
	pageSize := t.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	s := &textState{
		promptState:  promptState{message: t.Message, help: t.HelpMessage},
		content:      newLineBuffer(t.InitialValue),
		defaultValue: t.Default,
		placeholder:  t.Placeholder,
		formatter:    formatter,
		validators:   t.Validators,
		suggester:    t.Suggester,
		highlighted:  -1,
		pageSize:     pageSize,
		history:      newHistoryNavigator(t.History),
	}
	s.refreshSuggestions()
	return s
}

type textState struct {
	promptState
	content      *lineBuffer
	defaultValue string
	placeholder  string
	formatter    StringFormatter
	validators   []StringValidator

	suggester   Suggester
	suggestions []Suggestion
	highlighted int // index into suggestions, -1 for none
	offset      int // first suggestion shown

	pageSize int
	history  *historyNavigator
}

func (s *textState) onKey(k Key) {
	switch k.Code {
	case KeyChar:
		s.onChar(k)
	case KeyBackspace:
		s.edit(s.content.backspace)
	case KeyDelete:
		s.edit(s.content.deleteForward)
	case KeyLeft:
		if k.Modifiers&ModCtrl != 0 {
			s.content.moveWordLeft()
		} else {
			s.content.moveLeft()
		}
	case KeyRight:
		if k.Modifiers&ModCtrl != 0 {
			s.content.moveWordRight()
		} else {
			s.content.moveRight()
		}
	case KeyHome:
		s.content.moveHome()
	case KeyEnd:
		s.content.moveEnd()
	case KeyUp:
		s.onUp()
	case KeyDown:
		s.onDown()
	case KeyPageUp:
		if len(s.suggestions) > 0 {
			s.highlight(max(s.highlighted-s.pageSize, 0))
		}
	case KeyPageDown:
		if len(s.suggestions) > 0 {
			s.highlight(min(s.highlighted+s.pageSize, len(s.suggestions)-1))
		}
	case KeyTab:
		s.complete()
	}
}

func (s *textState) onChar(k Key) {
	switch k.Modifiers {
	case ModNone:
		s.edit(func() { s.content.insert(k.Rune) })
	case ModCtrl:
		switch k.Rune {
		case 'a':
			s.content.moveHome()
		case 'e':
			s.content.moveEnd()
		case 'u':
			s.edit(s.content.clear)
		case 'w':
			s.edit(s.content.deleteWordBack)
		case 'k':
			s.edit(func() {
				before, _ := s.content.split()
				s.content.text = before
			})
		}
	}
}

// edit applies a content change and recomputes what depends on it.
func (s *textState) edit(fn func()) {
	before := s.content.String()
	fn()
	if s.content.String() == before {
		return
	}
	s.history.reset()
	s.refreshSuggestions()
}

// onUp walks the suggestion list while one is highlighted and the history
// otherwise, so both stay reachable when a suggester matches everything.
func (s *textState) onUp() {
	if s.highlighted >= 0 {
		s.highlight(s.highlighted - 1)
		return
	}
	if entry, ok := s.history.prev(s.content.String()); ok {
		s.recall(entry)
	}
}

func (s *textState) onDown() {
	if s.history.navigating() {
		if entry, ok := s.history.next(); ok {
			s.recall(entry)
		}
		return
	}
	if len(s.suggestions) > 0 {
		s.highlight(min(s.highlighted+1, len(s.suggestions)-1))
	}
}

// recall shows a history entry without ending history navigation.
func (s *textState) recall(entry string) {
	s.content.set(entry)
	s.refreshSuggestions()
}

// complete replaces the content with the highlighted suggestion, or the
// first one when nothing is highlighted.
func (s *textState) complete() {
	if len(s.suggestions) == 0 {
		return
	}
	i := s.highlighted
	if i < 0 {
		i = 0
	}
	text := s.suggestions[i].Text
	s.content.set(text)
	s.history.reset()
	s.refreshSuggestions()
}

func (s *textState) refreshSuggestions() {
	s.highlighted = -1
	s.offset = 0
	if s.suggester == nil {
		s.suggestions = nil
		return
	}
	s.suggestions = s.suggester(s.content.String())
}

// highlight moves the suggestion highlight and scrolls the visible window
// to keep it in view.
func (s *textState) highlight(i int) {
	s.highlighted = i
	if i < 0 {
		return
	}
	if i < s.offset {
		s.offset = i
	}
	if i >= s.offset+s.pageSize {
		s.offset = i - s.pageSize + 1
	}
}

// value is the answer the current state would submit: the highlighted
// suggestion, else the content, else the default.
func (s *textState) value() string {
	if s.highlighted >= 0 && s.highlighted < len(s.suggestions) {
		return s.suggestions[s.highlighted].Text
	}
	if s.content.isEmpty() {
		return s.defaultValue
	}
	return s.content.String()
}

func (s *textState) submit() (string, error) {
	v := s.value()
	if err := validateString(s.validators, v); err != nil {
		return "", err
	}
	return v, nil
}

func (s *textState) final(value string) (string, string) {
	return s.message, s.formatter(value)
}

func (s *textState) render(r *Renderer) error {
	if err := s.beginFrame(r); err != nil {
		return err
	}

	var err error
	if s.content.isEmpty() && s.placeholder != "" {
		err = r.PrintPromptPlaceholder(s.message, s.defaultValue, s.placeholder)
	} else {
		err = r.PrintPromptWithCursor(s.message, s.defaultValue, s.content.String(), s.content.cursorWidth())
	}
	if err != nil {
		return err
	}

	end := min(s.offset+s.pageSize, len(s.suggestions))
	for i := s.offset; i < end; i++ {
		if err := r.PrintSuggestion(i == s.highlighted, s.suggestions[i]); err != nil {
			return err
		}
	}

	return s.endFrame(r)
}
