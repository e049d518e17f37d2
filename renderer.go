package inquiry

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/sirupsen/logrus"
)

// Renderer paints prompt frames and reads keys on behalf of a prompt.
//
// The renderer manages all visual aspects of a question:
//   - Prompt, help, error, option and suggestion lines in a themed ColorScheme
//   - Placement of the real cursor inside the edited line
//   - Width accounting for wide and combining characters via go-runewidth
//   - Decoding of raw input into Keys through the configured KeyMap
//   - Nested raw mode, so several questions can share one terminal session
//
// The renderer owns its Terminal for as long as a prompt runs. It remembers
// how many terminal rows the previous frame occupied and where it left the
// cursor, so ResetPrompt erases exactly that region and nothing else: output
// the host program printed before the prompt, and answers committed by
// earlier prompts on the same renderer, stay on screen.
//
// A frame is built with the Print* methods, which only queue lines, and is
// written in one piece by Flush. Long lines are accounted for as the number
// of rows they wrap to at the current terminal width.
//
// A Renderer must not be shared by prompts running concurrently.
type Renderer struct {
	terminal    Terminal
	output      io.Writer
	colorScheme *ColorScheme
	keyMap      *KeyMap
	logger      logrus.FieldLogger

	frame   bytes.Buffer // pending bytes, written by Flush
	pending []frameLine  // lines queued for the next frame

	drawnRows int // rows painted by the previous frame
	cursorRow int // row of the previous frame the cursor was left on

	cursorSet  bool // whether a line of the pending frame claimed the cursor
	cursorLine int
	cursorCol  int

	rawDepth int
}

type frameLine struct {
	styled string
	width  int // display width of the unstyled text
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithOutput sets the writer frames are painted to.
func WithOutput(w io.Writer) RendererOption {
	return func(r *Renderer) {
		r.output = w
	}
}

// WithColorScheme sets the color scheme
func WithColorScheme(cs *ColorScheme) RendererOption {
	return func(r *Renderer) {
		r.colorScheme = cs
	}
}

// WithKeyMap sets the key bindings
func WithKeyMap(km *KeyMap) RendererOption {
	return func(r *Renderer) {
		r.keyMap = km
	}
}

// WithLogger sets the logger used for terminal warnings and debug output.
func WithLogger(logger logrus.FieldLogger) RendererOption {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// NewRenderer creates a renderer driving t.
//
// Without options, frames go to stderr, the default color scheme and key
// map are used, and warnings are logged to stderr.
//
// Example (scripted input, captured output):
//
//	var out bytes.Buffer
//	r := inquiry.NewRenderer(inquiry.NewScriptedTerminal("secret\r"),
//		inquiry.WithOutput(&out))
//	pw, err := inquiry.NewPassword("Password:").PromptWithRenderer(r)
func NewRenderer(t Terminal, opts ...RendererOption) *Renderer {
	r := &Renderer{
		terminal: t,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.output == nil {
		r.output = os.Stderr
	}
	if r.colorScheme == nil {
		r.colorScheme = ThemeDefault
	}
	if r.keyMap == nil {
		r.keyMap = NewDefaultKeyMap()
	}
	if r.logger == nil {
		r.logger = defaultLogger()
	}
	return r
}

func defaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

// enterRawMode puts the terminal in raw mode and returns the function that
// undoes it. Calls nest; only the outermost release restores the terminal.
func (r *Renderer) enterRawMode() (release func() error, err error) {
	if r.rawDepth == 0 {
		if err := r.terminal.SetRaw(); err != nil {
			return nil, terminalError("raw mode", err)
		}
	}
	r.rawDepth++

	released := false
	return func() error {
		if released {
			return nil
		}
		released = true
		r.rawDepth--
		if r.rawDepth > 0 {
			return nil
		}
		if err := r.terminal.Restore(); err != nil {
			r.logger.WithError(err).Warn("failed to restore terminal state")
			return terminalError("restore", err)
		}
		return nil
	}, nil
}

// ReadKey blocks until the terminal delivers one key.
func (r *Renderer) ReadKey() (Key, error) {
	k, err := r.keyMap.decodeKey(r.terminal)
	if err != nil {
		return Key{}, terminalError("read", err)
	}
	if k.Code == KeyNone {
		r.logger.Debug("ignoring unrecognized key input")
	}
	return k, nil
}

// ResetPrompt erases the rows painted by the previous frame and discards
// any lines queued since. It does nothing when nothing was painted.
func (r *Renderer) ResetPrompt() error {
	r.pending = r.pending[:0]
	r.cursorSet = false

	if r.drawnRows == 0 {
		return nil
	}

	if r.cursorRow > 0 {
		fmt.Fprintf(&r.frame, "\x1b[%dA", r.cursorRow)
	}
	r.frame.WriteString("\r")
	for i := range r.drawnRows {
		r.frame.WriteString("\x1b[2K")
		if i < r.drawnRows-1 {
			r.frame.WriteString("\x1b[1B")
		}
	}
	if r.drawnRows > 1 {
		fmt.Fprintf(&r.frame, "\x1b[%dA", r.drawnRows-1)
	}
	r.frame.WriteString("\r")

	r.drawnRows = 0
	r.cursorRow = 0
	return nil
}

// PrintErrorMessage queues a highlighted validation error line.
func (r *Renderer) PrintErrorMessage(message string) error {
	text := "# " + message
	r.addLine(r.colorScheme.paint(r.colorScheme.Error, text), text)
	return nil
}

// PrintPrompt queues the question line. hint is shown in parentheses (for
// example a default value) and preview after it; empty strings are omitted.
// The cursor is left at the end of the line.
func (r *Renderer) PrintPrompt(message, hint, preview string) error {
	styled, plain := r.questionLine(message, hint)
	if preview != "" {
		styled += " " + r.colorScheme.paint(r.colorScheme.Answer, preview)
		plain += " " + preview
	}
	r.addLine(styled, plain)
	r.placeCursor(runewidth.StringWidth(plain))
	return nil
}

// PrintPromptWithCursor queues the question line followed by editable
// content, with the cursor placed cursorWidth columns into the content.
func (r *Renderer) PrintPromptWithCursor(message, hint, content string, cursorWidth int) error {
	styled, plain := r.questionLine(message, hint)
	styled += " "
	plain += " "
	start := runewidth.StringWidth(plain)
	styled += r.colorScheme.paint(r.colorScheme.Answer, content)
	plain += content
	r.addLine(styled, plain)
	r.placeCursor(start + cursorWidth)
	return nil
}

// PrintPromptPlaceholder queues the question line with a dimmed placeholder
// standing in for empty content; the cursor sits where typing will start.
func (r *Renderer) PrintPromptPlaceholder(message, hint, placeholder string) error {
	styled, plain := r.questionLine(message, hint)
	styled += " "
	plain += " "
	start := runewidth.StringWidth(plain)
	styled += r.colorScheme.paint(r.colorScheme.Hint, placeholder)
	plain += placeholder
	r.addLine(styled, plain)
	r.placeCursor(start)
	return nil
}

// PrintHelp queues the help line.
func (r *Renderer) PrintHelp(message string) error {
	text := "[" + message + "]"
	r.addLine(r.colorScheme.paint(r.colorScheme.Help, text), text)
	return nil
}

// PrintOption queues one line of a single-choice list.
func (r *Renderer) PrintOption(active bool, text string) error {
	if active {
		line := "> " + text
		r.addLine(r.colorScheme.paint(r.colorScheme.Selected, line), line)
		return nil
	}
	line := "  " + text
	r.addLine(r.colorScheme.paint(r.colorScheme.Option, line), line)
	return nil
}

// PrintMultiOption queues one line of a multiple-choice list.
func (r *Renderer) PrintMultiOption(active, checked bool, text string) error {
	box := "[ ] "
	if checked {
		box = "[x] "
	}
	if active {
		line := "> " + box + text
		r.addLine(r.colorScheme.paint(r.colorScheme.Selected, line), line)
		return nil
	}
	line := "  " + box + text
	r.addLine(r.colorScheme.paint(r.colorScheme.Option, line), line)
	return nil
}

// PrintSuggestion queues one line of an autocompletion list.
func (r *Renderer) PrintSuggestion(active bool, s Suggestion) error {
	marker := "  "
	color := r.colorScheme.Option
	if active {
		marker = "> "
		color = r.colorScheme.Selected
	}
	styled := r.colorScheme.paint(color, marker+s.Text)
	plain := marker + s.Text
	if s.Description != "" {
		styled += " " + r.colorScheme.paint(r.colorScheme.Hint, "- "+s.Description)
		plain += " - " + s.Description
	}
	r.addLine(styled, plain)
	return nil
}

// Flush writes the queued frame and records its size for the next reset.
func (r *Renderer) Flush() error {
	width := r.width()

	rows := 0
	targetRow, targetCol := -1, 0
	for i, line := range r.pending {
		if i > 0 {
			r.frame.WriteString("\r\n")
		}
		r.frame.WriteString(line.styled)
		if r.cursorSet && i == r.cursorLine {
			// Rows are assumed to hold exactly width columns. A wide rune
			// that does not fit at the end of a row wraps early, which puts
			// the real cursor one column to the right of this estimate.
			targetRow = rows + r.cursorCol/width
			targetCol = r.cursorCol % width
		}
		rows += rowsFor(line.width, width)
	}

	lastRow := rows - 1
	if rows > 0 && targetRow >= 0 {
		// A cursor at the exact end of a full row sits on the next row.
		if targetRow > lastRow {
			r.frame.WriteString("\r\n")
			lastRow = targetRow
			rows = targetRow + 1
		}
		if up := lastRow - targetRow; up > 0 {
			fmt.Fprintf(&r.frame, "\x1b[%dA", up)
		}
		r.frame.WriteString("\r")
		if targetCol > 0 {
			fmt.Fprintf(&r.frame, "\x1b[%dC", targetCol)
		}
		r.cursorRow = targetRow
	} else {
		r.cursorRow = max(lastRow, 0)
	}
	r.drawnRows = rows
	r.pending = r.pending[:0]
	r.cursorSet = false

	r.logger.WithFields(logrus.Fields{"rows": r.drawnRows, "cursor_row": r.cursorRow}).Debug("frame painted")
	return r.writeFrame()
}

// Cleanup replaces the interactive frame with the single committed line
// "message answer" and leaves the cursor on the line below it. The line is
// never erased by a later ResetPrompt.
func (r *Renderer) Cleanup(message, answer string) error {
	if err := r.ResetPrompt(); err != nil {
		return err
	}
	styled, _ := r.questionLine(message, "")
	if answer != "" {
		styled += " " + r.colorScheme.paint(r.colorScheme.Answer, answer)
	}
	r.frame.WriteString(styled)
	r.frame.WriteString("\r\n")

	r.drawnRows = 0
	r.cursorRow = 0
	return r.writeFrame()
}

func (r *Renderer) writeFrame() error {
	defer r.frame.Reset()
	if r.frame.Len() == 0 {
		return nil
	}
	if _, err := r.output.Write(r.frame.Bytes()); err != nil {
		return terminalError("write", err)
	}
	return nil
}

// questionLine returns the styled and plain forms of "? message (hint)".
func (r *Renderer) questionLine(message, hint string) (styled, plain string) {
	cs := r.colorScheme
	styled = cs.paint(cs.Prefix, "?") + " " + cs.paint(cs.Message, message)
	plain = "? " + message
	if hint != "" {
		styled += " " + cs.paint(cs.Hint, "("+hint+")")
		plain += " (" + hint + ")"
	}
	return styled, plain
}

func (r *Renderer) addLine(styled, plain string) {
	r.pending = append(r.pending, frameLine{styled: styled, width: runewidth.StringWidth(plain)})
}

// placeCursor claims the cursor for the last queued line unless an earlier
// line already did.
func (r *Renderer) placeCursor(col int) {
	if r.cursorSet {
		return
	}
	r.cursorSet = true
	r.cursorLine = len(r.pending) - 1
	r.cursorCol = col
}

func (r *Renderer) width() int {
	w, _, err := r.terminal.Size()
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// rowsFor returns how many terminal rows a line of the given display width
// occupies.
func rowsFor(lineWidth, termWidth int) int {
	if lineWidth <= 0 {
		return 1
	}
	return (lineWidth + termWidth - 1) / termWidth
}
