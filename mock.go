package inquiry

import "io"

// scriptedTerminal implements Terminal for tests and for callers of
// PromptWithRenderer.
//
// It replays a pre-configured rune sequence, tracks raw mode so tests can
// verify the terminal was restored, and reports a fixed size. Once the
// script is exhausted ReadRune returns io.EOF.
type scriptedTerminal struct {
	input        []rune
	inputPos     int
	rawMode      bool
	rawCount     int // number of SetRaw calls, for verification
	terminalSize [2]int
	closed       bool
}

// NewScriptedTerminal returns a Terminal that replays input as keystrokes.
//
// Keys are written the way a terminal would send them: "\r" is Enter,
// "\x7f" is Backspace, "\x03" is Ctrl+C and "\x1b[A" is the Up arrow. A lone
// "\x1b" cancels only when it is the last rune of the script, because any
// following rune is treated as part of an escape sequence.
func NewScriptedTerminal(input string) Terminal {
	return newScriptedTerminal(input)
}

func newScriptedTerminal(input string) *scriptedTerminal {
	return &scriptedTerminal{
		input:        []rune(input),
		terminalSize: [2]int{80, 24},
	}
}

func (m *scriptedTerminal) SetRaw() error {
	m.rawMode = true
	m.rawCount++
	return nil
}

func (m *scriptedTerminal) Restore() error {
	m.rawMode = false
	return nil
}

func (m *scriptedTerminal) Size() (width, height int, err error) {
	return m.terminalSize[0], m.terminalSize[1], nil
}

func (m *scriptedTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *scriptedTerminal) Buffered() bool {
	return m.inputPos < len(m.input)
}

func (m *scriptedTerminal) Close() error {
	m.closed = true
	return nil
}
