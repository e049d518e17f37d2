package inquiry

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// Terminal abstracts terminal operations for testability and cross-platform compatibility.
//
// This interface is the only way a prompt touches the terminal. It covers raw
// mode switching, size detection, input reading and resource cleanup, so
// that every prompt can run against a real terminal or a fixed script.
//
// Guarantees expected from implementations:
//   - Restore brings back exactly the state captured by the last SetRaw,
//     and is harmless when raw mode is not held
//   - Size falls back to 80x24 instead of returning zero dimensions
//   - Buffered reports input that is already waiting, which tells a lone
//     Esc apart from the start of an escape sequence
//   - Close releases the handle even when restoring fails
//
// Implementations:
//   - realTerminal: Uses go-tty and golang.org/x/term for actual terminal interaction
//   - scriptedTerminal: Replays a fixed rune script, see NewScriptedTerminal
//
// Output is not part of the interface; the Renderer writes frames to its own
// io.Writer so that tests can capture them.
type Terminal interface {
	SetRaw() error                        // Enter raw mode for immediate key processing
	Restore() error                       // Restore the settings captured by SetRaw
	Size() (width, height int, err error) // Terminal dimensions with safe fallbacks
	ReadRune() (rune, int, error)         // Read a single Unicode character from input
	Buffered() bool                       // Whether more input is already waiting
	Close() error                         // Release resources; safe to call twice
}

// realTerminal implements Terminal for production use.
//
// Input comes from go-tty, raw mode is managed with golang.org/x/term, and
// output goes to stderr (wrapped with go-colorable on Windows) so that the
// host program's stdout stays clean for piping.
//
// While raw mode is held, an interrupt or termination signal delivered by
// another process restores the terminal before the process exits.
type realTerminal struct {
	tty           *tty.TTY
	output        io.Writer
	closed        bool // prevents double-close panic on Windows
	stdinFd       int
	mu            sync.Mutex
	originalState *term.State
	signals       chan os.Signal
	stopSignals   chan struct{}
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	var output io.Writer = os.Stderr
	if runtime.GOOS == "windows" {
		output = colorable.NewColorableStderr()
	}

	return &realTerminal{
		tty:     t,
		output:  output,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !term.IsTerminal(t.stdinFd) {
		return nil
	}
	state, err := term.GetState(t.stdinFd)
	if err != nil {
		return err
	}
	if _, err := term.MakeRaw(t.stdinFd); err != nil {
		return err
	}
	t.originalState = state
	t.watchSignals()
	return nil
}

func (t *realTerminal) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.restoreLocked()
}

func (t *realTerminal) restoreLocked() error {
	if t.stopSignals != nil {
		signal.Stop(t.signals)
		close(t.stopSignals)
		t.stopSignals = nil
	}
	if t.originalState == nil {
		return nil
	}
	err := term.Restore(t.stdinFd, t.originalState)
	// Reset so that SetRaw captures a fresh baseline next time
	t.originalState = nil
	return err
}

// watchSignals must be called with t.mu held.
func (t *realTerminal) watchSignals() {
	if t.stopSignals != nil {
		return
	}
	t.signals = make(chan os.Signal, 1)
	t.stopSignals = make(chan struct{})
	signal.Notify(t.signals, os.Interrupt, syscall.SIGTERM)

	go func(sigs <-chan os.Signal, stop <-chan struct{}) {
		select {
		case sig := <-sigs:
			t.mu.Lock()
			_ = t.restoreLocked()
			t.mu.Unlock()
			code := 1
			if s, ok := sig.(syscall.Signal); ok {
				code = 128 + int(s)
			}
			os.Exit(code)
		case <-stop:
		}
	}(t.signals, t.stopSignals)
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		// Safe fallback to prevent divide by zero
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Buffered() bool {
	return t.tty.Buffered()
}

func (t *realTerminal) Close() error {
	if t.closed {
		return nil
	}
	restoreErr := t.Restore()
	var closeErr error
	if t.tty != nil {
		closeErr = t.tty.Close()
	}
	t.closed = true
	return errors.Join(restoreErr, closeErr)
}
