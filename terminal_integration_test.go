package inquiry

import (
	"os"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

// openPTY returns the controlling and the terminal side of a pseudo
// terminal, skipping the test where none can be allocated.
func openPTY(t *testing.T) (ptmx, tty *os.File) {
	t.Helper()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("Cannot allocate a pseudo terminal in this environment: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})
	return ptmx, tty
}

func TestRealTerminalRawMode(t *testing.T) {
	t.Parallel()

	_, tty := openPTY(t)
	fd := int(tty.Fd())
	require.True(t, term.IsTerminal(fd))

	before, err := term.GetState(fd)
	require.NoError(t, err)

	rt := &realTerminal{stdinFd: fd}
	require.NoError(t, rt.SetRaw())

	during, err := term.GetState(fd)
	require.NoError(t, err)
	assert.NotEqual(t, before, during, "SetRaw should change the line discipline")
	assert.NotNil(t, rt.stopSignals, "signals are watched while raw mode is held")

	require.NoError(t, rt.Restore())
	after, err := term.GetState(fd)
	require.NoError(t, err)
	assert.Equal(t, before, after, "Restore should bring back the captured state")
	assert.Nil(t, rt.stopSignals)

	require.NoError(t, rt.Restore(), "restoring twice is harmless")
}

func TestRealTerminalRawModeReentered(t *testing.T) {
	t.Parallel()

	_, tty := openPTY(t)
	fd := int(tty.Fd())

	before, err := term.GetState(fd)
	require.NoError(t, err)

	rt := &realTerminal{stdinFd: fd}
	for range 3 {
		require.NoError(t, rt.SetRaw())
		require.NoError(t, rt.Restore())
	}

	after, err := term.GetState(fd)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRealTerminalNotATerminal(t *testing.T) {
	t.Parallel()

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()

	rt := &realTerminal{stdinFd: int(f.Fd())}
	require.NoError(t, rt.SetRaw(), "raw mode is skipped when input is not a terminal")
	assert.Nil(t, rt.originalState)
	require.NoError(t, rt.Close())
}

func TestRealTerminalCloseAfterFailedRestore(t *testing.T) {
	t.Parallel()

	_, tty := openPTY(t)
	state, err := term.GetState(int(tty.Fd()))
	require.NoError(t, err)

	f, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer f.Close()

	// A state captured elsewhere cannot be applied to a regular file.
	rt := &realTerminal{stdinFd: int(f.Fd()), originalState: state}
	require.Error(t, rt.Close())
	assert.True(t, rt.closed, "the terminal is released even when restoring fails")
	assert.Nil(t, rt.originalState)
	require.NoError(t, rt.Close(), "closing twice is harmless")
}
