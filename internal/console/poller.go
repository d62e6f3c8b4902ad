// Package console owns the interactive surface: non-blocking single-key
// command polling on a raw terminal, and rendering of session/wait progress.
// Off a TTY both degrade to no-ops so the program keeps working headless.
package console

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Poller checks for a pending single-character command without blocking.
// Open switches the terminal to cbreak mode; Close restores it.
type Poller interface {
	Open() error
	Poll() (byte, bool)
	Close() error
}

// NopPoller never reports input. It serves non-interactive contexts where
// "no command pending" is the correct permanent answer.
type NopPoller struct{}

func (NopPoller) Open() error        { return nil }
func (NopPoller) Poll() (byte, bool) { return 0, false }
func (NopPoller) Close() error       { return nil }

var _ Poller = NopPoller{}

// NewPoller returns a raw-terminal poller when stdin is a TTY and a
// NopPoller otherwise.
func NewPoller() Poller {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return NopPoller{}
	}
	return newTTY()
}

// Interactive reports whether both stdin and stdout are terminals.
func Interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
