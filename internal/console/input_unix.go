//go:build darwin || linux

package console

import (
	"os"

	"golang.org/x/sys/unix"
)

// ttyPoller reads stdin in cbreak mode with VMIN=0/VTIME=0, so Read returns
// immediately whether or not a key is pending.
type ttyPoller struct {
	fd  int
	old *unix.Termios
}

func newTTY() Poller {
	return &ttyPoller{fd: int(os.Stdin.Fd())}
}

func (p *ttyPoller) Open() error {
	old, err := unix.IoctlGetTermios(p.fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	raw := *old
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(p.fd, ioctlWriteTermios, &raw); err != nil {
		return err
	}
	p.old = old
	return nil
}

func (p *ttyPoller) Poll() (byte, bool) {
	var buf [1]byte
	n, err := unix.Read(p.fd, buf[:])
	if err != nil || n == 0 {
		return 0, false
	}
	return upper(buf[0]), true
}

// Close restores the terminal attributes saved by Open. Safe to call
// multiple times.
func (p *ttyPoller) Close() error {
	if p.old == nil {
		return nil
	}
	err := unix.IoctlSetTermios(p.fd, ioctlWriteTermios, p.old)
	p.old = nil
	return err
}
