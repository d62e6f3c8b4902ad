//go:build darwin

package keepalive

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"
)

const (
	caffeinatePath = "/usr/bin/caffeinate"
	osascriptPath  = "/usr/bin/osascript"

	// System Events key code for F13. Delivering it needs the terminal app
	// allowed under Accessibility and Automation ("System Events").
	f13KeyCode = 105
)

// darwinSink holds a caffeinate child process for the no-lock assertion and
// shells out to osascript for each F13 pulse.
type darwinSink struct {
	cmd *exec.Cmd
}

func newSink() Sink {
	return &darwinSink{}
}

// Open starts caffeinate with display, idle, AC and disk assertions.
func (s *darwinSink) Open() error {
	if _, err := os.Stat(caffeinatePath); err != nil {
		return fmt.Errorf("caffeinate not found at %s: %w", caffeinatePath, err)
	}
	cmd := exec.Command(caffeinatePath, "-d", "-i", "-s", "-m")
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting caffeinate: %w", err)
	}
	s.cmd = cmd
	return nil
}

func (s *darwinSink) Pulse() error {
	script := fmt.Sprintf("tell application \"System Events\" to key code %d", f13KeyCode)
	if err := exec.Command(osascriptPath, "-e", script).Run(); err != nil {
		return fmt.Errorf("sending F13 via osascript: %w", err)
	}
	return nil
}

// Close terminates the caffeinate child, escalating to SIGKILL if it does
// not exit promptly.
func (s *darwinSink) Close() error {
	if s.cmd == nil || s.cmd.Process == nil {
		return nil
	}
	_ = s.cmd.Process.Signal(syscall.SIGTERM)
	done := make(chan error, 1)
	go func() { done <- s.cmd.Wait() }()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		_ = s.cmd.Process.Kill()
		<-done
	}
	s.cmd = nil
	return nil
}
