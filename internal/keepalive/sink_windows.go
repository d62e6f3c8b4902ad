//go:build windows

package keepalive

import (
	"fmt"

	"golang.org/x/sys/windows"
)

const (
	esContinuous      = 0x80000000
	esSystemRequired  = 0x00000001
	esDisplayRequired = 0x00000002

	vkF13          = 0x7C
	keyeventfKeyup = 0x0002
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	moduser32   = windows.NewLazySystemDLL("user32.dll")

	procSetThreadExecutionState = modkernel32.NewProc("SetThreadExecutionState")
	procKeybdEvent              = moduser32.NewProc("keybd_event")
)

// windowsSink asserts ES_SYSTEM_REQUIRED|ES_DISPLAY_REQUIRED and emits F13
// through keybd_event.
type windowsSink struct{}

func newSink() Sink {
	return &windowsSink{}
}

func setExecutionState(flags uintptr) error {
	ret, _, err := procSetThreadExecutionState.Call(flags)
	if ret == 0 {
		return fmt.Errorf("SetThreadExecutionState: %w", err)
	}
	return nil
}

func (s *windowsSink) Open() error {
	return setExecutionState(esContinuous | esSystemRequired | esDisplayRequired)
}

// Pulse re-asserts the execution state before the keypress: the assertion
// is per-thread and the goroutine may have migrated since Open.
func (s *windowsSink) Pulse() error {
	if err := setExecutionState(esContinuous | esSystemRequired | esDisplayRequired); err != nil {
		return err
	}
	// keybd_event has no meaningful return value.
	procKeybdEvent.Call(vkF13, 0, 0, 0)
	procKeybdEvent.Call(vkF13, 0, keyeventfKeyup, 0)
	return nil
}

func (s *windowsSink) Close() error {
	return setExecutionState(esContinuous)
}
