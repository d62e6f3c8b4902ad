//go:build windows

package console

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const keyEvent = 0x0001

// inputRecord mirrors the KEY_EVENT layout of INPUT_RECORD.
type inputRecord struct {
	eventType uint16
	_         uint16
	keyDown   int32
	repeat    uint16
	vkey      uint16
	scan      uint16
	char      uint16
	ctrl      uint32
}

var (
	conKernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procReadConsoleInputW = conKernel32.NewProc("ReadConsoleInputW")
)

// conPoller peeks the console input queue; WaitForSingleObject with a zero
// timeout makes the check non-blocking.
type conPoller struct {
	handle  windows.Handle
	oldMode uint32
	opened  bool
}

func newTTY() Poller {
	return &conPoller{}
}

func (p *conPoller) Open() error {
	h, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return err
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return err
	}
	raw := mode &^ (windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT)
	if err := windows.SetConsoleMode(h, raw); err != nil {
		return err
	}
	p.handle = h
	p.oldMode = mode
	p.opened = true
	return nil
}

func (p *conPoller) Poll() (byte, bool) {
	if !p.opened {
		return 0, false
	}
	ev, err := windows.WaitForSingleObject(p.handle, 0)
	if err != nil || ev != windows.WAIT_OBJECT_0 {
		return 0, false
	}
	var rec inputRecord
	var read uint32
	ret, _, _ := procReadConsoleInputW.Call(
		uintptr(p.handle),
		uintptr(unsafe.Pointer(&rec)),
		1,
		uintptr(unsafe.Pointer(&read)),
	)
	if ret == 0 || read == 0 {
		return 0, false
	}
	if rec.eventType != keyEvent || rec.keyDown == 0 || rec.char == 0 || rec.char > 127 {
		return 0, false
	}
	return upper(byte(rec.char)), true
}

func (p *conPoller) Close() error {
	if !p.opened {
		return nil
	}
	p.opened = false
	return windows.SetConsoleMode(p.handle, p.oldMode)
}
