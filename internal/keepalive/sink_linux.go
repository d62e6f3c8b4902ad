//go:build linux

package keepalive

import (
	"fmt"
	"os/exec"

	"github.com/godbus/dbus/v5"
)

const (
	screenSaverService = "org.freedesktop.ScreenSaver"
	screenSaverPath    = "/org/freedesktop/ScreenSaver"
	inhibitMethod      = screenSaverService + ".Inhibit"
	unInhibitMethod    = screenSaverService + ".UnInhibit"
)

// linuxSink inhibits the desktop screensaver over the session bus and
// pulses F13 through xdotool when it is installed.
type linuxSink struct {
	conn    *dbus.Conn
	cookie  uint32
	xdotool string
}

func newSink() Sink {
	return &linuxSink{}
}

func (s *linuxSink) Open() error {
	s.xdotool, _ = exec.LookPath("xdotool")

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connecting session bus: %w", err)
	}
	obj := conn.Object(screenSaverService, dbus.ObjectPath(screenSaverPath))
	var cookie uint32
	err = obj.Call(inhibitMethod, 0, "nodoze", "keepalive session active").Store(&cookie)
	if err != nil {
		conn.Close()
		return fmt.Errorf("screensaver inhibit: %w", err)
	}
	s.conn = conn
	s.cookie = cookie
	return nil
}

func (s *linuxSink) Pulse() error {
	if s.xdotool == "" {
		return fmt.Errorf("xdotool not installed, cannot send F13")
	}
	if err := exec.Command(s.xdotool, "key", "F13").Run(); err != nil {
		return fmt.Errorf("sending F13 via xdotool: %w", err)
	}
	return nil
}

func (s *linuxSink) Close() error {
	if s.conn == nil {
		return nil
	}
	obj := s.conn.Object(screenSaverService, dbus.ObjectPath(screenSaverPath))
	_ = obj.Call(unInhibitMethod, 0, s.cookie).Err
	err := s.conn.Close()
	s.conn = nil
	return err
}
