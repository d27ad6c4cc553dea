package logind

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	busName       = "org.freedesktop.login1"
	sessionPath   = "/org/freedesktop/login1/session/auto"
	setBrightness = "org.freedesktop.login1.Session.SetBrightness"
)

// Setter is the one write operation this tool needs from the session
// service. Commands depend on it so tests can substitute a fake.
type Setter interface {
	SetBrightness(subsystem, name string, value uint32) error
}

// Session talks to the logind session of the calling process over the
// system bus. Writing brightness through logind instead of sysfs is what
// lets unprivileged users of the active session change it.
type Session struct {
	conn *dbus.Conn
}

func Connect() (*Session, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to system bus: %w", err)
	}
	return &Session{conn: conn}, nil
}

func (s *Session) Close() error {
	return s.conn.Close()
}

func (s *Session) SetBrightness(subsystem, name string, value uint32) error {
	obj := s.conn.Object(busName, sessionPath)
	if call := obj.Call(setBrightness, 0, subsystem, name, value); call.Err != nil {
		return fmt.Errorf("logind refused to set brightness: %w", call.Err)
	}
	return nil
}
