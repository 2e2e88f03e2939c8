package session

import (
	"context"
	"fmt"
	"time"

	"github.com/coreos/go-systemd/v22/login1"
	"github.com/godbus/dbus/v5"
)

// logindConn is the part of the logind D-Bus API used here.
type logindConn interface {
	ListSessionsContext(ctx context.Context) ([]login1.Session, error)
	GetSessionPropertyContext(ctx context.Context, sessionPath dbus.ObjectPath, property string) (*dbus.Variant, error)
	Close()
}

// dialLogind allows tests to replace the system bus connection.
var dialLogind = func() (logindConn, error) {
	conn, err := login1.New()
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Login1 asks systemd-logind for the session start time. SessionID selects a
// session explicitly (usually $XDG_SESSION_ID); otherwise the first session of
// UID is used.
type Login1 struct {
	SessionID string
	UID       uint32
}

func (l Login1) StartTime(ctx context.Context) (time.Time, error) {
	conn, err := dialLogind()
	if err != nil {
		return time.Time{}, fmt.Errorf("connecting to logind: %w", err)
	}
	defer conn.Close()

	sessions, err := conn.ListSessionsContext(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("listing logind sessions: %w", err)
	}
	s, ok := l.pick(sessions)
	if !ok {
		return time.Time{}, fmt.Errorf("logind: %w", ErrNoSession)
	}

	v, err := conn.GetSessionPropertyContext(ctx, s.Path, "Timestamp")
	if err != nil {
		return time.Time{}, fmt.Errorf("reading start of session %s: %w", s.ID, err)
	}
	usec, ok := v.Value().(uint64)
	if !ok || usec == 0 {
		return time.Time{}, fmt.Errorf("session %s has no start timestamp", s.ID)
	}
	return time.UnixMicro(int64(usec)), nil
}

func (l Login1) pick(sessions []login1.Session) (login1.Session, bool) {
	if l.SessionID != "" {
		for _, s := range sessions {
			if s.ID == l.SessionID {
				return s, true
			}
		}
	}
	for _, s := range sessions {
		if s.UID == l.UID {
			return s, true
		}
	}
	return login1.Session{}, false
}
