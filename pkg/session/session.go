// Package session finds when the current user's login session started.
package session

import (
	"context"
	"errors"
	"time"
)

// ErrNoSession is returned when no source knows a session for the user.
var ErrNoSession = errors.New("no login session for user")

// Source reports the start time of the current user's login session.
type Source interface {
	StartTime(ctx context.Context) (time.Time, error)
}

// Chain asks each source in turn and returns the first answer.
type Chain []Source

func (c Chain) StartTime(ctx context.Context) (time.Time, error) {
	errs := []error{ErrNoSession}
	for _, src := range c {
		start, err := src.StartTime(ctx)
		if err == nil {
			return start, nil
		}
		errs = append(errs, err)
	}
	return time.Time{}, errors.Join(errs...)
}

// Memo remembers the first successful answer of a source. A session's start
// time does not change while the provider runs inside it.
type Memo struct {
	src   Source
	start time.Time
	found bool
}

// NewMemo wraps src.
func NewMemo(src Source) *Memo {
	return &Memo{src: src}
}

func (m *Memo) StartTime(ctx context.Context) (time.Time, error) {
	if m.found {
		return m.start, nil
	}
	start, err := m.src.StartTime(ctx)
	if err != nil {
		return time.Time{}, err
	}
	m.start, m.found = start, true
	return start, nil
}
