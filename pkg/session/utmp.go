package session

import (
	"context"
	"fmt"
	"time"

	gohost "github.com/shirou/gopsutil/v3/host"
)

// listUsers allows tests to stub the utmp read.
var listUsers = gohost.UsersWithContext

// Utmp derives the session start from the earliest utmp login of Username.
type Utmp struct {
	Username string
}

func (u Utmp) StartTime(ctx context.Context) (time.Time, error) {
	users, err := listUsers(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("reading utmp: %w", err)
	}
	earliest := 0
	for _, entry := range users {
		if entry.User != u.Username || entry.Started <= 0 {
			continue
		}
		if earliest == 0 || entry.Started < earliest {
			earliest = entry.Started
		}
	}
	if earliest == 0 {
		return time.Time{}, fmt.Errorf("utmp: %w", ErrNoSession)
	}
	return time.Unix(int64(earliest), 0), nil
}
