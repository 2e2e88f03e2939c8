package session

import (
	"context"
	"errors"
	"testing"
	"time"

	gohost "github.com/shirou/gopsutil/v3/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubUsers(t *testing.T, users []gohost.UserStat, err error) {
	t.Helper()
	t.Cleanup(func() { listUsers = gohost.UsersWithContext })
	listUsers = func(context.Context) ([]gohost.UserStat, error) { return users, err }
}

func TestUtmpEarliestLogin(t *testing.T) {
	stubUsers(t, []gohost.UserStat{
		{User: "alice", Terminal: "tty2", Started: 1_700_000_900},
		{User: "bob", Terminal: "pts/0", Started: 1_600_000_000},
		{User: "alice", Terminal: "pts/1", Started: 1_700_000_100},
		{User: "alice", Terminal: "pts/2", Started: 0},
	}, nil)

	got, err := Utmp{Username: "alice"}.StartTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1_700_000_100, 0), got)
}

func TestUtmpNoEntries(t *testing.T) {
	stubUsers(t, []gohost.UserStat{{User: "bob", Started: 10}}, nil)

	_, err := Utmp{Username: "alice"}.StartTime(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestUtmpReadError(t *testing.T) {
	errRead := errors.New("permission denied")
	stubUsers(t, nil, errRead)

	_, err := Utmp{Username: "alice"}.StartTime(context.Background())
	assert.ErrorIs(t, err, errRead)
}
