//go:build !linux

package host

import (
	"fmt"
	"time"

	gohost "github.com/shirou/gopsutil/v3/host"
)

// Uptime returns the time elapsed since boot.
func Uptime() (time.Duration, error) {
	secs, err := gohost.Uptime()
	if err != nil {
		return 0, fmt.Errorf("reading uptime: %w", err)
	}
	return time.Duration(secs) * time.Second, nil
}
