//go:build linux

package host

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// Uptime returns the time elapsed since boot.
func Uptime() (time.Duration, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, fmt.Errorf("sysinfo: %w", err)
	}
	return time.Duration(info.Uptime) * time.Second, nil
}
