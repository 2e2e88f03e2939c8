package memory

import (
	"errors"
	"fmt"

	"github.com/prometheus/procfs"

	"github.com/psychob/nwc-waybar/pkg/types"
)

// ErrMeminfoIncomplete is returned when /proc/meminfo lacks MemTotal.
var ErrMeminfoIncomplete = errors.New("meminfo: MemTotal missing")

// ReadMemInfo returns the host memory summary from the meminfo file of fs.
func ReadMemInfo(fs procfs.FS) (types.MemInfo, error) {
	mi, err := fs.Meminfo()
	if err != nil {
		return types.MemInfo{}, fmt.Errorf("reading meminfo: %w", err)
	}
	if mi.MemTotal == nil {
		return types.MemInfo{}, ErrMeminfoIncomplete
	}

	info := types.MemInfo{
		Total:     kib(mi.MemTotal),
		SwapTotal: kib(mi.SwapTotal),
		SwapFree:  kib(mi.SwapFree),
		Cached:    kib(mi.Cached),
		Buffers:   kib(mi.Buffers),
	}
	if mi.MemAvailable != nil {
		info.Available = kib(mi.MemAvailable)
	} else {
		// kernels before 3.14 do not export MemAvailable
		info.Available = kib(mi.MemFree) + info.Cached + info.Buffers
	}
	if info.Available > info.Total {
		info.Available = info.Total
	}
	if info.SwapFree > info.SwapTotal {
		info.SwapFree = info.SwapTotal
	}
	info.Used = info.Total - info.Available
	info.SwapUsed = info.SwapTotal - info.SwapFree
	return info, nil
}

func kib(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v * 1024
}
