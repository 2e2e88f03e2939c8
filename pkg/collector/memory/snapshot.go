package memory

import (
	"fmt"

	"github.com/prometheus/procfs"

	"github.com/psychob/nwc-waybar/pkg/types"
)

// Snapshot lists every process of fs with its resident memory and parent.
// Processes that exit or cannot be parsed between the directory listing and
// the detail read are skipped and counted; only a failed listing is an error.
func Snapshot(fs procfs.FS, icons IconTable) (records []types.ProcessRecord, skipped int, err error) {
	procs, err := fs.AllProcs()
	if err != nil {
		return nil, 0, fmt.Errorf("listing processes: %w", err)
	}

	records = make([]types.ProcessRecord, 0, len(procs))
	for _, p := range procs {
		stat, err := p.Stat()
		if err != nil {
			skipped++
			continue
		}
		// an unreadable cmdline only costs the long name
		cmdline, _ := p.CmdLine()

		name := processName(stat.Comm, cmdline)
		rss := stat.ResidentMemory()
		if rss < 0 {
			rss = 0
		}
		records = append(records, types.ProcessRecord{
			PID:           p.PID,
			PPID:          stat.PPID,
			Name:          name,
			Icon:          icons.Lookup(name),
			ResidentBytes: uint64(rss),
		})
	}
	return records, skipped, nil
}
