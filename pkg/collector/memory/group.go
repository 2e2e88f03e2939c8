package memory

import (
	"github.com/psychob/nwc-waybar/pkg/types"
)

// Aggregate folds every process' memory into its ancestors.
//
// GroupBytes starts at the process' own ResidentBytes. Each pass hands the
// ResidentBytes still held by a process to its parent, adding it to both the
// parent's ResidentBytes and GroupBytes, and clears the child. Passes repeat
// until nothing moves, so memory climbs one level per pass until it reaches a
// root whose parent is not part of the snapshot. It returns the number of
// passes that moved memory.
func Aggregate(records []types.ProcessRecord) int {
	index := make(map[int]int, len(records))
	for i := range records {
		index[records[i].PID] = i
		records[i].GroupBytes = records[i].ResidentBytes
	}

	// a snapshot of live processes is a forest, so depth is bounded by its size
	passes := 0
	for passes < len(records) {
		moved := 0
		for i := range records {
			child := &records[i]
			if child.ResidentBytes == 0 || child.PPID == child.PID {
				continue
			}
			j, ok := index[child.PPID]
			if !ok {
				continue
			}
			parent := &records[j]
			parent.ResidentBytes += child.ResidentBytes
			parent.GroupBytes += child.ResidentBytes
			child.ResidentBytes = 0
			moved++
		}
		if moved == 0 {
			break
		}
		passes++
	}
	return passes
}
