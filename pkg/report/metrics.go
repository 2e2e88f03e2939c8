package report

import (
	"sort"

	"github.com/psychob/nwc-waybar/pkg/types"
)

// TopByResident returns the topK records with the most resident memory. Call it
// before memory.Aggregate, which moves resident memory up the tree.
func TopByResident(records []types.ProcessRecord, topK int) []types.ProcessRecord {
	candidates := make([]types.ProcessRecord, len(records))
	copy(candidates, records)
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].ResidentBytes == candidates[j].ResidentBytes {
			return candidates[i].PID < candidates[j].PID
		}
		return candidates[i].ResidentBytes > candidates[j].ResidentBytes
	})
	return trim(candidates, topK)
}

// TopByGroup returns the topK aggregated records by group memory, leaving out
// init which would otherwise head every list.
func TopByGroup(records []types.ProcessRecord, topK int) []types.ProcessRecord {
	candidates := make([]types.ProcessRecord, 0, len(records))
	for _, r := range records {
		if r.PID == types.InitPID {
			continue
		}
		candidates = append(candidates, r)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].GroupBytes == candidates[j].GroupBytes {
			return candidates[i].PID < candidates[j].PID
		}
		return candidates[i].GroupBytes > candidates[j].GroupBytes
	})
	return trim(candidates, topK)
}

func trim(rows []types.ProcessRecord, topK int) []types.ProcessRecord {
	if topK > 0 && len(rows) > topK {
		rows = rows[:topK]
	}
	return rows
}
