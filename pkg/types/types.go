package types

// DefaultTopK controls how many processes each tooltip ranking lists.
const DefaultTopK = 10

// DefaultRefreshEvery is the number of tooltip requests served per process snapshot.
const DefaultRefreshEvery = 15

// InitPID is excluded from group rankings; it would inherit nearly everything.
const InitPID = 1

// ProcessRecord describes one process of a point-in-time snapshot.
//
// ResidentBytes starts out as the process' own RSS. Aggregation moves it up the
// tree, so after memory.Aggregate it only holds memory that could not be handed
// to a parent. GroupBytes is the process' own memory plus all descendants'.
type ProcessRecord struct {
	PID           int
	PPID          int
	Name          string
	Icon          string
	ResidentBytes uint64
	GroupBytes    uint64
}

// MemInfo is the host memory summary in bytes.
type MemInfo struct {
	Total     uint64
	Available uint64
	Used      uint64
	SwapTotal uint64
	SwapFree  uint64
	SwapUsed  uint64
	Cached    uint64
	Buffers   uint64
}

// UsedPercent returns Used as a percentage of Total.
func (m MemInfo) UsedPercent() float64 {
	if m.Total == 0 {
		return 0
	}
	return 100 * float64(m.Used) / float64(m.Total)
}
