package report

import (
	"fmt"
	"time"

	"github.com/prometheus/procfs"
	"go.uber.org/zap"
	"k8s.io/utils/clock"

	"github.com/psychob/nwc-waybar/pkg/collector/memory"
	"github.com/psychob/nwc-waybar/pkg/types"
)

// snapshotProcesses allows tests to feed synthetic process tables.
var snapshotProcesses = memory.Snapshot

// TrackerConfig configures a Tracker. Zero values fall back to defaults.
type TrackerConfig struct {
	FS           procfs.FS
	Icons        memory.IconTable
	Clock        clock.PassiveClock
	Logger       *zap.Logger
	RefreshEvery int
	TopK         int
	// Interval is the poll interval of the caller, used to turn remaining
	// calls into a countdown.
	Interval time.Duration
}

// Status is the answer to one tooltip request.
type Status struct {
	Fragment   string
	LastUpdate time.Time
	Age        time.Duration
	NextIn     time.Duration
	Refreshed  bool
}

// Tracker owns the rendered process rankings between refreshes. It walks the
// process table on the first request and then on every RefreshEvery-th one;
// requests in between reuse the last rendered fragment. It is not safe for
// concurrent use.
type Tracker struct {
	fs       procfs.FS
	icons    memory.IconTable
	clock    clock.PassiveClock
	log      *zap.Logger
	every    uint64
	topK     int
	interval time.Duration

	calls      uint64
	stale      bool
	lastUpdate time.Time
	fragment   string
}

// NewTracker returns a Tracker that has not taken a snapshot yet.
func NewTracker(cfg TrackerConfig) *Tracker {
	t := &Tracker{
		fs:       cfg.FS,
		icons:    cfg.Icons,
		clock:    cfg.Clock,
		log:      cfg.Logger,
		every:    uint64(types.DefaultRefreshEvery),
		topK:     types.DefaultTopK,
		interval: cfg.Interval,
	}
	if cfg.RefreshEvery > 0 {
		t.every = uint64(cfg.RefreshEvery)
	}
	if cfg.TopK > 0 {
		t.topK = cfg.TopK
	}
	if t.icons == nil {
		t.icons = memory.DefaultIcons()
	}
	if t.clock == nil {
		t.clock = clock.RealClock{}
	}
	if t.log == nil {
		t.log = zap.NewNop()
	}
	if t.interval <= 0 {
		t.interval = time.Second
	}
	return t
}

// Tooltip answers one tooltip request. When a due refresh fails the error is
// returned together with the last good fragment, and the next request retries
// instead of waiting for the next slot.
func (t *Tracker) Tooltip() (Status, error) {
	slot := t.calls % t.every
	t.calls++

	var err error
	refreshed := false
	if slot == 0 || t.stale {
		if err = t.refresh(); err == nil {
			refreshed = true
		}
	}

	now := t.clock.Now()
	st := Status{
		Fragment:   t.fragment,
		LastUpdate: t.lastUpdate,
		NextIn:     time.Duration(t.every-slot) * t.interval,
		Refreshed:  refreshed,
	}
	if !t.lastUpdate.IsZero() {
		st.Age = now.Sub(t.lastUpdate)
	}
	return st, err
}

func (t *Tracker) refresh() error {
	records, skipped, err := snapshotProcesses(t.fs, t.icons)
	if err != nil {
		t.stale = true
		return fmt.Errorf("refreshing process rankings: %w", err)
	}

	top := TopByResident(records, t.topK)
	passes := memory.Aggregate(records)
	groups := TopByGroup(records, t.topK)

	t.fragment = RenderRankings(top, groups)
	t.lastUpdate = t.clock.Now()
	t.stale = false
	t.log.Debug("process rankings refreshed",
		zap.Int("processes", len(records)),
		zap.Int("skipped", skipped),
		zap.Int("passes", passes))
	return nil
}
