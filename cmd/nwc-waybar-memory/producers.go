package main

import (
	"context"
	"fmt"
	"math"

	"github.com/prometheus/procfs"
	"go.uber.org/zap"

	"github.com/psychob/nwc-waybar/pkg/collector/memory"
	"github.com/psychob/nwc-waybar/pkg/config"
	"github.com/psychob/nwc-waybar/pkg/fmtmap"
	"github.com/psychob/nwc-waybar/pkg/report"
	"github.com/psychob/nwc-waybar/pkg/types"
	"github.com/psychob/nwc-waybar/pkg/ui"
	"github.com/psychob/nwc-waybar/pkg/waybar"
)

const memoryIcon = "\uf538"

// sample is what one iteration read; producers render from it so the three
// templates of an iteration agree with each other.
type sample struct {
	mem     types.MemInfo
	procs   report.Status
	procErr error
}

func bytesOf(field func(*sample) uint64, cur *sample) fmtmap.Producer {
	return fmtmap.ProducerFunc(func() (string, error) {
		return ui.Bytes(field(cur)), nil
	})
}

func newResolver(cur *sample) *fmtmap.Resolver {
	r := fmtmap.New()
	r.MustRegister("icon", fmtmap.Static(memoryIcon), true)
	r.MustRegister("used", bytesOf(func(s *sample) uint64 { return s.mem.Used }, cur), false)
	r.MustRegister("total", bytesOf(func(s *sample) uint64 { return s.mem.Total }, cur), false)
	r.MustRegister("available", bytesOf(func(s *sample) uint64 { return s.mem.Available }, cur), false)
	r.MustRegister("swap-used", bytesOf(func(s *sample) uint64 { return s.mem.SwapUsed }, cur), false)
	r.MustRegister("swap-total", bytesOf(func(s *sample) uint64 { return s.mem.SwapTotal }, cur), false)
	r.MustRegister("cache", bytesOf(func(s *sample) uint64 { return s.mem.Cached }, cur), false)
	r.MustRegister("buffers", bytesOf(func(s *sample) uint64 { return s.mem.Buffers }, cur), false)
	r.MustRegister("percent", fmtmap.ProducerFunc(func() (string, error) {
		return fmt.Sprintf("%.0f%%", cur.mem.UsedPercent()), nil
	}), false)
	r.MustRegister("processes", fmtmap.ProducerFunc(func() (string, error) {
		if cur.procErr == nil {
			return cur.procs.Fragment, nil
		}
		return cur.procs.Fragment + ui.Italic("process list unavailable: "+ui.Escape(cur.procErr.Error())) + "\n", nil
	}), false)
	r.MustRegister("updated", fmtmap.ProducerFunc(func() (string, error) {
		return report.Footer(cur.procs), nil
	}), false)
	return r
}

// iteration reads memory state once and expands the templates from it.
type iteration struct {
	fs        procfs.FS
	tracker   *report.Tracker
	resolver  *fmtmap.Resolver
	templates config.Templates
	cur       *sample
	log       *zap.Logger
}

func (it *iteration) run(context.Context) (waybar.Line, error) {
	mem, err := memory.ReadMemInfo(it.fs)
	if err != nil {
		return waybar.Line{}, err
	}
	procs, procErr := it.tracker.Tooltip()
	if procErr != nil {
		it.log.Warn("keeping previous process rankings", zap.Error(procErr))
	}
	*it.cur = sample{mem: mem, procs: procs, procErr: procErr}

	text, err := it.resolver.Expand(it.templates.Text)
	if err != nil {
		return waybar.Line{}, err
	}
	alt, err := it.resolver.Expand(it.templates.Alt)
	if err != nil {
		return waybar.Line{}, err
	}
	tooltip, err := it.resolver.Expand(it.templates.Tooltip)
	if err != nil {
		return waybar.Line{}, err
	}
	return waybar.Line{
		Text:       text,
		Alt:        alt,
		Tooltip:    tooltip,
		Percentage: int(math.Round(mem.UsedPercent())),
	}, nil
}
