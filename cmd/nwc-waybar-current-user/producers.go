package main

import (
	"context"
	"time"

	"github.com/psychob/nwc-waybar/pkg/config"
	"github.com/psychob/nwc-waybar/pkg/duration"
	"github.com/psychob/nwc-waybar/pkg/fmtmap"
	"github.com/psychob/nwc-waybar/pkg/host"
	"github.com/psychob/nwc-waybar/pkg/session"
	"github.com/psychob/nwc-waybar/pkg/waybar"
)

const (
	userIcon  = "\uf007"
	userClass = "nwc-user"
)

// Seams for tests.
var (
	now           = time.Now
	bootUptime    = host.Uptime
	lookupAccount = host.Account
)

type userProducers struct {
	// ctx bounds session lookups; producers take no arguments.
	ctx           context.Context
	uid           int
	session       session.Source
	uptimeDynamic bool
	bootDynamic   bool
}

func (p *userProducers) uptime() (string, error) {
	start, err := p.session.StartTime(p.ctx)
	if err != nil {
		return "", err
	}
	return duration.Since(start, now(), p.uptimeDynamic), nil
}

func (p *userProducers) boottime() (string, error) {
	up, err := bootUptime()
	if err != nil {
		return "", err
	}
	return duration.Format(up, p.bootDynamic), nil
}

func (p *userProducers) name() (string, error) {
	acct, err := lookupAccount(p.uid)
	if err != nil {
		return "", err
	}
	return acct.Username, nil
}

func (p *userProducers) fullName() (string, error) {
	acct, err := lookupAccount(p.uid)
	if err != nil {
		return "", err
	}
	return acct.FullName, nil
}

// newResolver registers the placeholders of this provider. Account data never
// changes while we run, uptimes are recomputed on every expansion.
func newResolver(p *userProducers) *fmtmap.Resolver {
	r := fmtmap.New()
	r.MustRegister("uptime", fmtmap.ProducerFunc(p.uptime), false)
	r.MustRegister("boottime", fmtmap.ProducerFunc(p.boottime), false)
	r.MustRegister("name", fmtmap.ProducerFunc(p.name), true)
	r.MustRegister("full-name", fmtmap.ProducerFunc(p.fullName), true)
	r.MustRegister("icon", fmtmap.Static(userIcon), true)
	return r
}

func expandLine(r *fmtmap.Resolver, t config.Templates) (waybar.Line, error) {
	text, err := r.Expand(t.Text)
	if err != nil {
		return waybar.Line{}, err
	}
	alt, err := r.Expand(t.Alt)
	if err != nil {
		return waybar.Line{}, err
	}
	tooltip, err := r.Expand(t.Tooltip)
	if err != nil {
		return waybar.Line{}, err
	}
	return waybar.Line{Text: text, Alt: alt, Tooltip: tooltip, Class: userClass}, nil
}
