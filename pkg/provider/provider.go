// Package provider runs the poll loop shared by every status bar provider.
package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/psychob/nwc-waybar/pkg/waybar"
)

// Iteration computes one status line.
type Iteration func(ctx context.Context) (waybar.Line, error)

// Runner emits one line per interval. A failed iteration is logged and
// reported with waybar.ErrorLine; it does not stop the loop.
type Runner struct {
	Name     string
	Interval time.Duration
	Once     bool
	Out      *waybar.Emitter
	Log      *zap.Logger
}

// Run emits the first line immediately and then one per interval until ctx is
// done. With Once it returns after the first line, reporting that iteration's
// error. Failing to write a line ends the loop: the bar is gone.
func (r Runner) Run(ctx context.Context, iterate Iteration) error {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	interval := r.Interval
	if interval <= 0 {
		interval = time.Second
	}

	iterErr, err := r.step(ctx, log, iterate)
	if err != nil || r.Once {
		if err == nil {
			err = iterErr
		}
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			if _, err := r.step(ctx, log, iterate); err != nil {
				return err
			}
		}
	}
}

// Fail reports err as the only line of the run and returns it. Providers call
// it for errors found before the loop starts, so the bar shows why it is empty.
func (r Runner) Fail(err error) error {
	if emitErr := r.Out.Emit(waybar.ErrorLine(r.Name, err)); emitErr != nil {
		return errors.Join(err, fmt.Errorf("%s: %w", r.Name, emitErr))
	}
	return err
}

func (r Runner) step(ctx context.Context, log *zap.Logger, iterate Iteration) (iterErr, emitErr error) {
	line, iterErr := iterate(ctx)
	if iterErr != nil {
		log.Warn("iteration failed", zap.String("provider", r.Name), zap.Error(iterErr))
		line = waybar.ErrorLine(r.Name, iterErr)
	}
	if err := r.Out.Emit(line); err != nil {
		return iterErr, fmt.Errorf("%s: %w", r.Name, err)
	}
	return iterErr, nil
}
