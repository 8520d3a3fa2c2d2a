// Package daemon runs the background scheduler that drives the daily
// transitions while no interactive command is running.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"daykeep/pkg/app"
	"daykeep/pkg/timeutil"
)

// midnightSpec fires at 00:00 local time every day.
const midnightSpec = "0 0 * * *"

// Daemon schedules Midnight at the top of every day and re-checks on a coarse
// interval to catch wall-clock jumps (suspend, DST, manual clock changes).
type Daemon struct {
	Service *app.Service

	// Interval is the re-check cadence, in the accepted duration syntax.
	// Empty means the default.
	Interval string
}

func (n *Daemon) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("daemon: no service configured")
	}
	every, canonical, err := timeutil.ParseWindow(n.Interval)
	if err != nil {
		return fmt.Errorf("daemon: bad interval: %w", err)
	}

	tick := func() {
		if err := n.Service.Midnight(ctx); err != nil {
			log.Printf("daemon: midnight check failed: %v", err)
		}
	}

	// Catch up immediately in case the process was down over a boundary.
	tick()

	c := cron.New()
	if _, err := c.AddFunc(midnightSpec, tick); err != nil {
		return fmt.Errorf("daemon: schedule: %w", err)
	}
	c.Start()
	defer c.Stop()

	log.Printf("daemon: midnight rollover scheduled, re-checking every %s", canonical)

	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			tick()
		}
	}
}
