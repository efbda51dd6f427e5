package staging

import (
	"time"

	"github.com/gofiber/fiber/v2/log"
	cron "github.com/robfig/cron/v3"
)

// Sweeper periodically clears stale files out of the staging directory.
type Sweeper struct {
	cron    *cron.Cron
	staging *Staging
	maxAge  time.Duration
}

// NewSweeper schedules a sweep of st on the given cron expression, removing
// staged files older than maxAge.
func NewSweeper(st *Staging, schedule string, maxAge time.Duration) (*Sweeper, error) {
	s := &Sweeper{
		cron:    cron.New(),
		staging: st,
		maxAge:  maxAge,
	}
	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return nil, err
	}
	return s, nil
}

// Start begins running scheduled sweeps in the background.
func (s *Sweeper) Start() {
	s.cron.Start()
	log.Infof("Staging sweeper started (max age %s)", s.maxAge)
}

// Stop halts the schedule. A sweep already in progress finishes.
func (s *Sweeper) Stop() {
	s.cron.Stop()
}

func (s *Sweeper) sweep() {
	removed, err := s.staging.SweepOlderThan(s.maxAge)
	if err != nil {
		log.Warnf("Staging sweep failed: %v", err)
		return
	}
	if removed > 0 {
		log.Infof("Staging sweep removed %d stale file(s)", removed)
	}
}
