package puzzles

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Rotator fires a callback at UTC midnight so the caller can refresh
// whatever it caches as "today's puzzle". Built on
// github.com/robfig/cron/v3 (pulled from the retrieved
// smilemakc/mbflow stack) instead of a hand-rolled ticker loop.
type Rotator struct {
	cron *cron.Cron
}

// NewRotator builds a Rotator that has not yet started.
func NewRotator() *Rotator {
	return &Rotator{cron: cron.New(cron.WithLocation(time.UTC))}
}

// OnMidnightUTC registers fn to run once per day at 00:00 UTC.
func (r *Rotator) OnMidnightUTC(fn func()) error {
	_, err := r.cron.AddFunc("0 0 * * *", func() {
		log.Info().Msg("rotating daily puzzle")
		fn()
	})
	return err
}

// Start begins the cron scheduler in the background.
func (r *Rotator) Start() {
	r.cron.Start()
}

// Stop halts the scheduler, waiting for any in-flight job to finish.
func (r *Rotator) Stop() {
	<-r.cron.Stop().Done()
}
