package runner

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/sortrush/sortrush/go/internal/models"
	"github.com/sortrush/sortrush/go/internal/session"
)

// SessionSource defines what the runner needs from the session registry.
type SessionSource interface {
	Snapshot() []*session.Session
}

// Runner drives the countdowns of every running session with a periodic
// Tick. It is the only time-driven input the sessions receive; the clock
// is injected so tests can use a fake.
type Runner struct {
	sessions SessionSource
	clock    clockwork.Clock
	interval time.Duration
}

// New creates a Runner ticking at the given interval.
func New(sessions SessionSource, clock clockwork.Clock, interval time.Duration) *Runner {
	return &Runner{
		sessions: sessions,
		clock:    clock,
		interval: interval,
	}
}

// Run loops until the context is cancelled, reusing one timer and firing
// a tick fan-out each interval.
func (r *Runner) Run(ctx context.Context) error {
	log.Info().Dur("interval", r.interval).Msg("tick runner started")

	timer := r.clock.NewTimer(r.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("tick runner shutting down")
			return nil
		case <-timer.Chan():
			ticked := 0
			for _, s := range r.sessions.Snapshot() {
				if s.Status() == models.SessionStatusRunning {
					s.Tick()
					ticked++
				}
			}
			if ticked > 0 {
				log.Debug().Int("sessions", ticked).Msg("tick dispatched")
			}
			timer.Reset(r.interval)
		}
	}
}
