package activity

import (
	"context"
	"time"

	"github.com/sandevgo/jarvisbot/pkg/log"
)

// EventSource reports when and how often the assistant was used.
type EventSource interface {
	LastEvent(ctx context.Context) (time.Time, bool, error)
	CountSince(ctx context.Context, cutoff time.Time) (int, error)
}

// Announcer receives the idle reminder, usually the speech queue.
type Announcer interface {
	Enqueue(text string)
}

const idleReminder = "Sir, you have been away for a while. I am still here if you need anything."

// Monitor watches the activity log and speaks one reminder when the
// assistant has been idle past the threshold. It re-arms as soon as a new
// event arrives, so a long absence produces one reminder, not one per poll.
type Monitor struct {
	source    EventSource
	announcer Announcer
	warnAfter time.Duration
	pollEvery time.Duration

	done   chan struct{}
	warned bool
}

func NewMonitor(source EventSource, announcer Announcer, warnAfter, pollEvery time.Duration) *Monitor {
	return &Monitor{
		source:    source,
		announcer: announcer,
		warnAfter: warnAfter,
		pollEvery: pollEvery,
		done:      make(chan struct{}),
	}
}

func (m *Monitor) Start(ctx context.Context) error {
	ticker := time.NewTicker(m.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return nil
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

func (m *Monitor) Shutdown(_ context.Context) error {
	close(m.done)
	return nil
}

func (m *Monitor) check(ctx context.Context) {
	last, ok, err := m.source.LastEvent(ctx)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("could not read activity log")
		return
	}
	if !ok {
		return
	}

	idle := time.Since(last)
	if idle < m.warnAfter {
		m.warned = false
		return
	}
	if m.warned {
		return
	}
	m.warned = true

	dayCount, err := m.source.CountSince(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("could not count recent activity")
	}
	log.FromCtx(ctx).Info().
		Dur("idle", idle).
		Int("events_last_24h", dayCount).
		Msg("idle threshold crossed")
	m.announcer.Enqueue(idleReminder)
}
