package speech

import (
	"context"
	"sync"

	"github.com/sandevgo/jarvisbot/internal/core"
	"github.com/sandevgo/jarvisbot/pkg/log"
)

// Queue serializes speech output. Sentences are enqueued as the stream
// produces them and spoken one at a time by a single consumer goroutine,
// so overlapping responses never talk over each other.
type Queue struct {
	speaker core.Speaker
	ch      chan string
	pending sync.WaitGroup
	done    chan struct{}
}

func NewQueue(speaker core.Speaker) *Queue {
	return &Queue{
		speaker: speaker,
		ch:      make(chan string, 64),
		done:    make(chan struct{}),
	}
}

// Start runs the consumer loop until Shutdown closes the queue.
func (q *Queue) Start(ctx context.Context) error {
	defer close(q.done)
	for text := range q.ch {
		if err := q.speaker.Speak(ctx, text); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msg("speech failed")
		}
		q.pending.Done()
	}
	return nil
}

func (q *Queue) Shutdown(ctx context.Context) error {
	close(q.ch)
	select {
	case <-q.done:
	case <-ctx.Done():
	}
	return nil
}

// Enqueue schedules one sentence. It never blocks the producer beyond
// channel capacity.
func (q *Queue) Enqueue(text string) {
	if text == "" {
		return
	}
	q.pending.Add(1)
	q.ch <- text
}

// Wait blocks until every enqueued sentence has been spoken.
func (q *Queue) Wait() {
	q.pending.Wait()
}
