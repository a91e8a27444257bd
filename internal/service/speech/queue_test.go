package speech

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSpeaker struct {
	mu     sync.Mutex
	spoken []string
}

func (r *recordingSpeaker) Speak(_ context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spoken = append(r.spoken, text)
	return nil
}

func TestQueueSpeaksInOrder(t *testing.T) {
	rec := &recordingSpeaker{}
	q := NewQueue(rec)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = q.Start(ctx) }()

	q.Enqueue("First sentence here.")
	q.Enqueue("Second sentence here.")
	q.Enqueue("Third sentence here.")
	q.Wait()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []string{
		"First sentence here.",
		"Second sentence here.",
		"Third sentence here.",
	}, rec.spoken)
}

func TestQueueWaitReturnsOnlyWhenDrained(t *testing.T) {
	rec := &recordingSpeaker{}
	q := NewQueue(rec)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = q.Start(ctx) }()

	for i := 0; i < 10; i++ {
		q.Enqueue("One of ten sentences.")
	}
	q.Wait()

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Len(t, rec.spoken, 10)
}

func TestQueueShutdownStopsConsumer(t *testing.T) {
	q := NewQueue(&recordingSpeaker{})

	ctx := context.Background()
	go func() { _ = q.Start(ctx) }()

	sctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, q.Shutdown(sctx))

	select {
	case <-q.done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not exit after shutdown")
	}
}
