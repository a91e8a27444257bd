package activity

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	mu         sync.Mutex
	last       time.Time
	ok         bool
	dayCount   int
	countCalls int
}

func (f *fakeSource) LastEvent(_ context.Context) (time.Time, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last, f.ok, nil
}

func (f *fakeSource) CountSince(_ context.Context, _ time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.countCalls++
	return f.dayCount, nil
}

func (f *fakeSource) set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.last, f.ok = t, true
}

type fakeAnnouncer struct {
	mu    sync.Mutex
	texts []string
}

func (f *fakeAnnouncer) Enqueue(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
}

func (f *fakeAnnouncer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.texts)
}

func TestMonitorWarnsOnceWhileIdle(t *testing.T) {
	source := &fakeSource{}
	source.set(time.Now().Add(-time.Hour))
	sink := &fakeAnnouncer{}

	m := NewMonitor(source, sink, 30*time.Minute, 5*time.Millisecond)

	for i := 0; i < 5; i++ {
		m.check(context.Background())
	}
	assert.Equal(t, 1, sink.count())

	// The usage summary is gathered once per reminder, not per poll.
	assert.Equal(t, 1, source.countCalls)
}

func TestMonitorRearmsAfterNewActivity(t *testing.T) {
	source := &fakeSource{}
	source.set(time.Now().Add(-time.Hour))
	sink := &fakeAnnouncer{}

	m := NewMonitor(source, sink, 30*time.Minute, 5*time.Millisecond)
	m.check(context.Background())
	assert.Equal(t, 1, sink.count())

	// Fresh activity resets the warning.
	source.set(time.Now())
	m.check(context.Background())

	source.set(time.Now().Add(-time.Hour))
	m.check(context.Background())
	assert.Equal(t, 2, sink.count())
}

func TestMonitorSilentWithoutEvents(t *testing.T) {
	source := &fakeSource{}
	sink := &fakeAnnouncer{}

	m := NewMonitor(source, sink, time.Millisecond, time.Millisecond)
	m.check(context.Background())
	assert.Zero(t, sink.count())
}
