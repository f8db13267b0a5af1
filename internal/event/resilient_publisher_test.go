package event

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jauphraux/SoBApp/internal/domain"
	"github.com/Jauphraux/SoBApp/internal/testing/leaktest"
)

var errBusDown = errors.New("bus unavailable")

// flakyBus records every delivery attempt and fails while failWhen says so
type flakyBus struct {
	mu       sync.Mutex
	attempts []Event
	stamps   []time.Time
	failWhen func(n int, evt Event) bool
}

func (b *flakyBus) Publish(_ context.Context, evt Event) error {
	b.mu.Lock()
	b.attempts = append(b.attempts, evt)
	b.stamps = append(b.stamps, time.Now())
	n := len(b.attempts)
	b.mu.Unlock()

	if b.failWhen != nil && b.failWhen(n, evt) {
		return errBusDown
	}
	return nil
}

func (b *flakyBus) Subscribe(Type, Handler) {}

func (b *flakyBus) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.attempts)
}

func (b *flakyBus) times() []time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]time.Time(nil), b.stamps...)
}

func alwaysFail(int, Event) bool { return true }

func newTestPublisher(t *testing.T, bus Bus, retries int, delay time.Duration) (*ResilientPublisher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	rp, err := NewResilientPublisher(bus, retries, delay, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rp.Shutdown(context.Background()) })
	return rp, path
}

func storedEvent(carried int) Event {
	return NewDarkStoneEvent(DarkStoneStored, 7, 3, 11, carried)
}

func TestResilientPublisher_DeliversFirstTime(t *testing.T) {
	bus := &flakyBus{}
	rp, path := newTestPublisher(t, bus, 3, 20*time.Millisecond)

	created := NewCharacterEvent(CharacterCreated, domain.Character{ID: 7, Name: "Marshal Reyes", ClassName: "Marshal"})
	rp.PublishWithRetry(context.Background(), created)

	assert.Equal(t, 1, bus.count())
	require.NoError(t, rp.Shutdown(context.Background()))

	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResilientPublisher_RecoversOnRetry(t *testing.T) {
	bus := &flakyBus{failWhen: func(n int, _ Event) bool { return n == 1 }}
	rp, path := newTestPublisher(t, bus, 3, 20*time.Millisecond)

	rp.PublishWithRetry(context.Background(), storedEvent(4))

	require.Eventually(t, func() bool { return bus.count() == 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	assert.Empty(t, entries, "a recovered event is not dead-lettered")
	assert.Equal(t, 2, bus.count())
}

func TestResilientPublisher_ExhaustedRetriesAreDeadLettered(t *testing.T) {
	bus := &flakyBus{failWhen: alwaysFail}
	rp, path := newTestPublisher(t, bus, 3, 10*time.Millisecond)

	rp.PublishWithRetry(context.Background(), storedEvent(5))

	// first attempt plus three retries
	require.Eventually(t, func() bool { return bus.count() == 4 }, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
	assert.Equal(t, DarkStoneStored, entry.Event.Type)
	assert.Equal(t, 3, entry.Attempts)
	assert.Equal(t, errBusDown.Error(), entry.LastError)
	assert.NotEmpty(t, entry.Event.ID)

	payload, err := DecodePayload[domain.DarkStonePayload](entry.Event.Payload)
	require.NoError(t, err)
	assert.Equal(t, int64(7), payload.CharacterID)
	assert.Equal(t, int64(3), payload.ContainerID)
	assert.Equal(t, 5, payload.Carried)
}

func TestResilientPublisher_FullQueueDeadLettersImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	// no worker and a single slot, so only the first failure is queued
	rp := &ResilientPublisher{
		bus:        &flakyBus{failWhen: alwaysFail},
		retryQueue: make(chan retryEntry, 1),
		deadLetter: dl,
		maxRetries: 3,
		retryDelay: time.Hour,
		shutdown:   make(chan struct{}),
	}

	for carried := 1; carried <= 3; carried++ {
		rp.PublishWithRetry(context.Background(), storedEvent(carried))
	}

	assert.Len(t, rp.retryQueue, 1)
	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, 1, e.Attempts)
	}
	require.NoError(t, rp.Shutdown(context.Background()))
}

func TestResilientPublisher_ShutdownFlushesPendingRetries(t *testing.T) {
	failedOnce := map[string]bool{}
	var mu sync.Mutex
	bus := &flakyBus{failWhen: func(_ int, evt Event) bool {
		mu.Lock()
		defer mu.Unlock()
		if failedOnce[evt.ID] {
			return false
		}
		failedOnce[evt.ID] = true
		return true
	}}
	rp, path := newTestPublisher(t, bus, 5, time.Hour)

	pending := []Event{
		NewRuleRejectedEvent(7, "equip", "Both hands are already in use"),
		NewCatalogSyncedEvent("items", 12, 0),
		storedEvent(2),
	}
	for _, evt := range pending {
		rp.PublishWithRetry(context.Background(), evt)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	assert.Equal(t, 6, bus.count(), "each event gets its final attempt at shutdown")
	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResilientPublisher_BackoffDoubles(t *testing.T) {
	base := 40 * time.Millisecond
	bus := &flakyBus{failWhen: func(n int, _ Event) bool { return n < 3 }}
	rp, _ := newTestPublisher(t, bus, 5, base)

	rp.PublishWithRetry(context.Background(), storedEvent(1))
	require.Eventually(t, func() bool { return bus.count() == 3 }, 2*time.Second, 5*time.Millisecond)

	stamps := bus.times()
	first := stamps[1].Sub(stamps[0])
	second := stamps[2].Sub(stamps[1])
	assert.InDelta(t, base.Milliseconds(), first.Milliseconds(), 30)
	assert.InDelta(t, (2 * base).Milliseconds(), second.Milliseconds(), 30)
}

func TestResilientPublisher_ConcurrentPublishers(t *testing.T) {
	bus := &flakyBus{}
	rp, _ := newTestPublisher(t, bus, 3, 10*time.Millisecond)

	const characters, eventsEach = 8, 6
	var wg sync.WaitGroup
	for c := 1; c <= characters; c++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			for i := 0; i < eventsEach; i++ {
				rp.PublishWithRetry(context.Background(), NewDarkStoneEvent(DarkStoneRetrieved, id, 1, 1, i))
			}
		}(int64(c))
	}
	wg.Wait()

	assert.Equal(t, characters*eventsEach, bus.count())
}

func TestResilientPublisher_PublishAfterShutdownDeadLetters(t *testing.T) {
	bus := &flakyBus{failWhen: alwaysFail}
	rp, path := newTestPublisher(t, bus, 3, time.Hour)

	rp.PublishWithRetry(context.Background(), storedEvent(1))
	require.NoError(t, rp.Shutdown(context.Background()))
	require.NoError(t, rp.Shutdown(context.Background()), "Shutdown is idempotent")

	rp.PublishWithRetry(context.Background(), storedEvent(2))

	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 3, bus.count(), "queued event gets one final attempt, the late one only its first")
}

func TestResilientPublisher_ShutdownStopsWorker(t *testing.T) {
	leaktest.VerifyNone(t, func() {
		bus := &flakyBus{failWhen: func(n int, _ Event) bool { return n == 1 }}
		rp, err := NewResilientPublisher(bus, 3, 10*time.Millisecond, filepath.Join(t.TempDir(), "deadletter.jsonl"))
		require.NoError(t, err)

		rp.PublishWithRetry(context.Background(), storedEvent(1))
		require.NoError(t, rp.Shutdown(context.Background()))
	})
}
