package application

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/bnema/rag-cli/internal/metrics"
	"github.com/bnema/rag-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testTaskID  = domain.TaskID("3f0c2a4e-8b1d-4c6a-9e2f-1a2b3c4d5e6f")
	otherTaskID = domain.TaskID("9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d")
	testTick    = 5 * time.Millisecond
	waitFor     = 2 * time.Second
)

type fetchResult struct {
	record domain.TaskRecord
	err    error
}

// scriptedFetcher replays results in order and repeats the last one.
type scriptedFetcher struct {
	mu       sync.Mutex
	results  []fetchResult
	calls    int
	inFlight atomic.Int32
	maxSeen  atomic.Int32
	delay    time.Duration
	gate     chan struct{}
}

func (f *scriptedFetcher) GetTask(ctx context.Context, id domain.TaskID) (domain.TaskRecord, error) {
	current := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		seen := f.maxSeen.Load()
		if current <= seen || f.maxSeen.CompareAndSwap(seen, current) {
			break
		}
	}

	if f.gate != nil {
		<-f.gate
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	idx := f.calls
	f.calls++
	if len(f.results) == 0 {
		return domain.TaskRecord{ID: id, Status: domain.TaskStatusRunning}, nil
	}
	if idx >= len(f.results) {
		idx = len(f.results) - 1
	}
	return f.results[idx].record, f.results[idx].err
}

func (f *scriptedFetcher) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type updateLog struct {
	mu      sync.Mutex
	updates []TaskUpdate
}

func (l *updateLog) add(update TaskUpdate) {
	l.mu.Lock()
	l.updates = append(l.updates, update)
	l.mu.Unlock()
}

func (l *updateLog) snapshot() []TaskUpdate {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]TaskUpdate(nil), l.updates...)
}

func waitDone(t *testing.T, handle *PollHandle) {
	t.Helper()
	select {
	case <-handle.Done():
	case <-time.After(waitFor):
		t.Fatal("poll did not stop")
	}
}

func TestTaskPollerPublishesQueuedRecordSynchronously(t *testing.T) {
	fetcher := &scriptedFetcher{gate: make(chan struct{})}
	poller := NewTaskPoller(fetcher, WithPollInterval(testTick))
	var log updateLog

	handle := poller.Start(context.Background(), testTaskID, log.add)
	defer func() {
		handle.Stop()
		close(fetcher.gate)
		waitDone(t, handle)
	}()

	updates := log.snapshot()
	require.Len(t, updates, 1)
	assert.Equal(t, domain.QueuedTask(testTaskID), updates[0].Record)
	assert.Equal(t, "Task queued...", updates[0].Record.Message)
	assert.NoError(t, updates[0].Err)
	assert.False(t, updates[0].Terminal())
}

func TestTaskPollerStopsAfterTerminalStatus(t *testing.T) {
	fetcher := &scriptedFetcher{results: []fetchResult{
		{record: domain.TaskRecord{ID: testTaskID, Status: domain.TaskStatusRunning, Progress: 40}},
		{record: domain.TaskRecord{ID: testTaskID, Status: domain.TaskStatusCompleted, Progress: 100}},
	}}
	m := metrics.New()
	poller := NewTaskPoller(fetcher, WithPollInterval(testTick), WithPollMetrics(m))
	var log updateLog

	handle := poller.Start(context.Background(), testTaskID, log.add)
	waitDone(t, handle)

	callsAtStop := fetcher.Calls()
	time.Sleep(10 * testTick)
	assert.Equal(t, callsAtStop, fetcher.Calls(), "no fetch after a terminal status")
	assert.Equal(t, 2, callsAtStop)

	updates := log.snapshot()
	require.Len(t, updates, 3)
	assert.Equal(t, domain.TaskStatusPending, updates[0].Record.Status)
	assert.Equal(t, 40, updates[1].Record.Progress)
	assert.True(t, updates[2].Terminal())
	assert.True(t, updates[2].RefreshListing())
	assert.True(t, handle.Stopped())

	assert.Equal(t, 1.0, pollCount(t, m, metrics.PollSnapshot))
	assert.Equal(t, 1.0, pollCount(t, m, metrics.PollTerminal))
}

func TestTaskPollerFailedTaskDoesNotRefreshListing(t *testing.T) {
	fetcher := &scriptedFetcher{results: []fetchResult{
		{record: domain.TaskRecord{ID: testTaskID, Status: domain.TaskStatusFailed, Error: "parse error"}},
	}}
	poller := NewTaskPoller(fetcher, WithPollInterval(testTick))
	var log updateLog

	handle := poller.Start(context.Background(), testTaskID, log.add)
	waitDone(t, handle)

	updates := log.snapshot()
	require.Len(t, updates, 2)
	last := updates[1]
	assert.True(t, last.Terminal())
	assert.False(t, last.RefreshListing())
	assert.False(t, last.PollingLost())
	assert.NoError(t, last.Err)
	assert.Equal(t, "parse error", last.Record.DisplayMessage())
}

func TestTaskPollerFetchErrorPublishesLostRecord(t *testing.T) {
	fetchErr := errors.New("connection refused")
	fetcher := &scriptedFetcher{results: []fetchResult{{err: fetchErr}}}
	poller := NewTaskPoller(fetcher, WithPollInterval(testTick))
	var log updateLog

	handle := poller.Start(context.Background(), testTaskID, log.add)
	waitDone(t, handle)

	time.Sleep(5 * testTick)
	assert.Equal(t, 1, fetcher.Calls(), "no retry after a lost poll")

	updates := log.snapshot()
	require.Len(t, updates, 2)
	lost := updates[1]
	assert.Equal(t, domain.TaskStatusLost, lost.Record.Status)
	assert.Equal(t, testTaskID, lost.Record.ID)
	assert.True(t, lost.PollingLost())
	assert.ErrorIs(t, lost.Err, domain.ErrPollingLost)
	assert.ErrorIs(t, lost.Err, fetchErr)
	assert.True(t, lost.Terminal())
	assert.False(t, lost.RefreshListing())
}

func TestTaskPollerSecondStartStopsFirst(t *testing.T) {
	fetcher := &scriptedFetcher{}
	poller := NewTaskPoller(fetcher, WithPollInterval(testTick))
	var first, second updateLog

	firstHandle := poller.Start(context.Background(), testTaskID, first.add)
	secondHandle := poller.Start(context.Background(), otherTaskID, second.add)
	defer func() {
		poller.Stop()
		waitDone(t, secondHandle)
	}()

	waitDone(t, firstHandle)
	assert.True(t, firstHandle.Stopped())
	assert.False(t, secondHandle.Stopped())

	countAfterStop := len(first.snapshot())
	require.Eventually(t, func() bool { return len(second.snapshot()) >= 3 }, waitFor, testTick)
	assert.Equal(t, countAfterStop, len(first.snapshot()), "stopped poll must not publish")

	for _, update := range second.snapshot() {
		assert.Equal(t, otherTaskID, update.Record.ID)
	}
}

func TestTaskPollerStopFromCallback(t *testing.T) {
	fetcher := &scriptedFetcher{}
	poller := NewTaskPoller(fetcher, WithPollInterval(testTick))
	var log updateLog

	var handle *PollHandle
	var handleMu sync.Mutex
	handleMu.Lock()
	handle = poller.Start(context.Background(), testTaskID, func(update TaskUpdate) {
		log.add(update)
		if update.Record.Status == domain.TaskStatusRunning {
			handleMu.Lock()
			h := handle
			handleMu.Unlock()
			h.Stop()
			h.Stop()
		}
	})
	handleMu.Unlock()

	waitDone(t, handle)
	updates := log.snapshot()
	require.Len(t, updates, 2)
	assert.Equal(t, domain.TaskStatusRunning, updates[1].Record.Status)
}

func TestTaskPollerDropsResponseArrivingAfterStop(t *testing.T) {
	fetcher := &scriptedFetcher{gate: make(chan struct{})}
	poller := NewTaskPoller(fetcher, WithPollInterval(testTick))
	var log updateLog

	handle := poller.Start(context.Background(), testTaskID, log.add)
	require.Eventually(t, func() bool { return fetcher.inFlight.Load() == 1 }, waitFor, time.Millisecond)

	handle.Stop()
	close(fetcher.gate)
	waitDone(t, handle)

	assert.Len(t, log.snapshot(), 1, "only the queued placeholder")
}

func TestTaskPollerContextCancelStops(t *testing.T) {
	fetcher := &scriptedFetcher{}
	poller := NewTaskPoller(fetcher, WithPollInterval(testTick))
	ctx, cancel := context.WithCancel(context.Background())

	handle := poller.Start(ctx, testTaskID, nil)
	cancel()
	waitDone(t, handle)
	assert.True(t, handle.Stopped())
}

func TestTaskPollerFetchesSequentially(t *testing.T) {
	fetcher := &scriptedFetcher{delay: 4 * testTick}
	poller := NewTaskPoller(fetcher, WithPollInterval(testTick))

	handle := poller.Start(context.Background(), testTaskID, nil)
	require.Eventually(t, func() bool { return fetcher.Calls() >= 3 }, waitFor, testTick)
	handle.Stop()
	waitDone(t, handle)

	assert.Equal(t, int32(1), fetcher.maxSeen.Load())
}

func TestTaskPollerClampsProgressAndFillsID(t *testing.T) {
	fetcher := &scriptedFetcher{results: []fetchResult{
		{record: domain.TaskRecord{Status: domain.TaskStatusCompleted, Progress: 140}},
	}}
	clock := mocks.NewMockClock(t)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(at)
	poller := NewTaskPoller(fetcher, WithPollInterval(testTick), WithPollClock(clock))
	var log updateLog

	handle := poller.Start(context.Background(), testTaskID, log.add)
	waitDone(t, handle)

	updates := log.snapshot()
	require.Len(t, updates, 2)
	assert.Equal(t, testTaskID, updates[1].Record.ID)
	assert.Equal(t, 100, updates[1].Record.Progress)
	assert.Equal(t, at, updates[1].ReceivedAt)
}

func TestTaskPollerStopWithoutActivePollIsNoop(t *testing.T) {
	poller := NewTaskPoller(&scriptedFetcher{})
	assert.NotPanics(t, poller.Stop)
	assert.Equal(t, DefaultPollInterval, poller.Interval())

	var handle *PollHandle
	assert.NotPanics(t, handle.Stop)
}

func pollCount(t *testing.T, m *metrics.Metrics, outcome string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != "rag_tasks_polls_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "outcome" && label.GetValue() == outcome {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}
