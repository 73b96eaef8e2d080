package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/rag-cli/internal/domain"
	"github.com/bnema/rag-cli/internal/logx"
	"github.com/bnema/rag-cli/internal/metrics"
	"github.com/bnema/rag-cli/internal/ports"
)

const DefaultPollInterval = 1500 * time.Millisecond

// TaskFetcher is the part of ports.TaskAPI the poller needs.
type TaskFetcher interface {
	GetTask(ctx context.Context, id domain.TaskID) (domain.TaskRecord, error)
}

// TaskUpdate is one record delivered to a poll callback.
type TaskUpdate struct {
	Record     domain.TaskRecord
	Err        error
	ReceivedAt time.Time
}

func (u TaskUpdate) Terminal() bool {
	return u.Record.Status.Terminal()
}

// RefreshListing reports whether the document listing should be fetched again.
func (u TaskUpdate) RefreshListing() bool {
	return u.Err == nil && u.Record.Status == domain.TaskStatusCompleted
}

func (u TaskUpdate) PollingLost() bool {
	return errors.Is(u.Err, domain.ErrPollingLost)
}

type PollerOption func(*TaskPoller)

func WithPollInterval(interval time.Duration) PollerOption {
	return func(p *TaskPoller) {
		if interval > 0 {
			p.interval = interval
		}
	}
}

func WithPollClock(clock ports.Clock) PollerOption {
	return func(p *TaskPoller) {
		if clock != nil {
			p.clock = clock
		}
	}
}

func WithPollMetrics(m *metrics.Metrics) PollerOption {
	return func(p *TaskPoller) {
		p.metrics = m
	}
}

// TaskPoller tracks at most one task at a time. Starting a new poll stops
// the previous one.
type TaskPoller struct {
	fetcher  TaskFetcher
	interval time.Duration
	clock    ports.Clock
	metrics  *metrics.Metrics

	mu     sync.Mutex
	active *PollHandle
}

func NewTaskPoller(fetcher TaskFetcher, opts ...PollerOption) *TaskPoller {
	p := &TaskPoller{
		fetcher:  fetcher,
		interval: DefaultPollInterval,
		clock:    ports.SystemClock{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *TaskPoller) Interval() time.Duration {
	return p.interval
}

// PollHandle controls one running poll.
type PollHandle struct {
	id       domain.TaskID
	cancel   context.CancelFunc
	done     chan struct{}
	stopped  atomic.Bool
	onUpdate func(TaskUpdate)
}

func (h *PollHandle) TaskID() domain.TaskID {
	return h.id
}

// Stop ends the poll. It is idempotent and safe to call from inside the
// update callback; updates that arrive afterwards are dropped.
func (h *PollHandle) Stop() {
	if h == nil {
		return
	}
	h.stopped.Store(true)
	h.cancel()
}

func (h *PollHandle) Stopped() bool {
	return h.stopped.Load()
}

// Done is closed once the polling goroutine has exited.
func (h *PollHandle) Done() <-chan struct{} {
	return h.done
}

func (h *PollHandle) deliver(update TaskUpdate) {
	if h.stopped.Load() {
		return
	}
	if h.onUpdate != nil {
		h.onUpdate(update)
	}
}

// Start begins polling id. The queued placeholder is delivered before Start
// returns; later updates arrive on the polling goroutine.
func (p *TaskPoller) Start(ctx context.Context, id domain.TaskID, onUpdate func(TaskUpdate)) *PollHandle {
	pollCtx, cancel := context.WithCancel(ctx)
	handle := &PollHandle{
		id:       id,
		cancel:   cancel,
		done:     make(chan struct{}),
		onUpdate: onUpdate,
	}

	p.mu.Lock()
	previous := p.active
	p.active = handle
	p.mu.Unlock()
	previous.Stop()

	logx.WithTask(logx.Ctx(ctx), id).Debug("task poll started", "interval", p.interval.String())
	handle.deliver(TaskUpdate{Record: domain.QueuedTask(id), ReceivedAt: p.clock.Now()})

	go p.run(pollCtx, handle)
	return handle
}

// Stop stops the active poll, if any.
func (p *TaskPoller) Stop() {
	p.mu.Lock()
	active := p.active
	p.active = nil
	p.mu.Unlock()
	active.Stop()
}

func (p *TaskPoller) release(handle *PollHandle) {
	p.mu.Lock()
	if p.active == handle {
		p.active = nil
	}
	p.mu.Unlock()
}

func (p *TaskPoller) run(ctx context.Context, handle *PollHandle) {
	defer close(handle.done)
	defer p.release(handle)
	defer handle.Stop()

	log := logx.WithTask(logx.Ctx(ctx), handle.id)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("task poll stopped")
			return
		case <-ticker.C:
		}

		record, err := p.fetcher.GetTask(ctx, handle.id)
		if handle.stopped.Load() || ctx.Err() != nil {
			log.Debug("task poll stopped")
			return
		}
		now := p.clock.Now()

		if err != nil {
			p.metrics.IncPoll(metrics.PollLost)
			log.Warn("task poll lost", "error", err)
			handle.deliver(TaskUpdate{
				Record:     lostRecord(handle.id, err),
				Err:        fmt.Errorf("%w: %w", domain.ErrPollingLost, err),
				ReceivedAt: now,
			})
			return
		}

		if record.ID == "" {
			record.ID = handle.id
		}
		record.Progress = domain.ClampProgress(record.Progress)

		if record.Status.Terminal() {
			p.metrics.IncPoll(metrics.PollTerminal)
			log.Debug("task reached terminal status", "status", string(record.Status))
			handle.deliver(TaskUpdate{Record: record, ReceivedAt: now})
			return
		}

		p.metrics.IncPoll(metrics.PollSnapshot)
		handle.deliver(TaskUpdate{Record: record, ReceivedAt: now})
	}
}

func lostRecord(id domain.TaskID, err error) domain.TaskRecord {
	return domain.TaskRecord{
		ID:      id,
		Status:  domain.TaskStatusLost,
		Message: "Lost contact with the task",
		Error:   err.Error(),
	}
}
