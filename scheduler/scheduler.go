// Package scheduler runs periodic background tasks. Each task is guarded by a
// weighted semaphore of size one, so a run never starts while another run of
// the same task is still in flight, whether it was started by the ticker or
// triggered on demand.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Task names
const (
	TaskAllocateSweeps = "allocate-sweeps"
	TaskVerifyChain    = "verify-audit-chain"
)

var (
	ErrBusy        = errors.New("task already running")
	ErrUnknownTask = errors.New("unknown task")
)

type task struct {
	name       string
	interval   time.Duration
	runAtStart bool
	fn         func(context.Context) error
	sem        *semaphore.Weighted
}

// Scheduler owns a set of named periodic tasks
type Scheduler struct {
	logger *zap.Logger

	mu      sync.Mutex
	tasks   map[string]*task
	order   []string
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
}

// New creates an empty scheduler
func New(logger *zap.Logger) *Scheduler {
	return &Scheduler{
		logger: logger,
		tasks:  make(map[string]*task),
	}
}

// Add registers a task. A non-positive interval registers the task for
// on-demand runs only. Add must be called before Start.
func (s *Scheduler) Add(name string, interval time.Duration, runAtStart bool, fn func(context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[name]; !exists {
		s.order = append(s.order, name)
	}
	s.tasks[name] = &task{
		name:       name,
		interval:   interval,
		runAtStart: runAtStart,
		fn:         fn,
		sem:        semaphore.NewWeighted(1),
	}
}

// Start launches one loop per periodic task. Loops stop when ctx is cancelled
// or Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	for _, name := range s.order {
		t := s.tasks[name]
		if t.interval <= 0 {
			continue
		}
		s.wg.Add(1)
		go s.loop(ctx, t)
		s.logger.Info("scheduled task started", zap.String("task", t.name), zap.Duration("interval", t.interval))
	}
}

// Stop cancels all loops and waits for in-flight runs, including on-demand
// ones, to finish. No task runs after Stop returns.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	tasks := make([]*task, 0, len(s.order))
	for _, name := range s.order {
		tasks = append(tasks, s.tasks[name])
	}
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()

	// Holding every semaphore blocks until in-flight runs finish and keeps
	// later triggers out
	for _, t := range tasks {
		_ = t.sem.Acquire(context.Background(), 1)
	}
}

// RunExclusive runs fn under the named task's guard. It returns ErrBusy
// without running fn when a run of that task is already in flight.
func (s *Scheduler) RunExclusive(ctx context.Context, name string, fn func(context.Context) error) (err error) {
	s.mu.Lock()
	t, ok := s.tasks[name]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTask, name)
	}

	if !t.sem.TryAcquire(1) {
		return fmt.Errorf("%s: %w", name, ErrBusy)
	}
	defer t.sem.Release(1)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %s panicked: %v", name, r)
		}
	}()
	return fn(ctx)
}

// Trigger runs the named task's own function now, unless it is in flight
func (s *Scheduler) Trigger(ctx context.Context, name string) error {
	s.mu.Lock()
	t, ok := s.tasks[name]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTask, name)
	}
	return s.RunExclusive(ctx, name, t.fn)
}

func (s *Scheduler) loop(ctx context.Context, t *task) {
	defer s.wg.Done()

	if t.runAtStart {
		s.tick(ctx, t)
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx, t)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, t *task) {
	start := time.Now()
	err := s.RunExclusive(ctx, t.name, t.fn)
	switch {
	case errors.Is(err, ErrBusy):
		s.logger.Debug("skipping tick, previous run still in flight", zap.String("task", t.name))
	case err != nil && ctx.Err() != nil:
		s.logger.Debug("task interrupted by shutdown", zap.String("task", t.name), zap.Error(err))
	case err != nil:
		s.logger.Error("scheduled task failed", zap.String("task", t.name), zap.Error(err))
	default:
		s.logger.Debug("scheduled task finished", zap.String("task", t.name), zap.Duration("elapsed", time.Since(start)))
	}
}
