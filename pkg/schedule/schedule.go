// Package schedule runs named callbacks at fixed intervals on a single
// goroutine. It drives the headless stream the way bubbletea tick commands
// drive the dashboard.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Task is one repeating callback.
type Task struct {
	Name     string
	Interval time.Duration
	Fn       func(now time.Time)
}

// Scheduler fires every task once when Run starts and then each time its
// interval elapses. Callbacks never overlap: they run one after another on
// the goroutine that called Run.
type Scheduler struct {
	clock  clockwork.Clock
	logger *slog.Logger

	mu      sync.Mutex
	tasks   []Task
	running bool
}

// New creates a Scheduler reading time from clock. A nil clock uses the
// real clock and a nil logger uses slog.Default().
func New(clock clockwork.Clock, logger *slog.Logger) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{clock: clock, logger: logger}
}

// Add registers a task. Tasks must be added before Run.
func (s *Scheduler) Add(name string, interval time.Duration, fn func(time.Time)) error {
	if interval <= 0 {
		return fmt.Errorf("schedule: task %q: interval must be positive, got %s", name, interval)
	}
	if fn == nil {
		return fmt.Errorf("schedule: task %q: nil callback", name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return fmt.Errorf("schedule: task %q added while running", name)
	}
	s.tasks = append(s.tasks, Task{Name: name, Interval: interval, Fn: fn})
	return nil
}

// Tasks returns a copy of the registered tasks.
func (s *Scheduler) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Task(nil), s.tasks...)
}

type firing struct {
	task int
	at   time.Time
}

// Run executes the tasks until ctx is cancelled, then stops every ticker
// and returns nil. It is an error to call Run with no tasks or while
// another Run is active.
func (s *Scheduler) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("schedule: already running")
	}
	if len(s.tasks) == 0 {
		s.mu.Unlock()
		return errors.New("schedule: no tasks")
	}
	s.running = true
	tasks := append([]Task(nil), s.tasks...)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	now := s.clock.Now()
	for _, t := range tasks {
		if ctx.Err() != nil {
			return nil
		}
		t.Fn(now)
	}

	ctx, cancel := context.WithCancel(ctx)
	fired := make(chan firing)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	for i, t := range tasks {
		ticker := s.clock.NewTicker(t.Interval)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case at := <-ticker.Chan():
					select {
					case fired <- firing{task: i, at: at}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	s.logger.Debug("scheduler started", "tasks", len(tasks))
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("scheduler stopped")
			return nil
		case f := <-fired:
			// A task may have cancelled ctx while this firing was queued.
			if ctx.Err() != nil {
				s.logger.Debug("scheduler stopped")
				return nil
			}
			tasks[f.task].Fn(f.at)
		}
	}
}
