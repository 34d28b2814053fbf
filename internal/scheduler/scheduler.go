package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrAlreadyRunning = errors.New("scheduler already running")

// Task is one periodic job. Run receives the tick time reported by the clock.
type Task struct {
	Name   string
	Period time.Duration
	Run    func(ctx context.Context, now time.Time)
	// RunOnStart fires the task once before the first tick
	RunOnStart bool
}

// Scheduler owns a set of independent periodic tasks, each on its own
// ticker and goroutine, all torn down together by Stop.
type Scheduler struct {
	clock  Clock
	logger *zap.Logger
	tasks  []Task

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

func New(clock Clock, logger *zap.Logger, tasks ...Task) *Scheduler {
	return &Scheduler{
		clock:  clock,
		logger: logger,
		tasks:  tasks,
	}
}

// Start launches every task. It returns immediately.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}

	for _, task := range s.tasks {
		if task.Period <= 0 {
			return fmt.Errorf("task %q: period must be positive, got %s", task.Name, task.Period)
		}
		if task.Run == nil {
			return fmt.Errorf("task %q: missing run function", task.Name)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true

	s.logger.Info("Scheduler starting", zap.Int("tasks", len(s.tasks)))

	for _, task := range s.tasks {
		ticker := s.clock.NewTicker(task.Period)
		s.wg.Add(1)
		go s.runTask(ctx, task, ticker)
	}

	return nil
}

// Stop cancels all tasks and waits for them to return
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.cancel()
	s.running = false
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info("Scheduler stopped")
}

// Run starts the scheduler and blocks until ctx is done
func (s *Scheduler) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	s.Stop()
	return nil
}

func (s *Scheduler) runTask(ctx context.Context, task Task, ticker Ticker) {
	defer s.wg.Done()
	defer ticker.Stop()

	if task.RunOnStart {
		s.execute(ctx, task, s.clock.Now())
	}

	for {
		select {
		case now := <-ticker.C():
			s.execute(ctx, task, now)
		case <-ctx.Done():
			s.logger.Debug("Task stopped", zap.String("task", task.Name))
			return
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, task Task, now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Task panicked", zap.String("task", task.Name), zap.Any("panic", r))
		}
	}()
	task.Run(ctx, now)
}
