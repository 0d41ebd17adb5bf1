package model

import (
	"sync"
	"time"
)

// Scheduler runs fn once after d. The returned function cancels the call if it has not run yet.
// fn must not be called before AfterFunc returns: the game schedules while holding its lock.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

type timerScheduler struct{}

// NewTimerScheduler schedules on the runtime timer.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// ManualScheduler queues callbacks until Run is called. Delays are recorded but not waited on.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []*scheduledTask
}

type scheduledTask struct {
	delay    time.Duration
	fn       func()
	canceled bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) func() {
	task := &scheduledTask{delay: d, fn: fn}
	s.mu.Lock()
	s.pending = append(s.pending, task)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		task.canceled = true
		s.mu.Unlock()
	}
}

// Pending returns the number of queued, uncancelled callbacks.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.pending {
		if !t.canceled {
			n++
		}
	}
	return n
}

// Delays returns the delay requested for each queued callback, cancelled or not.
func (s *ManualScheduler) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, len(s.pending))
	for i, t := range s.pending {
		out[i] = t.delay
	}
	return out
}

// Run fires every queued callback that was not cancelled, in scheduling order.
// Callbacks run without the scheduler lock held.
func (s *ManualScheduler) Run() int {
	s.mu.Lock()
	tasks := s.pending
	s.pending = nil
	s.mu.Unlock()

	ran := 0
	for _, t := range tasks {
		s.mu.Lock()
		canceled := t.canceled
		s.mu.Unlock()
		if canceled {
			continue
		}
		t.fn()
		ran++
	}
	return ran
}
