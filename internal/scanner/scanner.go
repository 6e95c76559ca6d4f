package scanner

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sandeepkv93/habitquest/internal/model"
)

// Reminder is one due-task notification produced by a scan cycle.
type Reminder struct {
	Description string
	DueDate     time.Time
}

// Source provides the task snapshot each cycle reads. The state container
// satisfies it; snapshots keep the scanner goroutine off the live slices.
type Source interface {
	Tasks() []model.Task
}

// Scanner re-scans the task list on a fixed interval and emits a reminder for
// every incomplete task whose due date has arrived. There is deliberately no
// de-duplication: a still-overdue, still-incomplete task fires again every
// cycle. Habit reminders are a known gap; frequency never gates anything here.
type Scanner struct {
	source   Source
	interval time.Duration
	out      chan Reminder
	stopCh   chan struct{}
	doneCh   chan struct{}
	now      func() time.Time

	mu      sync.Mutex
	started bool
	stopped bool
	dropped uint64
}

func New(source Source, interval time.Duration, bufferSize int) *Scanner {
	if interval <= 0 {
		interval = time.Minute
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Scanner{
		source:   source,
		interval: interval,
		out:      make(chan Reminder, bufferSize),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		now:      time.Now,
	}
}

// C is the reminder stream. It closes when the scanner stops.
func (s *Scanner) C() <-chan Reminder {
	return s.out
}

func (s *Scanner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	go s.loop()
}

// Stop halts the scan loop and waits for it to drain. Process exit via Stop is
// the only cancellation mechanism.
func (s *Scanner) Stop() {
	s.mu.Lock()
	if !s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.stopCh)
	s.mu.Unlock()
	<-s.doneCh
}

// Dropped counts reminders discarded because the consumer was slow.
func (s *Scanner) Dropped() uint64 {
	return atomic.LoadUint64(&s.dropped)
}

func (s *Scanner) loop() {
	defer close(s.doneCh)
	defer close(s.out)

	// First pass runs right away; already-overdue tasks should not wait a
	// full interval after launch.
	s.scan()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.scan()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scanner) scan() {
	for _, task := range DueTasks(s.source.Tasks(), s.now()) {
		rem := Reminder{Description: task.Description, DueDate: task.DueDate}
		select {
		case s.out <- rem:
		default:
			atomic.AddUint64(&s.dropped, 1)
		}
	}
}

// DueTasks filters a snapshot down to incomplete tasks due on or before now.
func DueTasks(tasks []model.Task, now time.Time) []model.Task {
	due := make([]model.Task, 0)
	for _, t := range tasks {
		if !t.Completed && t.DueBy(now) {
			due = append(due, t)
		}
	}
	return due
}
