package scanner

import (
	"testing"
	"time"

	"github.com/sandeepkv93/habitquest/internal/model"
)

type staticSource struct {
	tasks []model.Task
}

func (s staticSource) Tasks() []model.Task {
	return append([]model.Task(nil), s.tasks...)
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := model.ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestDueTasksPredicate(t *testing.T) {
	now := time.Date(2026, 3, 4, 16, 45, 0, 0, time.UTC)
	tasks := []model.Task{
		{Description: "due today", DueDate: day(t, "2026-03-04")},
		{Description: "overdue", DueDate: day(t, "2026-02-28")},
		{Description: "future", DueDate: day(t, "2026-03-05")},
		{Description: "done", DueDate: day(t, "2026-03-01"), Completed: true},
	}

	due := DueTasks(tasks, now)
	if len(due) != 2 {
		t.Fatalf("expected 2 due tasks, got %d: %+v", len(due), due)
	}
	if due[0].Description != "due today" || due[1].Description != "overdue" {
		t.Fatalf("unexpected due set: %+v", due)
	}
}

func TestScannerRepeatsEveryCycle(t *testing.T) {
	src := staticSource{tasks: []model.Task{
		{Description: "overdue", DueDate: day(t, "2026-01-01")},
	}}
	sc := New(src, 10*time.Millisecond, 8)
	sc.Start()
	defer sc.Stop()

	// No de-duplication: the same overdue task fires on consecutive cycles.
	first := waitReminder(t, sc.C(), time.Second)
	second := waitReminder(t, sc.C(), time.Second)
	if first.Description != "overdue" || second.Description != "overdue" {
		t.Fatalf("unexpected reminders: %+v, %+v", first, second)
	}
}

func TestScannerScansImmediatelyOnStart(t *testing.T) {
	src := staticSource{tasks: []model.Task{
		{Description: "overdue", DueDate: day(t, "2026-01-01")},
	}}
	// With an hour-long interval the only way a reminder can arrive promptly
	// is the pass that runs right at startup.
	sc := New(src, time.Hour, 8)
	sc.Start()
	defer sc.Stop()

	rem := waitReminder(t, sc.C(), time.Second)
	if rem.Description != "overdue" {
		t.Fatalf("unexpected reminder: %+v", rem)
	}
}

func TestScannerSkipsCompletedAndFuture(t *testing.T) {
	future := model.Day(time.Now().UTC().AddDate(0, 0, 7))
	src := staticSource{tasks: []model.Task{
		{Description: "done", DueDate: day(t, "2026-01-01"), Completed: true},
		{Description: "future", DueDate: future},
	}}
	sc := New(src, 10*time.Millisecond, 8)
	sc.Start()
	defer sc.Stop()

	select {
	case rem := <-sc.C():
		t.Fatalf("unexpected reminder: %+v", rem)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestScannerStopClosesChannel(t *testing.T) {
	sc := New(staticSource{}, 10*time.Millisecond, 1)
	sc.Start()
	sc.Stop()

	if _, ok := <-sc.C(); ok {
		t.Fatal("expected closed channel after stop")
	}
	// Stop is safe to call twice.
	sc.Stop()
}

func TestScannerDropsWhenConsumerIsSlow(t *testing.T) {
	tasks := make([]model.Task, 0, 10)
	for i := 0; i < 10; i++ {
		tasks = append(tasks, model.Task{Description: "overdue", DueDate: day(t, "2026-01-01")})
	}
	sc := New(staticSource{tasks: tasks}, 10*time.Millisecond, 1)
	sc.Start()
	defer sc.Stop()

	time.Sleep(100 * time.Millisecond)
	if sc.Dropped() == 0 {
		t.Fatalf("expected dropped reminders > 0, got %d", sc.Dropped())
	}
}

func waitReminder(t *testing.T, ch <-chan Reminder, timeout time.Duration) Reminder {
	t.Helper()
	select {
	case rem := <-ch:
		return rem
	case <-time.After(timeout):
		t.Fatal("timed out waiting for reminder")
		return Reminder{}
	}
}
