package schedule

import (
	"slices"
	"sync"
	"time"
)

// Manual is a Scheduler driven by Advance instead of the wall clock.
// Callbacks run synchronously on the goroutine calling Advance, in due-time
// order; ties run in the order they were scheduled.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	m    *Manual
	due  time.Duration
	seq  int
	f    func()
	done bool
}

// NewManual returns a Manual clock at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, f func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d < 0 {
		d = 0
	}
	t := &manualTask{m: m, due: m.now + d, seq: m.seq, f: f}
	m.seq++
	m.tasks = append(m.tasks, t)
	return t
}

// Advance moves the clock forward by d and runs every task that falls due,
// including tasks scheduled by callbacks within the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		t := m.popDue(target)
		if t == nil {
			break
		}
		t.f()
	}

	m.mu.Lock()
	m.now = target
	m.mu.Unlock()
}

// popDue removes and returns the earliest task due at or before target,
// moving the clock to its due time.
func (m *Manual) popDue(target time.Duration) *manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.tasks) == 0 {
		return nil
	}
	i := 0
	for j, t := range m.tasks {
		if t.due < m.tasks[i].due || (t.due == m.tasks[i].due && t.seq < m.tasks[i].seq) {
			i = j
		}
	}
	t := m.tasks[i]
	if t.due > target {
		return nil
	}
	m.tasks = slices.Delete(m.tasks, i, i+1)
	t.done = true
	m.now = t.due
	return t
}

// Pending reports how many tasks are scheduled and not yet run or cancelled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Now is the elapsed fake time since NewManual.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (t *manualTask) Cancel() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	t.m.tasks = slices.DeleteFunc(t.m.tasks, func(x *manualTask) bool { return x == t })
	return true
}
