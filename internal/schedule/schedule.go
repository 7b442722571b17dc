// Package schedule runs delayed callbacks as cancellable tasks. Timer uses
// the wall clock; Manual is a fake clock that tests advance by hand.
package schedule

import "time"

// Task is a pending callback.
type Task interface {
	// Cancel stops the task if it has not run yet and reports whether it
	// was stopped by this call.
	Cancel() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}

// Timer schedules callbacks with time.AfterFunc. Each callback runs on its
// own goroutine.
type Timer struct{}

// AfterFunc implements Scheduler.
func (Timer) AfterFunc(d time.Duration, f func()) Task {
	return timerTask{time.AfterFunc(d, f)}
}

type timerTask struct {
	t *time.Timer
}

func (t timerTask) Cancel() bool {
	return t.t.Stop()
}
