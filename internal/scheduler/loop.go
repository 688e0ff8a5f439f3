package scheduler

import (
	"context"
	"time"
)

// Loop is a single-goroutine executor. Everything posted to it runs on the
// goroutine that called Run, one function at a time.
type Loop struct {
	queue   chan func()
	stopped chan struct{}
}

var _ Scheduler = (*Loop)(nil)

func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{
		queue:   make(chan func(), buffer),
		stopped: make(chan struct{}),
	}
}

// Post enqueues fn. It blocks while the queue is full and returns false once
// the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopped:
		return false
	default:
	}
	select {
	case l.queue <- fn:
		return true
	case <-l.stopped:
		return false
	}
}

// Run executes posted functions until ctx is done. It must be called once.
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.stopped)
	for {
		select {
		case fn := <-l.queue:
			fn()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// After runs fn on the loop once d has elapsed. If the loop has stopped by
// then, the task is abandoned with context.Canceled.
func (l *Loop) After(ctx context.Context, d time.Duration, fn func()) *Task {
	t := NewTask(ctx)
	timer := time.AfterFunc(d, func() {
		if !l.Post(func() { t.Run(fn) }) {
			t.Cancel()
		}
	})
	go func() {
		<-t.Done()
		timer.Stop()
	}()
	return t
}
