// Package scheduler runs deferred actions on the execution context that owns
// UI state. Every deferred action is represented by a Task, which doubles as
// its cancellation token.
package scheduler

import (
	"context"
	"sync"
	"time"
)

// Scheduler defers fn by d. Implementations run fn on the goroutine that owns
// UI state, never concurrently with other actions of the same scheduler.
type Scheduler interface {
	After(ctx context.Context, d time.Duration, fn func()) *Task
}

type taskState int

const (
	taskPending taskState = iota
	taskRunning
	taskRan
	taskAbandoned
)

// Task tracks one deferred action.
type Task struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	state taskState
	err   error
	done  chan struct{}
}

// NewTask creates a pending task bound to parent. Cancelling parent abandons
// the task if it has not started.
func NewTask(parent context.Context) *Task {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	t := &Task{
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	context.AfterFunc(ctx, func() {
		t.abandon(ctx.Err())
	})
	return t
}

// Run executes fn unless the task was already run or abandoned. It reports
// whether fn ran.
func (t *Task) Run(fn func()) bool {
	t.mu.Lock()
	if t.state != taskPending {
		t.mu.Unlock()
		return false
	}
	if err := t.ctx.Err(); err != nil {
		t.finishLocked(taskAbandoned, err)
		t.mu.Unlock()
		return false
	}
	t.state = taskRunning
	t.mu.Unlock()

	fn()

	t.mu.Lock()
	t.finishLocked(taskRan, nil)
	t.mu.Unlock()
	t.cancel()
	return true
}

// Cancel abandons the task if it has not started. A running or finished task
// is unaffected.
func (t *Task) Cancel() {
	t.abandon(context.Canceled)
	t.cancel()
}

// Done is closed once the action has run or has been abandoned.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err is nil while pending and after a successful run; otherwise it holds the
// reason the action was abandoned.
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Ran reports whether the action has completed.
func (t *Task) Ran() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == taskRan
}

func (t *Task) abandon(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != taskPending {
		return
	}
	t.finishLocked(taskAbandoned, err)
}

func (t *Task) finishLocked(state taskState, err error) {
	t.state = state
	t.err = err
	close(t.done)
}
