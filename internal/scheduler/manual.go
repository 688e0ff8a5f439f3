package scheduler

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Manual is a virtual-clock scheduler. Nothing runs until Advance is called,
// and then everything runs on the caller's goroutine.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	queue []*manualEntry
}

type manualEntry struct {
	at   time.Duration
	seq  int
	task *Task
	fn   func()
}

var _ Scheduler = (*Manual)(nil)

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) After(ctx context.Context, d time.Duration, fn func()) *Task {
	t := NewTask(ctx)
	if d < 0 {
		d = 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.queue = append(m.queue, &manualEntry{at: m.now + d, seq: m.seq, task: t, fn: fn})
	return t
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d and runs every action that falls due,
// in deadline order. Actions scheduled while advancing run too if they fall
// within the window. It returns the number of actions that ran.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now + d
	ran := 0
	for {
		e := m.popDueLocked(target)
		if e == nil {
			break
		}
		m.now = e.at
		m.mu.Unlock()
		if e.task.Run(e.fn) {
			ran++
		}
		m.mu.Lock()
	}
	m.now = target
	m.mu.Unlock()
	return ran
}

// Pending returns the number of queued actions that have not been abandoned.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.queue {
		select {
		case <-e.task.Done():
		default:
			n++
		}
	}
	return n
}

func (m *Manual) popDueLocked(target time.Duration) *manualEntry {
	if len(m.queue) == 0 {
		return nil
	}
	sort.Slice(m.queue, func(i, j int) bool {
		if m.queue[i].at != m.queue[j].at {
			return m.queue[i].at < m.queue[j].at
		}
		return m.queue[i].seq < m.queue[j].seq
	})
	e := m.queue[0]
	if e.at > target {
		return nil
	}
	m.queue = m.queue[1:]
	return e
}
