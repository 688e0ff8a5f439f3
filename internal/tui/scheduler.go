package tui

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trknhr/personview/internal/scheduler"
)

// Scheduler turns deferred actions into bubbletea commands so that they run
// inside Update, on the program's event loop.
type Scheduler struct {
	mu      sync.Mutex
	pending []tea.Cmd
}

var _ scheduler.Scheduler = (*Scheduler)(nil)

// firedMsg carries a deferred action back into Update.
type firedMsg struct {
	task *scheduler.Task
	fn   func()
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) After(ctx context.Context, d time.Duration, fn func()) *scheduler.Task {
	task := scheduler.NewTask(ctx)
	cmd := tea.Tick(d, func(time.Time) tea.Msg {
		return firedMsg{task: task, fn: fn}
	})

	s.mu.Lock()
	s.pending = append(s.pending, cmd)
	s.mu.Unlock()
	return task
}

// Drain returns the commands queued since the last call, or nil.
func (s *Scheduler) Drain() tea.Cmd {
	s.mu.Lock()
	cmds := s.pending
	s.pending = nil
	s.mu.Unlock()

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
