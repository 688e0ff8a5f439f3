package scheduler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trknhr/personview/internal/scheduler"
)

func TestTask_RunOnce(t *testing.T) {
	task := scheduler.NewTask(context.Background())
	calls := 0

	assert.True(t, task.Run(func() { calls++ }))
	assert.False(t, task.Run(func() { calls++ }))

	assert.Equal(t, 1, calls)
	assert.True(t, task.Ran())
	assert.NoError(t, task.Err())
	assertClosed(t, task.Done())
}

func TestTask_CancelBeforeRun(t *testing.T) {
	task := scheduler.NewTask(context.Background())
	task.Cancel()

	assert.False(t, task.Run(func() { t.Fatal("cancelled task must not run") }))
	assert.ErrorIs(t, task.Err(), context.Canceled)
	assert.False(t, task.Ran())
	assertClosed(t, task.Done())
}

func TestTask_CancelAfterRunIsNoop(t *testing.T) {
	task := scheduler.NewTask(context.Background())
	task.Run(func() {})
	task.Cancel()

	assert.True(t, task.Ran())
	assert.NoError(t, task.Err())
}

func TestTask_ParentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	task := scheduler.NewTask(ctx)
	cancel()

	assert.False(t, task.Run(func() { t.Fatal("abandoned task must not run") }))
	assert.ErrorIs(t, task.Err(), context.Canceled)
}

func assertClosed(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	default:
		t.Fatal("expected channel to be closed")
	}
}
