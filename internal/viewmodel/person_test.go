package viewmodel_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trknhr/personview/internal/model/entity"
	"github.com/trknhr/personview/internal/scheduler"
	"github.com/trknhr/personview/internal/source"
	"github.com/trknhr/personview/internal/viewmodel"
)

func TestNew_LoadingImmediately(t *testing.T) {
	sched := scheduler.NewManual()
	vm := viewmodel.New(sched)

	assert.Equal(t, entity.StatusLoading, vm.Status().Get())
	assert.Nil(t, vm.Data().Get())
	assert.Equal(t, 1, sched.Pending())
}

func TestNew_LoadedAfterDelay(t *testing.T) {
	sched := scheduler.NewManual()
	vm := viewmodel.New(sched)

	sched.Advance(viewmodel.DefaultDelay - time.Millisecond)
	assert.Equal(t, entity.StatusLoading, vm.Status().Get())

	sched.Advance(time.Millisecond)
	require.Equal(t, entity.StatusLoaded, vm.Status().Get())

	p := vm.Data().Get()
	require.NotNil(t, p)
	assert.Equal(t, "Jose Luis", p.Name)
	assert.Equal(t, "Bustos Lopez", p.Surname)
	assert.Equal(t, "502526272J", p.NationalID)
	assert.NotEqual(t, uuid.Nil, p.ID)
}

func TestNew_NotificationSequence(t *testing.T) {
	sched := scheduler.NewManual()
	var events []string
	vm := viewmodel.New(sched, viewmodel.WithStatusObserver(func(s entity.Status) {
		events = append(events, fmt.Sprintf("%s@%s", s, sched.Now()))
	}))
	cancel := vm.Data().Subscribe(func(p *entity.Person) {
		if p != nil {
			events = append(events, fmt.Sprintf("data@%s", sched.Now()))
		}
	})
	defer cancel()

	assert.Equal(t, []string{"none@0s", "loading@0s"}, events)

	sched.Advance(3 * time.Second)

	assert.Equal(t, []string{"none@0s", "loading@0s", "data@3s", "loaded@3s"}, events)
}

func TestLateSubscriberNeverSeesNotStarted(t *testing.T) {
	sched := scheduler.NewManual()
	vm := viewmodel.New(sched)

	var seen []entity.Status
	cancel := vm.Status().Subscribe(func(s entity.Status) { seen = append(seen, s) })
	defer cancel()
	sched.Advance(viewmodel.DefaultDelay)

	assert.Equal(t, []entity.Status{entity.StatusLoading, entity.StatusLoaded}, seen)
}

func TestReload_FreshIdentifier(t *testing.T) {
	sched := scheduler.NewManual()
	vm := viewmodel.New(sched, viewmodel.WithDelay(time.Second))
	sched.Advance(time.Second)
	first := vm.Data().Get()
	require.NotNil(t, first)

	vm.BeginLoad(context.Background())
	assert.Equal(t, entity.StatusLoading, vm.Status().Get())
	assert.Same(t, first, vm.Data().Get())

	sched.Advance(time.Second)
	second := vm.Data().Get()
	require.NotNil(t, second)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, entity.StatusLoaded, vm.Status().Get())
}

func TestSourceErrorMovesToError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := source.NewMockPersonSource(ctrl)
	src.EXPECT().
		FetchPerson(gomock.Any()).
		Return(entity.Person{}, errors.New("unreachable"))

	sched := scheduler.NewManual()
	vm := viewmodel.New(sched, viewmodel.WithSource(src))
	sched.Advance(viewmodel.DefaultDelay)

	assert.Equal(t, entity.StatusError, vm.Status().Get())
	assert.Nil(t, vm.Data().Get())
}

func TestCustomSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := entity.NewPerson("Ana", "Garcia", "12345678Z")
	src := source.NewMockPersonSource(ctrl)
	src.EXPECT().FetchPerson(gomock.Any()).Return(want, nil)

	sched := scheduler.NewManual()
	vm := viewmodel.New(sched, viewmodel.WithSource(src), viewmodel.WithDelay(10*time.Millisecond))
	sched.Advance(10 * time.Millisecond)

	require.NotNil(t, vm.Data().Get())
	assert.Equal(t, want, *vm.Data().Get())
}

func TestClose_CancelsPendingLoad(t *testing.T) {
	sched := scheduler.NewManual()
	vm := viewmodel.New(sched)
	vm.Close()

	assert.Equal(t, 0, sched.Advance(time.Minute))
	assert.Equal(t, entity.StatusLoading, vm.Status().Get())
	assert.Nil(t, vm.Data().Get())
}

func TestBeginLoad_TaskCancellation(t *testing.T) {
	sched := scheduler.NewManual()
	vm := viewmodel.New(sched)
	sched.Advance(viewmodel.DefaultDelay)

	task := vm.BeginLoad(context.Background())
	task.Cancel()
	sched.Advance(viewmodel.DefaultDelay)

	assert.ErrorIs(t, task.Err(), context.Canceled)
	assert.Equal(t, entity.StatusLoading, vm.Status().Get())
}
