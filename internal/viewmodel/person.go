// Package viewmodel owns the observable state behind the person view and the
// load-state machine that drives it:
//
//	NotStarted --BeginLoad--> Loading --delay--> Loaded
//	                                   \--source error--> Error
package viewmodel

import (
	"context"
	"sync"
	"time"

	"github.com/trknhr/personview/internal/logger"
	"github.com/trknhr/personview/internal/model/entity"
	"github.com/trknhr/personview/internal/observable"
	"github.com/trknhr/personview/internal/scheduler"
	"github.com/trknhr/personview/internal/source"
)

const DefaultDelay = 3 * time.Second

type PersonViewModel struct {
	data   *observable.Value[*entity.Person]
	status *observable.Value[entity.Status]

	sched  scheduler.Scheduler
	source source.PersonSource
	delay  time.Duration

	mu      sync.Mutex
	pending *scheduler.Task
}

type Option func(*options)

type options struct {
	source    source.PersonSource
	delay     time.Duration
	observers []func(entity.Status)
}

// WithSource replaces the placeholder source.
func WithSource(src source.PersonSource) Option {
	return func(o *options) { o.source = src }
}

func WithDelay(d time.Duration) Option {
	return func(o *options) { o.delay = d }
}

// WithStatusObserver subscribes fn before the first load starts, so it sees
// NotStarted followed by Loading.
func WithStatusObserver(fn func(entity.Status)) Option {
	return func(o *options) { o.observers = append(o.observers, fn) }
}

// New builds the view-model and starts loading immediately. Scheduled work
// runs on sched; New itself must be called on that same execution context.
func New(sched scheduler.Scheduler, opts ...Option) *PersonViewModel {
	o := options{
		source: source.NewPlaceholder(),
		delay:  DefaultDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}

	vm := &PersonViewModel{
		data:   observable.New[*entity.Person](nil),
		status: observable.New(entity.StatusNotStarted),
		sched:  sched,
		source: o.source,
		delay:  o.delay,
	}
	for _, fn := range o.observers {
		vm.status.Subscribe(fn)
	}

	vm.BeginLoad(context.Background())
	return vm
}

// Data is the loaded record, nil until the first load completes.
func (vm *PersonViewModel) Data() observable.Readable[*entity.Person] {
	return vm.data
}

func (vm *PersonViewModel) Status() observable.Readable[entity.Status] {
	return vm.status
}

// BeginLoad moves to Loading and schedules the simulated fetch. The returned
// task cancels the fetch if it has not fired yet.
func (vm *PersonViewModel) BeginLoad(ctx context.Context) *scheduler.Task {
	vm.status.Set(entity.StatusLoading)
	logger.Debug("load scheduled in %s", vm.delay)

	task := vm.sched.After(ctx, vm.delay, func() {
		vm.complete(ctx)
	})

	vm.mu.Lock()
	vm.pending = task
	vm.mu.Unlock()
	return task
}

func (vm *PersonViewModel) complete(ctx context.Context) {
	p, err := vm.source.FetchPerson(ctx)
	if err != nil {
		logger.Error("failed to load person: %v", err)
		vm.status.Set(entity.StatusError)
		return
	}
	vm.data.Set(&p)
	vm.status.Set(entity.StatusLoaded)
	logger.Debug("person %s loaded", p.ID)
}

// Close cancels a load that has not fired yet.
func (vm *PersonViewModel) Close() {
	vm.mu.Lock()
	task := vm.pending
	vm.pending = nil
	vm.mu.Unlock()

	if task != nil {
		task.Cancel()
	}
}
