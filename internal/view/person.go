package view

import (
	"sync"

	"github.com/trknhr/personview/internal/logger"
	"github.com/trknhr/personview/internal/model/entity"
	"github.com/trknhr/personview/internal/observable"
)

// Source is the read-only side of a view-model.
type Source interface {
	Data() observable.Readable[*entity.Person]
	Status() observable.Readable[entity.Status]
}

// PersonView holds nothing but its subscription handles.
type PersonView struct {
	src      Source
	onChange func()

	mu      sync.Mutex
	cancels []func()
}

type Option func(*PersonView)

// OnChange registers a hook that runs after every notification, once the
// change has been logged. Hosts use it to schedule a re-render.
func OnChange(fn func()) Option {
	return func(v *PersonView) { v.onChange = fn }
}

func New(src Source, opts ...Option) *PersonView {
	v := &PersonView{src: src}
	for _, opt := range opts {
		opt(v)
	}

	v.cancels = append(v.cancels,
		src.Data().Subscribe(func(*entity.Person) {
			logger.Info("model data change")
			v.changed()
		}),
		src.Status().Subscribe(func(s entity.Status) {
			logger.Info("status change %s", s)
			v.changed()
		}),
	)
	return v
}

func (v *PersonView) changed() {
	if v.onChange != nil {
		v.onChange()
	}
}

// Body renders the current state.
func (v *PersonView) Body() Content {
	return Render(v.src.Status().Get(), v.src.Data().Get())
}

// Close disposes the subscriptions. It is safe to call more than once.
func (v *PersonView) Close() {
	v.mu.Lock()
	cancels := v.cancels
	v.cancels = nil
	v.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}
