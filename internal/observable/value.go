// Package observable provides published fields: values whose reassignment
// synchronously notifies every live subscriber.
package observable

import (
	"sync"
	"sync/atomic"
)

// Readable exposes read-only reactive state.
type Readable[T any] interface {
	Get() T
	Subscribe(fn func(T)) func()
}

// Writable exposes read/write reactive state.
type Writable[T any] interface {
	Readable[T]
	Set(value T)
}

type subscriber[T any] struct {
	fn        func(T)
	cancelled atomic.Bool
}

// Value is a published field. Subscribers run on the goroutine that calls Set,
// in subscription order, before Set returns.
type Value[T any] struct {
	mu    sync.Mutex
	value T
	subs  []*subscriber[T]
}

var _ Writable[int] = (*Value[int])(nil)

func New[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Set stores value and notifies subscribers. Every assignment notifies, even
// when the new value equals the old one.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	v.value = value
	subs := make([]*subscriber[T], len(v.subs))
	copy(subs, v.subs)
	v.mu.Unlock()

	for _, s := range subs {
		if s.cancelled.Load() {
			continue
		}
		s.fn(value)
	}
}

// Subscribe registers fn and immediately delivers the current value to it.
// The returned func disposes the subscription; calling it again is a no-op.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	s := &subscriber[T]{fn: fn}

	v.mu.Lock()
	v.subs = append(v.subs, s)
	current := v.value
	v.mu.Unlock()

	fn(current)

	return func() {
		if !s.cancelled.CompareAndSwap(false, true) {
			return
		}
		v.mu.Lock()
		defer v.mu.Unlock()
		for i, other := range v.subs {
			if other == s {
				v.subs = append(v.subs[:i:i], v.subs[i+1:]...)
				break
			}
		}
	}
}

// Len reports the number of live subscribers.
func (v *Value[T]) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}
