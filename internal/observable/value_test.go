package observable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trknhr/personview/internal/observable"
)

func TestSubscribe_ReplaysCurrentValue(t *testing.T) {
	v := observable.New("initial")

	var got []string
	cancel := v.Subscribe(func(s string) { got = append(got, s) })
	defer cancel()

	assert.Equal(t, []string{"initial"}, got)
}

func TestSet_NotifiesSynchronouslyInOrder(t *testing.T) {
	v := observable.New(0)

	var order []string
	c1 := v.Subscribe(func(n int) { order = append(order, "first") })
	c2 := v.Subscribe(func(n int) { order = append(order, "second") })
	defer c1()
	defer c2()
	order = nil

	v.Set(1)

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, 1, v.Get())
}

func TestSet_SameValueStillNotifies(t *testing.T) {
	v := observable.New(5)
	calls := 0
	cancel := v.Subscribe(func(int) { calls++ })
	defer cancel()

	v.Set(5)
	v.Set(5)

	assert.Equal(t, 3, calls)
}

func TestCancel_StopsDeliveryAndIsIdempotent(t *testing.T) {
	v := observable.New(0)
	calls := 0
	cancel := v.Subscribe(func(int) { calls++ })

	cancel()
	cancel()
	v.Set(1)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, v.Len())
}

func TestCancel_DuringNotification(t *testing.T) {
	v := observable.New(0)

	var second func()
	var got []string
	first := v.Subscribe(func(n int) {
		if n == 1 {
			second()
		}
		got = append(got, "first")
	})
	second = v.Subscribe(func(int) { got = append(got, "second") })
	third := v.Subscribe(func(int) { got = append(got, "third") })
	defer first()
	defer third()
	got = nil

	v.Set(1)

	assert.Equal(t, []string{"first", "third"}, got)
	assert.Equal(t, 2, v.Len())
}
