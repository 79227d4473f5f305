package core

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueDeliversInArrivalOrder(t *testing.T) {
	q := NewInputQueue(8)
	var got []int
	q.Subscribe(func(ev Event) { got = append(got, ev.Index) })

	for i := 0; i < 5; i++ {
		q.Push(Event{Kind: EventSelectTarget, Index: i})
	}
	assert.Equal(t, 5, q.Len())
	assert.Equal(t, 5, q.Drain())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	assert.Zero(t, q.Len())
	assert.Zero(t, q.Drain())
}

func TestQueueDropsOldestWhenFull(t *testing.T) {
	q := NewInputQueue(3)
	drops := 0
	q.OnDrop(func() { drops++ })
	for i := 0; i < 5; i++ {
		q.Push(Event{Index: i})
	}
	assert.Equal(t, uint64(2), q.Dropped())
	assert.Equal(t, 2, drops)

	var got []int
	q.Subscribe(func(ev Event) { got = append(got, ev.Index) })
	q.Drain()
	assert.Equal(t, []int{2, 3, 4}, got)
}

func TestQueueCancelDetachesSubscriber(t *testing.T) {
	q := NewInputQueue(0)
	a, b := 0, 0
	cancelA := q.Subscribe(func(Event) { a++ })
	q.Subscribe(func(Event) { b++ })

	q.Push(Event{})
	q.Drain()
	cancelA()
	cancelA()
	q.Push(Event{})
	q.Drain()

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestQueueConcurrentPush(t *testing.T) {
	q := NewInputQueue(DefaultQueueCapacity)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(Event{Kind: EventPointerMove})
			}
		}()
	}
	wg.Wait()
	require.Equal(t, DefaultQueueCapacity, q.Len())
	assert.Equal(t, uint64(400-DefaultQueueCapacity), q.Dropped())
}
