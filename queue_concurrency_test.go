package rtqueue_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rtqueue"
)

// TestScenarioTwoBlockedConsumers is spec scenario 3: two consumers block
// on an empty queue; the producer pushes two values; the earlier-blocked
// consumer receives the first one, and the remaining consumer stays
// blocked until a second value arrives.
func TestScenarioTwoBlockedConsumers(t *testing.T) {
	q := rtqueue.New[int](3)

	firstResult := make(chan int, 1)
	firstBlocked := make(chan struct{})
	secondBlocked := make(chan struct{})
	secondResult := make(chan int, 1)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		close(firstBlocked)
		v, err := q.Pop(context.Background())
		require.NoError(t, err)
		firstResult <- v
	}()
	<-firstBlocked
	time.Sleep(10 * time.Millisecond) // let the first consumer reach Wait

	go func() {
		defer wg.Done()
		close(secondBlocked)
		v, err := q.Pop(context.Background())
		require.NoError(t, err)
		secondResult <- v
	}()
	<-secondBlocked
	time.Sleep(10 * time.Millisecond) // let the second consumer reach Wait

	require.NoError(t, q.Push(context.Background(), 7))

	select {
	case v := <-firstResult:
		require.Equal(t, 7, v)
	case <-time.After(time.Second):
		t.Fatal("earlier-blocked consumer did not receive the first push")
	}

	// The second consumer must still be blocked: no value has arrived for it.
	select {
	case v := <-secondResult:
		t.Fatalf("second consumer received a value too early: %d", v)
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, q.Push(context.Background(), 8))

	select {
	case v := <-secondResult:
		require.Equal(t, 8, v)
	case <-time.After(time.Second):
		t.Fatal("second consumer did not receive the second push")
	}

	wg.Wait()
}

// TestFullEmptySymmetry covers the full/empty symmetry law of spec.md §8:
// after N successful pushes, the queue rejects a further non-blocking
// push; after N pushes and N pops it behaves like a fresh queue.
func TestFullEmptySymmetry(t *testing.T) {
	const n = 4
	q := rtqueue.New[int](n)

	for i := 0; i < n; i++ {
		require.NoError(t, q.TryPush(i))
	}
	require.True(t, rtqueue.IsWouldBlock(q.TryPush(99)))

	for i := 0; i < n; i++ {
		v, err := q.TryPop()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}

	require.Equal(t, 0, q.Len())
	for i := 0; i < n; i++ {
		require.NoError(t, q.TryPush(i * 10))
	}
	require.True(t, rtqueue.IsWouldBlock(q.TryPush(-1)))
}
