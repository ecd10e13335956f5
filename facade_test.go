package rtqueue_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rtqueue"
)

// TestScenarioFourIntegers is spec scenario 1: construct N=4, push four
// values, pop them back out in order, then observe WouldBlock.
func TestScenarioFourIntegers(t *testing.T) {
	q := rtqueue.New[int](4)
	require.Equal(t, 4, q.Cap())

	for _, v := range []int{10, 20, 30, 40} {
		require.NoError(t, q.TryPush(v))
	}

	for _, want := range []int{10, 20, 30, 40} {
		got, err := q.TryPop()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := q.TryPop()
	require.True(t, rtqueue.IsWouldBlock(err))
}

// TestScenarioInterleaved is spec scenario 2: construct N=2, interleave
// pushes and pops around a WouldBlock.
func TestScenarioInterleaved(t *testing.T) {
	q := rtqueue.New[int](2)

	require.NoError(t, q.TryPush(1))
	require.NoError(t, q.TryPush(2))
	require.True(t, rtqueue.IsWouldBlock(q.TryPush(3)))

	v, err := q.TryPop()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	require.NoError(t, q.TryPush(3))

	v, err = q.TryPop()
	require.NoError(t, err)
	require.Equal(t, 2, v)

	v, err = q.TryPop()
	require.NoError(t, err)
	require.Equal(t, 3, v)
}

// movable models a move-only value: a live Payload and a flag recording
// whether it has been zeroed (the Go analogue of "destroyed").
type movable struct {
	Payload string
	live    bool
}

// TestScenarioSwapPopMoveOnly is spec scenario 4: a single-capacity queue,
// a move-pushed element, and a swap-pop into a pre-existing out-param.
func TestScenarioSwapPopMoveOnly(t *testing.T) {
	q := rtqueue.New[movable](1)

	e := movable{Payload: "payload", live: true}
	require.NoError(t, q.PushMove(context.Background(), &e))
	// PushMove leaves the source zeroed (moved-from).
	require.Equal(t, movable{}, e)

	out := movable{Payload: "stale", live: true}
	require.NoError(t, q.SwapPop(context.Background(), &out))
	require.Equal(t, "payload", out.Payload)
	require.True(t, out.live)

	// The slot itself must have been reset exactly once: pushing again
	// and popping must not resurrect the old value.
	require.NoError(t, q.TryPush(movable{Payload: "next", live: true}))
	out2, err := q.TryPop()
	require.NoError(t, err)
	require.Equal(t, "next", out2.Payload)
}

// TestScenarioTimedPop is spec scenario 5: a timed pop on an empty queue
// returns ErrTimedOut after at least the requested deadline, leaving the
// queue unchanged; a subsequent push+pop still succeeds.
func TestScenarioTimedPop(t *testing.T) {
	q := rtqueue.New[int](2)

	start := time.Now()
	_, err := q.PopTimeout(10 * time.Millisecond)
	elapsed := time.Since(start)

	require.True(t, rtqueue.IsTimedOut(err))
	require.GreaterOrEqual(t, elapsed, 10*time.Millisecond)
	require.Equal(t, 0, q.Len())

	require.NoError(t, q.TryPush(99))
	v, err := q.TryPop()
	require.NoError(t, err)
	require.Equal(t, 99, v)
}

func TestEmplaceDefersConstruction(t *testing.T) {
	q := rtqueue.New[int](1)
	require.NoError(t, q.TryPush(1))

	called := false
	err := q.TryEmplace(func() int {
		called = true
		return 2
	})
	require.True(t, rtqueue.IsWouldBlock(err))
	require.False(t, called, "build must not run when the push cannot succeed")

	v, err := q.TryPop()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	require.NoError(t, q.TryEmplace(func() int { return 7 }))
	v, err = q.TryPop()
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestDrainReturnsAllInOrder(t *testing.T) {
	q := rtqueue.New[int](8)
	for i := 0; i < 5; i++ {
		require.NoError(t, q.TryPush(i))
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, q.Drain())
	require.Equal(t, 0, q.Len())
}

func TestNoBlockOnFullQueuePush(t *testing.T) {
	q := rtqueue.New[int](1)
	require.NoError(t, q.TryPush(1))

	err := q.Push(rtqueue.NoBlock(context.Background()), 2)
	require.True(t, rtqueue.IsOperationNotPermitted(err))
}
