package rtqueue

import (
	"context"
	"time"
)

// Push copy-constructs value into the queue, blocking until a slot is free
// or ctx is done. ctx derived from [NoBlock] makes Push behave as an
// interrupt-context caller requires: see [NoBlock].
func (q *Queue[T]) Push(ctx context.Context, value T) error {
	return q.push(ctx, waitBlocking, func(slot *T) { *slot = value })
}

// TryPush copy-constructs value into the queue without blocking. Returns
// ErrWouldBlock if the queue is full.
func (q *Queue[T]) TryPush(value T) error {
	return q.push(context.Background(), waitNonBlocking, func(slot *T) { *slot = value })
}

// PushTimeout copy-constructs value into the queue, waiting at most d for
// a free slot. Returns ErrTimedOut on expiry.
func (q *Queue[T]) PushTimeout(value T, d time.Duration) error {
	return q.push(context.Background(), waitTimeout(d), func(slot *T) { *slot = value })
}

// PushMove move-constructs *value into the queue: the slot receives the
// current value of *value, and *value is reset to T's zero value,
// modeling the moved-from state a move-push leaves its source in.
func (q *Queue[T]) PushMove(ctx context.Context, value *T) error {
	return q.push(ctx, waitBlocking, moveAction(value))
}

// TryPushMove is the non-blocking variant of [Queue.PushMove].
func (q *Queue[T]) TryPushMove(value *T) error {
	return q.push(context.Background(), waitNonBlocking, moveAction(value))
}

func moveAction[T any](value *T) func(slot *T) {
	return func(slot *T) {
		*slot = *value
		var zero T
		*value = zero
	}
}

// Emplace constructs the queued value in place by calling build only once
// a free slot is guaranteed, avoiding constructing a value that would
// otherwise be discarded on ErrWouldBlock.
func (q *Queue[T]) Emplace(ctx context.Context, build func() T) error {
	return q.push(ctx, waitBlocking, func(slot *T) { *slot = build() })
}

// TryEmplace is the non-blocking variant of [Queue.Emplace]. build is not
// called at all if the queue is full.
func (q *Queue[T]) TryEmplace(build func() T) error {
	return q.push(context.Background(), waitNonBlocking, func(slot *T) { *slot = build() })
}

// Pop extracts and returns the oldest queued value, blocking until one is
// available or ctx is done.
func (q *Queue[T]) Pop(ctx context.Context) (T, error) {
	return q.pop(ctx, waitBlocking, extractAction[T])
}

// TryPop extracts and returns the oldest queued value without blocking.
// Returns ErrWouldBlock if the queue is empty.
func (q *Queue[T]) TryPop() (T, error) {
	return q.pop(context.Background(), waitNonBlocking, extractAction[T])
}

// PopTimeout extracts and returns the oldest queued value, waiting at most
// d for one to become available. Returns ErrTimedOut on expiry.
func (q *Queue[T]) PopTimeout(d time.Duration) (T, error) {
	return q.pop(context.Background(), waitTimeout(d), extractAction[T])
}

func extractAction[T any](slot *T) T {
	val := *slot
	var zero T
	*slot = zero
	return val
}

// SwapPop exchanges the oldest queued value into *out, then resets the
// vacated slot, blocking until a value is available or ctx is done. Unlike
// Pop, SwapPop never requires T to be default-constructible at the call
// site beyond *out already holding a valid (if stale) T — the swap
// completes before the old slot value is discarded.
func (q *Queue[T]) SwapPop(ctx context.Context, out *T) error {
	_, err := q.pop(ctx, waitBlocking, swapAction(out))
	return err
}

// TrySwapPop is the non-blocking variant of [Queue.SwapPop].
func (q *Queue[T]) TrySwapPop(out *T) error {
	_, err := q.pop(context.Background(), waitNonBlocking, swapAction(out))
	return err
}

func swapAction[T any](out *T) func(slot *T) T {
	return func(slot *T) T {
		*out, *slot = *slot, *out
		var zero T
		*slot = zero
		return *out
	}
}

// Drain pops every value currently available without blocking, in FIFO
// order, and returns them. It is the facade-level responsibility the core
// queue delegates draining to: the queue itself never destroys residual
// elements on its own.
func (q *Queue[T]) Drain() []T {
	out := make([]T, 0, q.Len())
	for {
		v, err := q.TryPop()
		if err != nil {
			return out
		}
		out = append(out, v)
	}
}
