// Package rtqueue provides a bounded, blocking, first-in-first-out queue
// for transferring typed values between concurrent goroutines, built from
// a fixed-capacity ring buffer and two counting semaphores.
//
// It is the Go-native rendition of the message queue found at the base of
// many embedded real-time kernels: a producer blocks until a slot is free,
// a consumer blocks until a value is available, and both semaphores wake
// waiters in FIFO arrival order. The ring's slots are allocated once, at
// construction; a push or pop that has to park allocates a waiter, and
// each timed operation allocates a timer context.
//
// # Quick Start
//
//	q := rtqueue.New[int](4)
//
//	// Blocking push/pop
//	err := q.Push(context.Background(), 42)
//
//	v, err := q.Pop(context.Background())
//
// # Basic Usage
//
// Push and Pop each come in a blocking, non-blocking (Try), and timed
// variant; PushMove, Emplace, and SwapPop have blocking and Try variants
// only:
//
//	err := q.Push(ctx, value)                 // blocks until space or ctx done
//	err := q.TryPush(value)                    // ErrWouldBlock if full
//	err := q.PushTimeout(value, 10*time.Millisecond) // ErrTimedOut on expiry
//
//	v, err := q.Pop(ctx)
//	v, err := q.TryPop()
//	v, err := q.PopTimeout(10 * time.Millisecond)
//
// # Move, Emplace, and Swap-Pop
//
// For types where copying is undesirable, PushMove zeroes its source after
// transferring ownership into the slot:
//
//	msg := &Message{Data: payload}
//	err := q.PushMove(ctx, msg) // msg's fields are now the zero value
//
// Emplace defers construction until a slot is guaranteed, so the
// constructor is never called on a doomed push:
//
//	err := q.Emplace(ctx, func() Event { return Event{Seq: next()} })
//
// SwapPop avoids requiring T to be default-constructible at every call
// site: the caller supplies an existing (possibly stale) T, which is
// exchanged with the slot's value:
//
//	var out Event
//	err := q.SwapPop(ctx, &out) // out now holds the dequeued value
//
// # Common Patterns
//
// Pipeline stage, any number of producers and consumers:
//
//	q := rtqueue.New[Frame](1024)
//
//	go func() { // producer
//	    for f := range frames {
//	        if err := q.Push(ctx, f); err != nil {
//	            return
//	        }
//	    }
//	}()
//
//	go func() { // consumer
//	    for {
//	        f, err := q.Pop(ctx)
//	        if err != nil {
//	            return
//	        }
//	        process(f)
//	    }
//	}()
//
// Interrupt-context producer (never suspends):
//
//	func onInterrupt(q *rtqueue.Queue[Event], ev Event) error {
//	    return q.Push(rtqueue.NoBlock(context.Background()), ev)
//	}
//
// # Error Handling
//
// [ErrWouldBlock] is sourced from code.hybscloud.com/iox for consistency
// with other queue-like packages built on it.
// [ErrTimedOut], [ErrInterrupted], [ErrOperationNotPermitted], and
// [ErrOverflow] are this package's own kinds, matching the taxonomy of the
// semaphore this queue is built from:
//
//	rtqueue.IsWouldBlock(err)          // full/empty right now
//	rtqueue.IsTimedOut(err)            // gave up after a deadline
//	rtqueue.IsInterrupted(err)         // ctx cancelled while waiting
//	rtqueue.IsOperationNotPermitted(err) // blocking call from a NoBlock context
//	rtqueue.IsSemantic(err)            // WouldBlock, TimedOut, or Interrupted: not a failure
//
// # Observability
//
// [WithLogger] attaches a github.com/go-kit/log logger for slow-wait
// diagnostics and invariant-violation errors (never the hot path).
// [WithMetrics] registers Prometheus counters, an occupancy gauge, and a
// gating-wait histogram.
//
// # Thread Safety
//
// Any number of goroutines may call push methods concurrently, and any
// number may call pop methods concurrently: pushes are serialized among
// themselves, pops are serialized among themselves, and the two semaphores
// ensure a push and a pop never observe or mutate the same slot.
package rtqueue
