package rtqueue

import (
	"context"
	"sync"
	"time"

	"code.hybscloud.com/atomix"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"rtqueue/internal/rtsem"
)

// slowWaitThreshold is the gating-wait duration above which a blocking
// push/pop logs a debug line. It never affects behavior, only diagnostics.
const slowWaitThreshold = 50 * time.Millisecond

// Queue is a bounded, blocking, first-in-first-out queue transferring
// values of type T between concurrent goroutines (and, via [NoBlock],
// callers that must never suspend). It is built from two counting
// semaphores guarding a fixed-capacity ring buffer: pushSem tracks free
// slots, popSem tracks initialized slots — the ring invariant is
// pushSem.Value() + popSem.Value() == Cap() whenever no push/pop is
// between its gating wait and its unblocking post.
//
// Construct with [New]. The zero value is not usable.
type Queue[T any] struct {
	ring ringStorage[T]

	pushSem *rtsem.Semaphore
	popSem  *rtsem.Semaphore

	// pushMu/popMu serialize step 2 of the push and pop protocols among
	// same-side callers. Producers and consumers never take the other side's lock, so
	// a push and a pop never contend with each other directly; the two
	// semaphores alone prevent them from touching the same slot.
	pushMu sync.Mutex
	popMu  sync.Mutex

	capacity int
	logger   log.Logger
	metrics  *metrics

	pushed atomix.Uint64 // advisory throughput counters; no method reports them
	popped atomix.Uint64
}

// New constructs a Queue with the given capacity, which must be >= 1.
// Panics on an invalid capacity — this is a construction-time contract
// violation, not a runtime condition callers should need to recover from.
func New[T any](capacity int, opts ...Option) *Queue[T] {
	if capacity < 1 {
		panic("rtqueue: capacity must be >= 1")
	}
	cfg := newConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Queue[T]{
		ring:     newRingStorage[T](capacity),
		pushSem:  rtsem.New(int64(capacity), int64(capacity)),
		popSem:   rtsem.New(0, int64(capacity)),
		capacity: capacity,
		logger:   cfg.logger,
		metrics:  cfg.metrics,
	}
}

// Cap returns the queue's fixed capacity.
func (q *Queue[T]) Cap() int {
	return q.capacity
}

// Len returns the approximate number of initialized slots. It is advisory:
// under concurrent pushes/pops the true count may have already changed by
// the time the caller observes the returned value, the same caveat the
// spec places on any length query for a concurrently-accessed queue.
func (q *Queue[T]) Len() int {
	return int(q.popSem.Value())
}

// waitFunc performs step 1 of the push or pop protocol against sem: the
// gating wait, in whichever variant (blocking/try/timed) the facade
// method requested.
type waitFunc func(ctx context.Context, sem *rtsem.Semaphore) error

func waitBlocking(ctx context.Context, sem *rtsem.Semaphore) error {
	return sem.Wait(ctx)
}

func waitNonBlocking(_ context.Context, sem *rtsem.Semaphore) error {
	return sem.TryWait()
}

func waitTimeout(d time.Duration) waitFunc {
	return func(_ context.Context, sem *rtsem.Semaphore) error {
		return sem.TryWaitFor(d)
	}
}

func waitDeadline(t time.Time) waitFunc {
	return func(_ context.Context, sem *rtsem.Semaphore) error {
		return sem.TryWaitUntil(t)
	}
}

// push runs the three-step push protocol: gate on pushSem, run action on
// the current write slot under pushMu, advance the write position, then
// post popSem. On a step-1 failure no state changes. A step-3 failure
// (ErrOverflow) is propagated after the slot mutation, which is already
// permanent — see the package's error-handling design.
func (q *Queue[T]) push(ctx context.Context, wait waitFunc, action func(slot *T)) error {
	start := time.Now()
	if err := wait(ctx, q.pushSem); err != nil {
		return err
	}
	q.observeWait(start)

	q.pushMu.Lock()
	action(q.ring.writeSlot())
	q.ring.advanceWrite()
	q.pushMu.Unlock()

	if err := q.popSem.Post(); err != nil {
		level.Error(q.logger).Log("msg", "queue invariant violated on push", "err", err)
		return err
	}
	q.pushed.AddAcqRel(1)
	if q.metrics != nil {
		q.metrics.pushTotal.Inc()
		q.metrics.occupancy.Set(float64(q.Len()))
	}
	return nil
}

// pop runs the three-step pop protocol: gate on popSem, run action on the
// current read slot under popMu (action is responsible for zeroing the
// slot so it holds no stale reference), advance the read position, then
// post pushSem.
func (q *Queue[T]) pop(ctx context.Context, wait waitFunc, action func(slot *T) T) (T, error) {
	start := time.Now()
	var zero T
	if err := wait(ctx, q.popSem); err != nil {
		return zero, err
	}
	q.observeWait(start)

	q.popMu.Lock()
	val := action(q.ring.readSlot())
	q.ring.advanceRead()
	q.popMu.Unlock()

	if err := q.pushSem.Post(); err != nil {
		level.Error(q.logger).Log("msg", "queue invariant violated on pop", "err", err)
		return val, err
	}
	q.popped.AddAcqRel(1)
	if q.metrics != nil {
		q.metrics.popTotal.Inc()
		q.metrics.occupancy.Set(float64(q.Len()))
	}
	return val, nil
}

func (q *Queue[T]) observeWait(start time.Time) {
	d := time.Since(start)
	if q.metrics != nil {
		q.metrics.waitSeconds.Observe(d.Seconds())
	}
	if d >= slowWaitThreshold {
		level.Debug(q.logger).Log("msg", "slow queue wait", "waited", d)
	}
}
