package rtqueue

import (
	"errors"

	"rtqueue/internal/rtsem"
)

// ErrWouldBlock indicates a non-blocking (Try*) operation could not proceed
// immediately: the queue was full (push) or empty (pop).
//
// Alias of [rtsem.ErrWouldBlock] (itself an alias of iox.ErrWouldBlock),
// so a caller holding an error from either layer observes the same
// identity under errors.Is.
var ErrWouldBlock = rtsem.ErrWouldBlock

// ErrTimedOut indicates a timed operation (PushTimeout, PopTimeout, or a
// blocking call whose ctx deadline passes) exceeded its deadline before a
// slot became available. The queue is left unchanged.
var ErrTimedOut = rtsem.ErrTimedOut

// ErrInterrupted indicates a blocking wait was aborted before a slot became
// available, e.g. because its context was cancelled.
var ErrInterrupted = rtsem.ErrInterrupted

// ErrOperationNotPermitted indicates a blocking wait was attempted from a
// context where blocking is forbidden (see [NoBlock]), typically an
// interrupt-context caller.
var ErrOperationNotPermitted = rtsem.ErrOperationNotPermitted

// ErrOverflow indicates the unblocking semaphore of a push or pop was
// already at its configured maximum. The ring invariant guarantees this
// cannot happen; seeing it means the queue's internal bookkeeping has been
// corrupted by something outside this package — a bug, not a usage error.
var ErrOverflow = rtsem.ErrOverflow

// IsWouldBlock reports whether err indicates the operation would block.
func IsWouldBlock(err error) bool {
	return errors.Is(err, ErrWouldBlock)
}

// IsTimedOut reports whether err is [ErrTimedOut] (possibly wrapped).
func IsTimedOut(err error) bool {
	return errors.Is(err, ErrTimedOut)
}

// IsInterrupted reports whether err is [ErrInterrupted] (possibly wrapped).
func IsInterrupted(err error) bool {
	return errors.Is(err, ErrInterrupted)
}

// IsOperationNotPermitted reports whether err is [ErrOperationNotPermitted].
func IsOperationNotPermitted(err error) bool {
	return errors.Is(err, ErrOperationNotPermitted)
}

// IsOverflow reports whether err is [ErrOverflow] (possibly wrapped).
func IsOverflow(err error) bool {
	return errors.Is(err, ErrOverflow)
}

// IsSemantic reports whether err is a control flow signal rather than a
// failure: WouldBlock, TimedOut, or Interrupted.
func IsSemantic(err error) bool {
	return IsWouldBlock(err) || IsTimedOut(err) || IsInterrupted(err)
}

// IsNonFailure reports whether err represents a non-failure condition, i.e.
// nil or one of the semantic control-flow kinds above. ErrOperationNotPermitted
// and ErrOverflow are always failures: the former is a caller usage error,
// the latter indicates a corrupted invariant.
func IsNonFailure(err error) bool {
	return err == nil || IsSemantic(err)
}

// NoBlock tags ctx so blocking operations behave as an interrupt-context
// caller requires: they never suspend the goroutine, returning
// [ErrOperationNotPermitted] instead of blocking when they would have had
// to wait. Re-exported from [rtsem.NoBlock] for facade callers.
var NoBlock = rtsem.NoBlock
