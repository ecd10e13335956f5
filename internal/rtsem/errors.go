package rtsem

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates a non-blocking acquire attempt found the
// semaphore at 0. Alias of [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrTimedOut indicates a bounded wait's deadline elapsed before the
// semaphore could be acquired.
var ErrTimedOut = errors.New("rtsem: timed out")

// ErrInterrupted indicates a blocking wait's context was cancelled before
// the semaphore could be acquired.
var ErrInterrupted = errors.New("rtsem: interrupted")

// ErrOperationNotPermitted indicates Wait was called from a context
// derived from [NoBlock] and could not acquire without suspending.
var ErrOperationNotPermitted = errors.New("rtsem: operation not permitted")

// ErrOverflow indicates Post was called while the value already equals
// Max. The caller's invariants should make this unreachable.
var ErrOverflow = errors.New("rtsem: overflow")
