package bru

import "errors"

const Namespace = "bru"

// ErrNilThreadManager is the value of the panic raised by
// NewLockstepScheduler/NewLockstepAltScheduler when constructed with a nil
// ThreadManager — both policies must inspect thread program counters to
// schedule at all, so there is no degraded mode to fall back to.
var ErrNilThreadManager = errors.New(Namespace + ": nil ThreadManager")
