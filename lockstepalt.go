package bru

// LockstepAltScheduler implements a DFS/lockstep hybrid: threads run
// depth-first via an internal stack until every live thread has reached
// a Char/Pred instruction, at which point the accumulated "locked" batch
// is drained one-by-one as a single step, mirroring LockstepScheduler's
// barrier semantics without a separate next/sync queue rotation.
//
// The upstream implementation this is grounded on documents its own
// unresolved gap — "cannot guarantee number of threads scheduled during
// stepping equals initial size of locked". While stepping, Schedule
// routes every thread to the in-order queue and locked only shrinks, so
// nothing ties the number of threads scheduled during a step to the size
// locked had when the step began. That behaviour is preserved here, not
// papered over.
type LockstepAltScheduler struct {
	tm     ThreadManager
	locked []Thread

	active       Thread
	stack        []Thread
	inOrderQueue []Thread

	stepping bool
	doneStep bool
}

var (
	_ Scheduler          = (*LockstepAltScheduler)(nil)
	_ LowPriorityRemover = (*LockstepAltScheduler)(nil)
	_ StepAware          = (*LockstepAltScheduler)(nil)
)

// NewLockstepAltScheduler constructs a LockstepAlt scheduler driven by
// tm. Panics if tm is nil. opts may supply WithStackCapacity and
// WithQueueCapacity to pre-size the internal stack and queues
// respectively.
func NewLockstepAltScheduler(tm ThreadManager, opts ...Option) *LockstepAltScheduler {
	if tm == nil {
		panic(ErrNilThreadManager)
	}
	o := newSchedulerOptions(opts...)
	return &LockstepAltScheduler{
		tm:           tm,
		locked:       make([]Thread, 0, o.queueCapacity),
		stack:        make([]Thread, 0, o.stackCapacity),
		inOrderQueue: make([]Thread, 0, o.queueCapacity),
	}
}

// Init resets the scheduler's step-tracking flags, leaving its queues
// untouched — matching the C scheduler's init, which clears only
// active/stepping/done_step.
func (s *LockstepAltScheduler) Init() {
	s.active = nil
	s.stepping = false
	s.doneStep = false
}

// Schedule enqueues thread. While a step is in progress it is deferred
// via ScheduleInOrder so its relative priority survives the barrier;
// otherwise a Char/Pred thread joins locked (after duplicate
// suppression via ThreadManager.ThreadEq) and any other thread is pushed
// onto the DFS stack (or claimed as active if none is set).
func (s *LockstepAltScheduler) Schedule(thread Thread) bool {
	if s.stepping {
		return s.ScheduleInOrder(thread)
	}

	switch s.tm.PC(thread) {
	case Char, Pred:
		if containsThread(s.tm, s.locked, thread) {
			return false
		}
		s.locked = append(s.locked, thread)
	default:
		if s.active != nil {
			s.stack = append(s.stack, thread)
		} else {
			s.active = thread
		}
	}

	return true
}

// ScheduleInOrder appends thread to the in-order queue, to be
// transferred onto the DFS stack once the current step clears (see
// Next).
func (s *LockstepAltScheduler) ScheduleInOrder(thread Thread) bool {
	s.inOrderQueue = append(s.inOrderQueue, thread)
	return true
}

// HasNext reports whether any thread remains active, on the stack, in
// the in-order queue, or locked for stepping.
func (s *LockstepAltScheduler) HasNext() bool {
	return s.active != nil || len(s.stack) != 0 ||
		len(s.inOrderQueue) != 0 || len(s.locked) != 0
}

// Next returns the next thread to execute. Resolves two upstream
// ambiguities documented in DESIGN.md: the in-order queue is transferred
// onto the DFS stack (preserving order, so the first queued thread ends
// up on top) whenever doneStep is true or stepping is false — i.e. at
// the start of a fresh DFS round, never mid-step — and
// containsThread performs a full linear scan rather than the upstream's
// early-exit loop.
func (s *LockstepAltScheduler) Next() (Thread, bool) {
	if len(s.inOrderQueue) != 0 && (s.doneStep || !s.stepping) {
		for i := len(s.inOrderQueue) - 1; i >= 0; i-- {
			s.stack = append(s.stack, s.inOrderQueue[i])
		}
		s.inOrderQueue = s.inOrderQueue[:0]
	}
	if s.doneStep {
		s.doneStep = false
	}

	var thread Thread

	if s.active == nil && len(s.stack) == 0 {
		if len(s.locked) == 0 {
			return nil, false
		}
		s.stepping = true
	} else if !s.stepping {
		if s.active != nil {
			thread = s.active
			s.active = nil
		} else {
			thread = s.popStack()
		}

		for thread != nil && s.tm.PC(thread).Consumes() {
			s.locked = append(s.locked, thread)
			if len(s.stack) == 0 {
				thread = nil
			} else {
				thread = s.popStack()
			}
		}

		if thread == nil {
			s.stepping = true
		}
	}

	if s.stepping {
		thread = s.locked[0]
		s.locked[0] = nil
		s.locked = s.locked[1:]
		if len(s.locked) == 0 {
			s.stepping = false
			s.doneStep = true
		}
	}

	if thread == nil {
		return nil, false
	}
	return thread, true
}

func (s *LockstepAltScheduler) popStack() Thread {
	last := len(s.stack) - 1
	t := s.stack[last]
	s.stack[last] = nil
	s.stack = s.stack[:last]
	return t
}

// RemoveLowPriorityThreads removes and returns the active thread (if
// any) together with every thread on the DFS stack, in unspecified
// order. Returns nil if there are none.
func (s *LockstepAltScheduler) RemoveLowPriorityThreads() []Thread {
	if s.active == nil && len(s.stack) == 0 {
		return nil
	}

	threads := s.stack
	s.stack = make([]Thread, 0, cap(threads))
	if s.active != nil {
		threads = append(threads, s.active)
		s.active = nil
	}

	return threads
}

// DoneStep reports whether a step has just completed.
func (s *LockstepAltScheduler) DoneStep() bool {
	return s.doneStep
}

// Free releases the scheduler's internal stack and locked queue. Threads
// still held are not themselves released; the caller must drain first.
func (s *LockstepAltScheduler) Free() {
	s.stack, s.locked, s.inOrderQueue = nil, nil, nil
}

// containsThread reports whether threads contains a thread equal to
// thread per tm.ThreadEq, performing a full linear scan — the evident
// intent of the upstream helper, whose C loop condition instead exits
// the scan at the first non-match.
func containsThread(tm ThreadManager, threads []Thread, thread Thread) bool {
	for _, t := range threads {
		if tm.ThreadEq(t, thread) {
			return true
		}
	}
	return false
}
