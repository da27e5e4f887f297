package bru

// LockstepScheduler implements synchronised-step thread scheduling: all
// threads positioned at a Char/Pred instruction wait at a barrier until
// every other thread scheduled this round has also reached one, then the
// whole batch advances together. Threads at any other instruction run
// immediately, ahead of the barrier.
//
// It requires a ThreadManager to inspect thread program counters and to
// decide thread equality for duplicate suppression.
type LockstepScheduler struct {
	tm         ThreadManager
	inLockstep bool
	currIdx    int

	curr []Thread
	next []Thread
	sync []Thread
}

var (
	_ Scheduler          = (*LockstepScheduler)(nil)
	_ LowPriorityRemover = (*LockstepScheduler)(nil)
	_ StepAware          = (*LockstepScheduler)(nil)
)

// NewLockstepScheduler constructs a Lockstep scheduler driven by tm.
// Panics if tm is nil. opts may supply WithQueueCapacity to pre-size the
// internal queues.
func NewLockstepScheduler(tm ThreadManager, opts ...Option) *LockstepScheduler {
	if tm == nil {
		panic(ErrNilThreadManager)
	}
	o := newSchedulerOptions(opts...)
	return &LockstepScheduler{
		tm:   tm,
		curr: make([]Thread, 0, o.queueCapacity),
		next: make([]Thread, 0, o.queueCapacity),
		sync: make([]Thread, 0, o.queueCapacity),
	}
}

// Init resets the step-tracking state. Queued threads are left as-is —
// matching the C scheduler's init, which clears only the flag/index
// pair, not the queues themselves.
func (s *LockstepScheduler) Init() {
	s.inLockstep = false
	s.currIdx = 0
}

// Schedule enqueues thread. Char/Pred threads join sync (if next is
// still empty — meaning the current round hasn't started filling next
// yet) or next otherwise; every other opcode always joins next. Threads
// already present in next or sync are rejected as duplicates via
// ThreadManager.ThreadEq.
func (s *LockstepScheduler) Schedule(thread Thread) bool {
	if threadsContain(s.tm, s.next, thread) || threadsContain(s.tm, s.sync, thread) {
		return false
	}

	switch s.tm.PC(thread) {
	case Char, Pred:
		if len(s.next) == 0 {
			s.sync = append(s.sync, thread)
		} else {
			s.next = append(s.next, thread)
		}
	default:
		s.next = append(s.next, thread)
	}

	return true
}

// ScheduleInOrder is identical to Schedule: the lockstep barrier already
// enforces a stable round-by-round order, so there is no separate
// in-order path (mirroring the C scheduler, which assigns the same
// function pointer to both operations).
func (s *LockstepScheduler) ScheduleInOrder(thread Thread) bool {
	return s.Schedule(thread)
}

// HasNext reports whether curr still has unreturned threads, or next/sync
// hold any thread for the following round.
func (s *LockstepScheduler) HasNext() bool {
	return s.currIdx < len(s.curr) || len(s.next) != 0 || len(s.sync) != 0
}

// Next returns the next thread in the current round, rotating curr/next
// or curr/sync in when the round is exhausted. Threads scheduled
// mid-round that reach Char/Pred ahead of the barrier are reinserted via
// Schedule and, if rejected as a duplicate, killed.
func (s *LockstepScheduler) Next() (Thread, bool) {
	for {
		if s.currIdx >= len(s.curr) {
			s.currIdx = 0
			s.curr = s.curr[:0]

			if len(s.next) == 0 {
				s.inLockstep = true
				s.curr, s.sync = s.sync, s.curr
			} else {
				s.inLockstep = false
				s.curr, s.next = s.next, s.curr
			}
		}

		if s.currIdx >= len(s.curr) {
			return nil, false
		}

		thread := s.curr[s.currIdx]
		s.curr[s.currIdx] = nil
		s.currIdx++

		switch s.tm.PC(thread) {
		case Char, Pred:
			if !s.inLockstep {
				if !s.Schedule(thread) {
					s.tm.KillThread(thread)
				}
				continue
			}
		}

		return thread, true
	}
}

// RemoveLowPriorityThreads removes and returns every thread remaining in
// curr that has not yet been returned by Next (the "currently executing"
// queue), in unspecified order. Returns nil if there are none.
func (s *LockstepScheduler) RemoveLowPriorityThreads() []Thread {
	n := len(s.curr) - s.currIdx
	if n <= 0 {
		return nil
	}

	threads := make([]Thread, 0, n)
	for i := len(s.curr) - 1; i >= s.currIdx; i-- {
		threads = append(threads, s.curr[i])
	}
	s.curr = s.curr[:s.currIdx]

	return threads
}

// DoneStep reports whether curr has been fully consumed while the
// scheduler is in lockstep — i.e. every thread scheduled this round has
// now run at least once since the previous step.
func (s *LockstepScheduler) DoneStep() bool {
	return s.currIdx >= len(s.curr) && s.inLockstep
}

// Free releases the scheduler's internal queues. Threads still queued
// are not themselves released; the caller must drain first.
func (s *LockstepScheduler) Free() {
	s.curr, s.next, s.sync = nil, nil, nil
}

// threadsContain reports whether threads contains a thread equal to
// thread per tm.ThreadEq, scanning the full slice.
func threadsContain(tm ThreadManager, threads []Thread, thread Thread) bool {
	for _, t := range threads {
		if tm.ThreadEq(t, thread) {
			return true
		}
	}
	return false
}
